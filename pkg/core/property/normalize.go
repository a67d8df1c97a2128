package property

// NormalizeRate converts a rate that may have been entered as a percentage
// (e.g. 5 meaning 5%) into a decimal fraction. Values already in [0, 1]
// pass through untouched. Applied once at the input boundary; the engine
// never re-normalizes.
func NormalizeRate(v float64) float64 {
	if v > 1.0 {
		return v / 100.0
	}
	return v
}

// Normalized returns a copy of the profile with every rate field run
// through NormalizeRate.
func (p Profile) Normalized() Profile {
	p.VacancyRate = NormalizeRate(p.VacancyRate)
	p.RentGrowth = NormalizeRate(p.RentGrowth)
	p.ExpenseGrowth = NormalizeRate(p.ExpenseGrowth)
	p.Appreciation = NormalizeRate(p.Appreciation)
	p.Expenses.ManagementRate = NormalizeRate(p.Expenses.ManagementRate)
	p.Expenses.DepartmentalRate = NormalizeRate(p.Expenses.DepartmentalRate)
	return p
}

// Normalized returns a copy of the terms with rate fields normalized.
func (f FinancingTerms) Normalized() FinancingTerms {
	f.AnnualRate = NormalizeRate(f.AnnualRate)
	f.LTV = NormalizeRate(f.LTV)
	return f
}
