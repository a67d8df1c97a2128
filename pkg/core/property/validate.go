package property

import "fmt"

// Validate checks the profile before any simulation starts. A failure here
// is fatal for the run; the projector never begins a partial computation.
func (p *Profile) Validate() error {
	if p.PurchasePrice <= 0 {
		return fmt.Errorf("purchase price must be positive, got %.2f", p.PurchasePrice)
	}
	if p.ClosingCosts < 0 || p.RenovationBudget < 0 {
		return fmt.Errorf("closing costs and renovation budget cannot be negative")
	}
	if p.GrossMonthlyRent < 0 || p.OtherMonthlyIncome < 0 {
		return fmt.Errorf("income fields cannot be negative")
	}
	if p.HoldYears <= 0 {
		return fmt.Errorf("hold period must be positive, got %d years", p.HoldYears)
	}
	for _, r := range []struct {
		name string
		v    float64
	}{
		{"vacancy_rate", p.VacancyRate},
		{"rent_growth", p.RentGrowth},
		{"expense_growth", p.ExpenseGrowth},
		{"appreciation", p.Appreciation},
		{"management_rate", p.Expenses.ManagementRate},
		{"departmental_rate", p.Expenses.DepartmentalRate},
	} {
		if r.v < 0 || r.v > 1 {
			return fmt.Errorf("%s must be a normalized fraction in [0,1], got %.4f", r.name, r.v)
		}
	}
	return nil
}

// Validate checks financing terms before simulation.
func (f *FinancingTerms) Validate() error {
	if f.LoanAmount < 0 {
		return fmt.Errorf("loan amount cannot be negative, got %.2f", f.LoanAmount)
	}
	if f.AnnualRate < 0 || f.AnnualRate > 1 {
		return fmt.Errorf("annual rate must be a normalized fraction in [0,1], got %.4f", f.AnnualRate)
	}
	if f.LoanAmount > 0 && f.TermMonths <= 0 {
		return fmt.Errorf("loan term must be positive, got %d months", f.TermMonths)
	}
	if f.DownPayment < 0 {
		return fmt.Errorf("down payment cannot be negative, got %.2f", f.DownPayment)
	}
	return nil
}
