package property

import (
	"math"
	"testing"
)

func TestNormalizeRate(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{5, 0.05},     // percentage form
		{0.05, 0.05},  // already a fraction
		{1.0, 1.0},    // boundary stays put
		{75, 0.75},    // LTV written as percent
		{0, 0},
	}
	for _, c := range cases {
		if got := NormalizeRate(c.in); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("NormalizeRate(%f) = %f, want %f", c.in, got, c.want)
		}
	}
}

func TestNormalized_AppliesOnce(t *testing.T) {
	p := Profile{VacancyRate: 5, RentGrowth: 0.03}
	n := p.Normalized()
	if n.VacancyRate != 0.05 {
		t.Errorf("Expected 0.05, got %f", n.VacancyRate)
	}
	// Normalizing an already-normalized profile must be a no-op.
	again := n.Normalized()
	if again.VacancyRate != 0.05 || again.RentGrowth != 0.03 {
		t.Errorf("Double normalization changed values: %+v", again)
	}
	// The original is untouched: Normalized returns a copy.
	if p.VacancyRate != 5 {
		t.Errorf("Normalized must not mutate its receiver")
	}
}

func TestValidate_RejectsOutOfRangeRates(t *testing.T) {
	p := Profile{
		PurchasePrice:    100000,
		GrossMonthlyRent: 1000,
		HoldYears:        5,
		VacancyRate:      1.5,
	}
	if err := p.Validate(); err == nil {
		t.Errorf("Expected error for vacancy rate > 1")
	}
}

func TestValidate_RejectsNegativePrice(t *testing.T) {
	p := Profile{PurchasePrice: -1, GrossMonthlyRent: 1000, HoldYears: 5}
	if err := p.Validate(); err == nil {
		t.Errorf("Expected error for negative purchase price")
	}
}

func TestFinancingValidate(t *testing.T) {
	f := FinancingTerms{LoanAmount: 100000, AnnualRate: 0.06, TermMonths: 0}
	if err := f.Validate(); err == nil {
		t.Errorf("Expected error for zero term on a positive loan")
	}
	unlevered := FinancingTerms{LoanAmount: 0, TermMonths: 0, DownPayment: 100000}
	if err := unlevered.Validate(); err != nil {
		t.Errorf("Unlevered terms should validate, got %v", err)
	}
}

func TestTotalCashInvested(t *testing.T) {
	p := Profile{ClosingCosts: 5000, RenovationBudget: 10000}
	f := FinancingTerms{DownPayment: 62500}
	if got := p.TotalCashInvested(&f); got != 77500 {
		t.Errorf("Expected 77500, got %f", got)
	}
}
