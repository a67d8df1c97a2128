package analysis

import (
	"testing"
	"time"

	"property_proforma/pkg/core/decision"
	"property_proforma/pkg/core/exits"
	"property_proforma/pkg/core/property"
)

func testInputs() (property.Profile, property.FinancingTerms) {
	prop := property.Profile{
		Name:             "77 Orchard Ln",
		AssetClass:       property.AssetSFR,
		PurchasePrice:    250000,
		ClosingCosts:     5000,
		RenovationBudget: 10000,
		AcquisitionDate:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		GrossMonthlyRent: 2200,
		VacancyRate:      0.05,
		Expenses: property.OperatingExpenses{
			PropertyTax:    260,
			Insurance:      100,
			Maintenance:    110,
			CapexReserve:   110,
			ManagementRate: 0.08,
		},
		RentGrowth:    0.03,
		ExpenseGrowth: 0.02,
		Appreciation:  0.04,
		HoldYears:     10,
	}
	fin := property.FinancingTerms{
		DownPayment: 62500,
		LoanAmount:  187500,
		AnnualRate:  0.06,
		TermMonths:  360,
		LTV:         0.75,
	}
	return prop, fin
}

func TestRun_EndToEnd(t *testing.T) {
	prop, fin := testInputs()
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	res, err := NewEngine(exits.Config{}, decision.Thresholds{}).Run(prop, fin, date)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(res.Periods) != 120 {
		t.Errorf("Expected 120 periods for a 10-year hold, got %d", len(res.Periods))
	}
	if len(res.Annual) != 10 {
		t.Errorf("Expected 10 annual records, got %d", len(res.Annual))
	}
	if len(res.Scenarios) != 4 {
		t.Errorf("Expected 4 exit scenarios, got %d", len(res.Scenarios))
	}
	if res.Summary.RunID == "" {
		t.Errorf("Summary must carry a run ID")
	}
	if !res.Summary.AnalysisDate.Equal(date) {
		t.Errorf("Analysis date must be the caller-supplied date")
	}
	if res.Summary.HoldIRR == nil {
		t.Errorf("Hold-and-sell IRR should converge on this deal")
	}
	if res.Summary.OnePercentRule {
		t.Errorf("2200 rent on 250000 price is under 1%%, rule should fail")
	}
	if res.Summary.Decision == "" || res.Summary.Rationale == "" {
		t.Errorf("Summary must carry a decision and rationale")
	}
}

func TestRun_SummariesAreIndependent(t *testing.T) {
	prop, fin := testInputs()
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	eng := NewEngine(exits.DefaultConfig(), decision.DefaultThresholds())

	first, err := eng.Run(prop, fin, date)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	second, err := eng.Run(prop, fin, date.AddDate(0, 1, 0))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Superseding runs create fresh summaries; run IDs never collide and
	// the earlier summary keeps its own date.
	if first.Summary.RunID == second.Summary.RunID {
		t.Errorf("Each run must mint its own run ID")
	}
	if !first.Summary.AnalysisDate.Equal(date) {
		t.Errorf("Earlier summary mutated by later run")
	}
	// Numeric results are deterministic across runs of identical inputs.
	if first.Summary.Year1NOI != second.Summary.Year1NOI {
		t.Errorf("Identical inputs must produce identical metrics")
	}
}

func TestRun_ValidationFailsBeforeComputation(t *testing.T) {
	prop, fin := testInputs()
	prop.HoldYears = 0
	if _, err := NewEngine(exits.DefaultConfig(), decision.DefaultThresholds()).Run(prop, fin, time.Now()); err == nil {
		t.Errorf("Expected validation error for zero hold period")
	}
}

func TestRun_NegativeCarryRejected(t *testing.T) {
	prop, fin := testInputs()
	prop.GrossMonthlyRent = 1200 // rent cannot cover the mortgage
	res, err := NewEngine(exits.DefaultConfig(), decision.DefaultThresholds()).Run(prop, fin, time.Now())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Summary.MonthlyCashFlow >= 0 {
		t.Fatalf("Deal should carry negative, got %f", res.Summary.MonthlyCashFlow)
	}
	if res.Summary.Decision != decision.Reject {
		t.Errorf("Negative carry must reject, got %s", res.Summary.Decision)
	}
}
