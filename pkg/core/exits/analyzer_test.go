package exits

import (
	"math"
	"testing"
	"time"

	"property_proforma/pkg/core/proforma"
	"property_proforma/pkg/core/property"
)

func testDeal() (*property.Profile, *property.FinancingTerms) {
	prop := &property.Profile{
		Name:             "2410 Birch Ave",
		AssetClass:       property.AssetSFR,
		PurchasePrice:    250000,
		ClosingCosts:     5000,
		RenovationBudget: 10000,
		AcquisitionDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
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
	fin := &property.FinancingTerms{
		DownPayment: 62500,
		LoanAmount:  187500,
		AnnualRate:  0.06,
		TermMonths:  360,
		LTV:         0.75,
	}
	return prop, fin
}

func project(t *testing.T, months int) ([]proforma.PeriodRecord, *property.Profile, *property.FinancingTerms) {
	t.Helper()
	prop, fin := testDeal()
	periods, err := proforma.NewProjector(prop.AssetClass).Project(prop, fin, months)
	if err != nil {
		t.Fatalf("projection failed: %v", err)
	}
	return periods, prop, fin
}

func TestEvaluate_ReturnsFourScenarios(t *testing.T) {
	periods, prop, fin := project(t, 120)
	scenarios, err := NewAnalyzer(Config{}).Evaluate(periods, prop, fin)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if len(scenarios) != 4 {
		t.Fatalf("Expected 4 scenarios, got %d", len(scenarios))
	}
	for _, typ := range []ScenarioType{ScenarioFlip, ScenarioRefinanceHold, ScenarioHoldAndSell, ScenarioPerpetualHold} {
		if Find(scenarios, typ) == nil {
			t.Errorf("Missing scenario %s", typ)
		}
	}
}

func TestFlip(t *testing.T) {
	periods, prop, fin := project(t, 120)
	scenarios, _ := NewAnalyzer(DefaultConfig()).Evaluate(periods, prop, fin)
	flip := Find(scenarios, ScenarioFlip)

	// ARV = (250000 + 10000) * 1.25 = 325000; selling costs 6% = 19500.
	if math.Abs(flip.SalePrice-325000) > 1e-6 {
		t.Errorf("Expected ARV 325000, got %f", flip.SalePrice)
	}
	if math.Abs(flip.SellingCosts-19500) > 1e-6 {
		t.Errorf("Expected selling costs 19500, got %f", flip.SellingCosts)
	}
	// Payoff after 6 payments must be slightly below the original loan.
	if flip.LoanPayoff >= 187500 || flip.LoanPayoff < 186000 {
		t.Errorf("Implausible 6-month payoff %f", flip.LoanPayoff)
	}
	if flip.TotalReturn == nil || flip.IRR != nil {
		t.Errorf("Flip reports total return and simple ROI, never an IRR")
	}
	// NetProceeds = ARV - costs - payoff. Total return is the gross
	// proceeds; invested cash is netted only in SimpleROI.
	wantProceeds := 325000 - 19500 - flip.LoanPayoff
	if math.Abs(flip.NetProceeds-wantProceeds) > 1e-6 {
		t.Errorf("Expected proceeds %f, got %f", wantProceeds, flip.NetProceeds)
	}
	if math.Abs(*flip.TotalReturn-wantProceeds) > 1e-6 {
		t.Errorf("Expected gross total return %f, got %f", wantProceeds, *flip.TotalReturn)
	}
	invested := 62500.0 + 5000 + 10000
	if math.Abs(flip.SimpleROI-(wantProceeds-invested)/invested) > 1e-9 {
		t.Errorf("Simple ROI should be profit over cash invested")
	}
}

func TestTotalReturn_SameBasisAcrossScenarios(t *testing.T) {
	periods, prop, fin := project(t, 120)
	scenarios, _ := NewAnalyzer(DefaultConfig()).Evaluate(periods, prop, fin)

	// Every comparable scenario reports gross dollars returned, so total
	// return and equity multiple agree through the same invested base:
	// total = multiple * 77,500.
	invested := prop.TotalCashInvested(fin)
	for _, s := range scenarios {
		if s.TotalReturn == nil {
			continue
		}
		if s.EquityMultiple == nil {
			t.Fatalf("%s reports a total return without an equity multiple", s.Type)
		}
		if math.Abs(*s.TotalReturn-*s.EquityMultiple*invested) > 1e-6 {
			t.Errorf("%s total return %f disagrees with multiple %f * invested %f",
				s.Type, *s.TotalReturn, *s.EquityMultiple, invested)
		}
	}
}

func TestRefinanceHold(t *testing.T) {
	periods, prop, fin := project(t, 120)
	scenarios, _ := NewAnalyzer(DefaultConfig()).Evaluate(periods, prop, fin)
	refi := Find(scenarios, ScenarioRefinanceHold)

	if refi.ExitPeriod != 12 {
		t.Errorf("Expected refinance at period 12, got %d", refi.ExitPeriod)
	}
	// New loan = appraised value at month 12 * 0.75. Appraisal carries
	// 11 months of 4% appreciation, so it sits just under 250000*1.04.
	appraised := periods[11].PropertyValue
	if math.Abs(refi.NewLoanAmount-appraised*0.75) > 1e-6 {
		t.Errorf("Expected new loan %f, got %f", appraised*0.75, refi.NewLoanAmount)
	}
	// 75% of a barely-appreciated value cannot clear a fresh 75% LTV
	// loan plus recoup 77,500 of invested cash in year one.
	if refi.CapitalRecycled {
		t.Errorf("Capital should not be fully recycled on this deal at month 12")
	}
	if refi.CashOutProceeds < 0 {
		t.Errorf("Cash-out proceeds must be floored at 0, got %f", refi.CashOutProceeds)
	}
	if refi.TotalReturn == nil {
		t.Errorf("Refinance-and-hold reports a total return")
	}
}

func TestRefinanceHold_CapitalRecycled(t *testing.T) {
	// Deep value-add: heavy renovation, low leverage, big forced
	// appreciation makes month-12 cash-out exceed invested capital.
	prop, fin := testDeal()
	prop.Appreciation = 0.5 // forced appreciation through rehab
	fin.LoanAmount = 50000
	fin.DownPayment = 20000
	prop.ClosingCosts = 2000
	prop.RenovationBudget = 8000
	periods, err := proforma.NewProjector(prop.AssetClass).Project(prop, fin, 60)
	if err != nil {
		t.Fatalf("projection failed: %v", err)
	}
	scenarios, _ := NewAnalyzer(DefaultConfig()).Evaluate(periods, prop, fin)
	refi := Find(scenarios, ScenarioRefinanceHold)
	// Invested = 30,000. New loan ~ 250000*1.5^(11/12)*0.75 >> payoff
	// 50,000, so cash-out clears invested capital easily.
	if !refi.CapitalRecycled {
		t.Errorf("Expected capital fully recycled, cash-out %f vs invested 30000", refi.CashOutProceeds)
	}
}

func TestHoldAndSell(t *testing.T) {
	periods, prop, fin := project(t, 120)
	scenarios, _ := NewAnalyzer(DefaultConfig()).Evaluate(periods, prop, fin)
	hs := Find(scenarios, ScenarioHoldAndSell)

	if hs.IRR == nil {
		t.Fatalf("Hold-and-sell on a profitable deal must converge to an IRR")
	}
	// Positive cash flow plus ~48% appreciation over 10 years: the IRR
	// lands solidly positive, and well under 100%.
	if *hs.IRR <= 0 || *hs.IRR > 1 {
		t.Errorf("Implausible IRR %f", *hs.IRR)
	}
	final := periods[len(periods)-1]
	if math.Abs(hs.SalePrice-final.PropertyValue) > 1e-6 {
		t.Errorf("Sale price should be the terminal property value")
	}
	wantProceeds := final.PropertyValue*(1-0.06) - final.LoanBalance
	if math.Abs(hs.NetProceeds-wantProceeds) > 1e-6 {
		t.Errorf("Expected proceeds %f, got %f", wantProceeds, hs.NetProceeds)
	}
	if hs.EquityMultiple == nil || *hs.EquityMultiple <= 1 {
		t.Errorf("Profitable 10-year exit should return more than 1x")
	}
}

func TestPerpetualHold_Sentinels(t *testing.T) {
	periods, prop, fin := project(t, 120)
	scenarios, _ := NewAnalyzer(DefaultConfig()).Evaluate(periods, prop, fin)
	ph := Find(scenarios, ScenarioPerpetualHold)

	// Not applicable means nil, never 0 and never infinity.
	if ph.TotalReturn != nil {
		t.Errorf("Perpetual hold total return must be nil, got %f", *ph.TotalReturn)
	}
	if ph.EquityMultiple != nil {
		t.Errorf("Perpetual hold equity multiple must be nil, got %f", *ph.EquityMultiple)
	}
	if ph.IRR != nil {
		t.Errorf("Perpetual hold IRR must be nil")
	}
	if ph.AnnualizedYield <= 0 {
		t.Errorf("Expected a positive annualized yield, got %f", ph.AnnualizedYield)
	}
	if ph.CumulativeCashFlow != periods[len(periods)-1].CumulativeCashFlow {
		t.Errorf("Perpetual hold should report the full-horizon cumulative cash flow")
	}
}

func TestRankByIRR_ExcludesNil(t *testing.T) {
	periods, prop, fin := project(t, 120)
	scenarios, _ := NewAnalyzer(DefaultConfig()).Evaluate(periods, prop, fin)
	ranked := RankByIRR(scenarios)
	for _, s := range ranked {
		if s.IRR == nil {
			t.Fatalf("RankByIRR must exclude nil-IRR scenarios, found %s", s.Type)
		}
	}
	for i := 1; i < len(ranked); i++ {
		if *ranked[i-1].IRR < *ranked[i].IRR {
			t.Errorf("Ranking not descending at position %d", i)
		}
	}
}

func TestRankByTotalReturn(t *testing.T) {
	periods, prop, fin := project(t, 120)
	scenarios, _ := NewAnalyzer(DefaultConfig()).Evaluate(periods, prop, fin)
	ranked := RankByTotalReturn(scenarios)
	if len(ranked) != 3 {
		t.Fatalf("Expected 3 comparable scenarios (perpetual excluded), got %d", len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if *ranked[i-1].TotalReturn < *ranked[i].TotalReturn {
			t.Errorf("Ranking not descending at position %d", i)
		}
	}
}

func TestEvaluate_EmptyProjection(t *testing.T) {
	prop, fin := testDeal()
	if _, err := NewAnalyzer(DefaultConfig()).Evaluate(nil, prop, fin); err == nil {
		t.Errorf("Expected error on empty projection")
	}
}
