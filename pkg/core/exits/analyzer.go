// Package exits evaluates the four competing disposition strategies
// against one projected period sequence. Each strategy is computed
// independently; the analyzer returns all of them and leaves the choice
// of ranking metric to the decision layer.
package exits

import (
	"fmt"

	"property_proforma/pkg/core/amort"
	"property_proforma/pkg/core/proforma"
	"property_proforma/pkg/core/property"
	"property_proforma/pkg/core/returns"
)

// Analyzer computes exit scenarios under one configuration.
type Analyzer struct {
	Config Config
}

// NewAnalyzer builds an analyzer; a zero config is replaced by defaults.
func NewAnalyzer(cfg Config) *Analyzer {
	if cfg == (Config{}) {
		cfg = DefaultConfig()
	}
	return &Analyzer{Config: cfg}
}

// Evaluate runs all four strategies. The period sequence must be a
// complete projection over the intended hold; an empty sequence is a
// caller error.
func (a *Analyzer) Evaluate(periods []proforma.PeriodRecord, prop *property.Profile, fin *property.FinancingTerms) ([]Scenario, error) {
	if len(periods) == 0 {
		return nil, fmt.Errorf("cannot evaluate exits on an empty projection")
	}
	scenarios := []Scenario{
		a.flip(prop, fin),
		a.refinanceHold(periods, prop, fin),
		a.holdAndSell(periods, prop, fin),
		a.perpetualHold(periods, prop, fin),
	}
	return scenarios, nil
}

// flip assumes renovation and resale inside FlipHoldMonths. The hold is
// sub-annual and volatile, so it reports a simple ROI rather than a
// time-weighted IRR.
func (a *Analyzer) flip(prop *property.Profile, fin *property.FinancingTerms) Scenario {
	arv := (prop.PurchasePrice + prop.RenovationBudget) * (1 + a.Config.FlipUpliftRate)
	sellingCosts := arv * a.Config.SellingCostRate
	payoff := amort.RemainingBalance(fin.LoanAmount, fin.AnnualRate, fin.TermMonths, a.Config.FlipHoldMonths)
	proceeds := arv - sellingCosts - payoff

	invested := prop.TotalCashInvested(fin)
	roi := returns.EquityMultiple(proceeds-invested, invested) // profit over cash in

	// Total return is gross dollars returned, same basis as the other
	// strategies, so the scenarios rank against each other.
	total := proceeds
	mult := returns.EquityMultiple(proceeds, invested)
	return Scenario{
		Type:           ScenarioFlip,
		Name:           "Immediate disposition (flip)",
		ExitPeriod:     a.Config.FlipHoldMonths,
		SalePrice:      arv,
		SellingCosts:   sellingCosts,
		LoanPayoff:     payoff,
		NetProceeds:    proceeds,
		TotalReturn:    &total,
		EquityMultiple: &mult,
		SimpleROI:      roi,
	}
}

// refinanceHold models the BRRRR play: refinance at RefiPeriod against the
// projected appraised value, pocket the cash-out, keep collecting the
// remaining horizon's cash flow.
func (a *Analyzer) refinanceHold(periods []proforma.PeriodRecord, prop *property.Profile, fin *property.FinancingTerms) Scenario {
	trigger := a.Config.RefiPeriod
	if trigger < 1 {
		trigger = 1
	}
	if trigger > len(periods) {
		trigger = len(periods)
	}
	at := periods[trigger-1]

	appraised := at.PropertyValue
	newLoan := appraised * a.Config.RefiLTV
	cashOut := newLoan - at.LoanBalance
	if cashOut < 0 {
		cashOut = 0
	}

	invested := prop.TotalCashInvested(fin)
	recycled := cashOut >= invested && invested > 0

	preRefiCF := at.CumulativeCashFlow
	var postRefiCF float64
	if len(periods) > trigger {
		postRefiCF = periods[len(periods)-1].CumulativeCashFlow - preRefiCF
	}

	total := cashOut + preRefiCF + postRefiCF
	mult := returns.EquityMultiple(total, invested)
	return Scenario{
		Type:               ScenarioRefinanceHold,
		Name:               "Refinance and hold (BRRRR)",
		ExitPeriod:         trigger,
		CumulativeCashFlow: preRefiCF + postRefiCF,
		NewLoanAmount:      newLoan,
		LoanPayoff:         at.LoanBalance,
		CashOutProceeds:    cashOut,
		CapitalRecycled:    recycled,
		TotalReturn:        &total,
		EquityMultiple:     &mult,
	}
}

// holdAndSell disposes at the final projected period: terminal value nets
// selling costs and the loan payoff, and the annual cash-flow vector with
// sale proceeds in the terminal year feeds the IRR solver.
func (a *Analyzer) holdAndSell(periods []proforma.PeriodRecord, prop *property.Profile, fin *property.FinancingTerms) Scenario {
	final := periods[len(periods)-1]

	salePrice := final.PropertyValue
	sellingCosts := salePrice * a.Config.SellingCostRate
	proceeds := salePrice - sellingCosts - final.LoanBalance

	invested := prop.TotalCashInvested(fin)
	total := final.CumulativeCashFlow + proceeds
	mult := returns.EquityMultiple(final.CumulativeCashFlow+proceeds, invested)

	flows := annualCashFlowVector(periods, invested, proceeds)
	irr := returns.IRR(flows)

	s := Scenario{
		Type:               ScenarioHoldAndSell,
		Name:               "Fixed-term hold and sell",
		ExitPeriod:         final.Period,
		SalePrice:          salePrice,
		SellingCosts:       sellingCosts,
		LoanPayoff:         final.LoanBalance,
		NetProceeds:        proceeds,
		CumulativeCashFlow: final.CumulativeCashFlow,
		TotalReturn:        &total,
		EquityMultiple:     &mult,
		IRRIterations:      irr.Iterations,
	}
	if irr.Converged {
		rate := irr.Rate
		s.IRR = &rate
	}
	return s
}

// perpetualHold never disposes. Terminal value and equity multiple are
// explicitly not applicable, which is nil rather than zero.
func (a *Analyzer) perpetualHold(periods []proforma.PeriodRecord, prop *property.Profile, fin *property.FinancingTerms) Scenario {
	final := periods[len(periods)-1]
	invested := prop.TotalCashInvested(fin)
	yield := returns.CashOnCash(final.NetCashFlow*proforma.PeriodsPerYear, invested)
	return Scenario{
		Type:               ScenarioPerpetualHold,
		Name:               "Perpetual hold",
		ExitPeriod:         0,
		CumulativeCashFlow: final.CumulativeCashFlow,
		AnnualizedYield:    yield,
		TotalReturn:        nil,
		EquityMultiple:     nil,
		IRR:                nil,
	}
}

// annualCashFlowVector sums monthly records into annual buckets, prefixed
// by the negative initial investment and with sale proceeds added to the
// terminal year.
func annualCashFlowVector(periods []proforma.PeriodRecord, invested, terminalProceeds float64) []float64 {
	nYears := (len(periods) + proforma.PeriodsPerYear - 1) / proforma.PeriodsPerYear
	flows := make([]float64, nYears+1)
	flows[0] = -invested
	for _, rec := range periods {
		flows[rec.Year] += rec.NetCashFlow
	}
	flows[nYears] += terminalProceeds
	return flows
}
