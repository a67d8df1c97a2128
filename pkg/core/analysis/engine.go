// Package analysis orchestrates one full investment analysis: projection,
// metrics, exit scenarios, and the final recommendation. The engine is a
// pure computation over its inputs; the analysis date comes from the
// caller, never from the system clock, so identical inputs replay to
// identical results.
package analysis

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"property_proforma/pkg/core/decision"
	"property_proforma/pkg/core/exits"
	"property_proforma/pkg/core/proforma"
	"property_proforma/pkg/core/property"
	"property_proforma/pkg/core/returns"
)

// Engine wires the component chain under one configuration.
type Engine struct {
	Exits      exits.Config
	Thresholds decision.Thresholds
}

// NewEngine builds an engine with the given configuration; zero-value
// pieces fall back to defaults.
func NewEngine(exitCfg exits.Config, th decision.Thresholds) *Engine {
	if exitCfg == (exits.Config{}) {
		exitCfg = exits.DefaultConfig()
	}
	if th == (decision.Thresholds{}) {
		th = decision.DefaultThresholds()
	}
	return &Engine{Exits: exitCfg, Thresholds: th}
}

// Run analyzes one property end to end. Inputs must already be
// normalized; validation failures surface before any computation.
func (e *Engine) Run(prop property.Profile, fin property.FinancingTerms, analysisDate time.Time) (*Result, error) {
	horizon := prop.HoldYears * proforma.PeriodsPerYear

	projector := proforma.NewProjector(prop.AssetClass)
	periods, err := projector.Project(&prop, &fin, horizon)
	if err != nil {
		return nil, fmt.Errorf("projection failed: %w", err)
	}

	invested := prop.TotalCashInvested(&fin)
	annual := proforma.AnnualRollup(periods, invested)

	analyzer := exits.NewAnalyzer(e.Exits)
	scenarios, err := analyzer.Evaluate(periods, &prop, &fin)
	if err != nil {
		return nil, fmt.Errorf("exit analysis failed: %w", err)
	}

	summary := e.summarize(prop, fin, periods, annual, scenarios, analysisDate)

	return &Result{
		RunID:        summary.RunID,
		AnalysisDate: analysisDate,
		Property:     prop,
		Financing:    fin,
		Periods:      periods,
		Annual:       annual,
		Scenarios:    scenarios,
		Summary:      summary,
	}, nil
}

// summarize snapshots year-1 metrics and the chosen scenario's IRR, then
// classifies. Each run creates a fresh summary; prior summaries are never
// mutated, which keeps historical comparisons valid.
func (e *Engine) summarize(prop property.Profile, fin property.FinancingTerms,
	periods []proforma.PeriodRecord, annual []proforma.AnnualRecord,
	scenarios []exits.Scenario, analysisDate time.Time) Summary {

	invested := prop.TotalCashInvested(&fin)
	year1 := annual[0]
	first := periods[0]

	var holdIRR *float64
	if hs := exits.Find(scenarios, exits.ScenarioHoldAndSell); hs != nil {
		holdIRR = hs.IRR
	}

	rec := decision.Classify(year1.CashOnCash, holdIRR, first.NetCashFlow, e.Thresholds)

	return Summary{
		RunID:            uuid.New().String(),
		PropertyName:     prop.Name,
		AssetClass:       prop.AssetClass,
		AnalysisDate:     analysisDate,
		CashInvested:     invested,
		Year1NOI:         year1.NOI,
		Year1CapRate:     year1.CapRate,
		Year1CashOnCash:  year1.CashOnCash,
		Year1DSCR:        year1.DSCR,
		MonthlyCashFlow:  first.NetCashFlow,
		HoldIRR:          holdIRR,
		OnePercentRule:   returns.OnePercentRule(prop.GrossMonthlyRent, prop.PurchasePrice),
		Decision:         rec.Label,
		Rationale:        rec.Rationale,
		HorizonCashFlow:  periods[len(periods)-1].CumulativeCashFlow,
		HorizonEquity:    periods[len(periods)-1].Equity,
	}
}
