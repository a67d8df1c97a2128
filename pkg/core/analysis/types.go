package analysis

import (
	"time"

	"property_proforma/pkg/core/decision"
	"property_proforma/pkg/core/exits"
	"property_proforma/pkg/core/proforma"
	"property_proforma/pkg/core/property"
)

// Result is the complete output of one analysis run: the period sequence,
// annual rollup, exit scenarios, and summary. Plain data throughout;
// persistence and reporting consume it without re-deriving any number.
type Result struct {
	RunID        string    `json:"run_id"`
	AnalysisDate time.Time `json:"analysis_date"`

	Property  property.Profile        `json:"property"`
	Financing property.FinancingTerms `json:"financing"`

	Periods   []proforma.PeriodRecord `json:"periods"`
	Annual    []proforma.AnnualRecord `json:"annual"`
	Scenarios []exits.Scenario        `json:"scenarios"`
	Summary   Summary                 `json:"summary"`
}

// Summary is the one-per-run snapshot used for screening and historical
// comparison. Superseding runs create a new summary with a new RunID.
type Summary struct {
	RunID        string              `json:"run_id"`
	PropertyName string              `json:"property_name"`
	AssetClass   property.AssetClass `json:"asset_class"`
	AnalysisDate time.Time           `json:"analysis_date"`

	CashInvested    float64  `json:"cash_invested"`
	Year1NOI        float64  `json:"year1_noi"`
	Year1CapRate    float64  `json:"year1_cap_rate"`
	Year1CashOnCash float64  `json:"year1_cash_on_cash"`
	Year1DSCR       float64  `json:"year1_dscr"`
	MonthlyCashFlow float64  `json:"monthly_cash_flow"`
	HoldIRR         *float64 `json:"hold_irr"`
	OnePercentRule  bool     `json:"one_percent_rule"`

	HorizonCashFlow float64 `json:"horizon_cash_flow"`
	HorizonEquity   float64 `json:"horizon_equity"`

	Decision  decision.Label `json:"decision"`
	Rationale string         `json:"rationale"`
}
