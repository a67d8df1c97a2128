// Package decision maps summary metrics to a categorical investment
// recommendation. The threshold table is configuration, not constants:
// different shops screen at different hurdle rates.
package decision

import "fmt"

// Label is the categorical recommendation.
type Label string

const (
	StrongAccept  Label = "strong_accept"
	Accept        Label = "accept"
	Reject        Label = "reject"
	NeedsAnalysis Label = "needs_further_analysis"
)

// Thresholds is the screening table. All rates are decimal fractions.
type Thresholds struct {
	StrongCashOnCash float64 `json:"strong_cash_on_cash" yaml:"strong_cash_on_cash"`
	StrongIRR        float64 `json:"strong_irr" yaml:"strong_irr"`
	AcceptCashOnCash float64 `json:"accept_cash_on_cash" yaml:"accept_cash_on_cash"`
	AcceptIRR        float64 `json:"accept_irr" yaml:"accept_irr"`
}

// DefaultThresholds returns the standard screen: strong accept above
// 15% cash-on-cash and 18% IRR, accept above 10% and 15%.
func DefaultThresholds() Thresholds {
	return Thresholds{
		StrongCashOnCash: 0.15,
		StrongIRR:        0.18,
		AcceptCashOnCash: 0.10,
		AcceptIRR:        0.15,
	}
}

// Recommendation pairs the label with a rationale embedding the numbers
// that triggered it.
type Recommendation struct {
	Label     Label  `json:"label"`
	Rationale string `json:"rationale"`
}

// Classify applies the threshold table to (cash-on-cash, hold IRR,
// monthly net cash flow). A nil IRR (perpetual holds, non-convergent
// solves) cannot satisfy an IRR hurdle. Negative carry overrides every
// positive signal.
func Classify(cashOnCash float64, irr *float64, monthlyNetCashFlow float64, th Thresholds) Recommendation {
	if monthlyNetCashFlow < 0 {
		return Recommendation{
			Label: Reject,
			Rationale: fmt.Sprintf(
				"Negative carry: the property loses $%.2f per month before any appreciation; rejected regardless of other metrics.",
				-monthlyNetCashFlow),
		}
	}
	if irr != nil && cashOnCash > th.StrongCashOnCash && *irr > th.StrongIRR {
		return Recommendation{
			Label: StrongAccept,
			Rationale: fmt.Sprintf(
				"Cash-on-cash %.1f%% exceeds %.1f%% and projected IRR %.1f%% exceeds %.1f%%.",
				cashOnCash*100, th.StrongCashOnCash*100, *irr*100, th.StrongIRR*100),
		}
	}
	if irr != nil && cashOnCash > th.AcceptCashOnCash && *irr > th.AcceptIRR {
		return Recommendation{
			Label: Accept,
			Rationale: fmt.Sprintf(
				"Cash-on-cash %.1f%% exceeds %.1f%% and projected IRR %.1f%% exceeds %.1f%%.",
				cashOnCash*100, th.AcceptCashOnCash*100, *irr*100, th.AcceptIRR*100),
		}
	}
	irrText := "unavailable"
	if irr != nil {
		irrText = fmt.Sprintf("%.1f%%", *irr*100)
	}
	return Recommendation{
		Label: NeedsAnalysis,
		Rationale: fmt.Sprintf(
			"Cash-on-cash %.1f%% with IRR %s and monthly cash flow $%.2f clears no acceptance threshold; review manually.",
			cashOnCash*100, irrText, monthlyNetCashFlow),
	}
}
