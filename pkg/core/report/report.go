// Package report renders completed analysis results as markdown tables,
// with optional HTML conversion for web display. It only formats numbers
// the engine already produced; nothing here re-derives a metric.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"property_proforma/pkg/core/analysis"
	"property_proforma/pkg/core/exits"
)

// Markdown renders the full analysis report.
func Markdown(res *analysis.Result) string {
	var b strings.Builder

	s := res.Summary
	fmt.Fprintf(&b, "# Investment Analysis: %s\n\n", s.PropertyName)
	fmt.Fprintf(&b, "Run `%s`, analysis date %s, asset class %s.\n\n",
		s.RunID, s.AnalysisDate.Format("2006-01-02"), s.AssetClass)

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Cash invested | $%.2f |\n", s.CashInvested)
	fmt.Fprintf(&b, "| Year-1 NOI | $%.2f |\n", s.Year1NOI)
	fmt.Fprintf(&b, "| Year-1 cap rate | %.2f%% |\n", s.Year1CapRate*100)
	fmt.Fprintf(&b, "| Year-1 cash-on-cash | %.2f%% |\n", s.Year1CashOnCash*100)
	fmt.Fprintf(&b, "| Year-1 DSCR | %.2f |\n", s.Year1DSCR)
	fmt.Fprintf(&b, "| Monthly cash flow | $%.2f |\n", s.MonthlyCashFlow)
	fmt.Fprintf(&b, "| Hold IRR | %s |\n", pctOrNA(s.HoldIRR))
	fmt.Fprintf(&b, "| One-percent rule | %s |\n", passFail(s.OnePercentRule))
	fmt.Fprintf(&b, "| Decision | **%s** |\n\n", s.Decision)
	fmt.Fprintf(&b, "%s\n\n", s.Rationale)

	b.WriteString("## Annual Pro-Forma\n\n")
	b.WriteString("| Year | Effective Income | Expenses | NOI | Debt Service | Cash Flow | Value | Equity |\n")
	b.WriteString("|---|---|---|---|---|---|---|---|\n")
	for _, y := range res.Annual {
		fmt.Fprintf(&b, "| %d | $%.0f | $%.0f | $%.0f | $%.0f | $%.0f | $%.0f | $%.0f |\n",
			y.Year, y.EffectiveIncome, y.TotalExpenses, y.NOI, y.DebtService,
			y.NetCashFlow, y.PropertyValue, y.Equity)
	}
	b.WriteString("\n")

	b.WriteString("## Exit Scenarios\n\n")
	b.WriteString("| Scenario | Exit | Net Proceeds | Total Return | Equity Multiple | IRR |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, sc := range res.Scenarios {
		fmt.Fprintf(&b, "| %s | %s | $%.0f | %s | %s | %s |\n",
			sc.Name, exitTiming(sc), sc.NetProceeds,
			dollarOrNA(sc.TotalReturn), multipleOrNA(sc.EquityMultiple), pctOrNA(sc.IRR))
	}
	b.WriteString("\n")

	return b.String()
}

// HTML converts the markdown report via goldmark. The GFM extension is
// required for the pipe tables.
func HTML(res *analysis.Result) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(res)), &buf); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return buf.String(), nil
}

func exitTiming(sc exits.Scenario) string {
	if sc.Type == exits.ScenarioPerpetualHold {
		return "never"
	}
	return fmt.Sprintf("month %d", sc.ExitPeriod)
}

func pctOrNA(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", *v*100)
}

func dollarOrNA(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("$%.0f", *v)
}

func multipleOrNA(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2fx", *v)
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}
