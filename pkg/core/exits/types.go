package exits

// ScenarioType enumerates the four disposition strategies. They are
// mutually exclusive and independently computed against the same
// projected period sequence.
type ScenarioType string

const (
	ScenarioFlip          ScenarioType = "flip"
	ScenarioRefinanceHold ScenarioType = "refinance_hold"
	ScenarioHoldAndSell   ScenarioType = "hold_and_sell"
	ScenarioPerpetualHold ScenarioType = "perpetual_hold"
)

// Scenario is the outcome of one disposition strategy.
//
// TotalReturn, EquityMultiple, and IRR are pointers because "not
// applicable" is a real state: a perpetual hold has no terminal value, and
// an IRR can fail to converge. Nil is distinct from a genuine zero.
type Scenario struct {
	Type ScenarioType `json:"type"`
	Name string       `json:"name"`

	// ExitPeriod is the monthly period of disposition; 0 for perpetual.
	ExitPeriod int `json:"exit_period"`

	SalePrice    float64 `json:"sale_price,omitempty"`
	SellingCosts float64 `json:"selling_costs,omitempty"`
	LoanPayoff   float64 `json:"loan_payoff,omitempty"`
	NetProceeds  float64 `json:"net_proceeds,omitempty"`

	CumulativeCashFlow float64 `json:"cumulative_cash_flow"`

	// TotalReturn is gross dollars returned to the investor across the
	// strategy (proceeds plus any cash flow collected), on the same basis
	// for every strategy so rankings compare like with like.
	TotalReturn    *float64 `json:"total_return"`
	EquityMultiple *float64 `json:"equity_multiple"`
	IRR            *float64 `json:"irr"`
	IRRIterations  int      `json:"irr_iterations,omitempty"`

	// Flip only: simple ROI on invested cash over a sub-annual hold.
	SimpleROI float64 `json:"simple_roi,omitempty"`

	// Refinance-and-hold only.
	NewLoanAmount   float64 `json:"new_loan_amount,omitempty"`
	CashOutProceeds float64 `json:"cash_out_proceeds,omitempty"`
	CapitalRecycled bool    `json:"capital_recycled,omitempty"`

	// Perpetual hold only: annualized yield on invested capital using
	// the final simulated period's cash flow.
	AnnualizedYield float64 `json:"annualized_yield,omitempty"`
}

// Config holds the strategy parameters that were module-level constants in
// older implementations. Passing them in keeps the analyzer pure and lets
// tests pin every assumption.
type Config struct {
	// SellingCostRate is the fraction of sale price lost to commissions
	// and transfer costs on any disposition.
	SellingCostRate float64 `json:"selling_cost_rate" yaml:"selling_cost_rate"`

	// FlipUpliftRate is the after-repair-value uplift applied to
	// acquisition plus renovation cost.
	FlipUpliftRate float64 `json:"flip_uplift_rate" yaml:"flip_uplift_rate"`

	// FlipHoldMonths is the assumed renovation-and-resale window.
	FlipHoldMonths int `json:"flip_hold_months" yaml:"flip_hold_months"`

	// RefiPeriod is the month the refinance is executed.
	RefiPeriod int `json:"refi_period" yaml:"refi_period"`

	// RefiLTV is the target loan-to-value of the new loan against the
	// appraised (projected) value at RefiPeriod.
	RefiLTV float64 `json:"refi_ltv" yaml:"refi_ltv"`
}

// DefaultConfig mirrors common underwriting practice: 6% selling costs,
// 25% flip uplift over cost basis, 6-month flip, refinance at month 12 to
// 75% LTV.
func DefaultConfig() Config {
	return Config{
		SellingCostRate: 0.06,
		FlipUpliftRate:  0.25,
		FlipHoldMonths:  6,
		RefiPeriod:      12,
		RefiLTV:         0.75,
	}
}
