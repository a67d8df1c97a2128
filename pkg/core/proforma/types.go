package proforma

// ExpenseLine is one itemized operating cost within a period. Lines are
// emitted in a stable order so two runs over identical inputs produce
// identical sequences.
type ExpenseLine struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// PeriodRecord is the state of the investment at the close of one monthly
// period. Records are append-only: each is a pure function of the prior
// period's state plus elapsed-time growth factors, and is never mutated
// after the projector emits it.
type PeriodRecord struct {
	Period      int `json:"period"`
	Year        int `json:"year"`
	MonthOfYear int `json:"month_of_year"`

	GrossIncome     float64 `json:"gross_income"`
	VacancyLoss     float64 `json:"vacancy_loss"`
	EffectiveIncome float64 `json:"effective_income"`

	Expenses      []ExpenseLine `json:"expenses"`
	TotalExpenses float64       `json:"total_expenses"`
	NOI           float64       `json:"noi"`

	DebtService float64 `json:"debt_service"`
	Interest    float64 `json:"interest"`
	Principal   float64 `json:"principal"`

	NetCashFlow        float64 `json:"net_cash_flow"`
	CumulativeCashFlow float64 `json:"cumulative_cash_flow"`

	PropertyValue float64 `json:"property_value"`
	LoanBalance   float64 `json:"loan_balance"`
	Equity        float64 `json:"equity"`

	// Point-in-time ratios, annualized by the period multiplier.
	CapRate    float64 `json:"cap_rate"`
	DSCR       float64 `json:"dscr"`
	CashOnCash float64 `json:"cash_on_cash"`
}

// AnnualRecord aggregates twelve monthly records into one calendar year of
// the hold. Flow fields are sums; stock fields (value, balance, equity)
// are the year-end snapshot.
type AnnualRecord struct {
	Year int `json:"year"`

	GrossIncome     float64 `json:"gross_income"`
	EffectiveIncome float64 `json:"effective_income"`
	TotalExpenses   float64 `json:"total_expenses"`
	NOI             float64 `json:"noi"`
	DebtService     float64 `json:"debt_service"`
	NetCashFlow     float64 `json:"net_cash_flow"`

	PropertyValue float64 `json:"property_value"`
	LoanBalance   float64 `json:"loan_balance"`
	Equity        float64 `json:"equity"`

	CapRate    float64 `json:"cap_rate"`
	DSCR       float64 `json:"dscr"`
	CashOnCash float64 `json:"cash_on_cash"`
}
