// Package property defines the immutable inputs to a projection run:
// the property itself and the financing attached to it.
//
// All rate fields are decimal fractions in [0, 1] once normalized.
// Callers feeding user input should run it through Normalized() exactly
// once at the boundary; the engine assumes fractions everywhere else.
package property

import (
	"time"
)

// AssetClass selects the revenue/expense line-item model used by the
// projector. Residential classes share one model; hotels carry
// departmental expense margins instead of fixed monthly line items.
type AssetClass string

const (
	AssetSFR         AssetClass = "sfr"
	AssetMultifamily AssetClass = "multifamily"
	AssetHotel       AssetClass = "hotel"
	AssetMixedUse    AssetClass = "mixed_use"
)

// OperatingExpenses itemizes the recurring cost base at acquisition.
// Fixed categories are monthly dollar amounts at period 1 and grow with
// the expense growth rate. ManagementRate is a fraction of effective
// income and therefore tracks income automatically.
type OperatingExpenses struct {
	PropertyTax  float64 `json:"property_tax" yaml:"property_tax"`
	Insurance    float64 `json:"insurance" yaml:"insurance"`
	HOA          float64 `json:"hoa" yaml:"hoa"`
	Utilities    float64 `json:"utilities" yaml:"utilities"`
	Maintenance  float64 `json:"maintenance" yaml:"maintenance"`
	CapexReserve float64 `json:"capex_reserve" yaml:"capex_reserve"`

	ManagementRate float64 `json:"management_rate" yaml:"management_rate"`

	// DepartmentalRate replaces the fixed categories for hotel-class
	// assets: departmental costs as a fraction of room revenue.
	DepartmentalRate float64 `json:"departmental_rate,omitempty" yaml:"departmental_rate"`
}

// Profile is the immutable description of one acquisition.
type Profile struct {
	Name       string     `json:"name" yaml:"name"`
	AssetClass AssetClass `json:"asset_class" yaml:"asset_class"`

	PurchasePrice    float64 `json:"purchase_price" yaml:"purchase_price"`
	ClosingCosts     float64 `json:"closing_costs" yaml:"closing_costs"`
	RenovationBudget float64 `json:"renovation_budget" yaml:"renovation_budget"`

	Units           int       `json:"units,omitempty" yaml:"units"`
	SquareFeet      float64   `json:"square_feet,omitempty" yaml:"square_feet"`
	YearBuilt       int       `json:"year_built,omitempty" yaml:"year_built"`
	// AcquisitionDate is set from the input boundary (see pkg/config);
	// file formats carry it as a plain date string.
	AcquisitionDate time.Time `json:"acquisition_date" yaml:"-"`

	GrossMonthlyRent   float64 `json:"gross_monthly_rent" yaml:"gross_monthly_rent"`
	OtherMonthlyIncome float64 `json:"other_monthly_income" yaml:"other_monthly_income"`
	VacancyRate        float64 `json:"vacancy_rate" yaml:"vacancy_rate"`

	Expenses OperatingExpenses `json:"expenses" yaml:"expenses"`

	// Annual growth assumptions, decimal fractions.
	RentGrowth    float64 `json:"rent_growth" yaml:"rent_growth"`
	ExpenseGrowth float64 `json:"expense_growth" yaml:"expense_growth"`
	Appreciation  float64 `json:"appreciation" yaml:"appreciation"`

	HoldYears int `json:"hold_years" yaml:"hold_years"`
}

// FinancingTerms describes the loan placed at acquisition.
//
// PeriodicPayment is derived once (see PreparePayment) and cached here so
// every downstream consumer sees the same debt-service figure. It is the
// only field on this struct that is not caller-supplied.
type FinancingTerms struct {
	DownPayment float64 `json:"down_payment" yaml:"down_payment"`
	LoanAmount  float64 `json:"loan_amount" yaml:"loan_amount"`
	AnnualRate  float64 `json:"annual_rate" yaml:"annual_rate"`
	TermMonths  int     `json:"term_months" yaml:"term_months"`
	LTV         float64 `json:"ltv" yaml:"ltv"`

	PeriodicPayment float64 `json:"periodic_payment" yaml:"-"`
}

// TotalCashInvested is the out-of-pocket capital basis used by
// cash-on-cash and equity-multiple calculations.
func (p *Profile) TotalCashInvested(f *FinancingTerms) float64 {
	return f.DownPayment + p.ClosingCosts + p.RenovationBudget
}

// GrossMonthlyIncome is rent plus ancillary income at period 1.
func (p *Profile) GrossMonthlyIncome() float64 {
	return p.GrossMonthlyRent + p.OtherMonthlyIncome
}
