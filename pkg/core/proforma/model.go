package proforma

import (
	"property_proforma/pkg/core/property"
)

// PeriodContext carries the elapsed-time growth state an asset model needs
// to price one period. Growth factors are cumulative multipliers relative
// to period 1 (factor 1.0 at t=1).
type PeriodContext struct {
	Period        int
	IncomeFactor  float64
	ExpenseFactor float64
	Property      *property.Profile
}

// AssetModel is the pluggable line-item definition for one asset class.
// The single-family, multifamily, hotel, and mixed-use pro-formas differ
// only in how revenue and operating costs are itemized; the projection
// loop itself is shared. Implementations must be pure: same context in,
// same lines out.
type AssetModel interface {
	// Name identifies the model in reports and summaries.
	Name() string

	// GrossIncome returns total potential income for the period before
	// vacancy.
	GrossIncome(ctx PeriodContext) float64

	// ExpenseLines itemizes operating costs for the period. The
	// effective (post-vacancy) income is passed in for percentage-of-
	// income lines such as management fees.
	ExpenseLines(ctx PeriodContext, effectiveIncome float64) []ExpenseLine
}

// ModelFor maps an asset class to its line-item model. Unknown classes
// fall back to the residential model, the most common case.
func ModelFor(class property.AssetClass) AssetModel {
	switch class {
	case property.AssetHotel:
		return HotelModel{}
	default:
		return ResidentialModel{}
	}
}

// ResidentialModel covers SFR, multifamily, and mixed-use assets: rent
// plus ancillary income, fixed expense categories grown by the expense
// rate, and a management fee tracking effective income.
type ResidentialModel struct{}

func (ResidentialModel) Name() string { return "residential" }

func (ResidentialModel) GrossIncome(ctx PeriodContext) float64 {
	return ctx.Property.GrossMonthlyIncome() * ctx.IncomeFactor
}

func (ResidentialModel) ExpenseLines(ctx PeriodContext, effectiveIncome float64) []ExpenseLine {
	ex := ctx.Property.Expenses
	g := ctx.ExpenseFactor
	return []ExpenseLine{
		{Name: "property_tax", Amount: ex.PropertyTax * g},
		{Name: "insurance", Amount: ex.Insurance * g},
		{Name: "hoa", Amount: ex.HOA * g},
		{Name: "utilities", Amount: ex.Utilities * g},
		{Name: "maintenance", Amount: ex.Maintenance * g},
		{Name: "capex_reserve", Amount: ex.CapexReserve * g},
		{Name: "management", Amount: effectiveIncome * ex.ManagementRate},
	}
}

// HotelModel prices operating cost as a departmental margin on room
// revenue rather than fixed monthly categories. Property tax and
// insurance remain fixed lines; everything else scales with revenue.
type HotelModel struct{}

func (HotelModel) Name() string { return "hotel" }

func (HotelModel) GrossIncome(ctx PeriodContext) float64 {
	return ctx.Property.GrossMonthlyIncome() * ctx.IncomeFactor
}

func (HotelModel) ExpenseLines(ctx PeriodContext, effectiveIncome float64) []ExpenseLine {
	ex := ctx.Property.Expenses
	g := ctx.ExpenseFactor
	return []ExpenseLine{
		{Name: "property_tax", Amount: ex.PropertyTax * g},
		{Name: "insurance", Amount: ex.Insurance * g},
		{Name: "departmental", Amount: effectiveIncome * ex.DepartmentalRate},
		{Name: "management", Amount: effectiveIncome * ex.ManagementRate},
	}
}
