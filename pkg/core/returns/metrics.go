// Package returns holds the pure rate-of-return formulas shared by the
// projector, the exit analyzer, and the decision layer. Every function is
// total: numeric edge cases (zero value, zero invested capital, zero debt
// service) return documented substitutes instead of NaN or panics.
package returns

// DSCRUnlevered is the sentinel coverage ratio reported for deals with no
// debt service. Unlevered coverage is mathematically infinite; a large
// finite value keeps scenarios sortable alongside levered ones.
const DSCRUnlevered = 9999.0

// CapRate is annualized NOI over property value.
func CapRate(annualNOI, propertyValue float64) float64 {
	if propertyValue == 0 {
		return 0
	}
	return annualNOI / propertyValue
}

// CashOnCash is annualized net cash flow over total cash invested.
func CashOnCash(annualNetCashFlow, cashInvested float64) float64 {
	if cashInvested == 0 {
		return 0
	}
	return annualNetCashFlow / cashInvested
}

// DSCR is annualized NOI over annualized debt service.
func DSCR(annualNOI, annualDebtService float64) float64 {
	if annualDebtService == 0 {
		return DSCRUnlevered
	}
	return annualNOI / annualDebtService
}

// EquityMultiple is total nominal dollars returned over cash invested.
func EquityMultiple(totalReturned, cashInvested float64) float64 {
	if cashInvested == 0 {
		return 0
	}
	return totalReturned / cashInvested
}

// OnePercentRule is the classic screening heuristic: monthly rent at or
// above 1% of the purchase price.
func OnePercentRule(monthlyRent, purchasePrice float64) bool {
	return monthlyRent >= 0.01*purchasePrice
}
