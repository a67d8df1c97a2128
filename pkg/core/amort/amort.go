// Package amort implements fixed-payment mortgage arithmetic: the level
// annuity payment, per-period interest/principal splits, and the
// closed-form outstanding balance after k payments.
package amort

import (
	"math"

	"property_proforma/pkg/core/property"
)

// PeriodsPerYear is the payment frequency for every loan modeled here.
const PeriodsPerYear = 12

// PeriodicPayment returns the level monthly payment for a fully amortizing
// loan: M = P·r(1+r)^n / ((1+r)^n − 1) with r = annualRate / 12.
//
// A zero rate degrades to straight-line principal repayment and a zero
// principal pays nothing; neither is an error.
func PeriodicPayment(principal, annualRate float64, nPeriods int) float64 {
	if principal == 0 || nPeriods <= 0 {
		return 0
	}
	if annualRate == 0 {
		return principal / float64(nPeriods)
	}
	r := annualRate / PeriodsPerYear
	factor := math.Pow(1+r, float64(nPeriods))
	return principal * r * factor / (factor - 1)
}

// RemainingBalance returns the outstanding principal after elapsed
// payments, via the closed form B_k = P(1+r)^k − M·((1+r)^k − 1)/r.
// It agrees with iterating the per-period split to within rounding.
func RemainingBalance(principal, annualRate float64, nPeriods, elapsed int) float64 {
	if principal == 0 || nPeriods <= 0 {
		return 0
	}
	if elapsed <= 0 {
		return principal
	}
	if elapsed >= nPeriods {
		return 0
	}
	if annualRate == 0 {
		return principal * (1 - float64(elapsed)/float64(nPeriods))
	}
	r := annualRate / PeriodsPerYear
	payment := PeriodicPayment(principal, annualRate, nPeriods)
	factor := math.Pow(1+r, float64(elapsed))
	balance := principal*factor - payment*(factor-1)/r
	if balance < 0 {
		balance = 0
	}
	return balance
}

// Split decomposes one payment against the prior closing balance.
// The final period can overshoot by a fraction of a cent; the principal
// portion is clamped so the balance never goes negative.
func Split(balance, annualRate, payment float64) (interest, principalPaid float64) {
	r := annualRate / PeriodsPerYear
	interest = balance * r
	principalPaid = payment - interest
	if principalPaid > balance {
		principalPaid = balance
	}
	return interest, principalPaid
}

// Entry is one row of an amortization schedule.
type Entry struct {
	Period    int     `json:"period"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

// Schedule produces the full payment-by-payment amortization table.
func Schedule(principal, annualRate float64, nPeriods int) []Entry {
	if principal == 0 || nPeriods <= 0 {
		return nil
	}
	payment := PeriodicPayment(principal, annualRate, nPeriods)
	entries := make([]Entry, 0, nPeriods)
	balance := principal
	for k := 1; k <= nPeriods; k++ {
		interest, prin := Split(balance, annualRate, payment)
		balance -= prin
		if balance < 0 {
			balance = 0
		}
		entries = append(entries, Entry{
			Period:    k,
			Payment:   interest + prin,
			Interest:  interest,
			Principal: prin,
			Balance:   balance,
		})
	}
	return entries
}

// PreparePayment computes the level payment once and caches it on the
// financing terms. Idempotent: an already-populated payment is kept.
func PreparePayment(f *property.FinancingTerms) {
	if f.PeriodicPayment != 0 {
		return
	}
	f.PeriodicPayment = PeriodicPayment(f.LoanAmount, f.AnnualRate, f.TermMonths)
}
