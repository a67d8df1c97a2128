// Package proforma simulates the monthly cash-flow pro-forma for one
// property over a fixed horizon. The projection is a pure function of its
// inputs: no clock reads, no I/O, no shared state, so identical inputs
// always produce identical period sequences and runs are safe to fan out
// across a worker pool.
package proforma

import (
	"fmt"
	"math"

	"property_proforma/pkg/core/amort"
	"property_proforma/pkg/core/property"
	"property_proforma/pkg/core/returns"
)

// PeriodsPerYear fixes the simulation granularity at monthly. Annual
// views are rollups of monthly records, never a separate simulation.
const PeriodsPerYear = 12

// Projector drives the period loop for a given asset model.
type Projector struct {
	Model AssetModel
}

// NewProjector picks the line-item model from the profile's asset class.
func NewProjector(class property.AssetClass) *Projector {
	return &Projector{Model: ModelFor(class)}
}

// Project simulates horizonMonths periods. Validation failures are
// reported before the first period is computed; a returned sequence is
// always complete.
func (p *Projector) Project(prop *property.Profile, fin *property.FinancingTerms, horizonMonths int) ([]PeriodRecord, error) {
	if horizonMonths <= 0 {
		return nil, fmt.Errorf("projection horizon must be positive, got %d", horizonMonths)
	}
	if err := prop.Validate(); err != nil {
		return nil, fmt.Errorf("invalid property profile: %w", err)
	}
	if err := fin.Validate(); err != nil {
		return nil, fmt.Errorf("invalid financing terms: %w", err)
	}

	// Level payment is computed once and cached on the terms; every
	// consumer downstream sees this same figure.
	amort.PreparePayment(fin)
	payment := fin.PeriodicPayment

	cashInvested := prop.TotalCashInvested(fin)

	records := make([]PeriodRecord, 0, horizonMonths)
	balance := fin.LoanAmount
	cumulative := 0.0

	for t := 1; t <= horizonMonths; t++ {
		elapsed := float64(t-1) / PeriodsPerYear

		ctx := PeriodContext{
			Period:        t,
			IncomeFactor:  math.Pow(1+prop.RentGrowth, elapsed),
			ExpenseFactor: math.Pow(1+prop.ExpenseGrowth, elapsed),
			Property:      prop,
		}

		gross := p.Model.GrossIncome(ctx)
		vacancy := gross * prop.VacancyRate
		effective := gross - vacancy

		lines := p.Model.ExpenseLines(ctx, effective)
		totalExpenses := 0.0
		for _, l := range lines {
			totalExpenses += l.Amount
		}
		noi := effective - totalExpenses

		// Debt service splits against the prior period's closing balance.
		var interest, principalPaid float64
		if balance > 0 && t <= fin.TermMonths {
			interest, principalPaid = amort.Split(balance, fin.AnnualRate, payment)
			balance -= principalPaid
			if balance < 0 {
				balance = 0
			}
		}
		debtService := interest + principalPaid

		netCF := noi - debtService
		cumulative += netCF

		value := prop.PurchasePrice * math.Pow(1+prop.Appreciation, elapsed)
		equity := value - balance

		rec := PeriodRecord{
			Period:             t,
			Year:               (t-1)/PeriodsPerYear + 1,
			MonthOfYear:        (t-1)%PeriodsPerYear + 1,
			GrossIncome:        gross,
			VacancyLoss:        vacancy,
			EffectiveIncome:    effective,
			Expenses:           lines,
			TotalExpenses:      totalExpenses,
			NOI:                noi,
			DebtService:        debtService,
			Interest:           interest,
			Principal:          principalPaid,
			NetCashFlow:        netCF,
			CumulativeCashFlow: cumulative,
			PropertyValue:      value,
			LoanBalance:        balance,
			Equity:             equity,
			CapRate:            returns.CapRate(noi*PeriodsPerYear, value),
			DSCR:               returns.DSCR(noi*PeriodsPerYear, debtService*PeriodsPerYear),
			CashOnCash:         returns.CashOnCash(netCF*PeriodsPerYear, cashInvested),
		}
		records = append(records, rec)
	}

	return records, nil
}

// AnnualRollup sums monthly records into calendar-year aggregates.
// A trailing partial year is rolled up as-is; its ratios reflect the
// months actually simulated, not an annualized extrapolation.
func AnnualRollup(periods []PeriodRecord, cashInvested float64) []AnnualRecord {
	if len(periods) == 0 {
		return nil
	}
	years := make([]AnnualRecord, 0, len(periods)/PeriodsPerYear+1)
	var cur AnnualRecord
	for i, rec := range periods {
		if rec.Year != cur.Year {
			if cur.Year != 0 {
				years = append(years, cur)
			}
			cur = AnnualRecord{Year: rec.Year}
		}
		cur.GrossIncome += rec.GrossIncome
		cur.EffectiveIncome += rec.EffectiveIncome
		cur.TotalExpenses += rec.TotalExpenses
		cur.NOI += rec.NOI
		cur.DebtService += rec.DebtService
		cur.NetCashFlow += rec.NetCashFlow

		cur.PropertyValue = rec.PropertyValue
		cur.LoanBalance = rec.LoanBalance
		cur.Equity = rec.Equity

		if i == len(periods)-1 || periods[i+1].Year != rec.Year {
			cur.CapRate = returns.CapRate(cur.NOI, cur.PropertyValue)
			cur.DSCR = returns.DSCR(cur.NOI, cur.DebtService)
			cur.CashOnCash = returns.CashOnCash(cur.NetCashFlow, cashInvested)
		}
	}
	years = append(years, cur)
	return years
}
