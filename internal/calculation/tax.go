package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxgo/income-tax-calculator/internal/domain"
	"github.com/taxgo/income-tax-calculator/pkg/money"
)

var hundred = decimal.NewFromInt(100)

// ProgressiveTaxCalculator allocates taxable income across the bands
// of a rate schedule. It holds no state between calls.
type ProgressiveTaxCalculator struct{}

// NewProgressiveTaxCalculator creates a progressive tax calculator.
func NewProgressiveTaxCalculator() *ProgressiveTaxCalculator {
	return &ProgressiveTaxCalculator{}
}

// ComputeTax walks the schedule in ascending upper-bound order and
// returns the per-band breakdown plus the total tax.
//
// The schedule is sorted defensively, so input order is irrelevant.
// Bands that absorb no income are omitted from the breakdown but still
// advance the running lower bound; the walk stops as soon as the
// remaining amount is exhausted. An empty schedule taxes nothing, and
// gaps between bounds are honored literally rather than validated.
func (tc *ProgressiveTaxCalculator) ComputeTax(taxableIncome decimal.Decimal, schedule domain.Schedule) ([]domain.BandTax, decimal.Decimal) {
	remaining := money.ClampZero(taxableIncome)
	lower := decimal.Zero
	totalTax := decimal.Zero
	var bands []domain.BandTax

	for _, band := range schedule.SortedByUpperBound() {
		if remaining.Sign() <= 0 {
			break
		}

		var amount decimal.Decimal
		if band.Unbounded() {
			amount = remaining
		} else {
			width := band.UpperBound.Sub(lower)
			if width.Sign() < 0 {
				width = decimal.Zero
			}
			amount = decimal.Min(remaining, width)
		}

		if amount.Sign() > 0 {
			tax := amount.Mul(band.RatePercent).Div(hundred)
			entry := domain.BandTax{
				LowerBound:  lower,
				Amount:      amount,
				RatePercent: band.RatePercent,
				Tax:         tax,
			}
			if !band.Unbounded() {
				u := *band.UpperBound
				entry.UpperBound = &u
			}
			bands = append(bands, entry)
			totalTax = totalTax.Add(tax)
			remaining = remaining.Sub(amount)
		}

		if band.Unbounded() {
			break
		}
		if band.UpperBound.GreaterThan(lower) {
			lower = *band.UpperBound
		}
	}

	return bands, totalTax
}
