// Package money provides normalization and helper operations for the
// monetary amounts flowing through the tax calculators.
//
// All amounts are shopspring decimals. Raw values arriving from a form
// or a config file may contain currency symbols, thousands separators,
// or be empty; Normalize reduces all of them to a usable decimal and
// never fails.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Normalize converts an arbitrary raw value into a decimal amount.
// Every rune that is not a digit, '.', or '-' is stripped before
// parsing; anything that still does not parse normalizes to zero.
// The sign is preserved — callers that need non-negative amounts
// apply ClampZero afterwards.
func Normalize(raw string) decimal.Decimal {
	cleaned := stripNonNumeric(raw)
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// NormalizeCount converts a raw value into a whole non-negative count.
// Fractional counts are floored; negative or unparseable values
// normalize to zero.
func NormalizeCount(raw string) int64 {
	d := Normalize(raw)
	if d.Sign() <= 0 {
		return 0
	}
	return d.Floor().IntPart()
}

// ClampZero floors an amount at zero.
func ClampZero(d decimal.Decimal) decimal.Decimal {
	if d.Sign() < 0 {
		return decimal.Zero
	}
	return d
}

// Cap limits an amount to the given ceiling.
func Cap(d, ceiling decimal.Decimal) decimal.Decimal {
	return decimal.Min(d, ceiling)
}

func stripNonNumeric(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
