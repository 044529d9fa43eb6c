package output

import (
	"bytes"
	"encoding/csv"

	"github.com/taxgo/income-tax-calculator/internal/domain"
)

// CSVFormatter emits one row per consumed tax band plus a summary row.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(result *domain.TaxResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"LowerBound", "UpperBound", "RatePercent", "Amount", "Tax"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, band := range result.Bands {
		upper := ""
		if band.UpperBound != nil {
			upper = band.UpperBound.StringFixed(2)
		}
		row := []string{
			band.LowerBound.StringFixed(2),
			upper,
			band.RatePercent.StringFixed(2),
			band.Amount.StringFixed(2),
			band.Tax.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	summary := []string{
		"TOTAL",
		"",
		result.EffectiveRatePercent.StringFixed(2),
		result.TaxableIncome.StringFixed(2),
		result.TotalTax.StringFixed(2),
	}
	if err := w.Write(summary); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
