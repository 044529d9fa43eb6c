package output

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxgo/income-tax-calculator/internal/domain"
)

func sampleResult() *domain.TaxResult {
	upper := decimal.NewFromInt(300000)
	return &domain.TaxResult{
		Gross:         decimal.NewFromInt(430000),
		TaxableIncome: decimal.NewFromInt(370000),
		Bands: []domain.BandTax{
			{
				LowerBound:  decimal.NewFromInt(120000),
				UpperBound:  &upper,
				Amount:      decimal.NewFromInt(180000),
				RatePercent: decimal.NewFromInt(5),
				Tax:         decimal.NewFromInt(9000),
			},
			{
				LowerBound:  decimal.NewFromInt(300000),
				Amount:      decimal.NewFromInt(70000),
				RatePercent: decimal.NewFromInt(10),
				Tax:         decimal.NewFromInt(7000),
			},
		},
		TotalTax:             decimal.NewFromInt(16000),
		NetIncome:            decimal.NewFromInt(414000),
		EffectiveRatePercent: decimal.NewFromFloat(3.72),
		Deductions: domain.DeductionBreakdown{
			Personal:        decimal.NewFromInt(60000),
			TotalAllowances: decimal.NewFromInt(60000),
			TotalDeductions: decimal.NewFromInt(60000),
		},
	}
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"console", "console"},
		{"CONSOLE", "console"},
		{"text", "console"},
		{"table", "console"},
		{"json", "json"},
		{"csv", "csv"},
	}
	for _, tt := range tests {
		f := GetFormatterByName(tt.name)
		require.NotNil(t, f, "formatter %q", tt.name)
		assert.Equal(t, tt.expected, f.Name())
	}
	assert.Nil(t, GetFormatterByName("pdf"))
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(sampleResult())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "Gross Income:      430000.00")
	assert.Contains(t, out, "Total Tax:         16000.00")
	assert.Contains(t, out, "Net Income:        414000.00")
	assert.Contains(t, out, "Effective Rate:    3.72%")
	assert.Contains(t, out, "∞", "unbounded band renders an infinity marker")
}

func TestJSONFormatter(t *testing.T) {
	data, err := JSONFormatter{}.Format(sampleResult())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "16000", decoded["total_tax"])
	assert.Equal(t, "430000", decoded["gross"])

	bands, ok := decoded["bands"].([]any)
	require.True(t, ok)
	assert.Len(t, bands, 2)
	last := bands[1].(map[string]any)
	_, hasUpper := last["upper_bound"]
	assert.False(t, hasUpper, "unbounded upper bound is omitted, not null")
}

func TestCSVFormatter(t *testing.T) {
	data, err := CSVFormatter{}.Format(sampleResult())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 4) // header + 2 bands + summary
	assert.Equal(t, []string{"LowerBound", "UpperBound", "RatePercent", "Amount", "Tax"}, records[0])
	assert.Equal(t, "", records[2][1], "unbounded band has an empty upper bound")
	assert.Equal(t, "TOTAL", records[3][0])
	assert.Equal(t, "16000.00", records[3][4])
}

func TestWriteFormatted(t *testing.T) {
	oldwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(oldwd) })

	name, err := WriteFormatted(CSVFormatter{}, sampleResult(), "csv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "tax_report_"))
	assert.True(t, strings.HasSuffix(name, ".csv"))

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Contains(t, string(data), "TOTAL")
}

func TestFormatterFuncAdapter(t *testing.T) {
	f := FormatterFunc{ID: "probe", F: func(r *domain.TaxResult) ([]byte, error) {
		return []byte(r.TotalTax.String()), nil
	}}
	assert.Equal(t, "probe", f.Name())
	data, err := f.Format(sampleResult())
	require.NoError(t, err)
	assert.Equal(t, "16000", string(data))
}
