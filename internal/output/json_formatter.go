package output

import (
	"encoding/json"

	"github.com/taxgo/income-tax-calculator/internal/domain"
)

// JSONFormatter serializes the tax result as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.TaxResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
