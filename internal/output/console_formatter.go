package output

import (
	"bytes"
	"fmt"

	"github.com/taxgo/income-tax-calculator/internal/domain"
)

// ConsoleFormatter renders the full tax result as a plain-text report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.TaxResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "INCOME TAX CALCULATION")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Gross Income:      %s\n", FormatCurrency(result.Gross))
	fmt.Fprintln(&buf)

	d := result.Deductions
	fmt.Fprintln(&buf, "Allowances")
	fmt.Fprintf(&buf, "  Personal:            %s\n", FormatCurrency(d.Personal))
	fmt.Fprintf(&buf, "  Spouse:              %s\n", FormatCurrency(d.Spouse))
	fmt.Fprintf(&buf, "  Children:            %s\n", FormatCurrency(d.Children))
	fmt.Fprintf(&buf, "  Parents:             %s\n", FormatCurrency(d.Parents))
	fmt.Fprintf(&buf, "  Disabled dependents: %s\n", FormatCurrency(d.DisabledDependents))
	fmt.Fprintln(&buf, "Deductions")
	fmt.Fprintf(&buf, "  Social security:     %s\n", FormatCurrency(d.SocialSecurity))
	fmt.Fprintf(&buf, "  Mortgage interest:   %s\n", FormatCurrency(d.MortgageInterest))
	fmt.Fprintf(&buf, "  Life/health ins.:    %s\n", FormatCurrency(d.LifeHealthInsurance))
	fmt.Fprintf(&buf, "  Retirement:          %s\n", FormatCurrency(d.Retirement))
	fmt.Fprintf(&buf, "  Donations:           %s\n", FormatCurrency(d.Donations))
	fmt.Fprintf(&buf, "Total Deductions:  %s\n", FormatCurrency(d.TotalDeductions))
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "Taxable Income:    %s\n", FormatCurrency(result.TaxableIncome))
	for _, band := range result.Bands {
		fmt.Fprintf(&buf, "  %s - %s @ %s: %s on %s\n",
			FormatCurrency(band.LowerBound),
			FormatBound(band.UpperBound),
			FormatPercentage(band.RatePercent),
			FormatCurrency(band.Tax),
			FormatCurrency(band.Amount),
		)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Total Tax:         %s\n", FormatCurrency(result.TotalTax))
	fmt.Fprintf(&buf, "Net Income:        %s\n", FormatCurrency(result.NetIncome))
	fmt.Fprintf(&buf, "Effective Rate:    %s\n", FormatPercentage(result.EffectiveRatePercent))
	return buf.Bytes(), nil
}
