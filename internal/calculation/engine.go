package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxgo/income-tax-calculator/internal/domain"
	"github.com/taxgo/income-tax-calculator/pkg/money"
)

// CalculationEngine composes the deduction engine and the progressive
// tax calculator into the full pipeline:
//
//	inputs -> deductions -> gross - deductions -> tax -> aggregate result
//
// Every invocation is independent; the engine holds configuration only.
type CalculationEngine struct {
	Deductions *DeductionEngine
	Tax        *ProgressiveTaxCalculator
	Logger     Logger
}

// NewCalculationEngine creates an engine with canonical deduction rules.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Deductions: NewDeductionEngine(),
		Tax:        NewProgressiveTaxCalculator(),
		Logger:     NopLogger{},
	}
}

// NewCalculationEngineWithRules creates an engine with configurable
// deduction rules.
func NewCalculationEngineWithRules(rules domain.DeductionRules) *CalculationEngine {
	return &CalculationEngine{
		Deductions: NewDeductionEngineWithRules(rules),
		Tax:        NewProgressiveTaxCalculator(),
		Logger:     NopLogger{},
	}
}

// SetLogger sets the engine logger. A nil logger resets to no-op.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Calculate runs the full pipeline for one set of inputs against the
// given schedule. The schedule is treated as immutable for the
// duration of the call; callers that edit schedules concurrently must
// pass a snapshot.
func (ce *CalculationEngine) Calculate(income domain.IncomeInputs, ded domain.DeductionInputs, schedule domain.Schedule) *domain.TaxResult {
	gross := income.Gross()
	breakdown := ce.Deductions.ComputeDeductions(income, ded)

	taxable := money.ClampZero(gross.Sub(breakdown.TotalDeductions))
	bands, totalTax := ce.Tax.ComputeTax(taxable, schedule)

	ce.Logger.Debugf("calculated: gross=%s deductions=%s taxable=%s tax=%s",
		gross, breakdown.TotalDeductions, taxable, totalTax)

	return &domain.TaxResult{
		Gross:                gross,
		TaxableIncome:        taxable,
		Bands:                bands,
		TotalTax:             totalTax,
		NetIncome:            gross.Sub(totalTax),
		EffectiveRatePercent: effectiveRate(totalTax, gross),
		Deductions:           breakdown,
	}
}

// effectiveRate returns totalTax/gross as a percentage, zero when
// gross is zero.
func effectiveRate(totalTax, gross decimal.Decimal) decimal.Decimal {
	if gross.Sign() <= 0 {
		return decimal.Zero
	}
	return totalTax.Div(gross).Mul(hundred)
}
