package domain

import (
	"github.com/shopspring/decimal"
)

// DeductionBreakdown itemizes every allowance and capped deduction
// category plus the derived totals. Every field is non-negative.
type DeductionBreakdown struct {
	Personal           decimal.Decimal `yaml:"personal" json:"personal"`
	Spouse             decimal.Decimal `yaml:"spouse" json:"spouse"`
	Children           decimal.Decimal `yaml:"children" json:"children"`
	Parents            decimal.Decimal `yaml:"parents" json:"parents"`
	DisabledDependents decimal.Decimal `yaml:"disabled_dependents" json:"disabled_dependents"`

	SocialSecurity      decimal.Decimal `yaml:"social_security" json:"social_security"`
	MortgageInterest    decimal.Decimal `yaml:"mortgage_interest" json:"mortgage_interest"`
	LifeHealthInsurance decimal.Decimal `yaml:"life_health_insurance" json:"life_health_insurance"`
	Retirement          decimal.Decimal `yaml:"retirement" json:"retirement"`
	Donations           decimal.Decimal `yaml:"donations" json:"donations"`

	TotalAllowances decimal.Decimal `yaml:"total_allowances" json:"total_allowances"`
	TotalOther      decimal.Decimal `yaml:"total_other" json:"total_other"`
	TotalDeductions decimal.Decimal `yaml:"total_deductions" json:"total_deductions"`
}

// BandTax is one line of the per-band tax breakdown. Bands in which no
// income was taxed do not appear.
type BandTax struct {
	LowerBound  decimal.Decimal  `yaml:"lower_bound" json:"lower_bound"`
	UpperBound  *decimal.Decimal `yaml:"upper_bound,omitempty" json:"upper_bound,omitempty"`
	Amount      decimal.Decimal  `yaml:"amount" json:"amount"`
	RatePercent decimal.Decimal  `yaml:"rate_percent" json:"rate_percent"`
	Tax         decimal.Decimal  `yaml:"tax" json:"tax"`
}

// TaxResult is the complete output of one calculation, suitable for
// direct rendering.
type TaxResult struct {
	Gross                decimal.Decimal    `yaml:"gross" json:"gross"`
	TaxableIncome        decimal.Decimal    `yaml:"taxable_income" json:"taxable_income"`
	Bands                []BandTax          `yaml:"bands" json:"bands"`
	TotalTax             decimal.Decimal    `yaml:"total_tax" json:"total_tax"`
	NetIncome            decimal.Decimal    `yaml:"net_income" json:"net_income"`
	EffectiveRatePercent decimal.Decimal    `yaml:"effective_rate_percent" json:"effective_rate_percent"`
	Deductions           DeductionBreakdown `yaml:"deductions" json:"deductions"`
}
