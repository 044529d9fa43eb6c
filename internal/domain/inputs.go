package domain

import (
	"github.com/shopspring/decimal"
)

// IncomeInputs holds the three income figures a calculation starts from.
// Amounts are already normalized; negative values never reach this
// struct (the config layer clamps them).
type IncomeInputs struct {
	Salary      decimal.Decimal `yaml:"salary" json:"salary"`
	Bonus       decimal.Decimal `yaml:"bonus" json:"bonus"`
	OtherIncome decimal.Decimal `yaml:"other_income" json:"other_income"`
}

// Gross returns the total gross income.
func (in IncomeInputs) Gross() decimal.Decimal {
	return in.Salary.Add(in.Bonus).Add(in.OtherIncome)
}

// DependentInfo describes one dependent parent. Father and mother are
// evaluated independently.
type DependentInfo struct {
	Present      bool            `yaml:"present" json:"present"`
	Age          int             `yaml:"age" json:"age"`
	AnnualIncome decimal.Decimal `yaml:"annual_income" json:"annual_income"`
}

// DeductionInputs holds every deduction-relevant input for one
// calculation. All monetary amounts are normalized, counts are whole
// and non-negative.
type DeductionInputs struct {
	SpouseHasNoIncome     bool          `yaml:"spouse_has_no_income" json:"spouse_has_no_income"`
	NumChildren           int64         `yaml:"num_children" json:"num_children"`
	NumDisabledDependents int64         `yaml:"num_disabled_dependents" json:"num_disabled_dependents"`
	Father                DependentInfo `yaml:"father" json:"father"`
	Mother                DependentInfo `yaml:"mother" json:"mother"`

	ProvidentFund    decimal.Decimal `yaml:"provident_fund" json:"provident_fund"`
	RetirementFund   decimal.Decimal `yaml:"retirement_fund" json:"retirement_fund"`
	PensionInsurance decimal.Decimal `yaml:"pension_insurance" json:"pension_insurance"`
	SocialSecurity   decimal.Decimal `yaml:"social_security" json:"social_security"`
	MortgageInterest decimal.Decimal `yaml:"mortgage_interest" json:"mortgage_interest"`
	LifeInsurance    decimal.Decimal `yaml:"life_insurance" json:"life_insurance"`
	HealthInsurance  decimal.Decimal `yaml:"health_insurance" json:"health_insurance"`
	Donations        decimal.Decimal `yaml:"donations" json:"donations"`
}
