package domain

import (
	"github.com/shopspring/decimal"
)

// DeductionRules holds every allowance amount and cap the deduction
// engine applies. All fields are overridable from the input file; a
// zero-valued struct falls back to the canonical defaults.
type DeductionRules struct {
	PersonalAllowance decimal.Decimal `yaml:"personal_allowance" json:"personal_allowance"`
	SpouseAllowance   decimal.Decimal `yaml:"spouse_allowance" json:"spouse_allowance"`
	ChildAllowance    decimal.Decimal `yaml:"child_allowance" json:"child_allowance"`
	ParentAllowance   decimal.Decimal `yaml:"parent_allowance" json:"parent_allowance"`
	DisabledAllowance decimal.Decimal `yaml:"disabled_allowance" json:"disabled_allowance"`

	// Parents qualify when present, at least ParentMinAge years old,
	// and earning no more than ParentIncomeLimit.
	ParentMinAge      int             `yaml:"parent_min_age" json:"parent_min_age"`
	ParentIncomeLimit decimal.Decimal `yaml:"parent_income_limit" json:"parent_income_limit"`

	SocialSecurityCap decimal.Decimal `yaml:"social_security_cap" json:"social_security_cap"`
	MortgageCap       decimal.Decimal `yaml:"mortgage_cap" json:"mortgage_cap"`

	LifeInsuranceCap      decimal.Decimal `yaml:"life_insurance_cap" json:"life_insurance_cap"`
	HealthInsuranceCap    decimal.Decimal `yaml:"health_insurance_cap" json:"health_insurance_cap"`
	LifeHealthCombinedCap decimal.Decimal `yaml:"life_health_combined_cap" json:"life_health_combined_cap"`

	// Provident fund contributions are capped at the lesser of
	// ProvidentFundSalaryRate × salary and RetirementCombinedCap; the
	// retirement bucket as a whole is re-capped at RetirementCombinedCap.
	ProvidentFundSalaryRate decimal.Decimal `yaml:"provident_fund_salary_rate" json:"provident_fund_salary_rate"`
	RetirementCombinedCap   decimal.Decimal `yaml:"retirement_combined_cap" json:"retirement_combined_cap"`
}

// DefaultDeductionRules returns the canonical rule set.
func DefaultDeductionRules() DeductionRules {
	return DeductionRules{
		PersonalAllowance:       decimal.NewFromInt(60000),
		SpouseAllowance:         decimal.NewFromInt(60000),
		ChildAllowance:          decimal.NewFromInt(30000),
		ParentAllowance:         decimal.NewFromInt(30000),
		DisabledAllowance:       decimal.NewFromInt(60000),
		ParentMinAge:            60,
		ParentIncomeLimit:       decimal.NewFromInt(30000),
		SocialSecurityCap:       decimal.NewFromInt(9000),
		MortgageCap:             decimal.NewFromInt(100000),
		LifeInsuranceCap:        decimal.NewFromInt(100000),
		HealthInsuranceCap:      decimal.NewFromInt(25000),
		LifeHealthCombinedCap:   decimal.NewFromInt(100000),
		ProvidentFundSalaryRate: decimal.NewFromFloat(0.15),
		RetirementCombinedCap:   decimal.NewFromInt(500000),
	}
}

// DefaultSchedule returns the canonical progressive rate schedule.
func DefaultSchedule() Schedule {
	bound := func(v int64) *decimal.Decimal {
		d := decimal.NewFromInt(v)
		return &d
	}
	return Schedule{
		{UpperBound: bound(120000), RatePercent: decimal.Zero},
		{UpperBound: bound(300000), RatePercent: decimal.NewFromInt(5)},
		{UpperBound: bound(500000), RatePercent: decimal.NewFromInt(10)},
		{UpperBound: bound(750000), RatePercent: decimal.NewFromInt(15)},
		{UpperBound: bound(1000000), RatePercent: decimal.NewFromInt(20)},
		{UpperBound: nil, RatePercent: decimal.NewFromInt(25)},
	}
}
