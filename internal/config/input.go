package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/taxgo/income-tax-calculator/internal/domain"
	"github.com/taxgo/income-tax-calculator/pkg/money"
)

// SchedulePolicy controls how a user-edited schedule with gaps,
// overlaps, or duplicate bounds is handled at load time.
type SchedulePolicy string

const (
	// SchedulePassthrough hands the schedule to the engine as-is;
	// gaps silently tax nothing and duplicate bounds collapse to
	// zero-width bands. This is the default.
	SchedulePassthrough SchedulePolicy = "passthrough"
	// ScheduleStrict rejects schedules whose sorted bounds are not
	// strictly increasing or that contain more than one unbounded band.
	ScheduleStrict SchedulePolicy = "strict"
)

// rawDependent mirrors DependentInfo with unparsed scalar fields.
type rawDependent struct {
	Present      bool   `yaml:"present"`
	Age          string `yaml:"age"`
	AnnualIncome string `yaml:"annual_income"`
}

// rawInput is the on-disk shape of an input file. Every numeric field
// is read as a raw scalar and normalized, so "400,000 THB" and 400000
// both work and malformed values degrade to zero rather than erroring.
type rawInput struct {
	Income struct {
		Salary      string `yaml:"salary"`
		Bonus       string `yaml:"bonus"`
		OtherIncome string `yaml:"other_income"`
	} `yaml:"income"`
	Deductions struct {
		SpouseHasNoIncome     bool         `yaml:"spouse_has_no_income"`
		NumChildren           string       `yaml:"num_children"`
		NumDisabledDependents string       `yaml:"num_disabled_dependents"`
		Father                rawDependent `yaml:"father"`
		Mother                rawDependent `yaml:"mother"`
		ProvidentFund         string       `yaml:"provident_fund"`
		RetirementFund        string       `yaml:"retirement_fund"`
		PensionInsurance      string       `yaml:"pension_insurance"`
		SocialSecurity        string       `yaml:"social_security"`
		MortgageInterest      string       `yaml:"mortgage_interest"`
		LifeInsurance         string       `yaml:"life_insurance"`
		HealthInsurance       string       `yaml:"health_insurance"`
		Donations             string       `yaml:"donations"`
	} `yaml:"deductions"`
	SchedulePolicy string    `yaml:"schedule_policy"`
	Schedule       []rawBand `yaml:"schedule"`
	DeductionRules *rawRules `yaml:"deduction_rules"`
}

type rawBand struct {
	UpperBound  string `yaml:"upper_bound"`
	RatePercent string `yaml:"rate_percent"`
}

type rawRules struct {
	PersonalAllowance       string `yaml:"personal_allowance"`
	SpouseAllowance         string `yaml:"spouse_allowance"`
	ChildAllowance          string `yaml:"child_allowance"`
	ParentAllowance         string `yaml:"parent_allowance"`
	DisabledAllowance       string `yaml:"disabled_allowance"`
	ParentMinAge            int    `yaml:"parent_min_age"`
	ParentIncomeLimit       string `yaml:"parent_income_limit"`
	SocialSecurityCap       string `yaml:"social_security_cap"`
	MortgageCap             string `yaml:"mortgage_cap"`
	LifeInsuranceCap        string `yaml:"life_insurance_cap"`
	HealthInsuranceCap      string `yaml:"health_insurance_cap"`
	LifeHealthCombinedCap   string `yaml:"life_health_combined_cap"`
	ProvidentFundSalaryRate string `yaml:"provident_fund_salary_rate"`
	RetirementCombinedCap   string `yaml:"retirement_combined_cap"`
}

// Input is a fully normalized calculation input.
type Input struct {
	Income     domain.IncomeInputs
	Deductions domain.DeductionInputs
	Schedule   domain.Schedule
	Rules      domain.DeductionRules
	Policy     SchedulePolicy
}

// InputParser handles parsing of input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a calculation input from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*Input, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse parses and normalizes YAML input data.
func (ip *InputParser) Parse(data []byte) (*Input, error) {
	var raw rawInput
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	policy, err := parsePolicy(raw.SchedulePolicy)
	if err != nil {
		return nil, err
	}

	in := &Input{
		Income: domain.IncomeInputs{
			Salary:      money.ClampZero(money.Normalize(raw.Income.Salary)),
			Bonus:       money.ClampZero(money.Normalize(raw.Income.Bonus)),
			OtherIncome: money.ClampZero(money.Normalize(raw.Income.OtherIncome)),
		},
		Deductions: domain.DeductionInputs{
			SpouseHasNoIncome:     raw.Deductions.SpouseHasNoIncome,
			NumChildren:           money.NormalizeCount(raw.Deductions.NumChildren),
			NumDisabledDependents: money.NormalizeCount(raw.Deductions.NumDisabledDependents),
			Father:                normalizeDependent(raw.Deductions.Father),
			Mother:                normalizeDependent(raw.Deductions.Mother),
			ProvidentFund:         money.Normalize(raw.Deductions.ProvidentFund),
			RetirementFund:        money.Normalize(raw.Deductions.RetirementFund),
			PensionInsurance:      money.Normalize(raw.Deductions.PensionInsurance),
			SocialSecurity:        money.Normalize(raw.Deductions.SocialSecurity),
			MortgageInterest:      money.Normalize(raw.Deductions.MortgageInterest),
			LifeInsurance:         money.Normalize(raw.Deductions.LifeInsurance),
			HealthInsurance:       money.Normalize(raw.Deductions.HealthInsurance),
			Donations:             money.Normalize(raw.Deductions.Donations),
		},
		Policy: policy,
	}

	if len(raw.Schedule) == 0 {
		in.Schedule = domain.DefaultSchedule()
	} else {
		in.Schedule = make(domain.Schedule, 0, len(raw.Schedule))
		for _, rb := range raw.Schedule {
			in.Schedule = append(in.Schedule, domain.Band{
				UpperBound:  ParseBound(rb.UpperBound),
				RatePercent: money.ClampZero(money.Normalize(rb.RatePercent)),
			})
		}
	}

	if raw.DeductionRules != nil {
		in.Rules = normalizeRules(*raw.DeductionRules)
	} else {
		in.Rules = domain.DefaultDeductionRules()
	}

	if policy == ScheduleStrict {
		if err := ValidateSchedule(in.Schedule); err != nil {
			return nil, fmt.Errorf("schedule validation failed: %w", err)
		}
	}

	return in, nil
}

// ParseBound parses a raw upper-bound value. The explicit unbounded
// tokens ("unbounded", "inf", "infinity", "~", empty) yield nil; any
// other value is normalized like a monetary amount.
func ParseBound(raw string) *decimal.Decimal {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "~", "null", "unbounded", "inf", "infinity":
		return nil
	}
	d := money.Normalize(raw)
	return &d
}

// ValidateSchedule enforces the strict schedule policy: sorted upper
// bounds must be strictly increasing and at most one band may be
// unbounded.
func ValidateSchedule(s domain.Schedule) error {
	sorted := s.SortedByUpperBound()
	unboundedSeen := 0
	var prev *decimal.Decimal
	for i, b := range sorted {
		if b.Unbounded() {
			unboundedSeen++
			if unboundedSeen > 1 {
				return fmt.Errorf("schedule has %d unbounded bands, at most 1 allowed", unboundedSeen)
			}
			continue
		}
		if b.UpperBound.Sign() <= 0 {
			return fmt.Errorf("band %d has non-positive upper bound %s", i, b.UpperBound)
		}
		if prev != nil && !b.UpperBound.GreaterThan(*prev) {
			return fmt.Errorf("band %d upper bound %s does not exceed previous bound %s", i, b.UpperBound, prev)
		}
		prev = b.UpperBound
	}
	return nil
}

func parsePolicy(raw string) (SchedulePolicy, error) {
	switch SchedulePolicy(strings.ToLower(strings.TrimSpace(raw))) {
	case "", SchedulePassthrough:
		return SchedulePassthrough, nil
	case ScheduleStrict:
		return ScheduleStrict, nil
	default:
		return "", fmt.Errorf("unknown schedule_policy %q (want passthrough or strict)", raw)
	}
}

func normalizeDependent(raw rawDependent) domain.DependentInfo {
	return domain.DependentInfo{
		Present:      raw.Present,
		Age:          int(money.NormalizeCount(raw.Age)),
		AnnualIncome: money.ClampZero(money.Normalize(raw.AnnualIncome)),
	}
}

func normalizeRules(raw rawRules) domain.DeductionRules {
	defaults := domain.DefaultDeductionRules()
	rules := domain.DeductionRules{
		PersonalAllowance:       amountOr(raw.PersonalAllowance, defaults.PersonalAllowance),
		SpouseAllowance:         amountOr(raw.SpouseAllowance, defaults.SpouseAllowance),
		ChildAllowance:          amountOr(raw.ChildAllowance, defaults.ChildAllowance),
		ParentAllowance:         amountOr(raw.ParentAllowance, defaults.ParentAllowance),
		DisabledAllowance:       amountOr(raw.DisabledAllowance, defaults.DisabledAllowance),
		ParentMinAge:            defaults.ParentMinAge,
		ParentIncomeLimit:       amountOr(raw.ParentIncomeLimit, defaults.ParentIncomeLimit),
		SocialSecurityCap:       amountOr(raw.SocialSecurityCap, defaults.SocialSecurityCap),
		MortgageCap:             amountOr(raw.MortgageCap, defaults.MortgageCap),
		LifeInsuranceCap:        amountOr(raw.LifeInsuranceCap, defaults.LifeInsuranceCap),
		HealthInsuranceCap:      amountOr(raw.HealthInsuranceCap, defaults.HealthInsuranceCap),
		LifeHealthCombinedCap:   amountOr(raw.LifeHealthCombinedCap, defaults.LifeHealthCombinedCap),
		ProvidentFundSalaryRate: amountOr(raw.ProvidentFundSalaryRate, defaults.ProvidentFundSalaryRate),
		RetirementCombinedCap:   amountOr(raw.RetirementCombinedCap, defaults.RetirementCombinedCap),
	}
	if raw.ParentMinAge > 0 {
		rules.ParentMinAge = raw.ParentMinAge
	}
	return rules
}

// amountOr normalizes a raw rule amount, keeping the default when the
// field is absent.
func amountOr(raw string, def decimal.Decimal) decimal.Decimal {
	if strings.TrimSpace(raw) == "" {
		return def
	}
	return money.ClampZero(money.Normalize(raw))
}
