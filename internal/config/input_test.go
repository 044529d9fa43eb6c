package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNormalizesRawValues(t *testing.T) {
	data := []byte(`
income:
  salary: "400,000 THB"
  bonus: 20000
  other_income: "10000"
deductions:
  spouse_has_no_income: true
  num_children: "2.9"
  father:
    present: true
    age: "65"
    annual_income: "20,000"
  provident_fund: "not a number"
  social_security: "-500"
  donations: 15000
`)

	parser := NewInputParser()
	in, err := parser.Parse(data)
	require.NoError(t, err)

	assert.True(t, in.Income.Salary.Equal(decimal.NewFromInt(400000)))
	assert.True(t, in.Income.Bonus.Equal(decimal.NewFromInt(20000)))
	assert.True(t, in.Income.OtherIncome.Equal(decimal.NewFromInt(10000)))

	assert.True(t, in.Deductions.SpouseHasNoIncome)
	assert.Equal(t, int64(2), in.Deductions.NumChildren, "fractional counts floor")
	assert.True(t, in.Deductions.Father.Present)
	assert.Equal(t, 65, in.Deductions.Father.Age)
	assert.True(t, in.Deductions.Father.AnnualIncome.Equal(decimal.NewFromInt(20000)))
	assert.True(t, in.Deductions.ProvidentFund.IsZero(), "malformed numbers degrade to zero")
	assert.True(t, in.Deductions.SocialSecurity.Equal(decimal.NewFromInt(-500)),
		"normalization preserves sign; the engine clamps")
	assert.True(t, in.Deductions.Donations.Equal(decimal.NewFromInt(15000)))

	assert.Equal(t, SchedulePassthrough, in.Policy)
	assert.Len(t, in.Schedule, 6, "missing schedule falls back to the default")
}

func TestParseSchedule(t *testing.T) {
	data := []byte(`
schedule:
  - upper_bound: "150,000"
    rate_percent: 0
  - upper_bound: 500000
    rate_percent: "10"
  - upper_bound: unbounded
    rate_percent: 35
`)

	in, err := NewInputParser().Parse(data)
	require.NoError(t, err)

	require.Len(t, in.Schedule, 3)
	assert.True(t, in.Schedule[0].UpperBound.Equal(decimal.NewFromInt(150000)))
	assert.True(t, in.Schedule[1].RatePercent.Equal(decimal.NewFromInt(10)))
	assert.Nil(t, in.Schedule[2].UpperBound)
	assert.True(t, in.Schedule[2].RatePercent.Equal(decimal.NewFromInt(35)))
}

func TestParseBound(t *testing.T) {
	tests := []struct {
		raw       string
		unbounded bool
	}{
		{"unbounded", true},
		{"Infinity", true},
		{"inf", true},
		{"~", true},
		{"", true},
		{"120000", false},
		{"1,000,000", false},
	}
	for _, tt := range tests {
		got := ParseBound(tt.raw)
		if tt.unbounded {
			assert.Nil(t, got, "ParseBound(%q)", tt.raw)
		} else {
			assert.NotNil(t, got, "ParseBound(%q)", tt.raw)
		}
	}
}

func TestStrictPolicyRejectsDegenerateSchedules(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "duplicate bounds",
			data: `
schedule_policy: strict
schedule:
  - upper_bound: 120000
    rate_percent: 0
  - upper_bound: 120000
    rate_percent: 5
`,
		},
		{
			name: "two unbounded bands",
			data: `
schedule_policy: strict
schedule:
  - upper_bound: unbounded
    rate_percent: 10
  - upper_bound: unbounded
    rate_percent: 20
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInputParser().Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestPassthroughPolicyAcceptsDegenerateSchedules(t *testing.T) {
	data := []byte(`
schedule:
  - upper_bound: 120000
    rate_percent: 0
  - upper_bound: 120000
    rate_percent: 5
`)
	_, err := NewInputParser().Parse(data)
	assert.NoError(t, err, "passthrough is the default and never validates")
}

func TestUnknownPolicyFails(t *testing.T) {
	_, err := NewInputParser().Parse([]byte(`schedule_policy: repair`))
	assert.Error(t, err)
}

func TestDeductionRulesOverride(t *testing.T) {
	data := []byte(`
deduction_rules:
  personal_allowance: "100,000"
  parent_min_age: 65
`)

	in, err := NewInputParser().Parse(data)
	require.NoError(t, err)

	assert.True(t, in.Rules.PersonalAllowance.Equal(decimal.NewFromInt(100000)))
	assert.Equal(t, 65, in.Rules.ParentMinAge)
	// Unspecified fields keep their defaults.
	assert.True(t, in.Rules.SocialSecurityCap.Equal(decimal.NewFromInt(9000)))
	assert.True(t, in.Rules.RetirementCombinedCap.Equal(decimal.NewFromInt(500000)))
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte("income:\n  salary: 250000\n"), 0644))

	in, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.True(t, in.Income.Salary.Equal(decimal.NewFromInt(250000)))

	_, err = NewInputParser().LoadFromFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestParseRejectsInvalidYAML(t *testing.T) {
	_, err := NewInputParser().Parse([]byte("income: [unclosed"))
	assert.Error(t, err)
}
