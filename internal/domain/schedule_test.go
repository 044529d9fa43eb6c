package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedByUpperBound(t *testing.T) {
	u := func(v int64) *decimal.Decimal {
		d := decimal.NewFromInt(v)
		return &d
	}

	s := Schedule{
		{UpperBound: nil, RatePercent: decimal.NewFromInt(25)},
		{UpperBound: u(500000), RatePercent: decimal.NewFromInt(10)},
		{UpperBound: u(120000), RatePercent: decimal.Zero},
	}

	sorted := s.SortedByUpperBound()

	require.Len(t, sorted, 3)
	assert.True(t, sorted[0].UpperBound.Equal(decimal.NewFromInt(120000)))
	assert.True(t, sorted[1].UpperBound.Equal(decimal.NewFromInt(500000)))
	assert.Nil(t, sorted[2].UpperBound, "unbounded sorts after every finite bound")

	// The input order is untouched.
	assert.Nil(t, s[0].UpperBound)
}

func TestScheduleCloneIsDeep(t *testing.T) {
	s := DefaultSchedule()
	c := s.Clone()

	*c[0].UpperBound = decimal.NewFromInt(1)
	assert.True(t, s[0].UpperBound.Equal(decimal.NewFromInt(120000)))
}

func TestDefaultScheduleShape(t *testing.T) {
	s := DefaultSchedule()
	require.Len(t, s, 6)
	assert.True(t, s[0].RatePercent.IsZero())
	assert.Nil(t, s[5].UpperBound)
	assert.True(t, s[5].RatePercent.Equal(decimal.NewFromInt(25)))
}

func TestGross(t *testing.T) {
	in := IncomeInputs{
		Salary:      decimal.NewFromInt(400000),
		Bonus:       decimal.NewFromInt(20000),
		OtherIncome: decimal.NewFromInt(10000),
	}
	assert.True(t, in.Gross().Equal(decimal.NewFromInt(430000)))
}
