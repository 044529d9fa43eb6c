package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Band is one bracket of a progressive rate schedule. A nil UpperBound
// means the band is unbounded above; at most one such band is
// meaningful, and it sorts after every finite band.
type Band struct {
	// ID is an opaque caller-assigned identity used by schedule
	// editing operations. The calculators ignore it.
	ID          string           `yaml:"id,omitempty" json:"id,omitempty"`
	UpperBound  *decimal.Decimal `yaml:"upper_bound,omitempty" json:"upper_bound,omitempty"`
	RatePercent decimal.Decimal  `yaml:"rate_percent" json:"rate_percent"`
}

// Unbounded reports whether the band has no upper bound.
func (b Band) Unbounded() bool { return b.UpperBound == nil }

// Clone returns a deep copy of the band.
func (b Band) Clone() Band {
	c := b
	if b.UpperBound != nil {
		u := *b.UpperBound
		c.UpperBound = &u
	}
	return c
}

// Schedule is an ordered sequence of bands. The calculators sort
// defensively, so callers may hand over bands in any order.
type Schedule []Band

// Clone returns a deep copy of the schedule.
func (s Schedule) Clone() Schedule {
	out := make(Schedule, len(s))
	for i, b := range s {
		out[i] = b.Clone()
	}
	return out
}

// SortedByUpperBound returns a copy sorted ascending by upper bound,
// with unbounded bands after every finite one. The sort is stable so
// degenerate duplicate bounds keep their input order.
func (s Schedule) SortedByUpperBound() Schedule {
	out := s.Clone()
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch {
		case a.Unbounded():
			return false
		case b.Unbounded():
			return true
		default:
			return a.UpperBound.LessThan(*b.UpperBound)
		}
	})
	return out
}
