// Package schedule owns the user-editable progressive rate schedule.
//
// The calculators never mutate a schedule; all editing happens here,
// keyed by an opaque band id, and Bands hands out deep copies so a
// running calculation can never observe an edit.
package schedule

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/taxgo/income-tax-calculator/internal/domain"
)

// ErrBandNotFound is returned when an edit references an unknown band id.
var ErrBandNotFound = errors.New("band not found")

// Editor manages an ordered list of rate bands. It is not safe for
// concurrent use; callers pass snapshots from Bands to the engine.
type Editor struct {
	bands domain.Schedule
}

// NewEditor creates an editor seeded with the canonical default schedule.
func NewEditor() *Editor {
	e := &Editor{}
	e.Reset()
	return e
}

// NewEditorWithSchedule creates an editor seeded with the given bands.
// Bands without an id are assigned one.
func NewEditorWithSchedule(s domain.Schedule) *Editor {
	bands := s.Clone()
	for i := range bands {
		if bands[i].ID == "" {
			bands[i].ID = uuid.NewString()
		}
	}
	return &Editor{bands: bands}
}

// Reset replaces the band list with the canonical default schedule.
func (e *Editor) Reset() {
	e.bands = domain.DefaultSchedule()
	for i := range e.bands {
		e.bands[i].ID = uuid.NewString()
	}
}

// Add appends a new band with no upper bound and a 0% rate, returning
// its id.
func (e *Editor) Add() string {
	band := domain.Band{ID: uuid.NewString(), RatePercent: decimal.Zero}
	e.bands = append(e.bands, band)
	return band.ID
}

// Remove deletes the band with the given id.
func (e *Editor) Remove(id string) error {
	for i, b := range e.bands {
		if b.ID == id {
			e.bands = append(e.bands[:i], e.bands[i+1:]...)
			return nil
		}
	}
	return ErrBandNotFound
}

// SetUpperBound updates a band's upper bound. A nil bound marks the
// band as unbounded.
func (e *Editor) SetUpperBound(id string, bound *decimal.Decimal) error {
	for i := range e.bands {
		if e.bands[i].ID == id {
			if bound == nil {
				e.bands[i].UpperBound = nil
			} else {
				u := *bound
				e.bands[i].UpperBound = &u
			}
			return nil
		}
	}
	return ErrBandNotFound
}

// SetRate updates a band's rate percentage.
func (e *Editor) SetRate(id string, ratePercent decimal.Decimal) error {
	for i := range e.bands {
		if e.bands[i].ID == id {
			e.bands[i].RatePercent = ratePercent
			return nil
		}
	}
	return ErrBandNotFound
}

// Bands returns a deep-copy snapshot of the current schedule.
func (e *Editor) Bands() domain.Schedule {
	return e.bands.Clone()
}

// Len returns the number of bands.
func (e *Editor) Len() int {
	return len(e.bands)
}
