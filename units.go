// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cron

import "sync"

// The seconds, minutes, hours, months and years fields place no calendar
// relative constraints on their values and resolve specifiers using the
// shared default behaviour only.

var (
	secondsLimits = limits{name: "Seconds", min: 0, max: 59}
	minutesLimits = limits{name: "Minutes", min: 0, max: 59}
	hoursLimits   = limits{name: "Hours", min: 0, max: 23}
	monthsLimits  = limits{name: "Months", kind: "month", min: 1, max: 12, names: monthNames}
	yearsLimits   = limits{name: "Years", min: 1970, max: 2099}
)

var monthNames = map[string]int{
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

// The full per-field value sets are computed once, on first use, and
// shared read-only thereafter.
var (
	allSeconds = sync.OnceValue(secondsLimits.allValues)
	allMinutes = sync.OnceValue(minutesLimits.allValues)
	allHours   = sync.OnceValue(hoursLimits.allValues)
	allMonths  = sync.OnceValue(monthsLimits.allValues)
	allYears   = sync.OnceValue(yearsLimits.allValues)
)

// unitField implements the shared behaviour of the fields with no day
// specific semantics. A nil ordinal set means the field is unconstrained
// and defers to the shared full set.
type unitField struct {
	lim      limits
	all      func() OrdinalSet
	ordinals OrdinalSet
}

func newUnitField(lim limits, all func() OrdinalSet, specs []RootSpecifier) (unitField, error) {
	u := unitField{lim: lim, all: all}
	if len(specs) == 0 {
		return u, nil
	}
	set := NewOrdinalSet()
	for _, spec := range specs {
		resolved, err := lim.resolveDefault(spec)
		if err != nil {
			return unitField{}, err
		}
		for o := range resolved {
			set.Add(o)
		}
	}
	u.ordinals = set
	return u, nil
}

func (u unitField) Name() string {
	return u.lim.name
}

func (u unitField) InclusiveMin() int {
	return u.lim.min
}

func (u unitField) InclusiveMax() int {
	return u.lim.max
}

func (u unitField) Ordinals() OrdinalSet {
	if u.ordinals == nil {
		return u.all()
	}
	return u.ordinals
}

// ValidateOrdinal checks o's base value against the field's bounds.
// Qualifiers never apply to these fields.
func (u unitField) ValidateOrdinal(o Ordinal) (Ordinal, error) {
	if o.Qual != None {
		panic("cron: qualifier applied to " + u.lim.name)
	}
	if err := u.lim.validateValue(o.Value); err != nil {
		return Ordinal{}, err
	}
	return o, nil
}

// equal compares effective ordinal sets; an unconstrained field equals
// one that explicitly specifies every value.
func (u unitField) equal(other unitField) bool {
	return u.Ordinals().Equal(other.Ordinals())
}

// Seconds is the seconds field of a cron expression, 0-59.
type Seconds struct{ unitField }

// NewSeconds returns a Seconds field resolved from the given specifiers.
// With no specifiers the field is unconstrained.
func NewSeconds(specs ...RootSpecifier) (Seconds, error) {
	u, err := newUnitField(secondsLimits, allSeconds, specs)
	return Seconds{u}, err
}

func (s Seconds) Equal(other Seconds) bool {
	return s.equal(other.unitField)
}

// Minutes is the minutes field of a cron expression, 0-59.
type Minutes struct{ unitField }

func NewMinutes(specs ...RootSpecifier) (Minutes, error) {
	u, err := newUnitField(minutesLimits, allMinutes, specs)
	return Minutes{u}, err
}

func (m Minutes) Equal(other Minutes) bool {
	return m.equal(other.unitField)
}

// Hours is the hours field of a cron expression, 0-23.
type Hours struct{ unitField }

func NewHours(specs ...RootSpecifier) (Hours, error) {
	u, err := newUnitField(hoursLimits, allHours, specs)
	return Hours{u}, err
}

func (h Hours) Equal(other Hours) bool {
	return h.equal(other.unitField)
}

// Months is the months field of a cron expression, 1-12 with the usual
// month names.
type Months struct{ unitField }

func NewMonths(specs ...RootSpecifier) (Months, error) {
	u, err := newUnitField(monthsLimits, allMonths, specs)
	return Months{u}, err
}

func (m Months) Equal(other Months) bool {
	return m.equal(other.unitField)
}

// Years is the years field of a cron expression, 1970-2099.
type Years struct{ unitField }

func NewYears(specs ...RootSpecifier) (Years, error) {
	u, err := newUnitField(yearsLimits, allYears, specs)
	return Years{u}, err
}

func (y Years) Equal(other Years) bool {
	return y.equal(other.unitField)
}
