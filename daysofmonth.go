// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cron

import (
	"sync"

	"cloudeng.io/datetime"
)

var daysOfMonthLimits = limits{name: "Days of Month", min: 1, max: 31}

var allDaysOfMonth = sync.OnceValue(daysOfMonthLimits.allValues)

// maxDaysBeforeMonthEnd is the largest "days before the last day of the
// month" offset that still lands inside every month: no month is ever
// more than 28 days shorter than the longest.
const maxDaysBeforeMonthEnd = 28

// DaysOfMonth is the day of month field of a cron expression. It
// resolves its specifiers to an ordinal set once, at construction, and
// expands that set to literal day numbers for a concrete month on
// demand, applying "days before month end" and nearest weekday rules.
// The zero value is unconstrained. Immutable once constructed.
type DaysOfMonth struct {
	ordinals OrdinalSet
}

// NewDaysOfMonth returns a DaysOfMonth field resolved from the given
// specifiers. With no specifiers the field is unconstrained and reports
// every day, 1 through 31.
func NewDaysOfMonth(specs ...RootSpecifier) (DaysOfMonth, error) {
	if len(specs) == 0 {
		return DaysOfMonth{}, nil
	}
	set := NewOrdinalSet()
	for _, spec := range specs {
		resolved, err := daysOfMonthOrdinals(spec)
		if err != nil {
			return DaysOfMonth{}, err
		}
		for o := range resolved {
			set.Add(o)
		}
	}
	return DaysOfMonth{ordinals: set}, nil
}

func (DaysOfMonth) Name() string {
	return daysOfMonthLimits.name
}

func (DaysOfMonth) InclusiveMin() int {
	return daysOfMonthLimits.min
}

func (DaysOfMonth) InclusiveMax() int {
	return daysOfMonthLimits.max
}

func (d DaysOfMonth) Ordinals() OrdinalSet {
	if d.ordinals == nil {
		return allDaysOfMonth()
	}
	return d.ordinals
}

func (d DaysOfMonth) unconstrained() bool {
	return d.ordinals == nil
}

// Equal compares effective ordinal sets; an unconstrained field equals
// one that explicitly specifies every day.
func (d DaysOfMonth) Equal(other DaysOfMonth) bool {
	return d.Ordinals().Equal(other.Ordinals())
}

// ValidateOrdinal checks o's base value: a day counted from the end of
// the month must be at most 28 days before it, any other day must lie
// within the field's bounds. Occurrence qualifiers never apply to days
// of the month and are a bug in the caller.
func (DaysOfMonth) ValidateOrdinal(o Ordinal) (Ordinal, error) {
	switch o.Qual {
	case Last, LastWeekday:
		if o.Value > maxDaysBeforeMonthEnd {
			return Ordinal{}, expressionErrorf("A day of month more than %d days before the last day of the month for %s may not exist, got %d", maxDaysBeforeMonthEnd, daysOfMonthLimits.name, o.Value)
		}
		return o, nil
	case None, Weekday:
		if err := daysOfMonthLimits.validateValue(o.Value); err != nil {
			return Ordinal{}, err
		}
		return o, nil
	}
	panic("cron: occurrence qualifier applied to Days of Month")
}

func daysOfMonthOrdinals(spec RootSpecifier) (OrdinalSet, error) {
	switch s := spec.(type) {
	case LastPoint:
		var n int
		switch p := s.Of.(type) {
		case Point:
			n = p.Value
		case NamedPoint:
			// There are no named days of the month.
			return nil, expressionErrorf("%s has no named values. ('%s' specified.)", daysOfMonthLimits.name, p.Name)
		}
		if n > maxDaysBeforeMonthEnd {
			return nil, expressionErrorf("A day of month more than %d days before the last day of the month for %s may not exist, got %d", maxDaysBeforeMonthEnd, daysOfMonthLimits.name, n)
		}
		return NewOrdinalSet(Ordinal{Value: n, Qual: Last}), nil
	case WeekdayPoint:
		if s.FromEnd {
			return NewOrdinalSet(Ordinal{Qual: LastWeekday}), nil
		}
		o, err := DaysOfMonth{}.ValidateOrdinal(Ordinal{Value: s.Day})
		if err != nil {
			return nil, err
		}
		o.Qual = Weekday
		return NewOrdinalSet(o), nil
	case NthOfMonth:
		// The grammar only produces occurrence specifiers for the days
		// of the week field.
		panic("cron: occurrence specifier applied to Days of Month")
	}
	return daysOfMonthLimits.resolveDefault(spec)
}

// DaysInMonth returns the literal day numbers of the given month and
// year that the field resolves to, expanding "days before month end"
// offsets against the month's real length and nudging weekday qualified
// days to the nearest weekday within the month. A literal day that
// exceeds the month's length is returned unchanged, mirroring crontab
// behaviour; callers that need only real days should filter against the
// month's length. Expansion never fails: all ordinals were validated
// when the field was constructed.
func (d DaysOfMonth) DaysInMonth(month datetime.Month, year int) OrdinalSet {
	ndays := int(datetime.DaysInMonth(year, month))
	days := make(OrdinalSet, d.Ordinals().Len())
	for o := range d.Ordinals() {
		switch o.Qual {
		case None:
			days.Add(Ordinal{Value: o.Value})
		case Last:
			days.Add(Ordinal{Value: ndays - o.Value})
		case Weekday:
			days.Add(Ordinal{Value: nearestWeekday(o.Value, month, year, ndays)})
		case LastWeekday:
			days.Add(Ordinal{Value: nearestWeekday(ndays, month, year, ndays)})
		}
	}
	return days
}

// nearestWeekday returns day if it falls on Monday through Friday and
// otherwise the closest weekday within the same month: a Sunday moves
// forward to Monday, unless it is the last day of the month, in which
// case it moves back to the preceding Friday; a Saturday moves back to
// Friday, unless it is the first day of the month, in which case it
// moves forward to the following Monday.
func nearestWeekday(day int, month datetime.Month, year, daysInMonth int) int {
	switch weekdayOf(year, month, day) {
	case sunday:
		if day == daysInMonth {
			return day - 2
		}
		return day + 1
	case saturday:
		if day == 1 {
			return 3
		}
		return day - 1
	}
	return day
}
