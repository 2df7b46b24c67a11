// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cron

import (
	"sync"

	"cloudeng.io/datetime"
)

var dayOfWeekNames = map[string]int{
	"sun": 1, "sunday": 1,
	"mon": 2, "monday": 2,
	"tue": 3, "tues": 3, "tuesday": 3,
	"wed": 4, "wednesday": 4,
	"thu": 5, "thurs": 5, "thursday": 5,
	"fri": 6, "friday": 6,
	"sat": 7, "saturday": 7,
}

var daysOfWeekLimits = limits{
	name:  "Days of Week",
	kind:  "day of the week",
	min:   1,
	max:   7,
	names: dayOfWeekNames,
}

var allDaysOfWeek = sync.OnceValue(daysOfWeekLimits.allValues)

// lastDayOfWeekPoint is the historical crontab spelling of a bare "L" in
// the days of week field: a last point of literally 0 means the last day
// of the week, Saturday, rather than a last occurrence constraint.
const lastDayOfWeekPoint = 0

// DaysOfWeek is the day of week field of a cron expression, with Sunday
// as 1 and Saturday as 7. It resolves its specifiers to an ordinal set
// once, at construction, and tests concrete dates against that set,
// applying n'th occurrence and last occurrence rules. The zero value is
// unconstrained. Immutable once constructed.
type DaysOfWeek struct {
	ordinals OrdinalSet
}

// NewDaysOfWeek returns a DaysOfWeek field resolved from the given
// specifiers. With no specifiers the field is unconstrained and matches
// every weekday.
func NewDaysOfWeek(specs ...RootSpecifier) (DaysOfWeek, error) {
	if len(specs) == 0 {
		return DaysOfWeek{}, nil
	}
	set := NewOrdinalSet()
	for _, spec := range specs {
		resolved, err := daysOfWeekOrdinals(spec)
		if err != nil {
			return DaysOfWeek{}, err
		}
		for o := range resolved {
			set.Add(o)
		}
	}
	return DaysOfWeek{ordinals: set}, nil
}

func (DaysOfWeek) Name() string {
	return daysOfWeekLimits.name
}

func (DaysOfWeek) InclusiveMin() int {
	return daysOfWeekLimits.min
}

func (DaysOfWeek) InclusiveMax() int {
	return daysOfWeekLimits.max
}

func (d DaysOfWeek) Ordinals() OrdinalSet {
	if d.ordinals == nil {
		return allDaysOfWeek()
	}
	return d.ordinals
}

func (d DaysOfWeek) unconstrained() bool {
	return d.ordinals == nil
}

// Equal compares effective ordinal sets; an unconstrained field equals
// one that explicitly specifies every weekday.
func (d DaysOfWeek) Equal(other DaysOfWeek) bool {
	return d.Ordinals().Equal(other.Ordinals())
}

// ValidateOrdinal checks o's base value, the weekday number, against the
// field's bounds. The occurrence count itself is carried by the
// qualifier and is valid by construction. Nearest weekday qualifiers
// never apply to days of the week and are a bug in the caller.
func (DaysOfWeek) ValidateOrdinal(o Ordinal) (Ordinal, error) {
	switch o.Qual {
	case Weekday, LastWeekday:
		panic("cron: nearest weekday qualifier applied to Days of Week")
	}
	if err := daysOfWeekLimits.validateValue(o.Value); err != nil {
		return Ordinal{}, err
	}
	return o, nil
}

func daysOfWeekOrdinals(spec RootSpecifier) (OrdinalSet, error) {
	switch s := spec.(type) {
	case LastPoint:
		if p, ok := s.Of.(Point); ok && p.Value == lastDayOfWeekPoint {
			// A bare "L": the last day of the week, not a last
			// occurrence constraint.
			return NewOrdinalSet(Ordinal{Value: daysOfWeekLimits.max}), nil
		}
		day, err := daysOfWeekLimits.valueOf(s.Of)
		if err != nil {
			return nil, err
		}
		return NewOrdinalSet(Ordinal{Value: day, Qual: Last}), nil
	case NthOfMonth:
		day, err := daysOfWeekLimits.valueOf(s.Of)
		if err != nil {
			return nil, err
		}
		q, ok := nthQualifier(s.N)
		if !ok {
			return nil, expressionErrorf("Occurrence of a weekday must be between 1 and 5 inclusive. ('%d' specified.)", s.N)
		}
		return NewOrdinalSet(Ordinal{Value: day, Qual: q}), nil
	case WeekdayPoint:
		// The grammar only produces nearest weekday specifiers for the
		// days of the month field.
		panic("cron: nearest weekday specifier applied to Days of Week")
	}
	return daysOfWeekLimits.resolveDefault(spec)
}

// MatchDate returns true if the date's weekday satisfies any of the
// field's ordinals, honouring last occurrence and n'th occurrence
// constraints. Matching never fails: all ordinals were validated when
// the field was constructed.
func (d DaysOfWeek) MatchDate(cd datetime.CalendarDate) bool {
	year, month, day := int(cd.Year()), cd.Month(), int(cd.Day())
	weekday := weekdayOf(year, month, day)
	for o := range d.Ordinals() {
		if o.Value != weekday {
			continue
		}
		switch {
		case o.Qual == None:
			return true
		case o.Qual == Last:
			// The weekday already matches, so it is the last occurrence
			// iff the date falls within the final seven days of its
			// month.
			if day > int(datetime.DaysInMonth(year, month))-7 {
				return true
			}
		default:
			// The weekday already matches, so the occurrence follows
			// from the week of the month the day falls in.
			if n := o.Qual.Nth(); n > 0 && (day-1)/7 == n-1 {
				return true
			}
		}
	}
	return false
}
