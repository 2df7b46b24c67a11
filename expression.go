// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package cron resolves cron-style calendar field specifications into
// concrete sets of matching calendar values. It handles the calendar
// relative forms ("last Friday of the month", "2nd Tuesday", "3 days
// before month end", "nearest weekday to the 15th") by resolving each
// field of an expression to a set of qualified ordinals once, at parse
// time, and expanding or testing those ordinals against real, leap year
// aware months on demand. Matching is at date granularity: the package
// determines the days an expression selects, not time zone aware
// instants.
package cron

import (
	"cloudeng.io/datetime"
)

// Expression is a parsed cron expression with every field resolved to
// its ordinal set. Expressions are immutable and may be shared freely
// across goroutines.
type Expression struct {
	text        string
	seconds     Seconds
	minutes     Minutes
	hours       Hours
	daysOfMonth DaysOfMonth
	months      Months
	daysOfWeek  DaysOfWeek
	years       Years
}

// New returns an Expression built from already constructed fields, for
// callers that produce specifiers without the textual grammar.
func New(seconds Seconds, minutes Minutes, hours Hours, daysOfMonth DaysOfMonth, months Months, daysOfWeek DaysOfWeek, years Years) *Expression {
	return &Expression{
		seconds:     seconds,
		minutes:     minutes,
		hours:       hours,
		daysOfMonth: daysOfMonth,
		months:      months,
		daysOfWeek:  daysOfWeek,
		years:       years,
	}
}

// String returns the expression as parsed, with shorthands expanded and
// omitted fields filled in.
func (e *Expression) String() string {
	return e.text
}

func (e *Expression) Seconds() Seconds { return e.seconds }

func (e *Expression) Minutes() Minutes { return e.minutes }

func (e *Expression) Hours() Hours { return e.hours }

func (e *Expression) DaysOfMonth() DaysOfMonth { return e.daysOfMonth }

func (e *Expression) Months() Months { return e.months }

func (e *Expression) DaysOfWeek() DaysOfWeek { return e.daysOfWeek }

func (e *Expression) Years() Years { return e.years }

// Equal compares the effective ordinal sets of every field.
func (e *Expression) Equal(other *Expression) bool {
	return e.seconds.Equal(other.seconds) &&
		e.minutes.Equal(other.minutes) &&
		e.hours.Equal(other.hours) &&
		e.daysOfMonth.Equal(other.daysOfMonth) &&
		e.months.Equal(other.months) &&
		e.daysOfWeek.Equal(other.daysOfWeek) &&
		e.years.Equal(other.years)
}

// MatchDate returns true if the given date satisfies the expression's
// year, month, day of month and day of week fields. Following crontab
// convention, when both day fields are restricted a date matches if
// either of them matches; otherwise both must match (an unrestricted
// field matches every date).
func (e *Expression) MatchDate(cd datetime.CalendarDate) bool {
	year, month, day := int(cd.Year()), cd.Month(), int(cd.Day())
	if !e.years.Ordinals().Contains(Ordinal{Value: year}) {
		return false
	}
	if !e.months.Ordinals().Contains(Ordinal{Value: int(month)}) {
		return false
	}
	domMatch := e.daysOfMonth.DaysInMonth(month, year).Contains(Ordinal{Value: day})
	dowMatch := e.daysOfWeek.MatchDate(cd)
	if !e.daysOfMonth.unconstrained() && !e.daysOfWeek.unconstrained() {
		return domMatch || dowMatch
	}
	return domMatch && dowMatch
}

// Dates returns an iterator over the dates in the given year that the
// expression matches, in calendar order.
func (e *Expression) Dates(year int) func(yield func(datetime.CalendarDate) bool) {
	return func(yield func(datetime.CalendarDate) bool) {
		if !e.years.Ordinals().Contains(Ordinal{Value: year}) {
			return
		}
		for month := datetime.Month(1); month <= 12; month++ {
			if !e.months.Ordinals().Contains(Ordinal{Value: int(month)}) {
				continue
			}
			days := e.daysOfMonth.DaysInMonth(month, year)
			ndays := int(datetime.DaysInMonth(year, month))
			for day := 1; day <= ndays; day++ {
				cd := datetime.NewCalendarDate(year, month, day)
				domMatch := days.Contains(Ordinal{Value: day})
				dowMatch := e.daysOfWeek.MatchDate(cd)
				match := domMatch && dowMatch
				if !e.daysOfMonth.unconstrained() && !e.daysOfWeek.unconstrained() {
					match = domMatch || dowMatch
				}
				if !match {
					continue
				}
				if !yield(cd) {
					return
				}
			}
		}
	}
}

// NextDate returns the first date strictly after the given date that the
// expression matches. ok is false if there is no such date on or before
// the last day of the years field's range.
func (e *Expression) NextDate(after datetime.CalendarDate) (next datetime.CalendarDate, ok bool) {
	end := datetime.NewCalendarDate(yearsLimits.max, 12, 31)
	for cd := after.Tomorrow(); cd <= end; cd = cd.Tomorrow() {
		if e.MatchDate(cd) {
			return cd, true
		}
	}
	var none datetime.CalendarDate
	return none, false
}
