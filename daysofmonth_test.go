// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cron_test

import (
	"errors"
	"strings"
	"testing"

	"cloudeng.io/cron"
	"cloudeng.io/datetime"
	"github.com/google/go-cmp/cmp"
)

func newDaysOfMonth(t *testing.T, specs ...cron.RootSpecifier) cron.DaysOfMonth {
	t.Helper()
	d, err := cron.NewDaysOfMonth(specs...)
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	return d
}

func daysOf(set cron.OrdinalSet) []int {
	days := make([]int, 0, set.Len())
	for _, o := range set.Values() {
		days = append(days, o.Value)
	}
	return days
}

func TestDaysOfMonthLiteral(t *testing.T) {
	for _, tc := range []struct {
		specs []cron.RootSpecifier
		month datetime.Month
		year  int
		days  []int
	}{
		{[]cron.RootSpecifier{cron.Point{Value: 1}}, 1, 2024, []int{1}},
		{[]cron.RootSpecifier{cron.Point{Value: 31}}, 1, 2024, []int{31}},
		{[]cron.RootSpecifier{cron.Point{Value: 1}, cron.Point{Value: 15}}, 6, 2023, []int{1, 15}},
		{[]cron.RootSpecifier{cron.Range{From: cron.Point{Value: 3}, To: cron.Point{Value: 6}}}, 2, 2024, []int{3, 4, 5, 6}},
		{[]cron.RootSpecifier{cron.Period{Base: cron.Point{Value: 25}, Step: 2}}, 4, 2024, []int{25, 27, 29, 31}},
	} {
		d := newDaysOfMonth(t, tc.specs...)
		if got, want := daysOf(d.DaysInMonth(tc.month, tc.year)), tc.days; !cmp.Equal(got, want) {
			t.Errorf("%v/%v: got %v, want %v", tc.month, tc.year, got, want)
		}
	}
}

func TestDaysOfMonthLastOffset(t *testing.T) {
	for _, tc := range []struct {
		offset int
		month  datetime.Month
		year   int
		day    int
	}{
		{0, 2, 2024, 29}, // leap year
		{0, 2, 2023, 28},
		{0, 12, 2023, 31},
		{3, 2, 2024, 26},
		{28, 1, 2024, 3},
	} {
		d := newDaysOfMonth(t, cron.LastPoint{Of: cron.Point{Value: tc.offset}})
		if got, want := daysOf(d.DaysInMonth(tc.month, tc.year)), []int{tc.day}; !cmp.Equal(got, want) {
			t.Errorf("L-%v %v/%v: got %v, want %v", tc.offset, tc.month, tc.year, got, want)
		}
	}
}

func TestDaysOfMonthNearestWeekday(t *testing.T) {
	for _, tc := range []struct {
		day   int
		month datetime.Month
		year  int
		want  int
	}{
		{15, 1, 2025, 15}, // Wednesday, unchanged
		{1, 9, 2024, 2},   // Sunday the 1st moves to Monday
		{17, 3, 2024, 18}, // mid month Sunday moves to Monday
		{1, 4, 2023, 3},   // Saturday the 1st moves to the following Monday
		{16, 3, 2024, 15}, // mid month Saturday moves back to Friday
	} {
		d := newDaysOfMonth(t, cron.WeekdayPoint{Day: tc.day})
		if got, want := daysOf(d.DaysInMonth(tc.month, tc.year)), []int{tc.want}; !cmp.Equal(got, want) {
			t.Errorf("%vW %v/%v: got %v, want %v", tc.day, tc.month, tc.year, got, want)
		}
	}
}

func TestDaysOfMonthLastWeekday(t *testing.T) {
	for _, tc := range []struct {
		month datetime.Month
		year  int
		want  int
	}{
		{2, 2024, 29},  // Thursday, already a weekday
		{8, 2024, 30},  // month ends on a Saturday
		{12, 2023, 29}, // month ends on a Sunday
	} {
		d := newDaysOfMonth(t, cron.WeekdayPoint{FromEnd: true})
		if got, want := daysOf(d.DaysInMonth(tc.month, tc.year)), []int{tc.want}; !cmp.Equal(got, want) {
			t.Errorf("LW %v/%v: got %v, want %v", tc.month, tc.year, got, want)
		}
	}
}

func TestDaysOfMonthErrors(t *testing.T) {
	for _, tc := range []struct {
		specs []cron.RootSpecifier
		msg   string
	}{
		{[]cron.RootSpecifier{cron.Point{Value: 0}}, "between 1 and 31"},
		{[]cron.RootSpecifier{cron.Point{Value: 32}}, "between 1 and 31"},
		{[]cron.RootSpecifier{cron.LastPoint{Of: cron.Point{Value: 29}}}, "more than 28 days"},
		{[]cron.RootSpecifier{cron.LastPoint{Of: cron.Point{Value: 30}}}, "more than 28 days"},
		{[]cron.RootSpecifier{cron.LastPoint{Of: cron.NamedPoint{Name: "fri"}}}, "no named values"},
		{[]cron.RootSpecifier{cron.NamedPoint{Name: "fri"}}, "no named values"},
		{[]cron.RootSpecifier{cron.WeekdayPoint{Day: 0}}, "between 1 and 31"},
		{[]cron.RootSpecifier{cron.Range{From: cron.Point{Value: 10}, To: cron.Point{Value: 5}}}, "must not be greater"},
		{[]cron.RootSpecifier{cron.Period{Base: cron.All{}, Step: 0}}, "at least 1"},
	} {
		_, err := cron.NewDaysOfMonth(tc.specs...)
		if err == nil || !strings.Contains(err.Error(), tc.msg) {
			t.Errorf("%v: got %v, want an error containing %q", tc.specs, err, tc.msg)
		}
		var expErr *cron.ExpressionError
		if !errors.As(err, &expErr) {
			t.Errorf("%v: error %v is not an ExpressionError", tc.specs, err)
		}
	}
}

func TestDaysOfMonthValidateOrdinal(t *testing.T) {
	var d cron.DaysOfMonth
	for _, tc := range []struct {
		ordinal cron.Ordinal
		ok      bool
	}{
		{cron.Ordinal{Value: 1}, true},
		{cron.Ordinal{Value: 31}, true},
		{cron.Ordinal{Value: 0}, false},
		{cron.Ordinal{Value: 32}, false},
		{cron.Ordinal{Value: 0, Qual: cron.Last}, true},
		{cron.Ordinal{Value: 28, Qual: cron.Last}, true},
		{cron.Ordinal{Value: 29, Qual: cron.Last}, false},
		{cron.Ordinal{Value: 15, Qual: cron.Weekday}, true},
		{cron.Ordinal{Value: 0, Qual: cron.LastWeekday}, true},
	} {
		_, err := d.ValidateOrdinal(tc.ordinal)
		if got, want := err == nil, tc.ok; got != want {
			t.Errorf("%v: got error %v, want ok=%v", tc.ordinal, err, want)
		}
	}
}

func TestDaysOfMonthDefaults(t *testing.T) {
	unconstrained := newDaysOfMonth(t)
	all := newDaysOfMonth(t, cron.All{})
	if !unconstrained.Equal(all) {
		t.Errorf("unconstrained field differs from an explicit *")
	}
	if got, want := unconstrained.Ordinals().Len(), 31; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := len(daysOf(unconstrained.DaysInMonth(2, 2023))), 31; got != want {
		// Literal days beyond the month's length are returned as is.
		t.Errorf("got %v, want %v", got, want)
	}
}
