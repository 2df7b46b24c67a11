// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cron_test

import (
	"slices"
	"testing"

	"cloudeng.io/cron"
	"cloudeng.io/datetime"
)

func TestSchedulerUpcoming(t *testing.T) {
	sched := cron.NewScheduler(
		cron.ScheduledExpression{Name: "first", Expression: parse(t, "0 0 0 1 * ? *")},
		cron.ScheduledExpression{Name: "mid", Expression: parse(t, "0 0 0 15 * ? *")},
	)
	var dues []cron.Due
	for due := range sched.Upcoming(datetime.NewCalendarDate(2024, 1, 10)) {
		dues = append(dues, due)
		if len(dues) == 4 {
			break
		}
	}
	want := []cron.Due{
		{Date: datetime.NewCalendarDate(2024, 1, 15), Names: []string{"mid"}},
		{Date: datetime.NewCalendarDate(2024, 2, 1), Names: []string{"first"}},
		{Date: datetime.NewCalendarDate(2024, 2, 15), Names: []string{"mid"}},
		{Date: datetime.NewCalendarDate(2024, 3, 1), Names: []string{"first"}},
	}
	if got := dues; len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got := dues[i]; got.Date != want[i].Date || !slices.Equal(got.Names, want[i].Names) {
			t.Errorf("got %v, want %v", got, want[i])
		}
	}
}

func TestSchedulerMergesSameDate(t *testing.T) {
	// Both expressions select the last day of February.
	sched := cron.NewScheduler(
		cron.ScheduledExpression{Name: "zulu", Expression: parse(t, "0 0 0 L 2 ? *")},
		cron.ScheduledExpression{Name: "alpha", Expression: parse(t, "0 0 0 29 2 ? *")},
		cron.ScheduledExpression{Name: "mike", Expression: parse(t, "0 0 0 1 3 ? *")},
	)
	var dues []cron.Due
	for due := range sched.Upcoming(datetime.NewCalendarDate(2024, 1, 1)) {
		dues = append(dues, due)
		if len(dues) == 2 {
			break
		}
	}
	if len(dues) != 2 {
		t.Fatalf("got %v dues, want 2", len(dues))
	}
	if got, want := dues[0].Date, datetime.NewCalendarDate(2024, 2, 29); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := dues[0].Names, []string{"alpha", "zulu"}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := dues[1].Date, datetime.NewCalendarDate(2024, 3, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := dues[1].Names, []string{"mike"}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSchedulerExhausts(t *testing.T) {
	sched := cron.NewScheduler(
		cron.ScheduledExpression{Name: "once", Expression: parse(t, "0 0 0 4 7 ? 2026")},
	)
	var dues []cron.Due
	for due := range sched.Upcoming(datetime.NewCalendarDate(2024, 1, 1)) {
		dues = append(dues, due)
	}
	if len(dues) != 1 {
		t.Fatalf("got %v dues, want 1", len(dues))
	}
	if got, want := dues[0].Date, datetime.NewCalendarDate(2026, 7, 4); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSchedulerEmpty(t *testing.T) {
	sched := cron.NewScheduler()
	for due := range sched.Upcoming(datetime.NewCalendarDate(2024, 1, 1)) {
		t.Errorf("unexpected due: %v", due)
	}
}
