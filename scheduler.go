// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cron

import (
	"iter"
	"slices"

	"cloudeng.io/algo/container/heap"
	"cloudeng.io/datetime"
)

// ScheduledExpression pairs an expression with a name used to report the
// dates it is due on.
type ScheduledExpression struct {
	Name       string
	Expression *Expression
}

// Due is a date on which one or more scheduled expressions match,
// together with the names of those expressions, sorted.
type Due struct {
	Date  datetime.CalendarDate
	Names []string
}

// Scheduler merges the upcoming matching dates of several named
// expressions into a single ordered stream.
type Scheduler struct {
	scheduled []ScheduledExpression
}

// NewScheduler returns a Scheduler for the supplied expressions.
func NewScheduler(scheduled ...ScheduledExpression) *Scheduler {
	return &Scheduler{scheduled: slices.Clone(scheduled)}
}

type schedulerEntry struct {
	name string
	expr *Expression
	date datetime.CalendarDate
}

func dateKey(cd datetime.CalendarDate) int64 {
	return int64(cd.Year())*10000 + int64(cd.Month())*100 + int64(cd.Day())
}

// Upcoming returns an iterator over the dates after the given date on
// which at least one of the scheduler's expressions matches, in date
// order. Iteration ends when no expression has a further matching date
// within its years range.
func (s *Scheduler) Upcoming(after datetime.CalendarDate) iter.Seq[Due] {
	return func(yield func(Due) bool) {
		// The heap keeps a sentinel at index 0, so the slice needs one
		// slot beyond the number of entries.
		h := heap.NewMinMax(heap.WithSliceCap[int64, schedulerEntry](len(s.scheduled) + 1))
		for _, se := range s.scheduled {
			if next, ok := se.Expression.NextDate(after); ok {
				h.Push(dateKey(next), schedulerEntry{name: se.Name, expr: se.Expression, date: next})
			}
		}
		for h.Len() > 0 {
			key, entry := h.PopMin()
			due := Due{Date: entry.date, Names: []string{entry.name}}
			popped := []schedulerEntry{entry}
			for h.Len() > 0 {
				k, e := h.PopMin()
				if k != key {
					h.Push(k, e)
					break
				}
				due.Names = append(due.Names, e.name)
				popped = append(popped, e)
			}
			slices.Sort(due.Names)
			if !yield(due) {
				return
			}
			for _, e := range popped {
				if next, ok := e.expr.NextDate(e.date); ok {
					e.date = next
					h.Push(dateKey(next), e)
				}
			}
		}
	}
}
