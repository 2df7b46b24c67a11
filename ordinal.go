// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cron

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Qualifier determines how the base value of an Ordinal is interpreted
// against a concrete month. At most one qualifier applies to any ordinal;
// combinations that make no sense, such as an occurrence count on a day
// of the month, cannot be represented.
type Qualifier uint8

const (
	// None marks a plain day of month or day of week value.
	None Qualifier = iota
	// Last marks a value counted from the end of the month. For days of
	// the month the base value is the number of days before the last day
	// of the month, with 0 being the last day itself. For days of the
	// week it marks the last occurrence of that weekday in the month.
	Last
	// Weekday marks a day of the month to be nudged to the nearest
	// weekday within the same month.
	Weekday
	// LastWeekday marks the weekday nearest to the last day of the
	// month. The base value is unused.
	LastWeekday
	// Nth1 through Nth5 mark the first through fifth occurrence of a
	// weekday within a month.
	Nth1
	Nth2
	Nth3
	Nth4
	Nth5
)

// Nth returns the occurrence number, 1 through 5, for the occurrence
// qualifiers and 0 for all others.
func (q Qualifier) Nth() int {
	if q < Nth1 || q > Nth5 {
		return 0
	}
	return int(q-Nth1) + 1
}

// nthQualifier returns the occurrence qualifier for the n'th occurrence
// of a weekday. No month has a sixth occurrence of any weekday.
func nthQualifier(n int) (Qualifier, bool) {
	if n < 1 || n > 5 {
		return None, false
	}
	return Nth1 + Qualifier(n-1), true
}

func (q Qualifier) String() string {
	switch q {
	case None:
		return ""
	case Last:
		return "L"
	case Weekday:
		return "W"
	case LastWeekday:
		return "LW"
	}
	if n := q.Nth(); n > 0 {
		return fmt.Sprintf("#%d", n)
	}
	return fmt.Sprintf("invalid-qualifier-%d", uint8(q))
}

// Ordinal is a resolved calendar field value: a base value (a day of the
// month, a day of the week, an hour etc) together with a qualifier
// describing how it is interpreted against a concrete month. The zero
// qualifier leaves the base value as is.
type Ordinal struct {
	Value int
	Qual  Qualifier
}

func (o Ordinal) String() string {
	if o.Qual == LastWeekday {
		return "LW"
	}
	return fmt.Sprintf("%d%s", o.Value, o.Qual)
}

// OrdinalSet is a set of unique ordinals representing the resolved
// constraint for a single field of a cron expression.
type OrdinalSet map[Ordinal]struct{}

// NewOrdinalSet returns an OrdinalSet containing the supplied ordinals.
func NewOrdinalSet(ordinals ...Ordinal) OrdinalSet {
	set := make(OrdinalSet, len(ordinals))
	for _, o := range ordinals {
		set.Add(o)
	}
	return set
}

func (os OrdinalSet) Add(o Ordinal) {
	os[o] = struct{}{}
}

func (os OrdinalSet) Contains(o Ordinal) bool {
	_, ok := os[o]
	return ok
}

func (os OrdinalSet) Len() int {
	return len(os)
}

// Equal returns true if both sets contain exactly the same ordinals.
func (os OrdinalSet) Equal(other OrdinalSet) bool {
	return maps.Equal(os, other)
}

// Values returns the ordinals in the set ordered by base value and then
// by qualifier.
func (os OrdinalSet) Values() []Ordinal {
	vals := slices.Collect(maps.Keys(os))
	slices.SortFunc(vals, func(a, b Ordinal) int {
		if a.Value != b.Value {
			return a.Value - b.Value
		}
		return int(a.Qual) - int(b.Qual)
	})
	return vals
}

func (os OrdinalSet) String() string {
	var out strings.Builder
	for i, o := range os.Values() {
		if i > 0 {
			out.WriteString(",")
		}
		out.WriteString(o.String())
	}
	return out.String()
}
