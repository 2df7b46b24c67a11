// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cron

// SingleSpecifier is a single point within a field's range, either
// literal or named.
type SingleSpecifier interface {
	isSingleSpecifier()
}

// RootSpecifier is one comma separated term of a field in a cron
// expression, as produced by the grammar.
type RootSpecifier interface {
	isRootSpecifier()
}

// Point is a literal field value, eg. "5".
type Point struct {
	Value int
}

// NamedPoint is a named field value, eg. "mon" or "jan". Only months and
// days of the week have named values.
type NamedPoint struct {
	Name string
}

// All matches every value in the field's range, ie. "*".
type All struct{}

// Range is an inclusive range between two points, eg. "1-5" or "mon-fri".
type Range struct {
	From, To SingleSpecifier
}

// Period steps through a range, eg. "*/4", "10/2" or "2-10/3". Base must
// be All, Point, NamedPoint or Range; a point base runs to the field's
// maximum.
type Period struct {
	Base RootSpecifier
	Step int
}

// LastPoint counts from the end of the month: "L" and "L-3" for days of
// the month, "5L" for the last occurrence of a weekday. A literal point
// of 0 in the days of the week field means the last day of the week.
type LastPoint struct {
	Of SingleSpecifier
}

// WeekdayPoint is the weekday nearest to a day of the month ("15W"), or
// nearest to the last day of the month ("LW") when FromEnd is set, in
// which case Day is unused. Days of the month only.
type WeekdayPoint struct {
	Day     int
	FromEnd bool
}

// NthOfMonth is the n'th occurrence of a weekday within the month, eg.
// "fri#2". Days of the week only.
type NthOfMonth struct {
	Of SingleSpecifier
	N  int
}

func (Point) isSingleSpecifier()      {}
func (NamedPoint) isSingleSpecifier() {}

func (Point) isRootSpecifier()        {}
func (NamedPoint) isRootSpecifier()   {}
func (All) isRootSpecifier()          {}
func (Range) isRootSpecifier()        {}
func (Period) isRootSpecifier()       {}
func (LastPoint) isRootSpecifier()    {}
func (WeekdayPoint) isRootSpecifier() {}
func (NthOfMonth) isRootSpecifier()   {}
