// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cron

import (
	"fmt"
	"strings"
)

// Field is the capability shared by every field of a cron expression: a
// diagnostic name, inclusive bounds on base values and the set of
// resolved ordinals. A field constructed without any specifiers reports
// the full set of unqualified values in its range.
type Field interface {
	Name() string
	InclusiveMin() int
	InclusiveMax() int
	Ordinals() OrdinalSet
}

// limits describes the static properties of a field: its diagnostic
// name, inclusive bounds and named values, if any. kind names a single
// value in error messages for fields that have named values.
type limits struct {
	name     string
	kind     string
	min, max int
	names    map[string]int
}

// validateValue returns an ExpressionError if v is outside the field's
// inclusive bounds.
func (l limits) validateValue(v int) error {
	if v < l.min || v > l.max {
		return expressionErrorf("%s must be between %d and %d inclusive. ('%d' specified.)", l.name, l.min, l.max, v)
	}
	return nil
}

// valueOfName resolves a named value such as "mon" or "jan", case
// insensitively.
func (l limits) valueOfName(name string) (int, error) {
	if len(l.names) == 0 {
		return 0, expressionErrorf("%s has no named values. ('%s' specified.)", l.name, name)
	}
	if v, ok := l.names[strings.ToLower(name)]; ok {
		return v, nil
	}
	return 0, expressionErrorf("'%s' is not a valid %s.", name, l.kind)
}

// valueOf resolves a single specifier to a validated base value.
func (l limits) valueOf(s SingleSpecifier) (int, error) {
	switch s := s.(type) {
	case Point:
		if err := l.validateValue(s.Value); err != nil {
			return 0, err
		}
		return s.Value, nil
	case NamedPoint:
		return l.valueOfName(s.Name)
	}
	panic(fmt.Sprintf("cron: unsupported single specifier %T", s))
}

// allValues returns the full set of unqualified values in the field's
// range.
func (l limits) allValues() OrdinalSet {
	set := make(OrdinalSet, l.max-l.min+1)
	for v := l.min; v <= l.max; v++ {
		set.Add(Ordinal{Value: v})
	}
	return set
}

// resolveDefault resolves the specifier shapes common to every field:
// points, named points, ranges, periods and "*". Day specific shapes
// must be handled by the caller before delegating here.
func (l limits) resolveDefault(spec RootSpecifier) (OrdinalSet, error) {
	switch s := spec.(type) {
	case All:
		return l.allValues(), nil
	case Point, NamedPoint:
		v, err := l.valueOf(s.(SingleSpecifier))
		if err != nil {
			return nil, err
		}
		return NewOrdinalSet(Ordinal{Value: v}), nil
	case Range:
		from, to, err := l.rangeOf(s)
		if err != nil {
			return nil, err
		}
		set := make(OrdinalSet, to-from+1)
		for v := from; v <= to; v++ {
			set.Add(Ordinal{Value: v})
		}
		return set, nil
	case Period:
		return l.resolvePeriod(s)
	}
	panic(fmt.Sprintf("cron: %s cannot resolve specifier %T", l.name, spec))
}

func (l limits) rangeOf(r Range) (from, to int, err error) {
	if from, err = l.valueOf(r.From); err != nil {
		return
	}
	if to, err = l.valueOf(r.To); err != nil {
		return
	}
	if from > to {
		err = expressionErrorf("Range start (%d) must not be greater than the range end (%d) for %s.", from, to, l.name)
	}
	return
}

func (l limits) resolvePeriod(p Period) (OrdinalSet, error) {
	if p.Step < 1 {
		return nil, expressionErrorf("Period step for %s must be at least 1. ('%d' specified.)", l.name, p.Step)
	}
	var from, to int
	switch b := p.Base.(type) {
	case All:
		from, to = l.min, l.max
	case Point, NamedPoint:
		// A point base runs through to the end of the field's range.
		v, err := l.valueOf(b.(SingleSpecifier))
		if err != nil {
			return nil, err
		}
		from, to = v, l.max
	case Range:
		var err error
		if from, to, err = l.rangeOf(b); err != nil {
			return nil, err
		}
	default:
		panic(fmt.Sprintf("cron: %s cannot use specifier %T as a period base", l.name, p.Base))
	}
	set := NewOrdinalSet()
	for v := from; v <= to; v += p.Step {
		set.Add(Ordinal{Value: v})
	}
	return set, nil
}
