// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cron

import (
	"strconv"
	"strings"

	"cloudeng.io/errors"
)

// fieldSyntax selects the day specific forms a field accepts.
type fieldSyntax int

const (
	plainSyntax      fieldSyntax = iota
	dayOfMonthSyntax             // L, L-n, nW, LW and ?
	dayOfWeekSyntax              // L, nL, n#k and ?
)

var shorthands = map[string]string{
	"@yearly":   "0 0 0 1 1 * *",
	"@annually": "0 0 0 1 1 * *",
	"@monthly":  "0 0 0 1 * * *",
	"@weekly":   "0 0 0 * * 1 *",
	"@daily":    "0 0 0 * * * *",
	"@midnight": "0 0 0 * * * *",
	"@hourly":   "0 0 * * * * *",
}

// Parse parses a cron expression of 5 (minutes through days of week),
// 6 (with leading seconds) or 7 (with trailing years) whitespace
// separated fields, or one of the @yearly, @annually, @monthly, @weekly,
// @daily, @midnight and @hourly shorthands. All field values are
// validated eagerly; errors from every field are aggregated into the
// returned error.
func Parse(expression string) (*Expression, error) {
	text := strings.TrimSpace(expression)
	if strings.HasPrefix(text, "@") {
		expanded, ok := shorthands[strings.ToLower(text)]
		if !ok {
			return nil, expressionErrorf("'%s' is not a valid cron shorthand.", text)
		}
		text = expanded
	}
	fields := strings.Fields(text)
	var vals [7]string // seconds through years
	switch len(fields) {
	case 5:
		vals = [7]string{"0", fields[0], fields[1], fields[2], fields[3], fields[4], "*"}
	case 6:
		vals = [7]string{fields[0], fields[1], fields[2], fields[3], fields[4], fields[5], "*"}
	case 7:
		copy(vals[:], fields)
	default:
		return nil, expressionErrorf("'%s' is not a valid cron expression: expected 5, 6 or 7 whitespace separated fields, got %d.", expression, len(fields))
	}

	errs := &errors.M{}
	parse := func(val string, lim limits, syntax fieldSyntax) []RootSpecifier {
		specs, err := parseField(val, lim, syntax)
		errs.Append(err)
		return specs
	}
	secondSpecs := parse(vals[0], secondsLimits, plainSyntax)
	minuteSpecs := parse(vals[1], minutesLimits, plainSyntax)
	hourSpecs := parse(vals[2], hoursLimits, plainSyntax)
	domSpecs := parse(vals[3], daysOfMonthLimits, dayOfMonthSyntax)
	monthSpecs := parse(vals[4], monthsLimits, plainSyntax)
	dowSpecs := parse(vals[5], daysOfWeekLimits, dayOfWeekSyntax)
	yearSpecs := parse(vals[6], yearsLimits, plainSyntax)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	expr := &Expression{text: strings.Join(vals[:], " ")}
	var err error
	expr.seconds, err = NewSeconds(secondSpecs...)
	errs.Append(err)
	expr.minutes, err = NewMinutes(minuteSpecs...)
	errs.Append(err)
	expr.hours, err = NewHours(hourSpecs...)
	errs.Append(err)
	expr.daysOfMonth, err = NewDaysOfMonth(domSpecs...)
	errs.Append(err)
	expr.months, err = NewMonths(monthSpecs...)
	errs.Append(err)
	expr.daysOfWeek, err = NewDaysOfWeek(dowSpecs...)
	errs.Append(err)
	expr.years, err = NewYears(yearSpecs...)
	errs.Append(err)
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseField splits one field into its comma separated root specifiers.
// A field of "*", or of "?" where allowed, yields no specifiers at all,
// leaving the field unconstrained.
func parseField(val string, lim limits, syntax fieldSyntax) ([]RootSpecifier, error) {
	if val == "*" {
		return nil, nil
	}
	if val == "?" {
		if syntax == plainSyntax {
			return nil, expressionErrorf("'?' is not valid for %s.", lim.name)
		}
		return nil, nil
	}
	terms := strings.Split(val, ",")
	specs := make([]RootSpecifier, 0, len(terms))
	for _, term := range terms {
		spec, err := parseTerm(term, lim, syntax)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func parseTerm(term string, lim limits, syntax fieldSyntax) (RootSpecifier, error) {
	if len(term) == 0 {
		return nil, expressionErrorf("Empty value for %s.", lim.name)
	}
	if base, step, ok := strings.Cut(term, "/"); ok {
		return parsePeriod(base, step, lim)
	}
	if term == "*" {
		return All{}, nil
	}
	switch syntax {
	case dayOfMonthSyntax:
		if spec, ok, err := parseDayOfMonthTerm(term, lim); ok || err != nil {
			return spec, err
		}
	case dayOfWeekSyntax:
		if spec, ok, err := parseDayOfWeekTerm(term, lim); ok || err != nil {
			return spec, err
		}
	}
	if from, to, ok := strings.Cut(term, "-"); ok {
		fromSpec, err := parseSingle(from, lim)
		if err != nil {
			return nil, err
		}
		toSpec, err := parseSingle(to, lim)
		if err != nil {
			return nil, err
		}
		return Range{From: fromSpec, To: toSpec}, nil
	}
	single, err := parseSingle(term, lim)
	if err != nil {
		return nil, err
	}
	return single.(RootSpecifier), nil
}

// parseDayOfMonthTerm handles the L, L-n, nW and LW forms. ok reports
// whether the term was one of them.
func parseDayOfMonthTerm(term string, lim limits) (RootSpecifier, bool, error) {
	switch term {
	case "L":
		return LastPoint{Of: Point{Value: 0}}, true, nil
	case "LW":
		return WeekdayPoint{FromEnd: true}, true, nil
	}
	if rest, ok := strings.CutPrefix(term, "L-"); ok {
		n, err := parseNumber(rest, term, lim)
		if err != nil {
			return nil, true, err
		}
		return LastPoint{Of: Point{Value: n}}, true, nil
	}
	if rest, ok := strings.CutSuffix(term, "W"); ok {
		day, err := parseNumber(rest, term, lim)
		if err != nil {
			return nil, true, err
		}
		return WeekdayPoint{Day: day}, true, nil
	}
	return nil, false, nil
}

// parseDayOfWeekTerm handles the L, nL and n#k forms. ok reports whether
// the term was one of them.
func parseDayOfWeekTerm(term string, lim limits) (RootSpecifier, bool, error) {
	if term == "L" {
		return LastPoint{Of: Point{Value: lastDayOfWeekPoint}}, true, nil
	}
	if day, occurrence, ok := strings.Cut(term, "#"); ok {
		single, err := parseSingle(day, lim)
		if err != nil {
			return nil, true, err
		}
		n, err := parseNumber(occurrence, term, lim)
		if err != nil {
			return nil, true, err
		}
		return NthOfMonth{Of: single, N: n}, true, nil
	}
	if rest, ok := strings.CutSuffix(term, "L"); ok && !strings.Contains(rest, "-") {
		single, err := parseSingle(rest, lim)
		if err != nil {
			return nil, true, err
		}
		return LastPoint{Of: single}, true, nil
	}
	return nil, false, nil
}

func parsePeriod(base, step string, lim limits) (RootSpecifier, error) {
	var baseSpec RootSpecifier
	switch {
	case base == "*":
		baseSpec = All{}
	case strings.Contains(base, "-"):
		from, to, _ := strings.Cut(base, "-")
		fromSpec, err := parseSingle(from, lim)
		if err != nil {
			return nil, err
		}
		toSpec, err := parseSingle(to, lim)
		if err != nil {
			return nil, err
		}
		baseSpec = Range{From: fromSpec, To: toSpec}
	default:
		single, err := parseSingle(base, lim)
		if err != nil {
			return nil, err
		}
		baseSpec = single.(RootSpecifier)
	}
	n, err := parseNumber(step, base+"/"+step, lim)
	if err != nil {
		return nil, err
	}
	return Period{Base: baseSpec, Step: n}, nil
}

func parseSingle(val string, lim limits) (SingleSpecifier, error) {
	if len(val) == 0 {
		return nil, expressionErrorf("Empty value for %s.", lim.name)
	}
	if n, err := strconv.Atoi(val); err == nil {
		return Point{Value: n}, nil
	}
	for _, r := range val {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return nil, expressionErrorf("'%s' is not a valid value for %s.", val, lim.name)
		}
	}
	return NamedPoint{Name: val}, nil
}

// parseNumber parses the numeric part of a compound term. The grammar
// has no negative values; a leading sign is rejected rather than letting
// Atoi accept it.
func parseNumber(val, term string, lim limits) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		return 0, expressionErrorf("'%s' is not a valid value for %s.", term, lim.name)
	}
	return n, nil
}
