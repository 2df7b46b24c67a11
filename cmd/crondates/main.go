// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command crondates prints the calendar dates selected by a cron
// expression.
package main

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/cron"
	"cloudeng.io/datetime"
)

var cmdSet *subcmd.CommandSet

type nextFlags struct {
	Count int    `subcmd:"n,5,number of upcoming matching dates to display"`
	After string `subcmd:"after,,date to start from in the format mm/dd/yyyy; defaults to today"`
}

type monthFlags struct {
	Month int `subcmd:"month,0,month to expand; defaults to the current month"`
	Year  int `subcmd:"year,0,year to expand; defaults to the current year"`
}

func init() {
	nextFlagSet := subcmd.NewFlagSet()
	nextFlagSet.MustRegisterFlagStruct(&nextFlags{}, nil, nil)
	monthFlagSet := subcmd.NewFlagSet()
	monthFlagSet.MustRegisterFlagStruct(&monthFlags{}, nil, nil)

	nextCmd := subcmd.NewCommand("next", nextFlagSet, next, subcmd.ExactlyNumArguments(1))
	nextCmd.Document("print the upcoming dates matching a cron expression", "<expression>")

	monthCmd := subcmd.NewCommand("month", monthFlagSet, month, subcmd.ExactlyNumArguments(1))
	monthCmd.Document("print the days of a month matching a cron expression", "<expression>")

	cmdSet = subcmd.NewCommandSet(nextCmd, monthCmd)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}

func calendarDate(when time.Time) datetime.CalendarDate {
	return datetime.NewCalendarDate(when.Year(), datetime.Month(when.Month()), when.Day())
}

func next(_ context.Context, values interface{}, args []string) error {
	fv := values.(*nextFlags)
	expr, err := cron.Parse(args[0])
	if err != nil {
		return err
	}
	after := calendarDate(time.Now())
	if len(fv.After) > 0 {
		when, err := time.Parse("01/02/2006", fv.After)
		if err != nil {
			return fmt.Errorf("invalid date %q: %v", fv.After, err)
		}
		after = calendarDate(when)
	}
	for i := 0; i < fv.Count; i++ {
		date, ok := expr.NextDate(after)
		if !ok {
			break
		}
		fmt.Printf("%04d/%02d/%02d\n", int(date.Year()), int(date.Month()), int(date.Day()))
		after = date
	}
	return nil
}

func month(_ context.Context, values interface{}, args []string) error {
	fv := values.(*monthFlags)
	expr, err := cron.Parse(args[0])
	if err != nil {
		return err
	}
	now := time.Now()
	year, mon := fv.Year, fv.Month
	if year == 0 {
		year = now.Year()
	}
	if mon == 0 {
		mon = int(now.Month())
	}
	if mon < 1 || mon > 12 {
		return fmt.Errorf("invalid month: %d", mon)
	}
	days := expr.DaysOfMonth().DaysInMonth(datetime.Month(mon), year)
	fmt.Printf("days of month: %v\n", days)
	ndays := int(datetime.DaysInMonth(year, datetime.Month(mon)))
	for day := 1; day <= ndays; day++ {
		cd := datetime.NewCalendarDate(year, datetime.Month(mon), day)
		if expr.MatchDate(cd) {
			fmt.Printf("%04d/%02d/%02d\n", year, mon, day)
		}
	}
	return nil
}
