// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cron

import (
	"time"

	"cloudeng.io/datetime"
)

// Weekday numbering used throughout: Sunday is 1 and Saturday is 7.
const (
	sunday   = 1
	saturday = 7
)

// weekdayOf returns the weekday of the given date, numbered from Sunday
// as 1.
func weekdayOf(year int, month datetime.Month, day int) int {
	return int(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday()) + 1
}
