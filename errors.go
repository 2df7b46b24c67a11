// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cron

import "fmt"

// ExpressionError represents an invalid value or specifier in a cron
// expression, such as an out of bounds day number or an impossible
// qualifier combination. All such failures are reported when a specifier
// is resolved or an ordinal validated; expanding an already resolved
// field never fails.
type ExpressionError struct {
	msg string
}

// Error implements error.
func (e *ExpressionError) Error() string {
	return e.msg
}

func expressionErrorf(format string, args ...any) error {
	return &ExpressionError{msg: fmt.Sprintf(format, args...)}
}
