// Copyright 2025 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package bignum

import (
	"fmt"
)

// RangeError is returned when a value does not fit the fixed-width view or
// limit requested by an operation. Len and Max are byte lengths.
type RangeError struct {
	Op       string
	Len      int
	Max      int
	Negative bool
	Msg      string
}

func (e *RangeError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("bignum: %s: %s", e.Op, e.Msg)
	}
	if e.Negative {
		return fmt.Sprintf("bignum: %s: negative value out of range", e.Op)
	}
	return fmt.Sprintf(
		"bignum: %s: value of %d bytes exceeds maximum of %d bytes",
		e.Op,
		e.Len,
		e.Max,
	)
}

// FormatError is returned for malformed external input
type FormatError struct {
	Op  string
	Msg string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("bignum: %s: %s", e.Op, e.Msg)
}
