// Copyright 2025 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package bignum

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	compactSignBit      uint32 = 0x00800000
	compactMantissaMask uint32 = 0x007fffff
	compactMantissaSize        = 3
	// The size field is a single byte
	maxCompactSize = 0xff
)

// NewFromCompact returns the Number described by a compact code
func NewFromCompact(code uint32) *Number {
	return new(Number).SetCompact(code)
}

// SetCompact sets n to the value of a compact code. The high byte is the
// length of the value in bytes and the low 3 bytes are the most significant
// bytes of the value, with bit 0x00800000 carrying the sign. This is
// equivalent to N = mantissa * 256^(size-3). Every code decodes to a value.
func (n *Number) SetCompact(code uint32) *Number {
	size := code >> 24
	negative := code&compactSignBit != 0
	mantissa := code & compactMantissaMask
	var data []byte
	if size <= compactMantissaSize {
		// Only the highest size bytes of the mantissa are kept
		mantissa >>= 8 * (compactMantissaSize - size)
		data = []byte{
			byte(mantissa >> 16),
			byte(mantissa >> 8),
			byte(mantissa),
		}
	} else {
		data = make([]byte, size)
		data[0] = byte(mantissa >> 16)
		data[1] = byte(mantissa >> 8)
		data[2] = byte(mantissa)
	}
	return n.set(negative, data)
}

// Compact returns the compact code for n. Only the 3 most significant bytes
// of the magnitude are retained. A RangeError is returned if the size field
// would not fit in a single byte.
func (n *Number) Compact() (uint32, error) {
	size := uint32(len(n.data))
	var mantissa uint32
	for i := range compactMantissaSize {
		mantissa <<= 8
		if i < len(n.data) {
			mantissa |= uint32(n.data[i])
		}
	}
	// The sign bit can't also be used for the magnitude, so drop the
	// lowest mantissa byte and bump the size to make room for it
	if mantissa&compactSignBit != 0 {
		mantissa >>= 8
		size++
	}
	if size > maxCompactSize {
		return 0, &RangeError{Op: "compact", Len: int(size), Max: maxCompactSize}
	}
	code := size<<24 | mantissa&compactMantissaMask
	if n.negative {
		code |= compactSignBit
	}
	return code, nil
}

// ParseCompact parses a compact code written in hex, with or without a
// leading "0x"
func ParseCompact(s string) (uint32, error) {
	tmp := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if tmp == "" {
		return 0, &FormatError{Op: "compact", Msg: "empty compact code"}
	}
	v, err := strconv.ParseUint(tmp, 16, 32)
	if err != nil {
		return 0, &FormatError{
			Op:  "compact",
			Msg: fmt.Sprintf("invalid compact code %q: %s", s, err),
		}
	}
	return uint32(v), nil
}
