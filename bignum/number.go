// Copyright 2025 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package bignum implements a sign-magnitude arbitrary-precision integer
// along with the 4-byte "compact" encoding used for proof-of-work targets
// and a fixed-width 32-byte hash view.
//
// A Number stores its magnitude as a minimal big-endian byte sequence. The
// Set* methods modify the receiver in place and return it, while arithmetic
// methods return a new Number and leave their operands untouched. A Number
// must not be modified while another goroutine is reading it.
package bignum

import (
	"encoding/binary"
	"encoding/hex"
	"math/bits"
)

// Number is a sign-magnitude integer. The zero value is zero.
type Number struct {
	negative bool
	data     []byte
}

// New returns a new zero Number
func New() *Number {
	return &Number{}
}

// NewFromData returns a non-negative Number with the given big-endian magnitude
func NewFromData(data []byte) *Number {
	return new(Number).SetData(data)
}

// NewFromUint64 returns a Number holding v
func NewFromUint64(v uint64) *Number {
	return new(Number).SetUint64(v)
}

// NewFromInt64 returns a Number holding v
func NewFromInt64(v int64) *Number {
	return new(Number).SetInt64(v)
}

// SetData sets n to the non-negative big-endian magnitude in data. Leading
// zero bytes are dropped and data is copied.
func (n *Number) SetData(data []byte) *Number {
	n.data = trimLeadingZeros(data)
	n.negative = false
	return n
}

// Data returns the canonical big-endian magnitude of n. The sign is not
// included. Zero is returned as an empty slice.
func (n *Number) Data() []byte {
	ret := make([]byte, len(n.data))
	copy(ret, n.data)
	return ret
}

// SetUint64 sets n to v
func (n *Number) SetUint64(v uint64) *Number {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return n.SetData(buf[:])
}

// SetInt64 sets n to v
func (n *Number) SetInt64(v int64) *Number {
	if v >= 0 {
		return n.SetUint64(uint64(v))
	}
	// Two's complement negation also covers math.MinInt64
	n.SetUint64(uint64(^v) + 1)
	n.negative = true
	return n
}

// Uint64 returns n as a uint64. A RangeError is returned if n is negative or
// does not fit in 64 bits.
func (n *Number) Uint64() (uint64, error) {
	if n.negative {
		return 0, &RangeError{Op: "uint64", Len: len(n.data), Max: 8, Negative: true}
	}
	if len(n.data) > 8 {
		return 0, &RangeError{Op: "uint64", Len: len(n.data), Max: 8}
	}
	var buf [8]byte
	copy(buf[8-len(n.data):], n.data)
	return binary.BigEndian.Uint64(buf[:]), nil
}

// Sign returns -1, 0, or +1 depending on the sign of n
func (n *Number) Sign() int {
	switch {
	case len(n.data) == 0:
		return 0
	case n.negative:
		return -1
	default:
		return 1
	}
}

// IsZero reports whether n is zero
func (n *Number) IsZero() bool {
	return len(n.data) == 0
}

// ByteLen returns the length of the canonical magnitude in bytes
func (n *Number) ByteLen() int {
	return len(n.data)
}

// BitLen returns the number of significant bits in the magnitude of n
func (n *Number) BitLen() int {
	if len(n.data) == 0 {
		return 0
	}
	return (len(n.data)-1)*8 + bits.Len8(n.data[0])
}

// Clone returns a copy of n that shares no memory with it
func (n *Number) Clone() *Number {
	return &Number{
		negative: n.negative,
		data:     n.Data(),
	}
}

// String returns the hex encoding of n, prefixed with "-" when negative.
// Zero is rendered as "0".
func (n *Number) String() string {
	if len(n.data) == 0 {
		return "0"
	}
	ret := hex.EncodeToString(n.data)
	if n.negative {
		return "-" + ret
	}
	return ret
}

// set stores a magnitude produced internally, keeping the zero sign invariant
func (n *Number) set(negative bool, data []byte) *Number {
	n.data = trimLeadingZeros(data)
	n.negative = negative && len(n.data) > 0
	return n
}

func trimLeadingZeros(data []byte) []byte {
	idx := 0
	for idx < len(data) && data[idx] == 0 {
		idx++
	}
	ret := make([]byte, len(data)-idx)
	copy(ret, data[idx:])
	return ret
}
