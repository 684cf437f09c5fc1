// Copyright 2025 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package bignum

import (
	"bytes"
)

// Cmp compares n and y and returns -1, 0, or +1. Negative values sort
// before non-negative ones.
func (n *Number) Cmp(y *Number) int {
	switch {
	case n.negative && !y.negative:
		return -1
	case !n.negative && y.negative:
		return 1
	case n.negative:
		return cmpMagnitude(y.data, n.data)
	default:
		return cmpMagnitude(n.data, y.data)
	}
}

// CmpAbs compares the magnitudes of n and y
func (n *Number) CmpAbs(y *Number) int {
	return cmpMagnitude(n.data, y.data)
}

// Less reports whether n < y
func (n *Number) Less(y *Number) bool {
	return n.Cmp(y) < 0
}

// LessEqual reports whether n <= y
func (n *Number) LessEqual(y *Number) bool {
	return n.Cmp(y) <= 0
}

// Equal reports whether n == y
func (n *Number) Equal(y *Number) bool {
	return n.Cmp(y) == 0
}

// EqualInt64 reports whether n holds the same value as v
func (n *Number) EqualInt64(v int64) bool {
	return n.Equal(NewFromInt64(v))
}

// Neg returns -n
func (n *Number) Neg() *Number {
	return new(Number).set(!n.negative, n.data)
}

// Abs returns |n|
func (n *Number) Abs() *Number {
	return new(Number).set(false, n.data)
}

// Add returns n + y
func (n *Number) Add(y *Number) *Number {
	if n.negative == y.negative {
		return new(Number).set(n.negative, addMagnitude(n.data, y.data))
	}
	if cmpMagnitude(n.data, y.data) >= 0 {
		return new(Number).set(n.negative, subMagnitude(n.data, y.data))
	}
	return new(Number).set(y.negative, subMagnitude(y.data, n.data))
}

// Sub returns n - y
func (n *Number) Sub(y *Number) *Number {
	return n.Add(&Number{negative: !y.negative, data: y.data})
}

// Mul returns n * y
func (n *Number) Mul(y *Number) *Number {
	return new(Number).set(n.negative != y.negative, mulMagnitude(n.data, y.data))
}

// Lsh returns n shifted left by s bits. The sign is kept.
func (n *Number) Lsh(s uint) *Number {
	if len(n.data) == 0 {
		return New()
	}
	byteShift := int(s / 8)
	bitShift := s % 8
	ret := make([]byte, len(n.data)+byteShift+1)
	var carry byte
	for i := len(n.data) - 1; i >= 0; i-- {
		b := n.data[i]
		ret[i+1] = b<<bitShift | carry
		if bitShift > 0 {
			carry = b >> (8 - bitShift)
		}
	}
	ret[0] = carry
	return new(Number).set(n.negative, ret)
}

// Rsh returns n shifted right by s bits. The shift applies to the
// magnitude, so negative values round toward zero.
func (n *Number) Rsh(s uint) *Number {
	byteShift := int(s / 8)
	if byteShift >= len(n.data) {
		return New()
	}
	bitShift := s % 8
	src := n.data[:len(n.data)-byteShift]
	ret := make([]byte, len(src))
	var carry byte
	for i, b := range src {
		ret[i] = b>>bitShift | carry
		if bitShift > 0 {
			carry = b << (8 - bitShift)
		}
	}
	return new(Number).set(n.negative, ret)
}

// cmpMagnitude compares two canonical magnitudes
func cmpMagnitude(a, b []byte) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return bytes.Compare(a, b)
}

func addMagnitude(a, b []byte) []byte {
	if len(a) < len(b) {
		a, b = b, a
	}
	ret := make([]byte, len(a)+1)
	var carry uint16
	for i := range len(a) {
		sum := uint16(a[len(a)-1-i]) + carry
		if i < len(b) {
			sum += uint16(b[len(b)-1-i])
		}
		ret[len(ret)-1-i] = byte(sum)
		carry = sum >> 8
	}
	ret[0] = byte(carry)
	return ret
}

// subMagnitude returns a - b and requires a >= b
func subMagnitude(a, b []byte) []byte {
	ret := make([]byte, len(a))
	var borrow int16
	for i := range len(a) {
		diff := int16(a[len(a)-1-i]) - borrow
		if i < len(b) {
			diff -= int16(b[len(b)-1-i])
		}
		borrow = 0
		if diff < 0 {
			diff += 256
			borrow = 1
		}
		ret[len(ret)-1-i] = byte(diff)
	}
	return ret
}

// mulMagnitude is schoolbook multiplication over base-256 digits
func mulMagnitude(a, b []byte) []byte {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	ret := make([]byte, len(a)+len(b))
	for i := len(a) - 1; i >= 0; i-- {
		var carry uint32
		for j := len(b) - 1; j >= 0; j-- {
			k := i + j + 1
			t := uint32(a[i])*uint32(b[j]) + uint32(ret[k]) + carry
			ret[k] = byte(t)
			carry = t >> 8
		}
		ret[i] = byte(carry)
	}
	return ret
}
