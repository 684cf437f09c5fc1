// Copyright 2025 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package bignum

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// HashSize is the width of the fixed hash view in bytes
const HashSize = 32

// NewFromHash returns the non-negative Number represented by a 32-byte
// big-endian buffer
func NewFromHash(h [HashSize]byte) *Number {
	return new(Number).SetHash(h)
}

// SetHash sets n to the big-endian value of h
func (n *Number) SetHash(h [HashSize]byte) *Number {
	return n.SetData(h[:])
}

// Hash returns the magnitude of n as a 32-byte big-endian buffer, padded
// with leading zeros. The sign is not represented. A RangeError is returned
// if the magnitude is wider than 32 bytes.
func (n *Number) Hash() ([HashSize]byte, error) {
	var ret [HashSize]byte
	if len(n.data) > HashSize {
		return ret, &RangeError{Op: "hash", Len: len(n.data), Max: HashSize}
	}
	copy(ret[HashSize-len(n.data):], n.data)
	return ret, nil
}

// ParseHash decodes a 64 character hex string into a 32-byte buffer
func ParseHash(s string) ([HashSize]byte, error) {
	var ret [HashSize]byte
	tmp, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return ret, &FormatError{Op: "hash", Msg: err.Error()}
	}
	if len(tmp) != HashSize {
		return ret, &FormatError{
			Op:  "hash",
			Msg: fmt.Sprintf("expected %d bytes, got %d", HashSize, len(tmp)),
		}
	}
	copy(ret[:], tmp)
	return ret, nil
}
