// Copyright 2025 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package pow

import (
	"bytes"
	"fmt"

	"github.com/blinklabs-io/bignum/bignum"
)

// MaxTargetBits is the compact form of the easiest target allowed on the
// main network
const MaxTargetBits uint32 = 0x1d00ffff

// MaxTarget returns the easiest target allowed on the main network
func MaxTarget() *bignum.Number {
	return bignum.NewFromCompact(MaxTargetBits)
}

// CompactToTarget converts a compact (nBits) value to a 32-byte big-endian
// target. Negative and zero targets are rejected, as are targets which do
// not fit in 256 bits.
func CompactToTarget(bits uint32) ([bignum.HashSize]byte, error) {
	target := bignum.NewFromCompact(bits)
	switch target.Sign() {
	case -1:
		return [bignum.HashSize]byte{}, &bignum.FormatError{
			Op:  "target",
			Msg: fmt.Sprintf("negative target in bits 0x%08x", bits),
		}
	case 0:
		return [bignum.HashSize]byte{}, &bignum.FormatError{
			Op:  "target",
			Msg: fmt.Sprintf("zero target in bits 0x%08x", bits),
		}
	}
	return target.Hash()
}

// CheckTarget reports whether hash satisfies target. Both are compared as
// unsigned 256-bit big-endian integers.
func CheckTarget(hash, target [bignum.HashSize]byte) bool {
	return bytes.Compare(hash[:], target[:]) <= 0
}

// CheckProofOfWork checks that a big-endian block hash satisfies the target
// encoded in bits, and that the target is no easier than the network limit
// encoded in powLimitBits
func CheckProofOfWork(
	hash [bignum.HashSize]byte,
	bits uint32,
	powLimitBits uint32,
) error {
	target, err := CompactToTarget(bits)
	if err != nil {
		return err
	}
	limit, err := CompactToTarget(powLimitBits)
	if err != nil {
		return fmt.Errorf("invalid proof-of-work limit: %w", err)
	}
	if !CheckTarget(target, limit) {
		return &bignum.RangeError{
			Op: "target",
			Msg: fmt.Sprintf(
				"target from bits 0x%08x is above limit 0x%08x",
				bits,
				powLimitBits,
			),
		}
	}
	if !CheckTarget(hash, target) {
		return fmt.Errorf(
			"block PoW hash %x exceeds target %x",
			hash,
			target,
		)
	}
	return nil
}

// Difficulty returns the difficulty for bits relative to MaxTargetBits
func Difficulty(bits uint32) float64 {
	shift := int(bits>>24) & 0xff
	mantissa := bits & 0x00ffffff
	if mantissa == 0 {
		return 0
	}
	diff := float64(0x0000ffff) / float64(mantissa)
	for shift < 29 {
		diff *= 256.0
		shift++
	}
	for shift > 29 {
		diff /= 256.0
		shift--
	}
	return diff
}
