// Copyright 2025 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package pow

import (
	"errors"

	"github.com/holiman/uint256"
)

// Work returns the expected number of hashes needed to satisfy the target
// encoded in bits, which is 2^256 / (target + 1)
func Work(bits uint32) (*uint256.Int, error) {
	target, err := CompactToTarget(bits)
	if err != nil {
		return nil, err
	}
	t := new(uint256.Int).SetBytes32(target[:])
	denominator := new(uint256.Int).AddUint64(t, 1)
	if denominator.IsZero() {
		// target+1 wrapped to 2^256
		return uint256.NewInt(1), nil
	}
	// 2^256 doesn't fit in 256 bits, so use (2^256 - t - 1) / (t + 1) + 1
	work := new(uint256.Int).Not(t)
	work.Div(work, denominator)
	return work.AddUint64(work, 1), nil
}

// AddWork returns total plus the work for bits. total is not modified.
func AddWork(total *uint256.Int, bits uint32) (*uint256.Int, error) {
	work, err := Work(bits)
	if err != nil {
		return nil, err
	}
	ret, overflow := new(uint256.Int).AddOverflow(total, work)
	if overflow {
		return nil, errors.New("chain work overflows 256 bits")
	}
	return ret, nil
}
