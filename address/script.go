// Copyright 2025 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package address

import (
	"errors"
)

const (
	op0           = 0x00
	opData20      = 0x14
	opData33      = 0x21
	opData65      = 0x41
	opPushData1   = 0x4c
	opDup         = 0x76
	opEqual       = 0x87
	opEqualVerify = 0x88
	opHash160     = 0xa9
	opCheckSig    = 0xac
)

var ErrNonStandardScript = errors.New("non-standard script")

// Extract returns the address paid to by a standard output script. Pay to
// pubkey, pay to pubkey hash, and pay to script hash are supported.
func Extract(script []byte) (Address, error) {
	switch {
	// OP_DUP OP_HASH160 <20 bytes> OP_EQUALVERIFY OP_CHECKSIG
	case len(script) == 25 &&
		script[0] == opDup &&
		script[1] == opHash160 &&
		script[2] == opData20 &&
		script[23] == opEqualVerify &&
		script[24] == opCheckSig:
		return FromPublicKeyHash([HashSize]byte(script[3:23])), nil
	// OP_HASH160 <20 bytes> OP_EQUAL
	case len(script) == 23 &&
		script[0] == opHash160 &&
		script[1] == opData20 &&
		script[22] == opEqual:
		return FromScriptHash([HashSize]byte(script[2:22])), nil
	// <33 or 65 byte pubkey> OP_CHECKSIG
	case len(script) == 35 && script[0] == opData33 && script[34] == opCheckSig,
		len(script) == 67 && script[0] == opData65 && script[66] == opCheckSig:
		return FromPublicKey(script[1 : len(script)-1])
	}
	return Address{}, ErrNonStandardScript
}

// ExtractInput returns the address spent by an input script. A
// <signature> <pubkey> script spends a pay to pubkey hash address. Any other
// push-only script of at least two items is treated as a pay to script hash
// spend, with the redeem script as the last item.
func ExtractInput(script []byte) (Address, error) {
	pushes, err := parsePushes(script)
	if err != nil {
		return Address{}, err
	}
	if len(pushes) < 2 {
		return Address{}, ErrNonStandardScript
	}
	last := pushes[len(pushes)-1]
	if len(pushes) == 2 && (len(last) == 33 || len(last) == 65) {
		return FromPublicKey(last)
	}
	if len(last) == 0 {
		return Address{}, ErrNonStandardScript
	}
	return FromScript(last)
}

// parsePushes splits a push-only script into its data items
func parsePushes(script []byte) ([][]byte, error) {
	var ret [][]byte
	for len(script) > 0 {
		op := script[0]
		script = script[1:]
		var size int
		switch {
		case op == op0:
			// Pushes an empty item
			size = 0
		case op >= 0x01 && op < opPushData1:
			size = int(op)
		case op == opPushData1:
			if len(script) < 1 {
				return nil, errors.New("truncated push")
			}
			size = int(script[0])
			script = script[1:]
		default:
			return nil, ErrNonStandardScript
		}
		if len(script) < size {
			return nil, errors.New("truncated push")
		}
		ret = append(ret, script[:size])
		script = script[size:]
	}
	return ret, nil
}
