// Copyright 2025 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/blinklabs-io/bignum/address"
	"github.com/blinklabs-io/bignum/bignum"
	"github.com/blinklabs-io/bignum/internal/version"
	"github.com/blinklabs-io/bignum/pow"
)

var cmdlineFlags struct {
	bits    string
	target  string
	address string
	pubkey  string
	check   string
	version bool
}

func main() {
	flag.StringVar(
		&cmdlineFlags.bits,
		"bits",
		"",
		"compact code (hex) to expand into a target",
	)
	flag.StringVar(
		&cmdlineFlags.target,
		"target",
		"",
		"target value (big-endian hex, optional '-' sign) to encode as a compact code",
	)
	flag.StringVar(
		&cmdlineFlags.address,
		"address",
		"",
		"base58check address to decode",
	)
	flag.StringVar(
		&cmdlineFlags.pubkey,
		"pubkey",
		"",
		"public key (hex) to derive a pay-to-pubkey-hash address from",
	)
	flag.StringVar(
		&cmdlineFlags.check,
		"check",
		"",
		"block hash (64 hex chars, display order) to check against the target from -bits",
	)
	flag.BoolVar(
		&cmdlineFlags.version,
		"version",
		false,
		"show version and exit",
	)
	flag.Parse()

	if cmdlineFlags.version {
		fmt.Printf("compactutil %s\n", version.GetVersionString())
		return
	}

	var err error
	switch {
	case cmdlineFlags.check != "":
		if cmdlineFlags.bits == "" {
			fmt.Println("error: -check requires -bits")
			os.Exit(2)
		}
		err = checkHash(cmdlineFlags.check, cmdlineFlags.bits)
	case cmdlineFlags.bits != "":
		err = showBits(cmdlineFlags.bits)
	case cmdlineFlags.target != "":
		err = showTarget(cmdlineFlags.target)
	case cmdlineFlags.address != "":
		err = showAddress(cmdlineFlags.address)
	case cmdlineFlags.pubkey != "":
		err = showPubKey(cmdlineFlags.pubkey)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Printf("error: %s\n", err)
		os.Exit(1)
	}
}

func showBits(s string) error {
	bits, err := bignum.ParseCompact(s)
	if err != nil {
		return err
	}
	n := bignum.NewFromCompact(bits)
	fmt.Printf("bits:       0x%08x\n", bits)
	fmt.Printf("value:      %s\n", n.String())
	hash, err := n.Hash()
	if err != nil {
		var rangeErr *bignum.RangeError
		if !errors.As(err, &rangeErr) {
			return err
		}
		fmt.Printf("hash view:  (%s)\n", err)
	} else {
		fmt.Printf("hash view:  %x\n", hash)
	}
	if _, err := pow.CompactToTarget(bits); err != nil {
		fmt.Printf("target:     not usable (%s)\n", err)
		return nil
	}
	work, err := pow.Work(bits)
	if err != nil {
		return err
	}
	fmt.Printf("difficulty: %g\n", pow.Difficulty(bits))
	fmt.Printf("work:       %s\n", work.Hex())
	return nil
}

func checkHash(hashStr string, bitsStr string) error {
	hash, err := bignum.ParseHash(hashStr)
	if err != nil {
		return err
	}
	bits, err := bignum.ParseCompact(bitsStr)
	if err != nil {
		return err
	}
	target, err := pow.CompactToTarget(bits)
	if err != nil {
		return err
	}
	fmt.Printf("hash:   %x\n", hash)
	fmt.Printf("target: %x\n", target)
	if !pow.CheckTarget(hash, target) {
		return fmt.Errorf("hash exceeds target from bits 0x%08x", bits)
	}
	fmt.Println("hash satisfies target")
	return nil
}

func showTarget(s string) error {
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		return &bignum.FormatError{Op: "target", Msg: err.Error()}
	}
	n := bignum.NewFromData(data)
	if negative {
		n = n.Neg()
	}
	code, err := n.Compact()
	if err != nil {
		return err
	}
	fmt.Printf("value:   %s\n", n.String())
	fmt.Printf("compact: 0x%08x\n", code)
	// The compact form keeps at most 3 significant bytes
	if roundTrip := bignum.NewFromCompact(code); !roundTrip.Equal(n) {
		fmt.Printf("decodes: %s (precision lost)\n", roundTrip.String())
	}
	return nil
}

func showAddress(s string) error {
	addr, err := address.Decode(s)
	if err != nil {
		return err
	}
	fmt.Printf("type:    %s\n", addr.Type)
	fmt.Printf("version: %d\n", addr.Version())
	fmt.Printf("hash160: %x\n", addr.Hash)
	return nil
}

func showPubKey(s string) error {
	pubKey, err := hex.DecodeString(s)
	if err != nil {
		return &bignum.FormatError{Op: "pubkey", Msg: err.Error()}
	}
	addr, err := address.FromPublicKey(pubKey)
	if err != nil {
		return err
	}
	fmt.Printf("hash160: %x\n", addr.Hash)
	fmt.Printf("address: %s\n", addr.Encode())
	return nil
}
