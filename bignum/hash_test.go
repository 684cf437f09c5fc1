// Copyright 2025 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package bignum_test

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/blinklabs-io/bignum/bignum"
)

func TestCompactHash(t *testing.T) {
	testDefs := []struct {
		code     uint32
		expected string
	}{
		{
			code:     0x1b0404cb,
			expected: strings.Repeat("00", 5) + "0404cb" + strings.Repeat("00", 24),
		},
		{
			code:     0x1d00ffff,
			expected: strings.Repeat("00", 4) + "ffff" + strings.Repeat("00", 26),
		},
		{
			code:     0,
			expected: strings.Repeat("00", 32),
		},
		{
			code:     0x207fffff,
			expected: "7fffff" + strings.Repeat("00", 29),
		},
	}
	for _, testDef := range testDefs {
		hash, err := bignum.NewFromCompact(testDef.code).Hash()
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		expected := decodeHex(testDef.expected)
		if !bytes.Equal(hash[:], expected) {
			t.Fatalf(
				"SetCompact(0x%08x).Hash(): got %x, want %x",
				testDef.code,
				hash,
				expected,
			)
		}
	}
}

func TestZeroCompact(t *testing.T) {
	n := bignum.NewFromCompact(0)
	if !n.IsZero() || n.Sign() != 0 {
		t.Fatalf("expected non-negative zero, got %s", n)
	}
	if len(n.Data()) != 0 {
		t.Fatalf("expected empty data, got %x", n.Data())
	}
	hash, err := n.Hash()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if hash != [32]byte{} {
		t.Fatalf("expected all-zero hash, got %x", hash)
	}
}

func TestHashDataSymmetry(t *testing.T) {
	bignum1 := bignum.NewFromCompact(0x1b0404cb)
	hash, err := bignum1.Hash()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	other := bignum.NewFromHash(hash)
	if !bytes.Equal(other.Data(), bignum1.Data()) {
		t.Fatalf("got %x, want %x", other.Data(), bignum1.Data())
	}
	rng := rand.New(rand.NewPCG(3, 5))
	for range 1000 {
		data := make([]byte, rng.IntN(33))
		for i := range data {
			data[i] = byte(rng.Uint32())
		}
		m := bignum.NewFromData(data)
		hash, err := m.Hash()
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		var other bignum.Number
		other.SetHash(hash)
		if !bytes.Equal(other.Data(), m.Data()) {
			t.Fatalf("SetHash(Hash(%x)): got %x", m.Data(), other.Data())
		}
	}
}

func TestHashRange(t *testing.T) {
	n := bignum.NewFromCompact(0x21010000)
	if n.ByteLen() != 33 {
		t.Fatalf("expected 33 byte value, got %d bytes", n.ByteLen())
	}
	_, err := n.Hash()
	var rangeErr *bignum.RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected RangeError, got: %v", err)
	}
	if rangeErr.Len != 33 || rangeErr.Max != bignum.HashSize {
		t.Fatalf("unexpected RangeError contents: %+v", rangeErr)
	}
	// The sign is not part of the hash view
	hash, err := bignum.NewFromInt64(-1).Hash()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if hash[31] != 1 {
		t.Fatalf("got %x", hash)
	}
}

func TestParseHash(t *testing.T) {
	hash, err := bignum.ParseHash(
		"000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f",
	)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if hash[5] != 0x19 || hash[31] != 0x6f {
		t.Fatalf("unexpected hash contents: %x", hash)
	}
	for _, input := range []string{"", "zz", "0019d6"} {
		var formatErr *bignum.FormatError
		if _, err := bignum.ParseHash(input); !errors.As(err, &formatErr) {
			t.Fatalf("ParseHash(%q): expected FormatError, got: %v", input, err)
		}
	}
}
