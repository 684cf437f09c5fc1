// Copyright 2025 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package address encodes and decodes base58check payment addresses and
// extracts them from standard scripts.
//
// Addresses only ever deal with raw 20-byte hashes. Every constructor
// returns the resulting Address together with an error instead of
// modifying an existing value.
package address

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcutil/base58"
	"github.com/minio/sha256-simd"
	"golang.org/x/crypto/ripemd160" // nolint:staticcheck
)

const (
	VersionPubKeyHash byte = 0
	VersionScriptHash byte = 5

	// HashSize is the size of the hash carried by an address
	HashSize = 20
)

type Type uint8

const (
	TypeUnknown Type = iota
	TypePubKeyHash
	TypeScriptHash
)

func (t Type) String() string {
	switch t {
	case TypePubKeyHash:
		return "pubkeyhash"
	case TypeScriptHash:
		return "scripthash"
	default:
		return "unknown"
	}
}

var (
	ErrUnknownVersion = errors.New("unknown address version")
	ErrInvalidLength  = errors.New("invalid address length")
	ErrChecksum       = errors.New("address checksum mismatch")
)

type Address struct {
	Type Type
	Hash [HashSize]byte
}

// New returns the address for a version byte and hash
func New(version byte, hash [HashSize]byte) (Address, error) {
	switch version {
	case VersionPubKeyHash:
		return FromPublicKeyHash(hash), nil
	case VersionScriptHash:
		return FromScriptHash(hash), nil
	default:
		return Address{}, fmt.Errorf("%w: %d", ErrUnknownVersion, version)
	}
}

func FromPublicKeyHash(hash [HashSize]byte) Address {
	return Address{Type: TypePubKeyHash, Hash: hash}
}

func FromScriptHash(hash [HashSize]byte) Address {
	return Address{Type: TypeScriptHash, Hash: hash}
}

// FromPublicKey returns the pay-to-pubkey-hash address for a serialized
// public key
func FromPublicKey(publicKey []byte) (Address, error) {
	if len(publicKey) == 0 {
		return Address{}, errors.New("empty public key")
	}
	return FromPublicKeyHash(Hash160(publicKey)), nil
}

// FromScript returns the pay-to-script-hash address for a serialized script
func FromScript(script []byte) (Address, error) {
	if len(script) == 0 {
		return Address{}, errors.New("empty script")
	}
	return FromScriptHash(Hash160(script)), nil
}

// Decode parses a base58check encoded address
func Decode(encoded string) (Address, error) {
	payload, version, err := base58.CheckDecode(encoded)
	if err != nil {
		switch {
		case errors.Is(err, base58.ErrChecksum):
			return Address{}, ErrChecksum
		case errors.Is(err, base58.ErrInvalidFormat):
			return Address{}, ErrInvalidLength
		default:
			return Address{}, err
		}
	}
	if len(payload) != HashSize {
		return Address{}, fmt.Errorf(
			"%w: expected %d byte hash, got %d",
			ErrInvalidLength,
			HashSize,
			len(payload),
		)
	}
	return New(version, [HashSize]byte(payload))
}

// Version returns the version byte for the address type. Unknown types
// return 0xff.
func (a Address) Version() byte {
	switch a.Type {
	case TypePubKeyHash:
		return VersionPubKeyHash
	case TypeScriptHash:
		return VersionScriptHash
	default:
		return 0xff
	}
}

// Encode returns the base58check encoding of the address
func (a Address) Encode() string {
	return base58.CheckEncode(a.Hash[:], a.Version())
}

func (a Address) String() string {
	return a.Encode()
}

// Hash160 returns RIPEMD160(SHA256(data))
func Hash160(data []byte) [HashSize]byte {
	tmp := sha256.Sum256(data)
	h := ripemd160.New()
	h.Write(tmp[:])
	return [HashSize]byte(h.Sum(nil))
}
