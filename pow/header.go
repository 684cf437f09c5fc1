// Copyright 2025 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package pow validates proof of work for block headers using the compact
// targets and hash views from the bignum package.
package pow

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"slices"

	"github.com/blinklabs-io/bignum/bignum"
	"github.com/minio/sha256-simd"
)

// BlockHeaderSize is the serialized size of a block header
const BlockHeaderSize = 80

type BlockHeader struct {
	Version    uint32
	PrevBlock  [32]byte
	MerkleRoot [32]byte
	Timestamp  uint32
	Bits       uint32
	Nonce      uint32
}

func NewBlockHeaderFromReader(r io.Reader) (*BlockHeader, error) {
	var h BlockHeader
	if err := h.Decode(r); err != nil {
		return nil, err
	}
	return &h, nil
}

// NewBlockHeaderFromBytes decodes a header from exactly BlockHeaderSize bytes
func NewBlockHeaderFromBytes(data []byte) (*BlockHeader, error) {
	if len(data) != BlockHeaderSize {
		return nil, &bignum.FormatError{
			Op: "header",
			Msg: fmt.Sprintf(
				"expected %d bytes, got %d",
				BlockHeaderSize,
				len(data),
			),
		}
	}
	return NewBlockHeaderFromReader(bytes.NewReader(data))
}

// NewBlockHeaderFromHex decodes a hex encoded header
func NewBlockHeaderFromHex(hexData string) (*BlockHeader, error) {
	data, err := hex.DecodeString(hexData)
	if err != nil {
		return nil, &bignum.FormatError{Op: "header", Msg: err.Error()}
	}
	return NewBlockHeaderFromBytes(data)
}

func (h *BlockHeader) Decode(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, h); err != nil {
		return err
	}
	return nil
}

func (h *BlockHeader) Encode() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, BlockHeaderSize))
	// Writes to a bytes.Buffer can't fail
	_ = binary.Write(buf, binary.LittleEndian, h)
	return buf.Bytes()
}

// Hash returns the double SHA-256 of the header in wire byte order
func (h *BlockHeader) Hash() [32]byte {
	tmp := sha256.Sum256(h.Encode())
	return sha256.Sum256(tmp[:])
}

// PowHash returns the header hash as a big-endian value suitable for
// comparing against a target
func (h *BlockHeader) PowHash() [32]byte {
	ret := h.Hash()
	slices.Reverse(ret[:])
	return ret
}

// HashString returns the header hash in the usual display order
func (h *BlockHeader) HashString() string {
	hash := h.PowHash()
	return hex.EncodeToString(hash[:])
}

// PrevBlockString returns the previous block hash in display order
func (h *BlockHeader) PrevBlockString() string {
	tmp := h.PrevBlock
	slices.Reverse(tmp[:])
	return hex.EncodeToString(tmp[:])
}

// ValidatePoW checks that the header hash satisfies the target from the
// Bits field and that the target is within powLimitBits
func (h *BlockHeader) ValidatePoW(powLimitBits uint32) error {
	return CheckProofOfWork(h.PowHash(), h.Bits, powLimitBits)
}
