// Copyright 2025 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package state

import (
	"testing"

	"github.com/blinklabs-io/bignum/internal/config"
	"github.com/blinklabs-io/bignum/pow"
	"github.com/holiman/uint256"
)

const genesisHeaderHex = "0100000000000000000000000000000000000000000000000000000000000000000000003ba3edfd7a7b12b27ac72c3e67768f617fc81bc3888a51323a9fb8aa4b1e5e4a29ab5f49ffff001d1dac2b7c"

func loadTestState(t *testing.T) *State {
	t.Helper()
	config.GetConfig().State.Directory = t.TempDir()
	s := &State{}
	if err := s.Load(); err != nil {
		t.Fatalf("failed to load state: %s", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("failed to close state: %s", err)
		}
	})
	return s
}

func TestTip(t *testing.T) {
	s := loadTestState(t)
	height, blockHash, err := s.GetTip()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if height != 0 || blockHash != "" {
		t.Fatalf("expected empty tip, got %d, %s", height, blockHash)
	}
	header, err := pow.NewBlockHeaderFromHex(genesisHeaderHex)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	record := &HeaderRecord{
		Height:    42,
		Header:    *header,
		ChainWork: uint256.NewInt(1),
	}
	if err := s.StoreHeaders(nil, record); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	height, blockHash, err = s.GetTip()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if height != 42 || blockHash != header.HashString() {
		t.Fatalf(
			"got tip %d, %s, want 42, %s",
			height,
			blockHash,
			header.HashString(),
		)
	}
}

func TestHeaderRecords(t *testing.T) {
	s := loadTestState(t)
	header, err := pow.NewBlockHeaderFromHex(genesisHeaderHex)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	blockHash := header.HashString()
	record, err := s.GetHeader(blockHash)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if record != nil {
		t.Fatalf("expected no record, got %+v", record)
	}
	work, err := pow.Work(header.Bits)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	accepted := &HeaderRecord{
		Height:    0,
		Header:    *header,
		ChainWork: work,
	}
	if err := s.StoreHeaders([]*HeaderRecord{accepted}, accepted); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	record, err = s.GetHeader(blockHash)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if record == nil {
		t.Fatalf("expected stored record")
	}
	if record.Header != *header {
		t.Fatalf("header mismatch: got %+v, want %+v", record.Header, *header)
	}
	if !record.ChainWork.Eq(uint256.NewInt(0x100010001)) {
		t.Fatalf("got chain work %s", record.ChainWork.Hex())
	}
	height, tipHash, err := s.GetTip()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if height != 0 || tipHash != blockHash {
		t.Fatalf("got tip %d, %s", height, tipHash)
	}
	count, err := s.HeaderCount()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if count != 1 {
		t.Fatalf("got %d headers, want 1", count)
	}
}

func TestStoreHeadersWithoutTip(t *testing.T) {
	s := loadTestState(t)
	header, err := pow.NewBlockHeaderFromHex(genesisHeaderHex)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	record := &HeaderRecord{Header: *header, ChainWork: uint256.NewInt(2)}
	if err := s.StoreHeaders([]*HeaderRecord{record}, nil); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	stored, err := s.GetHeader(header.HashString())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if stored == nil {
		t.Fatalf("expected stored record")
	}
	_, tipHash, err := s.GetTip()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if tipHash != "" {
		t.Fatalf("expected tip to stay empty, got %s", tipHash)
	}
}

func TestHeaderRecordDecodeLength(t *testing.T) {
	var record HeaderRecord
	if err := record.decode(make([]byte, headerRecordSize-1)); err == nil {
		t.Fatalf("expected error for short record")
	}
}
