// Copyright 2023 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package state

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/blinklabs-io/bignum/internal/config"
	"github.com/blinklabs-io/bignum/internal/logging"
	"github.com/blinklabs-io/bignum/pow"
	"github.com/dgraph-io/badger/v4"
	"github.com/holiman/uint256"
)

const (
	tipKey          = "chain_tip"
	headerKeyPrefix = "header_"

	headerRecordSize = 4 + pow.BlockHeaderSize + 32
)

// HeaderRecord is an accepted header along with its position in the chain
type HeaderRecord struct {
	Height    uint32
	Header    pow.BlockHeader
	ChainWork *uint256.Int
}

func (r *HeaderRecord) encode() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, headerRecordSize))
	_ = binary.Write(buf, binary.BigEndian, r.Height)
	buf.Write(r.Header.Encode())
	work := r.ChainWork.Bytes32()
	buf.Write(work[:])
	return buf.Bytes()
}

func (r *HeaderRecord) decode(data []byte) error {
	if len(data) != headerRecordSize {
		return fmt.Errorf(
			"invalid header record length: expected %d, got %d",
			headerRecordSize,
			len(data),
		)
	}
	r.Height = binary.BigEndian.Uint32(data[0:4])
	header, err := pow.NewBlockHeaderFromBytes(
		data[4 : 4+pow.BlockHeaderSize],
	)
	if err != nil {
		return err
	}
	r.Header = *header
	r.ChainWork = new(uint256.Int).SetBytes32(data[4+pow.BlockHeaderSize:])
	return nil
}

type State struct {
	db *badger.DB
}

var globalState = &State{}

func (s *State) Load() error {
	cfg := config.GetConfig()
	badgerOpts := badger.DefaultOptions(cfg.State.Directory).
		WithLogger(NewBadgerLogger()).
		// The default INFO logging is a bit verbose
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(badgerOpts)
	if err != nil {
		return err
	}
	s.db = db
	return nil
}

func (s *State) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// GetTip returns the height and hash of the last accepted header. An empty
// hash is returned when no header has been accepted yet.
func (s *State) GetTip() (uint32, string, error) {
	var height uint32
	var blockHash string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(tipKey))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			tipParts := strings.Split(string(v), ",")
			if len(tipParts) != 2 {
				return fmt.Errorf("invalid chain tip: %s", string(v))
			}
			tmpHeight, err := strconv.ParseUint(tipParts[0], 10, 32)
			if err != nil {
				return err
			}
			height = uint32(tmpHeight)
			blockHash = tipParts[1]
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, "", nil
	}
	return height, blockHash, err
}

// StoreHeaders stores records and, if tip is not nil, moves the chain tip
// to it. Everything is written in a single transaction.
func (s *State) StoreHeaders(records []*HeaderRecord, tip *HeaderRecord) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		for _, record := range records {
			err := txn.Set(
				headerKey(record.Header.HashString()),
				record.encode(),
			)
			if err != nil {
				return err
			}
		}
		if tip == nil {
			return nil
		}
		return txn.Set(
			[]byte(tipKey),
			tipValue(tip.Height, tip.Header.HashString()),
		)
	})
	return err
}

// GetHeader returns the stored record for a header hash, or nil if the
// header is unknown
func (s *State) GetHeader(blockHash string) (*HeaderRecord, error) {
	var ret *HeaderRecord
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(headerKey(blockHash))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			var record HeaderRecord
			if err := record.decode(v); err != nil {
				return err
			}
			ret = &record
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// HeaderCount returns the number of stored headers
func (s *State) HeaderCount() (int, error) {
	count := 0
	prefix := []byte(headerKeyPrefix)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		// Makes key scans faster
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

func headerKey(blockHash string) []byte {
	return []byte(headerKeyPrefix + blockHash)
}

func tipValue(height uint32, blockHash string) []byte {
	return []byte(fmt.Sprintf("%d,%s", height, blockHash))
}

func GetState() *State {
	return globalState
}

// BadgerLogger is a wrapper type to give our logger the expected interface
type BadgerLogger struct {
	*logging.Logger
}

func NewBadgerLogger() *BadgerLogger {
	return &BadgerLogger{
		Logger: logging.GetComponentLogger("state"),
	}
}

func (b *BadgerLogger) Warningf(msg string, args ...any) {
	b.Logger.Warnf(msg, args...)
}
