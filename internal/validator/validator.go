// Copyright 2025 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package validator

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/blinklabs-io/bignum/internal/config"
	"github.com/blinklabs-io/bignum/internal/logging"
	"github.com/blinklabs-io/bignum/internal/metrics"
	"github.com/blinklabs-io/bignum/internal/state"
	"github.com/blinklabs-io/bignum/pow"
	"github.com/holiman/uint256"
	"golang.org/x/sync/errgroup"
)

var ErrUnknownParent = errors.New("header does not connect to a known header")

// Result summarizes a validation run
type Result struct {
	Accepted  int
	Known     int
	TipHeight uint32
	TipHash   string
	ChainWork *uint256.Int
}

type Validator struct {
	state        *state.State
	powLimitBits uint32
	genesisHash  string
	workers      int
	format       string
	logger       *logging.Logger
}

func New(st *state.State, cfg config.ValidatorConfig) *Validator {
	return &Validator{
		state:        st,
		powLimitBits: cfg.PowLimitBits,
		genesisHash:  cfg.GenesisHash,
		workers:      max(cfg.Workers, 1),
		format:       cfg.Format,
		logger:       logging.GetComponentLogger("validator"),
	}
}

// Run reads headers from r, checks their proof of work, and connects them
// to the stored chain. Nothing is stored unless every header in the batch
// is valid.
func (v *Validator) Run(ctx context.Context, r io.Reader) (*Result, error) {
	headers, err := readHeaders(r, v.format)
	if err != nil {
		metrics.HeadersRejected.WithLabelValues(metrics.ReasonDecode).Inc()
		return nil, err
	}
	v.logger.Infof("read %d headers", len(headers))
	if err := v.checkProofOfWork(ctx, headers); err != nil {
		return nil, err
	}
	records, known, err := v.connect(headers)
	if err != nil {
		metrics.HeadersRejected.WithLabelValues(metrics.ReasonLinkage).Inc()
		return nil, err
	}
	if err := v.store(records); err != nil {
		return nil, err
	}
	height, tipHash, err := v.state.GetTip()
	if err != nil {
		return nil, err
	}
	ret := &Result{
		Accepted:  len(records),
		Known:     known,
		TipHeight: height,
		TipHash:   tipHash,
		ChainWork: new(uint256.Int),
	}
	if tipHash != "" {
		tip, err := v.state.GetHeader(tipHash)
		if err != nil {
			return nil, err
		}
		if tip != nil {
			ret.ChainWork = tip.ChainWork
		}
	}
	return ret, nil
}

// checkProofOfWork validates every header concurrently
func (v *Validator) checkProofOfWork(
	ctx context.Context,
	headers []*pow.BlockHeader,
) error {
	errs := make([]error, len(headers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.workers)
	for i, header := range headers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := header.ValidatePoW(v.powLimitBits); err != nil {
				errs[i] = fmt.Errorf(
					"header %d (%s): %w",
					i,
					header.HashString(),
					err,
				)
				return errs[i]
			}
			return nil
		})
	}
	groupErr := g.Wait()
	// Report the failures in input order
	for _, err := range errs {
		if err != nil {
			metrics.HeadersRejected.WithLabelValues(metrics.ReasonPow).Inc()
			v.logger.Warnf("rejected header: %s", err)
		}
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return groupErr
}

// connect links each header to its parent, either earlier in the batch or
// already stored, and computes height and chain work
func (v *Validator) connect(
	headers []*pow.BlockHeader,
) ([]*state.HeaderRecord, int, error) {
	var ret []*state.HeaderRecord
	known := 0
	batch := make(map[string]*state.HeaderRecord)
	for i, header := range headers {
		hash := header.HashString()
		if _, ok := batch[hash]; ok {
			known++
			continue
		}
		existing, err := v.state.GetHeader(hash)
		if err != nil {
			return nil, 0, err
		}
		if existing != nil {
			batch[hash] = existing
			known++
			continue
		}
		work, err := pow.Work(header.Bits)
		if err != nil {
			return nil, 0, err
		}
		record := &state.HeaderRecord{
			Header:    *header,
			ChainWork: work,
		}
		if hash != v.genesisHash {
			prevHash := header.PrevBlockString()
			parent, ok := batch[prevHash]
			if !ok {
				parent, err = v.state.GetHeader(prevHash)
				if err != nil {
					return nil, 0, err
				}
			}
			if parent == nil {
				return nil, 0, fmt.Errorf(
					"header %d (%s) with parent %s: %w",
					i,
					hash,
					prevHash,
					ErrUnknownParent,
				)
			}
			record.Height = parent.Height + 1
			record.ChainWork, err = pow.AddWork(parent.ChainWork, header.Bits)
			if err != nil {
				return nil, 0, err
			}
		}
		batch[hash] = record
		ret = append(ret, record)
	}
	return ret, known, nil
}

// store persists records in one transaction, moving the tip to the last
// record which carries more work than the tip before it
func (v *Validator) store(records []*state.HeaderRecord) error {
	tipWork := new(uint256.Int)
	_, tipHash, err := v.state.GetTip()
	if err != nil {
		return err
	}
	if tipHash != "" {
		tip, err := v.state.GetHeader(tipHash)
		if err != nil {
			return err
		}
		if tip != nil {
			tipWork = tip.ChainWork
		}
	}
	var newTip *state.HeaderRecord
	for _, record := range records {
		if record.ChainWork.Gt(tipWork) {
			newTip = record
			tipWork = record.ChainWork
		}
	}
	if err := v.state.StoreHeaders(records, newTip); err != nil {
		return err
	}
	for _, record := range records {
		hash := record.Header.HashString()
		metrics.HeadersAccepted.Inc()
		v.logger.Debugf("accepted header %s at height %d", hash, record.Height)
	}
	if newTip != nil {
		metrics.TipHeight.Set(float64(newTip.Height))
		metrics.SetChainWork(newTip.ChainWork)
		v.logger.Infof(
			"chain tip moved to %s at height %d",
			newTip.Header.HashString(),
			newTip.Height,
		)
	}
	return nil
}
