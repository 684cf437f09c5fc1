// Copyright 2025 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package validator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/blinklabs-io/bignum/internal/config"
	"github.com/blinklabs-io/bignum/pow"
)

// readHeaders decodes headers from r. The hex format takes one header per
// line, ignoring blank lines and lines starting with '#'. The raw format
// takes back-to-back 80 byte headers.
func readHeaders(r io.Reader, format string) ([]*pow.BlockHeader, error) {
	switch format {
	case config.FormatHex:
		return readHexHeaders(r)
	case config.FormatRaw:
		return readRawHeaders(r)
	default:
		return nil, fmt.Errorf("unknown input format: %s", format)
	}
}

func readHexHeaders(r io.Reader) ([]*pow.BlockHeader, error) {
	var ret []*pow.BlockHeader
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		header, err := pow.NewBlockHeaderFromHex(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		ret = append(ret, header)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ret, nil
}

func readRawHeaders(r io.Reader) ([]*pow.BlockHeader, error) {
	var ret []*pow.BlockHeader
	buf := make([]byte, pow.BlockHeaderSize)
	for {
		_, err := io.ReadFull(r, buf)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("header %d: %w", len(ret), err)
		}
		header, err := pow.NewBlockHeaderFromBytes(buf)
		if err != nil {
			return nil, fmt.Errorf("header %d: %w", len(ret), err)
		}
		ret = append(ret, header)
	}
	return ret, nil
}
