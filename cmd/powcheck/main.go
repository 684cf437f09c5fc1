// Copyright 2025 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/blinklabs-io/bignum/internal/config"
	"github.com/blinklabs-io/bignum/internal/logging"
	"github.com/blinklabs-io/bignum/internal/metrics"
	"github.com/blinklabs-io/bignum/internal/state"
	"github.com/blinklabs-io/bignum/internal/validator"
	"github.com/blinklabs-io/bignum/internal/version"
)

var cmdlineFlags struct {
	configFile string
	input      string
}

func main() {
	flag.StringVar(
		&cmdlineFlags.configFile,
		"config",
		"",
		"path to config file to load",
	)
	flag.StringVar(
		&cmdlineFlags.input,
		"input",
		"",
		"path to header input file (default: stdin)",
	)
	flag.Parse()

	// Load config
	cfg, err := config.Load(cmdlineFlags.configFile)
	if err != nil {
		fmt.Printf("Failed to load config: %s\n", err)
		os.Exit(1)
	}
	if cmdlineFlags.input != "" {
		cfg.Validator.Input = cmdlineFlags.input
	}

	// Configure logging
	logging.Setup()
	logger := logging.GetLogger()
	// Sync logger on exit
	defer func() {
		if err := logger.Sync(); err != nil {
			// We don't actually care about the error here, but we have to do something
			// to appease the linter
			return
		}
	}()

	logger.Info(
		fmt.Sprintf("powcheck %s started", version.GetVersionString()),
	)
	metrics.SetBuildInfo(version.GetBuildInfo())

	// Load state
	if err := state.GetState().Load(); err != nil {
		logger.Fatalf("failed to load state: %s", err)
	}
	defer func() {
		if err := state.GetState().Close(); err != nil {
			logger.Errorf("failed to close state: %s", err)
		}
	}()

	// Start debug listener
	if cfg.Debug.ListenPort > 0 {
		logger.Infof(
			"starting debug listener on %s:%d",
			cfg.Debug.ListenAddress,
			cfg.Debug.ListenPort,
		)
		go func() {
			err := http.ListenAndServe(
				fmt.Sprintf(
					"%s:%d",
					cfg.Debug.ListenAddress,
					cfg.Debug.ListenPort,
				),
				nil,
			)
			if err != nil {
				logger.Fatalf("failed to start debug listener: %s", err)
			}
		}()
	}

	// Start metrics listener
	if cfg.Metrics.ListenPort > 0 {
		logger.Infof(
			"starting metrics listener on %s:%d",
			cfg.Metrics.ListenAddress,
			cfg.Metrics.ListenPort,
		)
		metricsMux := http.NewServeMux()
		metricsMux.Handle("/metrics", metrics.Handler())
		metricsServer := &http.Server{
			Addr: fmt.Sprintf(
				"%s:%d",
				cfg.Metrics.ListenAddress,
				cfg.Metrics.ListenPort,
			),
			Handler:           metricsMux,
			ReadHeaderTimeout: 60 * time.Second,
		}
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil &&
				err != http.ErrServerClosed {
				logger.Fatalf("failed to start metrics listener: %s", err)
			}
		}()
	}

	// Open input
	var input io.Reader = os.Stdin
	if cfg.Validator.Input != "" && cfg.Validator.Input != "-" {
		f, err := os.Open(cfg.Validator.Input)
		if err != nil {
			logger.Fatalf("failed to open input: %s", err)
		}
		defer f.Close()
		input = f
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger.Infof(
		"validating %s headers for network %s (limit 0x%08x, %d workers)",
		cfg.Validator.Format,
		cfg.Validator.Network,
		cfg.Validator.PowLimitBits,
		cfg.Validator.Workers,
	)
	v := validator.New(state.GetState(), cfg.Validator)
	res, err := v.Run(ctx, input)
	if err != nil {
		logger.Errorf("validation failed: %s", err)
		// Deferred calls don't run on os.Exit
		_ = state.GetState().Close()
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Infof(
		"accepted %d headers (%d already known), tip %s at height %d, chain work %s",
		res.Accepted,
		res.Known,
		res.TipHash,
		res.TipHeight,
		res.ChainWork.Hex(),
	)
}
