// Copyright 2025 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blinklabs-io/bignum/pow"
)

func TestLoadProfileDefaults(t *testing.T) {
	t.Setenv("VALIDATOR_NETWORK", "mainnet")
	t.Setenv("VALIDATOR_POW_LIMIT", "")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if cfg.Validator.PowLimitBits != pow.MaxTargetBits {
		t.Fatalf(
			"got limit 0x%08x, want 0x%08x",
			cfg.Validator.PowLimitBits,
			pow.MaxTargetBits,
		)
	}
	if cfg.Validator.GenesisHash != pow.NetworkMainnet.GenesisHash {
		t.Fatalf("got genesis %s", cfg.Validator.GenesisHash)
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("VALIDATOR_NETWORK", "")
	t.Setenv("VALIDATOR_POW_LIMIT", "")
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	configData := []byte(`
logging:
  level: debug
validator:
  network: regtest
  workers: 2
  format: raw
`)
	if err := os.WriteFile(configFile, configData, 0o600); err != nil {
		t.Fatalf("unexpected error writing config: %s", err)
	}
	// An empty env var still counts as set, so drop it entirely
	os.Unsetenv("VALIDATOR_NETWORK")
	os.Unsetenv("VALIDATOR_POW_LIMIT")
	cfg, err := Load(configFile)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("got logging level %s, want debug", cfg.Logging.Level)
	}
	if cfg.Validator.Workers != 2 || cfg.Validator.Format != FormatRaw {
		t.Fatalf("unexpected validator config: %+v", cfg.Validator)
	}
	if cfg.Validator.PowLimitBits != pow.NetworkRegtest.PowLimitBits {
		t.Fatalf("got limit 0x%08x", cfg.Validator.PowLimitBits)
	}
}

func TestLoadFilePowLimit(t *testing.T) {
	t.Setenv("VALIDATOR_NETWORK", "")
	t.Setenv("VALIDATOR_POW_LIMIT", "")
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	configData := []byte(`
validator:
  network: mainnet
  powLimit: "0x1c00ffff"
`)
	if err := os.WriteFile(configFile, configData, 0o600); err != nil {
		t.Fatalf("unexpected error writing config: %s", err)
	}
	os.Unsetenv("VALIDATOR_NETWORK")
	os.Unsetenv("VALIDATOR_POW_LIMIT")
	t.Cleanup(func() {
		globalConfig.Validator.PowLimit = ""
	})
	cfg, err := Load(configFile)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if cfg.Validator.PowLimit != "0x1c00ffff" {
		t.Fatalf("got powLimit %q, want 0x1c00ffff", cfg.Validator.PowLimit)
	}
	if cfg.Validator.PowLimitBits != 0x1c00ffff {
		t.Fatalf("got limit 0x%08x, want 0x1c00ffff", cfg.Validator.PowLimitBits)
	}
}

func TestLoadPowLimitOverride(t *testing.T) {
	t.Setenv("VALIDATOR_NETWORK", "testnet3")
	t.Setenv("VALIDATOR_POW_LIMIT", "0x1c00ffff")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if cfg.Validator.PowLimitBits != 0x1c00ffff {
		t.Fatalf("got limit 0x%08x, want 0x1c00ffff", cfg.Validator.PowLimitBits)
	}
}

func TestLoadErrors(t *testing.T) {
	testDefs := []struct {
		name  string
		key   string
		value string
	}{
		{name: "network", key: "VALIDATOR_NETWORK", value: "bogus"},
		{name: "limit", key: "VALIDATOR_POW_LIMIT", value: "zz"},
		{name: "workers", key: "VALIDATOR_WORKERS", value: "0"},
		{name: "format", key: "VALIDATOR_FORMAT", value: "json"},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			t.Setenv("VALIDATOR_NETWORK", "mainnet")
			t.Setenv("VALIDATOR_POW_LIMIT", "1d00ffff")
			t.Setenv("VALIDATOR_WORKERS", "4")
			t.Setenv("VALIDATOR_FORMAT", FormatHex)
			t.Setenv(testDef.key, testDef.value)
			if _, err := Load(""); err == nil {
				t.Fatalf("expected error for %s=%s", testDef.key, testDef.value)
			}
		})
	}
}

func TestGetAvailableProfiles(t *testing.T) {
	got := GetAvailableProfiles()
	expected := []string{"mainnet", "regtest", "testnet3"}
	if len(got) != len(expected) {
		t.Fatalf("got %v, want %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("got %v, want %v", got, expected)
		}
	}
}
