// Copyright 2023 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/blinklabs-io/bignum/bignum"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Debug     DebugConfig     `yaml:"debug"`
	State     StateConfig     `yaml:"state"`
	Validator ValidatorConfig `yaml:"validator"`
}

type LoggingConfig struct {
	Level string `yaml:"level" envconfig:"LOGGING_LEVEL"`
}

type DebugConfig struct {
	ListenAddress string `yaml:"address" envconfig:"DEBUG_ADDRESS"`
	ListenPort    uint   `yaml:"port"    envconfig:"DEBUG_PORT"`
}

type MetricsConfig struct {
	ListenAddress string `yaml:"address" envconfig:"METRICS_LISTEN_ADDRESS"`
	ListenPort    uint   `yaml:"port"    envconfig:"METRICS_LISTEN_PORT"`
}

type StateConfig struct {
	Directory string `yaml:"dir" envconfig:"STATE_DIR"`
}

type ValidatorConfig struct {
	Network string `yaml:"network" envconfig:"VALIDATOR_NETWORK"`
	// Compact form of the easiest target accepted, as hex
	PowLimit string `yaml:"powLimit" envconfig:"VALIDATOR_POW_LIMIT"`
	Workers  int    `yaml:"workers"  envconfig:"VALIDATOR_WORKERS"`
	Input    string `yaml:"input"    envconfig:"VALIDATOR_INPUT"`
	// Input format: "hex" (one header per line) or "raw" (80 byte records)
	Format string `yaml:"format" envconfig:"VALIDATOR_FORMAT"`
	// Populated from PowLimit or the network profile
	PowLimitBits uint32 `yaml:"-" ignored:"true"`
	GenesisHash  string `yaml:"-" ignored:"true"`
}

const (
	FormatHex = "hex"
	FormatRaw = "raw"
)

// Singleton config instance with default values
var globalConfig = &Config{
	Logging: LoggingConfig{
		Level: "info",
	},
	Debug: DebugConfig{
		ListenAddress: "localhost",
		ListenPort:    0,
	},
	Metrics: MetricsConfig{
		ListenAddress: "",
		ListenPort:    8081,
	},
	State: StateConfig{
		Directory: "./.state",
	},
	Validator: ValidatorConfig{
		Network: "mainnet",
		Workers: 4,
		Format:  FormatHex,
	},
}

func Load(configFile string) (*Config, error) {
	// Load config file as YAML if provided
	if configFile != "" {
		buf, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		err = yaml.Unmarshal(buf, globalConfig)
		if err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}
	// Load config values from environment variables
	// We use "dummy" as the app name here to (mostly) prevent picking up env
	// vars that we hadn't explicitly specified in annotations above
	err := envconfig.Process("dummy", globalConfig)
	if err != nil {
		return nil, fmt.Errorf("error processing environment: %w", err)
	}
	// Check network profile
	profile, ok := Profiles[globalConfig.Validator.Network]
	if !ok {
		return nil, fmt.Errorf(
			"unknown network: %s: available networks: %s",
			globalConfig.Validator.Network,
			strings.Join(GetAvailableProfiles(), ","),
		)
	}
	globalConfig.Validator.GenesisHash = profile.GenesisHash
	globalConfig.Validator.PowLimitBits = profile.PowLimitBits
	// Explicit limit overrides the profile
	if globalConfig.Validator.PowLimit != "" {
		bits, err := bignum.ParseCompact(globalConfig.Validator.PowLimit)
		if err != nil {
			return nil, fmt.Errorf("invalid proof-of-work limit: %w", err)
		}
		globalConfig.Validator.PowLimitBits = bits
	}
	if globalConfig.Validator.Workers < 1 {
		return nil, fmt.Errorf(
			"invalid worker count: %d",
			globalConfig.Validator.Workers,
		)
	}
	switch globalConfig.Validator.Format {
	case FormatHex, FormatRaw:
	default:
		return nil, fmt.Errorf(
			"unknown input format: %s",
			globalConfig.Validator.Format,
		)
	}
	return globalConfig, nil
}

// GetConfig returns the global config instance
func GetConfig() *Config {
	return globalConfig
}
