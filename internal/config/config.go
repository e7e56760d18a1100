// Copyright 2026 Benoit Pereira da Silva
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides YAML configuration loading and validation for the
// carve command.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/benoit-pereira-da-silva/carve/pkg/carver"
)

// Config is the top-level configuration for a carve run. Every field may
// also be set or overridden by a command-line flag (see cmd/carve); a config
// file is for the options operators want to keep stable across invocations.
type Config struct {
	// MinSize is the minimum candidate length, in bytes, that reaches either
	// sink. Defaults to carver.DefaultMinSize (4) when omitted.
	MinSize int `yaml:"min_size"`

	// FixIncomplete enables the repair writer for corrupted/exhausted
	// candidates. Defaults to false.
	FixIncomplete bool `yaml:"fix_incomplete"`

	// ReplaceNewlines substitutes raw newlines inside a candidate with a
	// space as it is buffered. Defaults to false.
	ReplaceNewlines bool `yaml:"replace_newlines"`

	// MaxIdentDepth bounds how deeply containers may nest before a
	// candidate is treated as corrupted. Defaults to carver's internal
	// default when zero.
	MaxIdentDepth int `yaml:"max_ident_depth"`

	// Verify runs a semantic sanity pass (full JSON unmarshal) over every
	// completed candidate before it reaches the JSON sink, dropping those
	// that fail it. Defaults to false.
	Verify bool `yaml:"verify"`

	// Digest selects an optional per-candidate content fingerprint
	// algorithm: "", "fnv1a", "xxh3", or "blake2b". Defaults to "" (no
	// digest computed).
	Digest string `yaml:"digest"`

	// LogLevel sets the minimum log severity: "debug", "info", "warn", or
	// "error". Defaults to "info" when omitted.
	LogLevel string `yaml:"log_level"`

	// Workers bounds how many files a batch-mode invocation carves
	// concurrently. Defaults to 1 (no concurrency) when zero.
	Workers int `yaml:"workers"`
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validDigests = map[string]bool{
	"":        true,
	"fnv1a":   true,
	"xxh3":    true,
	"blake2b": true,
}

// Load reads the YAML file at path, unmarshals it into Config, applies
// defaults, and validates all fields. A missing path is not an error: Load
// returns Default() unchanged, since every field has a workable zero-value
// default and the CLI is meant to run with no config file at all.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: cannot read %q: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: cannot parse %q: %w", path, err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: validation failed for %q: %w", path, err)
	}
	return cfg, nil
}

// Default returns a Config populated with the same defaults a carve
// invocation would use with no flags and no config file.
func Default() *Config {
	return &Config{
		MinSize:  carver.DefaultMinSize,
		LogLevel: "info",
		Workers:  1,
	}
}

func validate(cfg *Config) error {
	var errs []error
	if !validLogLevels[cfg.LogLevel] {
		errs = append(errs, fmt.Errorf("log_level %q must be one of: debug, info, warn, error", cfg.LogLevel))
	}
	if !validDigests[cfg.Digest] {
		errs = append(errs, fmt.Errorf("digest %q must be one of: \"\", fnv1a, xxh3, blake2b", cfg.Digest))
	}
	if cfg.MinSize < 0 {
		errs = append(errs, errors.New("min_size must not be negative"))
	}
	if cfg.Workers < 0 {
		errs = append(errs, errors.New("workers must not be negative"))
	}
	return errors.Join(errs...)
}
