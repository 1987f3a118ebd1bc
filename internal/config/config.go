/*
 * config.go, part of structio.
 *
 * Copyright 2025 rmeraaatacademicosdotutadotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package config holds the run configuration of the structio command: a
// YAML file, defaults and environment overrides.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/rmera/structio"
	"github.com/rmera/structio/contact"
)

// Environment variable names.
const (
	EnvWorkers = "STRUCTIO_WORKERS"
	EnvCutoff  = "STRUCTIO_CUTOFF"
)

// Config is the run configuration.
type Config struct {
	// Workers is the number of files parsed at the same time by batch.
	Workers int `yaml:"workers"`
	// Cutoff is the contact distance, in A.
	Cutoff float64 `yaml:"cutoff"`
	// Format forces a file format. Empty means "by extension".
	Format string `yaml:"format"`
	// Quiet discards log messages.
	Quiet bool `yaml:"quiet"`
}

// DefaultConfig returns a configuration with one worker per CPU and the
// default contact cutoff.
func DefaultConfig() *Config {
	return &Config{
		Workers: runtime.NumCPU(),
		Cutoff:  contact.DefaultCutoff,
	}
}

// Load reads and validates a configuration file. With an empty path, only
// the defaults and the environment are used.
func Load(_ context.Context, path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	if err := cfg.applyEnvironmentOverrides(); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if cfg.Workers < 1 {
		return fmt.Errorf("workers: must be at least 1, got %d", cfg.Workers)
	}
	if !(cfg.Cutoff > 0) {
		return errors.New("cutoff: must be a positive distance")
	}
	if _, _, err := cfg.StructFormat(); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	return nil
}

// StructFormat returns the format set in the configuration, and false if
// none is set.
func (c *Config) StructFormat() (structio.Format, bool, error) {
	if c.Format == "" {
		return 0, false, nil
	}
	f, err := structio.ParseFormat(c.Format)
	if err != nil {
		return 0, false, err
	}
	return f, true, nil
}

func (c *Config) applyEnvironmentOverrides() error {
	if w := os.Getenv(EnvWorkers); w != "" {
		n, err := strconv.Atoi(w)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWorkers, err)
		}
		c.Workers = n
	}
	if s := os.Getenv(EnvCutoff); s != "" {
		cut, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvCutoff, err)
		}
		c.Cutoff = cut
	}
	return nil
}
