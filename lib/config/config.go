// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package config loads the dashboard configuration.
//
// Configuration comes from a single YAML file named by either the
// TENANTADMIN_CONFIG environment variable or the --config flag. There
// is no automatic discovery and no fallback chain: a run either uses
// the named file or the built-in defaults, never a hidden override.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/databolt/tenantadmin/lib/tenantview"
)

// EnvVar names the environment variable that selects the config file.
const EnvVar = "TENANTADMIN_CONFIG"

// Duration is a time.Duration that unmarshals from YAML duration
// strings like "4s" or "1m30s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a standard time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config is the dashboard configuration.
type Config struct {
	// CustomerID is the fixed customer code stamped onto every
	// tenant created through this tool.
	CustomerID string `yaml:"customer_id"`

	// SeedFile is an optional YAML fixture file for the initial
	// tenant collection and request log. Empty means the built-in
	// fixtures.
	SeedFile string `yaml:"seed_file"`

	// DefaultSort is the table ordering at startup.
	DefaultSort tenantview.SortConfig `yaml:"default_sort"`

	// ToastTTL is how long a toast stays on screen before
	// auto-expiry. Zero disables auto-expiry (dismissal only).
	ToastTTL Duration `yaml:"toast_ttl"`
}

// Default returns the configuration used when no file is named.
func Default() Config {
	return Config{
		CustomerID:  "TSS",
		DefaultSort: tenantview.DefaultSort,
		ToastTTL:    Duration(4 * time.Second),
	}
}

// Load resolves the config file path (flag value first, then the
// environment variable) and parses it. An empty resolved path returns
// the defaults. Unset fields in the file fall back to their defaults.
func Load(flagPath string) (Config, error) {
	path := flagPath
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	configuration := Default()
	if err := yaml.Unmarshal(data, &configuration); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := configuration.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return configuration, nil
}

func (configuration Config) validate() error {
	if configuration.CustomerID == "" {
		return fmt.Errorf("customer_id must not be empty")
	}
	switch configuration.DefaultSort.Dir {
	case tenantview.Ascending, tenantview.Descending, "":
	default:
		return fmt.Errorf("default_sort.dir must be %q or %q, got %q",
			tenantview.Ascending, tenantview.Descending, configuration.DefaultSort.Dir)
	}
	if configuration.ToastTTL < 0 {
		return fmt.Errorf("toast_ttl must not be negative")
	}
	return nil
}
