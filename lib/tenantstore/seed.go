// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

package tenantstore

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/databolt/tenantadmin/lib/tenant"
)

//go:embed seed.yaml
var defaultSeed []byte

// SeedData is the fixture set the dashboard starts from: the initial
// tenant collection and the session-scoped request log.
type SeedData struct {
	Tenants  []tenant.Tenant  `yaml:"tenants"`
	Requests []tenant.Request `yaml:"requests"`
}

// DefaultSeed returns the built-in fixture set.
func DefaultSeed() (SeedData, error) {
	return ParseSeed(defaultSeed)
}

// LoadSeedFile reads and parses a YAML seed file.
func LoadSeedFile(path string) (SeedData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SeedData{}, fmt.Errorf("read seed file: %w", err)
	}
	seed, err := ParseSeed(data)
	if err != nil {
		return SeedData{}, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return seed, nil
}

// ParseSeed parses YAML seed data and checks that every tenant
// carries an ID and a known status. Request records are taken as-is:
// they are historical events, not live state.
func ParseSeed(data []byte) (SeedData, error) {
	var seed SeedData
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return SeedData{}, fmt.Errorf("unmarshal seed: %w", err)
	}

	for index, record := range seed.Tenants {
		if record.TenantID == "" {
			return SeedData{}, fmt.Errorf("seed tenant %d has no tenant ID", index)
		}
		if !record.TenantStatus.Valid() {
			return SeedData{}, fmt.Errorf("seed tenant %s has unknown status %q",
				record.TenantID, record.TenantStatus)
		}
	}

	return seed, nil
}

// Populate adds every seed tenant to the store. Stops at the first
// duplicate ID so a bad fixture file fails loudly instead of loading
// half a collection.
func (seed SeedData) Populate(store *Store) error {
	for _, record := range seed.Tenants {
		if err := store.Add(record); err != nil {
			return fmt.Errorf("seed store: %w", err)
		}
	}
	return nil
}
