// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/databolt/tenantadmin/cmd/tenantadmin/cli"
	"github.com/databolt/tenantadmin/lib/clock"
	"github.com/databolt/tenantadmin/lib/config"
	"github.com/databolt/tenantadmin/lib/tenantstore"
)

// environment is the shared state every command operates on: the
// loaded configuration plus a store populated from seed fixtures.
type environment struct {
	config config.Config
	store  *tenantstore.Store
	seed   tenantstore.SeedData
}

// loadEnvironment resolves config and seed data and builds the
// populated store. The --seed flag wins over the config file's
// seed_file; both empty means the built-in fixtures.
func loadEnvironment(configPath, seedPath string) (*environment, error) {
	configuration, err := config.Load(configPath)
	if err != nil {
		return nil, cli.Internal("load config: %w", err)
	}

	if seedPath == "" {
		seedPath = configuration.SeedFile
	}

	var seed tenantstore.SeedData
	if seedPath == "" {
		seed, err = tenantstore.DefaultSeed()
	} else {
		seed, err = tenantstore.LoadSeedFile(seedPath)
	}
	if err != nil {
		return nil, cli.Internal("load seed data: %w", err)
	}

	store := tenantstore.New(configuration.CustomerID, clock.Real())
	if err := seed.Populate(store); err != nil {
		return nil, cli.Internal("populate store: %w", err)
	}

	return &environment{
		config: configuration,
		store:  store,
		seed:   seed,
	}, nil
}
