// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package commands assembles the tenantadmin command tree.
package commands

import (
	"github.com/databolt/tenantadmin/cmd/tenantadmin/cli"
)

// Root returns the top-level tenantadmin command.
func Root() *cli.Command {
	return &cli.Command{
		Name:    "tenantadmin",
		Summary: "Administrative dashboard for tenant accounts",
		Description: `tenantadmin manages tenant accounts for a multi-tenant product:
listing, searching, creating, and deleting tenants, plus a read-only
log of session provisioning requests.

All state lives in process memory and is seeded from fixtures; there
is no backend integration and nothing survives a restart.`,
		Subcommands: []*cli.Command{
			DashboardCommand(),
			TenantCommand(),
			RequestsCommand(),
			VersionCommand(),
		},
	}
}
