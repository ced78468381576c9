// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/databolt/tenantadmin/cmd/tenantadmin/cli"
	"github.com/databolt/tenantadmin/lib/notify"
	"github.com/databolt/tenantadmin/lib/tenantui"
)

// DashboardCommand returns the "dashboard" subcommand that launches
// the interactive tenant dashboard.
func DashboardCommand() *cli.Command {
	var configPath string
	var seedPath string

	return &cli.Command{
		Name:    "dashboard",
		Summary: "Interactive tenant dashboard",
		Description: `Launch the terminal dashboard for browsing and managing tenants.

The table supports free-text search (/), a status filter (s), and
per-column sort toggles (1-5). Tenants are created through the form
modal (c) and deleted behind a confirmation gate (d). The session
provisioning request log opens with r.`,
		Usage: "tenantadmin dashboard [flags]",
		Examples: []cli.Example{
			{
				Description: "Open the dashboard with built-in fixtures",
				Command:     "tenantadmin dashboard",
			},
			{
				Description: "Open with a custom seed file",
				Command:     "tenantadmin dashboard --seed fixtures/staging.yaml",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("dashboard", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file (default: $TENANTADMIN_CONFIG)")
			flagSet.StringVar(&seedPath, "seed", "", "path to YAML seed fixtures (default: built-in)")
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			env, err := loadEnvironment(configPath, seedPath)
			if err != nil {
				return err
			}

			logger.Info("starting dashboard",
				"tenants", env.store.Len(),
				"requests", len(env.seed.Requests),
			)

			model := tenantui.NewModel(env.store, notify.NewQueue(),
				env.seed.Requests, env.config.DefaultSort, env.config.ToastTTL.Std())
			program := tea.NewProgram(model, tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}
}
