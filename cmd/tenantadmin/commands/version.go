// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/databolt/tenantadmin/cmd/tenantadmin/cli"
)

// VersionCommand returns the "version" subcommand.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:    "version",
		Summary: "Print the tenantadmin version",
		Usage:   "tenantadmin version",
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			version := "(devel)"
			if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
				version = info.Main.Version
			}
			fmt.Println("tenantadmin", version)
			return nil
		},
	}
}
