// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/databolt/tenantadmin/cmd/tenantadmin/cli"
)

// RequestsCommand returns the "requests" subcommand that prints the
// session provisioning request log.
func RequestsCommand() *cli.Command {
	var configPath, seedPath string
	var asJSON bool

	return &cli.Command{
		Name:    "requests",
		Summary: "Show the session provisioning request log",
		Description: `Print the read-only log of provisioning requests for this session,
including each request's processing timeline.`,
		Usage: "tenantadmin requests [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("requests", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			flagSet.StringVar(&seedPath, "seed", "", "path to YAML seed fixtures")
			flagSet.BoolVar(&asJSON, "json", false, "emit JSON instead of a table")
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

			if asJSON {
				return printJSON(env.seed.Requests)
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "REQUEST\tEVENT\tSTATUS\tTENANT\tORDER\tRESPONSE")
			for _, request := range env.seed.Requests {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\tHTTP %d %s\n",
					request.ID, request.EventType, request.Status,
					request.TenantDisplayName, request.OrderID,
					request.Response.HTTPStatus, request.Response.Message)
			}
			tw.Flush()

			for _, request := range env.seed.Requests {
				fmt.Printf("\n%s timeline:\n", request.ID)
				for _, step := range request.Timeline {
					fmt.Printf("  %s  %s\n", step.TS, step.Label)
				}
			}
			return nil
		},
	}
}
