// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/databolt/tenantadmin/cmd/tenantadmin/cli"
	"github.com/databolt/tenantadmin/lib/tenant"
	"github.com/databolt/tenantadmin/lib/tenantview"
)

// TenantCommand returns the "tenant" command group for
// non-interactive access to the same store and view engine the
// dashboard drives.
func TenantCommand() *cli.Command {
	return &cli.Command{
		Name:    "tenant",
		Summary: "Manage tenant accounts",
		Subcommands: []*cli.Command{
			tenantListCommand(),
			tenantShowCommand(),
			tenantCreateCommand(),
			tenantDeleteCommand(),
		},
	}
}

func tenantListCommand() *cli.Command {
	var configPath, seedPath string
	var search, status, sortKey string
	var descending, asJSON bool

	return &cli.Command{
		Name:    "list",
		Summary: "List tenants",
		Description: `List tenants with the same search, status filter, and sorting the
dashboard table uses.`,
		Usage: "tenantadmin tenant list [flags]",
		Examples: []cli.Example{
			{
				Description: "All Trial tenants, newest first",
				Command:     "tenantadmin tenant list --status Trial --sort createdDate --desc",
			},
			{
				Description: "Search by name fragment as JSON",
				Command:     "tenantadmin tenant list --search alpha --json",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			flagSet.StringVar(&seedPath, "seed", "", "path to YAML seed fixtures")
			flagSet.StringVar(&search, "search", "", "case-insensitive text filter (name, ID, email)")
			flagSet.StringVar(&status, "status", tenant.FilterAll, "status filter (Full, Trial, Pause, Offboarding, Closed, all)")
			flagSet.StringVar(&sortKey, "sort", "", "sort column (tenantDisplayName, tenantId, adminEmail, tenantStatus, createdDate)")
			flagSet.BoolVar(&descending, "desc", false, "sort descending")
			flagSet.BoolVar(&asJSON, "json", false, "emit JSON instead of a table")
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			if status != tenant.FilterAll && !tenant.Status(status).Valid() {
				return cli.Validation("unknown status %q", status)
			}

			env, err := loadEnvironment(configPath, seedPath)
			if err != nil {
				return err
			}

			sort := tenantview.SortConfig{Key: sortKey, Dir: tenantview.Ascending}
			if descending {
				sort.Dir = tenantview.Descending
			}

			view := tenantview.DeriveView(env.store.List(), search, status, sort)

			if asJSON {
				return printJSON(view)
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "TENANT ID\tNAME\tSTATUS\tADMIN EMAIL\tCREATED")
			for _, record := range view {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					record.TenantID, record.TenantDisplayName,
					record.TenantStatus, record.AdminEmail, record.CreatedDate)
			}
			tw.Flush()

			stats := env.store.Stats()
			fmt.Printf("\n%d of %d tenants (%d active, %d trial, %d paused)\n",
				len(view), stats.Total, stats.Active, stats.Trial, stats.Paused)
			return nil
		},
	}
}

func tenantShowCommand() *cli.Command {
	var configPath, seedPath string

	return &cli.Command{
		Name:    "show",
		Summary: "Show one tenant's full record",
		Usage:   "tenantadmin tenant show <tenant-id> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("show", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			flagSet.StringVar(&seedPath, "seed", "", "path to YAML seed fixtures")
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 {
				return cli.Validation("expected exactly one tenant ID argument")
			}

			env, err := loadEnvironment(configPath, seedPath)
			if err != nil {
				return err
			}

			record, ok := env.store.Get(args[0])
			if !ok {
				return cli.NotFound("no tenant with ID %q", args[0])
			}
			return printJSON(record)
		},
	}
}

func tenantCreateCommand() *cli.Command {
	var configPath, seedPath string
	var displayName, customerName, email, firstName, lastName string
	var products []string

	return &cli.Command{
		Name:    "create",
		Summary: "Create a tenant",
		Description: `Create a tenant in the in-memory store and print the stored record.

New tenants always start in Trial status with a generated tenant ID.
Because the store is not persistent, this is useful for validating
form inputs and fixtures rather than real provisioning.`,
		Usage: "tenantadmin tenant create [flags]",
		Examples: []cli.Example{
			{
				Description: "Create a Trial tenant with one product",
				Command: "tenantadmin tenant create --name 'Epsilon Labs' --customer 'Epsilon Inc' " +
					"--email admin@epsilon.example --first Ada --last Byron --product DATABOLT_CORE",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("create", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			flagSet.StringVar(&seedPath, "seed", "", "path to YAML seed fixtures")
			flagSet.StringVar(&displayName, "name", "", "tenant display name")
			flagSet.StringVar(&customerName, "customer", "", "customer name")
			flagSet.StringVar(&email, "email", "", "admin email")
			flagSet.StringVar(&firstName, "first", "", "admin first name")
			flagSet.StringVar(&lastName, "last", "", "admin last name")
			flagSet.StringSliceVar(&products, "product", nil,
				"product to enable (repeatable): "+strings.Join(tenant.Products, ", "))
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

			record, err := env.store.Create(tenant.NewTenantRequest{
				TenantDisplayName: displayName,
				CustomerName:      customerName,
				AdminEmail:        email,
				AdminFirstName:    firstName,
				AdminLastName:     lastName,
				Products:          products,
			})
			if err != nil {
				return cli.Validation("create tenant: %w", err)
			}

			logger.Info("tenant created",
				"tenant_id", record.TenantID,
				"display_name", record.TenantDisplayName,
			)
			return printJSON(record)
		},
	}
}

func tenantDeleteCommand() *cli.Command {
	var configPath, seedPath string
	var yes bool

	return &cli.Command{
		Name:    "delete",
		Summary: "Delete a tenant",
		Description: `Delete a tenant from the in-memory store. Deletion requires explicit
confirmation: pass --yes or answer the interactive prompt.`,
		Usage: "tenantadmin tenant delete <tenant-id> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("delete", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			flagSet.StringVar(&seedPath, "seed", "", "path to YAML seed fixtures")
			flagSet.BoolVar(&yes, "yes", false, "skip the confirmation prompt")
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 {
				return cli.Validation("expected exactly one tenant ID argument")
			}
			tenantID := args[0]

			env, err := loadEnvironment(configPath, seedPath)
			if err != nil {
				return err
			}

			record, ok := env.store.Get(tenantID)
			if !ok {
				return cli.NotFound("no tenant with ID %q", tenantID)
			}

			if !yes {
				confirmed, err := confirmPrompt(fmt.Sprintf(
					"Delete tenant %q (%s)? [y/N]: ",
					record.TenantDisplayName, record.TenantID))
				if err != nil {
					return cli.Internal("read confirmation: %w", err)
				}
				if !confirmed {
					fmt.Println("aborted")
					return nil
				}
			}

			env.store.Remove(tenantID)
			logger.Info("tenant deleted", "tenant_id", tenantID)
			fmt.Printf("deleted %s\n", tenantID)
			return nil
		},
	}
}

// confirmPrompt asks a yes/no question on stderr and reads one line.
// Only an explicit "y" or "yes" confirms.
func confirmPrompt(question string) (bool, error) {
	fmt.Fprint(os.Stderr, question)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
