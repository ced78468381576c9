// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "tenantadmin",
		Subcommands: []*Command{
			{
				Name: "version",
				Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
					called = "version"
					return nil
				},
			},
			{
				Name: "tenant",
				Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
					called = "tenant"
					return nil
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"tenant"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "tenant" {
		t.Errorf("dispatched to %q, want %q", called, "tenant")
	}
}

func TestCommand_Execute_NestedSubcommands(t *testing.T) {
	var receivedArgs []string

	root := &Command{
		Name: "tenantadmin",
		Subcommands: []*Command{
			{
				Name: "tenant",
				Subcommands: []*Command{
					{
						Name: "list",
						Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
							receivedArgs = args
							return nil
						},
					},
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"tenant", "list", "extra"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "extra" {
		t.Errorf("nested command received args %v, want [extra]", receivedArgs)
	}
}

func TestCommand_Execute_UnknownCommandSuggests(t *testing.T) {
	root := &Command{
		Name: "tenantadmin",
		Subcommands: []*Command{
			{Name: "dashboard"},
			{Name: "tenant"},
		},
	}

	err := root.Execute(context.Background(), []string{"tenent"})
	if err == nil {
		t.Fatal("unknown command did not error")
	}
	if !strings.Contains(err.Error(), `did you mean "tenant"`) {
		t.Errorf("error lacks suggestion: %v", err)
	}
}

func TestCommand_Execute_UnknownCommandNoSuggestion(t *testing.T) {
	root := &Command{
		Name:        "tenantadmin",
		Subcommands: []*Command{{Name: "dashboard"}},
	}

	err := root.Execute(context.Background(), []string{"zzzzzzzz"})
	if err == nil {
		t.Fatal("unknown command did not error")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("implausible typo still got a suggestion: %v", err)
	}
}

func TestCommand_Execute_ParsesFlags(t *testing.T) {
	var jsonOutput bool
	var gotArgs []string

	command := &Command{
		Name: "list",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flags.BoolVar(&jsonOutput, "json", false, "JSON output")
			return flags
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			gotArgs = args
			return nil
		},
	}

	if err := command.Execute(context.Background(), []string{"--json", "positional"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !jsonOutput {
		t.Error("--json flag was not parsed")
	}
	if len(gotArgs) != 1 || gotArgs[0] != "positional" {
		t.Errorf("args after flag parsing = %v, want [positional]", gotArgs)
	}
}

func TestCommand_Execute_BadFlag(t *testing.T) {
	command := &Command{
		Name: "list",
		Flags: func() *pflag.FlagSet {
			return pflag.NewFlagSet("list", pflag.ContinueOnError)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return nil
		},
	}

	err := command.Execute(context.Background(), []string{"--not-a-flag"})
	if err == nil {
		t.Fatal("unknown flag did not error")
	}
	if !strings.Contains(err.Error(), "--help") {
		t.Errorf("flag error lacks help pointer: %v", err)
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	root := &Command{
		Name:    "tenantadmin",
		Summary: "Administer tenant accounts",
		Subcommands: []*Command{
			{Name: "dashboard", Summary: "Launch the interactive dashboard"},
			{Name: "tenant", Summary: "Manage tenants"},
		},
		Examples: []Example{
			{Description: "Open the dashboard", Command: "tenantadmin dashboard"},
		},
	}

	var buffer strings.Builder
	root.PrintHelp(&buffer)
	help := buffer.String()

	for _, want := range []string{
		"Administer tenant accounts",
		"dashboard",
		"Launch the interactive dashboard",
		"# Open the dashboard",
	} {
		if !strings.Contains(help, want) {
			t.Errorf("help output missing %q", want)
		}
	}
}

func TestEditDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"tenant", "tenant", 0},
		{"tenent", "tenant", 1},
		{"dash", "dashboard", 5},
		{"abc", "", 3},
	}
	for _, testCase := range cases {
		if got := editDistance(testCase.a, testCase.b); got != testCase.want {
			t.Errorf("editDistance(%q, %q) = %d, want %d",
				testCase.a, testCase.b, got, testCase.want)
		}
	}
}
