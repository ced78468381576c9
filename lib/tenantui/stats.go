// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

package tenantui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/databolt/tenantadmin/lib/tenantstore"
	"github.com/databolt/tenantadmin/lib/tui"
)

// renderStatsCards renders the stat summary line: total tenants plus
// the per-status counts the dashboard tracks. The counts come from
// Store.Stats, which recomputes from the live collection on every
// call — this line can never show stale numbers.
func renderStatsCards(theme tui.Theme, stats tenantstore.Stats, width int) string {
	card := func(label string, count int, accent lipgloss.Color) string {
		number := lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Render(fmt.Sprintf("%d", count))
		caption := lipgloss.NewStyle().
			Foreground(theme.FaintText).
			Render(" " + label)
		return number + caption
	}

	separator := lipgloss.NewStyle().
		Foreground(theme.BorderColor).
		Render("  │  ")

	line := " " + card("total", stats.Total, theme.HeaderForeground) +
		separator + card("active", stats.Active, theme.StatusFull) +
		separator + card("trial", stats.Trial, theme.StatusTrial) +
		separator + card("paused", stats.Paused, theme.StatusPause)

	return lipgloss.NewStyle().Width(width).MaxWidth(width).Render(line)
}
