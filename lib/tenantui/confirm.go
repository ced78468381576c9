// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

package tenantui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/databolt/tenantadmin/lib/tui"
)

// confirmDelete is the confirmation gate for tenant deletion. A
// delete never fires from a single keypress: the gate must be
// answered with an explicit yes. The zero value is inactive.
type confirmDelete struct {
	TenantID    string
	DisplayName string
}

// renderConfirmDelete renders the yes/no gate as a centered box.
func renderConfirmDelete(theme tui.Theme, gate confirmDelete, screenWidth, screenHeight int) (lines []string, anchorX, anchorY int) {
	warn := lipgloss.NewStyle().
		Foreground(theme.ToastError).
		Bold(true)
	text := lipgloss.NewStyle().Foreground(theme.NormalText)
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)

	const width = 44
	body := []string{
		warn.Render("Delete tenant?"),
		"",
		text.Render(pad(gate.DisplayName, width)),
		faint.Render(pad(gate.TenantID, width)),
		"",
		faint.Render("y delete · n/Esc cancel"),
	}

	boxed := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ToastError).
		Padding(0, 1).
		Render(strings.Join(body, "\n"))

	lines = strings.Split(boxed, "\n")
	anchorX, anchorY = tui.CenterAnchor(screenWidth, screenHeight,
		lipgloss.Width(boxed), len(lines))
	return lines, anchorX, anchorY
}
