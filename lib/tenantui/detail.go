// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

package tenantui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/databolt/tenantadmin/lib/tenant"
	"github.com/databolt/tenantadmin/lib/tui"
)

// detailContentWidth is the inner width of the tenant detail modal.
const detailContentWidth = 56

// renderTenantDetail renders the full-record overlay for one tenant:
// every field the table has no room for, in a centered box.
func renderTenantDetail(theme tui.Theme, record tenant.Tenant, screenWidth, screenHeight int) (lines []string, anchorX, anchorY int) {
	title := lipgloss.NewStyle().
		Foreground(theme.HeaderForeground).
		Bold(true)
	label := lipgloss.NewStyle().Foreground(theme.FaintText)
	value := lipgloss.NewStyle().Foreground(theme.NormalText)
	status := lipgloss.NewStyle().
		Foreground(theme.StatusColor(record.TenantStatus))

	row := func(name, text string) string {
		return pad(label.Render(name+": ")+value.Render(text), detailContentWidth)
	}

	body := []string{
		title.Render(record.TenantDisplayName),
		"",
		row("Tenant ID", record.TenantID),
		row("Customer", record.CustomerName+" ("+record.CustomerID+")"),
		row("Admin", record.AdminFirstName+" "+record.AdminLastName),
		row("Email", record.AdminEmail),
		pad(label.Render("Status: ")+
			status.Render(statusIcon(record.TenantStatus)+" "+string(record.TenantStatus)),
			detailContentWidth),
		row("Created", formatDate(record.CreatedDate)),
		"",
		label.Render("Products:"),
	}
	for _, product := range record.Products {
		body = append(body, value.Render(pad("  • "+product, detailContentWidth)))
	}
	body = append(body, "",
		label.Render("Esc close"))

	boxed := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderColor).
		Padding(0, 1).
		Render(strings.Join(body, "\n"))

	lines = strings.Split(boxed, "\n")
	anchorX, anchorY = tui.CenterAnchor(screenWidth, screenHeight,
		lipgloss.Width(boxed), len(lines))
	return lines, anchorX, anchorY
}
