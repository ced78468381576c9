// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

package tenantui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/databolt/tenantadmin/lib/tenant"
	"github.com/databolt/tenantadmin/lib/tenantview"
	"github.com/databolt/tenantadmin/lib/tui"
)

// Fixed column widths for the tenant table. The display-name column
// absorbs whatever width remains.
const (
	columnWidthID      = 16
	columnWidthEmail   = 24
	columnWidthStatus  = 14
	columnWidthCreated = 19
	columnGap          = 2

	minNameWidth = 12
)

// statusIcon returns the badge icon for a tenant status, mirroring
// the per-status treatment the web dashboard used.
func statusIcon(status tenant.Status) string {
	switch status {
	case tenant.StatusFull:
		return "✅"
	case tenant.StatusTrial:
		return "⏳"
	case tenant.StatusPause:
		return "⏸️"
	case tenant.StatusOffboarding:
		return "📤"
	case tenant.StatusClosed:
		return "❌"
	default:
		return "  "
	}
}

// formatDate renders an RFC 3339 timestamp as "Jan 15, 2025 10:30".
// Unparseable values pass through untouched — better a raw string in
// the table than a silent blank.
func formatDate(value string) string {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return parsed.Format("Jan 2, 2006 15:04")
}

// ListRenderer handles the table-style rendering of tenant rows
// within a given width.
type ListRenderer struct {
	theme tui.Theme
	width int
}

// NewListRenderer creates a ListRenderer for the given row width.
func NewListRenderer(theme tui.Theme, width int) ListRenderer {
	return ListRenderer{theme: theme, width: width}
}

func (renderer ListRenderer) nameWidth() int {
	width := renderer.width - columnWidthID - columnWidthEmail -
		columnWidthStatus - columnWidthCreated - 4*columnGap
	if width < minNameWidth {
		width = minNameWidth
	}
	return width
}

// sortMarker returns the header suffix for a column: the direction
// arrow when the column is the active sort key, a space otherwise.
func sortMarker(config tenantview.SortConfig, key string) string {
	if config.Key != key {
		return " "
	}
	if config.Dir == tenantview.Descending {
		return "▼"
	}
	return "▲"
}

// RenderHeader renders the column header line with sort indicators.
// The leading digits mirror the sort-toggle key bindings.
func (renderer ListRenderer) RenderHeader(sort tenantview.SortConfig) string {
	gap := strings.Repeat(" ", columnGap)
	header := pad("1 Name"+sortMarker(sort, tenantview.SortByDisplayName), renderer.nameWidth()) + gap +
		pad("2 Tenant ID"+sortMarker(sort, tenantview.SortByTenantID), columnWidthID) + gap +
		pad("3 Admin Email"+sortMarker(sort, tenantview.SortByAdminEmail), columnWidthEmail) + gap +
		pad("4 Status"+sortMarker(sort, tenantview.SortByStatus), columnWidthStatus) + gap +
		pad("5 Created"+sortMarker(sort, tenantview.SortByCreated), columnWidthCreated)

	return lipgloss.NewStyle().
		Foreground(renderer.theme.HeaderForeground).
		Bold(true).
		Width(renderer.width).
		Render(header)
}

// RenderRow renders one tenant as a table row. Selected rows get the
// highlight background across the full width.
func (renderer ListRenderer) RenderRow(record tenant.Tenant, selected bool) string {
	gap := strings.Repeat(" ", columnGap)

	statusText := statusIcon(record.TenantStatus) + " " + string(record.TenantStatus)
	statusCell := lipgloss.NewStyle().
		Foreground(renderer.theme.StatusColor(record.TenantStatus)).
		Render(pad(statusText, columnWidthStatus))

	row := pad(record.TenantDisplayName, renderer.nameWidth()) + gap +
		pad(record.TenantID, columnWidthID) + gap +
		pad(record.AdminEmail, columnWidthEmail) + gap +
		statusCell + gap +
		pad(formatDate(record.CreatedDate), columnWidthCreated)

	if selected {
		return lipgloss.NewStyle().
			Foreground(renderer.theme.SelectedForeground).
			Background(renderer.theme.SelectedBackground).
			Width(renderer.width).
			MaxWidth(renderer.width).
			Render(row)
	}
	return lipgloss.NewStyle().
		Foreground(renderer.theme.NormalText).
		Width(renderer.width).
		MaxWidth(renderer.width).
		Render(row)
}

// pad truncates or right-pads text to exactly width visible columns.
func pad(text string, width int) string {
	if ansi.StringWidth(text) > width {
		return ansi.Truncate(text, width-1, "…")
	}
	return text + strings.Repeat(" ", width-ansi.StringWidth(text))
}
