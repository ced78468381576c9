// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

package tenantui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/databolt/tenantadmin/lib/tenant"
	"github.com/databolt/tenantadmin/lib/tui"
)

// RequestsPanel shows the session-scoped provisioning request log.
// The log is read-only: the panel navigates and renders, it never
// mutates. One request is expanded at a time, showing its payload,
// response, and processing timeline.
type RequestsPanel struct {
	requests []tenant.Request
	cursor   int
}

// NewRequestsPanel creates a panel over the given request log.
func NewRequestsPanel(requests []tenant.Request) RequestsPanel {
	return RequestsPanel{requests: requests}
}

// Count returns the number of logged requests.
func (panel *RequestsPanel) Count() int { return len(panel.requests) }

// MoveUp moves the cursor to the previous request.
func (panel *RequestsPanel) MoveUp() {
	if panel.cursor > 0 {
		panel.cursor--
	}
}

// MoveDown moves the cursor to the next request.
func (panel *RequestsPanel) MoveDown() {
	if panel.cursor < len(panel.requests)-1 {
		panel.cursor++
	}
}

// formatTimelineTS renders a timeline timestamp as clock time; the
// date context comes from the request header line.
func formatTimelineTS(value string) string {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return parsed.Format("15:04:05")
}

// View renders the panel body: the request list with the selected
// entry expanded inline.
func (panel *RequestsPanel) View(theme tui.Theme, width, height int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.HeaderForeground).
		Bold(true)
	normal := lipgloss.NewStyle().Foreground(theme.NormalText)
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)
	selected := lipgloss.NewStyle().
		Foreground(theme.SelectedForeground).
		Background(theme.SelectedBackground)

	var lines []string
	lines = append(lines,
		title.Render(fmt.Sprintf(" Session Requests (%d)", len(panel.requests))), "")

	if len(panel.requests) == 0 {
		lines = append(lines, faint.Render(" No provisioning requests this session."))
	}

	for index, request := range panel.requests {
		header := fmt.Sprintf(" %s  %s  %s  %s",
			request.ID, request.EventType, request.Status,
			request.TenantDisplayName)
		if index == panel.cursor {
			lines = append(lines, selected.Render(pad(header, width)))
			lines = append(lines, panel.renderExpanded(theme, request, width)...)
		} else {
			lines = append(lines, normal.Render(pad(header, width)))
		}
	}

	body := strings.Join(lines, "\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxWidth(width).
		Render(body)
}

// renderExpanded renders the detail block under the selected request.
func (panel *RequestsPanel) renderExpanded(theme tui.Theme, request tenant.Request, width int) []string {
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)
	normal := lipgloss.NewStyle().Foreground(theme.NormalText)

	indent := "    "
	row := func(name, value string) string {
		return pad(indent+faint.Render(name+": ")+normal.Render(value), width)
	}

	tenantID := request.TenantID
	if tenantID == "" {
		// The order never produced a tenant; say so rather than
		// showing a blank.
		tenantID = "(unassigned)"
	}

	lines := []string{
		row("order", request.OrderID),
		row("tenant", tenantID),
		row("products", strings.Join(request.Products, ", ")),
		row("payload", fmt.Sprintf("%s → %s",
			request.Payload.BusinessEvent.TenantDisplayName,
			request.Payload.BusinessEvent.TenantStatus)),
		row("response", fmt.Sprintf("HTTP %d %s (%s)",
			request.Response.HTTPStatus, request.Response.Message,
			request.Response.CorrelationID)),
		pad(indent+faint.Render("timeline:"), width),
	}
	for _, step := range request.Timeline {
		lines = append(lines, pad(fmt.Sprintf("%s  %s  %s",
			indent+"  "+faint.Render(formatTimelineTS(step.TS)),
			normal.Render(step.Label), ""), width))
	}
	return lines
}
