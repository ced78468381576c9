// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

package tenantui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/databolt/tenantadmin/lib/tenant"
	"github.com/databolt/tenantadmin/lib/tui"
)

// FilterModel holds the dashboard's search and status filter state.
// The actual match predicates live in tenantview; this model only
// tracks the input text, the selected status, and input focus.
type FilterModel struct {
	// Query is the current free-text search.
	Query string

	// Status is the active status filter: a tenant.Status string or
	// the "all" sentinel.
	Status string

	// Active is true while the search input has keyboard focus.
	Active bool
}

// HandleRune appends a typed character to the query.
func (filter *FilterModel) HandleRune(character rune) {
	filter.Query += string(character)
}

// HandleBackspace removes the last character from the query. Returns
// false when there was nothing to remove.
func (filter *FilterModel) HandleBackspace() bool {
	if len(filter.Query) == 0 {
		return false
	}
	runes := []rune(filter.Query)
	filter.Query = string(runes[:len(runes)-1])
	return true
}

// Clear resets the search text and drops input focus. The status
// filter is left alone — clearing the search should not silently
// widen the status restriction.
func (filter *FilterModel) Clear() {
	filter.Query = ""
	filter.Active = false
}

// View renders the search bar line. Active input shows a cursor;
// inactive input with text shows a subtle indicator; otherwise the
// bar shows the current status filter when one is set.
func (filter *FilterModel) View(theme tui.Theme, width int) string {
	style := lipgloss.NewStyle().Foreground(theme.NormalText).Width(width)
	dim := lipgloss.NewStyle().Foreground(theme.FaintText).Width(width)

	switch {
	case filter.Active:
		cursor := lipgloss.NewStyle().
			Foreground(theme.HeaderForeground).
			Bold(true).
			Render("▎")
		return style.Render(" / " + filter.Query + cursor)
	case filter.Query != "":
		return dim.Render(" search: " + filter.Query)
	case filter.Status != tenant.FilterAll:
		return dim.Render(" status: " + filter.Status)
	default:
		return ""
	}
}
