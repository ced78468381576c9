// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

package tenantui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the tenant dashboard.
type KeyMap struct {
	// List navigation.
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Sort column toggles. Pressing the key for the active column
	// flips its direction; any other column becomes active ascending.
	SortName    key.Binding
	SortID      key.Binding
	SortEmail   key.Binding
	SortStatus  key.Binding
	SortCreated key.Binding

	// Filtering.
	FilterActivate key.Binding // Free-text search input.
	FilterClear    key.Binding
	StatusFilter   key.Binding // Status dropdown.

	// Tenant operations.
	Create key.Binding
	Delete key.Binding
	View   key.Binding

	// Panels and toasts.
	Requests     key.Binding
	DismissToast key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in binding set. Vim-style j/k next to
// the arrow keys, digits for sort columns.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("C-d", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	SortName: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "sort name"),
	),
	SortID: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "sort id"),
	),
	SortEmail: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "sort email"),
	),
	SortStatus: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "sort status"),
	),
	SortCreated: key.NewBinding(
		key.WithKeys("5"),
		key.WithHelp("5", "sort created"),
	),
	FilterActivate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	FilterClear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "clear search"),
	),
	StatusFilter: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "status filter"),
	),
	Create: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "create tenant"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete tenant"),
	),
	View: key.NewBinding(
		key.WithKeys("enter", "v"),
		key.WithHelp("Enter", "view tenant"),
	),
	Requests: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "session requests"),
	),
	DismissToast: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "dismiss toast"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
