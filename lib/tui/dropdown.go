// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DropdownOption is a single selectable item in a dropdown overlay.
type DropdownOption struct {
	Label string // Display text shown in the dropdown.
	Value string // Value reported on selection.
}

// Dropdown renders a floating menu anchored at a screen position. It
// captures all keyboard input while active: up/down to navigate,
// enter to select, escape to dismiss. The owning model routes input
// here when the dropdown has focus.
type Dropdown struct {
	Options []DropdownOption
	Cursor  int
	AnchorX int
	AnchorY int
}

// MoveUp moves the cursor up by one, wrapping to the bottom.
func (dropdown *Dropdown) MoveUp() {
	dropdown.Cursor--
	if dropdown.Cursor < 0 {
		dropdown.Cursor = len(dropdown.Options) - 1
	}
}

// MoveDown moves the cursor down by one, wrapping to the top.
func (dropdown *Dropdown) MoveDown() {
	dropdown.Cursor++
	if dropdown.Cursor >= len(dropdown.Options) {
		dropdown.Cursor = 0
	}
}

// Selected returns the currently highlighted option.
func (dropdown *Dropdown) Selected() DropdownOption {
	return dropdown.Options[dropdown.Cursor]
}

// Width returns the rendered width in columns, matching Render.
func (dropdown *Dropdown) Width() int {
	maxLabelWidth := 0
	for _, option := range dropdown.Options {
		if width := ansi.StringWidth(option.Label); width > maxLabelWidth {
			maxLabelWidth = width
		}
	}
	// " > LABEL " plus one column of padding each side.
	return 3 + maxLabelWidth + 2
}

// Render produces the dropdown lines for overlay splicing. Every line
// has the same visible width and a solid background so the menu reads
// as a box on top of the table.
func (dropdown *Dropdown) Render(theme Theme) []string {
	totalWidth := dropdown.Width()

	background := lipgloss.NewStyle().
		Foreground(theme.OverlayForeground).
		Background(theme.OverlayBackground)
	selected := lipgloss.NewStyle().
		Foreground(theme.SelectedForeground).
		Background(theme.SelectedBackground)

	lines := make([]string, 0, len(dropdown.Options))
	for index, option := range dropdown.Options {
		marker := " "
		if index == dropdown.Cursor {
			marker = ">"
		}
		content := " " + marker + " " + option.Label
		if pad := totalWidth - ansi.StringWidth(content); pad > 0 {
			content += strings.Repeat(" ", pad)
		}

		style := background
		if index == dropdown.Cursor {
			style = selected
		}
		lines = append(lines, style.Render(content))
	}
	return lines
}
