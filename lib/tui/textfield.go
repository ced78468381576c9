// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TextField is a single-line text input with cursor tracking, used by
// the dashboard's form modals. The owning model routes key messages
// here while the field has focus.
type TextField struct {
	// Label is the field's caption, rendered left of the input.
	Label string

	runes  []rune
	cursor int
}

// NewTextField creates an empty field with the given label.
func NewTextField(label string) TextField {
	return TextField{Label: label}
}

// Value returns the field's current text.
func (field *TextField) Value() string {
	return string(field.runes)
}

// SetValue replaces the field's text and moves the cursor to the end.
func (field *TextField) SetValue(value string) {
	field.runes = []rune(value)
	field.cursor = len(field.runes)
}

// Reset clears the field.
func (field *TextField) Reset() {
	field.runes = nil
	field.cursor = 0
}

// Update processes one key message. Unhandled keys (enter, tab,
// escape) are left for the owning model.
func (field *TextField) Update(message tea.KeyMsg) {
	switch message.Type {
	case tea.KeyRunes, tea.KeySpace:
		runes := message.Runes
		if message.Type == tea.KeySpace {
			runes = []rune{' '}
		}
		for _, character := range runes {
			field.runes = append(field.runes[:field.cursor],
				append([]rune{character}, field.runes[field.cursor:]...)...)
			field.cursor++
		}

	case tea.KeyBackspace:
		if field.cursor > 0 {
			field.runes = append(field.runes[:field.cursor-1], field.runes[field.cursor:]...)
			field.cursor--
		}

	case tea.KeyDelete:
		if field.cursor < len(field.runes) {
			field.runes = append(field.runes[:field.cursor], field.runes[field.cursor+1:]...)
		}

	case tea.KeyLeft:
		if field.cursor > 0 {
			field.cursor--
		}

	case tea.KeyRight:
		if field.cursor < len(field.runes) {
			field.cursor++
		}

	case tea.KeyHome, tea.KeyCtrlA:
		field.cursor = 0

	case tea.KeyEnd, tea.KeyCtrlE:
		field.cursor = len(field.runes)

	case tea.KeyCtrlU:
		field.runes = append([]rune(nil), field.runes[field.cursor:]...)
		field.cursor = 0
	}
}

// View renders the field at the given width. Focused fields show a
// block cursor at the insertion point.
func (field *TextField) View(theme Theme, width int, focused bool) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.FaintText)
	textStyle := lipgloss.NewStyle().Foreground(theme.NormalText)

	text := string(field.runes)
	if focused {
		before := string(field.runes[:field.cursor])
		after := string(field.runes[field.cursor:])
		cursor := lipgloss.NewStyle().
			Foreground(theme.HeaderForeground).
			Bold(true).
			Render("▎")
		text = before + cursor + after
	}

	line := labelStyle.Render(field.Label+": ") + textStyle.Render(text)
	if pad := width - ansi.StringWidth(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return line
}
