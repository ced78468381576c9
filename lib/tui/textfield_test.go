// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeInto(field *TextField, text string) {
	for _, character := range text {
		if character == ' ' {
			field.Update(tea.KeyMsg{Type: tea.KeySpace})
			continue
		}
		field.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{character}})
	}
}

func TestTextFieldTyping(t *testing.T) {
	field := NewTextField("Name")
	typeInto(&field, "Acme Corp")
	if field.Value() != "Acme Corp" {
		t.Errorf("value = %q, want Acme Corp", field.Value())
	}
}

func TestTextFieldBackspaceAndDelete(t *testing.T) {
	field := NewTextField("Name")
	typeInto(&field, "abc")

	field.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if field.Value() != "ab" {
		t.Errorf("value after backspace = %q", field.Value())
	}

	// Delete removes the character under the cursor.
	field.Update(tea.KeyMsg{Type: tea.KeyHome})
	field.Update(tea.KeyMsg{Type: tea.KeyDelete})
	if field.Value() != "b" {
		t.Errorf("value after home+delete = %q", field.Value())
	}

	// Backspace at the start is a no-op.
	field.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if field.Value() != "b" {
		t.Errorf("backspace at start changed value to %q", field.Value())
	}
}

func TestTextFieldCursorInsertion(t *testing.T) {
	field := NewTextField("Name")
	typeInto(&field, "ac")

	field.Update(tea.KeyMsg{Type: tea.KeyLeft})
	typeInto(&field, "b")
	if field.Value() != "abc" {
		t.Errorf("mid-insert value = %q, want abc", field.Value())
	}

	field.Update(tea.KeyMsg{Type: tea.KeyEnd})
	typeInto(&field, "d")
	if field.Value() != "abcd" {
		t.Errorf("end-insert value = %q, want abcd", field.Value())
	}
}

func TestTextFieldKillLine(t *testing.T) {
	field := NewTextField("Name")
	typeInto(&field, "abcdef")

	// Ctrl+U kills everything before the cursor.
	field.Update(tea.KeyMsg{Type: tea.KeyLeft})
	field.Update(tea.KeyMsg{Type: tea.KeyLeft})
	field.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	if field.Value() != "ef" {
		t.Errorf("value after ctrl+u = %q, want ef", field.Value())
	}
}

func TestTextFieldSetValueAndReset(t *testing.T) {
	field := NewTextField("Name")
	field.SetValue("preset")
	if field.Value() != "preset" {
		t.Errorf("value after SetValue = %q", field.Value())
	}

	// The cursor lands at the end, so typing appends.
	typeInto(&field, "!")
	if field.Value() != "preset!" {
		t.Errorf("value after append = %q", field.Value())
	}

	field.Reset()
	if field.Value() != "" {
		t.Errorf("value after reset = %q", field.Value())
	}
}

func TestTextFieldView(t *testing.T) {
	field := NewTextField("Name")
	field.SetValue("Acme")

	view := field.View(DefaultTheme, 40, false)
	if !strings.Contains(view, "Name:") || !strings.Contains(view, "Acme") {
		t.Errorf("view missing label or value: %q", view)
	}
	if strings.Contains(view, "▎") {
		t.Error("unfocused view shows a cursor")
	}

	focused := field.View(DefaultTheme, 40, true)
	if !strings.Contains(focused, "▎") {
		t.Error("focused view missing the cursor")
	}
}
