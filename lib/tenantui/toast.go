// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

package tenantui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/databolt/tenantadmin/lib/notify"
	"github.com/databolt/tenantadmin/lib/tui"
)

// toastMaxWidth caps a toast line so long messages truncate instead
// of covering the table.
const toastMaxWidth = 48

// toastIcon returns the severity glyph for a toast.
func toastIcon(kind notify.Kind) string {
	switch kind {
	case notify.Success:
		return "✓"
	case notify.Error:
		return "✗"
	default:
		return "ℹ"
	}
}

// renderToastStack renders the queued toasts as right-aligned overlay
// lines, oldest first — matching queue order, so dismissal by ID
// visibly removes exactly one entry without reshuffling the rest.
func renderToastStack(theme tui.Theme, toasts []notify.Toast, screenWidth int) (lines []string, anchorX int) {
	if len(toasts) == 0 {
		return nil, 0
	}

	width := 0
	rendered := make([]string, 0, len(toasts))
	for _, toast := range toasts {
		text := " " + toastIcon(toast.Kind) + " " + toast.Msg + " "
		if ansi.StringWidth(text) > toastMaxWidth {
			text = ansi.Truncate(text, toastMaxWidth-1, "…")
		}
		line := lipgloss.NewStyle().
			Foreground(theme.ToastColor(toast.Kind)).
			Background(theme.OverlayBackground).
			Render(text)
		rendered = append(rendered, line)
		if lineWidth := ansi.StringWidth(line); lineWidth > width {
			width = lineWidth
		}
	}

	// Right-align every line to the widest toast.
	for index, line := range rendered {
		if pad := width - ansi.StringWidth(line); pad > 0 {
			rendered[index] = lipgloss.NewStyle().
				Background(theme.OverlayBackground).
				Render(strings.Repeat(" ", pad)) + line
		}
	}

	anchorX = screenWidth - width - 1
	if anchorX < 0 {
		anchorX = 0
	}
	return rendered, anchorX
}
