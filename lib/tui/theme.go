// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/databolt/tenantadmin/lib/notify"
	"github.com/databolt/tenantadmin/lib/tenant"
)

// Theme defines the color palette for the dashboard. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Tenant status badges.
	StatusFull        lipgloss.Color
	StatusTrial       lipgloss.Color
	StatusPause       lipgloss.Color
	StatusOffboarding lipgloss.Color
	StatusClosed      lipgloss.Color

	// Toast severities.
	ToastSuccess lipgloss.Color
	ToastError   lipgloss.Color
	ToastInfo    lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Overlay boxes (modals, dropdowns).
	OverlayForeground lipgloss.Color
	OverlayBackground lipgloss.Color
}

// StatusColor returns the badge color for a tenant status. Unknown
// values render faint.
func (theme Theme) StatusColor(status tenant.Status) lipgloss.Color {
	switch status {
	case tenant.StatusFull:
		return theme.StatusFull
	case tenant.StatusTrial:
		return theme.StatusTrial
	case tenant.StatusPause:
		return theme.StatusPause
	case tenant.StatusOffboarding:
		return theme.StatusOffboarding
	case tenant.StatusClosed:
		return theme.StatusClosed
	default:
		return theme.FaintText
	}
}

// ToastColor returns the accent color for a toast severity.
func (theme Theme) ToastColor(kind notify.Kind) lipgloss.Color {
	switch kind {
	case notify.Success:
		return theme.ToastSuccess
	case notify.Error:
		return theme.ToastError
	default:
		return theme.ToastInfo
	}
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	StatusFull:        lipgloss.Color("114"), // green
	StatusTrial:       lipgloss.Color("75"),  // blue
	StatusPause:       lipgloss.Color("220"), // amber
	StatusOffboarding: lipgloss.Color("208"), // orange
	StatusClosed:      lipgloss.Color("245"), // gray

	ToastSuccess: lipgloss.Color("114"),
	ToastError:   lipgloss.Color("196"),
	ToastInfo:    lipgloss.Color("75"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	OverlayForeground: lipgloss.Color("252"),
	OverlayBackground: lipgloss.Color("237"),
}
