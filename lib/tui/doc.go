// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package tui provides the shared terminal UI building blocks for the
// tenant dashboard: the color theme, overlay splicing for modals and
// dropdowns, a dropdown menu, and a single-line text field. Built on
// bubbletea and lipgloss; everything here is domain-agnostic chrome,
// while the dashboard's layout and data rendering live in tenantui.
package tui
