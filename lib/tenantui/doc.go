// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package tenantui implements the interactive tenant dashboard.
// Built on bubbletea (Elm architecture): every user intent — typing
// in the search filter, toggling a sort column, submitting the create
// form, confirming a delete — arrives as one message, is applied
// fully, and the next frame re-renders from the resulting state. No
// two commands ever interleave.
//
// Generic chrome (theme, overlay splicing, dropdowns, text fields)
// lives in [tui]; this package owns the layout, the table rendering,
// and the wiring between user intents and the store, view engine, and
// toast queue.
//
// Data flow:
//
//	[tenantstore.Store]  [notify.Queue]  [session requests]
//	         \                |               /
//	          [Model] <- bubbletea event loop
//	              |
//	    tenantview.DeriveView -> rendered table
package tenantui
