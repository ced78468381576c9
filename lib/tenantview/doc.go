// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package tenantview derives the filtered, sorted tenant list shown
// in the dashboard table. It is a pure function over the store's
// snapshot: given the tenants, a free-text query, a status filter,
// and a sort configuration, it produces the view — it holds no state
// of its own, so there is nothing to invalidate and nothing to go
// stale.
package tenantview
