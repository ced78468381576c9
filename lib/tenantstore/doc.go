// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package tenantstore holds the in-memory tenant collection behind
// the dashboard. The store owns identifier generation and uniqueness
// enforcement, preserves insertion order, and hands out defensive
// copies so callers cannot mutate its contents from the outside.
//
// There is no persistence: the store's lifetime is the process. That
// is a deliberate limitation of this tool, not an oversight — the
// system of record is the provisioning backend, which this dashboard
// does not talk to.
package tenantstore
