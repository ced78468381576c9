// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package tenant defines the data model for tenant administration:
// the Tenant record, its status enumeration, the product catalog, and
// the read-only session Request log entries. Validation here covers
// only the creation boundary — records already in a store are never
// re-validated (there is no edit path).
package tenant
