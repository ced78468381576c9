// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command tree for tenantadmin: declarative
// Command values with pflag flag sets, structured help output,
// categorized command errors, and the shared command logger.
package cli
