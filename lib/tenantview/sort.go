// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

package tenantview

import (
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/databolt/tenantadmin/lib/tenant"
)

// Sortable column keys. These double as the wire values accepted by
// the CLI's --sort flag and the dashboard's column headers.
const (
	SortByDisplayName = "tenantDisplayName"
	SortByTenantID    = "tenantId"
	SortByAdminEmail  = "adminEmail"
	SortByStatus      = "tenantStatus"
	SortByCreated     = "createdDate"
)

// Direction orders a sorted column.
type Direction string

const (
	// Ascending sorts smallest first.
	Ascending Direction = "asc"
	// Descending sorts largest first.
	Descending Direction = "desc"
)

// SortConfig names the active sort column and its direction. The zero
// value means "no sorting" (unknown key, filter order preserved).
type SortConfig struct {
	Key string    `yaml:"key"`
	Dir Direction `yaml:"dir"`
}

// DefaultSort is the dashboard's initial ordering: newest tenants
// first.
var DefaultSort = SortConfig{Key: SortByCreated, Dir: Descending}

// Toggle applies the interactive column-selection rule: selecting the
// already-active column flips its direction; selecting a different
// column switches to it ascending.
func (config SortConfig) Toggle(key string) SortConfig {
	if config.Key == key && config.Dir == Ascending {
		return SortConfig{Key: key, Dir: Descending}
	}
	return SortConfig{Key: key, Dir: Ascending}
}

// comparator orders two tenants by one column. Returns <0, 0, >0 in
// the usual way. The collator carries the locale for string columns.
type comparator func(collator *collate.Collator, a, b tenant.Tenant) int

// comparators is the per-column comparator table. String columns use
// locale-aware collation; createdDate compares parsed timestamps.
// Keys absent from the table sort as "always equal", which leaves the
// filter order untouched under a stable sort.
var comparators = map[string]comparator{
	SortByDisplayName: func(c *collate.Collator, a, b tenant.Tenant) int {
		return c.CompareString(a.TenantDisplayName, b.TenantDisplayName)
	},
	SortByTenantID: func(c *collate.Collator, a, b tenant.Tenant) int {
		return c.CompareString(a.TenantID, b.TenantID)
	},
	SortByAdminEmail: func(c *collate.Collator, a, b tenant.Tenant) int {
		return c.CompareString(a.AdminEmail, b.AdminEmail)
	},
	SortByStatus: func(c *collate.Collator, a, b tenant.Tenant) int {
		return c.CompareString(string(a.TenantStatus), string(b.TenantStatus))
	},
	SortByCreated: func(_ *collate.Collator, a, b tenant.Tenant) int {
		return parseCreated(a.CreatedDate).Compare(parseCreated(b.CreatedDate))
	},
}

// parseCreated parses an RFC 3339 creation date. Unparseable values
// collapse to the zero time, so they cluster at the ascending front
// instead of poisoning the ordering.
func parseCreated(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

// newCollator builds the locale collator for string columns. The
// collator type is not safe for concurrent use, so DeriveView creates
// one per call rather than sharing a package-level instance.
func newCollator() *collate.Collator {
	return collate.New(language.English)
}
