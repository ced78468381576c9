// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

package tenantview

import (
	"sort"
	"strings"

	"github.com/databolt/tenantadmin/lib/tenant"
)

// Matches reports whether a tenant passes the free-text filter. An
// empty query matches everything; otherwise the query must appear,
// case-insensitively, in the display name, tenant ID, or admin email.
func Matches(record tenant.Tenant, query string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	for _, field := range []string{
		record.TenantDisplayName,
		record.TenantID,
		record.AdminEmail,
	} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// MatchesStatus reports whether a tenant passes the status filter.
// The sentinel "all" matches every status; anything else must equal
// the tenant's status exactly (case-sensitive).
func MatchesStatus(record tenant.Tenant, statusFilter string) bool {
	return statusFilter == tenant.FilterAll ||
		statusFilter == string(record.TenantStatus)
}

// DeriveView computes the table view: tenants passing both the text
// and status filters, ordered by the sort configuration. The input
// slice is never mutated. The sort is stable, so ties (and unknown
// sort keys, whose comparator reports every pair equal) preserve the
// incoming order.
func DeriveView(tenants []tenant.Tenant, query, statusFilter string, config SortConfig) []tenant.Tenant {
	var view []tenant.Tenant
	for _, record := range tenants {
		if Matches(record, query) && MatchesStatus(record, statusFilter) {
			view = append(view, record)
		}
	}

	compare, known := comparators[config.Key]
	if !known {
		return view
	}

	collator := newCollator()
	sort.SliceStable(view, func(i, j int) bool {
		ordering := compare(collator, view[i], view[j])
		if config.Dir == Descending {
			ordering = -ordering
		}
		return ordering < 0
	})

	return view
}
