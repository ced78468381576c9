// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

package tenantui

import (
	"strings"
	"testing"

	"github.com/databolt/tenantadmin/lib/tenant"
	"github.com/databolt/tenantadmin/lib/tui"
)

func testRequests() []tenant.Request {
	return []tenant.Request{
		{
			ID:                "req-1001",
			EventType:         "TENANT_CREATE",
			Status:            "COMPLETED",
			OrderID:           "order-7001",
			TenantDisplayName: "Alpha Solutions",
			TenantID:          "tenant-1",
			Products:          []string{tenant.ProductCore},
			Response:          tenant.RequestResponse{HTTPStatus: 201, Message: "Created"},
			Timeline: []tenant.TimelineStep{
				{TS: "2025-11-03T10:00:00Z", Label: "received"},
				{TS: "2025-11-03T10:00:05Z", Label: "provisioned"},
			},
		},
		{
			ID:                "req-1002",
			EventType:         "TENANT_CREATE",
			Status:            "FAILED",
			OrderID:           "order-7002",
			TenantDisplayName: "Never Created",
		},
	}
}

func TestRequestsPanelNavigation(t *testing.T) {
	panel := NewRequestsPanel(testRequests())

	if panel.Count() != 2 {
		t.Fatalf("count = %d, want 2", panel.Count())
	}

	// The cursor clamps at both ends instead of wrapping.
	panel.MoveUp()
	if panel.cursor != 0 {
		t.Errorf("cursor after up at top = %d", panel.cursor)
	}
	panel.MoveDown()
	panel.MoveDown()
	if panel.cursor != 1 {
		t.Errorf("cursor after two downs = %d, want 1", panel.cursor)
	}
}

func TestRequestsPanelView(t *testing.T) {
	panel := NewRequestsPanel(testRequests())
	view := panel.View(tui.DefaultTheme, 120, 30)

	if !strings.Contains(view, "Session Requests (2)") {
		t.Error("view missing the request count header")
	}
	if !strings.Contains(view, "req-1001") || !strings.Contains(view, "req-1002") {
		t.Error("view missing request IDs")
	}
	// The selected entry is expanded with its timeline.
	if !strings.Contains(view, "order-7001") {
		t.Error("expanded entry missing the order ID")
	}
	if !strings.Contains(view, "10:00:05") {
		t.Error("expanded entry missing timeline timestamps")
	}
	// Unselected entries stay collapsed.
	if strings.Contains(view, "order-7002") {
		t.Error("collapsed entry shows detail rows")
	}
}

func TestRequestsPanelUnassignedTenant(t *testing.T) {
	panel := NewRequestsPanel(testRequests())
	panel.MoveDown()

	view := panel.View(tui.DefaultTheme, 120, 30)
	if !strings.Contains(view, "(unassigned)") {
		t.Error("request without a tenant should read as unassigned")
	}
}

func TestRequestsPanelEmpty(t *testing.T) {
	panel := NewRequestsPanel(nil)
	view := panel.View(tui.DefaultTheme, 80, 20)
	if !strings.Contains(view, "No provisioning requests") {
		t.Error("empty panel missing the empty-state line")
	}
}
