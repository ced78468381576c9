// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

package tenantstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/databolt/tenantadmin/lib/clock"
	"github.com/databolt/tenantadmin/lib/tenant"
)

func TestDefaultSeed(t *testing.T) {
	seed, err := DefaultSeed()
	if err != nil {
		t.Fatalf("default seed: %v", err)
	}
	if len(seed.Tenants) == 0 {
		t.Fatal("default seed has no tenants")
	}
	if len(seed.Requests) == 0 {
		t.Fatal("default seed has no requests")
	}
	for _, record := range seed.Tenants {
		if record.CustomerID != "TSS" {
			t.Errorf("seed tenant %s customer = %q, want TSS", record.TenantID, record.CustomerID)
		}
	}
}

func TestDefaultSeedPopulates(t *testing.T) {
	seed, err := DefaultSeed()
	if err != nil {
		t.Fatalf("default seed: %v", err)
	}

	store := New("TSS", clock.Fake(seedTime))
	if err := seed.Populate(store); err != nil {
		t.Fatalf("populate: %v", err)
	}
	if store.Len() != len(seed.Tenants) {
		t.Errorf("store has %d tenants, seed has %d", store.Len(), len(seed.Tenants))
	}

	// Seeded records keep their IDs and statuses.
	first := seed.Tenants[0]
	stored, ok := store.Get(first.TenantID)
	if !ok {
		t.Fatalf("seed tenant %s not in store", first.TenantID)
	}
	if stored.TenantStatus != first.TenantStatus {
		t.Errorf("seed tenant %s status = %q, want %q",
			first.TenantID, stored.TenantStatus, first.TenantStatus)
	}
}

func TestParseSeedRejectsMissingID(t *testing.T) {
	_, err := ParseSeed([]byte(`
tenants:
  - tenant_display_name: No ID Here
    tenant_status: Full
`))
	if err == nil {
		t.Fatal("seed tenant without ID accepted")
	}
}

func TestParseSeedRejectsUnknownStatus(t *testing.T) {
	_, err := ParseSeed([]byte(`
tenants:
  - tenant_id: tenant-1
    tenant_status: Hibernating
`))
	if err == nil {
		t.Fatal("seed tenant with unknown status accepted")
	}
}

func TestPopulateStopsOnDuplicate(t *testing.T) {
	seed := SeedData{
		Tenants: []tenant.Tenant{
			{TenantID: "tenant-1", TenantStatus: tenant.StatusFull},
			{TenantID: "tenant-1", TenantStatus: tenant.StatusTrial},
		},
	}
	store := New("TSS", clock.Fake(seedTime))
	if err := seed.Populate(store); err == nil {
		t.Fatal("duplicate seed IDs accepted")
	}
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := []byte(`
tenants:
  - customer_id: TSS
    tenant_id: tenant-file-1
    tenant_display_name: File Fixture
    tenant_status: Trial
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	seed, err := LoadSeedFile(path)
	if err != nil {
		t.Fatalf("load seed file: %v", err)
	}
	if len(seed.Tenants) != 1 || seed.Tenants[0].TenantID != "tenant-file-1" {
		t.Errorf("unexpected seed contents: %+v", seed.Tenants)
	}

	if _, err := LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing seed file did not error")
	}
}
