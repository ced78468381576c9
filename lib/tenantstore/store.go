// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

package tenantstore

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/databolt/tenantadmin/lib/clock"
	"github.com/databolt/tenantadmin/lib/tenant"
)

// Stats holds the aggregate counts shown on the dashboard's stat
// cards. Recomputed from the live collection on every read — the
// numbers can never drift from the store's actual contents.
type Stats struct {
	Total  int `json:"total"`
	Active int `json:"active"` // status Full
	Trial  int `json:"trial"`
	Paused int `json:"paused"` // status Pause
}

// Store is the in-memory ordered tenant collection. All mutations go
// through the mutex so the store can be driven from the bubbletea
// loop and background commands without interleaving; each operation
// is applied fully or not at all.
type Store struct {
	mu         sync.Mutex
	tenants    []tenant.Tenant
	byID       map[string]struct{}
	customerID string
	clock      clock.Clock
}

// New creates an empty Store. Every tenant created through the store
// carries customerID; creation timestamps come from clk.
func New(customerID string, clk clock.Clock) *Store {
	return &Store{
		byID:       make(map[string]struct{}),
		customerID: customerID,
		clock:      clk,
	}
}

// Create validates the request, constructs a new tenant with a
// store-generated identifier, status Trial, and the current time as
// creation date, and appends it to the collection. On validation
// failure nothing is mutated.
func (store *Store) Create(request tenant.NewTenantRequest) (tenant.Tenant, error) {
	if err := request.Validate(); err != nil {
		return tenant.Tenant{}, err
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	record := tenant.Tenant{
		CustomerID:        store.customerID,
		TenantID:          newTenantID(),
		TenantDisplayName: request.TenantDisplayName,
		CustomerName:      request.CustomerName,
		AdminEmail:        request.AdminEmail,
		AdminFirstName:    request.AdminFirstName,
		AdminLastName:     request.AdminLastName,
		Products:          slices.Clone(request.Products),
		TenantStatus:      tenant.StatusTrial,
		CreatedDate:       store.clock.Now().UTC().Format(time.RFC3339),
	}

	store.tenants = append(store.tenants, record)
	store.byID[record.TenantID] = struct{}{}
	return record, nil
}

// Add appends an existing record, preserving its identifier and
// status. Used for seed fixtures. Rejects duplicate tenant IDs — the
// store, not the caller, enforces the uniqueness invariant.
func (store *Store) Add(record tenant.Tenant) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if record.TenantID == "" {
		return fmt.Errorf("tenant has no tenant ID")
	}
	if _, exists := store.byID[record.TenantID]; exists {
		return fmt.Errorf("duplicate tenant ID %q", record.TenantID)
	}

	record.Products = slices.Clone(record.Products)
	store.tenants = append(store.tenants, record)
	store.byID[record.TenantID] = struct{}{}
	return nil
}

// Remove deletes the tenant with the given ID. Removing an absent ID
// is a benign no-op; the return value reports whether a record was
// actually removed so callers can decide whether to notify.
func (store *Store) Remove(tenantID string) bool {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, exists := store.byID[tenantID]; !exists {
		return false
	}

	store.tenants = slices.DeleteFunc(store.tenants, func(record tenant.Tenant) bool {
		return record.TenantID == tenantID
	})
	delete(store.byID, tenantID)
	return true
}

// Get returns the tenant with the given ID.
func (store *Store) Get(tenantID string) (tenant.Tenant, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()

	for _, record := range store.tenants {
		if record.TenantID == tenantID {
			return cloneTenant(record), true
		}
	}
	return tenant.Tenant{}, false
}

// List returns the collection in insertion order. The returned slice
// is a snapshot; mutating it does not affect the store.
func (store *Store) List() []tenant.Tenant {
	store.mu.Lock()
	defer store.mu.Unlock()

	snapshot := make([]tenant.Tenant, len(store.tenants))
	for index, record := range store.tenants {
		snapshot[index] = cloneTenant(record)
	}
	return snapshot
}

// Len returns the number of tenants in the store.
func (store *Store) Len() int {
	store.mu.Lock()
	defer store.mu.Unlock()
	return len(store.tenants)
}

// Stats recomputes the aggregate counts from the current collection.
func (store *Store) Stats() Stats {
	store.mu.Lock()
	defer store.mu.Unlock()

	var stats Stats
	stats.Total = len(store.tenants)
	for _, record := range store.tenants {
		switch record.TenantStatus {
		case tenant.StatusFull:
			stats.Active++
		case tenant.StatusTrial:
			stats.Trial++
		case tenant.StatusPause:
			stats.Paused++
		}
	}
	return stats
}

// newTenantID generates a unique tenant identifier. A random UUID
// rather than a timestamp: creation bursts within the same
// millisecond must not collide.
func newTenantID() string {
	return "tenant-" + uuid.NewString()
}

func cloneTenant(record tenant.Tenant) tenant.Tenant {
	record.Products = slices.Clone(record.Products)
	return record
}
