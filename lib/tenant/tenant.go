// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

package tenant

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of a tenant. Drives badge styling and
// status-filter membership in the dashboard.
type Status string

const (
	// StatusFull is a fully provisioned, paying tenant.
	StatusFull Status = "Full"
	// StatusTrial is a tenant inside its evaluation period. All
	// tenants created through this tool start as Trial.
	StatusTrial Status = "Trial"
	// StatusPause is a tenant whose environment is suspended but
	// retained.
	StatusPause Status = "Pause"
	// StatusOffboarding is a tenant in the process of leaving.
	StatusOffboarding Status = "Offboarding"
	// StatusClosed is a decommissioned tenant.
	StatusClosed Status = "Closed"
)

// Statuses lists every valid Status in display order.
var Statuses = []Status{
	StatusFull,
	StatusTrial,
	StatusPause,
	StatusOffboarding,
	StatusClosed,
}

// FilterAll is the status-filter sentinel meaning "no status
// restriction".
const FilterAll = "all"

// Valid reports whether s is one of the defined statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusFull, StatusTrial, StatusPause, StatusOffboarding, StatusClosed:
		return true
	}
	return false
}

// Product catalog. The create form offers exactly these identifiers;
// a tenant's product set is drawn from them.
const (
	ProductCore       = "DATABOLT_CORE"
	ProductDatabricks = "DATABOLT_DATABRICKS"
	ProductSnowflake  = "DATABOLT_SNOWFLAKE"
)

// Products lists the product catalog in display order.
var Products = []string{ProductCore, ProductDatabricks, ProductSnowflake}

// Tenant is one customer's provisioned environment. TenantID is the
// primary key and is immutable after creation; there is no update
// path — records are only created and deleted.
type Tenant struct {
	CustomerID        string   `yaml:"customer_id" json:"customerId"`
	TenantID          string   `yaml:"tenant_id" json:"tenantId"`
	TenantDisplayName string   `yaml:"tenant_display_name" json:"tenantDisplayName"`
	CustomerName      string   `yaml:"customer_name" json:"customerName"`
	AdminEmail        string   `yaml:"admin_email" json:"adminEmail"`
	AdminFirstName    string   `yaml:"admin_first_name" json:"adminFirstName"`
	AdminLastName     string   `yaml:"admin_last_name" json:"adminLastName"`
	Products          []string `yaml:"products" json:"products"`
	TenantStatus      Status   `yaml:"tenant_status" json:"tenantStatus"`
	CreatedDate       string   `yaml:"created_date" json:"createdDate"` // RFC 3339
}

// NewTenantRequest carries the operator-supplied fields for tenant
// creation. The store fills in CustomerID, TenantID, TenantStatus
// (always Trial), and CreatedDate.
type NewTenantRequest struct {
	TenantDisplayName string
	CustomerName      string
	AdminEmail        string
	AdminFirstName    string
	AdminLastName     string
	Products          []string
}

// Validate checks the creation-boundary invariants: all text fields
// non-blank, the admin email roughly email-shaped, and at least one
// product selected. Returns the first violation found.
func (request NewTenantRequest) Validate() error {
	required := []struct {
		label string
		value string
	}{
		{"display name", request.TenantDisplayName},
		{"customer name", request.CustomerName},
		{"admin email", request.AdminEmail},
		{"admin first name", request.AdminFirstName},
		{"admin last name", request.AdminLastName},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%s is required", field.label)
		}
	}

	// Basic shape check only: one @ with something on both sides.
	// Real deliverability is the provisioning backend's problem.
	at := strings.Index(request.AdminEmail, "@")
	if at <= 0 || at == len(request.AdminEmail)-1 {
		return fmt.Errorf("admin email %q is not a valid address", request.AdminEmail)
	}

	if len(request.Products) == 0 {
		return fmt.Errorf("at least one product must be selected")
	}
	for _, product := range request.Products {
		if !validProduct(product) {
			return fmt.Errorf("unknown product %q", product)
		}
	}

	return nil
}

func validProduct(id string) bool {
	for _, product := range Products {
		if product == id {
			return true
		}
	}
	return false
}
