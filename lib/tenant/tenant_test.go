// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

package tenant

import (
	"strings"
	"testing"
)

func validRequest() NewTenantRequest {
	return NewTenantRequest{
		TenantDisplayName: "Acme Analytics",
		CustomerName:      "Acme Corp",
		AdminEmail:        "admin@acme.example",
		AdminFirstName:    "Ada",
		AdminLastName:     "Lovelace",
		Products:          []string{ProductCore},
	}
}

func TestValidateAccepts(t *testing.T) {
	if err := validRequest().Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
}

func TestValidateRequiredFields(t *testing.T) {
	blank := []struct {
		name   string
		mutate func(*NewTenantRequest)
	}{
		{"display name", func(r *NewTenantRequest) { r.TenantDisplayName = "" }},
		{"customer name", func(r *NewTenantRequest) { r.CustomerName = "   " }},
		{"admin email", func(r *NewTenantRequest) { r.AdminEmail = "" }},
		{"admin first name", func(r *NewTenantRequest) { r.AdminFirstName = "\t" }},
		{"admin last name", func(r *NewTenantRequest) { r.AdminLastName = "" }},
	}
	for _, testCase := range blank {
		request := validRequest()
		testCase.mutate(&request)
		err := request.Validate()
		if err == nil {
			t.Errorf("blank %s accepted", testCase.name)
			continue
		}
		if !strings.Contains(err.Error(), testCase.name) {
			t.Errorf("blank %s: error %q does not name the field", testCase.name, err)
		}
	}
}

func TestValidateEmailShape(t *testing.T) {
	for _, bad := range []string{"no-at-sign", "@leading", "trailing@"} {
		request := validRequest()
		request.AdminEmail = bad
		if err := request.Validate(); err == nil {
			t.Errorf("email %q accepted", bad)
		}
	}
}

func TestValidateProducts(t *testing.T) {
	request := validRequest()
	request.Products = nil
	if err := request.Validate(); err == nil {
		t.Error("empty product list accepted")
	}

	request = validRequest()
	request.Products = []string{"DATABOLT_MAINFRAME"}
	err := request.Validate()
	if err == nil {
		t.Fatal("unknown product accepted")
	}
	if !strings.Contains(err.Error(), "DATABOLT_MAINFRAME") {
		t.Errorf("unknown-product error %q does not name the product", err)
	}

	request = validRequest()
	request.Products = []string{ProductCore, ProductDatabricks, ProductSnowflake}
	if err := request.Validate(); err != nil {
		t.Errorf("full catalog rejected: %v", err)
	}
}

func TestStatusValid(t *testing.T) {
	for _, status := range Statuses {
		if !status.Valid() {
			t.Errorf("listed status %q reported invalid", status)
		}
	}
	for _, bad := range []Status{"", "full", "Deleted", FilterAll} {
		if bad.Valid() {
			t.Errorf("status %q reported valid", bad)
		}
	}
}
