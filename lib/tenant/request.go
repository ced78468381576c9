// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

package tenant

// Request is one historical provisioning event. Requests are produced
// by the provisioning pipeline, not by this tool; within the dashboard
// they are read-only audit records. TenantID may be empty when the
// originating order never resulted in a created tenant.
type Request struct {
	ID                string          `yaml:"id" json:"id"`
	CreatedAt         string          `yaml:"created_at" json:"createdAt"`
	UpdatedAt         string          `yaml:"updated_at" json:"updatedAt"`
	Status            string          `yaml:"status" json:"status"`
	EventType         string          `yaml:"event_type" json:"eventType"`
	OrderID           string          `yaml:"order_id" json:"orderId"`
	TenantDisplayName string          `yaml:"tenant_display_name" json:"tenantDisplayName"`
	TenantID          string          `yaml:"tenant_id,omitempty" json:"tenantId,omitempty"`
	Products          []string        `yaml:"products" json:"products"`
	Payload           RequestPayload  `yaml:"payload" json:"payload"`
	Response          RequestResponse `yaml:"response" json:"response"`

	// Timeline is the ordered processing history of the event.
	// Append-only at the source; never reordered.
	Timeline []TimelineStep `yaml:"timeline" json:"timeline"`
}

// RequestPayload mirrors the request body sent to the provisioning
// backend.
type RequestPayload struct {
	BusinessEvent BusinessEvent `yaml:"business_event" json:"businessEvent"`
}

// BusinessEvent is the business-level description inside a payload.
type BusinessEvent struct {
	TenantDisplayName string `yaml:"tenant_display_name" json:"tenantDisplayName"`
	TenantStatus      string `yaml:"tenant_status" json:"tenantStatus"`
}

// RequestResponse mirrors the provisioning backend's response.
type RequestResponse struct {
	HTTPStatus    int    `yaml:"http_status" json:"httpStatus"`
	Message       string `yaml:"message" json:"message"`
	CorrelationID string `yaml:"correlation_id" json:"correlationId"`
}

// TimelineStep is a single {timestamp, label} entry in a request's
// processing history.
type TimelineStep struct {
	TS    string `yaml:"ts" json:"ts"`
	Label string `yaml:"label" json:"label"`
}
