// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package notify holds the dashboard's ephemeral toast queue. Toasts
// are append-only user-facing messages with a queue-owned unique
// identifier; they leave the queue on explicit dismissal or when the
// presentation layer's auto-expiry fires.
package notify

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Kind is the severity of a toast, controlling its rendering.
type Kind string

const (
	// Success reports a completed command.
	Success Kind = "success"
	// Error reports a rejected or failed command.
	Error Kind = "error"
	// Info reports neutral information.
	Info Kind = "info"
)

// Toast is one ephemeral notification. ID is unique within the queue
// and assigned by Push, never by the caller — repeated pushes of an
// identical message each get a fresh entry and identifier.
type Toast struct {
	ID   string
	Kind Kind
	Msg  string
}

// Queue is an insertion-ordered toast list. Safe for concurrent use;
// every operation is applied atomically.
type Queue struct {
	mu     sync.Mutex
	toasts []Toast
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends a toast and returns its generated identifier.
func (queue *Queue) Push(kind Kind, message string) string {
	queue.mu.Lock()
	defer queue.mu.Unlock()

	toast := Toast{
		ID:   uuid.NewString(),
		Kind: kind,
		Msg:  message,
	}
	queue.toasts = append(queue.toasts, toast)
	return toast.ID
}

// Dismiss removes the toast with the given identifier. Dismissing an
// absent identifier is a no-op; the relative order of the remaining
// toasts is unchanged.
func (queue *Queue) Dismiss(id string) {
	queue.mu.Lock()
	defer queue.mu.Unlock()

	queue.toasts = slices.DeleteFunc(queue.toasts, func(toast Toast) bool {
		return toast.ID == id
	})
}

// List returns the queue contents in insertion order as a snapshot.
func (queue *Queue) List() []Toast {
	queue.mu.Lock()
	defer queue.mu.Unlock()
	return slices.Clone(queue.toasts)
}

// Len returns the number of queued toasts.
func (queue *Queue) Len() int {
	queue.mu.Lock()
	defer queue.mu.Unlock()
	return len(queue.toasts)
}
