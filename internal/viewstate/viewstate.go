// Copyright (c) 2026 Hanvil Academy
// All rights reserved. See LICENSE for details.

// Package viewstate keeps the per-page-instance state of the filterable
// lists. Every full page load of /faqs or /events gets its own instance,
// identified by a ULID embedded in the page, so two open tabs never share
// a selected category or an open answer.
package viewstate

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"

	"hanvil/internal/listing"
)

// DefaultTTL is how long an idle page instance is kept.
const DefaultTTL = 30 * time.Minute

// ErrNotFound is returned when an instance id is unknown, malformed, or expired.
var ErrNotFound = errors.New("viewstate: instance not found")

// Data is the stored state of one page instance.
type Data struct {
	Page      string        `json:"page"`
	State     listing.State `json:"state"`
	CreatedAt time.Time     `json:"created_at"`
}

// Store persists page instances.
type Store interface {
	// Create stores data under a fresh id and returns the id.
	Create(ctx context.Context, data *Data) (string, error)
	// Get loads an instance. It returns ErrNotFound for unknown ids.
	Get(ctx context.Context, id string) (*Data, error)
	// Save replaces an existing instance and refreshes its expiry.
	Save(ctx context.Context, id string, data *Data) error
}

// NewID returns a new instance id.
func NewID() string {
	return ulid.Make().String()
}

// ValidID reports whether id has the shape of an instance id. Stores use it
// to reject garbage before touching the backend.
func ValidID(id string) bool {
	_, err := ulid.ParseStrict(id)
	return err == nil
}
