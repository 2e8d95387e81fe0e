// Copyright (c) 2026 Hanvil Academy
// All rights reserved. See LICENSE for details.

// contact_log.go records contact messages the relay accepted, so the office
// can tell whether a parent's message went through. Only the sender and
// subject are kept; the message body lives in the school's inbox.
package store

import (
	"context"
	"database/sql"
	"log/slog"

	"hanvil/internal/models"
)

// ContactLogStore handles contact log operations.
type ContactLogStore struct {
	db *sql.DB
}

// NewContactLogStore creates a new ContactLogStore.
func NewContactLogStore(db *sql.DB) *ContactLogStore {
	return &ContactLogStore{db: db}
}

// Log records a delivered message. Failures are logged, not returned:
// the message has already reached the school.
func (s *ContactLogStore) Log(ctx context.Context, m models.ContactMessage) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_log (name, email, subject)
		VALUES ($1, $2, $3)
	`, m.Name, m.Email, m.Subject)
	if err != nil {
		slog.Warn("failed to log contact message",
			"email", m.Email,
			"subject", m.Subject,
			"error", err,
		)
		return
	}
	slog.Debug("contact message logged", "email", m.Email)
}
