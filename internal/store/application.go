// Copyright (c) 2026 Hanvil Academy
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"hanvil/internal/models"
)

// ApplicationStore handles admission application records.
type ApplicationStore struct {
	db *sql.DB
}

// NewApplicationStore creates a new ApplicationStore with the given database connection.
func NewApplicationStore(db *sql.DB) *ApplicationStore {
	return &ApplicationStore{db: db}
}

// applicationColumns lists the columns selected in application queries.
const applicationColumns = `id, child_name, date_of_birth, parent_name, phone, email,
	class_level, photo_key, birth_cert_key, status, created_at`

// scanApplication scans an application row from the result set.
func scanApplication(scanner interface{ Scan(...any) error }) (*models.Application, error) {
	var a models.Application
	err := scanner.Scan(
		&a.ID, &a.ChildName, &a.DateOfBirth, &a.ParentName, &a.Phone, &a.Email,
		&a.ClassLevel, &a.PhotoKey, &a.BirthCertKey, &a.Status, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new application and returns it with the generated ID,
// status and timestamp.
func (s *ApplicationStore) Create(ctx context.Context, a *models.Application) (*models.Application, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO applications (child_name, date_of_birth, parent_name, phone, email,
			class_level, photo_key, birth_cert_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+applicationColumns,
		a.ChildName, a.DateOfBirth, a.ParentName, a.Phone, a.Email,
		a.ClassLevel, a.PhotoKey, a.BirthCertKey,
	)
	created, err := scanApplication(row)
	if err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}
	return created, nil
}
