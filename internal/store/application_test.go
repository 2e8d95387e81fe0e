// Copyright (c) 2026 Hanvil Academy
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"hanvil/internal/models"
)

func testApplication(email string) *models.Application {
	photo := "admissions/photo.jpg"
	return &models.Application{
		ChildName:   "Esi Owusu",
		DateOfBirth: time.Date(2019, 6, 14, 0, 0, 0, 0, time.UTC),
		ParentName:  "Akosua Owusu",
		Phone:       "0241234567",
		Email:       email,
		ClassLevel:  "KG 2",
		PhotoKey:    &photo,
	}
}

func TestApplicationStoreCreate(t *testing.T) {
	db := testDB(t)
	s := NewApplicationStore(db)
	ctx := context.Background()

	email := "create@apply.test"
	t.Cleanup(func() { cleanApplications(t, db, email) })

	created, err := s.Create(ctx, testApplication(email))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("expected generated ID")
	}
	if created.Status != models.ApplicationStatusSubmitted {
		t.Errorf("Status: got %q, want submitted", created.Status)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	if created.PhotoKey == nil || *created.PhotoKey != "admissions/photo.jpg" {
		t.Errorf("PhotoKey: got %v", created.PhotoKey)
	}
	if created.BirthCertKey != nil {
		t.Errorf("BirthCertKey: expected nil, got %v", *created.BirthCertKey)
	}
	if !created.DateOfBirth.Equal(time.Date(2019, 6, 14, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("DateOfBirth: got %v", created.DateOfBirth)
	}

	var childName, classLevel string
	err = db.QueryRow("SELECT child_name, class_level FROM applications WHERE id = $1", created.ID).
		Scan(&childName, &classLevel)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if childName != "Esi Owusu" || classLevel != "KG 2" {
		t.Errorf("stored row: got %q, %q", childName, classLevel)
	}
}
