// Copyright (c) 2026 Hanvil Academy
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus represents where an admission application is in review.
type ApplicationStatus string

const (
	ApplicationStatusSubmitted ApplicationStatus = "submitted"
	ApplicationStatusReviewed  ApplicationStatus = "reviewed"
	ApplicationStatusAdmitted  ApplicationStatus = "admitted"
	ApplicationStatusDeclined  ApplicationStatus = "declined"
)

// Application is an online admission application. PhotoKey and
// BirthCertKey are object keys in the private bucket, nil when storage is
// not configured or the file was not uploaded.
type Application struct {
	ID           uuid.UUID         `json:"id"`
	ChildName    string            `json:"child_name"`
	DateOfBirth  time.Time         `json:"date_of_birth"`
	ParentName   string            `json:"parent_name"`
	Phone        string            `json:"phone"`
	Email        string            `json:"email"`
	ClassLevel   string            `json:"class_level"`
	PhotoKey     *string           `json:"photo_key,omitempty"`
	BirthCertKey *string           `json:"birth_cert_key,omitempty"`
	Status       ApplicationStatus `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
}

// AgeOn returns the child's age in whole years on the given day.
func (a *Application) AgeOn(day time.Time) int {
	years := day.Year() - a.DateOfBirth.Year()
	if day.Month() < a.DateOfBirth.Month() ||
		(day.Month() == a.DateOfBirth.Month() && day.Day() < a.DateOfBirth.Day()) {
		years--
	}
	return years
}

// HasDocuments reports whether both uploads were stored.
func (a *Application) HasDocuments() bool {
	return a.PhotoKey != nil && a.BirthCertKey != nil
}
