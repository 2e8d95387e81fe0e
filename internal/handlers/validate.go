// Copyright (c) 2026 Hanvil Academy
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"hanvil/internal/content"
)

// Validation limits for the admissions form.
const (
	maxChildNameLen  = 200
	maxParentNameLen = 200
	maxPhoneLen      = 30
	maxEmailLen      = 254
	maxUploadSize    = 5 << 20 // per file
	dateOfBirthFmt   = "2006-01-02"
)

// Upload field names on the admissions form.
const (
	fieldPhoto     = "photo"
	fieldBirthCert = "birth_certificate"
)

// Content types accepted per upload field.
var (
	photoTypes = map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}
	birthCertTypes = map[string]bool{
		"application/pdf": true,
		"image/jpeg":      true,
		"image/png":       true,
	}
)

// ApplyForm is the state of the online admissions form.
type ApplyForm struct {
	ChildName   string
	DateOfBirth string
	ParentName  string
	Phone       string
	Email       string
	ClassLevel  string

	Errors  map[string]string
	Success bool
	Failed  bool
}

// applyFormFromValues reads the text fields of a posted admissions form.
func applyFormFromValues(v url.Values) *ApplyForm {
	return &ApplyForm{
		ChildName:   strings.TrimSpace(v.Get("child_name")),
		DateOfBirth: strings.TrimSpace(v.Get("date_of_birth")),
		ParentName:  strings.TrimSpace(v.Get("parent_name")),
		Phone:       strings.TrimSpace(v.Get("phone")),
		Email:       strings.TrimSpace(v.Get("email")),
		ClassLevel:  strings.TrimSpace(v.Get("class_level")),
	}
}

// addError records msg for field unless a message is already present.
func (f *ApplyForm) addError(field, msg string) {
	if msg == "" {
		return
	}
	if f.Errors == nil {
		f.Errors = map[string]string{}
	}
	if _, ok := f.Errors[field]; !ok {
		f.Errors[field] = msg
	}
}

// validate checks the text fields and returns the parsed date of birth.
// Problems are recorded in f.Errors.
func (f *ApplyForm) validate(site *content.Site, today time.Time) time.Time {
	f.addError("child_name", validateRequired(f.ChildName, "Child's name", maxChildNameLen))
	f.addError("parent_name", validateRequired(f.ParentName, "Parent or guardian name", maxParentNameLen))
	f.addError("phone", validateRequired(f.Phone, "Phone number", maxPhoneLen))

	f.addError("email", validateRequired(f.Email, "Email", maxEmailLen))
	if f.Email != "" && !strings.Contains(f.Email, "@") {
		f.addError("email", "Please enter a valid email address.")
	}

	var dob time.Time
	if f.DateOfBirth == "" {
		f.addError("date_of_birth", "Date of birth is required.")
	} else if d, err := time.Parse(dateOfBirthFmt, f.DateOfBirth); err != nil {
		f.addError("date_of_birth", "Please use the format YYYY-MM-DD.")
	} else if d.After(today) {
		f.addError("date_of_birth", "Date of birth cannot be in the future.")
	} else {
		dob = d
	}

	if f.ClassLevel == "" {
		f.addError("class_level", "Please choose a class.")
	} else if !site.HasClassLevel(f.ClassLevel) {
		f.addError("class_level", "Please choose a class from the list.")
	}

	return dob
}

// validateRequired checks a required text field and returns an error
// message, or "" when the value is acceptable.
func validateRequired(value, label string, limit int) string {
	if value == "" {
		return label + " is required."
	}
	if utf8.RuneCountInString(value) > limit {
		return fmt.Sprintf("%s is too long (max %d characters).", label, limit)
	}
	return ""
}

// upload is a validated file from the admissions form.
type upload struct {
	data        []byte
	contentType string
}

// readUpload reads an optional upload. It returns nil and no message when
// the field was left empty.
func readUpload(r *http.Request, field string, allowed map[string]bool) (*upload, string) {
	file, header, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, ""
	}
	if err != nil {
		return nil, "The file could not be read."
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		return nil, "File too large. Maximum size is 5 MB."
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		return nil, "The file could not be read."
	}
	if len(data) > maxUploadSize {
		return nil, "File too large. Maximum size is 5 MB."
	}
	if len(data) == 0 {
		return nil, ""
	}

	contentType := http.DetectContentType(data)
	if !allowed[contentType] {
		return nil, fmt.Sprintf("Files of type %q are not accepted.", contentType)
	}
	return &upload{data: data, contentType: contentType}, ""
}

// extensionFromType returns a file extension for the accepted MIME types.
func extensionFromType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return "jpg"
	case "image/png":
		return "png"
	case "image/gif":
		return "gif"
	case "image/webp":
		return "webp"
	case "application/pdf":
		return "pdf"
	default:
		return ""
	}
}
