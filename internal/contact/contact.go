// Copyright (c) 2026 Hanvil Academy
// All rights reserved. See LICENSE for details.

// Package contact holds the contact form view model: the four fields the
// visitor types, validation, and the hand-off to a relay.Deliverer.
package contact

import (
	"context"
	"net/mail"
	"net/url"
	"sort"
	"strings"
	"unicode/utf8"

	"hanvil/internal/models"
	"hanvil/internal/relay"
)

// Field length limits.
const (
	maxNameLen    = 200
	maxEmailLen   = 254
	maxSubjectLen = 300
	maxMessageLen = 5_000
)

// ValidationErrors maps a form field name to its message.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + ": " + v[f]
	}
	return "invalid contact form: " + strings.Join(parts, "; ")
}

// Form is the state of one contact form.
type Form struct {
	Name    string
	Email   string
	Subject string
	Message string

	Errors  ValidationErrors
	Success bool
	Failed  bool
}

// FromValues reads the form fields from a posted form. Values are kept
// exactly as posted; whitespace only matters to validation.
func FromValues(v url.Values) *Form {
	return &Form{
		Name:    v.Get(models.FieldName),
		Email:   v.Get(models.FieldEmail),
		Subject: v.Get(models.FieldSubject),
		Message: v.Get(models.FieldMessage),
	}
}

// ContactMessage returns the fields as a contact message.
func (f *Form) ContactMessage() models.ContactMessage {
	return models.ContactMessage{
		Name:    f.Name,
		Email:   f.Email,
		Subject: f.Subject,
		Message: f.Message,
	}
}

// Validate checks every field and records the problems on the form.
// It returns nil when the form can be sent.
func (f *Form) Validate() error {
	errs := ValidationErrors{}

	required(errs, models.FieldName, f.Name, "Your name is required.", maxNameLen)
	required(errs, models.FieldSubject, f.Subject, "A subject is required.", maxSubjectLen)
	required(errs, models.FieldMessage, f.Message, "A message is required.", maxMessageLen)
	required(errs, models.FieldEmail, f.Email, "Your email is required.", maxEmailLen)
	if _, ok := errs[models.FieldEmail]; !ok {
		// A bare address only: display names and angle brackets would
		// reach the relay as the reply-to value.
		addr, err := mail.ParseAddress(f.Email)
		if err != nil || addr.Address != f.Email {
			errs[models.FieldEmail] = "Please enter a valid email address."
		}
	}

	if len(errs) == 0 {
		f.Errors = nil
		return nil
	}
	f.Errors = errs
	return errs
}

func required(errs ValidationErrors, field, value, msg string, limit int) {
	switch {
	case strings.TrimSpace(value) == "":
		errs[field] = msg
	case utf8.RuneCountInString(value) > limit:
		errs[field] = "This field is too long."
	}
}

// Submit validates the form and hands it to d. On success every field is
// cleared and Success is set. On failure the fields are kept so the
// visitor can try again, Failed is set, and the delivery error returned.
// Nothing is retried.
func (f *Form) Submit(ctx context.Context, d relay.Deliverer) error {
	f.Success, f.Failed = false, false

	if err := f.Validate(); err != nil {
		return err
	}

	if err := d.Send(ctx, f.ContactMessage().Params()); err != nil {
		f.Failed = true
		return err
	}

	f.Name, f.Email, f.Subject, f.Message = "", "", "", ""
	f.Success = true
	return nil
}
