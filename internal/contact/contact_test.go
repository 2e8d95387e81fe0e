// Copyright (c) 2026 Hanvil Academy
// All rights reserved. See LICENSE for details.

package contact

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"hanvil/internal/models"
	"hanvil/internal/relay"
)

// fakeDeliverer records what it was asked to send and returns err.
type fakeDeliverer struct {
	calls  int
	fields map[string]string
	err    error
}

func (f *fakeDeliverer) Send(_ context.Context, fields map[string]string) error {
	f.calls++
	f.fields = fields
	return f.err
}

func validForm() *Form {
	return &Form{
		Name:    "Kofi Boateng",
		Email:   "kofi@example.com",
		Subject: "School visit",
		Message: "Can we visit on Saturday?",
	}
}

func TestSubmitSuccessClearsFields(t *testing.T) {
	f := validForm()
	d := &fakeDeliverer{}

	if err := f.Submit(context.Background(), d); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if !f.Success || f.Failed {
		t.Errorf("flags: Success=%v Failed=%v", f.Success, f.Failed)
	}
	if f.Name != "" || f.Email != "" || f.Subject != "" || f.Message != "" {
		t.Errorf("fields not cleared: %+v", f)
	}
	if d.calls != 1 {
		t.Fatalf("deliverer calls: got %d, want 1", d.calls)
	}
	if d.fields[models.FieldName] != "Kofi Boateng" || d.fields[models.FieldMessage] != "Can we visit on Saturday?" {
		t.Errorf("sent fields: %+v", d.fields)
	}
}

func TestSubmitFailureKeepsFields(t *testing.T) {
	f := validForm()
	d := &fakeDeliverer{err: &relay.DeliveryError{Status: 500}}

	err := f.Submit(context.Background(), d)
	var de *relay.DeliveryError
	if !errors.As(err, &de) {
		t.Fatalf("expected *relay.DeliveryError, got %v", err)
	}

	if f.Success || !f.Failed {
		t.Errorf("flags: Success=%v Failed=%v", f.Success, f.Failed)
	}
	if f.Name != "Kofi Boateng" || f.Message == "" {
		t.Errorf("fields should be kept after failure: %+v", f)
	}
}

func TestSubmitInvalidDoesNotSend(t *testing.T) {
	f := validForm()
	f.Message = ""
	d := &fakeDeliverer{}

	err := f.Submit(context.Background(), d)
	var ve ValidationErrors
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if d.calls != 0 {
		t.Error("invalid form must not reach the deliverer")
	}
	if f.Success || f.Failed {
		t.Errorf("flags: Success=%v Failed=%v", f.Success, f.Failed)
	}
}

func TestResubmitResetsFlags(t *testing.T) {
	f := validForm()
	f.Submit(context.Background(), &fakeDeliverer{err: &relay.DeliveryError{}})
	if !f.Failed {
		t.Fatal("first submit should fail")
	}
	if err := f.Submit(context.Background(), &fakeDeliverer{}); err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if f.Failed || !f.Success {
		t.Errorf("flags after retry: Success=%v Failed=%v", f.Success, f.Failed)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(f *Form)
		fields []string
	}{
		{"valid", func(f *Form) {}, nil},
		{"missing name", func(f *Form) { f.Name = "" }, []string{models.FieldName}},
		{"missing email", func(f *Form) { f.Email = "" }, []string{models.FieldEmail}},
		{"bad email", func(f *Form) { f.Email = "kofi at example" }, []string{models.FieldEmail}},
		{"display name email", func(f *Form) { f.Email = "Kofi <kofi@example.com>" }, []string{models.FieldEmail}},
		{"padded email", func(f *Form) { f.Email = " kofi@example.com" }, []string{models.FieldEmail}},
		{"blank subject", func(f *Form) { f.Subject = " \t\n" }, []string{models.FieldSubject}},
		{"missing subject", func(f *Form) { f.Subject = "" }, []string{models.FieldSubject}},
		{"message too long", func(f *Form) { f.Message = strings.Repeat("a", maxMessageLen+1) }, []string{models.FieldMessage}},
		{"everything missing", func(f *Form) { *f = Form{} }, []string{models.FieldName, models.FieldEmail, models.FieldSubject, models.FieldMessage}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.modify(f)
			err := f.Validate()

			if len(tt.fields) == 0 {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if len(f.Errors) != len(tt.fields) {
				t.Errorf("errors: got %v, want fields %v", f.Errors, tt.fields)
			}
			for _, field := range tt.fields {
				if f.Errors[field] == "" {
					t.Errorf("missing error for %s", field)
				}
			}
		})
	}
}

func TestFromValues(t *testing.T) {
	v := url.Values{
		models.FieldName:    {"  Ama  "},
		models.FieldEmail:   {"ama@example.com"},
		models.FieldSubject: {"Fees"},
		models.FieldMessage: {"Hello"},
	}
	f := FromValues(v)
	if f.Name != "  Ama  " || f.Email != "ama@example.com" || f.Subject != "Fees" || f.Message != "Hello" {
		t.Errorf("FromValues: got %+v", f)
	}
}

func TestSubmitSendsFieldsVerbatim(t *testing.T) {
	message := "  line one\n  - indented item\n\n"
	f := FromValues(url.Values{
		models.FieldName:    {" Ama Mensah "},
		models.FieldEmail:   {"ama@example.com"},
		models.FieldSubject: {"Fees\t"},
		models.FieldMessage: {message},
	})
	d := &fakeDeliverer{}

	if err := f.Submit(context.Background(), d); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	want := map[string]string{
		models.FieldName:    " Ama Mensah ",
		models.FieldEmail:   "ama@example.com",
		models.FieldSubject: "Fees\t",
		models.FieldMessage: message,
	}
	for k, v := range want {
		if d.fields[k] != v {
			t.Errorf("%s: got %q, want %q", k, d.fields[k], v)
		}
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	err := ValidationErrors{"subject": "required", "message": "required"}
	want := "invalid contact form: message: required; subject: required"
	if err.Error() != want {
		t.Errorf("Error(): got %q, want %q", err.Error(), want)
	}
}
