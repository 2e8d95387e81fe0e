// Copyright (c) 2026 Hanvil Academy
// All rights reserved. See LICENSE for details.

package models

// Contact form field names. They double as the template parameter names
// the email relay template expects.
const (
	FieldName    = "your_name"
	FieldEmail   = "your_email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// ContactMessage is a message submitted through the contact form.
type ContactMessage struct {
	Name    string `json:"your_name"`
	Email   string `json:"your_email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Params returns the message as relay template parameters.
func (m ContactMessage) Params() map[string]string {
	return map[string]string{
		FieldName:    m.Name,
		FieldEmail:   m.Email,
		FieldSubject: m.Subject,
		FieldMessage: m.Message,
	}
}
