// Copyright (c) 2026 Hanvil Academy
// All rights reserved. See LICENSE for details.

// Package relay delivers contact form submissions to the school's inbox
// through EmailJS. The service, template and public key identifiers are
// opaque strings issued by EmailJS.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the EmailJS REST endpoint root.
const DefaultBaseURL = "https://api.emailjs.com"

// Deliverer sends a set of named form fields to the school.
type Deliverer interface {
	Send(ctx context.Context, fields map[string]string) error
}

// DeliveryError reports that a message was not accepted by the relay.
// Status is the HTTP status of the relay's answer, or 0 when the request
// never got one.
type DeliveryError struct {
	Status int
	Body   string
	Err    error
}

func (e *DeliveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("relay delivery failed: %v", e.Err)
	}
	return fmt.Sprintf("relay delivery failed (status %d): %s", e.Status, e.Body)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// Config holds the EmailJS identifiers.
type Config struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	BaseURL    string
}

// Configured reports whether all identifiers needed to send are present.
func (c Config) Configured() bool {
	return c.ServiceID != "" && c.TemplateID != "" && c.PublicKey != ""
}

// EmailJS is a Deliverer backed by the EmailJS send API.
type EmailJS struct {
	config Config
	client *http.Client
}

// NewEmailJS creates an EmailJS client.
func NewEmailJS(cfg Config) *EmailJS {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &EmailJS{
		config: cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Send posts the fields as template parameters. Any answer other than
// 200 OK is a *DeliveryError.
func (e *EmailJS) Send(ctx context.Context, fields map[string]string) error {
	payload, err := json.Marshal(emailJSRequest{
		ServiceID:      e.config.ServiceID,
		TemplateID:     e.config.TemplateID,
		UserID:         e.config.PublicKey,
		TemplateParams: fields,
	})
	if err != nil {
		return fmt.Errorf("emailjs marshal: %w", err)
	}

	url := e.config.BaseURL + "/api/v1.0/email/send"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("emailjs request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return &DeliveryError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &DeliveryError{Status: resp.StatusCode, Body: string(body)}
	}
	return nil
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// Unconfigured is a Deliverer used when no EmailJS identifiers are set.
// Every send fails, so the visitor sees the failure notice instead of a
// success message for a message nobody will read.
type Unconfigured struct{}

// Send implements Deliverer.
func (Unconfigured) Send(context.Context, map[string]string) error {
	return &DeliveryError{Err: fmt.Errorf("emailjs is not configured")}
}
