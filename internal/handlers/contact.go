// Copyright (c) 2026 Hanvil Academy
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/skip2/go-qrcode"

	"hanvil/internal/contact"
	"hanvil/internal/relay"
	"hanvil/internal/render"
	"hanvil/internal/store"
)

// qrSize is the edge length of the WhatsApp QR code in pixels.
const qrSize = 256

// Contact serves the contact page, its form, and the WhatsApp QR code.
type Contact struct {
	renderer    *render.Renderer
	relay       relay.Deliverer
	contactLog  *store.ContactLogStore
	whatsAppURL string
	qrPNG       []byte
}

// NewContact creates the contact handlers. contactLog may be nil when no
// database is configured. whatsApp is the number in international format
// without the leading "+".
func NewContact(renderer *render.Renderer, d relay.Deliverer, contactLog *store.ContactLogStore, whatsApp string) (*Contact, error) {
	waURL := "https://wa.me/" + whatsApp
	png, err := qrcode.Encode(waURL, qrcode.Medium, qrSize)
	if err != nil {
		return nil, err
	}
	return &Contact{
		renderer:    renderer,
		relay:       d,
		contactLog:  contactLog,
		whatsAppURL: waURL,
		qrPNG:       png,
	}, nil
}

// Show renders the contact page with an empty form.
func (c *Contact) Show(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, http.StatusOK, &contact.Form{})
}

// Submit validates the form and hands it to the email relay. Validation
// problems answer 422, relay failures 502; in both cases the visitor's
// input is kept.
func (c *Contact) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	f := contact.FromValues(r.PostForm)
	msg := f.ContactMessage()

	err := f.Submit(r.Context(), c.relay)

	var verrs contact.ValidationErrors
	switch {
	case err == nil:
		slog.Info("contact message delivered", "email", msg.Email, "subject", msg.Subject)
		if c.contactLog != nil {
			c.contactLog.Log(r.Context(), msg)
		}
		c.render(w, r, http.StatusOK, f)
	case errors.As(err, &verrs):
		c.render(w, r, http.StatusUnprocessableEntity, f)
	default:
		var derr *relay.DeliveryError
		if errors.As(err, &derr) {
			slog.Error("contact delivery failed", "status", derr.Status, "body", derr.Body, "error", derr.Err)
		} else {
			slog.Error("contact delivery failed", "error", err)
		}
		c.render(w, r, http.StatusBadGateway, f)
	}
}

func (c *Contact) render(w http.ResponseWriter, r *http.Request, status int, f *contact.Form) {
	data := &render.PageData{
		Title:   "Contact Us",
		Section: "contact",
		Data: map[string]any{
			"Form":        f,
			"WhatsAppURL": c.whatsAppURL,
		},
	}
	if render.IsHTMX(r) {
		c.renderer.Fragment(w, r, status, "contact", "contact_form", data)
		return
	}
	c.renderer.PageStatus(w, r, status, "contact", data)
}

// WhatsAppQR serves the QR code linking to the school's WhatsApp chat.
func (c *Contact) WhatsAppQR(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(c.qrPNG)
}
