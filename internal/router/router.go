// Copyright (c) 2026 Hanvil Academy
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// Hanvil Academy site.
package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hanvil/internal/handlers"
	"hanvil/internal/middleware"
)

// Form posts allowed per client IP per window.
const (
	formRateLimit  = 5
	formRateWindow = time.Minute
)

// Filterable list requests allowed per client IP per window. Every list
// load and every post with a stale instance stores a new instance.
const (
	listRateLimit  = 120
	listRateWindow = time.Minute
)

// Deps bundles the handler groups the router wires up.
type Deps struct {
	Public        *handlers.Public
	Lists         *handlers.Lists
	Contact       *handlers.Contact
	Admissions    *handlers.Admissions
	Static        fs.FS // contents served under /static/
	SecureCookies bool
}

// New creates and returns the configured Chi router with all middleware
// and routes wired up. The returned stop function ends the rate limiters'
// cleanup goroutines.
func New(d Deps) (chi.Router, func()) {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check and static files skip CSRF and client hints.
	r.Get("/health", healthHandler)
	r.Handle("/static/*", http.StripPrefix("/static/", staticHandler(d.Static)))

	formLimiter := middleware.NewRateLimiter(formRateLimit, formRateWindow)
	listLimiter := middleware.NewRateLimiter(listRateLimit, listRateWindow)

	r.Group(func(r chi.Router) {
		r.Use(middleware.ClientHints)
		// /theme is posted from cached pages that carry no token.
		r.Use(middleware.NewCSRF(d.SecureCookies, "/theme"))

		r.Get("/", d.Public.Home)
		r.Get("/story", d.Public.Story)
		r.Get("/achievements", d.Public.Achievements)
		r.Get("/programs", d.Public.Programs)
		r.Get("/curriculum", d.Public.Curriculum)
		r.Get("/academic-calendar", d.Public.Calendar)
		r.Get("/academic-calender", d.Public.LegacyCalendar)
		r.Get("/tuition", d.Public.Tuition)
		r.Post("/theme", d.Public.ToggleTheme)

		// Filterable lists. Page instances are mutated over HTMX.
		r.Group(func(r chi.Router) {
			r.Use(listLimiter.Middleware)
			r.Get("/faqs", d.Lists.FAQs.Show)
			r.Post("/faqs/{id}/filter", d.Lists.FAQs.Filter)
			r.Post("/faqs/{id}/toggle/{index}", d.Lists.FAQs.Toggle)
			r.Get("/events", d.Lists.Events.Show)
			r.Post("/events/{id}/filter", d.Lists.Events.Filter)
		})
		r.Get("/events/{slug}", d.Public.EventDetail)

		r.Get("/contact", d.Contact.Show)
		r.Get("/contact/whatsapp.png", d.Contact.WhatsAppQR)
		r.Get("/apply", d.Admissions.Show)

		// Form submissions are rate limited per IP.
		r.Group(func(r chi.Router) {
			r.Use(formLimiter.Middleware)
			r.Post("/contact", d.Contact.Submit)
			r.Post("/apply", d.Admissions.Submit)
		})
	})

	// The 404 page uses the theme, so it needs the hints middleware too.
	r.NotFound(middleware.ClientHints(http.HandlerFunc(d.Public.NotFound)).ServeHTTP)

	return r, func() {
		formLimiter.Stop()
		listLimiter.Stop()
	}
}

// staticHandler serves embedded assets with a short public cache lifetime.
func staticHandler(static fs.FS) http.Handler {
	files := http.FileServer(http.FS(static))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, r)
	})
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
