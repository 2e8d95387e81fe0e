// Copyright (c) 2026 Hanvil Academy
// All rights reserved. See LICENSE for details.

// Package environ reports the visitor's display environment: whether they
// prefer a dark colour scheme and how wide their viewport is. Pages use it
// to pick the theme and the mobile layout on the server, so the first paint
// is already right.
package environ

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	// ThemeCookie stores an explicit theme choice ("dark" or "light").
	ThemeCookie = "theme"

	// MobileBreakpoint is the viewport width below which the mobile layout applies.
	MobileBreakpoint = 768

	// AcceptCH lists the client hints the site asks browsers to send.
	AcceptCH = "Sec-CH-Prefers-Color-Scheme, Sec-CH-Viewport-Width, Viewport-Width"

	themeCookieMaxAge = 365 * 24 * time.Hour
)

// Observer answers questions about the visitor's display environment.
type Observer interface {
	PrefersDarkMode() bool
	// ViewportWidth is the layout width in CSS pixels, or 0 when unknown.
	ViewportWidth() int
}

// IsMobile reports whether the observed viewport is narrower than the
// mobile breakpoint. An unknown width counts as desktop.
func IsMobile(o Observer) bool {
	w := o.ViewportWidth()
	return w > 0 && w < MobileBreakpoint
}

// Snapshot is an Observer with fixed answers.
type Snapshot struct {
	Dark  bool
	Width int
}

// PrefersDarkMode implements Observer.
func (s Snapshot) PrefersDarkMode() bool { return s.Dark }

// ViewportWidth implements Observer.
func (s Snapshot) ViewportWidth() int { return s.Width }

// FromRequest reads the environment from the theme cookie and client hints.
// The cookie wins over the colour scheme hint, since it records a choice the
// visitor made on this site.
func FromRequest(r *http.Request) Snapshot {
	var s Snapshot

	if c, err := r.Cookie(ThemeCookie); err == nil && (c.Value == "dark" || c.Value == "light") {
		s.Dark = c.Value == "dark"
	} else {
		s.Dark = strings.EqualFold(strings.Trim(r.Header.Get("Sec-CH-Prefers-Color-Scheme"), `"`), "dark")
	}

	for _, h := range []string{"Sec-CH-Viewport-Width", "Viewport-Width"} {
		if v := r.Header.Get(h); v != "" {
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
				s.Width = n
				break
			}
		}
	}
	return s
}

// SetTheme stores an explicit theme choice in a long-lived cookie.
func SetTheme(w http.ResponseWriter, dark, secure bool) {
	value := "light"
	if dark {
		value = "dark"
	}
	http.SetCookie(w, &http.Cookie{
		Name:     ThemeCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   int(themeCookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

type contextKey struct{}

// WithObserver stores o in ctx.
func WithObserver(ctx context.Context, o Observer) context.Context {
	return context.WithValue(ctx, contextKey{}, o)
}

// FromContext returns the observer stored by WithObserver, or a light,
// unknown-width Snapshot when none is present.
func FromContext(ctx context.Context) Observer {
	if o, ok := ctx.Value(contextKey{}).(Observer); ok {
		return o
	}
	return Snapshot{}
}
