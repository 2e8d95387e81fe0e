// Copyright (c) 2026 Hanvil Academy
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"

	"hanvil/internal/environ"
)

// ClientHints asks the browser for its colour-scheme and viewport hints
// and stores what this request carried (plus the theme cookie) in the
// context for handlers and templates to read.
func ClientHints(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Accept-CH", environ.AcceptCH)
		h.Set("Critical-CH", "Sec-CH-Prefers-Color-Scheme")
		h.Add("Vary", "Cookie")
		h.Add("Vary", environ.AcceptCH)

		snap := environ.FromRequest(r)
		next.ServeHTTP(w, r.WithContext(environ.WithObserver(r.Context(), snap)))
	})
}
