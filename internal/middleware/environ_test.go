// Copyright (c) 2026 Hanvil Academy
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hanvil/internal/environ"
)

func TestClientHints(t *testing.T) {
	var got environ.Observer
	handler := ClientHints(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = environ.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Sec-CH-Prefers-Color-Scheme", `"dark"`)
	req.Header.Set("Sec-CH-Viewport-Width", "390")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Header().Get("Accept-CH") != environ.AcceptCH {
		t.Errorf("Accept-CH: got %q", rr.Header().Get("Accept-CH"))
	}
	vary := strings.Join(rr.Header().Values("Vary"), ", ")
	if !strings.Contains(vary, "Cookie") || !strings.Contains(vary, "Sec-CH-Prefers-Color-Scheme") {
		t.Errorf("Vary: got %q", vary)
	}
	if got == nil || !got.PrefersDarkMode() || got.ViewportWidth() != 390 {
		t.Fatalf("observer: got %+v", got)
	}
	if !environ.IsMobile(got) {
		t.Error("390px should be mobile")
	}
}

func TestClientHintsCookieWins(t *testing.T) {
	var dark bool
	handler := ClientHints(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dark = environ.FromContext(r.Context()).PrefersDarkMode()
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Sec-CH-Prefers-Color-Scheme", "dark")
	req.AddCookie(&http.Cookie{Name: environ.ThemeCookie, Value: "light"})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if dark {
		t.Error("theme cookie should override the colour-scheme hint")
	}
}
