// Copyright (c) 2026 Hanvil Academy
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for the handler
// tests. Everything runs against the embedded site content, in-memory page
// instances and fake relays, so no external service is needed.
package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"hanvil/internal/content"
	"hanvil/internal/environ"
	"hanvil/internal/render"
	"hanvil/internal/viewstate"
)

// fakeDeliverer records sent messages and fails when err is set.
type fakeDeliverer struct {
	mu   sync.Mutex
	sent []map[string]string
	err  error
}

func (f *fakeDeliverer) Send(_ context.Context, fields map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, fields)
	return nil
}

func (f *fakeDeliverer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

// testEnv holds the dependencies shared by handler tests.
type testEnv struct {
	Site     *content.Site
	Renderer *render.Renderer
	States   *viewstate.MemoryStore
	Relay    *fakeDeliverer
	Public   *Public
	Lists    *Lists
	Contact  *Contact
	Apply    *Admissions
}

// newTestEnv creates handlers over the embedded site with no database,
// no Valkey and no object storage.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	site, err := content.Load()
	if err != nil {
		t.Fatalf("content.Load: %v", err)
	}
	renderer, err := render.New(site, true)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	states := viewstate.NewMemoryStore(viewstate.DefaultTTL)
	d := &fakeDeliverer{}

	contactHandlers, err := NewContact(renderer, d, nil, "233241234567")
	if err != nil {
		t.Fatalf("NewContact: %v", err)
	}

	return &testEnv{
		Site:     site,
		Renderer: renderer,
		States:   states,
		Relay:    d,
		Public:   NewPublic(renderer, site, nil, false),
		Lists:    NewLists(renderer, site, states),
		Contact:  contactHandlers,
		Apply:    NewAdmissions(renderer, site, nil, nil),
	}
}

// newRequest builds a request carrying a light desktop environment, as the
// ClientHints middleware would.
func newRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	return req.WithContext(environ.WithObserver(req.Context(), environ.Snapshot{}))
}

// newFormRequest builds a urlencoded POST.
func newFormRequest(target string, form url.Values) *http.Request {
	req := newRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// asHTMX marks a request as issued by htmx.
func asHTMX(r *http.Request) *http.Request {
	r.Header.Set("HX-Request", "true")
	return r
}

// withURLParams adds chi URL parameters to a request. Pairs are key, value.
func withURLParams(r *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
