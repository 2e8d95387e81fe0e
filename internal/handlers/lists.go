// Copyright (c) 2026 Hanvil Academy
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"hanvil/internal/content"
	"hanvil/internal/listing"
	"hanvil/internal/models"
	"hanvil/internal/render"
	"hanvil/internal/viewstate"
)

// ListView is what the list templates receive as .Data.List.
type ListView struct {
	Page       string // URL segment, e.g. "faqs"
	Instance   string // page instance id for HTMX posts
	Filter     string
	Categories models.CategorySet
	Counts     map[string]int
	Entries    any // []listing.Entry[T]
}

// ListPage serves one filterable list. A full GET creates a page instance
// whose filter and open item live in the viewstate store; HTMX posts then
// mutate that instance and get the re-rendered list region back.
type ListPage[T listing.Item] struct {
	page       string
	title      string
	section    string
	categories models.CategorySet
	items      []T
	toggles    bool

	renderer *render.Renderer
	states   viewstate.Store
	now      func() time.Time
}

// Lists groups the site's filterable list pages.
type Lists struct {
	FAQs   *ListPage[models.FAQ]
	Events *ListPage[models.Event]
}

// NewLists creates the FAQ and event list pages.
func NewLists(renderer *render.Renderer, site *content.Site, states viewstate.Store) *Lists {
	return &Lists{
		FAQs: &ListPage[models.FAQ]{
			page:       "faqs",
			title:      "Frequently Asked Questions",
			section:    "admissions",
			categories: site.FAQCategories,
			items:      site.FAQs,
			toggles:    true,
			renderer:   renderer,
			states:     states,
			now:        time.Now,
		},
		Events: &ListPage[models.Event]{
			page:       "events",
			title:      "Events",
			section:    "about",
			categories: site.EventCategories,
			items:      site.Events,
			renderer:   renderer,
			states:     states,
			now:        time.Now,
		},
	}
}

// Show renders the full page with a fresh instance. ?category= and ?open=
// seed the state so the page works without JavaScript.
func (lp *ListPage[T]) Show(w http.ResponseWriter, r *http.Request) {
	st := listing.InitialState()
	q := r.URL.Query()
	if c := q.Get("category"); c != "" {
		st.Filter = c
	}
	if lp.toggles {
		if i, err := strconv.Atoi(q.Get("open")); err == nil && i >= 0 && i < len(lp.items) {
			st.Open = i
		}
	}

	id := lp.create(r.Context(), st)
	l := listing.Restore(lp.items, st)

	// Each load has its own instance id; never let a proxy share it.
	w.Header().Set("Cache-Control", "no-store")
	lp.renderer.Page(w, r, lp.page, lp.pageData(id, l))
}

// Filter applies the posted category to the instance.
func (lp *ListPage[T]) Filter(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	category := r.PostForm.Get("category")
	if category == "" {
		category = listing.All
	}

	id, l := lp.load(r.Context(), chi.URLParam(r, "id"))
	l.SetFilter(category)
	lp.save(r.Context(), id, l)
	lp.respond(w, r, id, l)
}

// Toggle expands or collapses the item at the given full-list index.
func (lp *ListPage[T]) Toggle(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if index < 0 || index >= len(lp.items) {
		http.NotFound(w, r)
		return
	}

	id, l := lp.load(r.Context(), chi.URLParam(r, "id"))
	l.ToggleOpen(index)
	lp.save(r.Context(), id, l)
	lp.respond(w, r, id, l)
}

// respond renders the list region for HTMX, or redirects plain form posts
// to the GET URL that reproduces the new state.
func (lp *ListPage[T]) respond(w http.ResponseWriter, r *http.Request, id string, l *listing.List[T]) {
	target := lp.stateURL(l)
	if !render.IsHTMX(r) {
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}
	w.Header().Set("HX-Replace-Url", target)
	lp.renderer.Fragment(w, r, http.StatusOK, lp.page, lp.page+"_list", lp.pageData(id, l))
}

// stateURL is the bookmarkable GET URL for the list's state.
func (lp *ListPage[T]) stateURL(l *listing.List[T]) string {
	q := url.Values{}
	if f := l.Filter(); f != listing.All {
		q.Set("category", f)
	}
	if i, ok := l.OpenIndex(); ok {
		q.Set("open", strconv.Itoa(i))
	}
	if len(q) == 0 {
		return "/" + lp.page
	}
	return "/" + lp.page + "?" + q.Encode()
}

func (lp *ListPage[T]) pageData(id string, l *listing.List[T]) *render.PageData {
	return &render.PageData{
		Title:   lp.title,
		Section: lp.section,
		Data: map[string]any{"List": ListView{
			Page:       lp.page,
			Instance:   id,
			Filter:     l.Filter(),
			Categories: lp.categories,
			Counts:     l.Counts(),
			Entries:    l.Entries(),
		}},
	}
}

// create stores a new instance. When the store is down the page still
// renders; its posts will find no instance and start over.
func (lp *ListPage[T]) create(ctx context.Context, st listing.State) string {
	id, err := lp.states.Create(ctx, &viewstate.Data{Page: lp.page, State: st, CreatedAt: lp.now()})
	if err != nil {
		slog.Warn("create page instance failed", "page", lp.page, "error", err)
		return viewstate.NewID()
	}
	return id
}

// load restores an instance. Unknown, expired or foreign ids restart from
// the initial state under a new id.
func (lp *ListPage[T]) load(ctx context.Context, id string) (string, *listing.List[T]) {
	if viewstate.ValidID(id) {
		data, err := lp.states.Get(ctx, id)
		switch {
		case err == nil && data.Page == lp.page:
			return id, listing.Restore(lp.items, data.State)
		case err == nil:
			slog.Debug("page instance belongs to another page", "id", id, "page", data.Page, "want", lp.page)
		case errors.Is(err, viewstate.ErrNotFound):
			slog.Debug("page instance expired", "id", id, "page", lp.page)
		default:
			slog.Warn("load page instance failed", "id", id, "page", lp.page, "error", err)
		}
	}

	st := listing.InitialState()
	return lp.create(ctx, st), listing.Restore(lp.items, st)
}

func (lp *ListPage[T]) save(ctx context.Context, id string, l *listing.List[T]) {
	err := lp.states.Save(ctx, id, &viewstate.Data{Page: lp.page, State: l.State(), CreatedAt: lp.now()})
	if err != nil {
		slog.Warn("save page instance failed", "id", id, "page", lp.page, "error", err)
	}
}
