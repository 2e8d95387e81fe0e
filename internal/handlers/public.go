// Copyright (c) 2026 Hanvil Academy
// All rights reserved. See LICENSE for details.

// Package handlers implements the HTTP handlers of the school site.
package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"hanvil/internal/cache"
	"hanvil/internal/content"
	"hanvil/internal/environ"
	"hanvil/internal/render"
)

// Public groups handlers for the informational pages. Every page here is
// the same for all visitors with the same theme and layout, so rendered
// HTML goes through the Valkey page cache.
type Public struct {
	renderer      *render.Renderer
	site          *content.Site
	pageCache     *cache.PageCache
	secureCookies bool
}

// NewPublic creates a new Public handler group. pageCache may be nil.
func NewPublic(renderer *render.Renderer, site *content.Site, pageCache *cache.PageCache, secureCookies bool) *Public {
	return &Public{
		renderer:      renderer,
		site:          site,
		pageCache:     pageCache,
		secureCookies: secureCookies,
	}
}

// serveCached writes the cached copy of a page, rendering and storing it
// on a miss. cacheKey identifies the page variant (path plus any query
// that changes the output).
func (p *Public) serveCached(w http.ResponseWriter, r *http.Request, cacheKey, name string, data *render.PageData) {
	ctx := r.Context()

	// HTMX requests get the content block only; those are not cached.
	if render.IsHTMX(r) {
		p.renderer.Page(w, r, name, data)
		return
	}

	obs := environ.FromContext(ctx)
	key := cache.PageKey(cacheKey, obs.PrefersDarkMode(), environ.IsMobile(obs))

	if cached, ok := p.pageCache.Get(ctx, key); ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("X-Cache", "HIT")
		w.Write(cached)
		return
	}

	rendered, err := p.renderer.Bytes(r, name, data)
	if err != nil {
		slog.Error("render page failed", "error", err, "page", name)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.pageCache.Set(ctx, key, rendered)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Cache", "MISS")
	w.Write(rendered)
}

// Home renders the homepage.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	p.serveCached(w, r, "/", "home", &render.PageData{Section: "home"})
}

// Story renders the school history timeline.
func (p *Public) Story(w http.ResponseWriter, r *http.Request) {
	p.serveCached(w, r, "/story", "story", &render.PageData{Title: "Our Story", Section: "about"})
}

// Achievements renders achievements grouped by category.
func (p *Public) Achievements(w http.ResponseWriter, r *http.Request) {
	p.serveCached(w, r, "/achievements", "achievements", &render.PageData{
		Title:   "Achievements",
		Section: "about",
		Data:    map[string]any{"Groups": p.site.AchievementsByCategory()},
	})
}

// Programs renders the academic programmes page.
func (p *Public) Programs(w http.ResponseWriter, r *http.Request) {
	p.serveCached(w, r, "/programs", "programs", &render.PageData{Title: "Programs", Section: "academics"})
}

// Curriculum renders one curriculum level, chosen with ?level=. Unknown
// levels show the first one.
func (p *Public) Curriculum(w http.ResponseWriter, r *http.Request) {
	level := p.site.CurriculumLevel(r.URL.Query().Get("level"))
	p.serveCached(w, r, "/curriculum?level="+level.Key, "curriculum", &render.PageData{
		Title:   "Curriculum",
		Section: "academics",
		Data:    map[string]any{"Level": level},
	})
}

// Calendar renders the academic calendar.
func (p *Public) Calendar(w http.ResponseWriter, r *http.Request) {
	p.serveCached(w, r, "/academic-calendar", "calendar", &render.PageData{Title: "Academic Calendar", Section: "admissions"})
}

// LegacyCalendar redirects the old misspelt calendar URL.
func (p *Public) LegacyCalendar(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/academic-calendar", http.StatusMovedPermanently)
}

// Tuition renders the fee schedule.
func (p *Public) Tuition(w http.ResponseWriter, r *http.Request) {
	p.serveCached(w, r, "/tuition", "tuition", &render.PageData{Title: "Tuition & Fees", Section: "admissions"})
}

// EventDetail renders a single upcoming event by its slug.
func (p *Public) EventDetail(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")
	event := p.site.EventBySlug(slugParam)
	if event == nil {
		p.notFound(w, r, "We could not find that event. It may already have taken place.")
		return
	}
	p.serveCached(w, r, "/events/"+event.Slug, "event", &render.PageData{
		Title:   event.Title,
		Section: "about",
		Data:    map[string]any{"Event": event},
	})
}

// NotFound renders the site's 404 page.
func (p *Public) NotFound(w http.ResponseWriter, r *http.Request) {
	p.notFound(w, r, "")
}

func (p *Public) notFound(w http.ResponseWriter, r *http.Request, msg string) {
	p.renderer.PageStatus(w, r, http.StatusNotFound, "notfound", &render.PageData{
		Title: "Page not found",
		Data:  map[string]any{"Message": msg},
	})
}

// ToggleTheme flips the visitor's theme and sends them back to the page
// they came from. HTMX callers get HX-Refresh so the whole page re-renders
// with the new theme.
func (p *Public) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	dark := !environ.FromContext(r.Context()).PrefersDarkMode()
	environ.SetTheme(w, dark, p.secureCookies)

	slog.Debug("theme changed", "dark", dark)

	if render.IsHTMX(r) {
		w.Header().Set("HX-Refresh", "true")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, sameSiteReturn(r), http.StatusSeeOther)
}

// sameSiteReturn returns the local path of the Referer, or "/" when it is
// missing or points at another host.
func sameSiteReturn(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" {
		return "/"
	}
	if ref.Host != "" && ref.Host != r.Host {
		return "/"
	}
	if !strings.HasPrefix(ref.Path, "/") || strings.HasPrefix(ref.Path, "//") {
		return "/"
	}
	if ref.RawQuery != "" {
		return ref.Path + "?" + ref.RawQuery
	}
	return ref.Path
}
