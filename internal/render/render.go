// Copyright (c) 2026 Hanvil Academy
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site.
// It supports full-page and HTMX partial rendering, automatically detecting
// the request type via the HX-Request header.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"hanvil/internal/content"
	"hanvil/internal/environ"
	"hanvil/internal/middleware"
	"hanvil/internal/models"
)

//go:embed templates/site/*.html
var siteFS embed.FS

// Shared templates parsed alongside every page.
const (
	baseTemplate     = "base.html"
	partialsTemplate = "partials.html"
)

// PageData holds all data passed to site templates.
type PageData struct {
	Title     string         // Page title for <title> tag
	Section   string         // Active navigation section (e.g., "events", "faqs")
	Site      *content.Site  // Static site copy
	Dark      bool           // Render the dark theme
	Mobile    bool           // Visitor reported a narrow viewport
	CSRFToken string         // Empty on cached pages
	Data      map[string]any // Page-specific data
}

// Style is the icon and colour of a category badge.
type Style struct {
	Icon  string
	Color string
}

// Renderer handles template parsing and execution for site pages.
type Renderer struct {
	templates map[string]*template.Template
	funcMap   template.FuncMap
	site      *content.Site
}

// fees formats amounts with English thousands separators.
var fees = message.NewPrinter(language.English)

// FormatAmount renders n with thousands separators, e.g. 12500 -> "12,500".
func FormatAmount(n int) string {
	return fees.Sprintf("%d", n)
}

// New creates a Renderer by parsing all site templates from the embedded
// filesystem. Each page template is paired with the base layout and the
// shared partials. When devMode is true, templates load the unminified
// htmx build.
func New(site *content.Site, devMode bool) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		site:      site,
		funcMap: template.FuncMap{
			"activeClass": func(current, target string) string {
				if current == target {
					return "nav-link active"
				}
				return "nav-link"
			},
			// isDev returns true when the app runs in development mode.
			"isDev": func() bool {
				return devMode
			},
			"amount": FormatAmount,
			// categoryStyle resolves a category id against its set.
			"categoryStyle": func(set models.CategorySet, id string) Style {
				icon, color := set.Style(id, "•", "gray")
				return Style{Icon: icon, Color: color}
			},
			"categoryName": func(set models.CategorySet, id string) string {
				if c, ok := set.Lookup(id); ok {
					return c.Name
				}
				return id
			},
		},
	}

	entries, err := siteFS.ReadDir("templates/site")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == baseTemplate || name == partialsTemplate {
			continue
		}

		tmplName := strings.TrimSuffix(name, ".html")
		tmpl, err := template.New(baseTemplate).Funcs(r.funcMap).ParseFS(
			siteFS,
			"templates/site/"+baseTemplate,
			"templates/site/"+partialsTemplate,
			"templates/site/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[tmplName] = tmpl
	}

	return r, nil
}

// prepare fills the request-scoped fields of data.
func (rn *Renderer) prepare(r *http.Request, data *PageData) {
	if data.Site == nil {
		data.Site = rn.site
	}
	obs := environ.FromContext(r.Context())
	data.Dark = obs.PrefersDarkMode()
	data.Mobile = environ.IsMobile(obs)
	data.CSRFToken = middleware.CSRFTokenFromCtx(r.Context())
}

// Page renders a full page with status 200. See PageStatus.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	rn.PageStatus(w, r, http.StatusOK, name, data)
}

// PageStatus renders a full page or an HTMX partial, depending on the
// request headers. For HTMX requests, only the "content" block is sent.
func (rn *Renderer) PageStatus(w http.ResponseWriter, r *http.Request, status int, name string, data *PageData) {
	execName := baseTemplate
	if IsHTMX(r) {
		execName = "content"
	}
	rn.execute(w, r, status, name, execName, data)
}

// Fragment renders a single named block of a page template, for HTMX
// swaps of one region such as a filtered list or a form.
func (rn *Renderer) Fragment(w http.ResponseWriter, r *http.Request, status int, name, block string, data *PageData) {
	rn.execute(w, r, status, name, block, data)
}

func (rn *Renderer) execute(w http.ResponseWriter, r *http.Request, status int, name, execName string, data *PageData) {
	tmpl, ok := rn.templates[name]
	if !ok {
		renderFailed(w, fmt.Sprintf("template %q not found", name))
		return
	}
	rn.prepare(r, data)

	// Render into a buffer so a template error never leaves half a page.
	var buf bytes.Buffer
	if err := executeTemplate(&buf, tmpl, execName, data); err != nil {
		slog.Error("template error", "template", name, "block", execName, "error", err)
		renderFailed(w, "template error")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// renderFailed answers 500 with a plain message. HX-Reswap keeps htmx
// from putting the message where the form fragment belongs.
func renderFailed(w http.ResponseWriter, msg string) {
	w.Header().Set("HX-Reswap", "none")
	http.Error(w, msg, http.StatusInternalServerError)
}

// Bytes renders a full page for the page cache. The CSRF token is left
// out since cached HTML is shared between visitors.
func (rn *Renderer) Bytes(r *http.Request, name string, data *PageData) ([]byte, error) {
	tmpl, ok := rn.templates[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}
	rn.prepare(r, data)
	data.CSRFToken = ""

	var buf bytes.Buffer
	if err := executeTemplate(&buf, tmpl, baseTemplate, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// executeTemplate wraps template execution with error handling.
func executeTemplate(w io.Writer, tmpl *template.Template, name string, data any) error {
	return tmpl.ExecuteTemplate(w, name, data)
}

// IsHTMX returns true if the request was made by HTMX (has HX-Request header).
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
