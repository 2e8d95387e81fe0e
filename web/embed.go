// Copyright (c) 2026 Hanvil Academy
// All rights reserved. See LICENSE for details.

// Package web provides the embedded static assets (CSS, JS, images) served
// at /static/. htmx itself is loaded from unpkg by the base template.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree.
//
//go:embed all:static
var StaticFS embed.FS
