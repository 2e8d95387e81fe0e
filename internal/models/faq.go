// Copyright (c) 2026 Hanvil Academy
// All rights reserved. See LICENSE for details.

package models

import "html/template"

// FAQ is a frequently asked question. Answer holds the Markdown source
// from site.yaml; AnswerHTML is filled in by the content loader.
type FAQ struct {
	Question   string        `yaml:"question"`
	Answer     string        `yaml:"answer"`
	Category   string        `yaml:"category"`
	AnswerHTML template.HTML `yaml:"-"`
}

// ItemCategory implements listing.Item.
func (f FAQ) ItemCategory() string { return f.Category }
