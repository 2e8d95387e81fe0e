// Copyright (c) 2026 Hanvil Academy
// All rights reserved. See LICENSE for details.

// Package content loads the site's static copy from site.yaml. Everything
// the pages display (FAQs, events, fees, calendar) is read once at startup
// and treated as immutable afterwards.
package content

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"hanvil/internal/listing"
	"hanvil/internal/markdown"
	"hanvil/internal/models"
	"hanvil/internal/slug"
)

//go:embed site.yaml
var embeddedSite []byte

// Site is the complete static content of the website.
type Site struct {
	School       models.School        `yaml:"school"`
	Navigation   []models.NavGroup    `yaml:"navigation"`
	Notices      []models.Notice      `yaml:"notices"`
	Highlights   []models.Highlight   `yaml:"highlights"`
	Testimonials []models.Testimonial `yaml:"testimonials"`
	Milestones   []models.Milestone   `yaml:"milestones"`

	AchievementCategories models.CategorySet `yaml:"achievement_categories"`
	Achievements          []models.Achievement `yaml:"achievements"`

	Programs        []models.Program         `yaml:"programs"`
	Extracurricular []models.ActivityGroup   `yaml:"extracurriculars"`
	Initiatives     []models.Initiative      `yaml:"initiatives"`
	Curriculum      []models.CurriculumLevel `yaml:"curriculum"`
	CoreSubjects    []models.Subject         `yaml:"core_subjects"`
	Enrichment      []string                 `yaml:"enrichment"`

	Calendar    models.Calendar `yaml:"calendar"`
	Tuition     models.Tuition  `yaml:"tuition"`
	ClassLevels []string        `yaml:"class_levels"`

	FAQCategories models.CategorySet `yaml:"faq_categories"`
	FAQs          []models.FAQ       `yaml:"faqs"`

	EventCategories models.CategorySet `yaml:"event_categories"`
	Events          []models.Event     `yaml:"events"`
	PastEvents      []models.PastEvent `yaml:"past_events"`
}

// Load parses the embedded site.yaml.
func Load() (*Site, error) {
	return Parse(embeddedSite)
}

// LoadFile parses a site.yaml from disk. It lets a deployment override the
// copy without rebuilding the binary.
func LoadFile(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read site content %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes site content, renders Markdown fields, fills in event
// slugs, and validates category references.
func Parse(data []byte) (*Site, error) {
	var s Site
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse site content: %w", err)
	}

	for i := range s.FAQs {
		html, err := markdown.Inline(s.FAQs[i].Answer)
		if err != nil {
			return nil, fmt.Errorf("render answer for %q: %w", s.FAQs[i].Question, err)
		}
		s.FAQs[i].AnswerHTML = html
	}

	seen := make(map[string]bool, len(s.Events))
	for i := range s.Events {
		e := &s.Events[i]
		if e.Slug == "" {
			e.Slug = slug.Generate(e.Title)
		}
		if seen[e.Slug] {
			return nil, fmt.Errorf("duplicate event slug %q", e.Slug)
		}
		seen[e.Slug] = true

		if _, err := time.Parse("2006-01-02", e.Date); err != nil {
			return nil, fmt.Errorf("event %q: bad date %q: %w", e.Title, e.Date, err)
		}
		html, err := markdown.ToHTML(e.Description)
		if err != nil {
			return nil, fmt.Errorf("render description for %q: %w", e.Title, err)
		}
		e.DescriptionHTML = html
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	slog.Debug("site content loaded",
		"faqs", len(s.FAQs),
		"events", len(s.Events),
		"past_events", len(s.PastEvents),
	)
	return &s, nil
}

// validate checks that every categorised item names a declared category.
// Unknown categories would otherwise show up only as items that no filter
// button can reach.
func (s *Site) validate() error {
	for _, f := range s.FAQs {
		if !s.FAQCategories.Has(f.Category) {
			return fmt.Errorf("faq %q: unknown category %q", f.Question, f.Category)
		}
	}
	for _, e := range s.Events {
		if !s.EventCategories.Has(e.Category) {
			return fmt.Errorf("event %q: unknown category %q", e.Title, e.Category)
		}
	}
	for _, a := range s.Achievements {
		if !s.AchievementCategories.Has(a.Category) {
			return fmt.Errorf("achievement %q: unknown category %q", a.Event, a.Category)
		}
	}
	return nil
}

// EventBySlug returns the upcoming event with the given slug, or nil.
func (s *Site) EventBySlug(eventSlug string) *models.Event {
	for i := range s.Events {
		if s.Events[i].Slug == eventSlug {
			return &s.Events[i]
		}
	}
	return nil
}

// CurriculumLevel returns the curriculum for key, falling back to the
// first level when key is unknown.
func (s *Site) CurriculumLevel(key string) models.CurriculumLevel {
	for _, c := range s.Curriculum {
		if c.Key == key {
			return c
		}
	}
	if len(s.Curriculum) == 0 {
		return models.CurriculumLevel{}
	}
	return s.Curriculum[0]
}

// HasClassLevel reports whether level is one of the admission levels.
func (s *Site) HasClassLevel(level string) bool {
	for _, l := range s.ClassLevels {
		if l == level {
			return true
		}
	}
	return false
}

// AchievementsByCategory groups achievements in category order.
func (s *Site) AchievementsByCategory() []AchievementGroup {
	var groups []AchievementGroup
	l := listing.New(s.Achievements)
	for _, c := range s.AchievementCategories {
		l.SetFilter(c.ID)
		if items := l.Visible(); len(items) > 0 {
			groups = append(groups, AchievementGroup{Category: c, Items: items})
		}
	}
	return groups
}

// AchievementGroup is the achievements of one category.
type AchievementGroup struct {
	Category models.Category
	Items    []models.Achievement
}
