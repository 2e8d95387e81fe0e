// Copyright (c) 2026 Hanvil Academy
// All rights reserved. See LICENSE for details.

package models

import (
	"html/template"
	"time"
)

// dateLayout is the format event dates are written in within site.yaml.
const dateLayout = "2006-01-02"

// Event is an upcoming school event shown on the events page.
type Event struct {
	ID               int           `yaml:"id"`
	Slug             string        `yaml:"slug"`
	Title            string        `yaml:"title"`
	Date             string        `yaml:"date"`
	Time             string        `yaml:"time"`
	Description      string        `yaml:"description"`
	Category         string        `yaml:"category"`
	Image            string        `yaml:"image"`
	RegistrationLink string        `yaml:"registration_link"`
	DescriptionHTML  template.HTML `yaml:"-"`
}

// ItemCategory implements listing.Item.
func (e Event) ItemCategory() string { return e.Category }

// Day parses the event date. The zero time is returned for malformed dates;
// the content loader rejects those at startup.
func (e Event) Day() time.Time {
	t, _ := time.Parse(dateLayout, e.Date)
	return t
}

// DateLabel renders the date for display, e.g. "March 24, 2025".
func (e Event) DateLabel() string {
	return dateLabel(e.Date)
}

// Month returns the abbreviated month used on the date badge, e.g. "Mar".
func (e Event) Month() string {
	d := e.Day()
	if d.IsZero() {
		return ""
	}
	return d.Format("Jan")
}

// DayOfMonth returns the day number used on the date badge.
func (e Event) DayOfMonth() int {
	return e.Day().Day()
}

// PastEvent is an event that already took place, linked to its gallery.
type PastEvent struct {
	Title       string `yaml:"title"`
	Date        string `yaml:"date"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
	GalleryLink string `yaml:"gallery_link"`
}

// DateLabel renders the date for display.
func (p PastEvent) DateLabel() string {
	return dateLabel(p.Date)
}

func dateLabel(s string) string {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return s
	}
	return t.Format("January 2, 2006")
}
