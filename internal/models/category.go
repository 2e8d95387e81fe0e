// Copyright (c) 2026 Hanvil Academy
// All rights reserved. See LICENSE for details.

package models

// Category is one member of a list's fixed category enumeration, together
// with the icon and colour the site uses to present it.
type Category struct {
	ID    string `yaml:"id" json:"id"`
	Name  string `yaml:"name" json:"name"`
	Icon  string `yaml:"icon" json:"icon"`
	Color string `yaml:"color" json:"color"`
}

// CategorySet is an ordered category enumeration. Order is the order the
// filter buttons are shown in.
type CategorySet []Category

// Lookup returns the category with the given id.
func (s CategorySet) Lookup(id string) (Category, bool) {
	for _, c := range s {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// Has reports whether id is a member of the set.
func (s CategorySet) Has(id string) bool {
	_, ok := s.Lookup(id)
	return ok
}

// Style returns the icon and colour for id, falling back to the given
// defaults for ids outside the set.
func (s CategorySet) Style(id, defaultIcon, defaultColor string) (icon, color string) {
	c, ok := s.Lookup(id)
	if !ok {
		return defaultIcon, defaultColor
	}
	icon, color = c.Icon, c.Color
	if icon == "" {
		icon = defaultIcon
	}
	if color == "" {
		color = defaultColor
	}
	return icon, color
}
