// Copyright (c) 2026 Hanvil Academy
// All rights reserved. See LICENSE for details.

package models

// School holds the identity and contact details shown in the header,
// footer, and contact page.
type School struct {
	Name     string   `yaml:"name"`
	Tagline  string   `yaml:"tagline"`
	Address  []string `yaml:"address"`
	Phone    string   `yaml:"phone"`
	WhatsApp string   `yaml:"whatsapp"`
	Email    string   `yaml:"email"`
	Hours    []string `yaml:"hours"`
	Social   []Link   `yaml:"social"`
}

// Link is a labelled URL.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
	Icon  string `yaml:"icon"`
}

// NavGroup is a dropdown in the site navigation.
type NavGroup struct {
	Name  string `yaml:"name"`
	Href  string `yaml:"href"`
	Items []Link `yaml:"items"`
}

// Notice is an announcement on the homepage notice board.
type Notice struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
	Date  string `yaml:"date"`
}

// Highlight is a short "why choose us" card.
type Highlight struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

// Testimonial is a quote from a parent or alumnus.
type Testimonial struct {
	Quote  string `yaml:"quote"`
	Author string `yaml:"author"`
	Role   string `yaml:"role"`
	Image  string `yaml:"image"`
}

// Milestone is one step on the "our story" timeline.
type Milestone struct {
	Year        string `yaml:"year"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

// Achievement is a recognised accomplishment by students or staff.
type Achievement struct {
	Year     string `yaml:"year"`
	Event    string `yaml:"event"`
	Category string `yaml:"category"`
}

// ItemCategory implements listing.Item.
func (a Achievement) ItemCategory() string { return a.Category }

// Program describes an academic stage offered by the school.
type Program struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Features    []string `yaml:"features"`
	Image       string   `yaml:"image"`
}

// ActivityGroup is a family of extracurricular activities.
type ActivityGroup struct {
	Title      string   `yaml:"title"`
	Icon       string   `yaml:"icon"`
	Activities []string `yaml:"activities"`
	Image      string   `yaml:"image"`
}

// Initiative is a special programme such as scholarships.
type Initiative struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Details     string `yaml:"details"`
	Image       string `yaml:"image"`
}

// CurriculumLevel is the curriculum for one stage (kg, primary, jhs).
type CurriculumLevel struct {
	Key      string   `yaml:"key"`
	Title    string   `yaml:"title"`
	Grades   string   `yaml:"grades"`
	Image    string   `yaml:"image"`
	Subjects []string `yaml:"subjects"`
	Focus    []string `yaml:"focus"`
	Methods  []string `yaml:"methods"`
}

// Subject is a core subject card on the curriculum page.
type Subject struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

// Term is one term of the academic year.
type Term struct {
	Name         string `yaml:"name"`
	Reopening    string `yaml:"reopening"`
	MidTermBreak string `yaml:"mid_term_break"`
	Vacation     string `yaml:"vacation"`
}

// KeyDate is a notable date on the academic calendar.
type KeyDate struct {
	Date  string `yaml:"date"`
	Event string `yaml:"event"`
}

// Calendar is the academic year.
type Calendar struct {
	Year     string    `yaml:"year"`
	Terms    []Term    `yaml:"terms"`
	KeyDates []KeyDate `yaml:"key_dates"`
}

// TuitionLevel lists the fees for a class level, in cedis.
type TuitionLevel struct {
	Name   string `yaml:"name"`
	Termly int    `yaml:"termly"`
	Annual int    `yaml:"annual"`
}

// PaymentMethod is a way to pay fees.
type PaymentMethod struct {
	Method  string   `yaml:"method"`
	Details []string `yaml:"details"`
}

// PaymentDeadline is the fee deadline for a term.
type PaymentDeadline struct {
	Term     string `yaml:"term"`
	Deadline string `yaml:"deadline"`
}

// Charge is a one-off or recurring fee outside tuition.
type Charge struct {
	Item   string `yaml:"item"`
	Amount int    `yaml:"amount"`
}

// Tuition is the fee schedule.
type Tuition struct {
	Currency       string            `yaml:"currency"`
	Levels         []TuitionLevel    `yaml:"levels"`
	PaymentMethods []PaymentMethod   `yaml:"payment_methods"`
	Schedule       []PaymentDeadline `yaml:"schedule"`
	OtherCharges   []Charge          `yaml:"other_charges"`
	Discounts      []string          `yaml:"discounts"`
}

// ChargesTotal sums all other charges.
func (t Tuition) ChargesTotal() int {
	total := 0
	for _, c := range t.OtherCharges {
		total += c.Amount
	}
	return total
}
