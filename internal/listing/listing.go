// Copyright (c) 2026 Hanvil Academy
// All rights reserved. See LICENSE for details.

// Package listing implements the filterable, expandable content list used
// by the FAQ and Events pages. A List owns a fixed slice of items, the
// active category filter, and (for accordion lists) the index of the one
// item that is currently expanded.
package listing

// All is the filter value that matches every item.
const All = "all"

// NoneOpen is the open index when every accordion item is collapsed.
const NoneOpen = -1

// Item is any piece of content that belongs to a category.
type Item interface {
	ItemCategory() string
}

// State is the mutable part of a List. It is what gets stored between
// requests for a page instance.
type State struct {
	Filter string `json:"filter"`
	Open   int    `json:"open"`
}

// InitialState returns the state of a freshly mounted list: no filter,
// nothing open.
func InitialState() State {
	return State{Filter: All, Open: NoneOpen}
}

// Entry is a visible item together with its position in the full list.
type Entry[T Item] struct {
	Index int
	Item  T
	Open  bool
}

// List is a fixed content list with filter and accordion state.
// The item slice is never modified.
type List[T Item] struct {
	items []T
	state State
}

// New creates a list over items in its initial state.
func New[T Item](items []T) *List[T] {
	return Restore(items, InitialState())
}

// Restore creates a list over items with previously saved state.
func Restore[T Item](items []T, st State) *List[T] {
	return &List[T]{items: items, state: st}
}

// SetFilter replaces the category filter. Unknown categories are
// accepted and simply match nothing.
func (l *List[T]) SetFilter(category string) {
	l.state.Filter = category
}

// Filter returns the active category filter.
func (l *List[T]) Filter() string {
	return l.state.Filter
}

// Visible returns the items matching the current filter in their
// original order. The returned slice is freshly allocated.
func (l *List[T]) Visible() []T {
	out := make([]T, 0, len(l.items))
	for _, it := range l.items {
		if l.matches(it) {
			out = append(out, it)
		}
	}
	return out
}

// Entries is Visible with each item's full-list index and open flag.
func (l *List[T]) Entries() []Entry[T] {
	out := make([]Entry[T], 0, len(l.items))
	for i, it := range l.items {
		if l.matches(it) {
			out = append(out, Entry[T]{Index: i, Item: it, Open: l.IsOpen(i)})
		}
	}
	return out
}

func (l *List[T]) matches(it T) bool {
	return l.state.Filter == All || it.ItemCategory() == l.state.Filter
}

// ToggleOpen collapses index if it is the open item, otherwise opens it
// and implicitly collapses whatever was open before. The open index is
// left alone by SetFilter, so an item can stay open while filtered out.
func (l *List[T]) ToggleOpen(index int) {
	if l.state.Open == index {
		l.state.Open = NoneOpen
		return
	}
	l.state.Open = index
}

// IsOpen reports whether index is the expanded item.
func (l *List[T]) IsOpen(index int) bool {
	return l.state.Open != NoneOpen && l.state.Open == index
}

// OpenIndex returns the expanded index, or false when all are closed.
func (l *List[T]) OpenIndex() (int, bool) {
	if l.state.Open == NoneOpen {
		return 0, false
	}
	return l.state.Open, true
}

// State returns a copy of the list's current state.
func (l *List[T]) State() State {
	return l.state
}

// Len returns the size of the full, unfiltered list.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Counts returns how many items carry each category. The All key holds
// the total.
func (l *List[T]) Counts() map[string]int {
	counts := map[string]int{All: len(l.items)}
	for _, it := range l.items {
		counts[it.ItemCategory()]++
	}
	return counts
}
