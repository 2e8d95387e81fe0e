// Copyright (c) 2026 Hanvil Academy
// All rights reserved. See LICENSE for details.

package listing

import (
	"math/rand"
	"reflect"
	"testing"
)

type question struct {
	Text     string
	Category string
}

func (q question) ItemCategory() string { return q.Category }

// sampleFAQs mirrors the eleven questions published on the FAQ page.
func sampleFAQs() []question {
	return []question{
		{"What classes do you offer?", "admissions"},
		{"What is the age requirement for KG 1?", "admissions"},
		{"What are the school hours?", "hours"},
		{"Is there after-school care?", "hours"},
		{"How much are the school fees?", "tuition"},
		{"Can I pay fees in installments?", "tuition"},
		{"Do you provide lunch?", "meals"},
		{"What curriculum do you use?", "curriculum"},
		{"What items should my child bring on the first day?", "supplies"},
		{"What if my child falls sick at school?", "health"},
		{"How can I reach the school?", "contact"},
	}
}

func sampleEvents() []question {
	return []question{
		{"Annual Sports Day", "sports"},
		{"Science Fair Exhibition", "academic"},
		{"Cultural Festival", "cultural"},
		{"Parent-Teacher Conference", "academic"},
		{"Graduation Ceremony", "graduation"},
		{"Charity Fun Run", "sports"},
	}
}

func texts(items []question) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Text
	}
	return out
}

func TestNewInitialState(t *testing.T) {
	l := New(sampleFAQs())

	if l.Filter() != All {
		t.Errorf("Filter: got %q, want %q", l.Filter(), All)
	}
	if _, ok := l.OpenIndex(); ok {
		t.Error("expected no open item on a new list")
	}
	for i := 0; i < l.Len(); i++ {
		if l.IsOpen(i) {
			t.Errorf("IsOpen(%d): got true, want false", i)
		}
	}
	if got := l.State(); got != InitialState() {
		t.Errorf("State: got %+v, want %+v", got, InitialState())
	}
}

func TestVisible(t *testing.T) {
	tests := []struct {
		name   string
		items  []question
		filter string
		want   []string
	}{
		{
			name:   "all returns every item",
			items:  sampleEvents(),
			filter: All,
			want:   texts(sampleEvents()),
		},
		{
			name:   "hours filter on the FAQ list",
			items:  sampleFAQs(),
			filter: "hours",
			want:   []string{"What are the school hours?", "Is there after-school care?"},
		},
		{
			name:   "sports filter on the events list",
			items:  sampleEvents(),
			filter: "sports",
			want:   []string{"Annual Sports Day", "Charity Fun Run"},
		},
		{
			name:   "academic keeps original order",
			items:  sampleEvents(),
			filter: "academic",
			want:   []string{"Science Fair Exhibition", "Parent-Teacher Conference"},
		},
		{
			name:   "unknown category is empty",
			items:  sampleFAQs(),
			filter: "nonexistent-category",
			want:   []string{},
		},
		{
			name:   "empty list",
			items:  nil,
			filter: All,
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.items)
			l.SetFilter(tt.filter)

			got := texts(l.Visible())
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Visible: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVisibleIsSubsequence(t *testing.T) {
	items := sampleFAQs()
	categories := []string{All, "admissions", "hours", "tuition", "meals", "curriculum", "supplies", "health", "contact", "bogus"}

	for _, f := range categories {
		l := New(items)
		l.SetFilter(f)

		var want []question
		for _, it := range items {
			if f == All || it.Category == f {
				want = append(want, it)
			}
		}
		got := l.Visible()
		if len(got) != len(want) {
			t.Fatalf("filter %q: got %d items, want %d", f, len(got), len(want))
		}
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("filter %q [%d]: got %q, want %q", f, i, got[i].Text, want[i].Text)
			}
		}
	}
}

func TestVisibleIdempotent(t *testing.T) {
	l := New(sampleEvents())
	l.SetFilter("academic")

	first := l.Visible()
	second := l.Visible()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Visible not idempotent: %q then %q", texts(first), texts(second))
	}
}

func TestVisibleDoesNotMutateSource(t *testing.T) {
	items := sampleEvents()
	l := New(items)
	l.SetFilter("sports")

	got := l.Visible()
	got[0] = question{"changed", "changed"}

	if items[0].Text != "Annual Sports Day" {
		t.Errorf("source list was mutated: %q", items[0].Text)
	}
	if l.Visible()[0].Text != "Annual Sports Day" {
		t.Error("list view was mutated through a returned slice")
	}
}

func TestToggleOpen(t *testing.T) {
	t.Run("open then switch", func(t *testing.T) {
		l := New(sampleFAQs())
		l.ToggleOpen(3)
		l.ToggleOpen(5)

		if l.IsOpen(3) {
			t.Error("IsOpen(3): got true, want false")
		}
		if !l.IsOpen(5) {
			t.Error("IsOpen(5): got false, want true")
		}
	})

	t.Run("toggle same index collapses", func(t *testing.T) {
		l := New(sampleFAQs())
		l.ToggleOpen(2)
		l.ToggleOpen(2)

		if _, ok := l.OpenIndex(); ok {
			t.Error("expected all closed after double toggle")
		}
	})

	t.Run("filter change keeps open index", func(t *testing.T) {
		l := New(sampleFAQs())
		l.ToggleOpen(0) // admissions item
		l.SetFilter("hours")

		if !l.IsOpen(0) {
			t.Error("open index should survive a filter change")
		}
		for _, e := range l.Entries() {
			if e.Open {
				t.Errorf("entry %d should not be open while filtered out item is", e.Index)
			}
		}

		l.SetFilter(All)
		entries := l.Entries()
		if !entries[0].Open {
			t.Error("item should reappear open when the filter reverts")
		}
	})
}

// TestToggleInvolution checks that toggling the same index twice in a row
// restores AllClosed and OpenAt(i). From OpenAt(j), j != i, the first
// toggle moves to OpenAt(i) and the second collapses it.
func TestToggleInvolution(t *testing.T) {
	n := len(sampleFAQs())
	for open := NoneOpen; open < n; open++ {
		for i := 0; i < n; i++ {
			l := Restore(sampleFAQs(), State{Filter: All, Open: open})
			before := l.State()
			l.ToggleOpen(i)
			l.ToggleOpen(i)
			if open != NoneOpen && open != i {
				// OpenAt(open) -> OpenAt(i) -> AllClosed
				if l.State().Open != NoneOpen {
					t.Errorf("from %d toggling %d twice: got %d, want none", open, i, l.State().Open)
				}
				continue
			}
			if l.State() != before {
				t.Errorf("from %d toggling %d twice: got %+v, want %+v", open, i, l.State(), before)
			}
		}
	}
}

func TestAccordionExclusivity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	l := New(sampleFAQs())

	for step := 0; step < 500; step++ {
		l.ToggleOpen(rng.Intn(l.Len()))

		open := 0
		for i := 0; i < l.Len(); i++ {
			if l.IsOpen(i) {
				open++
			}
		}
		if open > 1 {
			t.Fatalf("step %d: %d items open, want at most 1", step, open)
		}
	}
}

func TestEntries(t *testing.T) {
	l := New(sampleFAQs())
	l.SetFilter("tuition")
	l.ToggleOpen(5)

	entries := l.Entries()
	if len(entries) != 2 {
		t.Fatalf("entries: got %d, want 2", len(entries))
	}
	if entries[0].Index != 4 || entries[1].Index != 5 {
		t.Errorf("indexes: got %d,%d want 4,5", entries[0].Index, entries[1].Index)
	}
	if entries[0].Open {
		t.Error("entry 4 should be closed")
	}
	if !entries[1].Open {
		t.Error("entry 5 should be open")
	}
}

func TestCounts(t *testing.T) {
	counts := New(sampleEvents()).Counts()

	want := map[string]int{
		All:          6,
		"sports":     2,
		"academic":   2,
		"cultural":   1,
		"graduation": 1,
	}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("Counts: got %v, want %v", counts, want)
	}
}
