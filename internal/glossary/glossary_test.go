package glossary

import (
	"testing"
	"unicode/utf8"
)

func TestDefaultSortedLongestFirst(t *testing.T) {
	g := Default()
	if g.Len() != 26 {
		t.Errorf("Len() = %d, want 26", g.Len())
	}
	entries := g.Entries()
	for i := 1; i < len(entries); i++ {
		prev := utf8.RuneCountInString(entries[i-1].Term)
		cur := utf8.RuneCountInString(entries[i].Term)
		if prev < cur {
			t.Fatalf("%q (%d) sorted before longer %q (%d)", entries[i-1].Term, prev, entries[i].Term, cur)
		}
	}
}

func TestLookupIgnoresCase(t *testing.T) {
	g := Default()
	e, ok := g.Lookup("nash EQUILIBRIUM")
	if !ok {
		t.Fatal("Lookup failed")
	}
	if e.Link != "https://en.wikipedia.org/wiki/Nash_equilibrium" {
		t.Errorf("Link = %q", e.Link)
	}
	if _, ok := g.Lookup("Phillips Curve"); ok {
		t.Error("unexpected entry for unknown term")
	}
}

func TestFindAllWholeWords(t *testing.T) {
	g := Default()

	tests := []struct {
		text  string
		terms []string
	}{
		{"A Nash Equilibrium emerged.", []string{"Nash Equilibrium"}},
		{"a nash equilibrium, then MPC fell", []string{"nash equilibrium", "MPC"}},
		{"The MPCs are high", nil},
		{"HHIndex", nil},
		{"Regional Fiscal Multipliers beat Fiscal Multipliers", []string{"Regional Fiscal Multipliers", "Fiscal Multipliers"}},
		{"Black-Scholes and Cobb-Douglas", []string{"Black-Scholes", "Cobb-Douglas"}},
		{"Phillips Curve only", nil},
	}
	for _, tt := range tests {
		got := g.FindAll(tt.text)
		if len(got) != len(tt.terms) {
			t.Errorf("FindAll(%q) = %d matches, want %d", tt.text, len(got), len(tt.terms))
			continue
		}
		for i, m := range got {
			if m.Text != tt.terms[i] {
				t.Errorf("FindAll(%q)[%d] = %q, want %q", tt.text, i, m.Text, tt.terms[i])
			}
			if tt.text[m.Start:m.End] != m.Text {
				t.Errorf("offsets do not slice to match text")
			}
		}
	}
}

func TestLongestMatchWins(t *testing.T) {
	g := New([]Entry{
		{Term: "Fiscal Multipliers", Link: "short"},
		{Term: "Regional Fiscal Multipliers", Link: "long"},
	})
	got := g.FindAll("Regional Fiscal Multipliers")
	if len(got) != 1 || got[0].Entry.Link != "long" {
		t.Errorf("FindAll = %+v, want single long match", got)
	}
}

func TestEmptyGlossary(t *testing.T) {
	g := New(nil)
	if m := g.FindAll("Nash Equilibrium"); m != nil {
		t.Errorf("FindAll on empty glossary = %v", m)
	}
}
