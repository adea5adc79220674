// Package glossary holds the static table of annotated terms and the
// matcher that finds them in running text.
package glossary

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Entry is one annotated term.
type Entry struct {
	Term        string
	Description string
	Link        string
}

// Match is one occurrence of a term in a text.
type Match struct {
	Start, End int
	Text       string
	Entry      Entry
}

// Glossary is an immutable term table. Terms are kept longest first so a
// longer term always wins over a shorter one it contains.
type Glossary struct {
	entries []Entry
	byKey   map[string]Entry
	pattern *regexp.Regexp
}

// New builds a Glossary. Entries whose terms differ only in case collapse
// to the first one given.
func New(entries []Entry) *Glossary {
	g := &Glossary{byKey: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		key := strings.ToLower(e.Term)
		if e.Term == "" {
			continue
		}
		if _, dup := g.byKey[key]; dup {
			continue
		}
		g.byKey[key] = e
		g.entries = append(g.entries, e)
	}

	sort.SliceStable(g.entries, func(i, j int) bool {
		return utf8.RuneCountInString(g.entries[i].Term) > utf8.RuneCountInString(g.entries[j].Term)
	})

	if len(g.entries) > 0 {
		alts := make([]string, len(g.entries))
		for i, e := range g.entries {
			alts[i] = regexp.QuoteMeta(e.Term)
		}
		// RE2 alternation is leftmost-first, so longest-first order yields the
		// longest term at any position.
		g.pattern = regexp.MustCompile(`(?i)\b(?:` + strings.Join(alts, "|") + `)\b`)
	}
	return g
}

// Default returns the built-in glossary.
func Default() *Glossary {
	return New(builtin)
}

// Entries returns the terms, longest first.
func (g *Glossary) Entries() []Entry {
	return append([]Entry(nil), g.entries...)
}

// Len returns the number of terms.
func (g *Glossary) Len() int {
	return len(g.entries)
}

// Lookup finds the entry for term, ignoring case.
func (g *Glossary) Lookup(term string) (Entry, bool) {
	e, ok := g.byKey[strings.ToLower(term)]
	return e, ok
}

// FindAll returns the non-overlapping whole-word matches in text, in order.
func (g *Glossary) FindAll(text string) []Match {
	if g.pattern == nil {
		return nil
	}
	locs := g.pattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	matches := make([]Match, 0, len(locs))
	for _, loc := range locs {
		found := text[loc[0]:loc[1]]
		e, ok := g.Lookup(found)
		if !ok {
			continue
		}
		matches = append(matches, Match{Start: loc[0], End: loc[1], Text: found, Entry: e})
	}
	return matches
}
