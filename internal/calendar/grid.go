package calendar

import (
	"strings"

	"github.com/ziadkadry99/digestview/internal/digest"
)

// Headers are the fixed weekday column headings, Sunday first.
var Headers = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Cell is one square of the month grid. Blank cells pad the first week.
type Cell struct {
	Blank     bool
	Day       int
	Date      string
	HasDigest bool
	Today     bool
	Selected  bool
}

// Classes returns the CSS classes of the cell.
func (c Cell) Classes() string {
	if c.Blank {
		return "day empty"
	}
	classes := []string{"day"}
	if c.HasDigest {
		classes = append(classes, "has-digest")
	}
	if c.Today {
		classes = append(classes, "today")
	}
	if c.Selected {
		classes = append(classes, "selected")
	}
	return strings.Join(classes, " ")
}

// Grid is a rendered month: its label, the weekday headers and its cells.
type Grid struct {
	Month   Month
	Label   string
	Headers [7]string
	Cells   []Cell
}

// Build lays out the grid for m. Cells are tagged against the available set,
// today's date and the current selection (empty for none).
func Build(m Month, available *digest.Available, today digest.Date, selected string) Grid {
	blanks := m.FirstWeekday()
	days := m.Days()
	todayKey := today.String()

	g := Grid{
		Month:   m,
		Label:   m.Label(),
		Headers: Headers,
		Cells:   make([]Cell, 0, blanks+days),
	}
	for i := 0; i < blanks; i++ {
		g.Cells = append(g.Cells, Cell{Blank: true})
	}
	for day := 1; day <= days; day++ {
		key := m.Date(day).String()
		g.Cells = append(g.Cells, Cell{
			Day:       day,
			Date:      key,
			HasDigest: available.Contains(key),
			Today:     key == todayKey,
			Selected:  selected != "" && key == selected,
		})
	}
	return g
}

// DigestCount returns how many cells of the grid carry a digest.
func (g Grid) DigestCount() int {
	n := 0
	for _, c := range g.Cells {
		if c.HasDigest {
			n++
		}
	}
	return n
}

// ListItem is one entry of the recent-dates list.
type ListItem struct {
	Date   string
	Label  string
	Active bool
}

// RecentList returns the first limit available dates, newest first as the
// index orders them, marking the selected one active.
func RecentList(available *digest.Available, selected string, limit int) []ListItem {
	recent := available.Recent(limit)
	items := make([]ListItem, 0, len(recent))
	for _, d := range recent {
		items = append(items, ListItem{
			Date:   d,
			Label:  digest.DisplayString(d),
			Active: selected != "" && d == selected,
		})
	}
	return items
}
