package viewer

import (
	"sync"

	"github.com/ziadkadry99/digestview/internal/calendar"
	"github.com/ziadkadry99/digestview/internal/digest"
)

// Panels is the content of every panel as last drawn.
type Panels struct {
	Panel       Mode
	HTML        string
	Meta        digest.Meta
	Label       string
	Grid        calendar.Grid
	Items       []calendar.ListItem
	Highlighted string
	// Events lists the surface calls in order, e.g. "loading" or
	// "highlight 2026-10-17".
	Events []string
}

// Recorder is a Surface that keeps the latest content of every panel. It
// backs the static exporter and is handy in tests.
type Recorder struct {
	mu sync.Mutex
	p  Panels
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) ShowLoading() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p.Panel = ModeLoading
	r.p.Events = append(r.p.Events, "loading")
}

func (r *Recorder) ShowDigest(html string, meta digest.Meta) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p.Panel = ModeShown
	r.p.HTML = html
	r.p.Meta = meta
	r.p.Events = append(r.p.Events, "digest")
}

func (r *Recorder) ShowNoDigest() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p.Panel = ModeEmpty
	r.p.Events = append(r.p.Events, "no-digest")
}

func (r *Recorder) RenderCalendar(label string, grid calendar.Grid) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p.Label = label
	r.p.Grid = grid
	r.p.Events = append(r.p.Events, "calendar "+label)
}

func (r *Recorder) RenderDateList(items []calendar.ListItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p.Items = append([]calendar.ListItem(nil), items...)
	r.p.Events = append(r.p.Events, "dates")
}

// Highlight moves the selection marks of the grid and the list to date.
func (r *Recorder) Highlight(date string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p.Highlighted = date
	for i := range r.p.Items {
		r.p.Items[i].Active = r.p.Items[i].Date == date
	}
	cells := append([]calendar.Cell(nil), r.p.Grid.Cells...)
	for i := range cells {
		cells[i].Selected = !cells[i].Blank && cells[i].Date == date
	}
	r.p.Grid.Cells = cells
	r.p.Events = append(r.p.Events, "highlight "+date)
}

// Panels returns a copy of the recorded panels.
func (r *Recorder) Panels() Panels {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.p
	p.Grid.Cells = append([]calendar.Cell(nil), r.p.Grid.Cells...)
	p.Items = append([]calendar.ListItem(nil), r.p.Items...)
	p.Events = append([]string(nil), r.p.Events...)
	return p
}
