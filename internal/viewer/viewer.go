// Package viewer holds the digest viewer controller: it resolves which dates
// have digests, keeps the view state and drives a rendering Surface through
// month navigation and date selection.
package viewer

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/ziadkadry99/digestview/internal/calendar"
	"github.com/ziadkadry99/digestview/internal/digest"
	"github.com/ziadkadry99/digestview/internal/render"
)

// DefaultRecentLimit is the number of entries in the recent-dates list.
const DefaultRecentLimit = 10

// Mode is the panel the viewer currently shows.
type Mode string

const (
	ModeLoading Mode = "loading"
	ModeShown   Mode = "shown"
	ModeEmpty   Mode = "empty"
)

// State is the view state of one viewer.
type State struct {
	Month    calendar.Month
	Selected string
	Mode     Mode
}

// Surface receives everything the viewer wants displayed. Exactly one of
// the loading, digest and no-digest panels is visible after each call to
// ShowLoading, ShowDigest or ShowNoDigest.
type Surface interface {
	ShowLoading()
	ShowDigest(html string, meta digest.Meta)
	ShowNoDigest()
	RenderCalendar(label string, grid calendar.Grid)
	RenderDateList(items []calendar.ListItem)
	Highlight(date string)
}

// Options tunes a Viewer. Zero values select the defaults.
type Options struct {
	ProbeDays   int
	RecentLimit int
	ForceProbe  bool
	OnProbe     digest.ProbeFunc
	// Now is the clock used for "today". Defaults to time.Now.
	Now func() time.Time
}

// Viewer is the controller for one viewing session. Its methods are safe
// for concurrent use; loads run outside the lock and only the most recently
// requested load may update the surface.
type Viewer struct {
	source   digest.Source
	pipeline *render.Pipeline
	surface  Surface
	opts     Options

	mu        sync.Mutex
	state     State
	available *digest.Available
	seq       uint64
}

// New creates a Viewer. Nothing is fetched until Start or Open.
func New(src digest.Source, pipeline *render.Pipeline, surface Surface, opts Options) *Viewer {
	if opts.RecentLimit <= 0 {
		opts.RecentLimit = DefaultRecentLimit
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	v := &Viewer{
		source:   src,
		pipeline: pipeline,
		surface:  surface,
		opts:     opts,
	}
	v.state = State{Month: calendar.MonthOf(v.Today()), Mode: ModeLoading}
	return v
}

// Today returns the current local calendar day.
func (v *Viewer) Today() digest.Date {
	return digest.DateOf(v.opts.Now())
}

// Start resolves the available dates and opens the initial digest.
func (v *Viewer) Start(ctx context.Context) *digest.Available {
	r := &digest.Resolver{
		Source:     v.source,
		ProbeDays:  v.opts.ProbeDays,
		OnProbe:    v.opts.OnProbe,
		ForceProbe: v.opts.ForceProbe,
	}
	available := r.Resolve(ctx, v.Today())
	v.Open(ctx, available, "")
	return available
}

// Open shows an already resolved set of dates. When initial is empty the
// viewer picks today's digest, falling back to the newest one; with no
// digests at all it shows the no-digest panel without fetching.
func (v *Viewer) Open(ctx context.Context, available *digest.Available, initial string) {
	today := v.Today()

	v.mu.Lock()
	v.available = available
	v.state.Month = calendar.MonthOf(today)
	v.surface.RenderDateList(calendar.RecentList(available, v.state.Selected, v.opts.RecentLimit))
	v.renderCalendarLocked()

	if initial == "" {
		initial, _ = available.Newest()
		if available.Contains(today.String()) {
			initial = today.String()
		}
	}
	if initial == "" || !available.Contains(initial) {
		v.seq++
		v.state.Mode = ModeEmpty
		v.surface.ShowNoDigest()
		v.mu.Unlock()
		return
	}
	v.mu.Unlock()

	v.load(ctx, initial)
}

// NavigateMonth moves the displayed month by delta and redraws the
// calendar. The selection is unchanged.
func (v *Viewer) NavigateMonth(delta int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Month = v.state.Month.Add(delta)
	v.renderCalendarLocked()
}

// SelectDate loads the digest for date. Dates without a digest are
// ignored and false is returned.
func (v *Viewer) SelectDate(ctx context.Context, date string) bool {
	v.mu.Lock()
	ok := v.available.Contains(date)
	v.mu.Unlock()
	if !ok {
		return false
	}
	v.load(ctx, date)
	return true
}

// Snapshot returns a copy of the current state.
func (v *Viewer) Snapshot() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Available returns the resolved dates, or nil before Start.
func (v *Viewer) Available() *digest.Available {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.available
}

func (v *Viewer) renderCalendarLocked() {
	grid := calendar.Build(v.state.Month, v.available, v.Today(), v.state.Selected)
	v.surface.RenderCalendar(v.state.Month.Label(), grid)
}

func (v *Viewer) load(ctx context.Context, date string) {
	v.mu.Lock()
	v.seq++
	id := v.seq
	v.state.Selected = date
	v.state.Mode = ModeLoading
	v.surface.ShowLoading()
	v.surface.Highlight(date)
	v.mu.Unlock()

	html, meta, err := v.fetch(ctx, date)

	v.mu.Lock()
	defer v.mu.Unlock()
	if id != v.seq {
		log.Printf("viewer: discarding stale response for %s", date)
		return
	}
	if err != nil {
		log.Printf("viewer: loading %s: %v", date, err)
		v.state.Mode = ModeEmpty
		v.surface.ShowNoDigest()
		return
	}
	v.state.Mode = ModeShown
	v.surface.ShowDigest(html, meta)
}

func (v *Viewer) fetch(ctx context.Context, date string) (string, digest.Meta, error) {
	d, err := digest.ParseDate(date)
	if err != nil {
		return "", digest.Meta{}, err
	}
	doc, err := digest.Load(ctx, v.source, d)
	if err != nil {
		return "", digest.Meta{}, err
	}
	html, err := v.pipeline.Render(doc.Body)
	if err != nil {
		return "", digest.Meta{}, err
	}
	return html, doc.Meta, nil
}
