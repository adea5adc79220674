package viewer

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ziadkadry99/digestview/internal/calendar"
	"github.com/ziadkadry99/digestview/internal/digest"
	"github.com/ziadkadry99/digestview/internal/glossary"
	"github.com/ziadkadry99/digestview/internal/render"
)

type fakeSource struct {
	mu      sync.Mutex
	index   []string
	bodies  map[string]string
	gates   map[string]chan struct{}
	entered chan string
	fetched []string
}

func (f *fakeSource) Index(ctx context.Context) ([]string, error) {
	if f.index == nil {
		return nil, errors.New("index unavailable")
	}
	return f.index, nil
}

func (f *fakeSource) Exists(ctx context.Context, date digest.Date) (bool, error) {
	_, ok := f.bodies[date.String()]
	return ok, nil
}

func (f *fakeSource) Fetch(ctx context.Context, date digest.Date) ([]byte, error) {
	key := date.String()
	f.mu.Lock()
	f.fetched = append(f.fetched, key)
	gate := f.gates[key]
	entered := f.entered
	f.mu.Unlock()

	if entered != nil {
		entered <- key
	}
	if gate != nil {
		<-gate
	}
	body, ok := f.bodies[key]
	if !ok {
		return nil, digest.ErrNotFound
	}
	return []byte(body), nil
}

func (f *fakeSource) fetches() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.fetched...)
}

func clock() time.Time {
	return time.Date(2026, time.October, 17, 9, 30, 0, 0, time.Local)
}

func newTestViewer(src *fakeSource) (*Viewer, *Recorder) {
	rec := NewRecorder()
	v := New(src, render.NewPipeline(glossary.Default()), rec, Options{Now: clock})
	return v, rec
}

func TestStartLoadsToday(t *testing.T) {
	src := &fakeSource{
		index: []string{"2026-10-17", "2026-10-16"},
		bodies: map[string]string{
			"2026-10-17": "---\ntitle: Saturday\n---\n# Markets\n\nThe Taylor Rule again.",
			"2026-10-16": "# Friday",
		},
	}
	v, rec := newTestViewer(src)
	available := v.Start(context.Background())

	if available.Origin() != digest.OriginIndex {
		t.Errorf("origin = %s, want index", available.Origin())
	}
	st := v.Snapshot()
	if st.Mode != ModeShown || st.Selected != "2026-10-17" {
		t.Fatalf("state = %+v", st)
	}
	if got := src.fetches(); len(got) != 1 || got[0] != "2026-10-17" {
		t.Errorf("fetches = %v", got)
	}

	p := rec.Panels()
	if p.Panel != ModeShown {
		t.Errorf("panel = %s", p.Panel)
	}
	if p.Meta.Title != "Saturday" {
		t.Errorf("meta title = %q", p.Meta.Title)
	}
	if strings.Contains(p.HTML, "title:") || !strings.Contains(p.HTML, `<h1 id="markets">Markets</h1>`) {
		t.Errorf("html = %q", p.HTML)
	}
	if !strings.Contains(p.HTML, `class="glossary-term"`) {
		t.Errorf("glossary not applied: %q", p.HTML)
	}
	if p.Label != "October 2026" {
		t.Errorf("label = %q", p.Label)
	}
	if !p.Items[0].Active || p.Items[1].Active {
		t.Errorf("items = %+v", p.Items)
	}
}

func TestStartFallsBackToNewest(t *testing.T) {
	src := &fakeSource{
		index:  []string{"2026-10-15", "2026-10-10"},
		bodies: map[string]string{"2026-10-15": "hello", "2026-10-10": "older"},
	}
	v, _ := newTestViewer(src)
	v.Start(context.Background())

	if st := v.Snapshot(); st.Selected != "2026-10-15" || st.Mode != ModeShown {
		t.Errorf("state = %+v", st)
	}
}

func TestStartWithNothingAvailable(t *testing.T) {
	tests := []struct {
		name  string
		index []string
	}{
		{"empty index", []string{}},
		{"no index and nothing probed", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fakeSource{index: tt.index}
			v, rec := newTestViewer(src)
			v.Start(context.Background())

			if st := v.Snapshot(); st.Mode != ModeEmpty || st.Selected != "" {
				t.Errorf("state = %+v", st)
			}
			if got := src.fetches(); len(got) != 0 {
				t.Errorf("fetched %v, want nothing", got)
			}
			p := rec.Panels()
			if p.Panel != ModeEmpty {
				t.Errorf("panel = %s", p.Panel)
			}
			for _, e := range p.Events {
				if e == "loading" {
					t.Errorf("unexpected loading panel: %v", p.Events)
				}
			}
		})
	}
}

func TestStartProbesWithoutIndex(t *testing.T) {
	src := &fakeSource{bodies: map[string]string{"2026-10-12": "probed"}}
	v, _ := newTestViewer(src)
	available := v.Start(context.Background())

	if available.Origin() != digest.OriginProbe || available.Len() != 1 {
		t.Fatalf("available = %v (%s)", available.Dates(), available.Origin())
	}
	if st := v.Snapshot(); st.Selected != "2026-10-12" || st.Mode != ModeShown {
		t.Errorf("state = %+v", st)
	}
}

func TestFetchFailureShowsNoDigest(t *testing.T) {
	src := &fakeSource{
		index:  []string{"2026-10-17", "2026-10-16"},
		bodies: map[string]string{"2026-10-16": "ok"},
	}
	v, rec := newTestViewer(src)
	v.Start(context.Background())

	st := v.Snapshot()
	if st.Mode != ModeEmpty {
		t.Errorf("mode = %s, want empty", st.Mode)
	}
	p := rec.Panels()
	if p.Panel != ModeEmpty {
		t.Errorf("panel = %s", p.Panel)
	}
	if p.Highlighted != "2026-10-17" {
		t.Errorf("highlight = %q, want it applied regardless of outcome", p.Highlighted)
	}
}

func TestSelectDateMovesHighlight(t *testing.T) {
	src := &fakeSource{
		index:  []string{"2026-10-17", "2026-10-16"},
		bodies: map[string]string{"2026-10-17": "today", "2026-10-16": "# Yesterday"},
	}
	v, rec := newTestViewer(src)
	v.Start(context.Background())

	if !v.SelectDate(context.Background(), "2026-10-16") {
		t.Fatal("SelectDate returned false for an available date")
	}
	p := rec.Panels()
	if p.Panel != ModeShown || !strings.Contains(p.HTML, "Yesterday") {
		t.Errorf("panel = %s html = %q", p.Panel, p.HTML)
	}
	if p.Items[0].Active || !p.Items[1].Active {
		t.Errorf("items = %+v", p.Items)
	}
	var selected []string
	for _, c := range p.Grid.Cells {
		if c.Selected {
			selected = append(selected, c.Date)
		}
	}
	if len(selected) != 1 || selected[0] != "2026-10-16" {
		t.Errorf("selected cells = %v", selected)
	}
}

func TestSelectDateIgnoresDaysWithoutDigest(t *testing.T) {
	src := &fakeSource{
		index:  []string{"2026-10-17"},
		bodies: map[string]string{"2026-10-17": "today"},
	}
	v, _ := newTestViewer(src)
	v.Start(context.Background())
	before := v.Snapshot()

	if v.SelectDate(context.Background(), "2026-10-03") {
		t.Error("SelectDate returned true for a day without a digest")
	}
	if after := v.Snapshot(); after != before {
		t.Errorf("state changed: %+v -> %+v", before, after)
	}
	if got := src.fetches(); len(got) != 1 {
		t.Errorf("fetches = %v", got)
	}
}

func TestNavigateMonthKeepsSelection(t *testing.T) {
	src := &fakeSource{
		index:  []string{"2026-10-17", "2026-09-30"},
		bodies: map[string]string{"2026-10-17": "today", "2026-09-30": "september"},
	}
	v, rec := newTestViewer(src)
	v.Start(context.Background())

	v.NavigateMonth(-1)
	st := v.Snapshot()
	if st.Month != (calendar.Month{Year: 2026, Month: time.September}) {
		t.Errorf("month = %+v", st.Month)
	}
	if st.Selected != "2026-10-17" || st.Mode != ModeShown {
		t.Errorf("selection changed: %+v", st)
	}
	p := rec.Panels()
	if p.Label != "September 2026" || p.Grid.DigestCount() != 1 {
		t.Errorf("label = %q digests = %d", p.Label, p.Grid.DigestCount())
	}

	v.NavigateMonth(4)
	if got := v.Snapshot().Month; got != (calendar.Month{Year: 2027, Month: time.January}) {
		t.Errorf("month = %+v", got)
	}
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	src := &fakeSource{
		index: []string{"2026-10-17", "2026-10-16"},
		bodies: map[string]string{
			"2026-10-17": "# Latest",
			"2026-10-16": "# Slow",
		},
	}
	v, rec := newTestViewer(src)
	ctx := context.Background()
	v.Start(ctx)

	gate := make(chan struct{})
	src.mu.Lock()
	src.gates = map[string]chan struct{}{"2026-10-16": gate}
	src.entered = make(chan string, 4)
	src.mu.Unlock()

	done := make(chan struct{})
	go func() {
		v.SelectDate(ctx, "2026-10-16")
		close(done)
	}()
	if got := <-src.entered; got != "2026-10-16" {
		t.Fatalf("first fetch = %s", got)
	}

	v.SelectDate(ctx, "2026-10-17")
	close(gate)
	<-done

	st := v.Snapshot()
	if st.Selected != "2026-10-17" || st.Mode != ModeShown {
		t.Errorf("state = %+v", st)
	}
	p := rec.Panels()
	if !strings.Contains(p.HTML, "Latest") || strings.Contains(p.HTML, "Slow") {
		t.Errorf("stale response overwrote the display: %q", p.HTML)
	}
	if p.Highlighted != "2026-10-17" {
		t.Errorf("highlight = %q", p.Highlighted)
	}
}
