package site

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ziadkadry99/digestview/internal/calendar"
	"github.com/ziadkadry99/digestview/internal/digest"
	"github.com/ziadkadry99/digestview/internal/progress"
	"github.com/ziadkadry99/digestview/internal/render"
	"github.com/ziadkadry99/digestview/internal/theme"
	"github.com/ziadkadry99/digestview/internal/viewer"
	"github.com/ziadkadry99/digestview/internal/walker"
)

// IndexPage is the page showing the startup selection.
const IndexPage = "index.html"

// Exporter renders every available digest into a static site.
type Exporter struct {
	Source    digest.Source
	Pipeline  *render.Pipeline
	OutputDir string
	Title     string
	// Match limits the export to dates matching any of these glob patterns.
	Match       []string
	ProbeDays   int
	RecentLimit int
	Now         func() time.Time
	Reporter    progress.Reporter
}

// Result summarizes an export.
type Result struct {
	Dates   []string // exported dates, in available order
	Failed  []string // dates whose digest could not be loaded
	Initial string   // date shown on the index page, empty when none
}

// pageData holds the data passed to the HTML template for each page.
type pageData struct {
	Title           string
	Date            string
	DateLabel       string
	Shown           bool
	Meta            digest.Meta
	Content         template.HTML
	MonthLabel      string
	CalendarHTML    template.HTML
	ListHTML        template.HTML
	PrevHref        string
	NextHref        string
	KaTeXCSS        string
	KaTeXJS         string
	KaTeXAutoRender string
	MathConfig      template.JS
}

// PageName returns the file name of the page for date.
func PageName(date string) string {
	return date + ".html"
}

// Export writes one page per available date plus the index page and the
// stylesheet.
func (e *Exporter) Export(ctx context.Context) (*Result, error) {
	if err := walker.ValidatePatterns(e.Match); err != nil {
		return nil, err
	}
	now := e.Now
	if now == nil {
		now = time.Now
	}
	reporter := e.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}

	resolver := &digest.Resolver{Source: e.Source, ProbeDays: e.ProbeDays}
	resolved := resolver.Resolve(ctx, digest.DateOf(now()))
	available := digest.NewAvailable(walker.Filter(resolved.Dates(), e.Match, nil), resolved.Origin())

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	mathConfig, err := theme.MathConfig(render.DefaultMathOptions())
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(e.OutputDir, "style.css"), theme.Stylesheet, 0o644); err != nil {
		return nil, err
	}

	p := &pager{
		exporter:   e,
		tmpl:       tmpl,
		available:  available,
		mathConfig: mathConfig,
		now:        now,
	}

	res := &Result{Dates: available.Dates()}
	reporter.Start(available.Len() + 1)
	for i, date := range res.Dates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		panels, err := p.write(ctx, date, PageName(date))
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", date, err)
		}
		if panels.Panel != viewer.ModeShown {
			res.Failed = append(res.Failed, date)
		}
		reporter.Update(i+1, date)
	}

	panels, err := p.write(ctx, "", IndexPage)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", IndexPage, err)
	}
	if panels.Panel == viewer.ModeShown {
		res.Initial = panels.Highlighted
	}
	reporter.Update(available.Len()+1, IndexPage)
	reporter.Finish()

	return res, nil
}

// pager renders pages through a viewer driving a recording surface.
type pager struct {
	exporter   *Exporter
	tmpl       *template.Template
	available  *digest.Available
	mathConfig template.JS
	now        func() time.Time
}

func (p *pager) write(ctx context.Context, date, name string) (viewer.Panels, error) {
	rec := viewer.NewRecorder()
	v := viewer.New(p.exporter.Source, p.exporter.Pipeline, rec, viewer.Options{
		RecentLimit: p.exporter.RecentLimit,
		Now:         p.now,
	})
	v.Open(ctx, p.available, date)
	if date != "" {
		if d, err := digest.ParseDate(date); err == nil {
			v.NavigateMonth(monthsBetween(v.Snapshot().Month, calendar.MonthOf(d)))
		}
	}

	panels := rec.Panels()
	if date != "" && panels.Panel != viewer.ModeShown {
		log.Printf("site: %s: digest could not be loaded, exporting placeholder", date)
	}

	link := func(d string) string { return PageName(d) }
	gridHTML, err := calendar.GridHTML(panels.Grid, link)
	if err != nil {
		return panels, err
	}
	listHTML, err := calendar.ListHTML(panels.Items, link)
	if err != nil {
		return panels, err
	}

	month := v.Snapshot().Month
	data := pageData{
		Title:           p.exporter.Title,
		Date:            panels.Highlighted,
		Shown:           panels.Panel == viewer.ModeShown,
		Meta:            panels.Meta,
		Content:         template.HTML(panels.HTML),
		MonthLabel:      panels.Label,
		CalendarHTML:    gridHTML,
		ListHTML:        listHTML,
		PrevHref:        p.monthLink(month.Prev()),
		NextHref:        p.monthLink(month.Next()),
		KaTeXCSS:        theme.KaTeXCSS,
		KaTeXJS:         theme.KaTeXJS,
		KaTeXAutoRender: theme.KaTeXAutoRender,
		MathConfig:      p.mathConfig,
	}
	if data.Date != "" {
		data.DateLabel = digest.DisplayString(data.Date)
	}

	f, err := os.Create(filepath.Join(p.exporter.OutputDir, name))
	if err != nil {
		return panels, err
	}
	defer f.Close()

	return panels, p.tmpl.Execute(f, data)
}

// monthLink points at the newest exported digest of m, or is empty when m
// has none.
func (p *pager) monthLink(m calendar.Month) string {
	newest := ""
	for _, d := range p.available.Dates() {
		if m.Contains(d) && d > newest {
			newest = d
		}
	}
	if newest == "" {
		return ""
	}
	return PageName(newest)
}

func monthsBetween(from, to calendar.Month) int {
	return (to.Year-from.Year)*12 + int(to.Month) - int(from.Month)
}
