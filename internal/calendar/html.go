package calendar

import (
	"bytes"
	"html/template"
)

// LinkFunc maps a date with a digest to the page that shows it. A nil
// LinkFunc renders interactive cells that the page wires up itself.
type LinkFunc func(date string) string

const fragmentTemplates = `
{{define "grid"}}{{range .Headers}}<div class="day-header">{{.}}</div>{{end}}
{{- range .Cells}}
{{- if .Href}}<a class="{{.Class}}" data-date="{{.Date}}" href="{{.Href}}">{{.Day}}</a>
{{- else if .Blank}}<div class="{{.Class}}"></div>
{{- else}}<div class="{{.Class}}" data-date="{{.Date}}">{{.Day}}</div>
{{- end}}
{{- end}}{{end}}

{{define "list"}}{{range .}}<li data-date="{{.Date}}"{{if .Active}} class="active"{{end}}>
{{- if .Href}}<a href="{{.Href}}">{{.Label}}</a>{{else}}{{.Label}}{{end}}</li>
{{end}}{{end}}
`

var fragments = template.Must(template.New("calendar").Parse(fragmentTemplates))

type cellView struct {
	Cell
	Class string
	Href  string
}

type listView struct {
	ListItem
	Href string
}

// GridHTML renders the grid's weekday headers and day cells.
func GridHTML(g Grid, link LinkFunc) (template.HTML, error) {
	cells := make([]cellView, len(g.Cells))
	for i, c := range g.Cells {
		cells[i] = cellView{Cell: c, Class: c.Classes()}
		if link != nil && c.HasDigest {
			cells[i].Href = link(c.Date)
		}
	}

	var buf bytes.Buffer
	err := fragments.ExecuteTemplate(&buf, "grid", struct {
		Headers [7]string
		Cells   []cellView
	}{g.Headers, cells})
	if err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// ListHTML renders the recent-dates list items.
func ListHTML(items []ListItem, link LinkFunc) (template.HTML, error) {
	views := make([]listView, len(items))
	for i, it := range items {
		views[i] = listView{ListItem: it}
		if link != nil {
			views[i].Href = link(it.Date)
		}
	}

	var buf bytes.Buffer
	if err := fragments.ExecuteTemplate(&buf, "list", views); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
