package server

import (
	_ "embed"
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"github.com/ziadkadry99/digestview/internal/digest"
	"github.com/ziadkadry99/digestview/internal/render"
	"github.com/ziadkadry99/digestview/internal/theme"
)

//go:embed app.js
var appJS []byte

//go:embed page.html
var pageHTML string

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

type pageData struct {
	Title           string
	KaTeXCSS        string
	KaTeXJS         string
	KaTeXAutoRender string
	MathConfig      template.JS
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	mathConfig, err := theme.MathConfig(render.DefaultMathOptions())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	data := pageData{
		Title:           s.cfg.Title,
		KaTeXCSS:        theme.KaTeXCSS,
		KaTeXJS:         theme.KaTeXJS,
		KaTeXAutoRender: theme.KaTeXAutoRender,
		MathConfig:      mathConfig,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		log.Printf("server: rendering page: %v", err)
	}
}

func serveAsset(contentType string, body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write(body)
	}
}

// datesResponse is the JSON response for the dates endpoint.
type datesResponse struct {
	Origin digest.Origin `json:"origin"`
	Dates  []string      `json:"dates"`
}

func (s *Server) handleDates(w http.ResponseWriter, r *http.Request) {
	today := digest.DateOf(s.cfg.Now())
	available := digest.Resolve(r.Context(), s.source, today, s.cfg.ProbeDays)

	dates := available.Dates()
	if dates == nil {
		dates = []string{}
	}
	writeJSON(w, http.StatusOK, datesResponse{Origin: available.Origin(), Dates: dates})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
