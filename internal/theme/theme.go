// Package theme holds the page assets shared by the live viewer and the
// static export.
package theme

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/ziadkadry99/digestview/internal/render"
)

//go:embed style.css
var Stylesheet []byte

// KaTeX assets loaded by every page.
const (
	KaTeXVersion    = "0.16.9"
	KaTeXCSS        = "https://cdn.jsdelivr.net/npm/katex@" + KaTeXVersion + "/dist/katex.min.css"
	KaTeXJS         = "https://cdn.jsdelivr.net/npm/katex@" + KaTeXVersion + "/dist/katex.min.js"
	KaTeXAutoRender = "https://cdn.jsdelivr.net/npm/katex@" + KaTeXVersion + "/dist/contrib/auto-render.min.js"
)

// MathConfig returns the typesetter options as a script literal.
func MathConfig(opts render.MathOptions) (template.JS, error) {
	data, err := json.Marshal(opts)
	if err != nil {
		return "", fmt.Errorf("encoding math options: %w", err)
	}
	return template.JS(data), nil
}
