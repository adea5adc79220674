package render

// Delimiter is one math delimiter pair understood by the page's typesetter.
type Delimiter struct {
	Left    string `json:"left"`
	Right   string `json:"right"`
	Display bool   `json:"display"`
}

// MathOptions configures KaTeX auto-render in the page. Its JSON form is
// passed to renderMathInElement unchanged.
type MathOptions struct {
	Delimiters   []Delimiter `json:"delimiters"`
	ThrowOnError bool        `json:"throwOnError"`
	IgnoredTags  []string    `json:"ignoredTags"`
}

// DefaultMathOptions returns the standard inline and display delimiters.
// Malformed math renders as its source instead of failing the page.
func DefaultMathOptions() MathOptions {
	return MathOptions{
		Delimiters: []Delimiter{
			{Left: "$$", Right: "$$", Display: true},
			{Left: "$", Right: "$", Display: false},
			{Left: `\(`, Right: `\)`, Display: false},
			{Left: `\[`, Right: `\]`, Display: true},
		},
		ThrowOnError: false,
		IgnoredTags:  []string{"script", "noscript", "style", "textarea", "pre", "code"},
	}
}
