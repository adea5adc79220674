// Package render turns digest markdown into the HTML shown in the digest
// panel: markdown conversion followed by currency protection and glossary
// annotation. Math typesetting happens later, in the page.
package render

import (
	"github.com/yuin/goldmark"

	"github.com/ziadkadry99/digestview/internal/glossary"
)

// Pipeline renders digest bodies. It is safe for concurrent use.
type Pipeline struct {
	md       goldmark.Markdown
	glossary *glossary.Glossary
}

// NewPipeline creates a Pipeline annotating terms from g. A nil g disables
// glossary annotation.
func NewPipeline(g *glossary.Glossary) *Pipeline {
	return &Pipeline{md: NewMarkdown(), glossary: g}
}

// Render converts markdown source into post-processed HTML.
func (p *Pipeline) Render(source string) (string, error) {
	raw, err := Markdown(p.md, source)
	if err != nil {
		return "", err
	}
	return p.PostProcess(raw)
}

// PostProcess runs currency protection, then glossary annotation, over
// already rendered HTML.
func (p *Pipeline) PostProcess(rendered string) (string, error) {
	nodes, err := ParseFragment(rendered)
	if err != nil {
		return "", err
	}
	nodes, _ = ProtectCurrency(nodes)
	nodes, _ = AnnotateGlossary(nodes, p.glossary)
	return RenderFragment(nodes)
}
