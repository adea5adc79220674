package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ziadkadry99/digestview/internal/glossary"
)

// currencyPattern matches a dollar amount: digits, an optional fraction and
// an optional magnitude suffix. A lone "$" that opens math never matches.
var currencyPattern = regexp.MustCompile(`\$(\d+(?:\.\d+)?(?:\s*(?:K|M|B|BILLION|MILLION|TRILLION|billion|million|trillion)\b)?)`)

// mathPattern finds math spans in a text run so terms inside equations are
// not turned into links.
var mathPattern = regexp.MustCompile(`\$\$[\s\S]+?\$\$|\$[^$\n]+?\$|\\\([\s\S]+?\\\)|\\\[[\s\S]+?\\\]`)

// dollarEntity replaces the "$" of an amount so the typesetter never sees a
// math opener.
const dollarEntity = "&#36;"

// skipped are elements whose text is never rewritten.
var skipped = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Noscript: true,
	atom.Style:    true,
	atom.Textarea: true,
	atom.Pre:      true,
	atom.Code:     true,
}

// ParseFragment parses rendered digest HTML as the children of a <div>.
func ParseFragment(src string) ([]*html.Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(src), ctx)
	if err != nil {
		return nil, fmt.Errorf("parsing digest html: %w", err)
	}
	return nodes, nil
}

// RenderFragment serializes nodes back to HTML.
func RenderFragment(nodes []*html.Node) (string, error) {
	var buf bytes.Buffer
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", fmt.Errorf("rendering digest html: %w", err)
		}
	}
	return buf.String(), nil
}

// textNodes collects the text nodes under roots, skipping ignored elements
// and any element for which skip reports true. Collection happens before
// any rewrite so new nodes are never revisited.
func textNodes(roots []*html.Node, skip func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if n.Parent != nil {
				out = append(out, n)
			}
			return
		case html.ElementNode:
			if skipped[n.DataAtom] || (skip != nil && skip(n)) {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, r := range roots {
		walk(r)
	}
	return out
}

// replaceNode swaps old for the given nodes under old's parent.
func replaceNode(old *html.Node, with []*html.Node) {
	parent := old.Parent
	for _, n := range with {
		parent.InsertBefore(n, old)
	}
	parent.RemoveChild(old)
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a, Attr: attrs}
}

// ProtectCurrency rewrites dollar amounts in text nodes to
// <span class="currency">&#36;…</span> and returns the number of amounts
// rewritten. Top-level text nodes are handled in place in the slice.
func ProtectCurrency(nodes []*html.Node) ([]*html.Node, int) {
	holder := wrap(nodes)
	reprotect(holder)
	count := 0
	for _, n := range textNodes([]*html.Node{holder}, isCurrency) {
		locs := currencyPattern.FindAllStringSubmatchIndex(n.Data, -1)
		if len(locs) == 0 {
			continue
		}
		var repl []*html.Node
		last := 0
		for _, loc := range locs {
			if loc[0] > last {
				repl = append(repl, textNode(n.Data[last:loc[0]]))
			}
			span := element(atom.Span, html.Attribute{Key: "class", Val: "currency"})
			span.AppendChild(&html.Node{Type: html.RawNode, Data: dollarEntity})
			span.AppendChild(textNode(n.Data[loc[2]:loc[3]]))
			repl = append(repl, span)
			last = loc[1]
			count++
		}
		if last < len(n.Data) {
			repl = append(repl, textNode(n.Data[last:]))
		}
		replaceNode(n, repl)
	}
	return unwrap(holder), count
}

// AnnotateGlossary wraps glossary terms found in text nodes with links
// carrying the term's description as hover text. Text inside links, math
// spans and ignored elements is left alone. Each text node is rewritten at
// most once with all of its terms substituted together.
func AnnotateGlossary(nodes []*html.Node, g *glossary.Glossary) ([]*html.Node, int) {
	holder := wrap(nodes)
	if g == nil || g.Len() == 0 {
		return unwrap(holder), 0
	}
	count := 0
	inLink := func(n *html.Node) bool { return n.DataAtom == atom.A }
	for _, n := range textNodes([]*html.Node{holder}, inLink) {
		matches := outsideMath(n.Data, g.FindAll(n.Data))
		if len(matches) == 0 {
			continue
		}
		var repl []*html.Node
		last := 0
		for _, m := range matches {
			if m.Start > last {
				repl = append(repl, textNode(n.Data[last:m.Start]))
			}
			link := element(atom.A,
				html.Attribute{Key: "href", Val: m.Entry.Link},
				html.Attribute{Key: "target", Val: "_blank"},
				html.Attribute{Key: "rel", Val: "noopener"},
				html.Attribute{Key: "class", Val: "glossary-term"},
				html.Attribute{Key: "title", Val: m.Entry.Description},
			)
			link.AppendChild(textNode(m.Text))
			repl = append(repl, link)
			last = m.End
			count++
		}
		if last < len(n.Data) {
			repl = append(repl, textNode(n.Data[last:]))
		}
		replaceNode(n, repl)
	}
	return unwrap(holder), count
}

// isCurrency reports whether n is an already protected amount.
func isCurrency(n *html.Node) bool {
	if n.DataAtom != atom.Span {
		return false
	}
	for _, a := range n.Attr {
		if a.Key == "class" && a.Val == "currency" {
			return true
		}
	}
	return false
}

// reprotect restores the entity form inside currency spans that went
// through a parse, which decodes "&#36;" back to "$".
func reprotect(n *html.Node) {
	if isCurrency(n) {
		if c := n.FirstChild; c != nil && c.Type == html.TextNode && strings.HasPrefix(c.Data, "$") {
			n.InsertBefore(&html.Node{Type: html.RawNode, Data: dollarEntity}, c)
			c.Data = c.Data[1:]
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		reprotect(c)
	}
}

// outsideMath drops matches that overlap a math span of text.
func outsideMath(text string, matches []glossary.Match) []glossary.Match {
	if len(matches) == 0 {
		return nil
	}
	spans := mathPattern.FindAllStringIndex(text, -1)
	if len(spans) == 0 {
		return matches
	}
	kept := matches[:0]
	for _, m := range matches {
		inside := false
		for _, s := range spans {
			if m.Start < s[1] && s[0] < m.End {
				inside = true
				break
			}
		}
		if !inside {
			kept = append(kept, m)
		}
	}
	return kept
}

// wrap parents top-level nodes under a synthetic <div> so top-level text
// nodes can be replaced like any other.
func wrap(nodes []*html.Node) *html.Node {
	holder := element(atom.Div)
	for _, n := range nodes {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
		holder.AppendChild(n)
	}
	return holder
}

// unwrap detaches and returns the children of holder.
func unwrap(holder *html.Node) []*html.Node {
	var out []*html.Node
	for c := holder.FirstChild; c != nil; {
		next := c.NextSibling
		holder.RemoveChild(c)
		out = append(out, c)
		c = next
	}
	return out
}
