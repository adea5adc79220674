package digest

import (
	"context"
	"log"
	"strings"

	"github.com/adrg/frontmatter"
)

// frontMatterMarker opens and closes the metadata block at the top of a digest.
const frontMatterMarker = "---"

// Meta is the optional metadata a digest carries in its front matter.
type Meta struct {
	Title   string   `yaml:"title" json:"title,omitempty"`
	Summary string   `yaml:"summary" json:"summary,omitempty"`
	Tags    []string `yaml:"tags" json:"tags,omitempty"`
}

// Document is a fetched digest with its front matter removed.
type Document struct {
	Date Date
	Meta Meta
	Body string
}

// StripFrontMatter removes a leading metadata block. The block must open
// with a marker line on the very first line and close with a later marker
// line; only the text after the closing marker is kept. Without a closing
// marker the text is returned unmodified.
func StripFrontMatter(text string) string {
	_, body, _ := splitFrontMatter(text)
	return body
}

// splitFrontMatter returns the metadata block (both marker lines included)
// and the remaining body. ok is false when no complete block was found.
func splitFrontMatter(text string) (header, body string, ok bool) {
	first, rest, more := strings.Cut(text, "\n")
	if !more || strings.TrimRight(first, " \t\r") != frontMatterMarker {
		return "", text, false
	}

	offset := len(first) + 1
	for {
		line, next, more := strings.Cut(rest, "\n")
		if strings.TrimRight(line, " \t\r") == frontMatterMarker {
			header = text[:offset+len(line)]
			if !more {
				next = ""
			}
			return header, strings.TrimSpace(next), true
		}
		if !more {
			return "", text, false
		}
		offset += len(line) + 1
		rest = next
	}
}

// ParseDocument strips the front matter of raw and decodes it into Meta.
// Malformed metadata is logged and ignored; the block is still stripped.
func ParseDocument(date Date, raw []byte) *Document {
	header, body, ok := splitFrontMatter(string(raw))
	doc := &Document{Date: date, Body: body}
	if !ok {
		return doc
	}

	var meta Meta
	if _, err := frontmatter.Parse(strings.NewReader(header+"\n"), &meta); err != nil {
		log.Printf("digest: %s: ignoring front matter: %v", date, err)
		return doc
	}
	doc.Meta = meta
	return doc
}

// Load fetches and parses the digest for date.
func Load(ctx context.Context, src Source, date Date) (*Document, error) {
	raw, err := src.Fetch(ctx, date)
	if err != nil {
		return nil, err
	}
	return ParseDocument(date, raw), nil
}
