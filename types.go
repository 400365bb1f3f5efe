package mdview

import "strings"

// outlineMaxLevel is the deepest heading level shown in an outline.
const outlineMaxLevel = 4

// RenderOptions selects the optional passes of a render call.
type RenderOptions struct {
	SyntaxHighlighting bool // wrap code tokens in tok-* spans
	TOCExtraction      bool // collect headings into RenderedDocument.Headings
	FastMode           bool // forces both passes above off
}

// DefaultRenderOptions enables highlighting and heading collection.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{SyntaxHighlighting: true, TOCExtraction: true}
}

// Normalized returns the options with fast mode applied: when FastMode is
// set, highlighting and heading collection are off regardless of their flags.
func (o RenderOptions) Normalized() RenderOptions {
	if o.FastMode {
		o.SyntaxHighlighting = false
		o.TOCExtraction = false
	}
	return o
}

// HeadingItem is one heading of the rendered document.
type HeadingItem struct {
	Level  int    // 1-6
	Text   string // plain text
	Anchor string // id attribute of the heading element
}

// RenderMetadata describes a rendered document for search and preview.
type RenderMetadata struct {
	Title          string
	Description    string
	Keywords       []string // ordered, unique
	SearchableText string   // at most 12,000 characters
}

// JoinedKeywords returns the keywords separated by ", ".
func (m RenderMetadata) JoinedKeywords() string {
	return strings.Join(m.Keywords, ", ")
}

// RenderedDocument is the result of one render call.
type RenderedDocument struct {
	HTML     string // complete <!doctype html> document
	Metadata RenderMetadata
	Headings []HeadingItem // empty unless heading collection was enabled
}

// Outline returns the headings of levels 1 through 4, in document order.
func (d *RenderedDocument) Outline() []HeadingItem {
	var out []HeadingItem
	for _, h := range d.Headings {
		if h.Level <= outlineMaxLevel {
			out = append(out, h)
		}
	}
	return out
}

// Input contains the per-render parameters.
type Input struct {
	Markdown      string        // UTF-8 Markdown source (required, may be empty)
	Options       RenderOptions // optional passes
	FallbackTitle string        // title used when neither front matter nor an h1 provides one
	SourceDir     string        // directory for resolving relative paths (overrides WithBaseDir)
}
