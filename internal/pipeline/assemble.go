package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// ErrDocumentRender indicates the document template failed to execute.
var ErrDocumentRender = errors.New("document template rendering failed")

// DocumentData is the view model passed to the document template.
// html/template escapes every string field; Body and CSS are trusted.
type DocumentData struct {
	Title          string
	Description    string
	Keywords       string
	CSS            template.CSS
	Body           template.HTML
	SearchableText string
}

// Assembler wraps body HTML in a complete, styled HTML document.
// An Assembler is immutable after construction and safe for concurrent use.
type Assembler struct {
	tmpl *template.Template
	css  string
}

// NewAssembler parses the document template. css is embedded verbatim in
// the document's <style> element after escaping closing-tag sequences.
func NewAssembler(tmplContent, css string) (*Assembler, error) {
	tmpl, err := template.New("document").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing document template: %w", err)
	}
	return &Assembler{tmpl: tmpl, css: sanitizeCSS(css)}, nil
}

// Assemble renders body and meta into a standalone document.
func (a *Assembler) Assemble(body string, meta Metadata) (string, error) {
	data := DocumentData{
		Title:          meta.Title,
		Description:    meta.Description,
		Keywords:       strings.Join(meta.Keywords, ", "),
		CSS:            template.CSS(a.css), // #nosec G203 -- stylesheet comes from assets, not documents
		Body:           template.HTML(body), // #nosec G203 -- body has been sanitized upstream
		SearchableText: meta.SearchableText,
	}

	var buf bytes.Buffer
	if err := a.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRender, err)
	}
	return buf.String(), nil
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
