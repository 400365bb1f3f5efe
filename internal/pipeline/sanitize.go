package pipeline

import (
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Sanitizer patterns. Each is compiled independently so that a pattern that
// fails to build only disables its own transformation.
var (
	// Forbidden elements together with their content.
	forbiddenElements = []*regexp.Regexp{
		compileOrNil(`(?is)<script\b[^>]*>.*?</script\s*>`),
		compileOrNil(`(?is)<iframe\b[^>]*>.*?</iframe\s*>`),
		compileOrNil(`(?is)<object\b[^>]*>.*?</object\s*>`),
		compileOrNil(`(?is)<embed\b[^>]*>.*?</embed\s*>`),
	}

	// Unclosed or stray forbidden tags left over after element removal.
	forbiddenTag = compileOrNil(`(?i)</?(?:script|iframe|object|embed)\b[^>]*>?`)
)

// maxSanitizePasses bounds element removal. Every productive pass shortens
// the input, so the bound is only reached on adversarial nesting.
const maxSanitizePasses = 16

// Sanitize removes script, iframe, object and embed elements, inline event
// handlers, and javascript: URIs from HTML. Elements are removed by pattern;
// attributes are read with the HTML tokenizer so that unquoted values and
// "/" separators are seen the way a browser sees them.
func Sanitize(htmlContent string) string {
	return sanitizeAttributes(removeForbiddenElements(htmlContent))
}

// removeForbiddenElements strips forbidden elements until a fixpoint, so
// fragments such as "<scr<script></script>ipt>" cannot reassemble a tag.
func removeForbiddenElements(s string) string {
	for range maxSanitizePasses {
		before := s
		for _, re := range forbiddenElements {
			if re != nil {
				s = re.ReplaceAllString(s, "")
			}
		}
		if forbiddenTag != nil {
			s = forbiddenTag.ReplaceAllString(s, "")
		}
		if s == before {
			break
		}
	}
	return s
}

// sanitizeAttributes copies markup byte for byte, re-serializing only the
// start tags that carry an event handler or a javascript: URI. Tags inside
// raw-text elements are cleaned too.
func sanitizeAttributes(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}

	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	b.Grow(len(s))

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return b.String()
			}
			return s
		case html.StartTagToken, html.SelfClosingTagToken:
			raw := string(z.Raw())
			tok := z.Token()
			// Raw-text content (style, textarea, ...) is parsed as markup
			// inside svg and math, so it is cleaned as markup everywhere.
			z.NextIsNotRawText()
			if cleanAttrs(&tok) {
				b.WriteString(tok.String())
			} else {
				b.WriteString(raw)
			}
		default:
			b.Write(z.Raw())
		}
	}
}

// cleanAttrs drops on* attributes and replaces javascript: URIs with "#".
// It reports whether tok changed.
func cleanAttrs(tok *html.Token) bool {
	changed := false
	kept := tok.Attr[:0]
	for _, attr := range tok.Attr {
		key := strings.ToLower(attr.Key)
		if strings.HasPrefix(key, "on") {
			changed = true
			continue
		}
		if isURIAttr(key) && isJavascriptURI(attr.Val) {
			attr.Val = "#"
			changed = true
		}
		kept = append(kept, attr)
	}
	tok.Attr = kept
	return changed
}

func isURIAttr(key string) bool {
	switch key {
	case "href", "src", "xlink:href":
		return true
	}
	return false
}

// isJavascriptURI ignores the whitespace and control characters browsers
// skip when reading a URL scheme.
func isJavascriptURI(val string) bool {
	folded := strings.Map(func(r rune) rune {
		if r <= ' ' {
			return -1
		}
		return r
	}, val)
	return strings.HasPrefix(strings.ToLower(folded), "javascript:")
}
