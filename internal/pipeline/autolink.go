package pipeline

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// bareURL matches an http(s) URL up to whitespace or the next tag.
var bareURL = compileOrNil(`(?i)https?://[^\s<]+`)

// trailingURLPunctuation is excluded from links and re-emitted after them.
const trailingURLPunctuation = ".,;:!?)]}"

// protectedDepth tracks nesting of tags inside which links are not created.
type protectedDepth struct {
	code, pre, a int
}

func (d *protectedDepth) counter(tag string) *int {
	switch tag {
	case "code":
		return &d.code
	case "pre":
		return &d.pre
	case "a":
		return &d.a
	}
	return nil
}

func (d *protectedDepth) open(tag string) {
	if c := d.counter(tag); c != nil {
		*c++
	}
}

func (d *protectedDepth) close(tag string) {
	if c := d.counter(tag); c != nil && *c > 0 {
		*c--
	}
}

func (d *protectedDepth) clear() bool {
	return d.code == 0 && d.pre == 0 && d.a == 0
}

// Autolink wraps bare http:// and https:// URLs found in text outside code,
// pre and a elements in anchor tags. Markup is copied byte for byte; only
// eligible text is rewritten.
func Autolink(htmlContent string) string {
	if bareURL == nil || !strings.Contains(strings.ToLower(htmlContent), "http") {
		return htmlContent
	}

	z := html.NewTokenizer(strings.NewReader(htmlContent))
	var b strings.Builder
	b.Grow(len(htmlContent) + 64)
	var depth protectedDepth

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return b.String()
			}
			return htmlContent
		case html.StartTagToken:
			name, _ := z.TagName()
			depth.open(string(name))
			b.Write(z.Raw())
		case html.EndTagToken:
			name, _ := z.TagName()
			depth.close(string(name))
			b.Write(z.Raw())
		case html.TextToken:
			if depth.clear() {
				b.WriteString(linkify(string(z.Raw())))
			} else {
				b.Write(z.Raw())
			}
		default:
			b.Write(z.Raw())
		}
	}
}

// linkify wraps every bare URL in text, leaving trailing punctuation outside.
func linkify(text string) string {
	locs := bareURL.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return text
	}

	var b strings.Builder
	last := 0
	for _, loc := range locs {
		raw := text[loc[0]:loc[1]]
		link := strings.TrimRight(raw, trailingURLPunctuation)
		if !hasHost(link) {
			continue
		}
		b.WriteString(text[last:loc[0]])
		b.WriteString(`<a href="`)
		b.WriteString(strings.ReplaceAll(link, `"`, "&quot;"))
		b.WriteString(`">`)
		b.WriteString(link)
		b.WriteString(`</a>`)
		b.WriteString(raw[len(link):])
		last = loc[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

// hasHost reports whether anything follows the scheme separator.
func hasHost(link string) bool {
	_, rest, ok := strings.Cut(link, "://")
	return ok && rest != ""
}
