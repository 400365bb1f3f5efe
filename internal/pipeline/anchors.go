package pipeline

import (
	"html"
	"strconv"
	"strings"
	"unicode"
)

// fallbackSlug is used when a heading's text yields no slug characters.
const fallbackSlug = "section"

// Heading is one entry of the document outline.
type Heading struct {
	Level  int    // 1-6
	Text   string // plain text, entities decoded
	Anchor string // id attribute value
}

var (
	// headingElement captures: 1=level, 2=attributes, 3=inner HTML.
	headingElement = compileOrNil(`(?is)<h([1-6])(\s[^>]*)?>(.*?)</h[1-6]\s*>`)

	// idAttr captures an id attribute value in any quoting style.
	idAttr = compileOrNil(`(?i)(?:^|\s)id\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'>]+))`)
)

// slugCounter de-duplicates anchors within one document.
type slugCounter struct {
	next map[string]int  // base slug -> times handed out
	used map[string]bool // every id present in the document
}

func newSlugCounter() *slugCounter {
	return &slugCounter{next: make(map[string]int), used: make(map[string]bool)}
}

// unique returns base on first use, then base-2, base-3, ... skipping any
// id already taken.
func (c *slugCounter) unique(base string) string {
	n := c.next[base]
	for {
		n++
		candidate := base
		if n > 1 {
			candidate = base + "-" + strconv.Itoa(n)
		}
		if !c.used[candidate] {
			c.next[base] = n
			c.used[candidate] = true
			return candidate
		}
	}
}

// reserve records an author-supplied id so derived slugs do not reuse it.
func (c *slugCounter) reserve(id string) {
	c.used[id] = true
}

// Slugify derives a URL-fragment-safe anchor from heading text: diacritics,
// width and case are folded, runs of other characters collapse to a single
// hyphen, and an empty result becomes "section".
func Slugify(text string) string {
	var b strings.Builder
	pendingHyphen := false

	for _, r := range foldText(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	if b.Len() == 0 {
		return fallbackSlug
	}
	return b.String()
}

// AssignAnchors gives every h1-h6 element an id. Existing ids are kept and
// the element is left untouched; other headings get a unique slug of their
// text. When collect is true, headings with non-empty text are returned in
// document order.
func AssignAnchors(htmlContent string, collect bool) (string, []Heading) {
	if headingElement == nil || idAttr == nil {
		return htmlContent, nil
	}

	matches := headingElement.FindAllStringSubmatchIndex(htmlContent, -1)
	if len(matches) == 0 {
		return htmlContent, nil
	}

	// Author ids anywhere in the document win over derived slugs.
	counter := newSlugCounter()
	for _, m := range matches {
		if m[4] >= 0 {
			if id, ok := existingID(htmlContent[m[4]:m[5]]); ok {
				counter.reserve(id)
			}
		}
	}

	var headings []Heading
	var b strings.Builder
	b.Grow(len(htmlContent) + len(matches)*16)
	last := 0

	for _, m := range matches {
		level := int(htmlContent[m[2]] - '0')
		attrs := ""
		if m[4] >= 0 {
			attrs = htmlContent[m[4]:m[5]]
		}
		inner := htmlContent[m[6]:m[7]]
		text := plainText(inner)

		anchor, explicit := existingID(attrs)
		if !explicit {
			anchor = counter.unique(Slugify(text))
			b.WriteString(htmlContent[last:m[0]])
			b.WriteString("<h")
			b.WriteByte(htmlContent[m[2]])
			b.WriteString(` id="`)
			b.WriteString(html.EscapeString(anchor))
			b.WriteByte('"')
			b.WriteString(stripEmptyID(attrs))
			b.WriteByte('>')
			b.WriteString(htmlContent[m[6]:m[1]])
			last = m[1]
		}

		if collect && text != "" {
			headings = append(headings, Heading{Level: level, Text: text, Anchor: anchor})
		}
	}

	b.WriteString(htmlContent[last:])
	return b.String(), headings
}

// existingID returns a non-empty id attribute value from attrs.
func existingID(attrs string) (string, bool) {
	m := idAttr.FindStringSubmatch(attrs)
	if m == nil {
		return "", false
	}
	for _, v := range m[1:] {
		if v != "" {
			return html.UnescapeString(v), true
		}
	}
	return "", false
}

// stripEmptyID drops an empty id attribute so the rewritten element does not
// carry two ids.
func stripEmptyID(attrs string) string {
	return idAttr.ReplaceAllStringFunc(attrs, func(attr string) string {
		if _, ok := existingID(attr); ok {
			return attr
		}
		return ""
	})
}
