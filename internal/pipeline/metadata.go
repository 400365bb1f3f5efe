package pipeline

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Metadata limits.
const (
	MaxSearchableText      = 12000 // runes
	descriptionFallbackLen = 220   // runes of searchable text
	maxDerivedKeywords     = 12
	minKeywordLen          = 4 // runes
)

// Metadata describes a rendered document for search and preview surfaces.
type Metadata struct {
	Title          string
	Description    string
	Keywords       []string
	SearchableText string
}

// BuildMetadata derives metadata from the final body HTML. Front matter
// values win when present and non-blank; otherwise values come from the
// body, and the title falls back to fallbackTitle.
func BuildMetadata(body, fallbackTitle string, fm FrontMatter) Metadata {
	fullText := plainText(body)
	searchable := truncateRunes(fullText, MaxSearchableText)

	// Parse failures leave doc nil; lookups then fall through to fallbacks.
	doc, _ := goquery.NewDocumentFromReader(strings.NewReader(body))

	return Metadata{
		Title:          deriveTitle(doc, fallbackTitle, fm),
		Description:    deriveDescription(doc, searchable, fm),
		Keywords:       deriveKeywords(fullText, fm),
		SearchableText: searchable,
	}
}

func frontMatterValue(fm FrontMatter, key string) string {
	v, _ := fm.Get(key)
	return strings.TrimSpace(v)
}

// firstElementText returns the collapsed text of the first element matching selector.
func firstElementText(doc *goquery.Document, selector string) string {
	if doc == nil {
		return ""
	}
	return collapseWhitespace(doc.Find(selector).First().Text())
}

func deriveTitle(doc *goquery.Document, fallback string, fm FrontMatter) string {
	if v := frontMatterValue(fm, "title"); v != "" {
		return v
	}
	if v := firstElementText(doc, "h1"); v != "" {
		return v
	}
	return fallback
}

func deriveDescription(doc *goquery.Document, searchable string, fm FrontMatter) string {
	if v := frontMatterValue(fm, "description"); v != "" {
		return v
	}
	if v := firstElementText(doc, "p"); v != "" {
		return v
	}
	return truncateRunes(searchable, descriptionFallbackLen)
}

// deriveKeywords prefers front matter "tags", then "keywords"; otherwise it
// ranks folded body words by frequency.
func deriveKeywords(text string, fm FrontMatter) []string {
	for _, key := range []string{"tags", "keywords"} {
		if v := frontMatterValue(fm, key); v != "" {
			if kw := splitKeywords(v); len(kw) > 0 {
				return kw
			}
		}
	}
	return topKeywords(text, maxDerivedKeywords)
}

// splitKeywords splits on commas and semicolons, trimming and dropping
// empty and repeated entries.
func splitKeywords(value string) []string {
	parts := strings.FieldsFunc(value, func(r rune) bool { return r == ',' || r == ';' })
	seen := make(map[string]struct{}, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// topKeywords counts folded words of at least minKeywordLen runes and returns
// the n most frequent, ties broken in ascending lexicographic order.
func topKeywords(text string, n int) []string {
	words := strings.FieldsFunc(foldText(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	counts := make(map[string]int)
	for _, w := range words {
		if utf8.RuneCountInString(w) >= minKeywordLen {
			counts[w]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	ranked := make([]string, 0, len(counts))
	for w := range counts {
		ranked = append(ranked, w)
	}
	sort.Slice(ranked, func(i, j int) bool {
		ci, cj := counts[ranked[i]], counts[ranked[j]]
		if ci != cj {
			return ci > cj
		}
		return ranked[i] < ranked[j]
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
