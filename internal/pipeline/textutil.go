package pipeline

import (
	"html"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

var (
	// htmlTagPattern matches any tag, comment, or doctype.
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

	// blockTagPattern matches tags that separate words when rendered.
	blockTagPattern = regexp.MustCompile(`(?i)</?(?:address|article|aside|blockquote|br|dd|div|dl|dt|figcaption|figure|footer|h[1-6]|header|hr|li|nav|ol|p|pre|section|table|tbody|td|tfoot|th|thead|tr|ul)\b[^>]*>`)

	whitespaceRun = regexp.MustCompile(`\s+`)
)

// plainText strips markup from an HTML fragment, decodes entities and
// collapses whitespace. Block-level tags become word separators so that
// "<p>a</p><p>b</p>" yields "a b" while "<em>a</em>b" yields "ab".
func plainText(fragment string) string {
	s := blockTagPattern.ReplaceAllString(fragment, " ")
	s = htmlTagPattern.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return collapseWhitespace(s)
}

// collapseWhitespace replaces whitespace runs with a single space and trims.
func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// truncateRunes returns at most n runes of s.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// foldText folds width, diacritics and case so that "Ｃafé" and "cafe"
// compare equal. A fresh transformer chain is built per call; chains carry
// state and must not be shared between goroutines.
func foldText(s string) string {
	t := transform.Chain(
		width.Fold,
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}

// isWordRune reports whether r can be part of an identifier or word.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// compileOrNil compiles expr, returning nil instead of failing.
// Callers skip a transformation whose pattern is nil.
func compileOrNil(expr string) *regexp.Regexp {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil
	}
	return re
}
