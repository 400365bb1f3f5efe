package pipeline

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Token classes emitted as <span class="tok-*">.
const (
	tokComment = "tok-comment"
	tokString  = "tok-string"
	tokKeyword = "tok-keyword"
	tokLiteral = "tok-literal"
	tokNumber  = "tok-number"
)

var (
	// codeBlock captures: 1=code element attributes, 2=code content.
	codeBlock = compileOrNil(`(?is)<pre(?:\s[^>]*)?>\s*<code(\s[^>]*)?>(.*?)</code>\s*</pre>`)

	classAttr     = compileOrNil(`(?i)\bclass\s*=\s*(?:"([^"]*)"|'([^']*)')`)
	blockComment  = compileOrNil(`(?s)/\*.*?\*/`)
	stringLiteral = compileOrNil("\"(?:\\\\.|[^\"\\\\\\n])*\"|'(?:\\\\.|[^'\\\\\\n])*'|`(?:\\\\.|[^`\\\\])*`")
	numberLiteral = compileOrNil(`[0-9]+(?:\.[0-9]+)?`)

	lineComments = map[string]*regexp.Regexp{
		commentSlashes: compileOrNil(`//[^\n]*`),
		commentHash:    compileOrNil(`#[^\n]*`),
		commentDashes:  compileOrNil(`--[^\n]*`),
	}
)

// literalWords are highlighted as booleans/null in every language.
var literalWords = wordSet(`true false null nil None True False`)

// codeSegment is a run of code text; class is empty until a pass claims it.
type codeSegment struct {
	text  string
	class string
}

// Highlight wraps lexical tokens of fenced code blocks carrying a
// "language-X" class in <span class="tok-*"> markup. Blocks without a
// recognized language pass through unmodified. Text content never changes.
func Highlight(htmlContent string) string {
	if codeBlock == nil || classAttr == nil {
		return htmlContent
	}

	matches := codeBlock.FindAllStringSubmatchIndex(htmlContent, -1)
	if len(matches) == 0 {
		return htmlContent
	}

	var b strings.Builder
	b.Grow(len(htmlContent) * 2)
	last := 0

	for _, m := range matches {
		attrs := ""
		if m[2] >= 0 {
			attrs = htmlContent[m[2]:m[3]]
		}
		code := htmlContent[m[4]:m[5]]

		lang, ok := lookupLanguage(languageFromAttrs(attrs))
		// Content that already carries markup was highlighted elsewhere.
		if !ok || code == "" || strings.Contains(code, "<") {
			continue
		}

		b.WriteString(htmlContent[last:m[4]])
		b.WriteString(highlightCode(html.UnescapeString(code), lang))
		last = m[5]
	}

	b.WriteString(htmlContent[last:])
	return b.String()
}

// languageFromAttrs extracts X from a "language-X" class token.
func languageFromAttrs(attrs string) string {
	m := classAttr.FindStringSubmatch(attrs)
	if m == nil {
		return ""
	}
	classes := m[1] + m[2]
	for _, c := range strings.Fields(classes) {
		if name, ok := strings.CutPrefix(c, "language-"); ok && name != "" {
			return name
		}
	}
	return ""
}

// highlightCode runs the lexical passes over plain code text and returns
// escaped markup. Each pass only sees text no earlier pass has claimed.
func highlightCode(code string, lang *language) string {
	segs := []codeSegment{{text: code}}

	if lang.blockComments {
		segs = claimPattern(segs, blockComment, tokComment)
	}
	if lang.lineComment != "" {
		segs = claimPattern(segs, lineComments[lang.lineComment], tokComment)
	}
	segs = claimPattern(segs, stringLiteral, tokString)
	if len(lang.keywords) > 0 {
		segs = claimWords(segs, tokKeyword, lang.isKeyword)
	}
	segs = claimWords(segs, tokLiteral, func(w string) bool {
		_, ok := literalWords[w]
		return ok
	})
	segs = claimNumbers(segs)

	var b strings.Builder
	b.Grow(len(code) * 2)
	for _, s := range segs {
		if s.class == "" {
			b.WriteString(escapeCode(s.text))
			continue
		}
		b.WriteString(`<span class="`)
		b.WriteString(s.class)
		b.WriteString(`">`)
		b.WriteString(escapeCode(s.text))
		b.WriteString(`</span>`)
	}
	return b.String()
}

// claimSpans splits unclaimed segments at the spans returned by find and
// assigns class to those spans.
func claimSpans(segs []codeSegment, class string, find func(string) [][]int) []codeSegment {
	out := make([]codeSegment, 0, len(segs))
	for _, s := range segs {
		if s.class != "" {
			out = append(out, s)
			continue
		}
		last := 0
		for _, loc := range find(s.text) {
			if loc[0] > last {
				out = append(out, codeSegment{text: s.text[last:loc[0]]})
			}
			out = append(out, codeSegment{text: s.text[loc[0]:loc[1]], class: class})
			last = loc[1]
		}
		if last < len(s.text) {
			out = append(out, codeSegment{text: s.text[last:]})
		}
	}
	return out
}

func claimPattern(segs []codeSegment, re *regexp.Regexp, class string) []codeSegment {
	if re == nil {
		return segs
	}
	return claimSpans(segs, class, func(s string) [][]int {
		return re.FindAllStringIndex(s, -1)
	})
}

// claimWords claims whole identifiers accepted by match.
func claimWords(segs []codeSegment, class string, match func(string) bool) []codeSegment {
	return claimSpans(segs, class, func(s string) [][]int {
		var locs [][]int
		for _, loc := range identifierSpans(s) {
			if match(s[loc[0]:loc[1]]) {
				locs = append(locs, loc)
			}
		}
		return locs
	})
}

// claimNumbers claims integer and decimal literals not touching an
// identifier character.
func claimNumbers(segs []codeSegment) []codeSegment {
	if numberLiteral == nil {
		return segs
	}
	return claimSpans(segs, tokNumber, func(s string) [][]int {
		var locs [][]int
		for _, loc := range numberLiteral.FindAllStringIndex(s, -1) {
			if isWholeWord(s, loc[0], loc[1]) {
				locs = append(locs, loc)
			}
		}
		return locs
	})
}

// identifierSpans returns the byte spans of maximal identifier runs.
func identifierSpans(s string) [][]int {
	var spans [][]int
	start := -1
	for i, r := range s {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			spans = append(spans, []int{start, i})
			start = -1
		}
	}
	if start >= 0 {
		spans = append(spans, []int{start, len(s)})
	}
	return spans
}

// isWholeWord reports whether s[start:end] is not adjacent to an identifier rune.
func isWholeWord(s string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(s) {
		r, _ := utf8.DecodeRuneInString(s[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

// escapeCode escapes code text the way Goldmark does, so unhighlighted text
// is byte-identical to the converter's output.
func escapeCode(s string) string {
	return codeEscaper.Replace(s)
}

var codeEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)
