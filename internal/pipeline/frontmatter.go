package pipeline

import "strings"

// FrontMatter is the ordered key/value block found at the top of a document.
// Keys are lowercase. The zero value is an empty block.
type FrontMatter struct {
	keys   []string
	values map[string]string
}

// Get returns the value stored under key (case-insensitive).
func (f FrontMatter) Get(key string) (string, bool) {
	v, ok := f.values[strings.ToLower(key)]
	return v, ok
}

// Keys returns the keys in document order.
func (f FrontMatter) Keys() []string {
	return append([]string(nil), f.keys...)
}

// Len returns the number of keys.
func (f FrontMatter) Len() int {
	return len(f.keys)
}

func (f *FrontMatter) set(key, value string) {
	if f.values == nil {
		f.values = make(map[string]string)
	}
	if _, exists := f.values[key]; !exists {
		f.keys = append(f.keys, key)
	}
	f.values[key] = value
}

// SplitFrontMatter detects a leading "---" block and returns the remaining
// body with the parsed block. The block must be closed by a line holding
// only "---" or "..."; otherwise text is returned unchanged with no front
// matter.
func SplitFrontMatter(text string) (string, FrontMatter) {
	lines := strings.SplitAfter(text, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return text, FrontMatter{}
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "---" || trimmed == "..." {
			closing = i
			break
		}
	}
	if closing == -1 {
		return text, FrontMatter{}
	}

	fm := parseFrontMatterLines(lines[1:closing])
	return strings.Join(lines[closing+1:], ""), fm
}

// parseFrontMatterLines parses "key: value" lines. Indented lines continue
// the previous key's value; comments and blank lines are skipped.
func parseFrontMatterLines(lines []string) FrontMatter {
	var fm FrontMatter
	lastKey := ""

	for _, raw := range lines {
		line := strings.TrimRight(raw, "\r\n")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if lastKey != "" && (line[0] == ' ' || line[0] == '\t') {
			prev := fm.values[lastKey]
			if prev == "" {
				fm.set(lastKey, trimmed)
			} else {
				fm.set(lastKey, prev+" "+trimmed)
			}
			continue
		}

		key, value, ok := strings.Cut(trimmed, ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		fm.set(key, normalizeFrontMatterValue(strings.TrimSpace(value)))
		lastKey = key
	}

	return fm
}

// normalizeFrontMatterValue turns "[a, 'b', c]" into "a,b,c" and strips
// one layer of matching quotes from scalar values.
func normalizeFrontMatterValue(value string) string {
	if len(value) >= 2 && value[0] == '[' && value[len(value)-1] == ']' {
		parts := strings.Split(value[1:len(value)-1], ",")
		items := make([]string, 0, len(parts))
		for _, p := range parts {
			if item := stripQuotes(strings.TrimSpace(p)); item != "" {
				items = append(items, item)
			}
		}
		return strings.Join(items, ",")
	}
	return stripQuotes(value)
}

func stripQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' || first == '\'') && first == last {
			return s[1 : len(s)-1]
		}
	}
	return s
}
