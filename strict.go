package mdview

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// newStrictPolicy returns the allowlist applied by WithStrictSanitizer. It
// starts from bluemonday's user-generated-content policy and keeps what the
// later stages rely on: heading ids and language classes on code.
func newStrictPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("id").Matching(regexp.MustCompile(`^[\p{L}\p{N}_-]+$`)).
		OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^language-[\w+#.-]+$`)).
		OnElements("code")
	p.AllowAttrs("type", "checked", "disabled").OnElements("input")
	p.AllowElements("input")
	return p
}
