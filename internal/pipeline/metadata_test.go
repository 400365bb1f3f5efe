package pipeline

// Notes:
// - BuildMetadata is tested with hand-written body fragments; front matter is
//   produced through SplitFrontMatter to keep FrontMatter construction private

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

func frontMatterOf(t *testing.T, block string) FrontMatter {
	t.Helper()
	_, fm := SplitFrontMatter("---\n" + block + "\n---\n")
	return fm
}

// ---------------------------------------------------------------------------
// TestBuildMetadata - Title and Description
// ---------------------------------------------------------------------------

func TestBuildMetadata_Title(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		fallback string
		fm       string
		want     string
	}{
		{
			name: "first h1",
			body: `<h2>Sub</h2><h1 id="a">First <em>Title</em></h1><h1>Second</h1>`,
			want: "First Title",
		},
		{
			name: "front matter wins over h1",
			body: `<h1>Body Title</h1>`,
			fm:   "title: Front Title",
			want: "Front Title",
		},
		{
			name: "blank front matter ignored",
			body: `<h1>Body Title</h1>`,
			fm:   `title: "  "`,
			want: "Body Title",
		},
		{
			name:     "fallback when no h1",
			body:     `<h2>Only Sub</h2>`,
			fallback: "notes",
			want:     "notes",
		},
		{
			name: "empty when nothing available",
			body: `<p>text</p>`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			meta := BuildMetadata(tt.body, tt.fallback, frontMatterOf(t, tt.fm))
			if meta.Title != tt.want {
				t.Errorf("Title = %q, want %q", meta.Title, tt.want)
			}
		})
	}
}

func TestBuildMetadata_Description(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("word ", 100)

	tests := []struct {
		name string
		body string
		fm   string
		want string
	}{
		{
			name: "first paragraph",
			body: "<h1>T</h1><p>First\n<strong>para</strong>.</p><p>Second</p>",
			want: "First para.",
		},
		{
			name: "front matter wins",
			body: "<p>Body</p>",
			fm:   "description: From front matter",
			want: "From front matter",
		},
		{
			name: "falls back to searchable text",
			body: "<h1>Heading</h1><ul><li>item</li></ul>",
			want: "Heading item",
		},
		{
			name: "fallback truncated",
			body: "<ul><li>" + long + "</li></ul>",
			want: strings.TrimSpace(long)[:descriptionFallbackLen],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			meta := BuildMetadata(tt.body, "", frontMatterOf(t, tt.fm))
			if meta.Description != tt.want {
				t.Errorf("Description = %q, want %q", meta.Description, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestBuildMetadata - Keywords
// ---------------------------------------------------------------------------

func TestBuildMetadata_Keywords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		fm   string
		want []string
	}{
		{
			name: "front matter tags list",
			body: "<p>ignored body words</p>",
			fm:   "tags: [go, markdown, html]",
			want: []string{"go", "markdown", "html"},
		},
		{
			name: "front matter keywords with semicolons",
			body: "<p>ignored</p>",
			fm:   "keywords: alpha; beta, alpha ;gamma",
			want: []string{"alpha", "beta", "gamma"},
		},
		{
			name: "tags win over keywords",
			body: "<p>ignored</p>",
			fm:   "keywords: k\ntags: t",
			want: []string{"t"},
		},
		{
			name: "derived by frequency",
			body: "<p>golang golang golang rust rust tooling zig</p>",
			want: []string{"golang", "rust", "tooling"},
		},
		{
			name: "ties broken lexicographically",
			body: "<p>beta alpha delta</p>",
			want: []string{"alpha", "beta", "delta"},
		},
		{
			name: "folded before counting",
			body: "<p>Café CAFE cafe docs</p>",
			want: []string{"cafe", "docs"},
		},
		{
			name: "short words excluded",
			body: "<p>a an the and</p>",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			meta := BuildMetadata(tt.body, "", frontMatterOf(t, tt.fm))
			if diff := cmp.Diff(tt.want, meta.Keywords); diff != "" {
				t.Errorf("Keywords mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildMetadata_KeywordLimit(t *testing.T) {
	t.Parallel()

	var words []string
	for i := range 20 {
		words = append(words, "word"+string(rune('a'+i)))
	}
	meta := BuildMetadata("<p>"+strings.Join(words, " ")+"</p>", "", FrontMatter{})

	if len(meta.Keywords) != maxDerivedKeywords {
		t.Errorf("len(Keywords) = %d, want %d", len(meta.Keywords), maxDerivedKeywords)
	}
}

// ---------------------------------------------------------------------------
// TestBuildMetadata - Searchable Text
// ---------------------------------------------------------------------------

func TestBuildMetadata_SearchableText(t *testing.T) {
	t.Parallel()

	meta := BuildMetadata(`<h1 id="a">Title</h1><p>One &amp; <em>two</em></p><pre><code>three</code></pre>`, "", FrontMatter{})
	if want := "Title One & two three"; meta.SearchableText != want {
		t.Errorf("SearchableText = %q, want %q", meta.SearchableText, want)
	}
}

func TestBuildMetadata_SearchableTextTruncated(t *testing.T) {
	t.Parallel()

	body := "<p>" + strings.Repeat("é", MaxSearchableText+500) + "</p>"
	meta := BuildMetadata(body, "", FrontMatter{})

	if n := utf8.RuneCountInString(meta.SearchableText); n != MaxSearchableText {
		t.Errorf("SearchableText has %d runes, want %d", n, MaxSearchableText)
	}
	if !utf8.ValidString(meta.SearchableText) {
		t.Error("SearchableText truncated inside a rune")
	}
}

func TestBuildMetadata_EmptyBody(t *testing.T) {
	t.Parallel()

	meta := BuildMetadata("", "fallback", FrontMatter{})
	want := Metadata{Title: "fallback"}
	if diff := cmp.Diff(want, meta); diff != "" {
		t.Errorf("BuildMetadata(\"\") mismatch (-want +got):\n%s", diff)
	}
}
