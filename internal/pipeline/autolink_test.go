package pipeline

// Notes:
// - Autolink copies markup byte for byte, so expectations are exact strings
// - Tokenizer error branches other than EOF are not reachable with string input

import "testing"

func TestAutolink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare URL with trailing period",
			input: `<p>See https://example.com.</p>`,
			want:  `<p>See <a href="https://example.com">https://example.com</a>.</p>`,
		},
		{
			name:  "http URL with path and query",
			input: `<p>http://example.com/a/b?x=1&amp;y=2 now</p>`,
			want:  `<p><a href="http://example.com/a/b?x=1&amp;y=2">http://example.com/a/b?x=1&amp;y=2</a> now</p>`,
		},
		{
			name:  "URL in parentheses",
			input: `<p>(https://example.com)</p>`,
			want:  `<p>(<a href="https://example.com">https://example.com</a>)</p>`,
		},
		{
			name:  "multiple URLs",
			input: `<li>https://a.example, https://b.example!</li>`,
			want:  `<li><a href="https://a.example">https://a.example</a>, <a href="https://b.example">https://b.example</a>!</li>`,
		},
		{
			name:  "uppercase scheme",
			input: `<p>HTTPS://EXAMPLE.COM</p>`,
			want:  `<p><a href="HTTPS://EXAMPLE.COM">HTTPS://EXAMPLE.COM</a></p>`,
		},
		{
			name:  "URL inside inline code untouched",
			input: `<p><code>https://example.com</code></p>`,
			want:  `<p><code>https://example.com</code></p>`,
		},
		{
			name:  "URL inside code block untouched",
			input: "<pre><code>curl https://example.com\n</code></pre>",
			want:  "<pre><code>curl https://example.com\n</code></pre>",
		},
		{
			name:  "URL inside existing link untouched",
			input: `<p><a href="https://example.com">https://example.com</a></p>`,
			want:  `<p><a href="https://example.com">https://example.com</a></p>`,
		},
		{
			name:  "URL after closed code is linked",
			input: `<p><code>x</code> https://example.com</p>`,
			want:  `<p><code>x</code> <a href="https://example.com">https://example.com</a></p>`,
		},
		{
			name:  "URL in attribute untouched",
			input: `<img src="https://example.com/a.png" alt="x">`,
			want:  `<img src="https://example.com/a.png" alt="x">`,
		},
		{
			name:  "scheme without host untouched",
			input: `<p>http:// nothing</p>`,
			want:  `<p>http:// nothing</p>`,
		},
		{
			name:  "other schemes untouched",
			input: `<p>ftp://example.com</p>`,
			want:  `<p>ftp://example.com</p>`,
		},
		{
			name:  "no URL",
			input: `<p>plain text</p>`,
			want:  `<p>plain text</p>`,
		},
		{
			name:  "stray closing tag does not underflow",
			input: `</code><p>https://example.com</p>`,
			want:  `</code><p><a href="https://example.com">https://example.com</a></p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Autolink(tt.input); got != tt.want {
				t.Errorf("Autolink(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
