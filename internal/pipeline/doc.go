// Package pipeline implements the Markdown-to-document rendering stages.
//
// Each stage consumes the previous stage's output and is independently testable:
//   - Front matter splitting (leading --- metadata block)
//   - Markdown to HTML conversion via Goldmark
//   - Denylist sanitization of active content
//   - Heading anchor assignment and outline collection
//   - Lexical syntax highlighting of fenced code blocks
//   - Autolinking of bare URLs outside protected tags
//   - Metadata derivation (title, description, keywords, searchable text)
//   - Document assembly into a styled, self-contained HTML page
//
// Cosmetic stages fail open: when a pattern cannot be built or matches
// nothing, the input flows through unchanged. No stage keeps state between
// calls, so the root mdview package can run renders concurrently.
package pipeline
