// Package mdview renders Markdown into a sanitized, self-contained HTML
// document together with search metadata and a heading outline.
//
// # Quick Start
//
// Render a string with the default renderer:
//
//	doc, err := mdview.Render("# Hello\n\nWorld", mdview.DefaultRenderOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("hello.html", []byte(doc.HTML), 0o644)
//
// Or render a file, which also resolves relative image paths and falls back
// to the file name for the title:
//
//	doc, err := mdview.RenderFile("notes/readme.md", mdview.DefaultRenderOptions())
//
// # Rendering Pipeline
//
// Every render call runs these stages in order:
//
//  1. Front matter split (leading "---" block)
//  2. Markdown to HTML conversion via Goldmark (GFM tables, task lists, footnotes)
//  3. Sanitization (script/iframe/object/embed, event handlers, javascript: URIs)
//  4. Heading anchors and, unless disabled, outline collection
//  5. Syntax highlighting of fenced code blocks (optional)
//  6. Autolinking of bare http(s) URLs
//  7. Metadata derivation (title, description, keywords, searchable text)
//  8. Document assembly with the stylesheet and document template
//
// Cosmetic stages fail open: a stage that cannot run leaves its input
// unchanged and the render continues.
//
// # Configuration
//
// Use functional options to customize the renderer:
//
//	r, err := mdview.NewRenderer(
//	    mdview.WithStyle("plain"),
//	    mdview.WithAssetPath("/path/to/custom/assets"),
//	    mdview.WithStrictSanitizer(),
//	)
//
// Per-render options are passed via Input:
//
//	doc, err := r.Render(mdview.Input{
//	    Markdown:  content,
//	    Options:   mdview.RenderOptions{FastMode: true},
//	    SourceDir: "/path/to/markdown", // for relative image paths
//	})
//
// # Concurrency
//
// A Renderer is immutable after construction. Render calls share no mutable
// state and may run concurrently from any number of goroutines.
package mdview
