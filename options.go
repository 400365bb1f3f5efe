package mdview

import "github.com/alnah/go-mdview/internal/pipeline"

// Option configures a Renderer.
type Option func(*Renderer)

// rendererConfig holds the option values resolved in NewRenderer.
type rendererConfig struct {
	styleInput    string // style name, CSS file path, or CSS content
	resolvedStyle string // CSS content after resolution
	assetPath     string
	strict        bool
	baseDir       string
}

// WithStyle sets the stylesheet. The value may be a style name ("default",
// "plain", or a name under the asset path), a path to a CSS file, or CSS
// content.
func WithStyle(style string) Option {
	return func(r *Renderer) {
		r.cfg.styleInput = style
	}
}

// WithAssetPath sets a directory whose styles/ and templates/ entries take
// precedence over the built-in assets.
func WithAssetPath(path string) Option {
	return func(r *Renderer) {
		r.cfg.assetPath = path
	}
}

// WithStrictSanitizer adds an allowlist sanitization pass after the built-in
// denylist. Markup outside a user-generated-content policy is removed.
func WithStrictSanitizer() Option {
	return func(r *Renderer) {
		r.cfg.strict = true
	}
}

// WithBaseDir rewrites relative image and link paths to file:// URLs under
// dir for every render that does not set Input.SourceDir.
func WithBaseDir(dir string) Option {
	return func(r *Renderer) {
		r.cfg.baseDir = dir
	}
}

// withConverter replaces the Markdown converter (used by tests).
func withConverter(c pipeline.HTMLConverter) Option {
	return func(r *Renderer) {
		r.converter = c
	}
}
