package mdview

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/alnah/go-mdview/internal/assets"
	"github.com/alnah/go-mdview/internal/fileutil"
	"github.com/alnah/go-mdview/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)
	_ assets.AssetLoader     = (*assets.AssetResolver)(nil)
)

// byteOrderMark is stripped from the start of Markdown input.
const byteOrderMark = "\ufeff"

// Renderer turns Markdown into a complete HTML document.
// Create with NewRenderer and call Render from any number of goroutines.
type Renderer struct {
	cfg         rendererConfig
	assetLoader assets.AssetLoader
	converter   pipeline.HTMLConverter
	assembler   *pipeline.Assembler
	strict      *bluemonday.Policy // nil unless WithStrictSanitizer
}

// NewRenderer creates a Renderer with the built-in stylesheet and document
// template. Returns an error if the asset path, style, or template is invalid.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		assetLoader: assets.NewEmbeddedLoader(),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(r.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		r.assetLoader = resolver
	}

	if err := r.resolveStyle(); err != nil {
		return nil, err
	}

	tmpl, err := r.assetLoader.LoadTemplate(assets.DocumentTemplateName)
	if err != nil {
		return nil, fmt.Errorf("loading document template: %w", err)
	}
	r.assembler, err = pipeline.NewAssembler(tmpl, r.cfg.resolvedStyle)
	if err != nil {
		return nil, fmt.Errorf("initializing assembler: %w", err)
	}

	if r.converter == nil {
		r.converter = pipeline.NewGoldmarkConverter()
	}
	if r.cfg.strict {
		r.strict = newStrictPolicy()
	}

	return r, nil
}

// Render runs the full pipeline over input.Markdown.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (r *Renderer) Render(input Input) (doc *RenderedDocument, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			doc = nil
			err = fmt.Errorf("%w: %v", ErrInternal, rec)
		}
	}()

	opts := input.Options.Normalized()

	markdown := strings.TrimPrefix(input.Markdown, byteOrderMark)
	markdown = pipeline.NormalizeLineEndings(markdown)
	body, frontMatter := pipeline.SplitFrontMatter(markdown)

	htmlContent, err := r.converter.ToHTML(body)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	htmlContent = pipeline.Sanitize(htmlContent)
	if r.strict != nil {
		htmlContent = r.strict.Sanitize(htmlContent)
	}

	// Anchors are always assigned so in-document links resolve; only the
	// outline collection follows the option.
	htmlContent, headings := pipeline.AssignAnchors(htmlContent, opts.TOCExtraction)

	if opts.SyntaxHighlighting {
		htmlContent = pipeline.Highlight(htmlContent)
	}

	htmlContent = pipeline.Autolink(htmlContent)

	if dir := r.sourceDir(input); dir != "" {
		htmlContent = pipeline.RewriteRelativePaths(htmlContent, dir)
	}

	meta := pipeline.BuildMetadata(htmlContent, input.FallbackTitle, frontMatter)

	page, err := r.assembler.Assemble(htmlContent, meta)
	if err != nil {
		return nil, fmt.Errorf("assembling document: %w", err)
	}

	return &RenderedDocument{
		HTML:     page,
		Metadata: toRenderMetadata(meta),
		Headings: toHeadingItems(headings),
	}, nil
}

// sourceDir returns the directory relative paths resolve against.
func (r *Renderer) sourceDir(input Input) string {
	if input.SourceDir != "" {
		return input.SourceDir
	}
	return r.cfg.baseDir
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS
// content. An empty input selects the default style.
func (r *Renderer) resolveStyle() error {
	input := r.cfg.styleInput
	if input == "" {
		input = assets.DefaultStyleName
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		r.cfg.resolvedStyle = string(content)
		return nil
	}

	// CSS content? (contains {)
	if fileutil.IsCSS(input) {
		r.cfg.resolvedStyle = input
		return nil
	}

	css, err := r.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	r.cfg.resolvedStyle = css
	return nil
}

// StyleNames lists the style names WithStyle accepts: the built-in styles
// plus those under assetPath/styles when assetPath is set.
func StyleNames(assetPath string) ([]string, error) {
	if assetPath == "" {
		return assets.StyleNames(), nil
	}
	resolver, err := assets.NewAssetResolver(assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	return resolver.StyleNames(), nil
}

func toRenderMetadata(m pipeline.Metadata) RenderMetadata {
	return RenderMetadata{
		Title:          m.Title,
		Description:    m.Description,
		Keywords:       m.Keywords,
		SearchableText: m.SearchableText,
	}
}

func toHeadingItems(headings []pipeline.Heading) []HeadingItem {
	if len(headings) == 0 {
		return nil
	}
	items := make([]HeadingItem, len(headings))
	for i, h := range headings {
		items[i] = HeadingItem(h)
	}
	return items
}

// defaultRenderer is built on first use of the package-level Render.
var defaultRenderer = sync.OnceValues(func() (*Renderer, error) {
	return NewRenderer()
})

// Render renders markdown with the built-in style and no base directory.
func Render(markdown string, opts RenderOptions) (*RenderedDocument, error) {
	r, err := defaultRenderer()
	if err != nil {
		return nil, err
	}
	return r.Render(Input{Markdown: markdown, Options: opts})
}
