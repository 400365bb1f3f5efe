package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	mdview "github.com/alnah/go-mdview"
	"github.com/alnah/go-mdview/internal/config"
	"github.com/alnah/go-mdview/internal/fileutil"
	"github.com/alnah/go-mdview/internal/hints"
	"github.com/alnah/go-mdview/internal/yamlutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// stdoutPath selects standard output for -o.
const stdoutPath = "-"

// FileRenderer is the part of the rendering service used by the CLI.
type FileRenderer interface {
	RenderFile(location string, opts mdview.RenderOptions) (*mdview.RenderedDocument, error)
}

// Compile-time interface implementation check.
var _ FileRenderer = (*mdview.Renderer)(nil)

// renderParams groups parameters shared by render, export and view.
type renderParams struct {
	renderer      FileRenderer
	passes        mdview.RenderOptions
	fastThreshold int64 // bytes; 0 = never switch to fast mode
	metadata      bool
	quiet         bool
	verbose       bool
}

// invocation is a parsed command line with its resolved configuration.
type invocation struct {
	flags  *renderFlags
	inputs []string
	cfg    *config.Config
	envCfg *envConfig
	params *renderParams
}

// prepare parses flags and resolves configuration for command name.
// Precedence: CLI flags > MDVIEW_* variables > config file > defaults.
func prepare(name string, args []string, env *Environment) (*invocation, error) {
	flags, inputs, err := parseRenderFlags(name, args, env.Stdout)
	if err != nil {
		return nil, err
	}

	envCfg := loadEnvConfig()
	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return nil, err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	params, err := newRenderParams(cfg, flags)
	if errors.Is(err, mdview.ErrStyleNotFound) {
		if names, nameErr := mdview.StyleNames(cfg.Assets.BasePath); nameErr == nil {
			return nil, fmt.Errorf("%w%s", err, hints.ForStyleNotFound(names))
		}
	}
	if err != nil {
		return nil, err
	}

	return &invocation{
		flags:  flags,
		inputs: inputs,
		cfg:    cfg,
		envCfg: envCfg,
		params: params,
	}, nil
}

// loadConfig loads the config named by --config, then MDVIEW_CONFIG.
// Without either, defaults are returned.
func loadConfig(flagConfig string, envCfg *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *renderFlags, cfg *config.Config) {
	if flags.passes.noHighlight {
		cfg.Render.SyntaxHighlighting = false
	}
	if flags.passes.noTOC {
		cfg.Render.TOC = false
	}
	if flags.passes.noFast {
		cfg.Render.FastModeThreshold = 0
	}
	if flags.passes.strict {
		cfg.Render.StrictSanitize = true
	}
	if flags.assets.style != "" {
		cfg.CSS.Style = flags.assets.style
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}
}

// newRenderParams builds the renderer and pass options from merged config.
func newRenderParams(cfg *config.Config, flags *renderFlags) (*renderParams, error) {
	var opts []mdview.Option
	if cfg.CSS.Style != "" {
		opts = append(opts, mdview.WithStyle(cfg.CSS.Style))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, mdview.WithAssetPath(cfg.Assets.BasePath))
	}
	if cfg.Render.StrictSanitize {
		opts = append(opts, mdview.WithStrictSanitizer())
	}

	renderer, err := mdview.NewRenderer(opts...)
	if err != nil {
		return nil, err
	}

	return &renderParams{
		renderer: renderer,
		passes: mdview.RenderOptions{
			SyntaxHighlighting: cfg.Render.SyntaxHighlighting,
			TOCExtraction:      cfg.Render.TOC,
			FastMode:           flags.passes.fast,
		},
		fastThreshold: cfg.Render.FastModeThreshold,
		metadata:      flags.metadata,
		quiet:         flags.common.quiet,
		verbose:       flags.common.verbose,
	}, nil
}

// optionsFor returns the pass options for a source of size bytes.
func (p *renderParams) optionsFor(size int64) mdview.RenderOptions {
	opts := p.passes
	if p.fastThreshold > 0 && size >= p.fastThreshold {
		opts.FastMode = true
	}
	return opts
}

// renderPath renders one local Markdown file, choosing fast mode by size.
func (p *renderParams) renderPath(location string) (*mdview.RenderedDocument, error) {
	path := location
	if fp, ok := fileutil.FileURLToPath(location); ok {
		path = fp
	} else if fileutil.IsURL(location) {
		return nil, fmt.Errorf("%w: %q is not a local file", mdview.ErrInvalidSource, location)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", mdview.ErrUnreadableSource, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory (use mdview export)", ErrUsage, path)
	}

	return p.renderer.RenderFile(path, p.optionsFor(info.Size()))
}

// runRender renders a single file to -o, stdout, or the viewer.
func runRender(ctx context.Context, args []string, env *Environment) error {
	inv, err := prepare(cmdRender, args, env)
	if err != nil {
		return err
	}

	if len(inv.inputs) == 0 {
		return ErrNoInput
	}
	if len(inv.inputs) > 1 {
		return fmt.Errorf("%w: render takes one file, got %d (use mdview export)", ErrUsage, len(inv.inputs))
	}

	output := inv.flags.output
	if output == "" {
		return viewInput(ctx, inv, env)
	}
	if output == stdoutPath && inv.params.metadata {
		return fmt.Errorf("%w: --metadata cannot be combined with -o -", ErrUsage)
	}

	start := env.Now()
	doc, err := inv.params.renderPath(inv.inputs[0])
	if err != nil {
		return err
	}

	if output == stdoutPath {
		_, err := io.WriteString(env.Stdout, doc.HTML)
		return err
	}

	if err := writeHTML(output, doc.HTML); err != nil {
		return err
	}

	if inv.params.metadata {
		if err := writeMetadata(env.Stdout, doc); err != nil {
			return err
		}
	}

	printStatus(env, inv.params, inv.inputs[0], output, env.Now().Sub(start))
	return nil
}

// writeHTML writes a document, creating the parent directory if needed.
func writeHTML(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrOutputDirectory, err)
		}
	}
	// #nosec G306 -- HTML files are meant to be readable
	if err := os.WriteFile(path, []byte(content), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}
	return nil
}

// printStatus reports a written file on stderr, leaving stdout for data.
func printStatus(env *Environment, p *renderParams, input, output string, elapsed time.Duration) {
	switch {
	case p.quiet:
	case p.verbose:
		fmt.Fprintf(env.Stderr, "%s -> %s (%v)\n", input, output, elapsed.Round(time.Millisecond))
	default:
		fmt.Fprintf(env.Stderr, "Created %s\n", output)
	}
}

// documentSummary is the YAML form of a document's metadata.
type documentSummary struct {
	Title       string           `yaml:"title"`
	Description string           `yaml:"description,omitempty"`
	Keywords    string           `yaml:"keywords,omitempty"`
	Outline     []outlineSummary `yaml:"outline,omitempty"`
}

// outlineSummary is one outline entry in a documentSummary.
type outlineSummary struct {
	Level  int    `yaml:"level"`
	Text   string `yaml:"text"`
	Anchor string `yaml:"anchor"`
}

// summarize converts a rendered document to its YAML summary.
func summarize(doc *mdview.RenderedDocument) documentSummary {
	s := documentSummary{
		Title:       doc.Metadata.Title,
		Description: doc.Metadata.Description,
		Keywords:    doc.Metadata.JoinedKeywords(),
	}
	for _, h := range doc.Outline() {
		s.Outline = append(s.Outline, outlineSummary{Level: h.Level, Text: h.Text, Anchor: h.Anchor})
	}
	return s
}

// writeMetadata writes the YAML summary of doc to w.
func writeMetadata(w io.Writer, doc *mdview.RenderedDocument) error {
	data, err := yamlutil.Marshal(summarize(doc))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteMetadata, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteMetadata, err)
	}
	return nil
}
