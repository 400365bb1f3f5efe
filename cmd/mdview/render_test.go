package main

// Notes:
// - mergeFlags and optionsFor are pure and tested directly.
// - loadConfig is tested with explicit paths only; name lookup depends on
//   the user config directory and is covered in internal/config.

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	mdview "github.com/alnah/go-mdview"
	"github.com/alnah/go-mdview/internal/config"
)

// ---------------------------------------------------------------------------
// TestMergeFlags - CLI flags override config
// ---------------------------------------------------------------------------

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Render.FastModeThreshold = 1024
	cfg.CSS.Style = "default"

	mergeFlags(&renderFlags{
		passes: passFlags{noHighlight: true, noTOC: true, noFast: true, strict: true},
		assets: assetFlags{style: "plain", assetPath: "/assets"},
	}, cfg)

	want := config.DefaultConfig()
	want.Render = config.RenderConfig{StrictSanitize: true}
	want.CSS.Style = "plain"
	want.Assets.BasePath = "/assets"

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("mergeFlags() mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeFlags_NoFlagsKeepsConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.CSS.Style = "plain"
	mergeFlags(&renderFlags{}, cfg)

	if !cfg.Render.SyntaxHighlighting || !cfg.Render.TOC || cfg.CSS.Style != "plain" {
		t.Errorf("config changed without flags: %+v", cfg)
	}
}

// ---------------------------------------------------------------------------
// TestOptionsFor - Fast mode threshold
// ---------------------------------------------------------------------------

func TestOptionsFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		threshold int64
		forced    bool
		size      int64
		wantFast  bool
	}{
		{"disabled threshold", 0, false, 1 << 20, false},
		{"below threshold", 100, false, 99, false},
		{"at threshold", 100, false, 100, true},
		{"above threshold", 100, false, 5000, true},
		{"forced by flag", 0, true, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := &renderParams{
				passes:        mdview.RenderOptions{SyntaxHighlighting: true, TOCExtraction: true, FastMode: tt.forced},
				fastThreshold: tt.threshold,
			}
			got := p.optionsFor(tt.size)
			if got.FastMode != tt.wantFast {
				t.Errorf("optionsFor(%d).FastMode = %v, want %v", tt.size, got.FastMode, tt.wantFast)
			}
			if !got.SyntaxHighlighting || !got.TOCExtraction {
				t.Errorf("optionsFor(%d) cleared pass flags: %+v", tt.size, got)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - Config source selection
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	flagPath := writeTestFile(t, dir, "flag.yaml", "css:\n  style: plain\n")
	envPath := writeTestFile(t, dir, "env.yaml", "render:\n  toc: false\n")

	t.Run("defaults without config", func(t *testing.T) {
		t.Parallel()

		cfg, err := loadConfig("", &envConfig{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff(config.DefaultConfig(), cfg); diff != "" {
			t.Errorf("loadConfig() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("flag wins over env", func(t *testing.T) {
		t.Parallel()

		cfg, err := loadConfig(flagPath, &envConfig{ConfigPath: envPath})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.CSS.Style != "plain" || !cfg.Render.TOC {
			t.Errorf("config = %+v, want flag file values", cfg)
		}
	})

	t.Run("env used without flag", func(t *testing.T) {
		t.Parallel()

		cfg, err := loadConfig("", &envConfig{ConfigPath: envPath})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Render.TOC {
			t.Error("TOC = true, want false from env config")
		}
	})

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()

		_, err := loadConfig(filepath.Join(dir, "missing.yaml"), &envConfig{})
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestSummarize - Metadata YAML view
// ---------------------------------------------------------------------------

func TestSummarize(t *testing.T) {
	t.Parallel()

	doc := &mdview.RenderedDocument{
		Metadata: mdview.RenderMetadata{
			Title:       "Guide",
			Description: "Intro text.",
			Keywords:    []string{"go", "html"},
		},
		Headings: []mdview.HeadingItem{
			{Level: 1, Text: "Guide", Anchor: "guide"},
			{Level: 5, Text: "Deep", Anchor: "deep"},
		},
	}

	want := documentSummary{
		Title:       "Guide",
		Description: "Intro text.",
		Keywords:    "go, html",
		Outline:     []outlineSummary{{Level: 1, Text: "Guide", Anchor: "guide"}},
	}
	if diff := cmp.Diff(want, summarize(doc)); diff != "" {
		t.Errorf("summarize() mismatch (-want +got):\n%s", diff)
	}
}
