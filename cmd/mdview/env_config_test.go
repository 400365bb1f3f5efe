package main

// Notes:
// - Tests use t.Setenv() which prevents t.Parallel().
// - warnUnknownEnvVars scans the whole environment, so only the presence or
//   absence of the injected variable's warning is checked.

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-mdview/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Run("all variables", func(t *testing.T) {
		t.Setenv("MDVIEW_CONFIG", "/path/to/config.yaml")
		t.Setenv("MDVIEW_STYLE", "plain")
		t.Setenv("MDVIEW_ASSET_PATH", "/assets")
		t.Setenv("MDVIEW_OUTPUT_DIR", "/out")
		t.Setenv("MDVIEW_BROWSER_BIN", "/usr/bin/chromium")
		t.Setenv("MDVIEW_WORKERS", "4")
		t.Setenv("MDVIEW_FAST_THRESHOLD", "1048576")

		cfg := loadEnvConfig()

		want := envConfig{
			ConfigPath:    "/path/to/config.yaml",
			Style:         "plain",
			AssetPath:     "/assets",
			OutputDir:     "/out",
			BrowserBin:    "/usr/bin/chromium",
			Workers:       4,
			FastThreshold: 1048576,
		}
		if *cfg != want {
			t.Errorf("loadEnvConfig() = %+v, want %+v", *cfg, want)
		}
	})

	t.Run("malformed numbers ignored", func(t *testing.T) {
		t.Setenv("MDVIEW_WORKERS", "many")
		t.Setenv("MDVIEW_FAST_THRESHOLD", "-5")

		cfg := loadEnvConfig()

		if cfg.Workers != 0 {
			t.Errorf("Workers = %d, want 0", cfg.Workers)
		}
		if cfg.FastThreshold != 0 {
			t.Errorf("FastThreshold = %d, want 0", cfg.FastThreshold)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Run("unknown variable warns", func(t *testing.T) {
		t.Setenv("MDVIEW_STYEL", "plain")

		var buf bytes.Buffer
		warnUnknownEnvVars(&buf)

		if !strings.Contains(buf.String(), "MDVIEW_STYEL") {
			t.Errorf("output = %q, want warning for MDVIEW_STYEL", buf.String())
		}
	})

	t.Run("known variable is silent", func(t *testing.T) {
		t.Setenv("MDVIEW_STYLE", "plain")

		var buf bytes.Buffer
		warnUnknownEnvVars(&buf)

		if strings.Contains(buf.String(), "MDVIEW_STYLE ") {
			t.Errorf("output = %q, want no warning for MDVIEW_STYLE", buf.String())
		}
	})
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Env fills only unset config values
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	env := &envConfig{
		Style:         "plain",
		AssetPath:     "/assets",
		OutputDir:     "/out",
		BrowserBin:    "/bin/chrome",
		FastThreshold: 500,
	}

	t.Run("fills empty config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		applyEnvConfig(env, cfg)

		if cfg.CSS.Style != "plain" || cfg.Assets.BasePath != "/assets" ||
			cfg.Output.DefaultDir != "/out" || cfg.Viewer.BrowserBin != "/bin/chrome" ||
			cfg.Render.FastModeThreshold != 500 {
			t.Errorf("config = %+v, want env values applied", cfg)
		}
	})

	t.Run("config file values win", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.CSS.Style = "default"
		cfg.Render.FastModeThreshold = 42
		applyEnvConfig(env, cfg)

		if cfg.CSS.Style != "default" {
			t.Errorf("Style = %q, want default", cfg.CSS.Style)
		}
		if cfg.Render.FastModeThreshold != 42 {
			t.Errorf("FastModeThreshold = %d, want 42", cfg.Render.FastModeThreshold)
		}
	})

	t.Run("empty env changes nothing", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		applyEnvConfig(&envConfig{}, cfg)

		if *cfg != *config.DefaultConfig() {
			t.Errorf("config = %+v, want defaults", cfg)
		}
	})
}
