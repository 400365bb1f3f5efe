package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-mdview/internal/config"
)

// envPrefix marks environment variables read by mdview.
const envPrefix = "MDVIEW_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath    string // MDVIEW_CONFIG: config file name or path
	Style         string // MDVIEW_STYLE: CSS style name or path
	AssetPath     string // MDVIEW_ASSET_PATH: custom asset directory
	OutputDir     string // MDVIEW_OUTPUT_DIR: default export directory
	BrowserBin    string // MDVIEW_BROWSER_BIN: browser for "mdview view"
	Workers       int    // MDVIEW_WORKERS: parallel export workers
	FastThreshold int64  // MDVIEW_FAST_THRESHOLD: fast mode size threshold in bytes
}

// knownEnvVars lists valid MDVIEW_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDVIEW_CONFIG":         true,
	"MDVIEW_STYLE":          true,
	"MDVIEW_ASSET_PATH":     true,
	"MDVIEW_OUTPUT_DIR":     true,
	"MDVIEW_BROWSER_BIN":    true,
	"MDVIEW_WORKERS":        true,
	"MDVIEW_FAST_THRESHOLD": true,
	"MDVIEW_CONTAINER":      true, // read by doctor
}

// loadEnvConfig reads configuration from environment variables.
// Malformed numbers are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MDVIEW_CONFIG"),
		Style:      os.Getenv("MDVIEW_STYLE"),
		AssetPath:  os.Getenv("MDVIEW_ASSET_PATH"),
		OutputDir:  os.Getenv("MDVIEW_OUTPUT_DIR"),
		BrowserBin: os.Getenv("MDVIEW_BROWSER_BIN"),
	}

	if workers := os.Getenv("MDVIEW_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	if threshold := os.Getenv("MDVIEW_FAST_THRESHOLD"); threshold != "" {
		if n, err := strconv.ParseInt(threshold, 10, 64); err == nil && n > 0 {
			cfg.FastThreshold = n
		}
	}

	return cfg
}

// warnUnknownEnvVars writes warnings for unrecognized MDVIEW_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" && cfg.CSS.Style == "" {
		cfg.CSS.Style = env.Style
	}
	if env.AssetPath != "" && cfg.Assets.BasePath == "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.BrowserBin != "" && cfg.Viewer.BrowserBin == "" {
		cfg.Viewer.BrowserBin = env.BrowserBin
	}
	if env.FastThreshold > 0 && cfg.Render.FastModeThreshold == 0 {
		cfg.Render.FastModeThreshold = env.FastThreshold
	}
}
