// Package hints provides actionable error hints for common CLI failures.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdview/internal/fileutil"
)

// configDirMarker identifies the per-user config directory among searched paths.
var configDirMarker = string(filepath.Separator) + "mdview" + string(filepath.Separator)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserLaunch returns hints for browser launch errors in "mdview view".
// Detects CI/Docker environment and suggests relevant environment variables.
func ForBrowserLaunch() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if inCI || IsInContainer() {
		hints = append(hints, "no display in CI/containers; use -o file.html instead of the viewer")
		if os.Getenv("ROD_NO_SANDBOX") != "1" {
			hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
		}
	}

	if os.Getenv("ROD_BROWSER_BIN") == "" && os.Getenv("MDVIEW_BROWSER_BIN") == "" {
		hints = append(hints, "set MDVIEW_BROWSER_BIN to use a specific Chrome")
	}

	return formatHints(hints)
}

// ForEncoding returns a hint for sources that are not valid UTF-8.
func ForEncoding() string {
	return format("re-save the file as UTF-8 (e.g. iconv -f latin1 -t utf-8 in.md > out.md)")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating the first per-user path among searchedPaths.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, configDirMarker) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + ", or a path to a .css file")
}

// ForRemoteSource returns a hint for URLs given where a local file is required.
func ForRemoteSource() string {
	return format("download the file first; only local paths and file:// URLs are rendered")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
