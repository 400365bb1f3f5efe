package mdview

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-mdview/internal/fileutil"
)

// ReadSource reads a local Markdown file as UTF-8 text. A leading byte order
// mark is removed. file:// URLs are accepted; other URLs are rejected with
// ErrInvalidSource.
func ReadSource(location string) (string, error) {
	path, err := localPath(location)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path) // #nosec G304 -- caller-provided source file
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadableSource, err)
	}

	data = bytes.TrimPrefix(data, []byte(byteOrderMark))
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedEncoding, path)
	}
	return string(data), nil
}

// RenderFile reads and renders a local Markdown file with the default
// renderer. Relative image and link paths resolve against the file's
// directory, and the file name without extension is the fallback title.
func RenderFile(location string, opts RenderOptions) (*RenderedDocument, error) {
	r, err := defaultRenderer()
	if err != nil {
		return nil, err
	}
	return r.RenderFile(location, opts)
}

// RenderFile reads and renders a local Markdown file. See the package-level
// RenderFile for path and title handling.
func (r *Renderer) RenderFile(location string, opts RenderOptions) (*RenderedDocument, error) {
	path, err := localPath(location)
	if err != nil {
		return nil, err
	}

	markdown, err := ReadSource(path)
	if err != nil {
		return nil, err
	}

	sourceDir := filepath.Dir(path)
	if abs, absErr := filepath.Abs(sourceDir); absErr == nil {
		sourceDir = abs
	}

	return r.Render(Input{
		Markdown:      markdown,
		Options:       opts,
		FallbackTitle: titleFromPath(path),
		SourceDir:     sourceDir,
	})
}

// localPath converts a file location to a filesystem path.
func localPath(location string) (string, error) {
	if strings.TrimSpace(location) == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidSource)
	}
	if path, ok := fileutil.FileURLToPath(location); ok {
		return path, nil
	}
	if fileutil.IsURL(location) {
		return "", fmt.Errorf("%w: %q is not a local file", ErrInvalidSource, location)
	}
	return location, nil
}

// titleFromPath returns the base name without its extension.
func titleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
