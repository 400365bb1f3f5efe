package assets

import (
	"embed"
	"io/fs"
)

// builtin holds the stylesheets and templates compiled into the binary.
//
//go:embed styles/*.css templates/*.html
var builtin embed.FS

// EmbeddedLoader loads the built-in assets.
type EmbeddedLoader struct {
	fsys fs.FS
}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{fsys: builtin}
}

// LoadStyle loads a built-in stylesheet.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	return e.load(styleKind, name)
}

// LoadTemplate loads a built-in document template.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	return e.load(templateKind, name)
}

func (e *EmbeddedLoader) load(kind assetKind, name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	content, err := fs.ReadFile(e.fsys, kind.file(name))
	if err != nil {
		return "", kind.missing(name)
	}
	return string(content), nil
}

// StyleNames lists the built-in style names in lexical order.
func (e *EmbeddedLoader) StyleNames() []string {
	entries, err := fs.ReadDir(e.fsys, styleKind.dir)
	if err != nil {
		return nil
	}
	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		files = append(files, entry.Name())
	}
	return styleKind.namesFrom(files)
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
