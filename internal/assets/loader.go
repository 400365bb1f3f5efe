package assets

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// AssetLoader loads stylesheets and document templates by name.
// Names carry no extension and no path components.
type AssetLoader interface {
	LoadStyle(name string) (string, error)    // ErrStyleNotFound, ErrInvalidAssetName
	LoadTemplate(name string) (string, error) // ErrTemplateNotFound, ErrInvalidAssetName
	StyleNames() []string
}

// assetKind describes where one kind of asset lives under an asset root.
type assetKind struct {
	dir      string
	ext      string
	notFound error
}

var (
	styleKind    = assetKind{dir: "styles", ext: ".css", notFound: ErrStyleNotFound}
	templateKind = assetKind{dir: "templates", ext: ".html", notFound: ErrTemplateNotFound}
)

// file returns the slash-separated path of name relative to the asset root.
func (k assetKind) file(name string) string {
	return k.dir + "/" + name + k.ext
}

// missing returns the not-found error for name.
func (k assetKind) missing(name string) error {
	return fmt.Errorf("%w: %q", k.notFound, name)
}

// namesFrom strips the kind's extension from directory entries, skipping
// other files, and returns the names sorted.
func (k assetKind) namesFrom(entries []string) []string {
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if name, ok := strings.CutSuffix(entry, k.ext); ok && ValidateAssetName(name) == nil {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// isNotFound reports whether err means the asset does not exist.
func isNotFound(err error) bool {
	return errors.Is(err, ErrStyleNotFound) || errors.Is(err, ErrTemplateNotFound)
}
