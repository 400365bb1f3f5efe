package assets

import "slices"

// AssetResolver layers a user asset directory over the built-in assets.
// Assets missing from the user directory come from the built-in set;
// invalid names and read errors are returned as is.
type AssetResolver struct {
	layers []AssetLoader // highest precedence first
}

// NewAssetResolver creates an AssetResolver. An empty customBasePath
// resolves built-in assets only. Returns ErrInvalidBasePath when
// customBasePath is set but is not a readable directory.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	r := &AssetResolver{}

	if customBasePath != "" {
		custom, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		r.layers = append(r.layers, custom)
	}
	r.layers = append(r.layers, NewEmbeddedLoader())

	return r, nil
}

// LoadStyle loads a stylesheet from the first layer that has it.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return r.first(func(l AssetLoader) (string, error) { return l.LoadStyle(name) })
}

// LoadTemplate loads a template from the first layer that has it.
func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	return r.first(func(l AssetLoader) (string, error) { return l.LoadTemplate(name) })
}

func (r *AssetResolver) first(load func(AssetLoader) (string, error)) (string, error) {
	var err error
	for _, layer := range r.layers {
		var content string
		content, err = load(layer)
		if err == nil || !isNotFound(err) {
			return content, err
		}
	}
	return "", err
}

// StyleNames lists the style names of every layer, sorted and deduplicated.
func (r *AssetResolver) StyleNames() []string {
	var names []string
	for _, layer := range r.layers {
		names = append(names, layer.StyleNames()...)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)
