// Package assets provides the stylesheets and the document template used to
// assemble rendered HTML.
//
// Built-in assets are embedded at compile time: the "default" and "plain"
// styles and the "document" template. A user asset directory can override
// any of them by name:
//
//	{root}/
//	├── styles/{name}.css
//	└── templates/document.html
//
// AssetResolver looks in the user directory first and falls back to the
// built-in set for anything missing there. Asset names are single path
// segments; FilesystemLoader resolves symlinks and refuses files outside
// its root.
//
// The document template receives Title, Description, Keywords, CSS, Body and
// SearchableText fields.
package assets
