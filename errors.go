package mdview

import (
	"errors"

	"github.com/alnah/go-mdview/internal/assets"
	"github.com/alnah/go-mdview/internal/pipeline"
)

// Sentinel errors for source loading.
var (
	// ErrInvalidSource indicates a non-local resource was given where a local
	// file was required.
	ErrInvalidSource = errors.New("invalid source location")

	// ErrUnreadableSource indicates an I/O failure reading the source file.
	ErrUnreadableSource = errors.New("unreadable source")

	// ErrUnsupportedEncoding indicates the source bytes are not valid UTF-8.
	ErrUnsupportedEncoding = errors.New("unsupported encoding: source is not valid UTF-8")
)

// Sentinel errors for rendering.
var (
	ErrHTMLConversion   = pipeline.ErrHTMLConversion
	ErrDocumentRender   = pipeline.ErrDocumentRender
	ErrInternal         = errors.New("internal render error")
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
