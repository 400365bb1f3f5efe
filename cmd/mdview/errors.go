package main

import (
	"errors"

	mdview "github.com/alnah/go-mdview"
	"github.com/alnah/go-mdview/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage           = errors.New("invalid usage")
	ErrNoInput         = errors.New("no input specified")
	ErrWriteHTML       = errors.New("failed to write HTML file")
	ErrWriteMetadata   = errors.New("failed to write metadata file")
	ErrOutputDirectory = errors.New("failed to create output directory")
)

// hintFor returns an actionable hint for err, or "" when none applies.
// Config and style lookup failures carry their hint in the error itself
// since the hint depends on the invocation's config.
func hintFor(err error) string {
	switch {
	case errors.Is(err, mdview.ErrUnsupportedEncoding):
		return hints.ForEncoding()
	case errors.Is(err, mdview.ErrInvalidSource):
		return hints.ForRemoteSource()
	case errors.Is(err, ErrOutputDirectory):
		return hints.ForOutputDirectory()
	case errors.Is(err, ErrBrowserLaunch):
		return hints.ForBrowserLaunch()
	}
	return ""
}
