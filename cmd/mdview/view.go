package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-mdview/internal/fileutil"
	"github.com/alnah/go-mdview/internal/process"
)

// Sentinel errors for the viewer.
var (
	ErrBrowserLaunch = errors.New("failed to launch browser")
	ErrViewerPage    = errors.New("failed to open document in browser")
)

// Viewer displays a rendered HTML file and blocks until the user is done.
type Viewer interface {
	View(ctx context.Context, htmlPath string) error
}

// Compile-time interface implementation check.
var _ Viewer = (*rodViewer)(nil)

// rodViewer opens documents in a visible Chrome window through go-rod.
// Rod downloads Chromium on first run if no browser is found.
type rodViewer struct {
	browserBin string
}

// newRodViewer creates a rodViewer. An empty browserBin falls back to
// ROD_BROWSER_BIN, then to rod's browser lookup.
func newRodViewer(browserBin string) *rodViewer {
	if browserBin == "" {
		browserBin = os.Getenv("ROD_BROWSER_BIN")
	}
	return &rodViewer{browserBin: browserBin}
}

// View opens htmlPath in a new window and returns when the window is
// closed, the browser exits, or ctx is cancelled.
func (v *rodViewer) View(ctx context.Context, htmlPath string) error {
	l := launcher.New().Headless(false)

	if v.browserBin != "" {
		l = l.Bin(v.browserBin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("CI") == "true" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserLaunch, err)
	}
	defer func() {
		process.KillProcessGroup(l.PID())
		l.Kill()
	}()

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserLaunch, err)
	}
	defer func() { _ = browser.Close() }()

	if err := (proto.TargetSetDiscoverTargets{Discover: true}).Call(browser); err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserLaunch, err)
	}

	// Subscribe before opening the page so a fast close is not missed.
	// Callbacks only run once wait is called.
	var targetID proto.TargetTargetID
	wait := browser.Context(ctx).EachEvent(func(e *proto.TargetTargetDestroyed) bool {
		return e.TargetID == targetID
	})

	page, err := browser.Page(proto.TargetCreateTarget{URL: fileURL(htmlPath)})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrViewerPage, err)
	}
	targetID = page.TargetID

	closed := make(chan struct{})
	go func() {
		wait()
		close(closed)
	}()

	select {
	case <-closed:
	case <-ctx.Done():
	}
	return nil
}

// fileURL converts a local path to a file:// URL.
func fileURL(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	path = filepath.ToSlash(path)
	if len(path) > 0 && path[0] != '/' {
		path = "/" + path // Windows drive letter
	}
	return "file://" + path
}

// runView renders a Markdown file and opens it in the viewer.
func runView(ctx context.Context, args []string, env *Environment) error {
	inv, err := prepare(cmdView, args, env)
	if err != nil {
		return err
	}
	return viewInput(ctx, inv, env)
}

// viewInput renders the single input to a temporary file and views it.
// The temporary file is removed when the viewer returns.
func viewInput(ctx context.Context, inv *invocation, env *Environment) error {
	if len(inv.inputs) == 0 {
		return ErrNoInput
	}
	if len(inv.inputs) > 1 {
		return fmt.Errorf("%w: view takes one file, got %d", ErrUsage, len(inv.inputs))
	}

	start := env.Now()
	doc, err := inv.params.renderPath(inv.inputs[0])
	if err != nil {
		return err
	}

	path, cleanup, err := fileutil.WriteTempFile(doc.HTML, "html")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}
	defer cleanup()

	if inv.params.verbose {
		fmt.Fprintf(env.Stderr, "%s rendered in %v\n", inv.inputs[0], env.Now().Sub(start).Round(time.Millisecond))
	}
	if !inv.params.quiet {
		fmt.Fprintf(env.Stderr, "Viewing %s (close the window or press Ctrl+C to exit)\n", doc.Metadata.Title)
	}

	viewer := env.Viewer
	if viewer == nil {
		viewer = newRodViewer(inv.cfg.Viewer.BrowserBin)
	}
	return viewer.View(ctx, path)
}
