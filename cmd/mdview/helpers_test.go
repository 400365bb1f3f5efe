package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Environment and viewer fakes
// ---------------------------------------------------------------------------

// fakeViewer records the documents it was asked to show.
type fakeViewer struct {
	mu       sync.Mutex
	paths    []string
	contents []string
	err      error
}

func (v *fakeViewer) View(_ context.Context, htmlPath string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.paths = append(v.paths, htmlPath)
	// The temp file only exists while View runs.
	data, err := os.ReadFile(htmlPath) // #nosec G304 -- test temp file
	if err == nil {
		v.contents = append(v.contents, string(data))
	}
	return v.err
}

// testEnv bundles an Environment with its captured output.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	viewer *fakeViewer
}

var fixedNow = time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

func newTestEnv() *testEnv {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	viewer := &fakeViewer{}
	return &testEnv{
		Environment: &Environment{
			Now:    func() time.Time { return fixedNow },
			Stdout: stdout,
			Stderr: stderr,
			Viewer: viewer,
		},
		stdout: stdout,
		stderr: stderr,
		viewer: viewer,
	}
}

// writeTestFile writes content to dir/name, creating parent directories.
func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// readTestFile returns the content of path or fails the test.
func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) // #nosec G304 -- test path
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
