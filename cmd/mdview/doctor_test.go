package main

// Notes:
// - runDoctorCmd output depends on the host (browser, display, container);
//   only structure and status/exit-code consistency are asserted.
// - printDoctorResult and statusFor are tested with fixed results.
// - isContainer tests use t.Setenv() and cannot run in parallel.

import (
	"bytes"
	"encoding/json"
	"runtime"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_JSONOutput - JSON structure and exit code
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_JSONOutput(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	exitCode := runDoctorCmd([]string{"--json"}, env.Environment)

	var result doctorResult
	if err := json.Unmarshal(env.stdout.Bytes(), &result); err != nil {
		t.Fatalf("Invalid JSON output: %v\nOutput was: %s", err, env.stdout.String())
	}

	if result.Env.OS != runtime.GOOS || result.Env.Arch != runtime.GOARCH {
		t.Errorf("platform = %s/%s, want %s/%s", result.Env.OS, result.Env.Arch, runtime.GOOS, runtime.GOARCH)
	}

	switch result.Status {
	case "errors":
		if exitCode != ExitGeneral {
			t.Errorf("exit code = %d for errors status, want %d", exitCode, ExitGeneral)
		}
	case "ready", "warnings":
		if exitCode != ExitSuccess {
			t.Errorf("exit code = %d for %s status, want %d", exitCode, result.Status, ExitSuccess)
		}
	default:
		t.Errorf("invalid status %q", result.Status)
	}
}

// ---------------------------------------------------------------------------
// TestPrintDoctorResult - Human-readable output
// ---------------------------------------------------------------------------

func TestPrintDoctorResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result *doctorResult
		want   []string
	}{
		{
			name: "ready",
			result: &doctorResult{
				Status:  "ready",
				Browser: browserInfo{Found: true, Path: "/usr/bin/chromium", Source: "lookup", Version: "Chromium 120", Sandbox: true},
				Env:     envInfo{OS: "linux", Arch: "amd64", Display: true},
				System:  systemInfo{TempWritable: true},
			},
			want: []string{
				"mdview doctor",
				"[OK] Found at /usr/bin/chromium (lookup)",
				"[OK] Version: Chromium 120",
				"[OK] Sandbox: enabled",
				"[OK] Display: available",
				"Status: Ready to view",
			},
		},
		{
			name: "warnings",
			result: &doctorResult{
				Status:   "warnings",
				Env:      envInfo{OS: "linux", Arch: "arm64", Container: true, ContainerHint: "/.dockerenv"},
				System:   systemInfo{TempWritable: true},
				Warnings: []string{"No display detected"},
			},
			want: []string{
				"[WARN] Not found",
				"[OK] Container: detected (/.dockerenv)",
				"[WARN] Display: not detected",
				"[WARN] No display detected",
				"Status: Ready with warnings",
			},
		},
		{
			name: "errors",
			result: &doctorResult{
				Status: "errors",
				Env:    envInfo{OS: "linux", Arch: "amd64"},
				Errors: []string{"Temp directory not writable: /tmp"},
			},
			want: []string{
				"[ERROR] Temp directory: not writable",
				"[ERROR] Temp directory not writable: /tmp",
				"Status: Not ready",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			printDoctorResult(&buf, tt.result)

			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output missing %q:\n%s", want, buf.String())
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestStatusFor - Final status
// ---------------------------------------------------------------------------

func TestStatusFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result doctorResult
		want   string
	}{
		{"clean", doctorResult{}, "ready"},
		{"warning", doctorResult{Warnings: []string{"w"}}, "warnings"},
		{"error wins", doctorResult{Warnings: []string{"w"}, Errors: []string{"e"}}, "errors"},
	}

	for _, tt := range tests {
		if got := statusFor(&tt.result); got != tt.want {
			t.Errorf("%s: statusFor() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestIsContainer - Explicit override
// ---------------------------------------------------------------------------

func TestIsContainer_Override(t *testing.T) {
	t.Setenv("MDVIEW_CONTAINER", "1")

	got, hint := isContainer()
	if !got || hint != "MDVIEW_CONTAINER=1" {
		t.Errorf("isContainer() = %v, %q, want true, MDVIEW_CONTAINER=1", got, hint)
	}
}

func TestConfiguredBrowser(t *testing.T) {
	t.Setenv("ROD_BROWSER_BIN", "/opt/rod/chrome")
	t.Setenv("MDVIEW_BROWSER_BIN", "/opt/mdview/chrome")

	path, source := configuredBrowser()
	if path != "/opt/mdview/chrome" || source != "MDVIEW_BROWSER_BIN" {
		t.Errorf("configuredBrowser() = %q, %q, want MDVIEW_BROWSER_BIN value", path, source)
	}
}
