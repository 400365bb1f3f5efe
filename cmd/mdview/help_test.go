package main

import (
	"strings"
	"testing"
)

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"overview", nil, ExitSuccess, "Commands:", ""},
		{"render", []string{"render"}, ExitSuccess, "-o, --output <path>", ""},
		{"export", []string{"export"}, ExitSuccess, "-w, --workers <n>", ""},
		{"view", []string{"view"}, ExitSuccess, "Chrome window", ""},
		{"doctor", []string{"doctor"}, ExitSuccess, "mdview doctor [--json]", ""},
		{"version", []string{"version"}, ExitSuccess, "Usage: mdview version", ""},
		{"unknown", []string{"convert"}, ExitUsage, "", "Unknown command: convert"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv()
			code := runHelp(tt.args, env.Environment)

			if code != tt.wantCode {
				t.Errorf("runHelp(%v) = %d, want %d", tt.args, code, tt.wantCode)
			}
			if !strings.Contains(env.stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want %q", env.stdout.String(), tt.wantStdout)
			}
			if !strings.Contains(env.stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want %q", env.stderr.String(), tt.wantStderr)
			}
		})
	}
}
