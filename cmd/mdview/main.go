package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-mdview/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Command names.
const (
	cmdRender  = "render"
	cmdExport  = "export"
	cmdView    = "view"
	cmdDoctor  = "doctor"
	cmdVersion = "version"
	cmdHelp    = "help"
)

var commands = []string{cmdRender, cmdExport, cmdView, cmdDoctor, cmdVersion, cmdHelp}

func main() {
	// Configure GOMAXPROCS with conditional logging. The returned error only
	// reports an invalid GOMAXPROCS env value, in which case runtime defaults apply.
	if hasVerboseFlag(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches args[1] to a command and returns the process exit code.
// A first argument that is a flag or a Markdown file selects "render".
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	warnUnknownEnvVars(env.Stderr)

	ctx, stop := notifyContext(context.Background())
	defer stop()

	name, rest := args[1], args[2:]
	if !isCommand(name) {
		if !strings.HasPrefix(name, "-") && !looksLikeMarkdown(name) {
			fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", name)
			printUsage(env.Stderr)
			return ExitUsage
		}
		name, rest = cmdRender, args[1:]
	}

	var err error
	switch name {
	case cmdRender:
		err = runRender(ctx, rest, env)
	case cmdExport:
		err = runExport(ctx, rest, env)
	case cmdView:
		err = runView(ctx, rest, env)
	case cmdDoctor:
		return runDoctorCmd(rest, env)
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "mdview %s\n", Version)
		return ExitSuccess
	case cmdHelp:
		return runHelp(rest, env)
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	}
	return exitCodeFor(err)
}

// isCommand reports whether s names a command (case sensitive).
func isCommand(s string) bool {
	return slices.Contains(commands, s)
}

// looksLikeMarkdown reports whether s has a Markdown file extension.
func looksLikeMarkdown(s string) bool {
	return fileutil.IsMarkdownPath(s)
}

// hasVerboseFlag scans raw args for -v/--verbose before flag parsing.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}
