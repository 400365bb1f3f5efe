package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdview <command> [flags] [args]")
	fmt.Fprintln(w, "       mdview <file.md> [flags]          (same as: mdview render)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Render one Markdown file to HTML (file, stdout, or viewer)")
	fmt.Fprintln(w, "  export     Render files or directories to .html files in parallel")
	fmt.Fprintln(w, "  view       Render a Markdown file and open it in a browser window")
	fmt.Fprintln(w, "  doctor     Check the browser and environment used by view")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdview help <command>' for details on a specific command.")
}

// printCommandUsage prints usage for render, export or view.
func printCommandUsage(w io.Writer, name string) {
	switch name {
	case cmdRender:
		fmt.Fprintln(w, "Usage: mdview render <file.md> [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Render a Markdown file to a standalone HTML document.")
		fmt.Fprintln(w, "Without -o the document opens in a browser window.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Output:")
		fmt.Fprintln(w, "  -o, --output <path>       Output .html file, or - for stdout")
		fmt.Fprintln(w, "  -m, --metadata            Print title, description, keywords as YAML")
	case cmdExport:
		fmt.Fprintln(w, "Usage: mdview export <input>... [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Render Markdown files to .html files. Directories are searched")
		fmt.Fprintln(w, "recursively; output mirrors the input tree.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Output:")
		fmt.Fprintln(w, "  -o, --output <path>       Output directory (or .html file for one input)")
		fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
		fmt.Fprintln(w, "  -m, --metadata            Write <name>.yaml metadata next to each file")
	case cmdView:
		fmt.Fprintln(w, "Usage: mdview view <file.md> [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Render a Markdown file and open it in a Chrome window.")
		fmt.Fprintln(w, "Returns when the window is closed or on Ctrl+C.")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --no-highlight        Disable syntax highlighting")
	fmt.Fprintln(w, "      --no-toc              Disable heading collection")
	fmt.Fprintln(w, "      --fast                Fast mode (implies --no-highlight --no-toc)")
	fmt.Fprintln(w, "      --no-fast             Ignore render.fastModeThreshold")
	fmt.Fprintln(w, "      --strict              Apply the allowlist sanitizer too")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <name|path>   Built-in style name or CSS file")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with styles/ and templates/ overrides")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case cmdRender, cmdExport, cmdView:
		printCommandUsage(env.Stdout, args[0])
	case cmdDoctor:
		fmt.Fprintln(env.Stdout, "Usage: mdview doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check Chrome availability and the environment used by 'mdview view'.")
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: mdview version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: mdview help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
