package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// passFlags toggles the optional render passes.
type passFlags struct {
	noHighlight bool
	noTOC       bool
	fast        bool // force fast mode
	noFast      bool // ignore render.fastModeThreshold
	strict      bool // add the allowlist sanitizer
}

// assetFlags holds stylesheet and asset directory flags.
type assetFlags struct {
	style     string // name, CSS file path
	assetPath string // override asset directory
}

// renderFlags holds all flags for the render, export and view commands.
type renderFlags struct {
	common   commonFlags
	output   string
	workers  int
	metadata bool
	passes   passFlags
	assets   assetFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addPassFlags adds render pass flags to a FlagSet.
func addPassFlags(fs *flag.FlagSet, f *passFlags) {
	fs.BoolVar(&f.noHighlight, "no-highlight", false, "disable syntax highlighting")
	fs.BoolVar(&f.noTOC, "no-toc", false, "disable heading collection")
	fs.BoolVar(&f.fast, "fast", false, "fast mode: skip highlighting and heading collection")
	fs.BoolVar(&f.noFast, "no-fast", false, "never switch to fast mode for large files")
	fs.BoolVar(&f.strict, "strict", false, "apply the allowlist sanitizer after the default one")
}

// addAssetFlags adds asset-related flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// newFlagSet registers the flags of command name into a new FlagSet.
// Output flags exist for render and export; workers only for export.
func newFlagSet(name string, f *renderFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	switch name {
	case cmdRender:
		fs.StringVarP(&f.output, "output", "o", "", `output file ("-" = stdout, empty = open viewer)`)
		fs.BoolVarP(&f.metadata, "metadata", "m", false, "print document metadata as YAML")
	case cmdExport:
		fs.StringVarP(&f.output, "output", "o", "", "output directory or .html file")
		fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
		fs.BoolVarP(&f.metadata, "metadata", "m", false, "write a .yaml metadata file next to each output")
	}

	addCommonFlags(fs, &f.common)
	addPassFlags(fs, &f.passes)
	addAssetFlags(fs, &f.assets)

	return fs
}

// parseRenderFlags parses command flags and returns positional args.
// Parse errors are wrapped with ErrUsage and reported by the caller;
// -h prints the command usage to stdout and returns flag.ErrHelp.
func parseRenderFlags(name string, args []string, stdout io.Writer) (*renderFlags, []string, error) {
	f := &renderFlags{}
	fs := newFlagSet(name, f)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printCommandUsage(stdout, name)
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if f.passes.fast && f.passes.noFast {
		return nil, nil, fmt.Errorf("%w: --fast and --no-fast are mutually exclusive", ErrUsage)
	}
	if f.common.quiet && f.common.verbose {
		return nil, nil, fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrUsage)
	}

	return f, fs.Args(), nil
}
