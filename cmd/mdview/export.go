package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	mdview "github.com/alnah/go-mdview"
)

// ExportResult holds the outcome of a single export.
type ExportResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// runExport renders files and directories to .html files in parallel.
func runExport(ctx context.Context, args []string, env *Environment) error {
	inv, err := prepare(cmdExport, args, env)
	if err != nil {
		return err
	}

	// Validate worker count early
	if err := validateWorkers(inv.flags.workers); err != nil {
		return err
	}

	if len(inv.inputs) == 0 {
		return ErrNoInput
	}

	outputDir := resolveOutputDir(inv.flags.output, inv.cfg.Output.DefaultDir)

	files, err := discoverFiles(inv.inputs, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no Markdown files found in %v", ErrNoInput, inv.inputs)
	}

	workers := resolveWorkers(inv.flags.workers, inv.envCfg.Workers)
	results := exportBatch(ctx, workers, files, inv.params)

	failedCount := printResults(results, inv.params.quiet, inv.params.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d export(s) failed", failedCount)
	}
	return nil
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput, configDir string) string {
	if flagOutput != "" {
		return flagOutput
	}
	return configDir
}

// exportBatch processes files concurrently with at most workers goroutines.
// Results keep the order of files.
func exportBatch(ctx context.Context, workers int, files []FileToExport, params *renderParams) []ExportResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := max(1, min(workers, len(files)))

	results := make([]ExportResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ExportResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = exportFile(files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// exportFile renders a single file and writes its outputs.
func exportFile(f FileToExport, params *renderParams) ExportResult {
	start := time.Now()
	result := ExportResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	doc, err := params.renderPath(f.InputPath)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if err := writeHTML(f.OutputPath, doc.HTML); err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if params.metadata {
		if err := writeMetadataFile(metadataPath(f.OutputPath), doc); err != nil {
			result.Err = err
		}
	}

	result.Duration = time.Since(start)
	return result
}

// writeMetadataFile writes the YAML summary of doc to path.
func writeMetadataFile(path string, doc *mdview.RenderedDocument) error {
	f, err := os.Create(path) // #nosec G304 -- derived from the output path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteMetadata, err)
	}
	if err := writeMetadata(f, doc); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteMetadata, err)
	}
	return nil
}

// ResultSummary holds the count of succeeded and failed exports.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed exports.
func countResults(results []ExportResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs export results and returns the failure count.
func printResults(results []ExportResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hintFor(r.Err))
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
