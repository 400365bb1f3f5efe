package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdview/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("file must have a Markdown extension (.md, .markdown)")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// htmlExt is the extension of exported documents.
const htmlExt = ".html"

// FileToExport represents a single file to process.
type FileToExport struct {
	InputPath  string
	OutputPath string
}

// discoverFiles expands inputs into files to export. Directories are walked
// recursively for Markdown files; files must carry a Markdown extension.
// An output ending in .html is only valid for a single input file.
func discoverFiles(inputs []string, outputDir string) ([]FileToExport, error) {
	var files []FileToExport
	for _, input := range inputs {
		found, err := discoverInput(input, outputDir)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}

	if isHTMLPath(outputDir) && len(files) > 1 {
		return nil, fmt.Errorf("%w: -o %s names one file but %d inputs were found", ErrUsage, outputDir, len(files))
	}
	return files, nil
}

// discoverInput finds the files to export for one input path.
func discoverInput(inputPath, outputDir string) ([]FileToExport, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		outPath := resolveOutputPath(inputPath, outputDir, "")
		return []FileToExport{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToExport
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.IsMarkdownPath(path) {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath)
		files = append(files, FileToExport{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the HTML output path for a Markdown file.
// With a base input directory the output mirrors the input tree.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base+htmlExt)
	}

	if isHTMLPath(outputDir) {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			relDir := filepath.Dir(relPath)
			return filepath.Join(outputDir, relDir, base+htmlExt)
		}
	}

	return filepath.Join(outputDir, base+htmlExt)
}

// validateMarkdownExtension checks that the file has a Markdown extension.
func validateMarkdownExtension(path string) error {
	if !fileutil.IsMarkdownPath(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// isHTMLPath reports whether path names an .html file.
func isHTMLPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), htmlExt)
}

// metadataPath returns the sidecar YAML path for an HTML output path.
func metadataPath(htmlPath string) string {
	return strings.TrimSuffix(htmlPath, filepath.Ext(htmlPath)) + ".yaml"
}
