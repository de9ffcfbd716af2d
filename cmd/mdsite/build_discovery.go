package main

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/alnah/go-mdsite/internal/fileutil"
)

// Sentinel errors for page discovery.
var (
	ErrNoInput         = errors.New("content directory not found")
	ErrInvalidPagePath = errors.New("invalid page path")
)

// markdownExtensions are the source extensions picked up by discovery.
var markdownExtensions = []string{".md", ".markdown"}

// pageExtension replaces the source extension in the output tree.
const pageExtension = "html"

// PageToBuild pairs a Markdown source with the HTML page it produces.
type PageToBuild struct {
	InputPath  string
	OutputPath string
}

// discoverPages walks contentDir and maps every Markdown file to its page
// under outputDir, mirroring the directory structure. The output directory
// is skipped when it lies inside contentDir. Pages are returned in walk
// (lexical) order.
func discoverPages(contentDir, outputDir string) ([]PageToBuild, error) {
	if !fileutil.DirExists(contentDir) {
		return nil, fmt.Errorf("%w: %s", ErrNoInput, contentDir)
	}

	outAbs, err := filepath.Abs(outputDir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", outputDir, err)
	}

	var pages []PageToBuild
	err = filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if abs, err := filepath.Abs(path); err == nil && abs == outAbs {
				return filepath.SkipDir
			}
			return nil
		}
		if !isMarkdownFile(path) {
			return nil
		}
		outPath, err := resolvePagePath(path, contentDir, outputDir)
		if err != nil {
			return err
		}
		pages = append(pages, PageToBuild{InputPath: path, OutputPath: outPath})
		return nil
	})

	return pages, err
}

// resolvePagePath returns the HTML page path for a Markdown source.
// "content/blog/post.md" under "docs" becomes "docs/blog/post.html".
func resolvePagePath(inputPath, contentDir, outputDir string) (string, error) {
	rel, err := filepath.Rel(contentDir, inputPath)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidPagePath, inputPath, err)
	}
	page, err := fileutil.ReplaceExtension(rel, pageExtension)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidPagePath, inputPath, err)
	}
	return filepath.Join(outputDir, page), nil
}

// isMarkdownFile reports whether path has a Markdown extension.
func isMarkdownFile(path string) bool {
	return slices.Contains(markdownExtensions, filepath.Ext(path))
}
