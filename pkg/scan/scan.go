// Package scan walks a project tree and collects its declared dependencies
// per ecosystem.
//
// Every directory level is checked against the registered manifest formats
// by exact filename; results from all levels are unioned, so a repo with a
// Python backend and an npm frontend reports both. Directories that hold
// installed artifacts rather than source (virtualenvs, node_modules, build
// output, VCS metadata) are never descended into.
package scan

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/matzehuels/readmerator/pkg/manifest"
	"github.com/matzehuels/readmerator/pkg/manifest/npm"
	"github.com/matzehuels/readmerator/pkg/manifest/python"
)

// excludedDirs are never scanned: they contain other projects' manifests
// (installed dependencies, caches, build output), not this project's.
var excludedDirs = map[string]bool{
	".venv":         true,
	"venv":          true,
	"env":           true,
	".env":          true,
	"node_modules":  true,
	".git":          true,
	"__pycache__":   true,
	"build":         true,
	"dist":          true,
	".tox":          true,
	".pytest_cache": true,
	".mypy_cache":   true,
	"site-packages": true,
}

// DefaultFormats returns every manifest format the scanner recognizes.
func DefaultFormats() []manifest.Format {
	formats := make([]manifest.Format, 0, len(python.Formats)+len(npm.Formats))
	formats = append(formats, python.Formats...)
	formats = append(formats, npm.Formats...)
	return formats
}

// Options configure a scan.
type Options struct {
	// Recursive descends into subdirectories. When false only the root
	// directory's manifests are read.
	Recursive bool

	// MaxDepth bounds recursion: the root is depth 0 and directories
	// deeper than MaxDepth are not visited. Negative means unbounded.
	MaxDepth int

	// Formats overrides the manifest formats to look for. Nil means
	// DefaultFormats().
	Formats []manifest.Format
}

// Result maps each ecosystem to the sorted unique package names found
// for it. Ecosystems with no packages are absent.
type Result map[manifest.Ecosystem][]string

// Total returns the number of packages across all ecosystems.
func (r Result) Total() int {
	n := 0
	for _, names := range r {
		n += len(names)
	}
	return n
}

// Scan walks root and returns the dependencies declared by every manifest
// found. An unreadable root is an error; unreadable subdirectories and
// malformed manifests are skipped silently, matching the parsers' contract.
func Scan(root string, opts Options) (Result, error) {
	if opts.Formats == nil {
		opts.Formats = DefaultFormats()
	}
	if _, err := os.ReadDir(root); err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	found := scanDir(root, 0, opts)
	result := make(Result, len(found))
	for eco, set := range found {
		result[eco] = manifest.Names(set)
	}
	return result, nil
}

// ScanFile parses a single manifest file, detecting its format from the
// base name. Unlike directory scans, a missing file is an error here:
// the caller named it explicitly.
func ScanFile(path string, formats []manifest.Format) (Result, error) {
	if formats == nil {
		formats = DefaultFormats()
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	f, ok := manifest.Detect(path, formats)
	if !ok {
		return nil, fmt.Errorf("unsupported manifest: %s", filepath.Base(path))
	}

	result := make(Result, 1)
	if names := f.Parse(path); len(names) > 0 {
		result[f.Ecosystem] = names
	}
	return result, nil
}

// scanDir parses the manifests of one directory and merges in the results
// of recursing into its children. Each call accumulates into its own set
// and returns it; the caller owns the merge.
func scanDir(dir string, depth int, opts Options) map[manifest.Ecosystem]map[string]bool {
	found := make(map[manifest.Ecosystem]map[string]bool)
	for _, f := range opts.Formats {
		for _, name := range f.Parse(filepath.Join(dir, f.Filename)) {
			add(found, f.Ecosystem, name)
		}
	}

	if !opts.Recursive || (opts.MaxDepth >= 0 && depth >= opts.MaxDepth) {
		return found
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return found
	}
	for _, entry := range entries {
		if !entry.IsDir() || excludedDirs[entry.Name()] {
			continue
		}
		child := scanDir(filepath.Join(dir, entry.Name()), depth+1, opts)
		for eco, set := range child {
			for name := range set {
				add(found, eco, name)
			}
		}
	}
	return found
}

func add(found map[manifest.Ecosystem]map[string]bool, eco manifest.Ecosystem, name string) {
	if found[eco] == nil {
		found[eco] = make(map[string]bool)
	}
	found[eco][name] = true
}
