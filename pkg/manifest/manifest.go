// Package manifest extracts declared dependencies from project manifest
// files.
//
// Each supported format is registered as a [Format]: an ecosystem tag, the
// exact filename the format lives under, and a parse function. The table of
// registered formats is static; adding a format means adding an entry, not
// touching dispatch logic. The python and npm subpackages contribute the
// actual parsers.
//
// Parse functions are total: a missing, unreadable, or malformed manifest
// yields no packages rather than an error. Extracted names are lowercased,
// deduplicated, and sorted, so parsing the same file twice always yields the
// same list.
package manifest

import (
	"path/filepath"
	"sort"
)

// Ecosystem identifies a package-distribution platform. It scopes which
// manifest formats and which README resolution chain apply to a package.
type Ecosystem string

// Supported ecosystems.
const (
	Python Ecosystem = "python"
	NPM    Ecosystem = "npm"
)

// String returns the ecosystem tag, which doubles as its output
// subdirectory name.
func (e Ecosystem) String() string { return string(e) }

// ParseFunc extracts package names from one manifest file. Implementations
// never fail: absent, unreadable, and structurally invalid files all yield
// an empty result. The returned names are lowercase, unique, and sorted.
type ParseFunc func(path string) []string

// Format registers one manifest format for one ecosystem. Formats are
// matched by exact filename at each scanned directory level.
type Format struct {
	Filename  string
	Ecosystem Ecosystem
	Parse     ParseFunc
}

// Detect returns the registered format matching path's base name.
// ok is false when no format claims the filename.
func Detect(path string, formats []Format) (Format, bool) {
	name := filepath.Base(path)
	for _, f := range formats {
		if f.Filename == name {
			return f, true
		}
	}
	return Format{}, false
}

// Names converts a set of package names into the canonical parser result:
// a sorted slice with no duplicates.
func Names(set map[string]bool) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
