package readme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/matzehuels/readmerator/pkg/manifest"
)

// Store writes documentation artifacts into an output directory, one
// markdown file per package grouped by ecosystem:
//
//	{dir}/python/requests.md
//	{dir}/npm/types_node.md
//
// Direct URL fetches are stored flat under the directory itself.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir. Nothing is created until the
// first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the output directory root.
func (s *Store) Dir() string { return s.dir }

// Path returns where the artifact for pkg is (or would be) written.
func (s *Store) Path(eco manifest.Ecosystem, pkg string) string {
	return filepath.Join(s.dir, eco.String(), SanitizeName(pkg)+".md")
}

// Write stores an artifact under its ecosystem directory and returns the
// written path.
func (s *Store) Write(eco manifest.Ecosystem, pkg string, art *Artifact) (string, error) {
	path := s.Path(eco, pkg)
	return path, s.write(path, pkg, art)
}

// WriteNamed stores an artifact directly under the output directory using
// the given name. Direct URL fetches land here: they have no ecosystem.
func (s *Store) WriteNamed(name string, art *Artifact) (string, error) {
	path := filepath.Join(s.dir, SanitizeName(name)+".md")
	return path, s.write(path, name, art)
}

func (s *Store) write(path, pkg string, art *Artifact) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("output dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(render(pkg, art)), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// render produces the file content: a fixed metadata header naming the
// package, version, source, and fetch time, followed by the raw body.
func render(pkg string, art *Artifact) string {
	return fmt.Sprintf("---\nPackage: %s\nVersion: %s\nSource: %s\nFetched: %s\n---\n\n%s",
		pkg, art.Version, art.SourceURL, time.Now().Format("2006-01-02 15:04:05"), art.Content)
}

// SanitizeName flattens a package name into a filename: "@" is dropped and
// path separators become underscores, so the scoped npm name "@types/node"
// stores as "types_node". The result never escapes the output directory.
func SanitizeName(name string) string {
	name = strings.ReplaceAll(name, "@", "")
	name = strings.ReplaceAll(name, "/", "_")
	return strings.ReplaceAll(name, "\\", "_")
}
