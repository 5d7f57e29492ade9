package python

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/readmerator/pkg/manifest"
)

// pipfileDoc covers the two Pipfile sections that declare dependencies.
// Keys are package names; values carry constraints as either strings or
// tables and are not needed.
type pipfileDoc struct {
	Packages    map[string]any `toml:"packages"`
	DevPackages map[string]any `toml:"dev-packages"`
}

// ParsePipfile extracts package names from a Pipfile, merging the
// [packages] and [dev-packages] sections.
func ParsePipfile(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var doc pipfileDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil
	}

	pkgs := make(map[string]bool, len(doc.Packages)+len(doc.DevPackages))
	for name := range doc.Packages {
		pkgs[strings.ToLower(name)] = true
	}
	for name := range doc.DevPackages {
		pkgs[strings.ToLower(name)] = true
	}
	return manifest.Names(pkgs)
}
