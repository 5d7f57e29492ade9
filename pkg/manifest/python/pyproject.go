package python

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/readmerator/pkg/manifest"
)

// pyprojectFile maps the two dependency declarations a pyproject.toml can
// carry: the PEP 621 [project] list of requirement strings and the Poetry
// table of name-to-constraint entries. Poetry constraint values may be
// strings or tables, so they decode as any and only the keys are read.
type pyprojectFile struct {
	Project struct {
		Dependencies []string `toml:"dependencies"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Dependencies map[string]any `toml:"dependencies"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

// ParsePyproject extracts package names from a pyproject.toml, merging
// PEP 621 and Poetry declarations. Poetry's python entry pins the
// interpreter, not a dependency, and is dropped.
func ParsePyproject(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var doc pyprojectFile
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil
	}

	pkgs := make(map[string]bool)
	for _, req := range doc.Project.Dependencies {
		if name, ok := extractName(req); ok {
			pkgs[name] = true
		}
	}
	for name := range doc.Tool.Poetry.Dependencies {
		if strings.EqualFold(name, "python") {
			continue
		}
		pkgs[strings.ToLower(name)] = true
	}
	return manifest.Names(pkgs)
}
