package python

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/readmerator/pkg/manifest"
)

// environmentFile maps the dependencies list of a conda environment.yml.
// Entries are heterogeneous: plain strings are conda package specs, and a
// nested mapping with a pip key carries ordinary requirement lines.
type environmentFile struct {
	Dependencies []any `yaml:"dependencies"`
}

// ParseEnvironment extracts package names from a conda environment.yml.
//
// Conda specs may be channel-qualified (conda-forge::numpy=1.26); the
// channel prefix and version pin are stripped. The python and pip entries
// describe the runtime itself rather than dependencies and are dropped.
// Pip sublists are parsed like requirements.txt lines.
func ParseEnvironment(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var doc environmentFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil
	}

	pkgs := make(map[string]bool)
	for _, entry := range doc.Dependencies {
		switch v := entry.(type) {
		case string:
			if name, ok := condaName(v); ok {
				pkgs[name] = true
			}
		case map[string]any:
			for _, req := range pipEntries(v) {
				if name, ok := extractName(req); ok {
					pkgs[name] = true
				}
			}
		}
	}
	return manifest.Names(pkgs)
}

// condaName reduces a conda package spec to its bare package name.
func condaName(spec string) (string, bool) {
	if i := strings.LastIndex(spec, "::"); i >= 0 {
		spec = spec[i+2:]
	}
	name, ok := extractName(spec)
	if !ok || name == "python" || name == "pip" {
		return "", false
	}
	return name, true
}

// pipEntries returns the requirement strings of a {pip: [...]} mapping
// inside a conda dependencies list, or nil for any other mapping.
func pipEntries(m map[string]any) []string {
	list, ok := m["pip"].([]any)
	if !ok {
		return nil
	}
	reqs := make([]string, 0, len(list))
	for _, item := range list {
		if req, ok := item.(string); ok {
			reqs = append(reqs, req)
		}
	}
	return reqs
}
