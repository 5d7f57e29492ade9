package npm

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/matzehuels/readmerator/pkg/manifest"
)

type packageFile struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// ParsePackageJSON extracts package names from a package.json file,
// merging the dependencies and devDependencies sections. Scoped names
// like @types/node are kept whole.
func ParsePackageJSON(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var pkg packageFile
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil
	}

	pkgs := make(map[string]bool, len(pkg.Dependencies)+len(pkg.DevDependencies))
	for name := range pkg.Dependencies {
		pkgs[strings.ToLower(name)] = true
	}
	for name := range pkg.DevDependencies {
		pkgs[strings.ToLower(name)] = true
	}
	return manifest.Names(pkgs)
}
