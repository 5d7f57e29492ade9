package python

import (
	"bufio"
	"os"
	"strings"

	"github.com/matzehuels/readmerator/pkg/manifest"
)

// ParseRequirements extracts package names from a pip requirements file.
//
// Comments, blank lines, and pip options (-r, -e, --index-url and friends)
// are skipped, as are direct references to URLs and VCS checkouts, which
// have no registry name to resolve. Each remaining line contributes its
// leading package identifier.
func ParseRequirements(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	pkgs := make(map[string]bool)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}
		if strings.Contains(line, "://") || strings.HasPrefix(line, "git+") {
			continue
		}
		if name, ok := extractName(line); ok {
			pkgs[name] = true
		}
	}
	return manifest.Names(pkgs)
}
