package python

import (
	"os"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/matzehuels/readmerator/pkg/manifest"
)

// ParseSetupCfg extracts package names from the install_requires key of a
// setup.cfg [options] section. setuptools writes the value as an indented
// block, one requirement per line, which the ini loader preserves as a
// multiline value.
func ParseSetupCfg(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	cfg, err := ini.LoadSources(ini.LoadOptions{AllowPythonMultilineValues: true}, data)
	if err != nil {
		return nil
	}

	pkgs := make(map[string]bool)
	value := cfg.Section("options").Key("install_requires").String()
	for _, line := range strings.Split(value, "\n") {
		if name, ok := extractName(line); ok {
			pkgs[name] = true
		}
	}
	return manifest.Names(pkgs)
}
