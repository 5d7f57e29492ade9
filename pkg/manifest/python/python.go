// Package python parses Python dependency manifests: pip requirements
// files, pyproject.toml (PEP 621 and Poetry), setup.py, setup.cfg, Pipfile,
// and conda environment.yml.
//
// All parsers share one extraction rule: take the leading package
// identifier of a requirement string and drop everything after it (version
// specifiers, extras, environment markers). Names keep their dots and
// internal punctuation, so zope.interface and ruamel.yaml survive intact;
// PEP 503 normalization is left to the registry client that looks the
// package up.
package python

import (
	"regexp"
	"strings"

	"github.com/matzehuels/readmerator/pkg/manifest"
)

// Formats lists every recognized Python manifest format.
var Formats = []manifest.Format{
	{Filename: "requirements.txt", Ecosystem: manifest.Python, Parse: ParseRequirements},
	{Filename: "pyproject.toml", Ecosystem: manifest.Python, Parse: ParsePyproject},
	{Filename: "setup.py", Ecosystem: manifest.Python, Parse: ParseSetupPy},
	{Filename: "setup.cfg", Ecosystem: manifest.Python, Parse: ParseSetupCfg},
	{Filename: "Pipfile", Ecosystem: manifest.Python, Parse: ParsePipfile},
	{Filename: "environment.yml", Ecosystem: manifest.Python, Parse: ParseEnvironment},
}

// nameRE matches the leading package identifier of a requirement string:
// an alphanumeric start followed by any run of alphanumerics, hyphens,
// underscores, and dots. Everything after the identifier (extras, version
// pins, markers) is ignored.
var nameRE = regexp.MustCompile(`^([a-zA-Z0-9][-a-zA-Z0-9._]*)`)

// extractName pulls the lowercase package name out of a single requirement
// string like "requests[socks]>=2.28,<3; python_version > '3.8'".
// ok is false when the string does not start with a package identifier.
func extractName(req string) (string, bool) {
	m := nameRE.FindStringSubmatch(strings.TrimSpace(req))
	if m == nil {
		return "", false
	}
	return strings.ToLower(m[1]), true
}
