// Package npm parses JavaScript dependency manifests. The only format is
// package.json, whose dependency sections map package names to version
// ranges; names (scoped ones included) are taken verbatim apart from
// lowercasing, since the registry is case-insensitive but file output must
// be deterministic.
package npm

import (
	"github.com/matzehuels/readmerator/pkg/manifest"
)

// Formats lists every recognized JavaScript manifest format.
var Formats = []manifest.Format{
	{Filename: "package.json", Ecosystem: manifest.NPM, Parse: ParsePackageJSON},
}
