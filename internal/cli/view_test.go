package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/readmerator/pkg/manifest"
	"github.com/matzehuels/readmerator/pkg/readme"
)

func TestRunView_UnknownEcosystem(t *testing.T) {
	err := runView("rubygems", "rails", viewOpts{outputDir: t.TempDir()})
	if err == nil || !strings.Contains(err.Error(), "unknown ecosystem") {
		t.Errorf("error = %v, want unknown ecosystem", err)
	}
}

func TestRunView_MissingFile(t *testing.T) {
	err := runView("python", "requests", viewOpts{outputDir: t.TempDir()})
	if err == nil || !strings.Contains(err.Error(), "no fetched README") {
		t.Errorf("error = %v, want missing README message", err)
	}
}

func TestRunView_Raw(t *testing.T) {
	dir := t.TempDir()
	store := readme.NewStore(dir)
	_, err := store.Write(manifest.Python, "requests", &readme.Artifact{
		Content:   "# requests",
		Version:   "2.31.0",
		SourceURL: "https://pypi.org/project/requests/",
		Kind:      readme.KindRegistryDescription,
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := runView("python", "requests", viewOpts{outputDir: dir, raw: true}); err != nil {
		t.Fatalf("runView --raw failed: %v", err)
	}

	// Case-insensitive ecosystem matching.
	if err := runView("PYTHON", "requests", viewOpts{outputDir: dir, raw: true}); err != nil {
		t.Fatalf("runView with uppercase ecosystem failed: %v", err)
	}
}
