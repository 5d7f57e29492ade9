package npm

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParsePackageJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "package.json")
	content := `{
  "name": "demo-app",
  "version": "0.1.0",
  "dependencies": {
    "react": "^18.2.0",
    "@types/node": "^20.0.0",
    "Express": "^4.18.0"
  },
  "devDependencies": {
    "vite": "^5.0.0",
    "react": "^18.2.0"
  }
}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got := ParsePackageJSON(path)
	want := []string{"@types/node", "express", "react", "vite"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("ParsePackageJSON = %v, want %v", got, want)
	}
}

func TestParsePackageJSON_NoDependencies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "package.json")
	if err := os.WriteFile(path, []byte(`{"name": "empty"}`), 0644); err != nil {
		t.Fatal(err)
	}
	if got := ParsePackageJSON(path); len(got) != 0 {
		t.Errorf("manifest without dependencies yielded %v, want none", got)
	}
}

func TestParsePackageJSON_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "package.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := ParsePackageJSON(path); len(got) != 0 {
		t.Errorf("malformed file yielded %v, want none", got)
	}
}

func TestParsePackageJSON_Missing(t *testing.T) {
	if got := ParsePackageJSON(filepath.Join(t.TempDir(), "package.json")); len(got) != 0 {
		t.Errorf("missing file yielded %v, want none", got)
	}
}
