package python

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeManifest drops content into a temp dir under name and returns the
// full path.
func writeManifest(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseRequirements(t *testing.T) {
	path := writeManifest(t, "requirements.txt", `# Test requirements
requests>=2.28.0
click==8.1.0
aiohttp
# Comment line

-e ./local-package
--index-url https://private.example.com/simple
-r extra.txt
git+https://github.com/user/repo.git
https://files.example.com/pkg.tar.gz
requests>=2.0  # duplicate with a different pin
zope.interface>=5.0
`)

	got := ParseRequirements(path)
	want := []string{"aiohttp", "click", "requests", "zope.interface"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("ParseRequirements = %v, want %v", got, want)
	}
}

func TestParseRequirements_Specifiers(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"requests", "requests"},
		{"requests==2.28.0", "requests"},
		{"requests>=2.0,<3.0", "requests"},
		{"requests[socks]", "requests"},
		{"requests ; python_version > '3.8'", "requests"},
		{"Django>=4.2", "django"},
		{"ruamel.yaml", "ruamel.yaml"},
		{"typing_extensions", "typing_extensions"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			path := writeManifest(t, "requirements.txt", tt.line+"\n")
			got := ParseRequirements(path)
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("ParseRequirements(%q) = %v, want [%s]", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseRequirements_Missing(t *testing.T) {
	got := ParseRequirements(filepath.Join(t.TempDir(), "requirements.txt"))
	if len(got) != 0 {
		t.Errorf("missing file yielded %v, want none", got)
	}
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		req    string
		want   string
		wantOK bool
	}{
		{"requests", "requests", true},
		{"  click>=8.0  ", "click", true},
		{"UPPER-Case_pkg.ext==1.0", "upper-case_pkg.ext", true},
		{"", "", false},
		{"==1.0", "", false},
		{"# comment", "", false},
	}

	for _, tt := range tests {
		got, ok := extractName(tt.req)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("extractName(%q) = (%q, %v), want (%q, %v)", tt.req, got, ok, tt.want, tt.wantOK)
		}
	}
}
