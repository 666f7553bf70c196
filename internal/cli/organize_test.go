package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danieljhkim/tidydate/internal/config"
)

func TestBuildRequestMergesFileDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	toml := `date_source = "modified"
depth = 1
recursive = true
exclude = ["*.tmp"]
`
	if err := os.WriteFile(cfgPath, []byte(toml), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	organizeConfig = cfgPath
	defer func() { organizeConfig = "" }()

	// An explicit flag must win over the file value.
	if err := organizeCmd.ParseFlags([]string{"--depth", "2"}); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	req, err := buildRequest(organizeCmd, dir)
	if err != nil {
		t.Fatalf("buildRequest() error = %v", err)
	}

	if req.Depth != 2 {
		t.Errorf("Depth = %d, want flag value 2", req.Depth)
	}
	if req.DateSource != config.SourceModified {
		t.Errorf("DateSource = %v, want modified from config file", req.DateSource)
	}
	if !req.Recursive {
		t.Error("Recursive should come from config file")
	}
	if len(req.Exclude) != 1 || req.Exclude[0] != "*.tmp" {
		t.Errorf("Exclude = %v, want [*.tmp]", req.Exclude)
	}
	if req.Conflict != config.ConflictRename {
		t.Errorf("Conflict = %v, want built-in rename default", req.Conflict)
	}
}

func TestBuildRequestRejectsBadEnums(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(cfgPath, []byte(`date_source = "ctime"`), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	organizeConfig = cfgPath
	defer func() { organizeConfig = "" }()

	if _, err := buildRequest(organizeCmd, dir); err == nil {
		t.Error("buildRequest() expected error for invalid date_source")
	}
}

func TestRelToRoot(t *testing.T) {
	tests := []struct {
		root string
		path string
		want string
	}{
		{"/a/b", "/a/b/c/d.txt", filepath.Join("c", "d.txt")},
		{"/a/b", "/x/y.txt", "/x/y.txt"},
		{"/a/b", "/a/b", "/a/b"},
	}

	for _, tt := range tests {
		if got := relToRoot(tt.root, tt.path); got != tt.want {
			t.Errorf("relToRoot(%q, %q) = %q, want %q", tt.root, tt.path, got, tt.want)
		}
	}
}
