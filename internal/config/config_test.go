package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseDateSource(t *testing.T) {
	tests := []struct {
		input     string
		want      DateSource
		wantError bool
	}{
		{input: "created", want: SourceCreated},
		{input: "modified", want: SourceModified},
		{input: "ctime", wantError: true},
		{input: "", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDateSource(tt.input)
			if (err != nil) != tt.wantError {
				t.Fatalf("ParseDateSource(%q) error = %v, wantError %v", tt.input, err, tt.wantError)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseDateSource(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseConflictMode(t *testing.T) {
	tests := []struct {
		input     string
		want      ConflictMode
		wantError bool
	}{
		{input: "rename", want: ConflictRename},
		{input: "skip", want: ConflictSkip},
		{input: "overwrite", want: ConflictOverwrite},
		{input: "ask", want: ConflictAsk},
		{input: "force", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseConflictMode(tt.input)
			if (err != nil) != tt.wantError {
				t.Fatalf("ParseConflictMode(%q) error = %v, wantError %v", tt.input, err, tt.wantError)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseConflictMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestEnumRoundTrip(t *testing.T) {
	for _, s := range []string{"created", "modified"} {
		src, err := ParseDateSource(s)
		if err != nil {
			t.Fatalf("ParseDateSource(%q) failed: %v", s, err)
		}
		if src.String() != s {
			t.Errorf("DateSource round trip: %q -> %q", s, src.String())
		}
	}
	for _, s := range []string{"rename", "skip", "overwrite", "ask"} {
		mode, err := ParseConflictMode(s)
		if err != nil {
			t.Fatalf("ParseConflictMode(%q) failed: %v", s, err)
		}
		if mode.String() != s {
			t.Errorf("ConflictMode round trip: %q -> %q", s, mode.String())
		}
	}
}

func TestNewContext(t *testing.T) {
	t.Run("defaults output to source/organized", func(t *testing.T) {
		ctx, err := NewContext(Options{SourceRoot: "/data/photos", Depth: 3})
		if err != nil {
			t.Fatalf("NewContext failed: %v", err)
		}
		want := filepath.Join("/data/photos", "organized")
		if ctx.OutputRoot != want {
			t.Errorf("OutputRoot = %q, want %q", ctx.OutputRoot, want)
		}
	})

	t.Run("makes paths absolute", func(t *testing.T) {
		ctx, err := NewContext(Options{SourceRoot: "photos", Depth: 2})
		if err != nil {
			t.Fatalf("NewContext failed: %v", err)
		}
		if !filepath.IsAbs(ctx.SourceRoot) {
			t.Errorf("SourceRoot %q is not absolute", ctx.SourceRoot)
		}
		cwd, _ := os.Getwd()
		if ctx.SourceRoot != filepath.Join(cwd, "photos") {
			t.Errorf("SourceRoot = %q, want under %q", ctx.SourceRoot, cwd)
		}
	})

	t.Run("rejects missing source", func(t *testing.T) {
		if _, err := NewContext(Options{Depth: 3}); err == nil {
			t.Error("expected error for empty source")
		}
	})

	t.Run("rejects depth out of range", func(t *testing.T) {
		for _, depth := range []int{0, 4, -1} {
			if _, err := NewContext(Options{SourceRoot: "/data", Depth: depth}); err == nil {
				t.Errorf("expected error for depth %d", depth)
			}
		}
	})

	t.Run("rejects invalid patterns", func(t *testing.T) {
		_, err := NewContext(Options{SourceRoot: "/data", Depth: 3, Include: []string{"[bad"}})
		if err == nil {
			t.Error("expected error for invalid include pattern")
		}
		_, err = NewContext(Options{SourceRoot: "/data", Depth: 3, Exclude: []string{"[bad"}})
		if err == nil {
			t.Error("expected error for invalid exclude pattern")
		}
	})

	t.Run("copies pattern slices", func(t *testing.T) {
		include := []string{"*.jpg"}
		ctx, err := NewContext(Options{SourceRoot: "/data", Depth: 3, Include: include})
		if err != nil {
			t.Fatalf("NewContext failed: %v", err)
		}
		include[0] = "*.png"
		if ctx.Include[0] != "*.jpg" {
			t.Error("Context shares the caller's include slice")
		}
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("missing file yields empty config", func(t *testing.T) {
		cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
		if err != nil {
			t.Fatalf("LoadFile failed: %v", err)
		}
		if cfg.DateSource != "" || cfg.Depth != 0 {
			t.Errorf("expected zero config, got %+v", cfg)
		}
	})

	t.Run("parses toml values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
date_source = "modified"
depth = 2
on_conflict = "skip"
hidden = true
clean_empty = true
include = ["*.jpg", "*.png"]
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile failed: %v", err)
		}
		if cfg.DateSource != "modified" {
			t.Errorf("DateSource = %q, want modified", cfg.DateSource)
		}
		if cfg.Depth != 2 {
			t.Errorf("Depth = %d, want 2", cfg.Depth)
		}
		if cfg.OnConflict != "skip" {
			t.Errorf("OnConflict = %q, want skip", cfg.OnConflict)
		}
		if !cfg.Hidden || !cfg.CleanEmpty {
			t.Error("expected hidden and clean_empty to be true")
		}
		if len(cfg.Include) != 2 {
			t.Errorf("Include = %v, want two patterns", cfg.Include)
		}
	})

	t.Run("rejects malformed toml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("depth = ["), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
		if _, err := LoadFile(path); err == nil {
			t.Error("expected parse error")
		}
	})
}
