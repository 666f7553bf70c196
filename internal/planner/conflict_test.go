package planner

import "testing"

func TestSplitExt(t *testing.T) {
	tests := []struct {
		name     string
		wantStem string
		wantExt  string
	}{
		{name: "photo.jpg", wantStem: "photo", wantExt: ".jpg"},
		{name: "data.tar.gz", wantStem: "data", wantExt: ".tar.gz"},
		{name: "noext", wantStem: "noext", wantExt: ""},
		{name: ".hidden", wantStem: ".hidden", wantExt: ""},
		{name: ".config.toml", wantStem: ".config", wantExt: ".toml"},
		{name: "trailing.", wantStem: "trailing", wantExt: "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stem, ext := SplitExt(tt.name)
			if stem != tt.wantStem || ext != tt.wantExt {
				t.Errorf("SplitExt(%q) = (%q, %q), want (%q, %q)",
					tt.name, stem, ext, tt.wantStem, tt.wantExt)
			}
		})
	}
}

func TestAllocateTarget(t *testing.T) {
	t.Run("free target returned as-is", func(t *testing.T) {
		got, err := AllocateTarget("/out/a.txt", func(string) bool { return false })
		if err != nil {
			t.Fatalf("AllocateTarget failed: %v", err)
		}
		if got != "/out/a.txt" {
			t.Errorf("got %s, want /out/a.txt", got)
		}
	})

	t.Run("suffix increments past taken candidates", func(t *testing.T) {
		taken := map[string]bool{
			"/out/a.txt":   true,
			"/out/a-1.txt": true,
			"/out/a-2.txt": true,
		}
		got, err := AllocateTarget("/out/a.txt", func(p string) bool { return taken[p] })
		if err != nil {
			t.Fatalf("AllocateTarget failed: %v", err)
		}
		if got != "/out/a-3.txt" {
			t.Errorf("got %s, want /out/a-3.txt", got)
		}
	})

	t.Run("multi-part extension preserved", func(t *testing.T) {
		got, err := AllocateTarget("/out/data.tar.gz", func(p string) bool {
			return p == "/out/data.tar.gz"
		})
		if err != nil {
			t.Fatalf("AllocateTarget failed: %v", err)
		}
		if got != "/out/data-1.tar.gz" {
			t.Errorf("got %s, want /out/data-1.tar.gz", got)
		}
	})

	t.Run("exhaustion returns error", func(t *testing.T) {
		if _, err := AllocateTarget("/out/a.txt", func(string) bool { return true }); err == nil {
			t.Error("expected exhaustion error")
		}
	})
}
