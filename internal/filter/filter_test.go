package filter

import "testing"

func TestFilter_ShouldProcess(t *testing.T) {
	tests := []struct {
		name        string
		fileName    string
		include     []string
		exclude     []string
		allowHidden bool
		want        bool
	}{
		{
			name:     "no patterns selects everything",
			fileName: "photo.jpg",
			want:     true,
		},
		{
			name:     "include match",
			fileName: "photo.jpg",
			include:  []string{"*.jpg"},
			want:     true,
		},
		{
			name:     "include miss",
			fileName: "notes.txt",
			include:  []string{"*.jpg"},
			want:     false,
		},
		{
			name:     "include any-of",
			fileName: "notes.txt",
			include:  []string{"*.jpg", "*.txt"},
			want:     true,
		},
		{
			name:     "exclude wins over include",
			fileName: "draft.txt",
			include:  []string{"*.txt"},
			exclude:  []string{"draft*"},
			want:     false,
		},
		{
			name:     "exclude without include",
			fileName: "backup.bak",
			exclude:  []string{"*.bak"},
			want:     false,
		},
		{
			name:     "matching is case-sensitive",
			fileName: "PHOTO.JPG",
			include:  []string{"*.jpg"},
			want:     false,
		},
		{
			name:     "hidden file rejected by default",
			fileName: ".env",
			want:     false,
		},
		{
			name:        "hidden file allowed when enabled",
			fileName:    ".env",
			allowHidden: true,
			want:        true,
		},
		{
			name:     "hidden check precedes include match",
			fileName: ".config.jpg",
			include:  []string{"*.jpg"},
			want:     false,
		},
		{
			name:        "hidden allowed still subject to exclude",
			fileName:    ".cache",
			exclude:     []string{".cache"},
			allowHidden: true,
			want:        false,
		},
		{
			name:     "basename only semantics",
			fileName: "photo.jpg",
			include:  []string{"*/photo.jpg"},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(tt.include, tt.exclude, tt.allowHidden)
			got := f.ShouldProcess(tt.fileName)
			if got != tt.want {
				t.Errorf("ShouldProcess(%q) = %v, want %v", tt.fileName, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		patterns  []string
		wantError bool
	}{
		{
			name:     "valid globs",
			patterns: []string{"*.jpg", "IMG_????.*", "[ab]*"},
		},
		{
			name:      "unterminated character class",
			patterns:  []string{"[abc"},
			wantError: true,
		},
		{
			name:      "empty pattern",
			patterns:  []string{""},
			wantError: true,
		},
		{
			name:     "no patterns",
			patterns: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.patterns)
			if (err != nil) != tt.wantError {
				t.Errorf("Validate(%v) error = %v, wantError %v", tt.patterns, err, tt.wantError)
			}
		})
	}
}

func TestIsHidden(t *testing.T) {
	if !IsHidden(".bashrc") {
		t.Error("expected .bashrc to be hidden")
	}
	if IsHidden("bashrc") {
		t.Error("expected bashrc to not be hidden")
	}
}
