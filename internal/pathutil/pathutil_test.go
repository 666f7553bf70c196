package pathutil

import "testing"

func TestContains(t *testing.T) {
	tests := []struct {
		name string
		root string
		path string
		want bool
	}{
		{
			name: "direct child",
			root: "/a/b",
			path: "/a/b/c.txt",
			want: true,
		},
		{
			name: "nested child",
			root: "/a/b",
			path: "/a/b/c/d/e.txt",
			want: true,
		},
		{
			name: "sibling with shared prefix",
			root: "/a/b",
			path: "/a/b2",
			want: false,
		},
		{
			name: "file under sibling with shared prefix",
			root: "/a/b",
			path: "/a/b2/c.txt",
			want: false,
		},
		{
			name: "root itself",
			root: "/a/b",
			path: "/a/b",
			want: false,
		},
		{
			name: "parent",
			root: "/a/b",
			path: "/a",
			want: false,
		},
		{
			name: "unrelated",
			root: "/a/b",
			path: "/x/y",
			want: false,
		},
		{
			name: "unclean paths",
			root: "/a/b/",
			path: "/a/b/./c/../d.txt",
			want: true,
		},
		{
			name: "escape through dotdot",
			root: "/a/b",
			path: "/a/b/../b2/c.txt",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Contains(tt.root, tt.path)
			if got != tt.want {
				t.Errorf("Contains(%q, %q) = %v, want %v", tt.root, tt.path, got, tt.want)
			}
		})
	}
}

func TestContainsOrEqual(t *testing.T) {
	if !ContainsOrEqual("/a/b", "/a/b") {
		t.Error("expected root to contain itself")
	}
	if !ContainsOrEqual("/a/b", "/a/b/c") {
		t.Error("expected child to be contained")
	}
	if ContainsOrEqual("/a/b", "/a/b2") {
		t.Error("expected sibling to not be contained")
	}
}
