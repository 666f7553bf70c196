// Package pathutil provides path containment checks shared by the scanner,
// planner and executor.
package pathutil

import (
	"path/filepath"
	"strings"
)

// Contains reports whether path lies strictly inside root. The check uses
// path-component containment via filepath.Rel, not string prefixes, so
// /a/b never contains /a/b2. A path equal to root is not contained.
func Contains(root, path string) bool {
	root = filepath.Clean(root)
	path = filepath.Clean(path)

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	if rel == "." {
		return false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	return true
}

// ContainsOrEqual reports whether path is root itself or lies inside it.
func ContainsOrEqual(root, path string) bool {
	return filepath.Clean(root) == filepath.Clean(path) || Contains(root, path)
}
