package planner

import (
	"fmt"
	"path/filepath"
	"strings"
)

// maxSuffixAttempts bounds suffix allocation so a pathological directory
// cannot loop forever.
const maxSuffixAttempts = 10000

// SplitExt splits a basename into stem and extension, treating everything
// from the first dot as a possibly multi-part extension ("a.tar.gz" splits
// into "a" and ".tar.gz"). A leading dot (hidden file) belongs to the stem.
func SplitExt(name string) (stem, ext string) {
	search := name
	offset := 0
	if strings.HasPrefix(name, ".") {
		search = name[1:]
		offset = 1
	}
	idx := strings.Index(search, ".")
	if idx < 0 {
		return name, ""
	}
	return name[:offset+idx], name[offset+idx:]
}

// suffixed returns the path with an -n suffix inserted before the extension.
func suffixed(path string, n int) string {
	dir := filepath.Dir(path)
	stem, ext := SplitExt(filepath.Base(path))
	return filepath.Join(dir, fmt.Sprintf("%s-%d%s", stem, n, ext))
}

// AllocateTarget returns the first suffixed variant of target for which
// taken reports false, starting from target itself. Suffixes increment
// deterministically so identical inputs always allocate identically.
func AllocateTarget(target string, taken func(string) bool) (string, error) {
	if !taken(target) {
		return target, nil
	}
	for n := 1; n <= maxSuffixAttempts; n++ {
		candidate := suffixed(target, n)
		if !taken(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("exhausted rename suffixes for %s", target)
}
