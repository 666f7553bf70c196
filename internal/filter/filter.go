// Package filter implements the file selection predicate for organize runs.
//
// Matching is a case-sensitive glob against the basename only, never the
// full path. Hidden files use the leading-dot convention and are checked
// before and independently of the include/exclude patterns.
package filter

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Filter is an immutable file selection predicate.
type Filter struct {
	include     []string
	exclude     []string
	allowHidden bool
}

// New creates a Filter from validated pattern lists.
// Use Validate beforehand to reject malformed patterns.
func New(include, exclude []string, allowHidden bool) *Filter {
	return &Filter{
		include:     include,
		exclude:     exclude,
		allowHidden: allowHidden,
	}
}

// Validate checks every pattern for glob syntax errors.
func Validate(patterns []string) error {
	for _, p := range patterns {
		if p == "" {
			return fmt.Errorf("invalid pattern: empty")
		}
		if _, err := filepath.Match(p, "probe"); err != nil {
			return fmt.Errorf("invalid pattern %q: %w", p, err)
		}
	}
	return nil
}

// IsHidden reports whether a basename follows the hidden-file convention.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// ShouldProcess reports whether a file with the given basename is selected.
//
// Hidden files are rejected first unless hidden files are allowed. When
// include patterns exist the name must match at least one; the name is then
// rejected if it matches any exclude pattern.
func (f *Filter) ShouldProcess(name string) bool {
	if IsHidden(name) && !f.allowHidden {
		return false
	}

	if len(f.include) > 0 {
		matched := false
		for _, p := range f.include {
			if ok, _ := filepath.Match(p, name); ok {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	for _, p := range f.exclude {
		if ok, _ := filepath.Match(p, name); ok {
			return false
		}
	}

	return true
}
