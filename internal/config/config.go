// Package config defines the immutable per-invocation Context for an
// organize run, the option enums, and the optional TOML defaults file.
//
// A Context is constructed once from validated input and never mutated.
// There is deliberately no shared default Context value; every invocation
// builds its own via NewContext.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/danieljhkim/tidydate/internal/filter"
)

// DateSource selects which file timestamp drives date bucketing.
type DateSource int

const (
	// SourceCreated buckets by the platform birth time, falling back to the
	// modification time when the filesystem does not record one.
	SourceCreated DateSource = iota

	// SourceModified buckets by the modification time.
	SourceModified
)

// ParseDateSource parses a user-supplied date source name.
func ParseDateSource(s string) (DateSource, error) {
	switch s {
	case "created":
		return SourceCreated, nil
	case "modified":
		return SourceModified, nil
	default:
		return 0, fmt.Errorf("invalid date source %q (expected created or modified)", s)
	}
}

// String returns the canonical name of the date source.
func (s DateSource) String() string {
	switch s {
	case SourceCreated:
		return "created"
	case SourceModified:
		return "modified"
	default:
		return fmt.Sprintf("DateSource(%d)", int(s))
	}
}

// ConflictMode selects how target-path conflicts are resolved.
type ConflictMode int

const (
	// ConflictRename allocates a numeric suffix before the extension.
	ConflictRename ConflictMode = iota

	// ConflictSkip leaves the later file in place.
	ConflictSkip

	// ConflictOverwrite atomically replaces the existing target.
	ConflictOverwrite

	// ConflictAsk prompts per conflict; without a TTY it degrades to skip.
	ConflictAsk
)

// ParseConflictMode parses a user-supplied conflict mode name.
func ParseConflictMode(s string) (ConflictMode, error) {
	switch s {
	case "rename":
		return ConflictRename, nil
	case "skip":
		return ConflictSkip, nil
	case "overwrite":
		return ConflictOverwrite, nil
	case "ask":
		return ConflictAsk, nil
	default:
		return 0, fmt.Errorf("invalid conflict mode %q (expected rename, skip, overwrite or ask)", s)
	}
}

// String returns the canonical name of the conflict mode.
func (m ConflictMode) String() string {
	switch m {
	case ConflictRename:
		return "rename"
	case ConflictSkip:
		return "skip"
	case ConflictOverwrite:
		return "overwrite"
	case ConflictAsk:
		return "ask"
	default:
		return fmt.Sprintf("ConflictMode(%d)", int(m))
	}
}

// Depth bounds for output bucketing. Depth controls only the nesting of the
// date hierarchy, never how deep the scanner descends.
const (
	MinDepth = 1
	MaxDepth = 3
)

// Options carries the raw, unvalidated inputs for a Context.
type Options struct {
	SourceRoot    string
	OutputRoot    string // empty means <source>/organized
	DateSource    DateSource
	Depth         int
	Conflict      ConflictMode
	Recursive     bool
	IncludeHidden bool
	Include       []string
	Exclude       []string
	CleanEmpty    bool
	FailFast      bool
	DryRun        bool
}

// Context is the immutable configuration of one organize run.
type Context struct {
	SourceRoot    string
	OutputRoot    string
	DateSource    DateSource
	Depth         int
	Conflict      ConflictMode
	Recursive     bool
	IncludeHidden bool
	Include       []string
	Exclude       []string
	CleanEmpty    bool
	FailFast      bool
	DryRun        bool
}

// NewContext validates opts and builds an immutable Context. Paths are made
// absolute and cleaned; pattern syntax is checked up front so an invalid
// glob fails the run before any scanning happens.
func NewContext(opts Options) (*Context, error) {
	if opts.SourceRoot == "" {
		return nil, fmt.Errorf("source directory is required")
	}
	source, err := filepath.Abs(opts.SourceRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve source directory: %w", err)
	}

	output := opts.OutputRoot
	if output == "" {
		output = filepath.Join(source, "organized")
	}
	output, err = filepath.Abs(output)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output directory: %w", err)
	}

	if opts.Depth < MinDepth || opts.Depth > MaxDepth {
		return nil, fmt.Errorf("depth must be between %d and %d, got %d", MinDepth, MaxDepth, opts.Depth)
	}

	if err := filter.Validate(opts.Include); err != nil {
		return nil, fmt.Errorf("include: %w", err)
	}
	if err := filter.Validate(opts.Exclude); err != nil {
		return nil, fmt.Errorf("exclude: %w", err)
	}

	return &Context{
		SourceRoot:    source,
		OutputRoot:    output,
		DateSource:    opts.DateSource,
		Depth:         opts.Depth,
		Conflict:      opts.Conflict,
		Recursive:     opts.Recursive,
		IncludeHidden: opts.IncludeHidden,
		Include:       append([]string(nil), opts.Include...),
		Exclude:       append([]string(nil), opts.Exclude...),
		CleanEmpty:    opts.CleanEmpty,
		FailFast:      opts.FailFast,
		DryRun:        opts.DryRun,
	}, nil
}

// Filter builds the file selection predicate for this context.
func (c *Context) Filter() *filter.Filter {
	return filter.New(c.Include, c.Exclude, c.IncludeHidden)
}
