package engine

import "github.com/danieljhkim/tidydate/internal/config"

// OrganizeRequest represents a request to organize a directory.
type OrganizeRequest struct {
	// Source is the directory to organize.
	Source string

	// Output is the destination root (default: <source>/organized).
	Output string

	// DateSource selects the bucketing timestamp.
	DateSource config.DateSource

	// Depth is the bucket nesting level (1-3).
	Depth int

	// Conflict selects conflict resolution behavior.
	Conflict config.ConflictMode

	// Recursive descends into subdirectories.
	Recursive bool

	// IncludeHidden processes dot-files.
	IncludeHidden bool

	// Include and Exclude are basename glob patterns.
	Include []string
	Exclude []string

	// CleanEmpty removes emptied source directories after execution.
	CleanEmpty bool

	// FailFast aborts on the first per-file error.
	FailFast bool

	// DryRun plans without making changes.
	DryRun bool

	// AssumeYes skips the confirmation prompt.
	AssumeYes bool

	// Interactive reports whether standard input is a terminal. When false,
	// confirmation auto-passes and "ask" conflicts degrade to skip.
	Interactive bool
}

// Context validates the request and builds the immutable run context.
func (r *OrganizeRequest) Context() (*config.Context, error) {
	return config.NewContext(config.Options{
		SourceRoot:    r.Source,
		OutputRoot:    r.Output,
		DateSource:    r.DateSource,
		Depth:         r.Depth,
		Conflict:      r.Conflict,
		Recursive:     r.Recursive,
		IncludeHidden: r.IncludeHidden,
		Include:       r.Include,
		Exclude:       r.Exclude,
		CleanEmpty:    r.CleanEmpty,
		FailFast:      r.FailFast,
		DryRun:        r.DryRun,
	})
}
