package engine

import (
	"time"

	"github.com/danieljhkim/tidydate/internal/config"
	"github.com/danieljhkim/tidydate/internal/planner"
)

// Outcome is the per-file execution result.
type Outcome int

const (
	// OutcomeMoved means the file reached its target.
	OutcomeMoved Outcome = iota

	// OutcomeSkipped means the file was deliberately left in place.
	OutcomeSkipped

	// OutcomeFailed means relocation failed.
	OutcomeFailed
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ExecutionResult is the outcome of executing one planned move.
type ExecutionResult struct {
	// Source is the file's original path.
	Source string

	// Target is the path the file ended up at (empty unless moved).
	Target string

	// Outcome is the per-file result.
	Outcome Outcome

	// Kind classifies failures (FailureNone otherwise).
	Kind FailureKind

	// Reason explains skips and failures.
	Reason string

	// Err carries the underlying error for failures.
	Err error `json:"-"`
}

// Summary aggregates the run. It is derived from the execution results and
// never persisted.
type Summary struct {
	// Moved is the number of files relocated.
	Moved int

	// Skipped is the number of files deliberately left in place.
	Skipped int

	// Errors is the number of per-file failures, including scan failures.
	Errors int

	// SymlinksSkipped counts symlinked entries skipped during scanning.
	SymlinksSkipped int

	// DirsCreated is the number of directories newly created.
	DirsCreated int

	// DirsRemoved is the number of emptied source directories removed.
	DirsRemoved int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// OrganizeResult represents the result of an organize run.
type OrganizeResult struct {
	// Context is the validated run configuration.
	Context *config.Context

	// Plan is the finalized move plan.
	Plan *planner.MovePlan

	// Executed holds per-file outcomes (empty in dry-run).
	Executed []ExecutionResult

	// Summary aggregates the run.
	Summary Summary

	// DryRun reports whether execution was short-circuited.
	DryRun bool
}
