// Package engine provides the core organize logic.
//
// The engine orchestrates the run as a fixed sequence:
// scan -> plan -> confirm -> execute -> cleanup -> summary. Dry-run
// short-circuits after planning into a plan-only report. The plan is always
// finalized before any filesystem mutation begins; the executor never
// consults the plan's own pending entries against the disk.
//
// Key components:
//   - Engine: main orchestrator called by the CLI
//   - Organize: the full state sequence for one run
//   - executeMove: per-file relocation with boundary and conflict handling
//   - removeEmptyDirs: post-execution source-tree cleanup
package engine

import (
	"github.com/danieljhkim/tidydate/internal/clock"
	"github.com/danieljhkim/tidydate/internal/fsops"
	"github.com/danieljhkim/tidydate/internal/hash"
)

// Confirmer answers a yes/no question. Implementations may prompt a user;
// the engine only calls it when the run is interactive.
type Confirmer func(prompt string) bool

// Reporter receives one-line progress, warning and error messages.
type Reporter interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Engine orchestrates organize runs.
// It is the main API surface called by the CLI.
type Engine struct {
	fs      fsops.FS
	hasher  hash.Hasher
	clock   clock.Clock
	confirm Confirmer
	report  Reporter
}

// New creates a new Engine with the given dependencies.
func New(fs fsops.FS, hasher hash.Hasher, clk clock.Clock, confirm Confirmer, report Reporter) *Engine {
	return &Engine{
		fs:      fs,
		hasher:  hasher,
		clock:   clk,
		confirm: confirm,
		report:  report,
	}
}
