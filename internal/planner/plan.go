// Package planner builds the deterministic move plan for an organize run.
//
// Planning is pure: it never touches the filesystem, so dry-run previews are
// exact and identical inputs always produce identical plans. Collisions
// between files organized in the same run are resolved here; collisions with
// files that already exist on disk are deferred to the executor, since
// probing the filesystem mid-plan would race against the plan's own entries.
package planner

import "errors"

// ErrPlanConflict indicates two plan entries were assigned the same target.
// This is an internal invariant violation and should not occur.
var ErrPlanConflict = errors.New("plan conflict: duplicate target path")

// Action is what the executor should do with a planned file.
type Action int

const (
	// ActionMove relocates the file to its ideal target.
	ActionMove Action = iota

	// ActionRename relocates the file to a suffixed target after an
	// intra-run collision.
	ActionRename

	// ActionSkip leaves the file in place.
	ActionSkip
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionRename:
		return "rename"
	case ActionSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// PlannedMove is one immutable plan entry.
type PlannedMove struct {
	// Source is the absolute path of the file to relocate.
	Source string

	// Target is the final, collision-free target path. Empty for skips.
	Target string

	// Action is what the executor should do.
	Action Action

	// Reason explains skips and renames.
	Reason string
}

// MovePlan is the finalized plan consumed by the executor. It is complete
// before any filesystem mutation begins.
type MovePlan struct {
	// Moves holds one entry per processed file, in deterministic order.
	Moves []PlannedMove

	// AlreadyPlaced counts files whose ideal target equals their current
	// location; they are excluded from Moves entirely.
	AlreadyPlaced int
}

// PendingCount returns the number of entries the executor will relocate.
func (p *MovePlan) PendingCount() int {
	n := 0
	for _, m := range p.Moves {
		if m.Action != ActionSkip {
			n++
		}
	}
	return n
}
