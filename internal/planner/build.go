package planner

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/danieljhkim/tidydate/internal/config"
	"github.com/danieljhkim/tidydate/internal/scanner"
)

// Build maps scanned files to a finalized, collision-free move plan.
//
// Steps:
//  1. Sort files by source path for deterministic order.
//  2. Compute each file's ideal target from its date and the bucket depth.
//  3. Resolve intra-run collisions against a running allocation set: skip
//     mode skips the later file, every other mode renames it with an
//     incrementing numeric suffix.
//  4. Files already at their ideal target are excluded (idempotence).
func Build(files []scanner.ScannedFile, ctx *config.Context) (*MovePlan, error) {
	sorted := slices.Clone(files)
	slices.SortFunc(sorted, func(a, b scanner.ScannedFile) int {
		return strings.Compare(a.Path, b.Path)
	})

	plan := &MovePlan{}
	allocated := make(map[string]bool)

	for _, f := range sorted {
		target := filepath.Join(ctx.OutputRoot, BucketPath(f.Date, ctx.Depth), filepath.Base(f.Path))

		if target == f.Path {
			plan.AlreadyPlaced++
			continue
		}

		if !allocated[target] {
			allocated[target] = true
			plan.Moves = append(plan.Moves, PlannedMove{
				Source: f.Path,
				Target: target,
				Action: ActionMove,
			})
			continue
		}

		// Intra-run collision: a file earlier in sort order already claimed
		// this target.
		switch ctx.Conflict {
		case config.ConflictSkip:
			plan.Moves = append(plan.Moves, PlannedMove{
				Source: f.Path,
				Action: ActionSkip,
				Reason: fmt.Sprintf("target %s already claimed in this run", target),
			})
		case config.ConflictRename, config.ConflictOverwrite, config.ConflictAsk:
			renamed, err := AllocateTarget(target, func(p string) bool { return allocated[p] })
			if err != nil {
				return nil, err
			}
			allocated[renamed] = true
			plan.Moves = append(plan.Moves, PlannedMove{
				Source: f.Path,
				Target: renamed,
				Action: ActionRename,
				Reason: fmt.Sprintf("renamed: %s already claimed in this run", target),
			})
		}
	}

	if err := checkNoDuplicateTargets(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// BucketPath returns the relative date bucket for the given depth:
// 3 -> year/year-month/year-month-day, 2 -> year/year-month-day,
// 1 -> year-month-day. The date is interpreted in local time.
func BucketPath(date time.Time, depth int) string {
	d := date.Local()
	switch depth {
	case 1:
		return d.Format("20060102")
	case 2:
		return filepath.Join(d.Format("2006"), d.Format("20060102"))
	default:
		return filepath.Join(d.Format("2006"), d.Format("200601"), d.Format("20060102"))
	}
}

// checkNoDuplicateTargets enforces the no-collision invariant.
func checkNoDuplicateTargets(plan *MovePlan) error {
	seen := make(map[string]bool, len(plan.Moves))
	for _, m := range plan.Moves {
		if m.Action == ActionSkip {
			continue
		}
		if seen[m.Target] {
			return fmt.Errorf("%w: %s", ErrPlanConflict, m.Target)
		}
		seen[m.Target] = true
	}
	return nil
}
