package engine

import (
	"fmt"
	"path/filepath"

	"github.com/danieljhkim/tidydate/internal/planner"
	"github.com/danieljhkim/tidydate/internal/scanner"
)

// Organize runs the full sequence for one request:
// scan -> plan -> confirm -> execute -> cleanup -> summary.
//
// Dry-run short-circuits after planning and performs zero filesystem
// mutations. The returned result always carries the finalized plan, so
// callers can render a preview even when execution was aborted.
func (e *Engine) Organize(req *OrganizeRequest) (*OrganizeResult, error) {
	start := e.clock.Now()

	cctx, err := req.Context()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if filepath.Clean(cctx.OutputRoot) == filepath.Clean(cctx.SourceRoot) {
		return nil, fmt.Errorf("%w: output directory must differ from the source root", ErrValidation)
	}

	// SCAN
	scan := scanner.New(e.fs, cctx, e.report)
	sres, err := scan.Scan()
	if err != nil {
		return nil, err
	}

	// PLAN - finalized before any mutation begins
	plan, err := planner.Build(sres.Files, cctx)
	if err != nil {
		return nil, err
	}

	result := &OrganizeResult{Context: cctx, Plan: plan, DryRun: cctx.DryRun}
	result.Summary.Errors = len(sres.Failures)
	result.Summary.SymlinksSkipped = sres.SymlinksSkipped

	if cctx.DryRun {
		result.Summary.Elapsed = e.clock.Now().Sub(start)
		return result, nil
	}

	// CONFIRM - auto-passes when input is non-interactive or --yes is set
	if plan.PendingCount() > 0 && req.Interactive && !req.AssumeYes {
		prompt := fmt.Sprintf("Move %d files into %s?", plan.PendingCount(), cctx.OutputRoot)
		if !e.confirm(prompt) {
			result.Summary.Elapsed = e.clock.Now().Sub(start)
			return result, ErrAborted
		}
	}

	// EXECUTE - under the per-source run lock
	if len(plan.Moves) > 0 {
		lock, err := e.acquireRunLock(cctx.SourceRoot)
		if err != nil {
			result.Summary.Elapsed = e.clock.Now().Sub(start)
			return result, err
		}
		defer func() {
			_ = lock.Unlock()
		}()

		if execErr := e.execute(cctx, req.Interactive, result); execErr != nil {
			result.Summary.Elapsed = e.clock.Now().Sub(start)
			return result, execErr
		}
	}

	// CLEANUP
	if cctx.CleanEmpty {
		result.Summary.DirsRemoved = e.removeEmptyDirs(cctx)
	}

	result.Summary.Elapsed = e.clock.Now().Sub(start)
	return result, nil
}
