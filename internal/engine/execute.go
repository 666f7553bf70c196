package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/danieljhkim/tidydate/internal/config"
	"github.com/danieljhkim/tidydate/internal/pathutil"
	"github.com/danieljhkim/tidydate/internal/planner"
)

// execute runs every plan entry in order, accumulating per-file results.
// Fail-fast aborts on the first failure while preserving completed moves.
func (e *Engine) execute(cctx *config.Context, interactive bool, result *OrganizeResult) error {
	realSrcRoot, err := e.fs.RealPath(cctx.SourceRoot)
	if err != nil {
		return fmt.Errorf("failed to resolve source root: %w", err)
	}

	created := make(map[string]bool)
	for _, pm := range result.Plan.Moves {
		if pm.Action == planner.ActionSkip {
			result.Executed = append(result.Executed, ExecutionResult{
				Source:  pm.Source,
				Outcome: OutcomeSkipped,
				Reason:  pm.Reason,
			})
			result.Summary.Skipped++
			e.report.Infof("skip %s: %s", pm.Source, pm.Reason)
			continue
		}

		res := e.executeMove(cctx, interactive, realSrcRoot, pm, created)
		result.Executed = append(result.Executed, res)

		switch res.Outcome {
		case OutcomeMoved:
			result.Summary.Moved++
			e.report.Infof("moved %s -> %s", res.Source, res.Target)
		case OutcomeSkipped:
			result.Summary.Skipped++
			e.report.Warnf("skip %s: %s", res.Source, res.Reason)
		case OutcomeFailed:
			result.Summary.Errors++
			e.report.Errorf("%s: %s", res.Source, res.Reason)
			if cctx.FailFast {
				result.Summary.DirsCreated = len(created)
				return fmt.Errorf("%w: %s: %v", ErrFailFast, res.Source, res.Err)
			}
		}
	}

	result.Summary.DirsCreated = len(created)
	return nil
}

// executeMove relocates a single planned file.
//
// Before any write both endpoints are resolved to their real paths and
// checked for containment: the source must stay inside the real source root
// and the target directory inside the real output root. A violation means an
// intermediate symlink would redirect the move outside the boundary; the
// file is skipped with a warning, never moved. The target check runs before
// the bucket directories are created, so a symlink planted inside the output
// tree cannot make mkdir write outside it either.
//
// Disk-level conflicts (a pre-existing target independent of this run) are
// resolved here per the configured mode.
func (e *Engine) executeMove(cctx *config.Context, interactive bool, realSrcRoot string, pm planner.PlannedMove, created map[string]bool) ExecutionResult {
	res := ExecutionResult{Source: pm.Source}

	realSrc, err := e.fs.RealPath(pm.Source)
	if err != nil {
		return fail(res, FailureMove, "source no longer accessible", err)
	}
	if !pathutil.Contains(realSrcRoot, realSrc) {
		res.Outcome = OutcomeSkipped
		res.Kind = FailureBoundary
		res.Reason = fmt.Sprintf("real path %s escapes source root", realSrc)
		return res
	}

	targetDir := filepath.Dir(pm.Target)
	realOutRoot, _, err := e.resolveRealDir(cctx.OutputRoot)
	if err != nil {
		return fail(res, FailureMove, "failed to resolve output root", err)
	}
	realTargetDir, missing, err := e.resolveRealDir(targetDir)
	if err != nil {
		return fail(res, FailureMove, "failed to resolve target directory", err)
	}
	if !pathutil.ContainsOrEqual(realOutRoot, realTargetDir) {
		res.Outcome = OutcomeSkipped
		res.Kind = FailureBoundary
		res.Reason = fmt.Sprintf("target directory %s escapes output root", realTargetDir)
		return res
	}
	if len(missing) > 0 {
		if err := e.fs.MkdirAll(targetDir, 0755); err != nil {
			return fail(res, FailureMove, "failed to create target directory", err)
		}
		for _, m := range missing {
			created[m] = true
		}
	}

	target := filepath.Join(realTargetDir, filepath.Base(pm.Target))

	exists, err := e.fs.Exists(target)
	if err != nil {
		return fail(res, FailureMove, "failed to probe target", err)
	}
	if !exists {
		if err := e.moveFile(realSrc, target); err != nil {
			return fail(res, FailureMove, "move failed", err)
		}
		res.Outcome = OutcomeMoved
		res.Target = target
		return res
	}

	// Disk-level conflict: the target pre-exists independent of this run.
	switch cctx.Conflict {
	case config.ConflictSkip:
		res.Outcome = OutcomeSkipped
		res.Reason = fmt.Sprintf("target %s already exists", target)
		return res

	case config.ConflictRename:
		unique, err := planner.AllocateTarget(target, e.diskTaken)
		if err != nil {
			return fail(res, FailureMove, "failed to allocate unique target", err)
		}
		if err := e.moveFile(realSrc, unique); err != nil {
			return fail(res, FailureMove, "move failed", err)
		}
		res.Outcome = OutcomeMoved
		res.Target = unique
		res.Reason = fmt.Sprintf("renamed: %s already existed", target)
		return res

	case config.ConflictOverwrite:
		if err := e.replaceFile(realSrc, target); err != nil {
			return fail(res, FailureMove, "overwrite failed", err)
		}
		res.Outcome = OutcomeMoved
		res.Target = target
		return res

	case config.ConflictAsk:
		if interactive && e.confirm(fmt.Sprintf("Overwrite %s?", target)) {
			if err := e.replaceFile(realSrc, target); err != nil {
				return fail(res, FailureMove, "overwrite failed", err)
			}
			res.Outcome = OutcomeMoved
			res.Target = target
			return res
		}
		// Non-interactive ask degrades to skip.
		res.Outcome = OutcomeSkipped
		res.Reason = fmt.Sprintf("target %s already exists (not overwritten)", target)
		return res
	}

	return fail(res, FailureMove, "unhandled conflict mode", fmt.Errorf("conflict mode %v", cctx.Conflict))
}

// diskTaken reports whether a candidate target is occupied on disk. Probe
// errors count as taken so allocation never lands on an unverifiable path.
func (e *Engine) diskTaken(path string) bool {
	exists, err := e.fs.Exists(path)
	return err != nil || exists
}

// resolveRealDir resolves dir to its real path even when trailing
// components do not exist yet: the deepest existing ancestor is resolved
// with RealPath and the remaining components are rejoined onto it. The
// missing components are returned deepest first, still unresolved, so the
// caller can verify containment before creating any of them.
func (e *Engine) resolveRealDir(dir string) (string, []string, error) {
	var missing []string
	base := dir
	for {
		exists, err := e.fs.Exists(base)
		if err != nil {
			return "", nil, err
		}
		if exists {
			break
		}
		missing = append(missing, base)
		parent := filepath.Dir(base)
		if parent == base {
			break
		}
		base = parent
	}

	realBase, err := e.fs.RealPath(base)
	if err != nil {
		return "", nil, err
	}
	rel, err := filepath.Rel(base, dir)
	if err != nil {
		return "", nil, err
	}
	if rel == "." {
		return realBase, missing, nil
	}
	return filepath.Join(realBase, rel), missing, nil
}

// moveFile renames src to dst, falling back to copy-verify-remove when the
// two paths are on different filesystems. The source is only deleted after
// the copied bytes hash identically.
func (e *Engine) moveFile(src, dst string) error {
	err := e.fs.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !isCrossDevice(err) {
		return err
	}

	if err := e.fs.CopyFile(src, dst); err != nil {
		return fmt.Errorf("cross-device copy failed: %w", err)
	}
	if err := e.verifyCopy(src, dst); err != nil {
		_ = e.fs.Remove(dst)
		return err
	}
	if err := e.fs.Remove(src); err != nil {
		return fmt.Errorf("failed to remove source after copy: %w", err)
	}
	return nil
}

// replaceFile atomically replaces dst with src: dst is either entirely the
// old file or entirely the new one, never partially written. Cross-device
// replacement copies to a temp file beside dst first, so the final rename
// stays atomic.
func (e *Engine) replaceFile(src, dst string) error {
	err := e.fs.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !isCrossDevice(err) {
		return err
	}

	tmp, err := e.fs.CopyTemp(src, filepath.Dir(dst))
	if err != nil {
		return fmt.Errorf("cross-device copy failed: %w", err)
	}
	if err := e.verifyCopy(src, tmp); err != nil {
		_ = e.fs.Remove(tmp)
		return err
	}
	if err := e.fs.Rename(tmp, dst); err != nil {
		_ = e.fs.Remove(tmp)
		return fmt.Errorf("atomic replace failed: %w", err)
	}
	if err := e.fs.Remove(src); err != nil {
		return fmt.Errorf("failed to remove source after replace: %w", err)
	}
	return nil
}

// verifyCopy confirms src and copy hash identically.
func (e *Engine) verifyCopy(src, copy string) error {
	srcSum, err := e.hasher.HashFile(src)
	if err != nil {
		return fmt.Errorf("failed to hash source: %w", err)
	}
	copySum, err := e.hasher.HashFile(copy)
	if err != nil {
		return fmt.Errorf("failed to hash copy: %w", err)
	}
	if srcSum != copySum {
		return fmt.Errorf("checksum mismatch after copy: %s", copy)
	}
	return nil
}

// isCrossDevice reports whether err is a rename failure across filesystems.
func isCrossDevice(err error) bool {
	var linkErr *os.LinkError
	return errors.As(err, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV)
}

func fail(res ExecutionResult, kind FailureKind, reason string, err error) ExecutionResult {
	res.Outcome = OutcomeFailed
	res.Kind = kind
	res.Reason = fmt.Sprintf("%s: %v", reason, err)
	res.Err = err
	return res
}
