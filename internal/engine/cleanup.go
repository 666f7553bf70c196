package engine

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/danieljhkim/tidydate/internal/config"
	"github.com/danieljhkim/tidydate/internal/pathutil"
)

// removeEmptyDirs removes source directories left empty by the run. It
// walks bottom-up (deepest first), never runs in dry-run, and is strictly
// scoped below the source root: the root itself and the output subtree are
// never touched. Returns the number of directories removed.
func (e *Engine) removeEmptyDirs(cctx *config.Context) int {
	var dirs []string
	work := []string{cctx.SourceRoot}
	for len(work) > 0 {
		cur := work[0]
		work = work[1:]

		entries, err := e.fs.ReadDir(cur)
		if err != nil {
			e.report.Warnf("cleanup: %s: %v", cur, err)
			continue
		}
		for _, entry := range entries {
			// Type() does not follow symlinks, so a symlinked directory is
			// neither descended into nor removed.
			if !entry.Type().IsDir() {
				continue
			}
			full := filepath.Join(cur, entry.Name())
			if pathutil.ContainsOrEqual(cctx.OutputRoot, full) {
				continue
			}
			dirs = append(dirs, full)
			work = append(work, full)
		}
	}

	// Deepest directories first so emptied parents become removable.
	sort.Slice(dirs, func(i, j int) bool {
		sep := string(filepath.Separator)
		return strings.Count(dirs[i], sep) > strings.Count(dirs[j], sep)
	})

	removed := 0
	for _, dir := range dirs {
		entries, err := e.fs.ReadDir(dir)
		if err != nil || len(entries) > 0 {
			continue
		}
		if err := e.fs.Remove(dir); err != nil {
			e.report.Warnf("cleanup: failed to remove %s: %v", dir, err)
			continue
		}
		removed++
		e.report.Infof("removed empty directory %s", dir)
	}
	return removed
}
