// Package scanner performs the secure directory traversal that feeds the
// planner.
//
// Traversal rules:
//   - entries are inspected with lstat only; symlinks are never followed
//   - symlinked directories are never descended into
//   - cycles are detected via device+inode identity
//   - a hard ceiling of 100 levels applies regardless of user options
//   - the configured output directory is skipped via path containment
//
// The walk uses an explicit worklist rather than native recursion so stack
// usage stays bounded and the depth limit and cycle check live in one place.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/danieljhkim/tidydate/internal/config"
	"github.com/danieljhkim/tidydate/internal/filter"
	"github.com/danieljhkim/tidydate/internal/fsops"
	"github.com/danieljhkim/tidydate/internal/pathutil"
)

// MaxScanDepth is the hard traversal ceiling. The user-facing depth option
// controls only output bucketing, never scan depth.
const MaxScanDepth = 100

// Reporter receives per-entry progress and warning lines.
type Reporter interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

// ScannedFile is a file selected for organization.
type ScannedFile struct {
	// Path is the absolute source path.
	Path string

	// Date is the resolved bucketing date (local time).
	Date time.Time

	// Dev and Ino identify the file on this host.
	Dev uint64
	Ino uint64
}

// Failure records a per-file scan error that did not abort the run.
type Failure struct {
	Path string
	Err  error
}

// Result is the outcome of a scan.
type Result struct {
	// Files are the selected files, in traversal order.
	Files []ScannedFile

	// SymlinksSkipped counts symlinked entries that were skipped.
	SymlinksSkipped int

	// Failures are per-file errors (unreadable metadata, unreadable
	// directories) that were recorded and skipped.
	Failures []Failure
}

type identity struct {
	dev uint64
	ino uint64
}

type frame struct {
	path  string
	depth int
}

// Scanner walks a source tree and resolves bucketing dates.
type Scanner struct {
	fs     fsops.FS
	ctx    *config.Context
	filter *filter.Filter
	report Reporter
}

// New creates a Scanner for the given context.
func New(fs fsops.FS, ctx *config.Context, report Reporter) *Scanner {
	return &Scanner{
		fs:     fs,
		ctx:    ctx,
		filter: ctx.Filter(),
		report: report,
	}
}

// Scan traverses the source root and returns the selected files. Per-file
// errors are recorded in the result unless fail-fast is set, in which case
// the first one aborts the scan.
func (s *Scanner) Scan() (*Result, error) {
	rootInfo, err := s.fs.Lstat(s.ctx.SourceRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to access source directory: %w", err)
	}
	if !rootInfo.IsDir() {
		return nil, fmt.Errorf("source %q is not a directory", s.ctx.SourceRoot)
	}

	res := &Result{}
	visited := make(map[identity]bool)
	if dev, ino, ok := fsops.Identity(rootInfo); ok {
		visited[identity{dev, ino}] = true
	}

	work := []frame{{path: s.ctx.SourceRoot, depth: 0}}
	for len(work) > 0 {
		cur := work[0]
		work = work[1:]

		entries, err := s.fs.ReadDir(cur.path)
		if err != nil {
			if failErr := s.recordFailure(res, cur.path, err); failErr != nil {
				return nil, failErr
			}
			continue
		}

		for _, entry := range entries {
			full := filepath.Join(cur.path, entry.Name())
			mode := entry.Type()

			switch {
			case mode&os.ModeSymlink != 0:
				// Never followed, never moved - a planted symlink must not
				// redirect the walk or the moves outside the boundary.
				res.SymlinksSkipped++
				if dest, err := s.fs.Readlink(full); err == nil {
					s.report.Warnf("skipping symlink: %s -> %s", full, dest)
				} else {
					s.report.Warnf("skipping symlink: %s", full)
				}
			case mode.IsDir():
				if err := s.visitDir(res, &work, visited, full, cur.depth); err != nil {
					return nil, err
				}
			case mode.IsRegular():
				if err := s.visitFile(res, full, entry.Name()); err != nil {
					return nil, err
				}
			default:
				s.report.Warnf("skipping special file: %s", full)
			}
		}
	}

	return res, nil
}

func (s *Scanner) visitDir(res *Result, work *[]frame, visited map[identity]bool, full string, depth int) error {
	if !s.ctx.Recursive {
		return nil
	}
	if pathutil.ContainsOrEqual(s.ctx.OutputRoot, full) {
		return nil
	}
	if depth+1 > MaxScanDepth {
		s.report.Warnf("skipping %s: max scan depth (%d) exceeded", full, MaxScanDepth)
		return nil
	}

	info, err := s.fs.Lstat(full)
	if err != nil {
		return s.recordFailure(res, full, err)
	}
	if dev, ino, ok := fsops.Identity(info); ok {
		id := identity{dev, ino}
		if visited[id] {
			s.report.Warnf("skipping %s: directory already visited (cycle)", full)
			return nil
		}
		visited[id] = true
	}

	*work = append(*work, frame{path: full, depth: depth + 1})
	return nil
}

func (s *Scanner) visitFile(res *Result, full, name string) error {
	if pathutil.Contains(s.ctx.OutputRoot, full) {
		return nil
	}
	if !s.filter.ShouldProcess(name) {
		return nil
	}

	info, err := s.fs.Lstat(full)
	if err != nil {
		// File removed mid-scan or metadata unreadable
		return s.recordFailure(res, full, err)
	}

	date, fallback := ResolveDate(full, info, s.ctx.DateSource)
	if fallback {
		s.report.Warnf("%s: no creation time available, using modification time", full)
	}

	dev, ino, _ := fsops.Identity(info)
	res.Files = append(res.Files, ScannedFile{
		Path: full,
		Date: date,
		Dev:  dev,
		Ino:  ino,
	})
	return nil
}

// recordFailure logs a per-file error and records it, or returns it when
// fail-fast is set.
func (s *Scanner) recordFailure(res *Result, path string, err error) error {
	if s.ctx.FailFast {
		return fmt.Errorf("%s: %w", path, err)
	}
	s.report.Warnf("%s: %v", path, err)
	res.Failures = append(res.Failures, Failure{Path: path, Err: err})
	return nil
}
