// Package fsops provides the filesystem operations used by the organize
// engine.
//
// All filesystem access goes through the FS interface so that higher layers
// (scanner, executor, cleanup) stay testable and every mutation funnels
// through one audited surface. RealFS is the OS-backed implementation.
//
// Key features:
//   - Lstat-first discipline: entries are inspected without following symlinks
//   - Real-path resolution for boundary containment checks
//   - Copy helpers that sync before reporting success
//   - Device+inode identity and platform birth time (build-tagged)
package fsops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FS provides an abstraction for filesystem operations.
type FS interface {
	// Lstat returns file info without following symlinks.
	Lstat(path string) (os.FileInfo, error)

	// ReadDir reads the directory named by path and returns its entries.
	ReadDir(path string) ([]os.DirEntry, error)

	// Readlink reads the target of a symlink.
	Readlink(path string) (string, error)

	// RealPath resolves all symlinks in path and returns the canonical
	// absolute path.
	RealPath(path string) (string, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// Rename atomically renames oldpath to newpath. Fails with a LinkError
	// wrapping EXDEV when the two paths are on different filesystems.
	Rename(oldpath, newpath string) error

	// Remove removes a file or empty directory.
	Remove(path string) error

	// Exists checks if a path exists (without following symlinks).
	Exists(path string) (bool, error)

	// CopyFile copies a regular file from src to dst, creating parent
	// directories as needed and syncing before returning.
	CopyFile(src, dst string) error

	// CopyTemp copies src to a fresh temp file inside dir and returns the
	// temp path. The caller is responsible for renaming or removing it.
	CopyTemp(src, dir string) (string, error)
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// Lstat returns file info without following symlinks.
func (fs *RealFS) Lstat(path string) (os.FileInfo, error) {
	return os.Lstat(path)
}

// ReadDir reads the directory named by path and returns its entries.
func (fs *RealFS) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

// Readlink reads the target of a symlink.
func (fs *RealFS) Readlink(path string) (string, error) {
	return os.Readlink(path)
}

// RealPath resolves all symlinks in path.
func (fs *RealFS) RealPath(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}

// MkdirAll creates a directory and all parent directories.
func (fs *RealFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Rename atomically renames oldpath to newpath.
func (fs *RealFS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

// Remove removes a file or empty directory.
func (fs *RealFS) Remove(path string) error {
	return os.Remove(path)
}

// Exists checks if a path exists without following symlinks.
func (fs *RealFS) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// CopyFile copies a regular file from src to dst.
func (fs *RealFS) CopyFile(src, dst string) error {
	srcInfo, err := os.Lstat(src)
	if err != nil {
		return fmt.Errorf("failed to stat source: %w", err)
	}
	if !srcInfo.Mode().IsRegular() {
		return fmt.Errorf("source %q is not a regular file", src)
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer func() {
		_ = srcFile.Close()
	}()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}
	defer func() {
		_ = dstFile.Close()
	}()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return fmt.Errorf("failed to copy file contents: %w", err)
	}

	return dstFile.Sync()
}

// CopyTemp copies src into a fresh temp file inside dir. The temp file lands
// on the same filesystem as dir so a subsequent rename onto a sibling path
// is atomic.
func (fs *RealFS) CopyTemp(src, dir string) (string, error) {
	srcInfo, err := os.Lstat(src)
	if err != nil {
		return "", fmt.Errorf("failed to stat source: %w", err)
	}
	if !srcInfo.Mode().IsRegular() {
		return "", fmt.Errorf("source %q is not a regular file", src)
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("failed to open source: %w", err)
	}
	defer func() {
		_ = srcFile.Close()
	}()

	tmpFile, err := os.CreateTemp(dir, ".tidydate-tmp-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up the temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := io.Copy(tmpFile, srcFile); err != nil {
		return "", fmt.Errorf("failed to copy to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return "", fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, srcInfo.Mode().Perm()); err != nil {
		return "", fmt.Errorf("failed to set permissions: %w", err)
	}

	// Success - don't clean up the temp file
	tmpFile = nil
	return tmpPath, nil
}
