package engine

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/zeebo/xxh3"
)

// acquireRunLock takes a non-blocking advisory lock keyed to the real source
// root, so two executions cannot interleave moves on the same tree. The lock
// file lives under the system temp directory; dry-run never reaches here, so
// the organized tree stays untouched by locking.
func (e *Engine) acquireRunLock(sourceRoot string) (*flock.Flock, error) {
	real, err := e.fs.RealPath(sourceRoot)
	if err != nil {
		real = filepath.Clean(sourceRoot)
	}

	name := fmt.Sprintf("tidydate-%x.lock", xxh3.HashString(real))
	lock := flock.New(filepath.Join(os.TempDir(), name))

	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire run lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrLocked, sourceRoot)
	}
	return lock, nil
}
