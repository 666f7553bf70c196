//go:build !unix

package fsops

import "os"

// Identity is unavailable on this platform; callers fall back to
// path-based visited tracking.
func Identity(info os.FileInfo) (dev, ino uint64, ok bool) {
	return 0, 0, false
}
