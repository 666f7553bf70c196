//go:build !linux && !darwin

package fsops

import "time"

// Birthtime is unavailable on this platform; callers fall back to the
// modification time.
func Birthtime(path string) (time.Time, bool) {
	return time.Time{}, false
}
