//go:build darwin

package fsops

import (
	"time"

	"golang.org/x/sys/unix"
)

// Birthtime returns the file creation time from the Darwin stat structure,
// which always carries a birth-time field.
func Birthtime(path string) (time.Time, bool) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return time.Time{}, false
	}
	if st.Birthtimespec.Sec == 0 && st.Birthtimespec.Nsec == 0 {
		return time.Time{}, false
	}
	return time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec), true
}
