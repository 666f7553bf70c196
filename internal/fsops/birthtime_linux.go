//go:build linux

package fsops

import (
	"time"

	"golang.org/x/sys/unix"
)

// Birthtime returns the file creation time via statx, which exposes the
// birth-time field on filesystems that record it (ext4, xfs, btrfs). Returns
// ok=false when the kernel or filesystem does not provide it.
func Birthtime(path string) (time.Time, bool) {
	var stx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, path, unix.AT_SYMLINK_NOFOLLOW, unix.STATX_BTIME, &stx)
	if err != nil {
		return time.Time{}, false
	}
	if stx.Mask&unix.STATX_BTIME == 0 {
		return time.Time{}, false
	}
	if stx.Btime.Sec == 0 && stx.Btime.Nsec == 0 {
		return time.Time{}, false
	}
	return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), true
}
