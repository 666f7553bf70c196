//go:build unix

package fsops

import (
	"os"
	"syscall"
)

// Identity extracts the device and inode numbers from file info. The pair
// uniquely identifies a file on a host and is used for traversal cycle
// detection. Returns ok=false when the platform stat data is unavailable.
func Identity(info os.FileInfo) (dev, ino uint64, ok bool) {
	st, castOK := info.Sys().(*syscall.Stat_t)
	if !castOK {
		return 0, 0, false
	}
	return uint64(st.Dev), uint64(st.Ino), true
}
