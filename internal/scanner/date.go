package scanner

import (
	"os"
	"time"

	"github.com/danieljhkim/tidydate/internal/config"
	"github.com/danieljhkim/tidydate/internal/fsops"
)

// ResolveDate derives the bucketing date for a file.
//
// For SourceCreated the platform birth time is used when the filesystem
// records one; otherwise the modification time is substituted and fallback
// is reported so callers can warn once per file. For SourceModified the
// modification time is used directly. The metadata change time (ctime) is
// never consulted: on POSIX systems it is not a creation time and would
// silently misdate files.
//
// Bucketing is by local calendar day, so a file written at 23:30 local time
// lands in that day's bucket regardless of its UTC date.
func ResolveDate(path string, info os.FileInfo, source config.DateSource) (date time.Time, fallback bool) {
	switch source {
	case config.SourceCreated:
		if bt, ok := fsops.Birthtime(path); ok {
			return bt.Local(), false
		}
		return info.ModTime().Local(), true
	case config.SourceModified:
		return info.ModTime().Local(), false
	default:
		return info.ModTime().Local(), false
	}
}
