//go:build !darwin && !windows

package scan

import (
	"io/fs"
	"time"
)

// creationTime falls back to the modification time. Linux does not reliably
// expose birth time through syscall.Stat_t; statx would be required for
// filesystems that record one.
func creationTime(info fs.FileInfo) time.Time {
	return info.ModTime()
}
