//go:build darwin

package scan

import (
	"io/fs"
	"syscall"
	"time"
)

// creationTime returns the file's birth time when the platform exposes one,
// falling back to the modification time.
func creationTime(info fs.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec)
	}
	return info.ModTime()
}
