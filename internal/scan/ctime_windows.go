//go:build windows

package scan

import (
	"io/fs"
	"syscall"
	"time"
)

// creationTime returns the file's creation time as recorded by NTFS,
// falling back to the modification time.
func creationTime(info fs.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		return time.Unix(0, st.CreationTime.Nanoseconds())
	}
	return info.ModTime()
}
