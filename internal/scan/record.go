package scan

import (
	"io/fs"
	"time"
)

// FileRecord is a point-in-time snapshot of one matching file. It is handed
// to the consumer as soon as the file passes the age filters and is never
// revalidated afterwards.
type FileRecord struct {
	// Path is the absolute path of the file.
	Path string
	Size int64
	Mode fs.FileMode

	ModTime    time.Time
	CreateTime time.Time

	// RefTime is the timestamp the age filters were applied against:
	// CreateTime when the request asked for creation dates, ModTime
	// otherwise.
	RefTime time.Time

	// AgeDays is the elapsed time between RefTime and the scan's reference
	// instant, in fractional days. Negative for timestamps in the future.
	AgeDays float64
}
