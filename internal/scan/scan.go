// Package scan enumerates files beneath a root directory and filters them
// by age, streaming matches to the consumer as they are found.
package scan

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"time"

	"logsift/internal/progress"
)

// errStopped signals that the consumer stopped pulling records.
var errStopped = errors.New("scan stopped by consumer")

// Request describes one scan invocation.
type Request struct {
	// Root is the directory to scan. May use resolver shorthand such as a
	// leading "~". Required.
	Root string

	// Pattern is a glob matched against each entry's base name.
	// Empty means "*". A syntactically invalid pattern matches nothing.
	Pattern string

	// Recurse scans nested subdirectories; otherwise only direct children
	// of Root are considered.
	Recurse bool

	// OlderThanDays drops entries younger than the bound; YoungerThanDays
	// drops entries older than it. nil means unset. When both are set an
	// entry must satisfy both. Contradictory bounds are legal and simply
	// match nothing.
	OlderThanDays   *int
	YoungerThanDays *int

	// UseCreationDate ages entries by creation time rather than
	// modification time.
	UseCreationDate bool

	// StatWorkers > 1 reads metadata for batches of entries concurrently.
	// Output is identical to the sequential scan, including order.
	StatWorkers int
}

func (r *Request) validate() error {
	if r.OlderThanDays != nil && *r.OlderThanDays < 0 {
		return fmt.Errorf("olderThanDays must be non-negative, got %d", *r.OlderThanDays)
	}
	if r.YoungerThanDays != nil && *r.YoungerThanDays < 0 {
		return fmt.Errorf("youngerThanDays must be non-negative, got %d", *r.YoungerThanDays)
	}
	return nil
}

func (r *Request) pattern() string {
	if r.Pattern == "" {
		return "*"
	}
	return r.Pattern
}

// Scanner streams age-filtered FileRecords. The zero value scans the OS
// filesystem with default path resolution and default logging.
type Scanner struct {
	// Resolver expands the request root; nil uses DefaultResolver.
	Resolver PathResolver

	// Logger receives per-entry warnings and the end-of-scan summary.
	// nil uses slog.Default(). Diagnostics never appear in the record
	// stream itself.
	Logger *slog.Logger

	// Progress, when non-nil, is updated with the running record count.
	Progress progress.Tracker
}

func (s *Scanner) resolver() PathResolver {
	if s.Resolver != nil {
		return s.Resolver
	}
	return DefaultResolver
}

func (s *Scanner) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func (s *Scanner) tracker() progress.Tracker {
	if s.Progress != nil {
		return s.Progress
	}
	return progress.NoopTracker{}
}

// Scan resolves the request root and streams matching records. The sequence
// yields (record, nil) per match; a fatal failure terminates it with a
// single (zero record, error) pair. Records yielded before a mid-walk
// failure remain delivered. Breaking out of the loop cancels the walk with
// no side effects to undo.
//
// A single reference instant is captured before enumeration begins, so
// every age in one scan is computed against the same "now".
func (s *Scanner) Scan(ctx context.Context, req Request) iter.Seq2[FileRecord, error] {
	return func(yield func(FileRecord, error) bool) {
		if err := req.validate(); err != nil {
			yield(FileRecord{}, err)
			return
		}
		if req.Root == "" {
			yield(FileRecord{}, &ScanError{Kind: KindDirectoryNotFound, Path: req.Root})
			return
		}

		root, err := s.resolver().Resolve(req.Root)
		if err != nil {
			yield(FileRecord{}, &ScanError{Kind: KindDirectoryNotFound, Path: req.Root, Err: err})
			return
		}
		info, err := os.Stat(root)
		if err != nil {
			if os.IsNotExist(err) {
				yield(FileRecord{}, &ScanError{Kind: KindDirectoryNotFound, Path: req.Root, Err: err})
			} else {
				yield(FileRecord{}, &ScanError{Kind: KindEnumerationFailure, Path: req.Root, Err: err})
			}
			return
		}
		if !info.IsDir() {
			yield(FileRecord{}, &ScanError{Kind: KindDirectoryNotFound, Path: req.Root})
			return
		}

		prog := s.tracker()
		prog.SetMessage("scanning " + root)

		now := time.Now()
		count := 0
		emit := func(rec FileRecord) bool {
			if !yield(rec, nil) {
				return false
			}
			count++
			prog.SetDone(count)
			return true
		}

		if req.StatWorkers > 1 {
			err = s.walkParallel(ctx, req, root, now, emit)
		} else {
			err = s.walk(ctx, req, root, now, emit)
		}

		switch {
		case err == nil:
			s.logger().Debug(fmt.Sprintf("Found %d log file(s) in %s", count, root))
			prog.MarkFinished()
		case errors.Is(err, errStopped):
			// Consumer broke out of the loop; nothing left to report.
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			yield(FileRecord{}, err)
		default:
			serr := &ScanError{Kind: KindEnumerationFailure, Path: root, Err: err}
			prog.SetError(serr)
			yield(FileRecord{}, serr)
		}
	}
}

// walk is the sequential enumeration path.
func (s *Scanner) walk(ctx context.Context, req Request, root string, now time.Time, emit func(FileRecord) bool) error {
	pat := req.pattern()
	return fs.WalkDir(os.DirFS(root), ".", func(p string, d fs.DirEntry, err error) error {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if err != nil {
			if p == "." {
				return err
			}
			s.warnEntry(root, p, err)
			return nil
		}
		if d.IsDir() {
			if p != "." && !req.Recurse {
				return fs.SkipDir
			}
			return nil
		}
		if ok, merr := path.Match(pat, d.Name()); merr != nil || !ok {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			s.warnEntry(root, p, err)
			return nil
		}
		rec, ok := buildRecord(root, p, info, &req, now)
		if !ok {
			return nil
		}
		if !emit(rec) {
			return errStopped
		}
		return nil
	})
}

func (s *Scanner) warnEntry(root, rel string, err error) {
	s.logger().Warn(fmt.Sprintf("Could not process file %s: %v", absPath(root, rel), err))
}

func absPath(root, rel string) string {
	if rel == "." {
		return root
	}
	return filepath.Join(root, filepath.FromSlash(rel))
}

// buildRecord computes the entry's age against now and applies the age
// bounds. Returns false when the entry is filtered out.
func buildRecord(root, rel string, info fs.FileInfo, req *Request, now time.Time) (FileRecord, bool) {
	mod := info.ModTime()
	create := creationTime(info)
	ref := mod
	if req.UseCreationDate {
		ref = create
	}
	age := now.Sub(ref).Hours() / 24

	if req.OlderThanDays != nil && age < float64(*req.OlderThanDays) {
		return FileRecord{}, false
	}
	if req.YoungerThanDays != nil && age > float64(*req.YoungerThanDays) {
		return FileRecord{}, false
	}
	return FileRecord{
		Path:       absPath(root, rel),
		Size:       info.Size(),
		Mode:       info.Mode(),
		ModTime:    mod,
		CreateTime: create,
		RefTime:    ref,
		AgeDays:    age,
	}, true
}
