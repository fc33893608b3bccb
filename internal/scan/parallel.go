package scan

import (
	"context"
	"io/fs"
	"os"
	"path"
	"time"

	"golang.org/x/sync/errgroup"
)

const statBatchSize = 64

type statCandidate struct {
	rel  string
	d    fs.DirEntry
	info fs.FileInfo
	err  error
}

// walkParallel enumerates like walk but reads metadata for batches of
// candidate entries concurrently. Batches are drained in enumeration order,
// so the emitted stream is identical to the sequential one. A stat failure
// is contained to its own entry.
func (s *Scanner) walkParallel(ctx context.Context, req Request, root string, now time.Time, emit func(FileRecord) bool) error {
	pat := req.pattern()
	batch := make([]statCandidate, 0, statBatchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		var eg errgroup.Group
		eg.SetLimit(req.StatWorkers)
		for i := range batch {
			c := &batch[i]
			eg.Go(func() error {
				c.info, c.err = c.d.Info()
				return nil
			})
		}
		_ = eg.Wait()

		for i := range batch {
			c := &batch[i]
			if c.err != nil {
				s.warnEntry(root, c.rel, c.err)
				continue
			}
			rec, ok := buildRecord(root, c.rel, c.info, &req, now)
			if !ok {
				continue
			}
			if !emit(rec) {
				return errStopped
			}
		}
		batch = batch[:0]
		return nil
	}

	err := fs.WalkDir(os.DirFS(root), ".", func(p string, d fs.DirEntry, err error) error {
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
		batch = append(batch, statCandidate{rel: p, d: d})
		if len(batch) == statBatchSize {
			return flush()
		}
		return nil
	})
	if err != nil {
		return err
	}
	return flush()
}
