package scan

import (
	"context"
	"errors"
	"iter"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectSorted_PathOrder(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"zeta.log", "alpha.log", "mid.log"} {
		writeAgedFile(t, tmpDir, name, days(1))
	}
	subdir := filepath.Join(tmpDir, "aaa")
	require.NoError(t, os.Mkdir(subdir, 0755))
	writeAgedFile(t, subdir, "nested.log", days(1))

	s := &Scanner{}
	records, err := CollectSorted(s.Scan(context.Background(), Request{Root: tmpDir, Recurse: true}))
	require.NoError(t, err)
	require.Len(t, records, 4)

	paths := make([]string, len(records))
	for i, rec := range records {
		paths[i] = rec.Path
	}
	assert.True(t, sort.StringsAreSorted(paths), "paths not sorted: %v", paths)
}

func TestCollectSorted_KeepsPartialResultsOnFailure(t *testing.T) {
	boom := errors.New("enumeration died")
	seq := iter.Seq2[FileRecord, error](func(yield func(FileRecord, error) bool) {
		if !yield(FileRecord{Path: "/b"}, nil) {
			return
		}
		if !yield(FileRecord{Path: "/a"}, nil) {
			return
		}
		yield(FileRecord{}, boom)
	})

	records, err := CollectSorted(seq)
	assert.ErrorIs(t, err, boom)
	require.Len(t, records, 2)
	assert.Equal(t, "/a", records[0].Path)
	assert.Equal(t, "/b", records[1].Path)
}
