package scan

import (
	"iter"

	"github.com/google/btree"
)

// CollectSorted drains a record stream into a slice ordered by path.
// Enumeration order is filesystem-dependent; sorting makes two scans of the
// same snapshot directly comparable. If the stream terminates with a fatal
// error, the records delivered before the failure are returned alongside it.
func CollectSorted(seq iter.Seq2[FileRecord, error]) ([]FileRecord, error) {
	tree := btree.NewG[FileRecord](32, func(a, b FileRecord) bool { return a.Path < b.Path })
	var scanErr error
	for rec, err := range seq {
		if err != nil {
			scanErr = err
			break
		}
		tree.ReplaceOrInsert(rec)
	}

	records := make([]FileRecord, 0, tree.Len())
	tree.Ascend(func(rec FileRecord) bool {
		records = append(records, rec)
		return true
	})
	return records, scanErr
}
