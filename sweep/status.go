// SPDX-License-Identifier: MIT
package sweep

import (
	"fmt"

	"github.com/google/btree"

	"github.com/katalvlaran/polytri/dcel"
)

// Key is a quantized x-coordinate: round(x*100). Quantizing avoids float
// equality comparisons driving tree ordering, matching the magnified
// integer key the partitioner's source algorithm uses.
type Key int32

// QuantizeX converts a coordinate to its status-structure key.
func QuantizeX(x float32) Key {
	if x >= 0 {
		return Key(x*100 + 0.5)
	}
	return Key(x*100 - 0.5)
}

// Entry is one active-edge record: the diagonal-insertion helper currently
// assigned to the edge starting at Origin, plus enough of the edge's own
// geometry (EdgeMinX) to answer Predecessor queries without the status
// structure needing to know about the subdivision it came from.
type Entry struct {
	Key      Key
	Origin   dcel.VertexID
	Helper   dcel.VertexID
	EdgeMinX float32
}

func less(a, b Entry) bool { return a.Key < b.Key }

// Status is the sweep-line active-edge table. It is an ordered map keyed by
// Key, backed by google/btree's generic BTreeG — the same structure
// github.com/mikenye/geom2d's sweep line uses for its own active-edge set.
type Status struct {
	tree *btree.BTreeG[Entry]
}

// New returns an empty Status.
func New() *Status {
	return &Status{tree: btree.NewG(32, less)}
}

// Len returns the number of active entries.
func (s *Status) Len() int { return s.tree.Len() }

// Insert adds or replaces the entry for key.
func (s *Status) Insert(key Key, origin, helper dcel.VertexID, edgeMinX float32) {
	s.tree.ReplaceOrInsert(Entry{Key: key, Origin: origin, Helper: helper, EdgeMinX: edgeMinX})
}

// Find returns the entry stored under key.
func (s *Status) Find(key Key) (Entry, error) {
	e, ok := s.tree.Get(Entry{Key: key})
	if !ok {
		return Entry{}, fmt.Errorf("Find(%d): %w", key, ErrKeyNotFound)
	}
	return e, nil
}

// Erase removes the entry stored under key.
func (s *Status) Erase(key Key) error {
	_, ok := s.tree.Delete(Entry{Key: key})
	if !ok {
		return fmt.Errorf("Erase(%d): %w", key, ErrKeyNotFound)
	}
	return nil
}

// UpdateHelper replaces the Helper field of the entry stored under key,
// leaving EdgeMinX and Origin untouched.
func (s *Status) UpdateHelper(key Key, helper dcel.VertexID) error {
	e, ok := s.tree.Get(Entry{Key: key})
	if !ok {
		return fmt.Errorf("UpdateHelper(%d): %w", key, ErrKeyNotFound)
	}
	e.Helper = helper
	s.tree.ReplaceOrInsert(e)
	return nil
}

// Predecessor returns the entry whose edge lies strictly left of queryX:
// among entries satisfying EdgeMinX <= queryX, the one with the largest
// key. Entries are walked in ascending key order and the last satisfying
// entry is kept, matching the partition-point search of the structure this
// one is modeled on — but done as a scan rather than a binary search, since
// the predicate is not guaranteed monotonic in key order for a malformed
// sweep state, and a scan degrades gracefully where a binary search would
// not.
//
// Reports ok=false when no entry satisfies the predicate, including on an
// empty status; callers must treat that as ErrEmptyStatus or
// ErrDegenerateSweep depending on context.
func (s *Status) Predecessor(queryX float32) (Entry, bool) {
	var best Entry
	found := false
	s.tree.Ascend(func(e Entry) bool {
		if e.EdgeMinX <= queryX {
			best = e
			found = true
		}
		return true
	})
	return best, found
}
