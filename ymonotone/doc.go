// Package ymonotone partitions a simple polygon into y-monotone pieces by
// a single top-to-bottom sweep, classifying each vertex as Start, End,
// Split, Merge, or Regular and inserting a diagonal wherever the sweep
// would otherwise have to backtrack (spec.md §4.4-4.5).
//
// The event queue, vertex classification, and the five per-class handlers
// mirror the reference partitioner vertex-for-vertex; the sweep status
// table itself lives in package sweep.
package ymonotone
