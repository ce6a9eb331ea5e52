// Package dcel implements the planar subdivision (spec.md §4.2): an
// arena of vertices, twinned half-diagonals, and faces, addressed by small
// integer IDs rather than owning pointers or reference counting — the
// cyclic vertex/half-diagonal/face graph is representable purely through
// index fields (spec.md §9, "Cyclic mutable graph").
//
// A Subdivision starts as the bare polygon ring (n vertices, no diagonals)
// and is progressively refined by InsertDiagonal. SortDiagonals orders each
// vertex's outgoing diagonals by angle, a precondition for face enumeration
// (package faceenum) to produce simple, non-overlapping face cycles.
// ResetCursor/HasUnusedDiagonal/PopDiagonal expose the per-vertex
// "unused_diag_count" cursor that faceenum consumes while walking faces;
// LinkFaces stitches a set of enumerated face cycles back onto the
// half-diagonals that bound them.
package dcel
