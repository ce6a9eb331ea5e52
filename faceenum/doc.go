// Package faceenum walks a diagonalized subdivision's vertices to emit the
// simple face cycles the diagonals cut it into (spec.md §4.6): each y-monotone
// piece after ymonotone.Partition, each triangle after montri.Triangulate.
//
// The walk is driven by an explicit stack of (start, vertex, cycle) frames
// rather than recursion. The unused-diagonal cursor is not part of a frame:
// it stays on each dcel vertex, is consumed through PopDiagonal in the same
// order the recursive walk consumes it, and is shared by every frame that
// passes through that vertex. Enumerate resets all cursors before it starts.
package faceenum
