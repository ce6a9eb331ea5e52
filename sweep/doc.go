// Package sweep implements the sweep-line status structure of spec.md
// §4.3: an ordered map from a quantized edge-x key to (edge origin, helper)
// pairs, answering "largest key whose edge lies strictly left of a query
// vertex" (Predecessor) plus insert/erase/update-helper.
//
// The ordered map is backed by github.com/google/btree's generic BTreeG,
// the same library github.com/mikenye/geom2d uses for its own sweep-line
// status structure (linesegment/sweepline.go) — an ordered tree is exactly
// the role a sweep status plays, so this module reuses it rather than
// hand-rolling a sorted-slice binary search.
package sweep
