// Package coloring three-colors the vertices of a triangulated planar
// subdivision (spec.md §4.8). Every triangle entered across a diagonal
// already has that diagonal's two endpoints colored, so its third vertex
// takes the one remaining color; this package assigns them by walking the dual graph
// (the twinned half-diagonals between triangles) from a seed face.
package coloring
