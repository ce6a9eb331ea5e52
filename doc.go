// Package polytri triangulates and three-colors simple polygons.
//
// Given a polygon as a CCW ring of points, Triangulate partitions it into
// y-monotone pieces (package ymonotone), triangulates each piece (package
// montri), and hands back the resulting planar subdivision (package dcel)
// along with the monotone pieces and final triangles as point cycles.
// Color then three-colors the triangulated subdivision's vertices by
// walking its dual graph (package coloring), and NearestFace returns the
// triangle whose centroid is closest to an arbitrary query point.
//
// Under the hood:
//
//	geom/      — point type and orientation/angle predicates
//	dcel/      — the planar subdivision: vertices, half-diagonals, faces
//	sweep/     — the sweep-line active-edge table
//	ymonotone/ — y-monotone polygon partitioning
//	faceenum/  — face-cycle enumeration from a diagonalized subdivision
//	montri/    — monotone polygon triangulation
//	coloring/  — three-coloring of a triangulated subdivision
//
// Each subpackage is usable on its own; this package is a convenience
// facade wiring them into the full pipeline.
package polytri
