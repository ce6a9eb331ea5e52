// SPDX-License-Identifier: MIT
package dcel

import "github.com/katalvlaran/polytri/geom"

// VertexID indexes into Subdivision.vertices; it is also the input ring
// position, 0..n-1, and never changes once a Subdivision is built.
type VertexID int

// HalfDiagID indexes into Subdivision.halfDiagonals. Half-diagonals are
// created in twinned pairs and never deleted.
type HalfDiagID int

// FaceID indexes into Subdivision.faces. Faces exist only between
// enumeration passes; a later pass replaces the whole face list rather than
// mutating individual faces in place.
type FaceID int

// NoFace is the sentinel Face value of a half-diagonal that has not yet been
// linked to a face by LinkFaces.
const NoFace FaceID = -1

// Vertex is one polygon vertex plus the diagonals incident to it.
//
// Invariant: Diagonals[k] and HalfDiagonals[k] describe the same logical
// edge; HalfDiagonals[k].Origin equals this vertex's own index.
type Vertex struct {
	Point geom.Point

	// Diagonals holds peer vertex indices, in insertion order until
	// SortDiagonals re-orders them by angle.
	Diagonals []VertexID

	// HalfDiagonals is parallel to Diagonals.
	HalfDiagonals []HalfDiagID

	// cursor is the spec's unused_diag_count: a face-walk bookkeeping
	// field, reset to len(Diagonals) before each enumeration pass by
	// ResetCursor and decremented by PopDiagonal.
	cursor int
}

// HalfDiagonal is one of the two directed halves of an inserted diagonal.
type HalfDiagonal struct {
	Origin, End VertexID
	Twin        HalfDiagID
	Face        FaceID
}

// Face is a maximal region bounded by polygon edges and diagonals: a
// monotone piece before triangulation, a triangle after.
type Face struct {
	// Vertices is the CCW vertex-index cycle bounding this face.
	Vertices []VertexID
	// Centroid is the arithmetic mean of Vertices' points.
	Centroid geom.Point
	// Bounding holds, for each diagonal edge of the cycle (boundary ring
	// edges are excluded), the half-diagonal that traces it.
	Bounding []HalfDiagID
}

// Subdivision is the planar subdivision of one simple polygon: the
// immutable vertex ring plus the diagonals and faces added on top of it.
type Subdivision struct {
	vertices      []Vertex
	halfDiagonals []HalfDiagonal
	faces         []Face
}
