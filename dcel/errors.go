// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the dcel package.
//
// Error policy (matches builder/errors.go in spirit): only sentinel
// variables are exported; callers branch with errors.Is; call sites wrap
// with fmt.Errorf("%s: %w", ...) for context, never restate the sentinel
// text.

package dcel

import "errors"

// ErrVertexOutOfRange indicates a VertexID outside [0, n) was used to index
// the subdivision. This is always an InvariantViolation: the caller (or an
// upstream pipeline stage) produced a bad index.
var ErrVertexOutOfRange = errors.New("dcel: vertex index out of range")

// ErrEmptyFaceVertices indicates Face centroid computation was attempted on
// a zero-length vertex cycle.
var ErrEmptyFaceVertices = errors.New("dcel: face has no vertices")

// ErrNoUnusedDiagonal indicates PopDiagonal was called on a vertex whose
// cursor is already zero.
var ErrNoUnusedDiagonal = errors.New("dcel: no unused diagonal at vertex")

// ErrHalfDiagonalNotFound indicates LinkFaces could not find the
// half-diagonal tracing a face's claimed diagonal edge; this means the face
// cycle was not produced by this subdivision's own diagonals.
var ErrHalfDiagonalNotFound = errors.New("dcel: half-diagonal not found for face edge")
