// SPDX-License-Identifier: MIT
//
// errors.go — the pipeline's sentinel error families. Each subpackage
// defines its own specific sentinels (ymonotone.ErrTooFewVertices,
// dcel.ErrVertexOutOfRange, ...); Triangulate, Color, and NearestFace
// reclassify whichever of those surface into one of these four families so
// that callers who only care about the category, not the exact subpackage,
// can branch with a single errors.Is.

package polytri

import "errors"

// ErrMalformedInput indicates the input point set itself is unusable: too
// few points, or two points at the same coordinate.
var ErrMalformedInput = errors.New("polytri: malformed input polygon")

// ErrDegenerateSweep indicates the sweep status held no left-neighbor edge
// when one was needed, or that two vertices lie within the tolerance set by
// WithSweepEpsilon.
var ErrDegenerateSweep = errors.New("polytri: degenerate sweep state")

// ErrInvariantViolation indicates an internal consistency check failed:
// an out-of-range index, a missing half-diagonal, a missing sweep-status
// entry, a predecessor query on an empty sweep status. These indicate either
// a bug in this module or an input ring the sweep cannot handle (for
// example a degenerate ring of collinear vertices).
var ErrInvariantViolation = errors.New("polytri: internal invariant violation")

// ErrEmptyTraversal indicates Color was given a seed face outside the
// subdivision's face list, or NearestFace was called on a subdivision with
// no faces yet linked.
var ErrEmptyTraversal = errors.New("polytri: no faces to traverse")
