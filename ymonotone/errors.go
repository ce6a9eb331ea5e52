// SPDX-License-Identifier: MIT
package ymonotone

import "errors"

// ErrTooFewVertices indicates Partition was called with fewer than 3
// vertices: no simple polygon, nothing to partition.
var ErrTooFewVertices = errors.New("ymonotone: polygon needs at least 3 vertices")

// ErrDuplicateVertex indicates two input points shared the same coordinate,
// which the sweep's total ordering (by y, then x) cannot break a tie on in
// a way that keeps the event queue well-formed.
var ErrDuplicateVertex = errors.New("ymonotone: duplicate vertex coordinate")

// ErrDegenerateSweep indicates that a non-empty sweep status held no edge
// left of a Split, Merge, or left-chain Regular vertex, or, when WithEpsilon
// is set, that two vertices adjacent in sweep order lie within the
// tolerance of each other. A predecessor query on an empty status is
// reported as sweep.ErrEmptyStatus instead.
var ErrDegenerateSweep = errors.New("ymonotone: no left edge found during sweep")
