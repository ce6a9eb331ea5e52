// SPDX-License-Identifier: MIT
package faceenum

import "github.com/katalvlaran/polytri/dcel"

// frame is one level of the walk: the vertex where this face cycle began,
// the vertex currently being visited, the cycle accumulated so far, and
// whether control is resuming after a nested call closed (in which case
// the returned vertex is first checked against start, so a cycle that
// closes there does not list start twice; otherwise it is appended on the
// next pass of the loop).
type frame struct {
	start    dcel.VertexID
	idx      dcel.VertexID
	cycle    []dcel.VertexID
	resuming bool
}

// Enumerate walks sub's ring-plus-diagonal structure and returns every
// simple face cycle the diagonals cut it into. It sorts and resets sub's
// diagonal cursors itself, so it can be called again after more diagonals
// are added (e.g. once by the caller of ymonotone.Partition, again once by
// the caller of montri.Triangulate).
//
// The walk starts at vertex 0 and, at each vertex, either continues along
// the ring (no diagonal left to take) or follows the next unused diagonal
// in angle order. Following a diagonal opens a new face cycle rooted at
// the vertex being left; that cycle closes either by returning to its own
// root directly, or by the outer ring wrapping back around to it. This is
// the same walk the reference partitioner performs via recursion that
// mutates a shared per-vertex cursor; it is expressed here as an explicit
// stack of frames instead. The cursor itself is still the shared
// per-vertex one in dcel, consumed by PopDiagonal; frames do not hold a
// copy of it.
func Enumerate(sub *dcel.Subdivision) ([][]dcel.VertexID, error) {
	if sub.Len() == 0 {
		return nil, ErrEmptySubdivision
	}

	sub.SortDiagonals()
	sub.ResetCursor()

	var faces [][]dcel.VertexID
	stack := []frame{{start: 0, idx: 0}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if !top.resuming {
			top.cycle = append(top.cycle, top.idx)

			if sub.HasUnusedDiagonal(top.idx) {
				diag, err := sub.PopDiagonal(top.idx)
				if err != nil {
					return nil, err
				}
				if diag == top.start {
					faces = append(faces, top.cycle)
					closeFrame(&stack, top.idx)
					continue
				}
				stack = append(stack, frame{start: top.idx, idx: top.idx})
				continue
			}
			top.idx = sub.Next(top.idx)
		}
		top.resuming = false

		if top.idx == top.start && len(top.cycle) > 2 {
			faces = append(faces, top.cycle)
			closeFrame(&stack, top.idx)
			continue
		}
	}

	return faces, nil
}

// closeFrame pops the active frame and, if a parent frame remains, resumes
// it at the returning vertex, marking it resuming so the vertex is checked
// against the parent's start before it is appended to the parent's cycle.
func closeFrame(stack *[]frame, returned dcel.VertexID) {
	s := *stack
	s = s[:len(s)-1]
	if len(s) > 0 {
		parent := &s[len(s)-1]
		parent.idx = returned
		parent.resuming = true
	}
	*stack = s
}
