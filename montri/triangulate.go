// SPDX-License-Identifier: MIT
package montri

import (
	"sort"

	"github.com/katalvlaran/polytri/dcel"
	"github.com/katalvlaran/polytri/geom"
)

// side is which chain of a monotone polygon a vertex belongs to, relative
// to the polygon's top and bottom vertex.
type side int

const (
	left side = iota
	right
)

// whichSide classifies idx by comparing it against top and bottom purely
// by vertex-index order: the vertices reached by walking increasing indices
// from top (wrapping past the highest index) before reaching bottom are
// "left", all others (top and bottom included) are "right" — the polygon's
// construction guarantees index order already tracks chain membership, so
// no coordinate comparison is needed here.
func whichSide(idx, top, bottom dcel.VertexID) side {
	if idx == top || idx == bottom {
		return right
	}
	topBeforeBottom := top < bottom
	between := !((idx < top && idx < bottom) || (idx > top && idx > bottom))
	if between == topBeforeBottom {
		return left
	}
	return right
}

// onSameSide reports the shared side of idx1 and idx2, or ok=false if they
// fall on opposite sides of the top-bottom split.
func onSameSide(idx1, idx2, top, bottom dcel.VertexID) (side, bool) {
	s1, s2 := whichSide(idx1, top, bottom), whichSide(idx2, top, bottom)
	if s1 == left && s2 == left {
		return left, true
	}
	if s1 == right && s2 == right {
		return right, true
	}
	return 0, false
}

// insideMonoPoly reports whether the diagonal (lastlast, cur) stays inside
// the monotone polygon, given that cur and last share side: on the left
// chain the turn last->lastlast as seen from cur must be clockwise, on the
// right chain counter-clockwise.
func insideMonoPoly(sub *dcel.Subdivision, cur, last, lastlast dcel.VertexID, s side) bool {
	o := geom.Orient(sub.Point(cur), sub.Point(last), sub.Point(lastlast))
	switch {
	case s == left && o == geom.CW:
		return true
	case s == right && o == geom.CCW:
		return true
	default:
		return false
	}
}

// Triangulate inserts the diagonals that split one y-monotone face
// (monotonePoly, a CCW vertex cycle from faceenum.Enumerate) into
// triangles, via a second top-to-bottom sweep over its vertices.
func Triangulate(sub *dcel.Subdivision, monotonePoly []dcel.VertexID) error {
	if len(monotonePoly) == 0 {
		return ErrEmptyMonotonePolygon
	}
	if len(monotonePoly) <= 3 {
		return nil // already a triangle
	}

	events := append([]dcel.VertexID(nil), monotonePoly...)
	sort.SliceStable(events, func(a, b int) bool {
		pa, pb := sub.Point(events[a]), sub.Point(events[b])
		if pa.Y() != pb.Y() {
			return pa.Y() < pb.Y()
		}
		return pa.X() > pb.X()
	})

	top := pop(&events)
	bottom := events[0]
	prevEvent := pop(&events)

	stack := []dcel.VertexID{top, prevEvent}

	for len(events) > 0 {
		event := pop(&events)

		if s, ok := onSameSide(event, stack[len(stack)-1], top, bottom); ok {
			last := pop(&stack)
			for len(stack) > 0 {
				lastlast := pop(&stack)
				if insideMonoPoly(sub, event, last, lastlast, s) {
					sub.InsertDiagonal(lastlast, event)
					last = lastlast
				} else {
					stack = append(stack, lastlast)
					break
				}
			}
			stack = append(stack, last, event)
		} else {
			for len(stack) > 0 {
				v := pop(&stack)
				sub.InsertDiagonal(v, event)
			}
			stack = append(stack, prevEvent, event)
		}

		if len(events) == 1 {
			break
		}
		prevEvent = event
	}

	// The one event left unconsumed by the loop above is always the
	// polygon's bottom vertex: every pop comes from the high end of a
	// slice sorted ascending by (y, -x), and bottom sits at index 0.
	pop(&events)
	if len(stack) > 2 {
		for _, v := range stack[1 : len(stack)-1] {
			sub.InsertDiagonal(bottom, v)
		}
	}
	return nil
}

func pop(s *[]dcel.VertexID) dcel.VertexID {
	old := *s
	v := old[len(old)-1]
	*s = old[:len(old)-1]
	return v
}
