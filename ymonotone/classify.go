// SPDX-License-Identifier: MIT
package ymonotone

import (
	"github.com/katalvlaran/polytri/dcel"
	"github.com/katalvlaran/polytri/geom"
)

// VertexClass is the role a ring vertex plays in the y-monotone sweep.
type VertexClass int

const (
	Regular VertexClass = iota
	Start
	End
	Split
	Merge
)

func (c VertexClass) String() string {
	switch c {
	case Start:
		return "start"
	case End:
		return "end"
	case Split:
		return "split"
	case Merge:
		return "merge"
	default:
		return "regular"
	}
}

// classify determines v's role from its ring neighbors, combining the
// turn direction at v with whether v sits above or below both neighbors:
// a locally convex vertex above both neighbors starts a chain, a concave
// one splits one; below both neighbors, convex ends a chain and concave
// merges two. Anything else just continues a monotone chain.
func classify(sub *dcel.Subdivision, v dcel.VertexID) VertexClass {
	prev, next := sub.Prev(v), sub.Next(v)
	p, q, r := sub.Point(prev), sub.Point(v), sub.Point(next)

	turn := geom.Orient(p, q, r)
	height := geom.MiddleVertexStatus(p, q, r)

	switch {
	case turn == geom.CCW && height == geom.Convex:
		return Start
	case turn == geom.CCW && height == geom.Concave:
		return End
	case turn == geom.CW && height == geom.Convex:
		return Split
	case turn == geom.CW && height == geom.Concave:
		return Merge
	default:
		return Regular
	}
}

// interiorToRight reports whether the polygon interior lies to the right
// of v's incident chain, i.e. whether v's height status is a downward
// gradient. A regular vertex on the right chain is handled differently
// from one on the left chain.
func interiorToRight(sub *dcel.Subdivision, v dcel.VertexID) bool {
	prev, next := sub.Prev(v), sub.Next(v)
	p, q, r := sub.Point(prev), sub.Point(v), sub.Point(next)
	return geom.MiddleVertexStatus(p, q, r) == geom.GradientDown
}
