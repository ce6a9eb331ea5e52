// SPDX-License-Identifier: MIT
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Point is a finite 2D point. It wraps mgl32.Vec2 so that vector algebra
// (Sub, Dot, Len) is delegated to mathgl rather than re-implemented.
type Point struct {
	v mgl32.Vec2
}

// NewPoint builds a Point from its coordinates.
func NewPoint(x, y float32) Point {
	return Point{v: mgl32.Vec2{x, y}}
}

// X returns the point's x coordinate.
func (p Point) X() float32 { return p.v[0] }

// Y returns the point's y coordinate.
func (p Point) Y() float32 { return p.v[1] }

// Vec2 exposes the underlying mgl32.Vec2 for callers that want to chain
// further mathgl operations (e.g. matrix transforms upstream of this module).
func (p Point) Vec2() mgl32.Vec2 { return p.v }

// Sub returns the vector from other to p (p - other).
func (p Point) Sub(other Point) mgl32.Vec2 { return p.v.Sub(other.v) }

// Orientation classifies the turn formed by the ordered triple (p, q, r) by
// comparing the slopes of p->q and p->r, per spec: compares
// (q.y-p.y)(r.x-p.x) against (r.y-p.y)(q.x-p.x).
type Orientation int

const (
	// CollinearOrientation is never expected for well-formed input; NaN
	// comparisons also fall through to it since all branches below are
	// false when either operand is NaN.
	CollinearOrientation Orientation = iota
	CW
	CCW
)

// Orient returns CW, CCW, or CollinearOrientation for the ordered triple (p, q, r).
func Orient(p, q, r Point) Orientation {
	slopePQ := (q.Y() - p.Y()) * (r.X() - p.X())
	slopePR := (r.Y() - p.Y()) * (q.X() - p.X())
	switch {
	case slopePQ > slopePR:
		return CW
	case slopePQ < slopePR:
		return CCW
	default:
		return CollinearOrientation
	}
}

// MiddleStatus classifies the middle vertex q of an ordered triple (p, q, r)
// by comparing q's height to its neighbors.
type MiddleStatus int

const (
	Convex MiddleStatus = iota // q is the highest of the three
	Concave
	GradientUp   // y rises monotonically p -> q -> r
	GradientDown // y falls monotonically p -> q -> r
)

// MiddleVertexStatus classifies q relative to p and r using (q.y>=p.y, q.y<=r.y).
func MiddleVertexStatus(p, q, r Point) MiddleStatus {
	above := q.Y() >= p.Y()
	below := q.Y() <= r.Y()
	switch {
	case above && !below:
		return Convex
	case !above && below:
		return Concave
	case above && below:
		return GradientUp
	default:
		return GradientDown
	}
}

// Angle returns the angle in [0, 2π), measured counter-clockwise, from the
// vector cur->next to the vector cur->target. The cross product's sign
// picks between acos and 2π-acos since mgl32 has no 2D cross primitive.
func Angle(cur, next, target Point) float64 {
	v1 := next.Sub(cur)
	v2 := target.Sub(cur)

	dot := float64(v1.Dot(v2))
	cross := float64(v1[0])*float64(v2[1]) - float64(v1[1])*float64(v2[0])

	n1 := float64(v1.Len())
	n2 := float64(v2.Len())
	cosTheta := dot / (n1 * n2)
	// Clamp against float rounding pushing slightly outside [-1, 1].
	if cosTheta > 1 {
		cosTheta = 1
	} else if cosTheta < -1 {
		cosTheta = -1
	}
	theta := math.Acos(cosTheta)
	if cross < 0 {
		theta = 2*math.Pi - theta
	}
	return theta
}
