// Package geom provides the geometric primitives the triangulation pipeline
// is built on: a 2D point, orientation of an ordered vertex triple, the
// "middle vertex" height classification used by the monotone-partition
// sweep, and the CCW angle in [0, 2π) between two vectors sharing an origin.
//
// Points wrap github.com/go-gl/mathgl's mgl32.Vec2 so that dot products and
// vector subtraction reuse a vetted implementation instead of hand-rolled
// arithmetic; only the 2D cross product (which mgl32 has no primitive for,
// since it returns a scalar rather than a vector) is computed directly.
package geom
