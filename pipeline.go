// SPDX-License-Identifier: MIT
package polytri

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/polytri/coloring"
	"github.com/katalvlaran/polytri/dcel"
	"github.com/katalvlaran/polytri/faceenum"
	"github.com/katalvlaran/polytri/geom"
	"github.com/katalvlaran/polytri/montri"
	"github.com/katalvlaran/polytri/sweep"
	"github.com/katalvlaran/polytri/ymonotone"
)

// Color is a vertex color, aliasing coloring.Color so callers never need
// to import the coloring package just to name the type.
type Color = coloring.Color

const (
	Black = coloring.Black
	Red   = coloring.Red
	Green = coloring.Green
	Blue  = coloring.Blue
)

// Result is the output of Triangulate: the diagonalized subdivision, its
// monotone pieces, and its final triangles, the latter two as point
// cycles ready to hand to a renderer.
type Result struct {
	Subdivision *dcel.Subdivision
	Monotone    [][]geom.Point
	Triangles   [][]geom.Point
}

// Triangulate partitions the simple CCW polygon points into y-monotone
// pieces and then triangulates each piece, in one pass: monotone
// partitioning (ymonotone), face enumeration (faceenum), monotone
// triangulation (montri), and a second face enumeration to read off the
// final triangles.
func Triangulate(points []geom.Point, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sub := dcel.New(points)

	partitionOpts := []ymonotone.Option{}
	if o.OnClassify != nil {
		partitionOpts = append(partitionOpts, ymonotone.WithOnClassify(o.OnClassify))
	}
	if o.OnDiagonal != nil {
		partitionOpts = append(partitionOpts, ymonotone.WithOnDiagonal(o.OnDiagonal))
	}
	if o.SweepEpsilon > 0 {
		partitionOpts = append(partitionOpts, ymonotone.WithEpsilon(o.SweepEpsilon))
	}
	if err := ymonotone.Partition(sub, partitionOpts...); err != nil {
		return nil, classifyPartitionErr(err)
	}

	monotoneFaces, err := faceenum.Enumerate(sub)
	if err != nil {
		return nil, classifyEnumErr(err)
	}
	monotone := facesToPoints(sub, monotoneFaces)

	for _, face := range monotoneFaces {
		if err := montri.Triangulate(sub, face); err != nil {
			return nil, fmt.Errorf("polytri: Triangulate: %w: %w", ErrInvariantViolation, err)
		}
	}

	triangleFaces, err := faceenum.Enumerate(sub)
	if err != nil {
		return nil, classifyEnumErr(err)
	}
	if _, err := sub.LinkFaces(triangleFaces); err != nil {
		return nil, fmt.Errorf("polytri: Triangulate: %w: %w", ErrInvariantViolation, err)
	}
	triangles := facesToPoints(sub, triangleFaces)

	return &Result{Subdivision: sub, Monotone: monotone, Triangles: triangles}, nil
}

// Color three-colors sub's vertices by walking the dual graph of its
// current (triangulated) face list, starting from seedFace. A negative
// seedFace uses the configured WithColorSeedFace default (0 unless set).
func Color(sub *dcel.Subdivision, seedFace int, opts ...Option) ([]Color, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if seedFace < 0 {
		seedFace = o.ColorSeedFace
	}

	var colorOpts []coloring.Option
	if o.OnColor != nil {
		colorOpts = append(colorOpts, coloring.WithOnColor(o.OnColor))
	}
	if o.ColorPalette != ([3]string{}) {
		colorOpts = append(colorOpts, coloring.WithPalette(o.ColorPalette))
	}

	colors, err := coloring.Color(sub, dcel.FaceID(seedFace), colorOpts...)
	if err != nil {
		return nil, fmt.Errorf("polytri: Color: %w: %w", ErrEmptyTraversal, err)
	}
	return colors, nil
}

// Label renders c as a string, honoring a WithColorPalette override among
// opts if one was given.
func Label(c Color, opts ...Option) string {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return c.Label(o.ColorPalette)
}

// NearestFace returns the index of sub's face whose centroid is closest to
// query, a cheap approximate point location usable once Triangulate has
// linked faces.
func NearestFace(sub *dcel.Subdivision, query geom.Point) (int, error) {
	faces := sub.Faces()
	if len(faces) == 0 {
		return 0, fmt.Errorf("polytri: NearestFace: %w: %w", ErrEmptyTraversal, faceenum.ErrEmptySubdivision)
	}

	best := 0
	bestDist := distSq(faces[0].Centroid, query)
	for i := 1; i < len(faces); i++ {
		d := distSq(faces[i].Centroid, query)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, nil
}

func distSq(a, b geom.Point) float32 {
	dx := a.X() - b.X()
	dy := a.Y() - b.Y()
	return dx*dx + dy*dy
}

func facesToPoints(sub *dcel.Subdivision, faces [][]dcel.VertexID) [][]geom.Point {
	out := make([][]geom.Point, len(faces))
	for i, cycle := range faces {
		pts := make([]geom.Point, len(cycle))
		for j, v := range cycle {
			pts[j] = sub.Point(v)
		}
		out[i] = pts
	}
	return out
}

func classifyPartitionErr(err error) error {
	switch {
	case errors.Is(err, ymonotone.ErrTooFewVertices), errors.Is(err, ymonotone.ErrDuplicateVertex):
		return fmt.Errorf("polytri: Triangulate: %w: %w", ErrMalformedInput, err)
	case errors.Is(err, ymonotone.ErrDegenerateSweep):
		return fmt.Errorf("polytri: Triangulate: %w: %w", ErrDegenerateSweep, err)
	case errors.Is(err, sweep.ErrKeyNotFound), errors.Is(err, sweep.ErrEmptyStatus):
		return fmt.Errorf("polytri: Triangulate: %w: %w", ErrInvariantViolation, err)
	default:
		return fmt.Errorf("polytri: Triangulate: %w: %w", ErrInvariantViolation, err)
	}
}

func classifyEnumErr(err error) error {
	if errors.Is(err, faceenum.ErrEmptySubdivision) {
		return fmt.Errorf("polytri: Triangulate: %w: %w", ErrMalformedInput, err)
	}
	return fmt.Errorf("polytri: Triangulate: %w: %w", ErrInvariantViolation, err)
}
