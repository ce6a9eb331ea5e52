// SPDX-License-Identifier: MIT
package polytri

import (
	"github.com/katalvlaran/polytri/coloring"
	"github.com/katalvlaran/polytri/dcel"
	"github.com/katalvlaran/polytri/ymonotone"
)

// Options configures observer hooks over a pipeline run. None of them
// affect the result; they exist for callers that want to watch the sweep,
// e.g. to animate it.
type Options struct {
	OnClassify func(v dcel.VertexID, class ymonotone.VertexClass)
	OnDiagonal func(from, to dcel.VertexID)
	OnColor    func(v dcel.VertexID, c coloring.Color)

	// SweepEpsilon is the tie-break tolerance below which two distinct
	// vertices are rejected as too close for the monotone-partitioning
	// sweep to order reliably. Zero (the default) checks only exact ties.
	SweepEpsilon float32
	// ColorSeedFace is the default seed face for Color when callers pass
	// a negative seedFace to it.
	ColorSeedFace int
	// ColorPalette overrides Color's Red/Green/Blue display labels; see
	// coloring.WithPalette.
	ColorPalette [3]string
}

// Option mutates an Options in place.
type Option func(*Options)

// DefaultOptions returns an Options with no observers attached.
func DefaultOptions() Options {
	return Options{}
}

// WithOnClassify attaches a vertex-classification observer to the
// monotone-partitioning sweep.
func WithOnClassify(f func(v dcel.VertexID, class ymonotone.VertexClass)) Option {
	return func(o *Options) { o.OnClassify = f }
}

// WithOnDiagonal attaches a diagonal-insertion observer, called for each
// diagonal the monotone-partitioning sweep inserts. Diagonals added by
// monotone triangulation are not reported.
func WithOnDiagonal(f func(from, to dcel.VertexID)) Option {
	return func(o *Options) { o.OnDiagonal = f }
}

// WithOnColor attaches a per-vertex coloring observer.
func WithOnColor(f func(v dcel.VertexID, c coloring.Color)) Option {
	return func(o *Options) { o.OnColor = f }
}

// WithSweepEpsilon sets the monotone-partitioning sweep's tie-break
// tolerance, within which two distinct, too-close vertices are rejected
// with ErrDegenerateSweep instead of ordered arbitrarily.
func WithSweepEpsilon(eps float32) Option {
	return func(o *Options) { o.SweepEpsilon = eps }
}

// WithColorSeedFace sets the default seed face Color uses when called
// with a negative seedFace.
func WithColorSeedFace(face int) Option {
	return func(o *Options) { o.ColorSeedFace = face }
}

// WithColorPalette overrides Color's Red/Green/Blue display labels; use
// Label to render a Color under it.
func WithColorPalette(palette [3]string) Option {
	return func(o *Options) { o.ColorPalette = palette }
}
