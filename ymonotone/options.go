// SPDX-License-Identifier: MIT
package ymonotone

import "github.com/katalvlaran/polytri/dcel"

// Options configures an optional observer over the partitioning sweep,
// mirroring the hook-field pattern used for walker-style algorithms
// elsewhere in this module: the sweep itself never branches on these, they
// exist purely for callers that want to watch it run.
type Options struct {
	// OnClassify is called once per vertex, in ring order, before the
	// sweep begins, with the class the sweep will treat it as.
	OnClassify func(v dcel.VertexID, class VertexClass)
	// OnDiagonal is called every time the sweep inserts a diagonal.
	OnDiagonal func(from, to dcel.VertexID)
	// Epsilon is the tie-break tolerance applied before the sweep rejects
	// two distinct vertices as an unresolvable tie. Zero (the default)
	// means only exact coordinate ties are checked.
	Epsilon float32
}

// Option mutates an Options in place.
type Option func(*Options)

// DefaultOptions returns an Options with no observers attached.
func DefaultOptions() Options {
	return Options{}
}

// WithOnClassify attaches a vertex-classification observer.
func WithOnClassify(f func(v dcel.VertexID, class VertexClass)) Option {
	return func(o *Options) { o.OnClassify = f }
}

// WithOnDiagonal attaches a diagonal-insertion observer.
func WithOnDiagonal(f func(from, to dcel.VertexID)) Option {
	return func(o *Options) { o.OnDiagonal = f }
}

// WithEpsilon sets the tie-break tolerance used to detect two distinct
// vertices too close together in both coordinates for the sweep's
// top-to-bottom ordering to resolve reliably.
func WithEpsilon(eps float32) Option {
	return func(o *Options) { o.Epsilon = eps }
}
