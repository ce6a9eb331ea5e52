// SPDX-License-Identifier: MIT
package coloring

import (
	"fmt"

	"github.com/katalvlaran/polytri/dcel"
)

// Color is a vertex color. Black is the uncolored sentinel, matching the
// zero value so a freshly allocated color slice starts fully uncolored.
type Color int

const (
	Black Color = iota
	Red
	Green
	Blue
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "black"
	}
}

// Options configures an optional observer over the coloring walk.
type Options struct {
	// OnColor is called every time a vertex receives its final color.
	OnColor func(v dcel.VertexID, c Color)
	// Palette overrides the display labels for Red, Green, Blue in that
	// order (Black has no override: it always means "uncolored"). An
	// empty entry falls back to the default label for that color.
	Palette [3]string
}

// Option mutates an Options in place.
type Option func(*Options)

// DefaultOptions returns an Options with no observer attached and the
// default Red/Green/Blue labels.
func DefaultOptions() Options { return Options{} }

// WithOnColor attaches a per-vertex coloring observer.
func WithOnColor(f func(v dcel.VertexID, c Color)) Option {
	return func(o *Options) { o.OnColor = f }
}

// WithPalette overrides the default Red/Green/Blue display labels. The
// coloring itself is always exactly three colors; this only renames them.
func WithPalette(palette [3]string) Option {
	return func(o *Options) { o.Palette = palette }
}

// Label renders c under palette, falling back to c.String() for Black or
// for any palette slot left blank.
func (c Color) Label(palette [3]string) string {
	if c == Black {
		return c.String()
	}
	if name := palette[c-1]; name != "" {
		return name
	}
	return c.String()
}

// Color three-colors every vertex reachable from seedFace by walking the
// dual graph of sub's triangulated faces, starting at seedFace. Vertices
// unreachable from seedFace (a subdivision with more than one connected
// component) are left Black.
func Color(sub *dcel.Subdivision, seedFace dcel.FaceID, opts ...Option) ([]Color, error) {
	faces := sub.Faces()
	if seedFace < 0 || int(seedFace) >= len(faces) {
		return nil, fmt.Errorf("Color(seedFace=%d): %w", seedFace, ErrSeedFaceOutOfRange)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	colors := make([]Color, sub.Len())
	visited := make(map[dcel.HalfDiagID]bool)
	dfs(sub, faces, seedFace, visited, colors, o)
	return colors, nil
}

// dfs colors startFace's own three vertices, then crosses every
// not-yet-visited twin half-diagonal into the neighboring face and
// recurses. Each face has at most a handful of bounding diagonals, so the
// recursion depth tracks face count, not polygon size.
func dfs(sub *dcel.Subdivision, faces []dcel.Face, startFace dcel.FaceID, visited map[dcel.HalfDiagID]bool, colors []Color, o Options) {
	face := faces[startFace]
	colorTriangle(face, colors, o)

	for i := len(face.Bounding); i >= 1; i-- {
		hd := face.Bounding[i-1]
		visited[hd] = true

		halfDiag := sub.HalfDiagonal(hd)
		if !visited[halfDiag.Twin] {
			twin := sub.HalfDiagonal(halfDiag.Twin)
			dfs(sub, faces, twin.Face, visited, colors, o)
		}
	}
}

// colorTriangle assigns colors to the uncolored vertices among a face's
// first three (a triangulated face has exactly three), picking red, then
// green, then blue, in that priority, among whichever colors its already
// -colored vertices have not claimed.
func colorTriangle(face dcel.Face, colors []Color, o Options) {
	redAvailable, greenAvailable, blueAvailable := true, true, true

	n := len(face.Vertices)
	if n > 3 {
		n = 3
	}
	var uncolored []dcel.VertexID
	for i := 0; i < n; i++ {
		idx := face.Vertices[i]
		switch colors[idx] {
		case Black:
			uncolored = append(uncolored, idx)
		case Red:
			redAvailable = false
		case Green:
			greenAvailable = false
		case Blue:
			blueAvailable = false
		}
	}

	for _, idx := range uncolored {
		switch {
		case redAvailable:
			colors[idx] = Red
			redAvailable = false
		case greenAvailable:
			colors[idx] = Green
			greenAvailable = false
		case blueAvailable:
			colors[idx] = Blue
			blueAvailable = false
		}
		if o.OnColor != nil {
			o.OnColor(idx, colors[idx])
		}
	}
}
