// SPDX-License-Identifier: MIT
package dcel

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/polytri/geom"
)

// New builds a Subdivision from a CCW vertex ring; no diagonals exist yet.
func New(points []geom.Point) *Subdivision {
	vs := make([]Vertex, len(points))
	for i, p := range points {
		vs[i] = Vertex{Point: p}
	}
	return &Subdivision{vertices: vs}
}

// Len returns the number of ring vertices.
func (s *Subdivision) Len() int { return len(s.vertices) }

// Vertex returns a copy of the vertex record at i.
func (s *Subdivision) Vertex(i VertexID) (Vertex, error) {
	if i < 0 || int(i) >= len(s.vertices) {
		return Vertex{}, fmt.Errorf("Vertex(%d): %w", i, ErrVertexOutOfRange)
	}
	return s.vertices[i], nil
}

// Point returns the coordinates of vertex i.
func (s *Subdivision) Point(i VertexID) geom.Point {
	return s.vertices[i].Point
}

// Prev returns the ring predecessor of i.
func (s *Subdivision) Prev(i VertexID) VertexID {
	n := VertexID(len(s.vertices))
	if i == 0 {
		return n - 1
	}
	return i - 1
}

// Next returns the ring successor of i.
func (s *Subdivision) Next(i VertexID) VertexID {
	n := VertexID(len(s.vertices))
	return (i + 1) % n
}

// HalfDiagonal returns a copy of the half-diagonal at h.
func (s *Subdivision) HalfDiagonal(h HalfDiagID) HalfDiagonal {
	return s.halfDiagonals[h]
}

// Face returns a copy of the face at f.
func (s *Subdivision) Face(f FaceID) Face {
	return s.faces[f]
}

// Faces returns the current face list (valid since the last LinkFaces call).
func (s *Subdivision) Faces() []Face {
	return s.faces
}

// FaceCount returns len(Faces()).
func (s *Subdivision) FaceCount() int { return len(s.faces) }

// InsertDiagonal adds a twinned half-diagonal pair between i and j. It is a
// no-op when i and j are already ring neighbors (a "diagonal" to a ring
// neighbor is just the boundary edge) and idempotent when the same diagonal
// is inserted twice.
func (s *Subdivision) InsertDiagonal(i, j VertexID) {
	if s.Next(i) == j || s.Prev(i) == j {
		return
	}
	for _, peer := range s.vertices[i].Diagonals {
		if peer == j {
			return // already present
		}
	}

	h1 := HalfDiagID(len(s.halfDiagonals))
	h2 := h1 + 1
	s.halfDiagonals = append(s.halfDiagonals,
		HalfDiagonal{Origin: i, End: j, Twin: h2, Face: NoFace},
		HalfDiagonal{Origin: j, End: i, Twin: h1, Face: NoFace},
	)

	s.vertices[i].Diagonals = append(s.vertices[i].Diagonals, j)
	s.vertices[i].HalfDiagonals = append(s.vertices[i].HalfDiagonals, h1)
	s.vertices[i].cursor++

	s.vertices[j].Diagonals = append(s.vertices[j].Diagonals, i)
	s.vertices[j].HalfDiagonals = append(s.vertices[j].HalfDiagonals, h2)
	s.vertices[j].cursor++
}

// SortDiagonals stably sorts each vertex's outgoing diagonals (and their
// parallel half-diagonal handles) by the CCW angle between the vertex's
// outgoing boundary edge (i, Next(i)) and the diagonal. This is a
// precondition for faceenum: without it, the angle-ordered walk needed to
// emit simple face cycles has no defined order to follow.
func (s *Subdivision) SortDiagonals() {
	for i := range s.vertices {
		v := &s.vertices[i]
		if len(v.Diagonals) == 0 {
			continue
		}
		next := s.vertices[s.Next(VertexID(i))].Point
		cur := v.Point

		type pair struct {
			peer VertexID
			hd   HalfDiagID
		}
		pairs := make([]pair, len(v.Diagonals))
		for k := range v.Diagonals {
			pairs[k] = pair{v.Diagonals[k], v.HalfDiagonals[k]}
		}
		sort.SliceStable(pairs, func(a, b int) bool {
			angleA := geom.Angle(cur, next, s.vertices[pairs[a].peer].Point)
			angleB := geom.Angle(cur, next, s.vertices[pairs[b].peer].Point)
			return angleA < angleB
		})
		for k, pr := range pairs {
			v.Diagonals[k] = pr.peer
			v.HalfDiagonals[k] = pr.hd
		}
	}
}

// ResetCursor restores every vertex's unused-diagonal cursor to
// len(Diagonals), readying the subdivision for a fresh face-enumeration
// pass. Two enumeration passes happen over the life of a pipeline run (once
// after monotone partitioning, once after triangulation) and each needs its
// own cursor run.
func (s *Subdivision) ResetCursor() {
	for i := range s.vertices {
		s.vertices[i].cursor = len(s.vertices[i].Diagonals)
	}
}

// HasUnusedDiagonal reports whether vertex i still has an unconsumed
// outgoing diagonal in the current enumeration pass.
func (s *Subdivision) HasUnusedDiagonal(i VertexID) bool {
	return s.vertices[i].cursor > 0
}

// PopDiagonal consumes and returns the next unused diagonal target at vertex
// i, walking Diagonals back-to-front (angle-descending, matching the
// original stack-based walk). It decrements the cursor.
func (s *Subdivision) PopDiagonal(i VertexID) (VertexID, error) {
	v := &s.vertices[i]
	if v.cursor == 0 {
		return 0, fmt.Errorf("PopDiagonal(%d): %w", i, ErrNoUnusedDiagonal)
	}
	v.cursor--
	return v.Diagonals[v.cursor], nil
}

// DiagonalCount returns the total number of diagonals inserted so far
// (each twinned pair counts once).
func (s *Subdivision) DiagonalCount() int {
	return len(s.halfDiagonals) / 2
}

// NewFace builds a Face from a vertex cycle, computing its centroid.
func (s *Subdivision) NewFace(cycle []VertexID) (Face, error) {
	if len(cycle) == 0 {
		return Face{}, ErrEmptyFaceVertices
	}
	var sx, sy float32
	for _, v := range cycle {
		sx += s.vertices[v].Point.X()
		sy += s.vertices[v].Point.Y()
	}
	n := float32(len(cycle))
	return Face{
		Vertices: append([]VertexID(nil), cycle...),
		Centroid: geom.NewPoint(sx/n, sy/n),
	}, nil
}

// LinkFaces builds a Face for each vertex cycle, locates the half-diagonal
// tracing every non-ring (diagonal) edge of the cycle, records it in the
// face's Bounding list, and back-links the half-diagonal's Face field. It
// replaces the subdivision's current face list.
func (s *Subdivision) LinkFaces(cycles [][]VertexID) ([]Face, error) {
	faces := make([]Face, 0, len(cycles))
	for _, cycle := range cycles {
		face, err := s.NewFace(cycle)
		if err != nil {
			return nil, err
		}
		faces = append(faces, face)
	}

	for fi := range faces {
		cycle := faces[fi].Vertices
		for k, u := range cycle {
			v := cycle[(k+1)%len(cycle)]
			if s.Next(u) == v || s.Prev(u) == v {
				continue // ring edge, not a diagonal: nothing to link
			}
			hd, err := s.findHalfDiagonal(u, v)
			if err != nil {
				return nil, fmt.Errorf("LinkFaces(face %d, edge %d->%d): %w", fi, u, v, err)
			}
			faces[fi].Bounding = append(faces[fi].Bounding, hd)
			s.halfDiagonals[hd].Face = FaceID(fi)
		}
	}

	s.faces = faces
	return faces, nil
}

func (s *Subdivision) findHalfDiagonal(origin, end VertexID) (HalfDiagID, error) {
	for _, hd := range s.vertices[origin].HalfDiagonals {
		if s.halfDiagonals[hd].End == end {
			return hd, nil
		}
	}
	return 0, ErrHalfDiagonalNotFound
}
