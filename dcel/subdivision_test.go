package dcel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polytri/dcel"
	"github.com/katalvlaran/polytri/geom"
)

func diamond() *dcel.Subdivision {
	return dcel.New([]geom.Point{
		geom.NewPoint(1, 0),
		geom.NewPoint(2, 1),
		geom.NewPoint(1, 2),
		geom.NewPoint(0, 1),
	})
}

func TestPrevNext(t *testing.T) {
	sub := diamond()
	assert.Equal(t, dcel.VertexID(3), sub.Prev(0))
	assert.Equal(t, dcel.VertexID(0), sub.Next(3))
	assert.Equal(t, dcel.VertexID(1), sub.Next(0))
}

func TestInsertDiagonalNoOpOnRingNeighbor(t *testing.T) {
	sub := diamond()
	sub.InsertDiagonal(0, 1) // ring neighbors
	assert.Equal(t, 0, sub.DiagonalCount())
}

func TestInsertDiagonalIdempotent(t *testing.T) {
	sub := diamond()
	sub.InsertDiagonal(0, 2)
	sub.InsertDiagonal(0, 2)
	sub.InsertDiagonal(2, 0)
	assert.Equal(t, 1, sub.DiagonalCount())

	v0, err := sub.Vertex(0)
	require.NoError(t, err)
	assert.Equal(t, []dcel.VertexID{2}, v0.Diagonals)
}

// TestTwinSymmetry asserts property 6 from spec.md §8: for every
// half-diagonal h, h.twin.twin == h and h.twin.origin == h.end.
func TestTwinSymmetry(t *testing.T) {
	sub := diamond()
	sub.InsertDiagonal(0, 2)

	v0, err := sub.Vertex(0)
	require.NoError(t, err)
	require.Len(t, v0.HalfDiagonals, 1)
	h := v0.HalfDiagonals[0]

	hd := sub.HalfDiagonal(h)
	twin := sub.HalfDiagonal(hd.Twin)
	assert.Equal(t, hd.Origin, twin.End)
	assert.Equal(t, hd.End, twin.Origin)

	twinTwin := sub.HalfDiagonal(twin.Twin)
	assert.Equal(t, hd, twinTwin)
}

func TestSortDiagonalsStable(t *testing.T) {
	pts := []geom.Point{
		geom.NewPoint(10, 10), // 0: cur, under test
		geom.NewPoint(12, 8),  // 1: next
		geom.NewPoint(6, 7),   // 2
		geom.NewPoint(4, 15),  // 3
		geom.NewPoint(2, 10),  // 4
		geom.NewPoint(10, 20), // 5
		geom.NewPoint(15, 10), // 6
		geom.NewPoint(8, 18),  // 7
		geom.NewPoint(9, 4),   // 8: ring predecessor of 0, not a peer
	}
	sub := dcel.New(pts)
	// Wire vertex 0's ring successor to vertex 1 by construction order, and
	// attach non-ring diagonals to vertices 2..7 (vertex 8 is vertex 0's ring
	// predecessor, so a diagonal to it would be a no-op).
	for _, peer := range []dcel.VertexID{2, 3, 4, 5, 6, 7} {
		sub.InsertDiagonal(0, peer)
	}
	sub.SortDiagonals()

	v0, err := sub.Vertex(0)
	require.NoError(t, err)
	// Peers, in the vertex index space of this test (2..7), correspond to
	// the spec.md Scenario E peer list 0..5 shifted by +2.
	assert.Equal(t, []dcel.VertexID{6, 5, 7, 3, 4, 2}, v0.Diagonals)
}

func TestCentroid(t *testing.T) {
	sub := diamond()
	face, err := sub.NewFace([]dcel.VertexID{0, 1, 2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, face.Centroid.X(), 1e-6)
	assert.InDelta(t, 1.0, face.Centroid.Y(), 1e-6)
}

func TestCentroidEmptyFace(t *testing.T) {
	sub := diamond()
	_, err := sub.NewFace(nil)
	assert.ErrorIs(t, err, dcel.ErrEmptyFaceVertices)
}

func TestLinkFacesBindsHalfDiagonals(t *testing.T) {
	sub := diamond()
	sub.InsertDiagonal(0, 2)
	sub.SortDiagonals()

	faces, err := sub.LinkFaces([][]dcel.VertexID{
		{0, 1, 2},
		{0, 2, 3},
	})
	require.NoError(t, err)
	require.Len(t, faces, 2)
	require.Len(t, faces[0].Bounding, 1)
	require.Len(t, faces[1].Bounding, 1)

	hd0 := sub.HalfDiagonal(faces[0].Bounding[0])
	hd1 := sub.HalfDiagonal(faces[1].Bounding[0])
	assert.Equal(t, hd0.Twin, faces[1].Bounding[0])
	assert.Equal(t, hd1.Twin, faces[0].Bounding[0])
	assert.Equal(t, dcel.FaceID(0), hd0.Face)
	assert.Equal(t, dcel.FaceID(1), hd1.Face)
}

func TestCursorLifecycle(t *testing.T) {
	sub := diamond()
	sub.InsertDiagonal(0, 2)
	sub.ResetCursor()

	assert.True(t, sub.HasUnusedDiagonal(0))
	d, err := sub.PopDiagonal(0)
	require.NoError(t, err)
	assert.Equal(t, dcel.VertexID(2), d)
	assert.False(t, sub.HasUnusedDiagonal(0))

	_, err = sub.PopDiagonal(0)
	assert.ErrorIs(t, err, dcel.ErrNoUnusedDiagonal)
}
