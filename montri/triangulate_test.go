package montri_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polytri/dcel"
	"github.com/katalvlaran/polytri/geom"
	"github.com/katalvlaran/polytri/montri"
)

func textbookHeptagon() *dcel.Subdivision {
	return dcel.New([]geom.Point{
		geom.NewPoint(1, 0),
		geom.NewPoint(2, 1),
		geom.NewPoint(3, 0),
		geom.NewPoint(5, 1.5),
		geom.NewPoint(3.5, 3),
		geom.NewPoint(1.5, 1.5),
		geom.NewPoint(1, 2.4),
	})
}

// TestTriangulatePentagonFace reproduces spec.md Scenario D: the pentagon
// face {0,1,3,5,6} left over after monotone partitioning gets exactly two
// new diagonals, (5,1) and (0,5), which split it into three triangles.
func TestTriangulatePentagonFace(t *testing.T) {
	sub := textbookHeptagon()
	// Diagonals already present from monotone partitioning.
	sub.InsertDiagonal(3, 5)
	sub.InsertDiagonal(1, 3)
	before := sub.DiagonalCount()

	require.NoError(t, montri.Triangulate(sub, []dcel.VertexID{0, 1, 3, 5, 6}))

	assert.Equal(t, before+2, sub.DiagonalCount())

	v5, err := sub.Vertex(5)
	require.NoError(t, err)
	assert.Contains(t, v5.Diagonals, dcel.VertexID(1))

	v0, err := sub.Vertex(0)
	require.NoError(t, err)
	assert.Contains(t, v0.Diagonals, dcel.VertexID(5))
}

func TestTriangulateAlreadyTriangleIsNoop(t *testing.T) {
	sub := textbookHeptagon()
	require.NoError(t, montri.Triangulate(sub, []dcel.VertexID{1, 2, 3}))
	assert.Equal(t, 0, sub.DiagonalCount())
}

func TestTriangulateEmptyFace(t *testing.T) {
	sub := textbookHeptagon()
	err := montri.Triangulate(sub, nil)
	assert.ErrorIs(t, err, montri.ErrEmptyMonotonePolygon)
}
