package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polytri/coloring"
	"github.com/katalvlaran/polytri/dcel"
	"github.com/katalvlaran/polytri/geom"
)

func diamondFaces() *dcel.Subdivision {
	sub := dcel.New([]geom.Point{
		geom.NewPoint(1, 0),
		geom.NewPoint(2, 1),
		geom.NewPoint(1, 2),
		geom.NewPoint(0, 1),
	})
	sub.InsertDiagonal(0, 2)
	sub.SortDiagonals()
	_, err := sub.LinkFaces([][]dcel.VertexID{
		{0, 1, 2},
		{0, 2, 3},
	})
	if err != nil {
		panic(err)
	}
	return sub
}

func TestColorDiamond(t *testing.T) {
	sub := diamondFaces()

	colors, err := coloring.Color(sub, 0)
	require.NoError(t, err)

	assert.Equal(t, coloring.Red, colors[0])
	assert.Equal(t, coloring.Green, colors[1])
	assert.Equal(t, coloring.Blue, colors[2])
	// Vertex 3 shares the diagonal edge's two endpoints (0 and 2) with the
	// first triangle, so it can only take the one color left unclaimed.
	assert.Equal(t, coloring.Green, colors[3])
}

func TestColorSeedFaceOutOfRange(t *testing.T) {
	sub := diamondFaces()
	_, err := coloring.Color(sub, 99)
	assert.ErrorIs(t, err, coloring.ErrSeedFaceOutOfRange)
}

func TestColorLabelDefaultsAndOverrides(t *testing.T) {
	assert.Equal(t, "red", coloring.Red.Label([3]string{}))
	assert.Equal(t, "black", coloring.Black.Label([3]string{"warm", "cool", "neutral"}))
	assert.Equal(t, "warm", coloring.Red.Label([3]string{"warm", "cool", "neutral"}))
	assert.Equal(t, "blue", coloring.Blue.Label([3]string{"warm", "cool", ""}))
}

func TestColorWithPaletteObserved(t *testing.T) {
	sub := diamondFaces()
	var labels []string
	_, err := coloring.Color(sub, 0,
		coloring.WithPalette([3]string{"warm", "cool", "neutral"}),
		coloring.WithOnColor(func(v dcel.VertexID, c coloring.Color) {
			labels = append(labels, c.Label([3]string{"warm", "cool", "neutral"}))
		}),
	)
	require.NoError(t, err)
	assert.Contains(t, labels, "warm")
}

func TestColorNoAdjacentVertexSharesColor(t *testing.T) {
	sub := diamondFaces()
	colors, err := coloring.Color(sub, 0)
	require.NoError(t, err)

	faces := sub.Faces()
	for _, f := range faces {
		seen := map[coloring.Color]bool{}
		for _, v := range f.Vertices {
			c := colors[v]
			assert.NotEqual(t, coloring.Black, c, "every vertex must be colored")
			assert.False(t, seen[c], "triangle %v has two vertices of the same color", f.Vertices)
			seen[c] = true
		}
	}
}
