package sweep_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polytri/dcel"
	"github.com/katalvlaran/polytri/sweep"
)

func TestQuantizeX(t *testing.T) {
	assert.Equal(t, sweep.Key(100), sweep.QuantizeX(1.0))
	assert.Equal(t, sweep.Key(150), sweep.QuantizeX(1.5))
	assert.Equal(t, sweep.Key(350), sweep.QuantizeX(3.5))
	assert.Equal(t, sweep.Key(500), sweep.QuantizeX(5.0))
}

func TestInsertFindErase(t *testing.T) {
	st := sweep.New()
	st.Insert(100, 6, 6, 1.0)
	st.Insert(150, 5, 5, 1.0)
	assert.Equal(t, 2, st.Len())

	e, err := st.Find(150)
	require.NoError(t, err)
	assert.Equal(t, dcel.VertexID(5), e.Origin)

	require.NoError(t, st.Erase(100))
	assert.Equal(t, 1, st.Len())

	_, err = st.Find(100)
	assert.ErrorIs(t, err, sweep.ErrKeyNotFound)
}

func TestEraseUnknownKey(t *testing.T) {
	st := sweep.New()
	assert.ErrorIs(t, st.Erase(42), sweep.ErrKeyNotFound)
}

func TestUpdateHelper(t *testing.T) {
	st := sweep.New()
	st.Insert(100, 6, 6, 1.0)
	require.NoError(t, st.UpdateHelper(100, 2))

	e, err := st.Find(100)
	require.NoError(t, err)
	assert.Equal(t, dcel.VertexID(2), e.Helper)
}

func TestUpdateHelperUnknownKey(t *testing.T) {
	st := sweep.New()
	assert.ErrorIs(t, st.UpdateHelper(100, 2), sweep.ErrKeyNotFound)
}

func TestPredecessorEmptyStatus(t *testing.T) {
	st := sweep.New()
	_, ok := st.Predecessor(2.0)
	assert.False(t, ok)
}

// TestPredecessorFourEdgeHeptagon reproduces the textbook heptagon's
// predecessor query by vertex index (spec.md Scenario D's polygon:
// (1,0) (2,1) (3,0) (5,1.5) (3.5,3) (1.5,1.5) (1,2.4)), with the status
// holding the four edges originating at indices 3..6. This is a hand-built
// state: the partitioner itself never inserts edge 3->4, since vertex 3 is
// a Regular vertex on the right chain.
//
// Note: spec.md's own Scenario F narrative states this query returns key
// 150; tracing the predecessor predicate (min(edge.origin.x, edge.end.x)
// <= query.x, keep the largest satisfying key) by hand against these
// coordinates gives 350, which also matches the reference algorithm this
// structure is modeled on. That reference is authoritative here; see
// DESIGN.md.
func TestPredecessorFourEdgeHeptagon(t *testing.T) {
	st := sweep.New()
	// edge 3->4: (5,1.5)->(3.5,3), min x = 3.5
	st.Insert(500, 3, 3, 3.5)
	// edge 4->5: (3.5,3)->(1.5,1.5), min x = 1.5
	st.Insert(350, 4, 4, 1.5)
	// edge 5->6: (1.5,1.5)->(1,2.4), min x = 1.0
	st.Insert(150, 5, 5, 1.0)
	// edge 6->0: (1,2.4)->(1,0), min x = 1.0
	st.Insert(100, 6, 6, 1.0)
	assert.Equal(t, 4, st.Len())

	e, ok := st.Predecessor(2.0)
	require.True(t, ok)
	assert.Equal(t, sweep.Key(350), e.Key)
	assert.Equal(t, dcel.VertexID(4), e.Origin)
}

func TestPredecessorExcludesEdgesToTheRight(t *testing.T) {
	st := sweep.New()
	st.Insert(100, 0, 0, 1.0)
	st.Insert(900, 1, 1, 9.0)

	e, ok := st.Predecessor(2.0)
	require.True(t, ok)
	assert.Equal(t, sweep.Key(100), e.Key)
}
