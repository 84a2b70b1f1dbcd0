package hybrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mapmatch/geo"
	"github.com/katalvlaran/mapmatch/hybrid"
	"github.com/katalvlaran/mapmatch/quadtree"
)

func cell(minX, minY, maxX, maxY float64) geo.Region {
	r, _ := geo.OfMinMax(minX, minY, maxX, maxY)
	return r
}

func pt(x, y float64) geo.Point {
	return geo.Point{X: x, Y: y, Calc: geo.Euclidean{}}
}

func newIndex(t *testing.T) *hybrid.Index {
	t.Helper()
	bounds := cell(0, 0, 100, 100)
	idx, err := hybrid.NewIndex(bounds, quadtree.DefaultOptions(), geo.Euclidean{})
	require.NoError(t, err)
	return idx
}

func TestIndex_InsertCreatesBoundaryRegion(t *testing.T) {
	idx := newIndex(t)

	require.NoError(t, idx.Insert(cell(0, 0, 10, 10), pt(5, 5)))
	assert.True(t, idx.Contains(pt(5, 5)))
	assert.False(t, idx.Contains(pt(50, 50)))
}

func TestIndex_InsertReusesExistingBoundary(t *testing.T) {
	idx := newIndex(t)

	require.NoError(t, idx.Insert(cell(0, 0, 10, 10), pt(1, 1)))
	require.NoError(t, idx.Insert(cell(0, 0, 10, 10), pt(9, 9)))

	assert.True(t, idx.Contains(pt(1, 1)))
	assert.True(t, idx.Contains(pt(9, 9)))
}

func TestIndex_NearestNeighbor(t *testing.T) {
	idx := newIndex(t)

	require.NoError(t, idx.Insert(cell(0, 0, 10, 10), pt(1, 1)))
	require.NoError(t, idx.Insert(cell(0, 0, 10, 10), pt(9, 9)))

	nearest, ok := idx.NearestNeighbor(pt(8, 8))
	require.True(t, ok)
	assert.True(t, nearest.Equal(pt(9, 9)))
}

func TestIndex_NearestNeighbor_NoBoundaryCovering(t *testing.T) {
	idx := newIndex(t)
	_, ok := idx.NearestNeighbor(pt(50, 50))
	assert.False(t, ok)
}

func TestIndex_Insert_PointOutsideRegion(t *testing.T) {
	idx := newIndex(t)
	err := idx.Insert(cell(0, 0, 10, 10), pt(50, 50))
	assert.ErrorIs(t, err, hybrid.ErrPointOutsideRegion)
}

func TestIndex_Insert_NullRegion(t *testing.T) {
	idx := newIndex(t)
	err := idx.Insert(geo.OfEmpty(), pt(1, 1))
	assert.ErrorIs(t, err, hybrid.ErrNullRegion)
}

func TestIndex_NilCalculator(t *testing.T) {
	_, err := hybrid.NewIndex(cell(0, 0, 100, 100), quadtree.DefaultOptions(), nil)
	assert.ErrorIs(t, err, hybrid.ErrNilCalculator)
}
