package kdtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mapmatch/geo"
	"github.com/katalvlaran/mapmatch/kdtree"
)

func pt(x, y float64) geo.Point {
	return geo.Point{X: x, Y: y, Calc: geo.Euclidean{}}
}

func scenarioPoints() []geo.Point {
	return []geo.Point{
		pt(6, 4), pt(5, 2), pt(8, 6), pt(2, 1), pt(4, 7), pt(9, 3), pt(2, 8),
	}
}

func TestTree_NearestNeighbor(t *testing.T) {
	tree, err := kdtree.Build(scenarioPoints(), geo.Euclidean{})
	require.NoError(t, err)

	got, ok := tree.NearestNeighbor(pt(9, 8))
	require.True(t, ok)
	assert.True(t, got.Equal(pt(8, 6)), "expected (8,6), got %v", got)
}

func TestTree_Range(t *testing.T) {
	tree, err := kdtree.Build(scenarioPoints(), geo.Euclidean{})
	require.NoError(t, err)

	got := tree.Range(pt(1, 5), pt(5, 9))
	want := []geo.Point{pt(2, 8), pt(4, 7)}
	assert.ElementsMatch(t, want, got)
}

func TestTree_BuildErrors(t *testing.T) {
	_, err := kdtree.Build(nil, geo.Euclidean{})
	assert.ErrorIs(t, err, kdtree.ErrEmptyInput)

	_, err = kdtree.Build(scenarioPoints(), nil)
	assert.ErrorIs(t, err, kdtree.ErrNilCalculator)
}

func TestTree_InsertRejectsDuplicate(t *testing.T) {
	tree, err := kdtree.New(geo.Euclidean{})
	require.NoError(t, err)

	assert.True(t, tree.Insert(pt(1, 1)))
	assert.False(t, tree.Insert(pt(1, 1)))
	assert.Equal(t, 1, tree.Len())
}

func TestTree_Contains(t *testing.T) {
	tree, err := kdtree.Build(scenarioPoints(), geo.Euclidean{})
	require.NoError(t, err)

	assert.True(t, tree.Contains(pt(9, 3)))
	assert.False(t, tree.Contains(pt(9, 9)))
}

func TestTree_IncrementalMatchesBulk(t *testing.T) {
	bulk, err := kdtree.Build(scenarioPoints(), geo.Euclidean{})
	require.NoError(t, err)

	incr, err := kdtree.New(geo.Euclidean{})
	require.NoError(t, err)
	for _, p := range scenarioPoints() {
		incr.Insert(p)
	}

	probe := pt(9, 8)
	bulkNearest, _ := bulk.NearestNeighbor(probe)
	incrNearest, _ := incr.NearestNeighbor(probe)
	assert.True(t, bulkNearest.Equal(incrNearest))
}

func TestTree_EmptyNearestNeighbor(t *testing.T) {
	tree, err := kdtree.New(geo.Euclidean{})
	require.NoError(t, err)

	_, ok := tree.NearestNeighbor(pt(0, 0))
	assert.False(t, ok)
}
