package rtree_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mapmatch/geo"
	"github.com/katalvlaran/mapmatch/rtree"
)

func box(minX, minY, maxX, maxY float64) geo.Region {
	r, _ := geo.OfMinMax(minX, minY, maxX, maxY)
	return r
}

func TestTree_InsertQuery_MinimalAreaIncrease(t *testing.T) {
	tree, err := rtree.New(rtree.DefaultOptions(), rtree.MinimalAreaIncrease, rtree.LinearSplit)
	require.NoError(t, err)

	for i := 0; i < 40; i++ {
		x := float64(i)
		require.NoError(t, tree.Insert(box(x, x, x+1, x+1), fmt.Sprintf("item-%d", i)))
	}
	assert.Equal(t, 40, tree.Len())

	hits := tree.Query(box(5, 5, 6, 6))
	assert.NotEmpty(t, hits)
	for _, h := range hits {
		assert.True(t, h.Region.Intersects(box(5, 5, 6, 6)))
	}

	miss := tree.Query(box(1000, 1000, 1001, 1001))
	assert.Empty(t, miss)
}

func TestTree_InsertQuery_RStar(t *testing.T) {
	tree, err := rtree.New(rtree.DefaultOptions(), rtree.RStarSelector, rtree.RStarSplit)
	require.NoError(t, err)

	for i := 0; i < 40; i++ {
		x := float64(i)
		require.NoError(t, tree.Insert(box(x, x, x+1, x+1), i))
	}
	hits := tree.Query(box(0, 0, 100, 100))
	assert.Len(t, hits, 40)
}

func TestTree_MBRInvariant(t *testing.T) {
	tree, err := rtree.New(rtree.DefaultOptions(), nil, nil)
	require.NoError(t, err)

	var all geo.Region = geo.OfEmpty()
	for i := 0; i < 50; i++ {
		x := float64(i % 17)
		y := float64((i * 3) % 23)
		b := box(x, y, x+1, y+1)
		all.ExpandToInclude(b)
		require.NoError(t, tree.Insert(b, i))
	}
	assert.True(t, tree.Bounds().Equal(all))
}

func TestTree_DeleteThenQuery(t *testing.T) {
	tree, err := rtree.New(rtree.DefaultOptions(), nil, nil)
	require.NoError(t, err)

	boxes := make([]geo.Region, 0, 30)
	for i := 0; i < 30; i++ {
		x := float64(i)
		b := box(x, x, x+1, x+1)
		boxes = append(boxes, b)
		require.NoError(t, tree.Insert(b, i))
	}

	removed := tree.Delete(boxes[10], 10)
	assert.True(t, removed)
	assert.Equal(t, 29, tree.Len())

	hits := tree.Query(boxes[10])
	for _, h := range hits {
		assert.NotEqual(t, 10, h.Payload)
	}

	assert.False(t, tree.Delete(boxes[10], 10))
}

func TestTree_InvalidOptions(t *testing.T) {
	_, err := rtree.New(rtree.Options{MaxChildren: 1, MinChildren: 1, FillFactor: 0.4}, nil, nil)
	assert.ErrorIs(t, err, rtree.ErrInvalidOptions)
}

func TestTree_InsertNullRegion(t *testing.T) {
	tree, err := rtree.New(rtree.DefaultOptions(), nil, nil)
	require.NoError(t, err)
	err = tree.Insert(geo.OfEmpty(), 1)
	assert.ErrorIs(t, err, rtree.ErrNullRegion)
}
