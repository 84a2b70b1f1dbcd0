package rtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mapmatch/geo"
	"github.com/katalvlaran/mapmatch/rtree"
)

func TestBuildSTR_QueryMatchesBruteForce(t *testing.T) {
	regions := make([]geo.Region, 0, 60)
	payloads := make([]interface{}, 0, 60)
	for i := 0; i < 60; i++ {
		x := float64(i % 12)
		y := float64(i / 12)
		regions = append(regions, box(x, y, x+1, y+1))
		payloads = append(payloads, i)
	}

	tree, err := rtree.BuildSTR(regions, payloads, rtree.DefaultOptions(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 60, tree.Len())

	probe := box(3, 2, 6, 5)
	hits := tree.Query(probe)

	var want int
	for _, r := range regions {
		if r.Intersects(probe) {
			want++
		}
	}
	assert.Len(t, hits, want)
}

func TestBuildSTR_RemainsInsertable(t *testing.T) {
	regions := []geo.Region{box(0, 0, 1, 1), box(2, 2, 3, 3), box(4, 4, 5, 5)}
	payloads := []interface{}{"a", "b", "c"}

	tree, err := rtree.BuildSTR(regions, payloads, rtree.DefaultOptions(), nil, nil)
	require.NoError(t, err)

	require.NoError(t, tree.Insert(box(10, 10, 11, 11), "d"))
	assert.Equal(t, 4, tree.Len())
}

func TestBuildSTR_EmptyInput(t *testing.T) {
	_, err := rtree.BuildSTR(nil, nil, rtree.DefaultOptions(), nil, nil)
	assert.ErrorIs(t, err, rtree.ErrEmptyInput)
}
