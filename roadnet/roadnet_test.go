package roadnet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mapmatch/geo"
	"github.com/katalvlaran/mapmatch/roadnet"
)

func TestGrid_Shape(t *testing.T) {
	g, err := roadnet.Grid(2, 3, 10)
	require.NoError(t, err)

	assert.Equal(t, 6, g.NodeCount())
	// interior cell (0,1): right + bottom neighbors, each a two-way street.
	nbrs, err := g.Neighbors("0,1")
	require.NoError(t, err)
	assert.Len(t, nbrs, 3) // left-back, right, bottom

	n, ok := g.Node("1,2")
	require.True(t, ok)
	assert.Equal(t, 20.0, n.Point.X)
	assert.Equal(t, 10.0, n.Point.Y)
}

func TestGrid_InvalidParams(t *testing.T) {
	_, err := roadnet.Grid(0, 3, 10)
	assert.ErrorIs(t, err, roadnet.ErrTooFewVertices)

	_, err = roadnet.Grid(2, 2, 0)
	assert.ErrorIs(t, err, roadnet.ErrNonPositiveSpacing)
}

func TestChain_Shape(t *testing.T) {
	g, err := roadnet.Chain(4, 10)
	require.NoError(t, err)

	require.Equal(t, 4, g.NodeCount())
	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))
	assert.True(t, g.HasEdge("C", "D"))
	assert.False(t, g.HasEdge("A", "C"))

	d, ok := g.Node("D")
	require.True(t, ok)
	assert.Equal(t, 30.0, d.Point.X)
}

func TestChain_TooFewVertices(t *testing.T) {
	_, err := roadnet.Chain(1, 10)
	assert.ErrorIs(t, err, roadnet.ErrTooFewVertices)
}

func TestFromPolylines_MergesNearEndpoints(t *testing.T) {
	calc := geo.Euclidean{}
	ab, _ := geo.NewPolyline([]geo.Point{
		{X: 0, Y: 0, Calc: calc},
		{X: 10, Y: 0, Calc: calc},
	}, calc)
	// bc's start is 1e-9 away from ab's end: within default tolerance.
	bc, _ := geo.NewPolyline([]geo.Point{
		{X: 10 + 1e-9, Y: 0, Calc: calc},
		{X: 20, Y: 0, Calc: calc},
	}, calc)

	g, err := roadnet.FromPolylines([]geo.Polyline{ab, bc})
	require.NoError(t, err)

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
}

func TestFromPolylines_ToleranceExcludesFarPoints(t *testing.T) {
	calc := geo.Euclidean{}
	ab, _ := geo.NewPolyline([]geo.Point{
		{X: 0, Y: 0, Calc: calc},
		{X: 10, Y: 0, Calc: calc},
	}, calc)
	cd, _ := geo.NewPolyline([]geo.Point{
		{X: 10.5, Y: 0, Calc: calc},
		{X: 20, Y: 0, Calc: calc},
	}, calc)

	g, err := roadnet.FromPolylines([]geo.Polyline{ab, cd}, roadnet.WithMergeTolerance(0.01))
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())
}

func TestFromPolylines_Empty(t *testing.T) {
	_, err := roadnet.FromPolylines(nil)
	assert.ErrorIs(t, err, roadnet.ErrEmptyPolylines)
}
