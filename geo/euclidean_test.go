package geo_test

import (
	"testing"

	"github.com/katalvlaran/mapmatch/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEuclidean_Distance(t *testing.T) {
	calc := geo.Euclidean{}
	a := geo.NewPoint(0, 0, calc)
	b := geo.NewPoint(3, 4, calc)
	assert.InDelta(t, 5.0, calc.Distance(a, b), 1e-9)
}

func TestEuclidean_Bearing(t *testing.T) {
	calc := geo.Euclidean{}
	a := geo.NewPoint(0, 0, calc)
	north := geo.NewPoint(0, 10, calc)
	east := geo.NewPoint(10, 0, calc)
	assert.InDelta(t, 0.0, calc.InitialBearing(a, north), 1e-9)
	assert.InDelta(t, 90.0, calc.InitialBearing(a, east), 1e-9)
}

func TestEuclidean_Destination_RoundTrips(t *testing.T) {
	calc := geo.Euclidean{}
	origin := geo.NewPoint(1, 1, calc)
	dest := calc.Destination(origin, 45, 10)
	assert.InDelta(t, 10.0, calc.Distance(origin, dest), 1e-9)
}

func TestPolyline_AlongTrackAndClosestPoint(t *testing.T) {
	calc := geo.Euclidean{}
	poly, err := geo.NewPolyline([]geo.Point{
		geo.NewPoint(0, 0, calc),
		geo.NewPoint(10, 0, calc),
		geo.NewPoint(10, 10, calc),
	}, calc)
	require.NoError(t, err)

	probe := geo.NewPoint(5, 3, calc)
	foot := poly.OnTrackClosestPoint(probe)
	assert.InDelta(t, 5.0, foot.X, 1e-9)
	assert.InDelta(t, 0.0, foot.Y, 1e-9)
	assert.InDelta(t, 3.0, poly.Distance(probe), 1e-9)
	assert.InDelta(t, 5.0, poly.AlongTrackDistance(probe), 1e-9)
}

func TestPolyline_RoundTrip_AlongTrackOfOwnClosestPoint(t *testing.T) {
	// §8 universal invariant: alongTrackDistance(onTrackClosestPoint(p)) == alongTrackDistance(p)
	calc := geo.Euclidean{}
	poly, err := geo.NewPolyline([]geo.Point{
		geo.NewPoint(0, 0, calc),
		geo.NewPoint(10, 0, calc),
		geo.NewPoint(10, 10, calc),
		geo.NewPoint(20, 10, calc),
	}, calc)
	require.NoError(t, err)

	probe := geo.NewPoint(12, 4, calc)
	along := poly.AlongTrackDistance(probe)
	foot := poly.OnTrackClosestPoint(probe)
	alongOfFoot := poly.AlongTrackDistance(foot)
	assert.InDelta(t, along, alongOfFoot, 1e-6)
}

func TestPolyline_IsEmpty(t *testing.T) {
	var pl geo.Polyline
	assert.True(t, pl.IsEmpty())

	calc := geo.Euclidean{}
	_, err := geo.NewPolyline([]geo.Point{geo.NewPoint(0, 0, calc)}, calc)
	assert.ErrorIs(t, err, geo.ErrTooFewPoints)
}
