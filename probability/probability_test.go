package probability_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mapmatch/geo"
	"github.com/katalvlaran/mapmatch/probability"
)

func pt(x, y float64) geo.Point {
	return geo.Point{X: x, Y: y, Calc: geo.Euclidean{}}
}

func line(a, b geo.Point) geo.Polyline {
	pl, _ := geo.NewPolyline([]geo.Point{a, b}, geo.Euclidean{})
	return pl
}

func TestLogInitial(t *testing.T) {
	v, err := probability.LogInitial(4)
	require.NoError(t, err)
	assert.InDelta(t, -math.Log(4), v, 1e-12)

	_, err = probability.LogInitial(0)
	assert.ErrorIs(t, err, probability.ErrEmptyCandidates)
}

func TestOptions_Validate(t *testing.T) {
	opts := probability.DefaultOptions()
	require.NoError(t, opts.Validate())

	bad := opts
	bad.Sigma = 0
	assert.ErrorIs(t, bad.Validate(), probability.ErrNonPositiveSigma)

	bad = opts
	bad.PSame = 0.9
	assert.ErrorIs(t, bad.Validate(), probability.ErrInvalidPSame)

	bad = opts
	bad.Beta = -1
	assert.ErrorIs(t, bad.Validate(), probability.ErrNonPositiveBeta)
}

func TestEmissionCalculator_CloserIsMoreLikely(t *testing.T) {
	calc, err := probability.NewEmissionCalculator(probability.DefaultOptions())
	require.NoError(t, err)

	edge := line(pt(0, 0), pt(10, 0))
	near := calc.LogProb(pt(5, 0.1), edge, nil)
	far := calc.LogProb(pt(5, 5), edge, nil)
	assert.Greater(t, near, far)
}

func TestEmissionCalculator_RejectsInvalidOptions(t *testing.T) {
	bad := probability.DefaultOptions()
	bad.Sigma = -1
	_, err := probability.NewEmissionCalculator(bad)
	assert.ErrorIs(t, err, probability.ErrNonPositiveSigma)
}

// Scenario 6: direction plugin bearing cases.
func TestDirectionPlugin_Scenario6(t *testing.T) {
	opts := probability.DefaultOptions()

	// observation bearing 90 (east), on-path bearing 270 (west): opposite.
	opposite := probability.TransitionContext{
		PrevObs: pt(0, 0),
		Obs:     pt(1, 0), // bearing 90 (east) under Euclidean.InitialBearing
		Path:    line(pt(1, 0), pt(0, 0)),
	}
	assert.InDelta(t, 0, probability.DirectionPlugin(opposite, opts), 1e-9)

	same := probability.TransitionContext{
		PrevObs: pt(0, 0),
		Obs:     pt(1, 0),
		Path:    line(pt(0, 0), pt(1, 0)),
	}
	assert.InDelta(t, 0, probability.DirectionPlugin(same, opts), 1e-9)

	orthogonal := probability.TransitionContext{
		PrevObs: pt(0, 0),
		Obs:     pt(1, 0),
		Path:    line(pt(0, 0), pt(0, 1)),
	}
	assert.True(t, math.IsInf(probability.DirectionPlugin(orthogonal, opts), -1))
}

func TestDirectionPlugin_SameEdgeScoresZero(t *testing.T) {
	opts := probability.DefaultOptions()
	ctx := probability.TransitionContext{SameEdge: true}
	assert.Equal(t, 0.0, probability.DirectionPlugin(ctx, opts))
}

func TestShortestPathPlugin_EmptyPathIsUnreachable(t *testing.T) {
	opts := probability.DefaultOptions()
	ctx := probability.TransitionContext{PathEmpty: true}
	assert.True(t, math.IsInf(probability.ShortestPathPlugin(ctx, opts), -1))
}

func TestShortestPathPlugin_ReversedProjectionIsUnreachable(t *testing.T) {
	opts := probability.DefaultOptions()
	ctx := probability.TransitionContext{PathDistance: -1}
	assert.True(t, math.IsInf(probability.ShortestPathPlugin(ctx, opts), -1))
}

func TestTopologicalPlugin_Unconnected(t *testing.T) {
	opts := probability.DefaultOptions()
	ctx := probability.TransitionContext{Relation: probability.RelationUnconnected}
	assert.True(t, math.IsInf(probability.TopologicalPlugin(ctx, opts), -1))
}

func TestOffRoadPlugin(t *testing.T) {
	opts := probability.DefaultOptions()

	onRoad := probability.TransitionContext{TargetOffRoad: false}
	assert.Equal(t, 0.0, probability.OffRoadPlugin(onRoad, opts))

	entering := probability.TransitionContext{TargetOffRoad: true, SourceOffRoad: false}
	assert.InDelta(t, math.Log(opts.Phi), probability.OffRoadPlugin(entering, opts), 1e-12)

	continuing := probability.TransitionContext{TargetOffRoad: true, SourceOffRoad: true}
	assert.InDelta(t, math.Log(opts.Psi), probability.OffRoadPlugin(continuing, opts), 1e-12)
}

func TestNoUTurnPlugin(t *testing.T) {
	opts := probability.DefaultOptions()

	clean := probability.TransitionContext{PathPoints: []geo.Point{pt(0, 0), pt(1, 0), pt(2, 0)}}
	assert.Equal(t, 0.0, probability.NoUTurnPlugin(clean, opts))

	revisit := probability.TransitionContext{PathPoints: []geo.Point{pt(0, 0), pt(1, 0), pt(0, 0)}}
	assert.True(t, math.IsInf(probability.NoUTurnPlugin(revisit, opts), -1))
}

func TestTransitionCalculator_ShortCircuits(t *testing.T) {
	calc, err := probability.NewTransitionCalculator(probability.DefaultOptions())
	require.NoError(t, err)

	ctx := probability.TransitionContext{
		SameEdge: false,
		Relation: probability.RelationUnconnected,
		PathEmpty: true,
	}
	assert.True(t, math.IsInf(calc.LogProb(ctx), -1))
}

func TestTransitionCalculator_SameEdgeIsFinite(t *testing.T) {
	calc, err := probability.NewTransitionCalculator(probability.DefaultOptions())
	require.NoError(t, err)

	ctx := probability.TransitionContext{
		SameEdge: true,
		Relation: probability.RelationSameEdge,
		PrevObs:  pt(0, 0),
		Obs:      pt(1, 0),
	}
	got := calc.LogProb(ctx)
	assert.False(t, math.IsInf(got, -1) || math.IsNaN(got))
}
