package probability

import (
	"math"

	"github.com/katalvlaran/mapmatch/geo"
)

// ConnectionRelation classifies how two candidate edges relate to each
// other in the road graph, for the Topological transition plugin.
type ConnectionRelation int

const (
	// RelationSameEdge: the candidate edge did not change.
	RelationSameEdge ConnectionRelation = iota
	// RelationDirectlyConnected: the edges share an endpoint.
	RelationDirectlyConnected
	// RelationViaOneEdge: the edges are connected through exactly one
	// intermediate edge.
	RelationViaOneEdge
	// RelationUnconnected: no short connection exists.
	RelationUnconnected
)

// TransitionContext carries everything a transition plugin needs to score
// one e' -> e move between two consecutive observations. Fields describing
// the connecting path are meaningless when SameEdge is true.
type TransitionContext struct {
	PrevObs Point
	Obs     Point

	SameEdge bool
	Relation ConnectionRelation

	// PathEmpty is true when no connecting path exists between the edges
	// (and SameEdge is false).
	PathEmpty bool
	// Path is the connecting polyline, from the previous edge's end node to
	// the current edge's start node. Zero value when SameEdge or PathEmpty.
	Path geo.Polyline
	// PathPoints is the node-point sequence making up Path, used by the
	// NoUTurn plugin to detect revisits.
	PathPoints []geo.Point
	// PathReversed is true if the projection of the observations onto Path
	// traverses it back-to-front.
	PathReversed bool
	// PathDistance is the signed along-path distance between the
	// projections of PrevObs and Obs; negative means the projections are in
	// reversed order.
	PathDistance float64

	SourceOffRoad bool
	TargetOffRoad bool
}

// Point is a type alias kept local to this package's exported surface so
// plugin signatures read naturally; it is always geo.Point.
type Point = geo.Point

// Plugin computes one log-space transition factor.
type Plugin func(ctx TransitionContext, opts Options) float64

// DefaultPlugins returns the five built-in transition plugins in the order
// the calculator evaluates them: ShortestPath, Topological, Direction,
// OffRoad, NoUTurn.
func DefaultPlugins() []Plugin {
	return []Plugin{
		ShortestPathPlugin,
		TopologicalPlugin,
		DirectionPlugin,
		OffRoadPlugin,
		NoUTurnPlugin,
	}
}

// ShortestPathPlugin scores agreement between the observation-distance gap
// and the shortest-path distance along the candidate edges.
func ShortestPathPlugin(ctx TransitionContext, opts Options) float64 {
	if !ctx.SameEdge && ctx.PathEmpty {
		return math.Inf(-1)
	}
	if ctx.PathDistance < 0 {
		return math.Inf(-1)
	}

	var base float64
	if ctx.SameEdge {
		base = math.Log(opts.PSame)
	} else {
		base = math.Log(1 - opts.PSame)
	}

	gamma := 1 / opts.Beta
	obsGap := ctx.PrevObs.Distance(ctx.Obs)
	penalty := gamma * math.Abs(obsGap-ctx.PathDistance)

	return base + math.Log(gamma) - penalty
}

// topologicalCoefficients holds the linear-space weight per ConnectionRelation.
var topologicalCoefficients = map[ConnectionRelation]float64{
	RelationSameEdge:          0.6,
	RelationDirectlyConnected: 0.4,
	RelationViaOneEdge:        0.2,
	RelationUnconnected:       0,
}

// TopologicalPlugin scores the graph-connectivity relation between the two
// candidate edges.
func TopologicalPlugin(ctx TransitionContext, _ Options) float64 {
	return math.Log(topologicalCoefficients[ctx.Relation])
}

// DirectionPlugin scores agreement between the observation-to-observation
// bearing and the bearing along the connecting path. Edges on the same
// candidate contribute no directional information and score 0.
func DirectionPlugin(ctx TransitionContext, _ Options) float64 {
	if ctx.SameEdge {
		return 0
	}
	if ctx.PathEmpty {
		return math.Inf(-1)
	}

	pathBearing := ctx.Path.InitialBearing()
	if ctx.PathReversed {
		pathBearing = math.Mod(pathBearing+180, 360)
	}
	obsBearing := ctx.PrevObs.InitialBearing(ctx.Obs)

	deltaRad := angularDiffRadians(obsBearing, pathBearing)
	cos := math.Cos(deltaRad)
	// A perpendicular bearing pair lands arbitrarily close to, but not
	// exactly at, zero in floating point; snap it so log(0) = -Inf exactly
	// rather than a large-but-finite penalty.
	if math.Abs(cos) < 1e-9 {
		return math.Inf(-1)
	}
	return math.Log(math.Abs(cos))
}

// OffRoadPlugin applies a multiplicative bias when the transition moves
// onto, or continues along, an off-road edge.
func OffRoadPlugin(ctx TransitionContext, opts Options) float64 {
	if !ctx.TargetOffRoad {
		return 0
	}
	if ctx.SourceOffRoad {
		return math.Log(opts.Psi)
	}
	return math.Log(opts.Phi)
}

// NoUTurnPlugin forbids a connecting path from revisiting any point in its
// own node sequence.
func NoUTurnPlugin(ctx TransitionContext, _ Options) float64 {
	if ctx.SameEdge || ctx.PathEmpty {
		return 0
	}
	for i := 0; i < len(ctx.PathPoints); i++ {
		for j := i + 1; j < len(ctx.PathPoints); j++ {
			if ctx.PathPoints[i].Equal(ctx.PathPoints[j]) {
				return math.Inf(-1)
			}
		}
	}
	return 0
}

// TransitionCalculator composes a fixed set of plugins into one log-space
// transition score.
type TransitionCalculator struct {
	opts    Options
	plugins []Plugin
}

// NewTransitionCalculator validates opts and returns a TransitionCalculator
// over plugins. If plugins is empty, DefaultPlugins() is used.
func NewTransitionCalculator(opts Options, plugins ...Plugin) (*TransitionCalculator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(plugins) == 0 {
		plugins = DefaultPlugins()
	}
	return &TransitionCalculator{opts: opts, plugins: plugins}, nil
}

// LogProb evaluates every configured plugin in order, summing log factors
// and short-circuiting to -Inf the moment the running sum goes non-finite.
func (c *TransitionCalculator) LogProb(ctx TransitionContext) float64 {
	sum := 0.0
	for _, p := range c.plugins {
		sum += p(ctx, c.opts)
		if math.IsInf(sum, 0) || math.IsNaN(sum) {
			return math.Inf(-1)
		}
	}
	return sum
}
