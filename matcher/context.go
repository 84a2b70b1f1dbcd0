package matcher

import (
	"math"

	"github.com/katalvlaran/mapmatch/geo"
	"github.com/katalvlaran/mapmatch/pathfinder"
	"github.com/katalvlaran/mapmatch/probability"
	"github.com/katalvlaran/mapmatch/roadgraph"
)

// buildTransitionContext computes every field probability.TransitionContext
// needs to score a move from prevEdge to edge between prevObs and obs.
//
// path(e'->e) is computed on demand via an A* query from prevEdge.To to
// edge.From, per spec §4.9. When prevEdge and edge are the same candidate,
// no graph query is needed: the path lives entirely within the one edge's
// own polyline.
func buildTransitionContext(
	g *roadgraph.Graph,
	prevEdge, edge *roadgraph.Edge,
	prevObs, obs geo.Point,
) (probability.TransitionContext, error) {
	if prevEdge.ID == edge.ID {
		return sameEdgeContext(prevEdge, prevObs, obs), nil
	}
	return crossEdgeContext(g, prevEdge, edge, prevObs, obs)
}

func sameEdgeContext(edge *roadgraph.Edge, prevObs, obs geo.Point) probability.TransitionContext {
	s0 := edge.Polyline.AlongTrackDistance(prevObs)
	s1 := edge.Polyline.AlongTrackDistance(obs)
	dist := s1 - s0

	return probability.TransitionContext{
		PrevObs:       prevObs,
		Obs:           obs,
		SameEdge:      true,
		Relation:      probability.RelationSameEdge,
		PathDistance:  dist,
		PathReversed:  dist < 0,
		SourceOffRoad: edge.OffRoad,
		TargetOffRoad: edge.OffRoad,
	}
}

func crossEdgeContext(
	g *roadgraph.Graph,
	prevEdge, edge *roadgraph.Edge,
	prevObs, obs geo.Point,
) (probability.TransitionContext, error) {
	ctx := probability.TransitionContext{
		PrevObs:       prevObs,
		Obs:           obs,
		SourceOffRoad: prevEdge.OffRoad,
		TargetOffRoad: edge.OffRoad,
	}

	summary, err := pathfinder.FindPath(g, prevEdge.To, edge.From)
	if err != nil {
		return ctx, err
	}
	if summary.Unreachable() {
		ctx.PathEmpty = true
		ctx.Relation = probability.RelationUnconnected
		return ctx, nil
	}

	switch len(summary.Edges) {
	case 0:
		ctx.Relation = probability.RelationDirectlyConnected
	case 1:
		ctx.Relation = probability.RelationViaOneEdge
	default:
		ctx.Relation = probability.RelationUnconnected
	}

	pathPoints := make([]geo.Point, 0, len(summary.Nodes))
	for _, nodeID := range summary.Nodes {
		n, ok := g.Node(nodeID)
		if !ok {
			continue
		}
		pathPoints = append(pathPoints, n.Point)
	}
	ctx.PathPoints = pathPoints

	if len(pathPoints) >= 2 {
		poly, polyErr := geo.NewPolyline(pathPoints, pathPoints[0].Calc)
		if polyErr == nil {
			ctx.Path = poly
		}
	} else {
		// The connecting path is a single shared node (prevEdge.To ==
		// edge.From): fall back to edge's own bearing for Direction scoring.
		ctx.Path = edge.Polyline
	}

	remainderOfPrev := prevEdge.Polyline.Length() - prevEdge.Polyline.AlongTrackDistance(prevObs)
	var connectorLen float64
	for _, e := range summary.Edges {
		connectorLen += e.Polyline.Length()
	}
	intoEdge := edge.Polyline.AlongTrackDistance(obs)
	magnitude := remainderOfPrev + connectorLen + intoEdge

	// The three terms above are each non-negative by construction, so they
	// only ever give the unsigned distance travelled along the path in its
	// found direction (prevEdge.To -> edge.From). Whether the observations
	// actually progressed that way, rather than backward along it, is a
	// separate question: compare the bearing the observations actually
	// moved along against the path's own bearing. More than 90 degrees
	// apart means the projection traverses the path back-to-front.
	obsBearing := prevObs.InitialBearing(obs)
	pathBearing := ctx.Path.InitialBearing()
	ctx.PathReversed = math.Cos((obsBearing-pathBearing)*math.Pi/180) < 0

	if ctx.PathReversed {
		ctx.PathDistance = -magnitude
	} else {
		ctx.PathDistance = magnitude
	}
	return ctx, nil
}
