package matcher

import (
	"math"
	"sort"

	"github.com/katalvlaran/mapmatch/geo"
	"github.com/katalvlaran/mapmatch/probability"
	"github.com/katalvlaran/mapmatch/roadgraph"
)

// Match runs the Viterbi map-matcher over observations, choosing for each
// time-step the candidate edge (from candidates) that maximizes the
// accumulated log-score, then backtracking to the globally optimal edge
// sequence.
//
// Fails with *NoCandidateError if some time-step has zero candidates, or
// *NoFeasiblePathError if every admissible score at some time-step is -Inf.
func Match(
	g *roadgraph.Graph,
	observations []geo.Point,
	candidates CandidateGenerator,
	emission *probability.EmissionCalculator,
	transition *probability.TransitionCalculator,
) (Result, error) {
	if g == nil || emission == nil || transition == nil || candidates == nil {
		return Result{}, ErrNilDependency
	}
	if len(observations) == 0 {
		return Result{}, ErrEmptyTrace
	}

	T := len(observations)
	cands := make([][]*roadgraph.Edge, T)
	for t, obs := range observations {
		cs, err := candidates(obs, t)
		if err != nil {
			return Result{}, err
		}
		if len(cs) == 0 {
			return Result{}, &NoCandidateError{T: t}
		}
		sorted := append([]*roadgraph.Edge(nil), cs...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
		cands[t] = sorted
	}

	delta := make([]map[string]float64, T)
	psi := make([]map[string]string, T)

	if err := initStep(cands[0], observations[0], emission, delta, psi); err != nil {
		return Result{}, err
	}

	for t := 1; t < T; t++ {
		if err := viterbiStep(g, cands, observations, t, emission, transition, delta, psi); err != nil {
			return Result{}, err
		}
	}

	return backtrack(cands, observations, delta, psi)
}

// initStep computes delta[0] from the uniform initial prior and the
// emission score alone (no transition at the first time-step).
func initStep(
	cands0 []*roadgraph.Edge,
	obs0 geo.Point,
	emission *probability.EmissionCalculator,
	delta []map[string]float64,
	psi []map[string]string,
) error {
	logInit, err := probability.LogInitial(len(cands0))
	if err != nil {
		return err
	}

	row := make(map[string]float64, len(cands0))
	for _, e := range cands0 {
		row[e.ID] = logInit + emission.LogProb(obs0, e.Polyline, nil)
	}
	delta[0] = row
	psi[0] = map[string]string{}

	if allUnreachable(row) {
		return &NoFeasiblePathError{T: 0}
	}
	return nil
}

// viterbiStep fills delta[t] and psi[t] from delta[t-1]: for every
// candidate at t, it scans every candidate at t-1 (in ascending edge-ID
// order, so the first predecessor achieving the max score wins ties,
// satisfying the "prefer smaller edge identifier" tie-break) and keeps the
// strictly best combined score.
func viterbiStep(
	g *roadgraph.Graph,
	cands [][]*roadgraph.Edge,
	observations []geo.Point,
	t int,
	emission *probability.EmissionCalculator,
	transition *probability.TransitionCalculator,
	delta []map[string]float64,
	psi []map[string]string,
) error {
	prevObs, obs := observations[t-1], observations[t]
	prevDelta := delta[t-1]

	row := make(map[string]float64, len(cands[t]))
	back := make(map[string]string, len(cands[t]))

	for _, e := range cands[t] {
		emit := emission.LogProb(obs, e.Polyline, &prevObs)

		best := math.Inf(-1)
		var bestPrev string
		for _, ePrev := range cands[t-1] {
			prevScore, ok := prevDelta[ePrev.ID]
			if !ok || math.IsInf(prevScore, -1) {
				continue
			}
			ctx, err := buildTransitionContext(g, ePrev, e, prevObs, obs)
			if err != nil {
				return err
			}
			trans := transition.LogProb(ctx)
			if math.IsInf(trans, -1) {
				continue
			}
			score := prevScore + trans
			if score > best {
				best = score
				bestPrev = ePrev.ID
			}
		}

		if bestPrev != "" {
			back[e.ID] = bestPrev
		}
		row[e.ID] = best + emit
	}

	delta[t] = row
	psi[t] = back

	if allUnreachable(row) {
		return &NoFeasiblePathError{T: t}
	}
	return nil
}

func allUnreachable(row map[string]float64) bool {
	for _, v := range row {
		if !math.IsInf(v, -1) && !math.IsNaN(v) {
			return false
		}
	}
	return true
}

// backtrack finds the best-scoring final candidate (smaller edge ID breaks
// ties) and walks psi backward to recover the full edge sequence.
func backtrack(
	cands [][]*roadgraph.Edge,
	observations []geo.Point,
	delta []map[string]float64,
	psi []map[string]string,
) (Result, error) {
	T := len(observations)
	last := T - 1

	best := math.Inf(-1)
	var bestID string
	for _, e := range cands[last] {
		score := delta[last][e.ID]
		if score > best {
			best = score
			bestID = e.ID
		}
	}

	edgeByID := make([]map[string]*roadgraph.Edge, T)
	for t := range cands {
		m := make(map[string]*roadgraph.Edge, len(cands[t]))
		for _, e := range cands[t] {
			m[e.ID] = e
		}
		edgeByID[t] = m
	}

	edges := make([]*roadgraph.Edge, T)
	cur := bestID
	for t := T - 1; t >= 0; t-- {
		edges[t] = edgeByID[t][cur]
		if t > 0 {
			cur = psi[t][cur]
		}
	}

	projections := make([]geo.Point, T)
	for t, e := range edges {
		projections[t] = e.Polyline.OnTrackClosestPoint(observations[t])
	}

	return Result{Edges: edges, Projections: projections, LogScore: best}, nil
}
