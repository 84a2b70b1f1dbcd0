package matcher

import (
	"github.com/katalvlaran/mapmatch/geo"
	"github.com/katalvlaran/mapmatch/probability"
	"github.com/katalvlaran/mapmatch/roadgraph"
)

// MatchFrom restarts the Viterbi recurrence at observations[from:] with a
// fresh uniform initial distribution, as if that suffix were its own trace.
// It is the caller's recovery tool for a *NoFeasiblePathError: rather than
// failing the whole trace, restart matching from the time-step that broke.
//
// The returned Result covers only the suffix; its indices are relative to
// the suffix, not the original trace. candidates still receives the
// original absolute time-step index (from+i), so a generator keyed on
// absolute time continues to work unmodified.
func MatchFrom(
	g *roadgraph.Graph,
	observations []geo.Point,
	from int,
	candidates CandidateGenerator,
	emission *probability.EmissionCalculator,
	transition *probability.TransitionCalculator,
) (Result, error) {
	if from < 0 || from >= len(observations) {
		return Result{}, ErrEmptyTrace
	}

	suffix := observations[from:]
	shifted := func(obs geo.Point, t int) ([]*roadgraph.Edge, error) {
		return candidates(obs, from+t)
	}

	return Match(g, suffix, shifted, emission, transition)
}
