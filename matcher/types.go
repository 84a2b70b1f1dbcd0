package matcher

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mapmatch/geo"
	"github.com/katalvlaran/mapmatch/roadgraph"
)

// ErrEmptyTrace indicates Match was called with zero observations.
var ErrEmptyTrace = errors.New("matcher: observation trace is empty")

// ErrNilDependency indicates a required collaborator (graph, calculators,
// candidate generator) was nil.
var ErrNilDependency = errors.New("matcher: a required dependency is nil")

// NoCandidateError reports that time-step T produced zero candidate edges.
type NoCandidateError struct {
	T int
}

func (e *NoCandidateError) Error() string {
	return fmt.Sprintf("matcher: no candidate edges at time-step %d", e.T)
}

// NoFeasiblePathError reports that every admissible score at time-step T
// evaluated to -Inf: no candidate at T is reachable from any candidate at
// T-1 under the configured transition plugins.
type NoFeasiblePathError struct {
	T int
}

func (e *NoFeasiblePathError) Error() string {
	return fmt.Sprintf("matcher: no feasible transition into time-step %d", e.T)
}

// CandidateGenerator returns the set of edges E_t whose polyline intersects
// a distance threshold around observation obs at time-step t. Edges need
// not be pre-sorted; Match sorts them by ID for deterministic tie-breaking.
type CandidateGenerator func(obs geo.Point, t int) ([]*roadgraph.Edge, error)

// Result is the outcome of a successful Match or MatchFrom call.
type Result struct {
	// Edges holds the matched edge for each observation, in input order.
	Edges []*roadgraph.Edge
	// Projections holds each observation's on-track projection onto its
	// matched edge.
	Projections []geo.Point
	// LogScore is the total log-probability of the winning path.
	LogScore float64
}
