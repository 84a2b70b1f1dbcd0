package pathfinder

import (
	"errors"

	"github.com/katalvlaran/mapmatch/geo"
	"github.com/katalvlaran/mapmatch/roadgraph"
)

// Sentinel errors for the pathfinder package.
var (
	// ErrEmptyNodeID indicates an empty from/to node ID was supplied.
	ErrEmptyNodeID = errors.New("pathfinder: node ID is empty")

	// ErrNodeNotFound indicates from or to is absent from the graph.
	ErrNodeNotFound = errors.New("pathfinder: node not found")

	// ErrNilGraph indicates a nil *roadgraph.Graph was supplied.
	ErrNilGraph = errors.New("pathfinder: graph is nil")

	// ErrBadMaxExpansions indicates a negative MaxExpansions was supplied.
	ErrBadMaxExpansions = errors.New("pathfinder: MaxExpansions must be non-negative")
)

// WeightFunc computes the traversal cost of an edge. Returning an error
// aborts the search.
type WeightFunc func(e *roadgraph.Edge) (float64, error)

// Heuristic estimates the remaining cost from a to b. For admissibility
// (and thus optimality of the result) it must never exceed the true
// cost-to-go under the configured WeightFunc.
type Heuristic func(a, b geo.Point) float64

// Options configures FindPath.
//
// WeightFunc   – cost of traversing an edge. Default: geodesic polyline
//                length (edge.Polyline.Length()).
// HeuristicFn  – admissible estimate of remaining cost. Default: straight-
//                line distance between node points, consistent with the
//                default WeightFunc.
// MaxExpansions – caps the number of node expansions; 0 means unbounded.
//                 Exceeding the cap is treated as "unreachable" (empty path),
//                 not an error.
type Options struct {
	WeightFunc    WeightFunc
	HeuristicFn   Heuristic
	MaxExpansions int
}

// Option is a functional option for FindPath.
type Option func(*Options)

// WithWeightFunc overrides the default edge-weight function.
func WithWeightFunc(fn WeightFunc) Option {
	return func(o *Options) { o.WeightFunc = fn }
}

// WithHeuristic overrides the default heuristic.
func WithHeuristic(fn Heuristic) Option {
	return func(o *Options) { o.HeuristicFn = fn }
}

// WithMaxExpansions bounds the number of node expansions. A value of 0
// means unbounded. Negative values panic with ErrBadMaxExpansions, in the
// teacher's functional-option idiom of failing fast on construction.
func WithMaxExpansions(n int) Option {
	if n < 0 {
		panic(ErrBadMaxExpansions.Error())
	}
	return func(o *Options) { o.MaxExpansions = n }
}

// DefaultOptions returns the baseline Options used when no Option is given.
func DefaultOptions() Options {
	return Options{
		WeightFunc:    defaultWeightFunc,
		HeuristicFn:   defaultHeuristic,
		MaxExpansions: 0,
	}
}

func defaultWeightFunc(e *roadgraph.Edge) (float64, error) {
	return e.Polyline.Length(), nil
}

func defaultHeuristic(a, b geo.Point) float64 {
	return a.Distance(b)
}

// PathSummary is the result of a successful or unreachable FindPath call.
// An unreachable target is reported by an empty Nodes slice, not by an
// error. A search whose start is its target has one node and no edges.
type PathSummary struct {
	Edges         []*roadgraph.Edge
	Nodes         []string
	VisitCount    int
	TotalDistance float64
}

// Unreachable reports whether the summary represents a failed search.
func (s PathSummary) Unreachable() bool {
	return len(s.Nodes) == 0
}
