package roadnet

import (
	"errors"

	"github.com/katalvlaran/mapmatch/geo"
)

// Sentinel errors for the roadnet package.
var (
	// ErrTooFewVertices indicates a size parameter was too small: rows or
	// cols < 1 for Grid, n < 2 for Chain.
	ErrTooFewVertices = errors.New("roadnet: size parameter too small")

	// ErrNonPositiveSpacing indicates a spacing/step parameter was <= 0.
	ErrNonPositiveSpacing = errors.New("roadnet: spacing must be > 0")

	// ErrEmptyPolylines indicates FromPolylines was called with no input.
	ErrEmptyPolylines = errors.New("roadnet: no polylines supplied")
)

// Options configures the generators in this package.
type Options struct {
	// Calc supplies the topology used for node coordinates and edge
	// geometry. Defaults to geo.Euclidean{}, matching the plane-geometry
	// fixtures used throughout the matcher's test suite.
	Calc geo.TopologyCalculator

	// MergeTolerance is the maximum distance (in Calc's units) between two
	// polyline endpoints for FromPolylines to merge them into one node.
	// Unused by Grid and Chain.
	MergeTolerance float64
}

// DefaultOptions returns the package defaults: Euclidean geometry, a
// MergeTolerance tight enough to only merge near-exact coincident points.
func DefaultOptions() Options {
	return Options{
		Calc:           geo.Euclidean{},
		MergeTolerance: 1e-6,
	}
}

// Option customizes Options before a generator runs.
type Option func(*Options)

// WithCalculator overrides the topology calculator. Panics on nil.
func WithCalculator(calc geo.TopologyCalculator) Option {
	if calc == nil {
		panic("roadnet: WithCalculator(nil)")
	}
	return func(o *Options) {
		o.Calc = calc
	}
}

// WithMergeTolerance overrides FromPolylines' endpoint-merge distance.
// Panics if tol < 0.
func WithMergeTolerance(tol float64) Option {
	if tol < 0 {
		panic("roadnet: WithMergeTolerance(tol<0)")
	}
	return func(o *Options) {
		o.MergeTolerance = tol
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
