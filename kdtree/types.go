package kdtree

import "errors"

// Sentinel errors for the kdtree package.
var (
	// ErrEmptyInput indicates Build was called with no points.
	ErrEmptyInput = errors.New("kdtree: bulk build requires at least one point")

	// ErrNilCalculator indicates a nil geo.TopologyCalculator was supplied.
	ErrNilCalculator = errors.New("kdtree: topology calculator must not be nil")
)

const dims = 2
