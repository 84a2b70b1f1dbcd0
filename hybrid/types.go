package hybrid

import "errors"

// Sentinel errors for the hybrid package.
var (
	// ErrNullRegion indicates a null geo.Region was supplied to Insert.
	ErrNullRegion = errors.New("hybrid: region must not be null")

	// ErrNilCalculator indicates a nil geo.TopologyCalculator was supplied.
	ErrNilCalculator = errors.New("hybrid: topology calculator must not be nil")

	// ErrPointOutsideRegion indicates the point passed to Insert does not
	// lie within the region meant to own it.
	ErrPointOutsideRegion = errors.New("hybrid: point lies outside its candidate region")
)
