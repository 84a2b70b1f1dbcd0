package roadgraph

import "errors"

// Sentinel errors for the roadgraph package.
var (
	// ErrEmptyNodeID indicates an empty node ID was supplied.
	ErrEmptyNodeID = errors.New("roadgraph: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("roadgraph: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("roadgraph: edge not found")

	// ErrNodeExists indicates AddNode was called with an ID already in use
	// for a different point.
	ErrNodeExists = errors.New("roadgraph: node already exists")

	// ErrInvalidPolyline indicates an edge was given a polyline with fewer
	// than two points.
	ErrInvalidPolyline = errors.New("roadgraph: edge polyline must have at least two points")
)
