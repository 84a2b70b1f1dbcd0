// Package roadnet builds synthetic roadgraph.Graph fixtures for tests,
// examples, and benchmarks: a rectangular Grid of orthogonal streets, a
// linear Chain of nodes (the "A-B-C-D" shape used throughout the matcher's
// test suite), and FromPolylines, which turns a bag of raw polylines into a
// graph by merging endpoints closer than a configured tolerance into a
// single node.
//
// Node IDs follow a fixed, documented scheme per constructor rather than a
// pluggable ID function, the same deliberate exception the grid/chain
// generators this package is modeled on make: explicit coordinates make
// fixtures readable in test failures.
package roadnet
