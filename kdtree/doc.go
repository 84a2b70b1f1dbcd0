// Package kdtree implements a 2-D K-D tree: a balanced bulk build
// (median-of-axis), incremental insert, Contains, Range and
// NearestNeighbor, over any geo.TopologyCalculator-supplied distance
// metric — Euclidean or geodesic (Vincenty).
//
// The splitting axis at depth d is d mod 2 (X, then Y, alternating). For a
// geodesic tree, NearestNeighbor's plane-distance pruning bound is the
// great-circle distance from the probe to its projection onto the
// splitting meridian/parallel: an admissible (non-overestimating) lower
// bound, though not tight near the poles.
//
//	tree, _ := kdtree.Build(points, geo.Euclidean{})
//	nearest, ok := tree.NearestNeighbor(probe)
package kdtree
