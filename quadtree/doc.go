// Package quadtree implements a region (point-region) quadtree: a 2-D
// index over axis-aligned rectangles (geo.Region) addressed by a linear
// quadrant code, with a per-node region capacity and an optional maximum
// depth.
//
// Every traversal — Insert, Delete, Query — descends iteratively with an
// explicit work-stack; none of them recurse, so a deep, skewed tree never
// risks a stack overflow.
//
//	tree, _ := quadtree.New(bounds, quadtree.DefaultOptions())
//	_ = tree.Insert(region)
//	hits := tree.Query(probe)
package quadtree
