package kdtree

import (
	"sort"

	"github.com/katalvlaran/mapmatch/geo"
)

// node is one point of the tree, split at depth d on axis d mod 2: every
// point in left has point[axis] <= node.point[axis], every point in right
// has point[axis] strictly greater.
type node struct {
	point       geo.Point
	left, right *node
}

// buildBalanced recursively bulk-builds a balanced subtree from pts,
// choosing the median along depth's axis as the node and recursing on the
// two halves. pts is reordered in place (callers pass a private copy).
func buildBalanced(pts []geo.Point, depth int) *node {
	if len(pts) == 0 {
		return nil
	}
	axis := depth % dims
	sort.Slice(pts, func(i, j int) bool { return pts[i].Axis(axis) < pts[j].Axis(axis) })
	mid := len(pts) / 2
	// Points sharing the median's axis value go left, keeping right strictly greater.
	for mid+1 < len(pts) && pts[mid+1].Axis(axis) == pts[mid].Axis(axis) {
		mid++
	}
	n := &node{point: pts[mid]}
	n.left = buildBalanced(pts[:mid], depth+1)
	n.right = buildBalanced(pts[mid+1:], depth+1)
	return n
}
