package rtree

import "github.com/katalvlaran/mapmatch/geo"

// rnode is an internal or leaf node of a dynamic Tree. Its bounds field is
// a cache of boundsOf(entries), kept in sync by the tree on every mutation.
type rnode struct {
	bounds  geo.Region
	parent  *rnode
	entries []entry
	leaf    bool
}

// indexOfChild returns the index of child within n's entries, or -1.
func (n *rnode) indexOfChild(child *rnode) int {
	for i, e := range n.entries {
		if e.child == child {
			return i
		}
	}
	return -1
}

// recalcBounds recomputes n.bounds from its current entries.
func (n *rnode) recalcBounds() {
	n.bounds = boundsOf(n.entries)
}
