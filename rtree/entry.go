package rtree

import "github.com/katalvlaran/mapmatch/geo"

// entry is one slot of an rnode. A leaf entry carries a user payload and
// child==nil; an internal entry carries child and payload==nil. bounds is
// always the MBR of whatever the entry points to (the payload's own region
// for a leaf entry, the child node's bounds for an internal entry).
type entry struct {
	bounds  geo.Region
	child   *rnode
	payload interface{}
}

// boundsOf returns the union MBR of entries, or the null region if empty.
func boundsOf(entries []entry) geo.Region {
	r := geo.OfEmpty()
	for _, e := range entries {
		r.ExpandToInclude(e.bounds)
	}
	return r
}
