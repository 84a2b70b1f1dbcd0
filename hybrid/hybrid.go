package hybrid

import (
	"github.com/katalvlaran/mapmatch/geo"
	"github.com/katalvlaran/mapmatch/kdtree"
	"github.com/katalvlaran/mapmatch/quadtree"
)

// Index composes an outer quadtree.Tree of boundary regions with one
// kdtree.Tree per boundary region, and routes point operations to whichever
// boundary region currently covers the probe.
type Index struct {
	outer *quadtree.Tree
	calc  geo.TopologyCalculator
}

// NewIndex constructs an empty Index over bounds.
func NewIndex(bounds geo.Region, opts quadtree.Options, calc geo.TopologyCalculator) (*Index, error) {
	if calc == nil {
		return nil, ErrNilCalculator
	}
	outer, err := quadtree.New(bounds, opts)
	if err != nil {
		return nil, err
	}
	return &Index{outer: outer, calc: calc}, nil
}

// pointRegion returns the degenerate (zero-area) region at p, used to probe
// the outer quadtree for regions covering p.
func pointRegion(p geo.Point) geo.Region {
	r, _ := geo.OfMinMax(p.X, p.Y, p.X, p.Y)
	return r
}

// owningBoundary returns the first boundary region in the outer index whose
// bounds cover p, and its attached K-D tree.
func (idx *Index) owningBoundary(p geo.Point) (geo.Region, *kdtree.Tree, bool) {
	for _, cand := range idx.outer.Query(pointRegion(p)) {
		if !cand.Boundary || !cand.ContainsPoint(p) {
			continue
		}
		if tree, ok := cand.Payload.(*kdtree.Tree); ok {
			return cand, tree, true
		}
	}
	return geo.Region{}, nil, false
}

// Insert places point into the K-D tree of whichever boundary region
// already covers it. If none does, region is marked as the new boundary
// owner — attached to a fresh single-point K-D tree — and inserted into the
// outer index. region must contain point.
func (idx *Index) Insert(region geo.Region, point geo.Point) error {
	if region.IsNull() {
		return ErrNullRegion
	}
	if !region.ContainsPoint(point) {
		return ErrPointOutsideRegion
	}

	if _, tree, ok := idx.owningBoundary(point); ok {
		tree.Insert(point)
		return nil
	}

	leaf, err := kdtree.New(idx.calc)
	if err != nil {
		return err
	}
	leaf.Insert(point)

	region.Boundary = true
	region.Payload = leaf
	return idx.outer.Insert(region)
}

// Contains reports whether point was previously inserted into any boundary
// region covering it.
func (idx *Index) Contains(point geo.Point) bool {
	_, tree, ok := idx.owningBoundary(point)
	if !ok {
		return false
	}
	return tree.Contains(point)
}

// NearestNeighbor routes to every boundary region covering point and
// returns the first non-null nearest-neighbor result. ok is false when no
// boundary region covers point.
func (idx *Index) NearestNeighbor(point geo.Point) (geo.Point, bool) {
	for _, cand := range idx.outer.Query(pointRegion(point)) {
		if !cand.Boundary || !cand.ContainsPoint(point) {
			continue
		}
		tree, ok := cand.Payload.(*kdtree.Tree)
		if !ok {
			continue
		}
		if nearest, found := tree.NearestNeighbor(point); found {
			return nearest, true
		}
	}
	return geo.Point{}, false
}
