package kdtree

import "github.com/katalvlaran/mapmatch/geo"

// Tree is a 2-D K-D tree over points, queried through a single shared
// geo.TopologyCalculator for every distance computation.
type Tree struct {
	root  *node
	calc  geo.TopologyCalculator
	count int
}

// New returns an empty Tree bound to calc. Points are added via Insert.
func New(calc geo.TopologyCalculator) (*Tree, error) {
	if calc == nil {
		return nil, ErrNilCalculator
	}
	return &Tree{calc: calc}, nil
}

// Build bulk-builds a balanced Tree from pts via median-of-axis selection.
// Returns ErrEmptyInput if pts is empty, ErrNilCalculator if calc is nil.
func Build(pts []geo.Point, calc geo.TopologyCalculator) (*Tree, error) {
	if calc == nil {
		return nil, ErrNilCalculator
	}
	if len(pts) == 0 {
		return nil, ErrEmptyInput
	}
	cp := make([]geo.Point, len(pts))
	copy(cp, pts)
	return &Tree{root: buildBalanced(cp, 0), calc: calc, count: len(cp)}, nil
}

// Len returns the number of points stored.
func (t *Tree) Len() int { return t.count }

// Insert adds p to the tree, descending on the current axis. A point whose
// coordinates exactly equal an existing point's is a silent no-op (return
// value reports whether it was actually inserted).
func (t *Tree) Insert(p geo.Point) bool {
	if t.root == nil {
		t.root = &node{point: p}
		t.count++
		return true
	}
	depth := 0
	n := t.root
	for {
		if n.point.Equal(p) {
			return false // duplicate, rejected silently
		}
		axis := depth % dims
		if p.Axis(axis) <= n.point.Axis(axis) {
			if n.left == nil {
				n.left = &node{point: p}
				t.count++
				return true
			}
			n = n.left
		} else {
			if n.right == nil {
				n.right = &node{point: p}
				t.count++
				return true
			}
			n = n.right
		}
		depth++
	}
}

// Contains reports whether p is stored in the tree (exact coordinate match).
func (t *Tree) Contains(p geo.Point) bool {
	n := t.root
	depth := 0
	for n != nil {
		if n.point.Equal(p) {
			return true
		}
		axis := depth % dims
		if p.Axis(axis) <= n.point.Axis(axis) {
			n = n.left
		} else {
			n = n.right
		}
		depth++
	}
	return false
}

// Range returns every stored point within the axis-aligned rectangle
// [min,max] (inclusive on both ends).
func (t *Tree) Range(min, max geo.Point) []geo.Point {
	var out []geo.Point
	var walk func(n *node, depth int)
	walk = func(n *node, depth int) {
		if n == nil {
			return
		}
		if n.point.X >= min.X && n.point.X <= max.X && n.point.Y >= min.Y && n.point.Y <= max.Y {
			out = append(out, n.point)
		}
		axis := depth % dims
		lo, hi := min.Axis(axis), max.Axis(axis)
		split := n.point.Axis(axis)
		if lo <= split {
			walk(n.left, depth+1)
		}
		if hi >= split {
			walk(n.right, depth+1)
		}
	}
	walk(t.root, 0)
	return out
}

// NearestNeighbor returns the stored point closest to probe under the
// tree's distance metric, via standard branch-and-prune: descend to the
// leaf owning probe's cell, then on unwind recurse into the sibling subtree
// only if the splitting plane could hide a closer point.
//
// ok is false only when the tree is empty.
func (t *Tree) NearestNeighbor(probe geo.Point) (best geo.Point, ok bool) {
	if t.root == nil {
		return geo.Point{}, false
	}
	bestDist := -1.0
	var walk func(n *node, depth int)
	walk = func(n *node, depth int) {
		if n == nil {
			return
		}
		d := t.calc.Distance(n.point, probe)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = n.point
		}
		axis := depth % dims
		splitVal := n.point.Axis(axis)
		probeVal := probe.Axis(axis)

		var primary, secondary *node
		if probeVal <= splitVal {
			primary, secondary = n.left, n.right
		} else {
			primary, secondary = n.right, n.left
		}
		walk(primary, depth+1)

		if planeLowerBound(t.calc, n.point, probe, axis) < bestDist {
			walk(secondary, depth+1)
		}
	}
	walk(t.root, 0)
	return best, true
}

// planeLowerBound returns an admissible lower bound on the distance from
// probe to any point on the far side of the hyperplane splitPoint defines
// at the given axis: the distance from probe to its projection onto that
// plane. For a planar calculator this is exact (|probe[axis]-split[axis]|);
// for a geodesic one it is the great-circle distance along the splitting
// meridian/parallel (§9 open question resolution).
func planeLowerBound(calc geo.TopologyCalculator, splitPoint, probe geo.Point, axis int) float64 {
	var onPlane geo.Point
	if axis == 0 {
		onPlane = geo.Point{X: splitPoint.X, Y: probe.Y, Calc: probe.Calc}
	} else {
		onPlane = geo.Point{X: probe.X, Y: splitPoint.Y, Calc: probe.Calc}
	}
	return calc.Distance(probe, onPlane)
}
