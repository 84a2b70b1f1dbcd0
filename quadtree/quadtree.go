package quadtree

import "github.com/katalvlaran/mapmatch/geo"

// Tree is a region quadtree over a fixed root bounds. Zero value is not
// usable; construct with New.
type Tree struct {
	root  *node
	opts  Options
	count int
}

// New constructs a Tree over bounds with opts. Returns ErrInvalidOptions if
// opts fails Validate, ErrNullBounds if bounds is the null region.
func New(bounds geo.Region, opts Options) (*Tree, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if bounds.IsNull() {
		return nil, ErrNullBounds
	}
	return &Tree{root: newNode(bounds, 0, geo.NewBitCode()), opts: opts}, nil
}

// IsEmpty reports whether the tree holds no regions.
func (t *Tree) IsEmpty() bool {
	return t.count == 0
}

// workItem is one frame of the explicit descent stack used by Insert,
// Delete and Query. Recursion is a defect here (§4.2): the tree can be deep
// with skewed data, so every traversal is iterative.
type workItem struct {
	n *node
}

// Insert places region into the tree, splitting nodes that overflow
// MaxRegionsPerNode (while depth allows), and pushing stored regions down
// into newly created children when they fit.
func (t *Tree) Insert(region geo.Region) error {
	if region.IsNull() {
		return ErrNullBounds
	}
	n := t.root
	for {
		idx := quadSelf
		if !n.isLeaf() {
			idx = getChildIndex(n.bounds, region)
		}
		if idx != quadSelf && !n.isLeaf() {
			n = n.children[idx]
			continue
		}
		// n is either a leaf, or region straddles a midline at an internal
		// node — either way it's stored here.
		region.Code = n.code
		n.regions = append(n.regions, region)
		t.count++
		t.maybeSplit(n)
		return nil
	}
}

// maybeSplit splits n (and recursively any overflowing children the split
// produces) while n.depth allows it, using an explicit worklist instead of
// recursion.
func (t *Tree) maybeSplit(n *node) {
	stack := []*node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(cur.regions) <= t.opts.MaxRegionsPerNode {
			continue
		}
		if t.opts.MaxLevels != -1 && cur.depth >= t.opts.MaxLevels {
			continue // at depth cap: overflow is tolerated rather than split further
		}
		if cur.isLeaf() {
			split(cur)
		}
		for i := 0; i < 4; i++ {
			stack = append(stack, cur.children[i])
		}
	}
}

// Delete removes the exact region (structural equality) from the tree,
// collapsing any node that becomes empty of both regions and descendant
// regions. Returns true if a matching region was found and removed.
func (t *Tree) Delete(region geo.Region) bool {
	if region.IsNull() {
		return false
	}
	path := []*node{t.root}
	n := t.root
	for !n.isLeaf() {
		idx := getChildIndex(n.bounds, region)
		if idx == quadSelf {
			break
		}
		n = n.children[idx]
		path = append(path, n)
	}

	// Search n.regions (and, defensively, ancestors) for an exact match —
	// a region straddling a midline may be stored higher than the deepest
	// node reached above.
	for i := len(path) - 1; i >= 0; i-- {
		cand := path[i]
		for j, r := range cand.regions {
			if r.Equal(region) {
				cand.regions = append(cand.regions[:j], cand.regions[j+1:]...)
				t.count--
				t.collapseIfEmpty(path[:i+1])
				return true
			}
		}
	}
	return false
}

// collapseIfEmpty walks path from the deepest visited node back to the
// root. An internal node on the path whose own regions and descendants are
// all empty has its children cleared. An internal node whose four children
// are all leaves has them dropped: their regions move up into the node,
// which maybeSplit may then split again. An internal node with any
// non-leaf child is left unchanged, even when it holds no regions itself.
func (t *Tree) collapseIfEmpty(path []*node) {
	for i := len(path) - 1; i >= 0; i-- {
		n := path[i]
		if n.isLeaf() {
			continue
		}
		var collected []geo.Region
		stack := []*node{n.children[0], n.children[1], n.children[2], n.children[3]}
		allEmpty := true
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if cur == nil {
				continue
			}
			collected = append(collected, cur.regions...)
			if !cur.isLeaf() {
				allEmpty = false
				stack = append(stack, cur.children[0], cur.children[1], cur.children[2], cur.children[3])
			}
		}
		if len(n.regions) == 0 && len(collected) == 0 {
			n.children = [4]*node{}
			continue
		}
		if !allEmpty {
			continue // deeper structure remains; nothing to collapse yet
		}
		// Collapse: drop the subtree, keep n's own regions, and push the
		// collected descendant regions back in starting from n — their
		// code must move with them, since they now live at n's level.
		n.children = [4]*node{}
		for _, r := range collected {
			r.Code = n.code
			n.regions = append(n.regions, r)
		}
		t.maybeSplit(n)
	}
}

// Query returns every stored region whose bounds intersect probe.
func (t *Tree) Query(probe geo.Region) []geo.Region {
	if probe.IsNull() {
		return nil
	}
	var hits []geo.Region
	stack := []*node{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == nil {
			continue
		}
		for _, r := range n.regions {
			if r.Intersects(probe) {
				hits = append(hits, r)
			}
		}
		if n.isLeaf() {
			continue
		}
		idx := getChildIndex(n.bounds, probe)
		if idx != quadSelf {
			stack = append(stack, n.children[idx])
			continue
		}
		for i := 0; i < 4; i++ {
			if n.children[i].bounds.Intersects(probe) {
				stack = append(stack, n.children[i])
			}
		}
	}
	return hits
}

// Intersects reports whether any stored region intersects probe.
func (t *Tree) Intersects(probe geo.Region) bool {
	return len(t.Query(probe)) > 0
}

// Contains reports whether region is stored in the tree (exact structural
// match, not merely overlap).
func (t *Tree) Contains(region geo.Region) bool {
	stack := []*node{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, r := range n.regions {
			if r.Equal(region) {
				return true
			}
		}
		if n.isLeaf() {
			continue
		}
		idx := getChildIndex(n.bounds, region)
		if idx != quadSelf {
			stack = append(stack, n.children[idx])
			continue
		}
		for i := 0; i < 4; i++ {
			stack = append(stack, n.children[i])
		}
	}
	return false
}
