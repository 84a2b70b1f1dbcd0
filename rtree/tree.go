package rtree

import "github.com/katalvlaran/mapmatch/geo"

// Tree is a dynamic R-Tree: regions are inserted and deleted one at a
// time, with node overflow resolved by a pluggable Splitter and subtree
// placement resolved by a pluggable Selector.
type Tree struct {
	root     *rnode
	opts     Options
	selector Selector
	splitter Splitter
	count    int
}

// New constructs an empty Tree. selector defaults to MinimalAreaIncrease
// and splitter to LinearSplit if nil.
func New(opts Options, selector Selector, splitter Splitter) (*Tree, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if selector == nil {
		selector = MinimalAreaIncrease
	}
	if splitter == nil {
		splitter = LinearSplit
	}
	return &Tree{
		root:     &rnode{leaf: true, bounds: geo.OfEmpty()},
		opts:     opts,
		selector: selector,
		splitter: splitter,
	}, nil
}

// Len returns the number of leaf entries stored.
func (t *Tree) Len() int { return t.count }

// Insert adds region with an opaque payload, descending via the selector
// and splitting any node that overflows MaxChildren.
func (t *Tree) Insert(region geo.Region, payload interface{}) error {
	if region.IsNull() {
		return ErrNullRegion
	}

	leaf := t.chooseLeaf(region)
	leaf.entries = append(leaf.entries, entry{bounds: region, payload: payload})
	t.count++
	t.splitAndPropagate(leaf)
	return nil
}

// chooseLeaf descends from the root via t.selector, iteratively (no
// recursion — the tree can be arbitrarily deep).
func (t *Tree) chooseLeaf(region geo.Region) *rnode {
	n := t.root
	for !n.leaf {
		pointsToLeaves := len(n.entries) > 0 && n.entries[0].child.leaf
		idx := t.selector(n.entries, region, pointsToLeaves)
		n = n.entries[idx].child
	}
	return n
}

// splitAndPropagate walks upward from n, splitting any node whose entry
// count exceeds MaxChildren and re-parenting the resulting sibling, then
// keeps MBRs in sync all the way to the root. Entirely iterative.
func (t *Tree) splitAndPropagate(n *rnode) {
	cur := n
	for cur != nil {
		cur.recalcBounds()
		if len(cur.entries) <= t.opts.MaxChildren {
			t.syncParentEntry(cur)
			cur = cur.parent
			continue
		}

		g1, g2 := t.splitter(cur.entries, t.opts)
		cur.entries = g1
		cur.recalcBounds()
		sibling := &rnode{leaf: cur.leaf, parent: cur.parent, entries: g2}
		sibling.recalcBounds()
		for _, e := range g2 {
			if e.child != nil {
				e.child.parent = sibling
			}
		}

		if cur.parent == nil {
			newRoot := &rnode{
				entries: []entry{
					{bounds: cur.bounds, child: cur},
					{bounds: sibling.bounds, child: sibling},
				},
			}
			cur.parent = newRoot
			sibling.parent = newRoot
			newRoot.recalcBounds()
			t.root = newRoot
			return
		}

		parent := cur.parent
		parent.entries = append(parent.entries, entry{bounds: sibling.bounds, child: sibling})
		t.syncParentEntry(cur)
		cur = parent
	}
}

// syncParentEntry updates n's own entry in its parent's entries slice to
// match n.bounds, a no-op if n is the root.
func (t *Tree) syncParentEntry(n *rnode) {
	if n.parent == nil {
		return
	}
	if idx := n.parent.indexOfChild(n); idx >= 0 {
		n.parent.entries[idx].bounds = n.bounds
	}
}

// Delete removes the leaf entry whose bounds equal region and whose
// payload equals payload, condensing the tree afterward. Returns true if a
// matching entry was found and removed.
func (t *Tree) Delete(region geo.Region, payload interface{}) bool {
	if region.IsNull() {
		return false
	}

	var target *rnode
	idx := -1
	stack := []*rnode{t.root}
	for len(stack) > 0 && target == nil {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.leaf {
			for i, e := range n.entries {
				if e.bounds.Equal(region) && e.payload == payload {
					target, idx = n, i
					break
				}
			}
			continue
		}
		for _, e := range n.entries {
			if e.bounds.Intersects(region) {
				stack = append(stack, e.child)
			}
		}
	}
	if target == nil {
		return false
	}

	target.entries = append(target.entries[:idx], target.entries[idx+1:]...)
	t.count--
	t.condenseTree(target)
	return true
}

// condenseTree walks from n up to the root, detaching any non-root node
// that underflows below MinChildren and collecting its leaf-level
// descendants for reinsertion, then promotes the root's sole child if the
// root ends up with exactly one.
func (t *Tree) condenseTree(n *rnode) {
	var orphans []entry
	cur := n
	for cur != t.root {
		parent := cur.parent
		if len(cur.entries) < t.opts.MinChildren {
			if idx := parent.indexOfChild(cur); idx >= 0 {
				parent.entries = append(parent.entries[:idx], parent.entries[idx+1:]...)
			}
			orphans = append(orphans, collectLeafEntries(cur)...)
		} else {
			cur.recalcBounds()
			t.syncParentEntry(cur)
		}
		cur = parent
	}
	t.root.recalcBounds()

	if len(t.root.entries) == 0 {
		t.root.leaf = true
	} else if len(t.root.entries) == 1 && !t.root.leaf {
		t.root.entries[0].child.parent = nil
		t.root = t.root.entries[0].child
	}

	for _, e := range orphans {
		t.count-- // Insert below re-increments; this avoids double counting.
		_ = t.Insert(e.bounds, e.payload)
	}
}

// collectLeafEntries flattens every leaf-level entry under n, iteratively.
// Reinserting orphaned subtrees as individual leaf entries (rather than
// preserving internal structure, as Guttman's original condense does) is a
// deliberate simplification: correctness is unaffected, only rebalance
// cost.
func collectLeafEntries(n *rnode) []entry {
	var out []entry
	stack := []*rnode{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.leaf {
			out = append(out, cur.entries...)
			continue
		}
		for _, e := range cur.entries {
			stack = append(stack, e.child)
		}
	}
	return out
}

// Hit is one (region, payload) pair returned by Query.
type Hit struct {
	Region  geo.Region
	Payload interface{}
}

// Query descends the tree iteratively, collecting every leaf entry whose
// bounds intersect probe.
func (t *Tree) Query(probe geo.Region) []Hit {
	if probe.IsNull() {
		return nil
	}
	var hits []Hit
	stack := []*rnode{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range n.entries {
			if !e.bounds.Intersects(probe) {
				continue
			}
			if n.leaf {
				hits = append(hits, Hit{Region: e.bounds, Payload: e.payload})
			} else {
				stack = append(stack, e.child)
			}
		}
	}
	return hits
}

// Bounds returns the MBR of everything stored in the tree (the null
// region if empty).
func (t *Tree) Bounds() geo.Region {
	return t.root.bounds
}
