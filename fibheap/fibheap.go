package fibheap

// Node is a handle into a Heap, returned by Add and consumed by DecreaseKey
// and Remove. Callers must not mutate its fields; the heap-internal layout
// (parent/child/left/right) is a circular doubly linked list per CLRS.
type Node struct {
	Key     float64
	Payload interface{}

	degree int
	mark   bool

	parent *Node
	child  *Node
	left   *Node
	right  *Node

	heap *Heap // owning heap, for ErrForeignNode checks
}

// Heap is a Fibonacci heap ordered by ascending Key.
type Heap struct {
	min *Node
	n   int
}

// New constructs an empty Heap.
func New() *Heap {
	return &Heap{}
}

// Len returns the number of elements in h.
func (h *Heap) Len() int {
	return h.n
}

// Add inserts payload under key and returns a handle for later DecreaseKey
// or Remove calls. O(1) amortized.
func (h *Heap) Add(key float64, payload interface{}) *Node {
	node := &Node{Key: key, Payload: payload, heap: h}
	node.left = node
	node.right = node

	h.min = spliceIntoRootList(h.min, node)
	h.n++
	return node
}

// Peek returns the minimum element without removing it.
func (h *Heap) Peek() (*Node, error) {
	if h.min == nil {
		return nil, ErrEmpty
	}
	return h.min, nil
}

// Poll removes and returns the minimum element. O(log n) amortized.
func (h *Heap) Poll() (*Node, error) {
	z := h.min
	if z == nil {
		return nil, ErrEmpty
	}

	// Promote every child of z to the root list.
	if z.child != nil {
		c := z.child
		for {
			next := c.right
			c.parent = nil
			h.min = spliceIntoRootList(h.min, c)
			if next == z.child {
				break
			}
			c = next
		}
	}

	// Remove z from the root list.
	removeFromCircularList(z)
	h.n--

	if z == z.right {
		// z was the only root.
		h.min = nil
	} else {
		h.min = z.right
		h.consolidate()
	}

	z.left, z.right, z.parent, z.child, z.heap = nil, nil, nil, nil, nil
	return z, nil
}

// DecreaseKey lowers node's key to newKey, cutting it from its parent (and
// cascading the cut upward) if heap order would otherwise be violated.
// Returns ErrKeyIncrease if newKey is larger than node's current key; an
// equal key is accepted.
func (h *Heap) DecreaseKey(node *Node, newKey float64) error {
	if node == nil {
		return ErrNilNode
	}
	if node.heap != h {
		return ErrForeignNode
	}
	if newKey > node.Key {
		return ErrKeyIncrease
	}
	node.Key = newKey

	p := node.parent
	if p != nil && node.Key < p.Key {
		h.cut(node, p)
		h.cascadingCut(p)
	}
	if node.Key < h.min.Key {
		h.min = node
	}
	return nil
}

// Remove deletes node from the heap, regardless of its key, by cutting it
// into the root list (as a decrease to negative infinity would), making it
// the minimum and polling.
func (h *Heap) Remove(node *Node) error {
	if node == nil {
		return ErrNilNode
	}
	if node.heap != h {
		return ErrForeignNode
	}
	if p := node.parent; p != nil {
		h.cut(node, p)
		h.cascadingCut(p)
	}
	h.min = node
	_, err := h.Poll()
	return err
}

// Union merges other into h, consuming other (it must not be used
// afterward). Splicing the root lists is O(1); re-tagging other's nodes
// with their new owner visits each of them once.
func (h *Heap) Union(other *Heap) {
	if other == nil || other.n == 0 {
		return
	}
	for _, root := range collectRootList(other.min) {
		reassignOwner(root, h)
	}
	if h.min == nil {
		h.min = other.min
		h.n = other.n
		return
	}

	h.min = concatRootLists(h.min, other.min)
	if other.min != nil && other.min.Key < h.min.Key {
		h.min = other.min
	}
	h.n += other.n
}

// reassignOwner walks node and its descendants, setting heap on each so
// DecreaseKey/Remove handle checks remain valid after Union.
func reassignOwner(node *Node, h *Heap) {
	node.heap = h
	if node.child == nil {
		return
	}
	c := node.child
	for {
		reassignOwner(c, h)
		c = c.right
		if c == node.child {
			break
		}
	}
}

// cut detaches child from parent and adds it to the root list, clearing its
// mark bit per the CLRS invariant (a node's mark is cleared whenever it is
// linked into a new parent or becomes a root).
func (h *Heap) cut(child, parent *Node) {
	removeFromChildList(parent, child)
	parent.degree--

	child.parent = nil
	child.mark = false
	h.min = spliceIntoRootList(h.min, child)
}

// cascadingCut propagates cuts upward: a node is marked on its first child
// loss; on its second, it is itself cut from its parent.
func (h *Heap) cascadingCut(node *Node) {
	p := node.parent
	if p == nil {
		return
	}
	if !node.mark {
		node.mark = true
		return
	}
	h.cut(node, p)
	h.cascadingCut(p)
}

// consolidate merges root-list trees of equal degree until all degrees are
// distinct, per the classic Fibonacci heap degree-table algorithm.
func (h *Heap) consolidate() {
	var table [maxDegree + 1]*Node

	roots := collectRootList(h.min)
	for _, w := range roots {
		x := w
		d := x.degree
		for table[d] != nil {
			y := table[d]
			if x.Key > y.Key {
				x, y = y, x
			}
			h.link(y, x)
			table[d] = nil
			d++
		}
		table[d] = x
	}

	h.min = nil
	for _, node := range table {
		if node == nil {
			continue
		}
		node.left = node
		node.right = node
		h.min = spliceIntoRootList(h.min, node)
	}
}

// link makes y a child of x; x.degree increases by one and y.mark clears.
func (h *Heap) link(y, x *Node) {
	removeFromCircularList(y)
	y.left = y
	y.right = y

	x.child = spliceIntoRootList(x.child, y)
	y.parent = x
	x.degree++
	y.mark = false
}

// spliceIntoRootList inserts node into the circular list headed by head
// (which may be nil), returning the (possibly updated) head.
func spliceIntoRootList(head, node *Node) *Node {
	if head == nil {
		node.left = node
		node.right = node
		return node
	}
	node.right = head
	node.left = head.left
	head.left.right = node
	head.left = node
	return head
}

// removeFromCircularList unlinks node from whatever circular list it is in.
func removeFromCircularList(node *Node) {
	node.left.right = node.right
	node.right.left = node.left
}

// removeFromChildList removes child from parent's child list, fixing up
// parent.child if child was the designated head.
func removeFromChildList(parent, child *Node) {
	if parent.child == child {
		if child.right == child {
			parent.child = nil
		} else {
			parent.child = child.right
		}
	}
	removeFromCircularList(child)
}

// collectRootList returns every node in the circular root list starting at
// head, as a plain slice (a stable snapshot before consolidate rewires it).
func collectRootList(head *Node) []*Node {
	if head == nil {
		return nil
	}
	var out []*Node
	n := head
	for {
		out = append(out, n)
		n = n.right
		if n == head {
			break
		}
	}
	return out
}

// concatRootLists splices two circular root lists together, returning the
// head of the combined list (a's head).
func concatRootLists(a, b *Node) *Node {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	aLast := a.left
	bLast := b.left

	aLast.right = b
	b.left = aLast
	bLast.right = a
	a.left = bLast
	return a
}
