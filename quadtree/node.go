package quadtree

import "github.com/katalvlaran/mapmatch/geo"

// quadrant indices — the 2-bit Morton code each level contributes to a
// stored region's geo.BitCode.
const (
	quadNW = 0 // 00
	quadNE = 1 // 01
	quadSW = 2 // 10
	quadSE = 3 // 11
	quadSelf = -1
)

// node is an internal or leaf node of the tree. A node has either zero or
// four children (never a partial split); regions land at the highest node
// whose children cannot each fully contain them. code is this node's
// quadrant path from the root, stamped onto every region stored here.
type node struct {
	bounds   geo.Region
	children [4]*node // nil when leaf
	regions  []geo.Region
	depth    int
	code     *geo.BitCode
}

func newNode(bounds geo.Region, depth int, code *geo.BitCode) *node {
	return &node{bounds: bounds, depth: depth, code: code}
}

func (n *node) isLeaf() bool {
	return n.children[0] == nil
}

// childBounds returns the bounds of quadrant idx (one of quadNW..quadSE)
// of n, splitting n's bounds at its midlines.
func childBounds(b geo.Region, idx int) geo.Region {
	midX, midY := b.MidX(), b.MidY()
	switch idx {
	case quadNW:
		r, _ := geo.OfMinMax(b.MinX, midY, midX, b.MaxY)
		return r
	case quadNE:
		r, _ := geo.OfMinMax(midX, midY, b.MaxX, b.MaxY)
		return r
	case quadSW:
		r, _ := geo.OfMinMax(b.MinX, b.MinY, midX, midY)
		return r
	case quadSE:
		r, _ := geo.OfMinMax(midX, b.MinY, b.MaxX, midY)
		return r
	default:
		panic("quadtree: invalid quadrant index")
	}
}

// getChildIndex returns the unique quadrant of env that fully contains r,
// or quadSelf if r straddles a midline. Quadrants are half-open:
// [min,mid) on the low side, [mid,max] on the high side, per the spec's
// adopted convention (§9 open question).
func getChildIndex(env, r geo.Region) int {
	midX, midY := env.MidX(), env.MidY()

	fitsLowX := r.MaxX < midX
	fitsHighX := r.MinX >= midX
	fitsLowY := r.MaxY < midY
	fitsHighY := r.MinY >= midY

	switch {
	case fitsLowX && fitsHighY:
		return quadNW
	case fitsHighX && fitsHighY:
		return quadNE
	case fitsLowX && fitsLowY:
		return quadSW
	case fitsHighX && fitsLowY:
		return quadSE
	default:
		return quadSelf
	}
}

// split turns a leaf n into an internal node with four fresh leaf children,
// then redistributes n's currently-stored regions: a region that fits
// exactly one child quadrant moves there (pushed down, possibly triggering
// a further split of that child); a region straddling a midline stays at n.
func split(n *node) {
	for i := 0; i < 4; i++ {
		childCode, _ := n.code.Append(uint64(i), 2) // width=2 is always valid
		n.children[i] = newNode(childBounds(n.bounds, i), n.depth+1, childCode)
	}
	kept := n.regions[:0]
	moved := n.regions
	n.regions = nil
	for _, r := range moved {
		idx := getChildIndex(n.bounds, r)
		if idx == quadSelf {
			kept = append(kept, r)
			continue
		}
		r.Code = n.children[idx].code
		n.children[idx].regions = append(n.children[idx].regions, r)
	}
	n.regions = kept
}
