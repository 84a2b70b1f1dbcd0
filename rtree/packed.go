package rtree

import (
	"sort"

	"github.com/katalvlaran/mapmatch/geo"
)

// packedNode is one entry of a Packed tree's flat node array: a leaf node's
// bounds is the payload's own region and offset indexes into payloads;
// an internal node's bounds is the union of its child span and offset is
// the index of the first child node in nodes.
type packedNode struct {
	bounds geo.Region
	offset int
}

// levelRange is the half-open [start, end) span of node indices belonging
// to one level of a Packed tree; level 0 holds the leaves.
type levelRange struct {
	start, end int
}

// Packed is a Hilbert-packed static R-Tree: a flat array of nodes built
// once from a Hilbert-sorted item list, with child fan-out nodeSize.
// Immutable after Build — Insert always returns ErrPackedImmutable.
type Packed struct {
	nodes    []packedNode
	levels   []levelRange // levels[0] = leaves, levels[len-1] = root
	payloads []interface{}
	nodeSize int
}

// Build constructs a Packed tree over regions/payloads (paired by index).
// Items are first sorted by the Hilbert distance of their region's
// midpoint, quantized to the overall extent, then packed nodeSize items
// per leaf and nodeSize leaves/nodes per parent level, bottom-up.
func Build(regions []geo.Region, payloads []interface{}, nodeSize int) (*Packed, error) {
	if len(regions) == 0 {
		return nil, ErrEmptyInput
	}
	if nodeSize < 2 {
		return nil, ErrInvalidOptions
	}
	for _, r := range regions {
		if r.IsNull() {
			return nil, ErrNullRegion
		}
	}

	order := hilbertOrder(regions)
	sortedRegions := make([]geo.Region, len(regions))
	sortedPayloads := make([]interface{}, len(regions))
	for i, idx := range order {
		sortedRegions[i] = regions[idx]
		sortedPayloads[i] = payloads[idx]
	}

	levels := levelify(len(regions), nodeSize)
	total := levels[len(levels)-1].end
	nodes := make([]packedNode, total)

	leafStart := levels[0].start
	for i, r := range sortedRegions {
		nodes[leafStart+i] = packedNode{bounds: r, offset: i}
	}

	for li := 0; li < len(levels)-1; li++ {
		level := levels[li]
		parentIdx := levels[li+1].start
		for pos := level.start; pos < level.end; pos += nodeSize {
			end := pos + nodeSize
			if end > level.end {
				end = level.end
			}
			union := geo.OfEmpty()
			for k := pos; k < end; k++ {
				union.ExpandToInclude(nodes[k].bounds)
			}
			nodes[parentIdx] = packedNode{bounds: union, offset: pos}
			parentIdx++
		}
	}

	return &Packed{nodes: nodes, levels: levels, payloads: sortedPayloads, nodeSize: nodeSize}, nil
}

// levelify computes the levelRange boundaries for a tree with numItems
// leaves and nodeSize children per parent, leaf level first.
func levelify(numItems, nodeSize int) []levelRange {
	var countsPerLevel []int
	n := numItems
	countsPerLevel = append(countsPerLevel, n)
	for n > 1 {
		n = (n + nodeSize - 1) / nodeSize
		countsPerLevel = append(countsPerLevel, n)
	}

	total := 0
	for _, c := range countsPerLevel {
		total += c
	}
	levels := make([]levelRange, len(countsPerLevel))
	offset := 0
	for i, c := range countsPerLevel {
		levels[i] = levelRange{start: offset, end: offset + c}
		offset += c
	}
	return levels
}

// hilbertOrder returns the permutation of regions' indices sorted by the
// Hilbert distance of each region's midpoint, quantized over the overall
// bounding extent.
func hilbertOrder(regions []geo.Region) []int {
	extent := geo.OfEmpty()
	for _, r := range regions {
		extent.ExpandToInclude(r)
	}

	type keyed struct {
		idx int
		h   uint64
	}
	keys := make([]keyed, len(regions))
	for i, r := range regions {
		qx := quantize(r.MidX(), extent.MinX, extent.MaxX)
		qy := quantize(r.MidY(), extent.MinY, extent.MaxY)
		keys[i] = keyed{idx: i, h: hilbertDistance(qx, qy)}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].h < keys[j].h })

	order := make([]int, len(keys))
	for i, k := range keys {
		order[i] = k.idx
	}
	return order
}

// Insert always fails: a Packed tree is a fault to mutate once built.
func (p *Packed) Insert(geo.Region, interface{}) error {
	return ErrPackedImmutable
}

// Query returns every payload whose region intersects probe, descending
// the flat node array iteratively via an explicit stack of node indices.
func (p *Packed) Query(probe geo.Region) []Hit {
	if probe.IsNull() {
		return nil
	}
	var hits []Hit
	rootLevel := len(p.levels) - 1
	type ticket struct {
		nodeIndex int
		level     int
	}
	stack := []ticket{{nodeIndex: p.levels[rootLevel].start, level: rootLevel}}

	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &p.nodes[t.nodeIndex]
		if !n.bounds.Intersects(probe) {
			continue
		}
		if t.level == 0 {
			hits = append(hits, Hit{Region: n.bounds, Payload: p.payloads[n.offset]})
			continue
		}
		childLevel := p.levels[t.level-1]
		end := n.offset + p.nodeSize
		if end > childLevel.end {
			end = childLevel.end
		}
		for idx := n.offset; idx < end; idx++ {
			stack = append(stack, ticket{nodeIndex: idx, level: t.level - 1})
		}
	}
	return hits
}

// Len returns the number of items stored.
func (p *Packed) Len() int { return len(p.payloads) }

// Bounds returns the MBR of the whole tree.
func (p *Packed) Bounds() geo.Region {
	return p.nodes[p.levels[len(p.levels)-1].start].bounds
}
