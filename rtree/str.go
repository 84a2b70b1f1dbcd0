package rtree

import (
	"math"
	"sort"

	"github.com/katalvlaran/mapmatch/geo"
)

// BuildSTR bulk-loads a Tree from regions/payloads (same length, paired by
// index) using the sort-tile-recurse algorithm: leaves are packed
// cap = round(MaxChildren*FillFactor) at a time, sorted into
// ceil(sqrt(nodeCount)) vertical slices by x-midpoint and then by
// y-midpoint within each slice; the resulting parent layer is packed the
// same way, recursing until a single root remains. The returned Tree is a
// normal dynamic Tree — further Insert/Delete calls are valid.
func BuildSTR(regions []geo.Region, payloads []interface{}, opts Options, selector Selector, splitter Splitter) (*Tree, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(regions) == 0 {
		return nil, ErrEmptyInput
	}
	for _, r := range regions {
		if r.IsNull() {
			return nil, ErrNullRegion
		}
	}
	if selector == nil {
		selector = MinimalAreaIncrease
	}
	if splitter == nil {
		splitter = LinearSplit
	}

	leaves := make([]entry, len(regions))
	for i, r := range regions {
		leaves[i] = entry{bounds: r, payload: payloads[i]}
	}

	cap := int(math.Round(float64(opts.MaxChildren) * opts.FillFactor))
	if cap < 1 {
		cap = 1
	}

	level := packLevel(leaves, cap, true)
	for len(level) > 1 {
		level = packLevel(level, cap, false)
	}

	root := level[0].child
	root.parent = nil
	return &Tree{root: root, opts: opts, selector: selector, splitter: splitter, count: len(regions)}, nil
}

// packLevel groups entries (leaf or internal, as marked by leafChildren)
// into parent rnodes of at most cap entries each, using the STR tiling
// order: sort by x-midpoint, slice into ceil(sqrt(nodeCount)) vertical
// strips, sort each strip by y-midpoint, then pack cap at a time.
func packLevel(entries []entry, cap int, leafChildren bool) []entry {
	nodeCount := (len(entries) + cap - 1) / cap
	sliceCount := int(math.Ceil(math.Sqrt(float64(nodeCount))))
	if sliceCount < 1 {
		sliceCount = 1
	}

	sorted := append([]entry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].bounds.MidX() < sorted[j].bounds.MidX()
	})

	sliceSize := (len(sorted) + sliceCount - 1) / sliceCount
	if sliceSize < 1 {
		sliceSize = 1
	}

	var parents []entry
	for start := 0; start < len(sorted); start += sliceSize {
		end := start + sliceSize
		if end > len(sorted) {
			end = len(sorted)
		}
		strip := sorted[start:end]
		sort.Slice(strip, func(i, j int) bool {
			return strip[i].bounds.MidY() < strip[j].bounds.MidY()
		})
		for i := 0; i < len(strip); i += cap {
			j := i + cap
			if j > len(strip) {
				j = len(strip)
			}
			group := append([]entry(nil), strip[i:j]...)
			parent := &rnode{leaf: leafChildren, entries: group, bounds: boundsOf(group)}
			if !leafChildren {
				for k := range parent.entries {
					parent.entries[k].child.parent = parent
				}
			}
			parents = append(parents, entry{bounds: parent.bounds, child: parent})
		}
	}
	return parents
}
