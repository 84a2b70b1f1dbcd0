package rtree

import "github.com/katalvlaran/mapmatch/geo"

// LinearSplit implements Guttman's linear-cost split algorithm: pick the
// pair of entries that are farthest apart (normalized by the axis span) as
// seeds for the two groups, then assign each remaining entry to whichever
// group's MBR enlarges less (tie-break: smaller resulting area, then fewer
// current members). Whenever one group is so far ahead that the other
// group could not reach Options.MinChildren from the entries left, every
// remaining entry is forced into the needy group.
func LinearSplit(entries []entry, opts Options) (group1, group2 []entry) {
	seedA, seedB := linearSeeds(entries)

	g1 := []entry{entries[seedA]}
	g2 := []entry{entries[seedB]}
	mbr1 := entries[seedA].bounds
	mbr2 := entries[seedB].bounds

	for i, e := range entries {
		if i == seedA || i == seedB {
			continue
		}
		if opts.MinChildren-len(g1) >= len(entries)-len(g1)-len(g2) {
			g1 = append(g1, e)
			mbr1.ExpandToInclude(e.bounds)
			continue
		}
		if opts.MinChildren-len(g2) >= len(entries)-len(g1)-len(g2) {
			g2 = append(g2, e)
			mbr2.ExpandToInclude(e.bounds)
			continue
		}

		enlarge1 := mbr1.NonIntersectingArea(e.bounds)
		enlarge2 := mbr2.NonIntersectingArea(e.bounds)
		switch {
		case enlarge1 < enlarge2:
			g1 = append(g1, e)
			mbr1.ExpandToInclude(e.bounds)
		case enlarge2 < enlarge1:
			g2 = append(g2, e)
			mbr2.ExpandToInclude(e.bounds)
		default:
			area1, area2 := mbr1.EuclideanArea(), mbr2.EuclideanArea()
			switch {
			case area1 < area2:
				g1 = append(g1, e)
				mbr1.ExpandToInclude(e.bounds)
			case area2 < area1:
				g2 = append(g2, e)
				mbr2.ExpandToInclude(e.bounds)
			case len(g1) <= len(g2):
				g1 = append(g1, e)
				mbr1.ExpandToInclude(e.bounds)
			default:
				g2 = append(g2, e)
				mbr2.ExpandToInclude(e.bounds)
			}
		}
	}
	return g1, g2
}

// linearSeeds returns the indices of the two entries that are farthest
// apart, normalized by the axis's total span, across both axes — Guttman's
// LinearPickSeeds.
func linearSeeds(entries []entry) (int, int) {
	bestSep := -1.0
	seedA, seedB := 0, 1
	for axis := 0; axis < 2; axis++ {
		lowIdx, highIdx := 0, 0
		lowMax, highMin := axisLow(entries[0].bounds, axis), axisHigh(entries[0].bounds, axis)
		spanMin, spanMax := axisLow(entries[0].bounds, axis), axisHigh(entries[0].bounds, axis)
		for i, e := range entries {
			lo, hi := axisLow(e.bounds, axis), axisHigh(e.bounds, axis)
			if lo > lowMax {
				lowMax, lowIdx = lo, i
			}
			if hi < highMin {
				highMin, highIdx = hi, i
			}
			if lo < spanMin {
				spanMin = lo
			}
			if hi > spanMax {
				spanMax = hi
			}
		}
		span := spanMax - spanMin
		if span <= 0 {
			continue
		}
		sep := (lowMax - highMin) / span
		if sep > bestSep && lowIdx != highIdx {
			bestSep, seedA, seedB = sep, lowIdx, highIdx
		}
	}
	if seedA == seedB {
		seedB = (seedA + 1) % len(entries)
	}
	return seedA, seedB
}

func axisLow(r geo.Region, axis int) float64 {
	if axis == 0 {
		return r.MinX
	}
	return r.MinY
}

func axisHigh(r geo.Region, axis int) float64 {
	if axis == 0 {
		return r.MaxX
	}
	return r.MaxY
}

// RStarSplit implements the R*-tree split: for each of the four axis/side
// orderings (minX, maxX, minY, maxY), sort entries accordingly and, for
// every admissible split index k in [MinChildren, len-MinChildren], sum the
// margins (perimeters) of the two resulting groups. The ordering with the
// smallest total margin is chosen; along that ordering, the split index
// minimizing overlap area (tie-break: total area) is used.
func RStarSplit(entries []entry, opts Options) (group1, group2 []entry) {
	bestOrdering := 0
	bestMargin := -1.0
	orderings := make([][]entry, 4)
	for axis := 0; axis < 2; axis++ {
		for _, high := range [2]bool{false, true} {
			idx := axis*2 + boolIndex(high)
			ordered := append([]entry(nil), entries...)
			if high {
				sortByHigh(ordered, axis)
			} else {
				sortByLow(ordered, axis)
			}
			orderings[idx] = ordered

			margin := 0.0
			for k := opts.MinChildren; k <= len(entries)-opts.MinChildren; k++ {
				margin += marginOf(ordered[:k]) + marginOf(ordered[k:])
			}
			if bestMargin < 0 || margin < bestMargin {
				bestMargin, bestOrdering = margin, idx
			}
		}
	}

	ordered := orderings[bestOrdering]
	bestK := opts.MinChildren
	bestOverlap := -1.0
	bestArea := -1.0
	for k := opts.MinChildren; k <= len(entries)-opts.MinChildren; k++ {
		mbr1 := boundsOf(ordered[:k])
		mbr2 := boundsOf(ordered[k:])
		overlap := overlapArea(mbr1, mbr2)
		area := mbr1.EuclideanArea() + mbr2.EuclideanArea()
		if bestOverlap < 0 || overlap < bestOverlap || (overlap == bestOverlap && area < bestArea) {
			bestK, bestOverlap, bestArea = k, overlap, area
		}
	}
	return ordered[:bestK], ordered[bestK:]
}

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}

func sortByLow(entries []entry, axis int) {
	// Simple insertion sort: node fanout is small (single-digit to low
	// tens), so this stays cheap and avoids pulling in sort.Slice's
	// closure overhead for every split.
	for i := 1; i < len(entries); i++ {
		j := i
		for j > 0 && axisLow(entries[j-1].bounds, axis) > axisLow(entries[j].bounds, axis) {
			entries[j-1], entries[j] = entries[j], entries[j-1]
			j--
		}
	}
}

func sortByHigh(entries []entry, axis int) {
	for i := 1; i < len(entries); i++ {
		j := i
		for j > 0 && axisHigh(entries[j-1].bounds, axis) > axisHigh(entries[j].bounds, axis) {
			entries[j-1], entries[j] = entries[j], entries[j-1]
			j--
		}
	}
}

func marginOf(entries []entry) float64 {
	b := boundsOf(entries)
	return 2 * (b.Width() + b.Height())
}
