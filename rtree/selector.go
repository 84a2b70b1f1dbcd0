package rtree

import "github.com/katalvlaran/mapmatch/geo"

// MinimalAreaIncrease selects the child whose MBR enlarges the least to
// accommodate region, breaking ties by smaller current area.
func MinimalAreaIncrease(entries []entry, region geo.Region, _ bool) int {
	best := 0
	bestEnlarge := entries[0].bounds.NonIntersectingArea(region)
	bestArea := entries[0].bounds.EuclideanArea()
	for i := 1; i < len(entries); i++ {
		enlarge := entries[i].bounds.NonIntersectingArea(region)
		area := entries[i].bounds.EuclideanArea()
		if enlarge < bestEnlarge || (enlarge == bestEnlarge && area < bestArea) {
			best, bestEnlarge, bestArea = i, enlarge, area
		}
	}
	return best
}

// RStarSelector implements the R*-tree ChooseSubtree rule: at the level
// immediately above the leaves, it picks the entry minimizing overlap
// enlargement with region (tie-broken by area enlargement, then by
// smaller current area); at every other level it falls back to
// MinimalAreaIncrease, since overlap among non-leaf-pointing children is a
// weaker signal of future query cost.
func RStarSelector(entries []entry, region geo.Region, pointsToLeaves bool) int {
	if !pointsToLeaves {
		return MinimalAreaIncrease(entries, region, pointsToLeaves)
	}

	best := 0
	bestOverlap := overlapEnlargement(entries, 0, region)
	bestEnlarge := entries[0].bounds.NonIntersectingArea(region)
	bestArea := entries[0].bounds.EuclideanArea()
	for i := 1; i < len(entries); i++ {
		overlap := overlapEnlargement(entries, i, region)
		enlarge := entries[i].bounds.NonIntersectingArea(region)
		area := entries[i].bounds.EuclideanArea()
		switch {
		case overlap < bestOverlap:
			best, bestOverlap, bestEnlarge, bestArea = i, overlap, enlarge, area
		case overlap == bestOverlap && enlarge < bestEnlarge:
			best, bestOverlap, bestEnlarge, bestArea = i, overlap, enlarge, area
		case overlap == bestOverlap && enlarge == bestEnlarge && area < bestArea:
			best, bestOverlap, bestEnlarge, bestArea = i, overlap, enlarge, area
		}
	}
	return best
}

// overlapEnlargement returns the increase in total overlap with sibling
// entries that would result from growing entries[idx].bounds to also cover
// region.
func overlapEnlargement(entries []entry, idx int, region geo.Region) float64 {
	enlarged := entries[idx].bounds
	enlarged.ExpandToInclude(region)

	var before, after float64
	for i, e := range entries {
		if i == idx {
			continue
		}
		before += overlapArea(entries[idx].bounds, e.bounds)
		after += overlapArea(enlarged, e.bounds)
	}
	return after - before
}

// overlapArea returns the area of the intersection of a and b (0 if they
// don't intersect).
func overlapArea(a, b geo.Region) float64 {
	if !a.Intersects(b) {
		return 0
	}
	minX, maxX := max(a.MinX, b.MinX), min(a.MaxX, b.MaxX)
	minY, maxY := max(a.MinY, b.MinY), min(a.MaxY, b.MaxY)
	if maxX < minX || maxY < minY {
		return 0
	}
	return (maxX - minX) * (maxY - minY)
}
