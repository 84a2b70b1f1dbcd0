package geo

import "math"

// Region is an axis-aligned bounding box (minX, minY, maxX, maxY). A Region
// is "null" when all four bounds are NaN; otherwise the invariant
// minX<=maxX && minY<=maxY holds. Code is an optional Morton/quadrant path
// from the containing index's root (see BitCode); Payload is an opaque
// SpatialNode attached by whichever index stores this Region; Boundary is
// set by the hybrid index (see package hybrid) when this Region owns a K-D
// leaf tree.
type Region struct {
	MinX, MinY, MaxX, MaxY float64
	Code                   *BitCode
	Payload                interface{}
	Boundary               bool
}

// OfEmpty returns the null region: all bounds NaN.
func OfEmpty() Region {
	nan := math.NaN()
	return Region{MinX: nan, MinY: nan, MaxX: nan, MaxY: nan}
}

// OfMinMax constructs a Region from explicit bounds. Returns
// ErrNonMonotoneBounds if minX>maxX or minY>maxY.
func OfMinMax(minX, minY, maxX, maxY float64) (Region, error) {
	if minX > maxX || minY > maxY {
		return Region{}, ErrNonMonotoneBounds
	}
	return Region{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}, nil
}

// OfPoints returns the smallest Region containing every point in pts.
// Returns ErrEmptyPointSet if pts is empty.
func OfPoints(pts []Point) (Region, error) {
	if len(pts) == 0 {
		return Region{}, ErrEmptyPointSet
	}
	r := Region{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		r.ExpandToIncludePoint(p)
	}
	return r, nil
}

// IsNull reports whether r is the null region (no bounds set).
func (r Region) IsNull() bool {
	return math.IsNaN(r.MinX) || math.IsNaN(r.MinY) || math.IsNaN(r.MaxX) || math.IsNaN(r.MaxY)
}

// Width returns maxX-minX, or 0 for a null region.
func (r Region) Width() float64 {
	if r.IsNull() {
		return 0
	}
	return r.MaxX - r.MinX
}

// Height returns maxY-minY, or 0 for a null region.
func (r Region) Height() float64 {
	if r.IsNull() {
		return 0
	}
	return r.MaxY - r.MinY
}

// MidX returns the midpoint X coordinate.
func (r Region) MidX() float64 { return (r.MinX + r.MaxX) / 2 }

// MidY returns the midpoint Y coordinate.
func (r Region) MidY() float64 { return (r.MinY + r.MaxY) / 2 }

// EuclideanArea returns (maxX-minX)*(maxY-minY). A null region has area 0.
func (r Region) EuclideanArea() float64 {
	if r.IsNull() {
		return 0
	}
	return r.Width() * r.Height()
}

// Intersects reports whether r and o overlap (sharing a boundary counts as
// intersecting). Two null regions never intersect, nor does a null region
// intersect anything.
func (r Region) Intersects(o Region) bool {
	if r.IsNull() || o.IsNull() {
		return false
	}
	// Standard AABB disjointness negation, inlined (grounding:
	// other_examples' packedrtree.go inlines the same negation for its
	// leaf-scan loop).
	return r.MinX <= o.MaxX && r.MaxX >= o.MinX && r.MinY <= o.MaxY && r.MaxY >= o.MinY
}

// Contains reports whether o lies entirely within r (boundary-inclusive).
func (r Region) Contains(o Region) bool {
	if r.IsNull() || o.IsNull() {
		return false
	}
	return r.MinX <= o.MinX && r.MaxX >= o.MaxX && r.MinY <= o.MinY && r.MaxY >= o.MaxY
}

// ContainsPoint reports whether p lies within r (boundary-inclusive).
func (r Region) ContainsPoint(p Point) bool {
	if r.IsNull() {
		return false
	}
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// ExpandToInclude grows r (in place, on the receiver pointer) so that it
// contains o. Growing is monotone in area: r.Contains(o) holds afterwards,
// and r's area never decreases. Expanding by a null region is a no-op.
func (r *Region) ExpandToInclude(o Region) {
	if o.IsNull() {
		return
	}
	if r.IsNull() {
		*r = o
		return
	}
	r.MinX = math.Min(r.MinX, o.MinX)
	r.MinY = math.Min(r.MinY, o.MinY)
	r.MaxX = math.Max(r.MaxX, o.MaxX)
	r.MaxY = math.Max(r.MaxY, o.MaxY)
}

// ExpandToIncludePoint grows r so that it contains p.
func (r *Region) ExpandToIncludePoint(p Point) {
	r.ExpandToInclude(Region{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y})
}

// ExpandBy grows r by dx on each side of X and dy on each side of Y. If the
// resulting width or height would be negative, r collapses to the null
// region (an inward expansion large enough to invert the box is treated as
// "no longer a region" rather than silently flipping min/max).
func (r *Region) ExpandBy(dx, dy float64) {
	if r.IsNull() {
		return
	}
	minX, maxX := r.MinX-dx, r.MaxX+dx
	minY, maxY := r.MinY-dy, r.MaxY+dy
	if minX > maxX || minY > maxY {
		*r = OfEmpty()
		return
	}
	r.MinX, r.MaxX, r.MinY, r.MaxY = minX, maxX, minY, maxY
}

// NonIntersectingArea returns area(r∪o) - area(r): the enlargement r would
// suffer by growing to also cover o. Used by R-Tree node selection as the
// "enlargement" cost of placing o under a node shaped like r.
func (r Region) NonIntersectingArea(o Region) float64 {
	union := r
	union.ExpandToInclude(o)
	return union.EuclideanArea() - r.EuclideanArea()
}

// Equal reports whether r and o have identical bounds. Two null regions are
// Equal to each other.
func (r Region) Equal(o Region) bool {
	if r.IsNull() && o.IsNull() {
		return true
	}
	if r.IsNull() != o.IsNull() {
		return false
	}
	return r.MinX == o.MinX && r.MinY == o.MinY && r.MaxX == o.MaxX && r.MaxY == o.MaxY
}

// CompareTo orders regions lexicographically by (minX, minY, maxX, maxY),
// with the null region ordered strictly before every non-null region.
// Returns -1, 0, or 1.
func (r Region) CompareTo(o Region) int {
	rn, on := r.IsNull(), o.IsNull()
	switch {
	case rn && on:
		return 0
	case rn:
		return -1
	case on:
		return 1
	}
	for _, pair := range [][2]float64{{r.MinX, o.MinX}, {r.MinY, o.MinY}, {r.MaxX, o.MaxX}, {r.MaxY, o.MaxY}} {
		if pair[0] < pair[1] {
			return -1
		}
		if pair[0] > pair[1] {
			return 1
		}
	}
	return 0
}

// Level returns r.Code's quadtree depth, or 0 if r has no code.
func (r Region) Level() int {
	if r.Code == nil {
		return 0
	}
	return r.Code.Level()
}
