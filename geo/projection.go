package geo

import "math"

// segmentProjection is the result of projecting a point onto one segment
// of a polyline: the foot of the perpendicular, how far along the whole
// polyline that foot lies, and the squared distance from the probe to the
// foot (used only to pick the closest segment).
type segmentProjection struct {
	foot       Point
	alongTrack float64
	distSq     float64
}

// projectOntoPolyline finds, over every segment of poly, the foot of the
// perpendicular dropped from p closest to p, and that foot's along-track
// distance from poly's start.
//
// Segments are handled through a local tangent-plane approximation
// (localXY/fromLocalXY below) so the same code serves both a planar
// calculator (where the tangent plane is exact) and an ellipsoidal one
// (where it is a first-order approximation, accurate for segment lengths
// much shorter than the radius of curvature — true of road-network edges).
func projectOntoPolyline(calc TopologyCalculator, poly Polyline, p Point) segmentProjection {
	best := segmentProjection{foot: poly.Points[0], alongTrack: 0, distSq: math.Inf(1)}
	var cumulative float64
	for i := 1; i < len(poly.Points); i++ {
		a, b := poly.Points[i-1], poly.Points[i]
		segLen := calc.Distance(a, b)

		ex, ey := localXY(calc, a, b) // b relative to a, in local meters
		px, py := localXY(calc, a, p) // p relative to a, in local meters

		var t float64
		denom := ex*ex + ey*ey
		if denom > 0 {
			t = (px*ex + py*ey) / denom
		}
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}

		footX, footY := t*ex, t*ey
		foot := fromLocalXY(calc, a, footX, footY)
		dx, dy := px-footX, py-footY
		distSq := dx*dx + dy*dy

		if distSq < best.distSq {
			best.distSq = distSq
			best.foot = foot
			best.alongTrack = cumulative + t*segLen
		}
		cumulative += segLen
	}
	return best
}

// localXY returns p's displacement from origin as (east, north) meters,
// via calc. For a planar calculator this is exact; for an ellipsoidal one
// it is a local tangent-plane approximation valid for short displacements.
func localXY(calc TopologyCalculator, origin, p Point) (east, north float64) {
	if p.Equal(origin) {
		return 0, 0
	}
	eastPoint := Point{X: p.X, Y: origin.Y, Calc: origin.Calc}
	northPoint := Point{X: origin.X, Y: p.Y, Calc: origin.Calc}
	east = calc.Distance(origin, eastPoint)
	if p.X < origin.X {
		east = -east
	}
	north = calc.Distance(origin, northPoint)
	if p.Y < origin.Y {
		north = -north
	}
	return east, north
}

// fromLocalXY converts a local (east, north) meters displacement from
// origin back into a Point, via calc.Destination.
func fromLocalXY(calc TopologyCalculator, origin Point, east, north float64) Point {
	dist := math.Hypot(east, north)
	if dist == 0 {
		return origin
	}
	return calc.Destination(origin, bearingOf(east, north), dist)
}
