package geo

import "math"

// Euclidean is a TopologyCalculator over a flat plane: X and Y are treated
// as ordinary Cartesian coordinates in the same unit as "meters" elsewhere
// in this package. It is stateless and safe to share.
type Euclidean struct{}

// Distance returns the straight-line distance between a and b.
func (Euclidean) Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// InitialBearing returns the bearing from a to b in degrees, 0=north
// (+Y), clockwise positive, in [0,360).
func (Euclidean) InitialBearing(a, b Point) float64 {
	return bearingOf(b.X-a.X, b.Y-a.Y)
}

// Destination returns the point distance away from origin along bearingDegrees.
func (Euclidean) Destination(origin Point, bearingDegrees, distance float64) Point {
	rad := bearingDegrees * math.Pi / 180
	return Point{
		X:    origin.X + distance*math.Sin(rad),
		Y:    origin.Y + distance*math.Cos(rad),
		Calc: origin.Calc,
	}
}

// AlongTrackDistance returns the cumulative arc length from poly's start to
// the foot of the perpendicular dropped from p.
func (e Euclidean) AlongTrackDistance(poly Polyline, p Point) float64 {
	proj := projectOntoPolyline(e, poly, p)
	return proj.alongTrack
}

// OnTrackClosestPoint returns the foot of the perpendicular dropped from p
// onto poly.
func (e Euclidean) OnTrackClosestPoint(poly Polyline, p Point) Point {
	proj := projectOntoPolyline(e, poly, p)
	return proj.foot
}

// bearingOf converts a local (east, north) displacement into a compass
// bearing in degrees, 0=north, clockwise positive.
func bearingOf(east, north float64) float64 {
	deg := math.Atan2(east, north) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}
