package geo

// Polyline is an immutable ordered sequence of at least 2 points, projected
// through a TopologyCalculator for its along-track/on-track/distance
// semantics. A Polyline with fewer than 2 points is "empty" by contract —
// NewPolyline refuses to construct one, but a zero-value Polyline (nil
// Points) reports IsEmpty()==true so a caller can hold one as a sentinel.
type Polyline struct {
	Points []Point
	Calc   TopologyCalculator
}

// NewPolyline constructs a Polyline over pts using calc for geometry.
// Returns ErrTooFewPoints if len(pts)<2, ErrNilCalculator if calc is nil.
func NewPolyline(pts []Point, calc TopologyCalculator) (Polyline, error) {
	if len(pts) < 2 {
		return Polyline{}, ErrTooFewPoints
	}
	if calc == nil {
		return Polyline{}, ErrNilCalculator
	}
	cp := make([]Point, len(pts))
	copy(cp, pts)
	return Polyline{Points: cp, Calc: calc}, nil
}

// IsEmpty reports whether the polyline has fewer than 2 points.
func (pl Polyline) IsEmpty() bool {
	return len(pl.Points) < 2
}

// Bounds returns the axis-aligned bounding box of every point in pl.
func (pl Polyline) Bounds() Region {
	if pl.IsEmpty() {
		return OfEmpty()
	}
	r, _ := OfPoints(pl.Points)
	return r
}

// Length returns the total arc length of pl (sum of consecutive segment
// distances, via Calc).
func (pl Polyline) Length() float64 {
	if pl.IsEmpty() {
		return 0
	}
	var total float64
	for i := 1; i < len(pl.Points); i++ {
		total += pl.Calc.Distance(pl.Points[i-1], pl.Points[i])
	}
	return total
}

// AlongTrackDistance returns the cumulative distance from pl's start to the
// foot of the perpendicular dropped from p, via Calc.
func (pl Polyline) AlongTrackDistance(p Point) float64 {
	return pl.Calc.AlongTrackDistance(pl, p)
}

// OnTrackClosestPoint returns the foot of the perpendicular dropped from p
// onto pl, via Calc.
func (pl Polyline) OnTrackClosestPoint(p Point) Point {
	return pl.Calc.OnTrackClosestPoint(pl, p)
}

// Distance returns the perpendicular distance from p to pl: the distance
// between p and its on-track closest point.
func (pl Polyline) Distance(p Point) float64 {
	foot := pl.OnTrackClosestPoint(p)
	return pl.Calc.Distance(foot, p)
}

// InitialBearing returns the bearing, in degrees, from pl's first point to
// its second point. Used by the direction-agreement transition factor as
// the "on-path bearing" for a single-segment candidate edge.
func (pl Polyline) InitialBearing() float64 {
	if pl.IsEmpty() {
		return 0
	}
	return pl.Calc.InitialBearing(pl.Points[0], pl.Points[1])
}

// Reversed returns a new Polyline with the point order reversed, sharing
// the same Calc. Used by transition scoring when a projection traverses a
// candidate path backward (§4.8 Direction factor).
func (pl Polyline) Reversed() Polyline {
	n := len(pl.Points)
	out := make([]Point, n)
	for i, p := range pl.Points {
		out[n-1-i] = p
	}
	return Polyline{Points: out, Calc: pl.Calc}
}
