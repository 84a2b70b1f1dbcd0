package probability

import (
	"math"

	"github.com/katalvlaran/mapmatch/geo"
)

// twoOverPi is the constant subtracted in the direction-agreement weight
// tau = exp(|theta_road - theta_gps| - 2/pi).
const twoOverPi = 2 / math.Pi

// EmissionCalculator scores how well an observation fits a candidate edge's
// polyline: a zero-mean Gaussian of the perpendicular distance, scaled by a
// direction-agreement weight tau when a previous observation is known.
type EmissionCalculator struct {
	opts Options
}

// NewEmissionCalculator validates opts and returns an EmissionCalculator.
func NewEmissionCalculator(opts Options) (*EmissionCalculator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &EmissionCalculator{opts: opts}, nil
}

// LogProb returns the log-probability of observing obs on edge's polyline.
// prevObs, if non-nil, is the immediately preceding observation, used to
// compute the direction-agreement weight tau; when nil, tau = 1.
func (c *EmissionCalculator) LogProb(obs geo.Point, edge geo.Polyline, prevObs *geo.Point) float64 {
	d := edge.Distance(obs)

	tau := 1.0
	if prevObs != nil {
		thetaGPS := prevObs.InitialBearing(obs)
		thetaRoad := edge.InitialBearing()
		deltaRad := angularDiffRadians(thetaGPS, thetaRoad)
		tau = math.Exp(deltaRad - twoOverPi)
	}

	sigma := c.opts.Sigma
	exponent := 0.5 * tau * (d / sigma) * (d / sigma)
	normalizer := math.Log(math.Sqrt(2*math.Pi) * sigma)

	return -exponent - normalizer
}

// angularDiffRadians returns the unsigned angular difference between two
// compass bearings given in degrees, as radians in [0, pi].
func angularDiffRadians(aDeg, bDeg float64) float64 {
	diff := math.Abs(aDeg - bDeg)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff * math.Pi / 180
}
