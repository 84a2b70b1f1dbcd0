package probability

import "errors"

// Sentinel errors for the probability package.
var (
	// ErrNonPositiveSigma indicates Options.Sigma was not strictly positive.
	ErrNonPositiveSigma = errors.New("probability: sigma must be positive")

	// ErrEmptyCandidates indicates LogInitial was called with zero candidates.
	ErrEmptyCandidates = errors.New("probability: candidate set is empty")

	// ErrInvalidPSame indicates Options.PSame fell outside (0.5, 0.8).
	ErrInvalidPSame = errors.New("probability: PSame must be in (0.5, 0.8)")

	// ErrNonPositiveBeta indicates Options.Beta was not strictly positive.
	ErrNonPositiveBeta = errors.New("probability: beta must be positive")
)

// Options bundles every tunable constant the emission and transition
// calculators need.
//
//   - Sigma: emission Gaussian standard deviation, in the same unit as the
//     configured TopologyCalculator's distances. Default 4.07, the GPS
//     position-noise estimate used by Newson & Krumm's original map-matching
//     paper.
//   - PSame: prior probability that consecutive observations stay on the
//     same candidate edge, in (0.5, 0.8). Default 0.6.
//   - Beta: ShortestPath transition's exponential-decay scale; gamma = 1/Beta.
//     Default 10.
//   - Phi: OffRoad transition bias when entering an off-road edge from an
//     on-road one. Default 0.2.
//   - Psi: OffRoad transition bias when continuing along off-road edges.
//     Default 0.48.
type Options struct {
	Sigma float64
	PSame float64
	Beta  float64
	Phi   float64
	Psi   float64
}

// DefaultOptions returns the baseline Options.
func DefaultOptions() Options {
	return Options{
		Sigma: 4.07,
		PSame: 0.6,
		Beta:  10,
		Phi:   0.2,
		Psi:   0.48,
	}
}

// Validate checks that every constant is within its documented domain.
func (o Options) Validate() error {
	if o.Sigma <= 0 {
		return ErrNonPositiveSigma
	}
	if o.PSame <= 0.5 || o.PSame >= 0.8 {
		return ErrInvalidPSame
	}
	if o.Beta <= 0 {
		return ErrNonPositiveBeta
	}
	return nil
}
