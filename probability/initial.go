package probability

import "math"

// LogInitial returns the uniform log-prior log(1/n) over n candidate edges
// at the first time-step. Returns ErrEmptyCandidates if n <= 0.
func LogInitial(n int) (float64, error) {
	if n <= 0 {
		return 0, ErrEmptyCandidates
	}
	return -math.Log(float64(n)), nil
}
