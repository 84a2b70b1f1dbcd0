// Package probability implements the three log-probability calculators
// consumed by the Viterbi map-matcher: emission (how well an observation
// fits a candidate edge), initial (prior over the first time-step's
// candidates), and transition (how plausible a move from one candidate edge
// to another is, between two consecutive observations).
//
// Every calculator works in log-space so repeated multiplication of small
// probabilities never underflows; an unreachable factor contributes
// math.Inf(-1) and composition short-circuits on the first non-finite
// running sum, per the package's compositional rule
// logPr(product) = sum of logPr(factor).
package probability
