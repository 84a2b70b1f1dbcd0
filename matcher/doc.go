// Package matcher implements the Viterbi map-matcher (C10): given a
// time-ordered sequence of GPS observations, a road graph, and a candidate
// generator, it recovers the most probable sequence of road edges.
//
// The dynamic program follows the classic Viterbi delta/psi lattice: delta
// holds the best log-score reaching each candidate edge at each time-step,
// psi records the predecessor edge that achieved it. Full-matrix
// delta/psi storage (no rolling-row compression) was chosen over a
// two-row scheme because backtracking needs every time-step's predecessor
// map, the same full-matrix-vs-rolling-row tradeoff dtw.Options.MemoryMode
// names explicitly for a structurally identical DP recurrence.
package matcher
