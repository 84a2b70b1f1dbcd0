// Package fibheap implements a Fibonacci heap: a priority queue supporting
// amortized O(1) Add and DecreaseKey, and amortized O(log n) Poll.
//
// The structure follows the classic Cormen/Leiserson/Rivest/Stein
// presentation: a forest of min-heap-ordered trees linked in a circular root
// list, consolidated (by degree) on every Poll, with the mark bit recording
// whether a node has lost a child since it was last made a child itself.
// Degrees are bounded by log_φ(math.MaxInt32) ≈ 45, so consolidation uses a
// fixed-size degree table rather than a growable one.
//
// A Heap is single-owner for the duration of one pathfinder query; it is not
// safe for concurrent use.
package fibheap
