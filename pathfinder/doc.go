// Package pathfinder implements A* shortest-path search over a
// roadgraph.Graph with a pluggable edge-weight function and a pluggable
// heuristic. The frontier is a fibheap.Heap, giving O(1) amortized
// decrease-key instead of the lazy repush discipline a container/heap-based
// queue would need.
//
// FindPath never mutates the graph and is safe to call repeatedly, including
// concurrently from distinct goroutines, as long as the graph itself is not
// being structurally changed at the same time (roadgraph.Graph guards its
// own state; pathfinder only calls read methods).
package pathfinder
