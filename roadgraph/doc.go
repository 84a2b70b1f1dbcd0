// Package roadgraph implements a directed graph of road geometry: nodes at
// snapped coordinates, edges carrying a polyline and an off-road flag.
//
// Edges are immutable once added — there is no SetWeight; the pathfinder
// (package pathfinder) supplies a weight function at query time instead of
// the graph carrying a mutable per-edge cost. Vertex state (muNode) and
// edge/adjacency state (muEdgeAdj) are guarded by separate RWMutexes so
// reads on one side never block writes on the other.
package roadgraph
