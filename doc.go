// Package mapmatch is a map-matching toolkit: it snaps a noisy sequence of
// geodetic observations (a GPS trace) onto the most plausible path through a
// directed road graph, together with the spatial-indexing substrate that
// supplies candidate edges.
//
// The module has two tightly coupled halves:
//
//	geo/, quadtree/, rtree/, kdtree/, hybrid/  — the spatial-index family
//	roadgraph/, pathfinder/, fibheap/,
//	    probability/, matcher/                 — the map-matching engine
//
// Data flow, leaves first:
//
//	observation → geo (cross-track projection)
//	            → quadtree/rtree (candidate edges near the observation)
//	            → pathfinder (shortest path between candidate edges)
//	            → probability (emission + transition log-scores)
//	            → matcher (Viterbi recurrence over time-steps)
//	            → matched edge sequence
//
// Everything here is a library: there is no CLI, no wire format, no
// persistence. Callers build an in-memory road graph, build one of the
// spatial indexes over its edges, and call matcher.Match with a sequence of
// observations.
//
//	go get github.com/katalvlaran/mapmatch
package mapmatch
