// Package hybrid composes a quadtree.Tree with one kdtree.Tree per
// "boundary" region: a region flagged as owning a leaf point index. Point
// operations are routed to whichever boundary region currently covers the
// probe, falling back to creating a new boundary region on first insert.
//
// The region-to-tree association lives on geo.Region itself (Payload holds
// the *kdtree.Tree, Boundary marks ownership) rather than in a side map:
// every copy the quadtree hands back out of Query carries the same Payload
// pointer, so region identity survives the by-value Region plumbing without
// a separate lookup structure.
package hybrid
