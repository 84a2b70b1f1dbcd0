// Package geo provides the geometry primitives shared by every spatial
// index and by the map-matching engine: Point, Polyline, Region (an
// axis-aligned bounding box) and BitCode (a packed quadrant-path code).
//
// Geodetic math — distance, bearing, along-track/on-track projection,
// destination — is deliberately not hard-coded into Point or Polyline.
// Both types are projected through a TopologyCalculator, so the same
// Polyline works unchanged over planar (Euclidean) or ellipsoidal
// (Vincenty) coordinates; Euclidean and Vincenty are the two concrete
// calculators this package ships.
//
//	calc := geo.Euclidean{}
//	a := geo.NewPoint(0, 0, calc)
//	b := geo.NewPoint(3, 4, calc)
//	a.Distance(b) // 5
package geo
