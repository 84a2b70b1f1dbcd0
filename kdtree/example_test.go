package kdtree_test

import (
	"fmt"

	"github.com/katalvlaran/mapmatch/geo"
	"github.com/katalvlaran/mapmatch/kdtree"
)

func ExampleTree_NearestNeighbor() {
	points := []geo.Point{
		{X: 6, Y: 4, Calc: geo.Euclidean{}},
		{X: 5, Y: 2, Calc: geo.Euclidean{}},
		{X: 8, Y: 6, Calc: geo.Euclidean{}},
		{X: 2, Y: 1, Calc: geo.Euclidean{}},
		{X: 4, Y: 7, Calc: geo.Euclidean{}},
		{X: 9, Y: 3, Calc: geo.Euclidean{}},
		{X: 2, Y: 8, Calc: geo.Euclidean{}},
	}
	tree, _ := kdtree.Build(points, geo.Euclidean{})

	nearest, _ := tree.NearestNeighbor(geo.Point{X: 9, Y: 8, Calc: geo.Euclidean{}})
	fmt.Printf("%.0f,%.0f\n", nearest.X, nearest.Y)
	// Output: 8,6
}
