package hybrid_test

import (
	"fmt"

	"github.com/katalvlaran/mapmatch/geo"
	"github.com/katalvlaran/mapmatch/hybrid"
	"github.com/katalvlaran/mapmatch/quadtree"
)

func ExampleIndex_Insert() {
	bounds, _ := geo.OfMinMax(0, 0, 100, 100)
	idx, _ := hybrid.NewIndex(bounds, quadtree.DefaultOptions(), geo.Euclidean{})

	cell, _ := geo.OfMinMax(0, 0, 10, 10)
	_ = idx.Insert(cell, geo.Point{X: 1, Y: 1, Calc: geo.Euclidean{}})
	_ = idx.Insert(cell, geo.Point{X: 9, Y: 9, Calc: geo.Euclidean{}})

	fmt.Println(idx.Contains(geo.Point{X: 9, Y: 9, Calc: geo.Euclidean{}}))
	// Output: true
}
