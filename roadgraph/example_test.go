package roadgraph_test

import (
	"fmt"

	"github.com/katalvlaran/mapmatch/geo"
	"github.com/katalvlaran/mapmatch/roadgraph"
)

func ExampleGraph_AddEdge() {
	g := roadgraph.New()
	_ = g.AddNode("A", geo.Point{X: 0, Y: 0, Calc: geo.Euclidean{}})
	_ = g.AddNode("B", geo.Point{X: 10, Y: 0, Calc: geo.Euclidean{}})

	polyline, _ := geo.NewPolyline([]geo.Point{
		{X: 0, Y: 0, Calc: geo.Euclidean{}},
		{X: 10, Y: 0, Calc: geo.Euclidean{}},
	}, geo.Euclidean{})

	_, _ = g.AddEdge("A", "B", polyline, false)

	neighbors, _ := g.Neighbors("A")
	fmt.Println(len(neighbors))
	// Output: 1
}
