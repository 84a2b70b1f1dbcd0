package matcher_test

import (
	"fmt"

	"github.com/katalvlaran/mapmatch/geo"
	"github.com/katalvlaran/mapmatch/matcher"
	"github.com/katalvlaran/mapmatch/probability"
	"github.com/katalvlaran/mapmatch/roadgraph"
)

func ExampleMatch() {
	g := roadgraph.New()
	a := geo.Point{X: 0, Y: 0, Calc: geo.Euclidean{}}
	b := geo.Point{X: 10, Y: 0, Calc: geo.Euclidean{}}
	c := geo.Point{X: 20, Y: 0, Calc: geo.Euclidean{}}
	_ = g.AddNode("A", a)
	_ = g.AddNode("B", b)
	_ = g.AddNode("C", c)

	abPoly, _ := geo.NewPolyline([]geo.Point{a, b}, geo.Euclidean{})
	bcPoly, _ := geo.NewPolyline([]geo.Point{b, c}, geo.Euclidean{})
	_, _ = g.AddEdge("A", "B", abPoly, false)
	_, _ = g.AddEdge("B", "C", bcPoly, false)

	ab, _ := g.Edge("e1")
	bc, _ := g.Edge("e2")

	observations := []geo.Point{
		{X: 5, Y: 0, Calc: geo.Euclidean{}},
		{X: 15, Y: 0, Calc: geo.Euclidean{}},
	}
	candidates := func(obs geo.Point, t int) ([]*roadgraph.Edge, error) {
		if t == 0 {
			return []*roadgraph.Edge{ab}, nil
		}
		return []*roadgraph.Edge{bc}, nil
	}

	opts := probability.DefaultOptions()
	emission, _ := probability.NewEmissionCalculator(opts)
	transition, _ := probability.NewTransitionCalculator(opts)

	result, _ := matcher.Match(g, observations, candidates, emission, transition)
	for _, e := range result.Edges {
		fmt.Println(e.From, "->", e.To)
	}
	// Output:
	// A -> B
	// B -> C
}
