package rtree_test

import (
	"fmt"

	"github.com/katalvlaran/mapmatch/geo"
	"github.com/katalvlaran/mapmatch/rtree"
)

func ExamplePacked_Query() {
	regions := make([]geo.Region, 10)
	payloads := make([]interface{}, 10)
	for i := 0; i < 10; i++ {
		x := float64(i)
		regions[i], _ = geo.OfMinMax(x, x, x+1, x+1)
		payloads[i] = i
	}
	packed, _ := rtree.Build(regions, payloads, 4)

	probe, _ := geo.OfMinMax(5, 5, 6, 6)
	fmt.Println(len(packed.Query(probe)))
	// Output: 3
}
