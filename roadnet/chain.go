package roadnet

import (
	"fmt"

	"github.com/katalvlaran/mapmatch/geo"
	"github.com/katalvlaran/mapmatch/roadgraph"
)

// Chain builds a straight-line sequence of n nodes spacing apart along the X
// axis, two-way connected consecutively — the "A-B-C-D" fixture shape used
// throughout the matcher's test suite. Node IDs are single uppercase
// letters for n <= 26 ("A", "B", ...); beyond that they fall back to
// "N<index>".
//
// Returns ErrTooFewVertices if n < 2, ErrNonPositiveSpacing if spacing <= 0.
func Chain(n int, spacing float64, opts ...Option) (*roadgraph.Graph, error) {
	if n < 2 {
		return nil, ErrTooFewVertices
	}
	if spacing <= 0 {
		return nil, ErrNonPositiveSpacing
	}
	o := resolve(opts)

	g := roadgraph.New()
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		id := chainID(i)
		ids[i] = id
		p := geo.NewPoint(float64(i)*spacing, 0, o.Calc)
		if err := g.AddNode(id, p); err != nil {
			return nil, fmt.Errorf("roadnet: Chain: AddNode(%s): %w", id, err)
		}
	}

	for i := 0; i+1 < n; i++ {
		if err := addStreet(g, ids[i], ids[i+1], o.Calc); err != nil {
			return nil, fmt.Errorf("roadnet: Chain: %w", err)
		}
	}

	return g, nil
}

// chainID returns the fixed ID for chain position i: "A".."Z" for i<26,
// "N<i>" beyond that.
func chainID(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return fmt.Sprintf("N%d", i)
}
