package roadnet

import (
	"fmt"

	"github.com/katalvlaran/mapmatch/geo"
	"github.com/katalvlaran/mapmatch/roadgraph"
)

const gridIDFmt = "%d,%d" // "r,c" — fixed, documented coordinate ID scheme

// Grid builds a rows x cols orthogonal street grid: a node at every (r, c)
// cell spaced spacing apart on both axes, with two-way streets to the right
// and bottom neighbor of each cell (roadgraph edges are directed, so each
// street is emitted as a pair of opposing arcs).
//
// Returns ErrTooFewVertices if rows < 1 or cols < 1, ErrNonPositiveSpacing
// if spacing <= 0.
func Grid(rows, cols int, spacing float64, opts ...Option) (*roadgraph.Graph, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrTooFewVertices
	}
	if spacing <= 0 {
		return nil, ErrNonPositiveSpacing
	}
	o := resolve(opts)

	g := roadgraph.New()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := fmt.Sprintf(gridIDFmt, r, c)
			p := geo.NewPoint(float64(c)*spacing, float64(r)*spacing, o.Calc)
			if err := g.AddNode(id, p); err != nil {
				return nil, fmt.Errorf("roadnet: Grid: AddNode(%s): %w", id, err)
			}
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := fmt.Sprintf(gridIDFmt, r, c)
			if c+1 < cols {
				v := fmt.Sprintf(gridIDFmt, r, c+1)
				if err := addStreet(g, u, v, o.Calc); err != nil {
					return nil, fmt.Errorf("roadnet: Grid: %w", err)
				}
			}
			if r+1 < rows {
				v := fmt.Sprintf(gridIDFmt, r+1, c)
				if err := addStreet(g, u, v, o.Calc); err != nil {
					return nil, fmt.Errorf("roadnet: Grid: %w", err)
				}
			}
		}
	}

	return g, nil
}

// addStreet adds a directed edge u->v and its mirror v->u, both carrying the
// straight segment between the two nodes' current positions.
func addStreet(g *roadgraph.Graph, u, v string, calc geo.TopologyCalculator) error {
	un, _ := g.Node(u)
	vn, _ := g.Node(v)

	fwd, err := geo.NewPolyline([]geo.Point{un.Point, vn.Point}, calc)
	if err != nil {
		return err
	}
	if _, err := g.AddEdge(u, v, fwd, false); err != nil {
		return err
	}

	rev, err := geo.NewPolyline([]geo.Point{vn.Point, un.Point}, calc)
	if err != nil {
		return err
	}
	_, err = g.AddEdge(v, u, rev, false)
	return err
}
