package roadnet

import (
	"fmt"

	"github.com/katalvlaran/mapmatch/geo"
	"github.com/katalvlaran/mapmatch/roadgraph"
)

// FromPolylines builds a graph from a bag of raw road-segment polylines: one
// directed edge per polyline, from its first point to its last. Endpoints
// closer than Options.MergeTolerance are merged into a single node, so that
// segments drawn independently but meeting at (approximately) the same
// junction share a graph node instead of each keeping its own.
//
// Direction is taken as given: a polyline's points run from its recorded
// start to its recorded end, and FromPolylines emits exactly that one arc.
// Callers modeling a two-way street supply both directions explicitly (see
// Grid and Chain, which do this for their generated streets).
//
// Returns ErrEmptyPolylines if polylines is empty.
func FromPolylines(polylines []geo.Polyline, opts ...Option) (*roadgraph.Graph, error) {
	if len(polylines) == 0 {
		return nil, ErrEmptyPolylines
	}
	o := resolve(opts)

	g := roadgraph.New()
	m := &nodeMerger{calc: o.Calc, tolerance: o.MergeTolerance}

	for i, pl := range polylines {
		if pl.IsEmpty() {
			return nil, fmt.Errorf("roadnet: FromPolylines: polyline %d: %w", i, geo.ErrTooFewPoints)
		}

		fromID, err := m.resolve(g, pl.Points[0])
		if err != nil {
			return nil, fmt.Errorf("roadnet: FromPolylines: %w", err)
		}
		toID, err := m.resolve(g, pl.Points[len(pl.Points)-1])
		if err != nil {
			return nil, fmt.Errorf("roadnet: FromPolylines: %w", err)
		}

		if _, err := g.AddEdge(fromID, toID, pl, false); err != nil {
			return nil, fmt.Errorf("roadnet: FromPolylines: AddEdge(%s->%s): %w", fromID, toID, err)
		}
	}

	return g, nil
}

// nodeMerger assigns stable node IDs to endpoint coordinates, merging any
// two endpoints within tolerance into the same node. Matching is a linear
// scan against previously assigned representatives, which is O(n) per
// endpoint and adequate for the fixture sizes this package targets.
type nodeMerger struct {
	calc      geo.TopologyCalculator
	tolerance float64
	reps      []geo.Point
	ids       []string
	next      int
}

func (m *nodeMerger) resolve(g *roadgraph.Graph, p geo.Point) (string, error) {
	bound := geo.NewPoint(p.X, p.Y, m.calc)
	for i, rep := range m.reps {
		if rep.Distance(bound) <= m.tolerance {
			return m.ids[i], nil
		}
	}

	id := fmt.Sprintf("n%d", m.next)
	m.next++
	m.reps = append(m.reps, bound)
	m.ids = append(m.ids, id)

	if err := g.AddNode(id, bound); err != nil {
		return "", err
	}
	return id, nil
}
