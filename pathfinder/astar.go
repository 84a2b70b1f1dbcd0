package pathfinder

import (
	"github.com/katalvlaran/mapmatch/fibheap"
	"github.com/katalvlaran/mapmatch/geo"
	"github.com/katalvlaran/mapmatch/roadgraph"
)

// FindPath searches for the shortest path from→to in g using A*. It never
// mutates g and is safe to call repeatedly. An unreachable target is
// reported by PathSummary.Unreachable(), not by an error.
func FindPath(g *roadgraph.Graph, from, to string, opts ...Option) (PathSummary, error) {
	if g == nil {
		return PathSummary{}, ErrNilGraph
	}
	if from == "" || to == "" {
		return PathSummary{}, ErrEmptyNodeID
	}

	fromNode, ok := g.Node(from)
	if !ok {
		return PathSummary{}, ErrNodeNotFound
	}
	toNode, ok := g.Node(to)
	if !ok {
		return PathSummary{}, ErrNodeNotFound
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if from == to {
		return PathSummary{Nodes: []string{from}}, nil
	}

	r := &search{
		g:        g,
		opts:     cfg,
		toPoint:  toNode.Point,
		gScore:   map[string]float64{from: 0},
		cameFrom: make(map[string]*roadgraph.Edge),
		closed:   make(map[string]bool),
		handles:  make(map[string]*fibheap.Node),
		heap:     fibheap.New(),
	}
	r.handles[from] = r.heap.Add(cfg.HeuristicFn(fromNode.Point, toNode.Point), from)

	reached, err := r.run(to)
	if err != nil {
		return PathSummary{}, err
	}
	if !reached {
		return PathSummary{VisitCount: r.visitCount}, nil
	}
	return r.reconstruct(from, to), nil
}

// search holds the mutable state of a single A* run.
type search struct {
	g       *roadgraph.Graph
	opts    Options
	toPoint geo.Point

	gScore   map[string]float64
	cameFrom map[string]*roadgraph.Edge
	closed   map[string]bool
	handles  map[string]*fibheap.Node
	heap     *fibheap.Heap

	visitCount int
}

// run pops nodes off the frontier in increasing f-score order until to is
// reached, the frontier empties, or MaxExpansions is exceeded. Returns
// whether to was reached.
func (r *search) run(to string) (bool, error) {
	for r.heap.Len() > 0 {
		top, err := r.heap.Poll()
		if err != nil {
			return false, err
		}
		id := top.Payload.(string)
		delete(r.handles, id)

		if r.closed[id] {
			continue
		}
		r.closed[id] = true
		r.visitCount++

		if id == to {
			return true, nil
		}
		if r.opts.MaxExpansions > 0 && r.visitCount >= r.opts.MaxExpansions {
			return false, nil
		}

		if err := r.relax(id); err != nil {
			return false, err
		}
	}
	return false, nil
}

// relax examines every outgoing edge of id and updates the frontier for any
// neighbor whose tentative g-score improves.
func (r *search) relax(id string) error {
	neighbors, err := r.g.Neighbors(id)
	if err != nil {
		return err
	}

	base := r.gScore[id]
	for _, e := range neighbors {
		if r.closed[e.To] {
			continue
		}
		w, err := r.opts.WeightFunc(e)
		if err != nil {
			return err
		}
		tentative := base + w

		current, known := r.gScore[e.To]
		if known && tentative >= current {
			continue
		}
		r.gScore[e.To] = tentative
		r.cameFrom[e.To] = e

		neighborNode, _ := r.g.Node(e.To)
		f := tentative + r.opts.HeuristicFn(neighborNode.Point, r.toPoint)

		if h, ok := r.handles[e.To]; ok {
			if f < h.Key {
				_ = r.heap.DecreaseKey(h, f)
			}
		} else {
			r.handles[e.To] = r.heap.Add(f, e.To)
		}
	}
	return nil
}

// reconstruct walks cameFrom backward from to, reversing it into a
// forward-ordered PathSummary.
func (r *search) reconstruct(from, to string) PathSummary {
	var edges []*roadgraph.Edge
	nodes := []string{to}

	cur := to
	for cur != from {
		e := r.cameFrom[cur]
		edges = append(edges, e)
		cur = e.From
		nodes = append(nodes, cur)
	}

	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	var total float64
	for _, e := range edges {
		w, _ := r.opts.WeightFunc(e)
		total += w
	}

	return PathSummary{
		Edges:         edges,
		Nodes:         nodes,
		VisitCount:    r.visitCount,
		TotalDistance: total,
	}
}
