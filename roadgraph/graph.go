package roadgraph

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/mapmatch/geo"
)

const edgeIDPrefix = "e"

// Node is a stable-identity point in the road network.
type Node struct {
	ID    string
	Point geo.Point
}

// Edge is an immutable directed connection between two nodes, carrying the
// road geometry and an off-road flag marking a transition away from the
// roadway (e.g. onto a destination building's access point). There is no
// mutable weight: pathfinder.FindPath computes edge cost on demand via a
// pluggable weight function.
type Edge struct {
	ID       string
	From     string
	To       string
	Polyline geo.Polyline
	OffRoad  bool
}

// Graph is a directed road graph. muNode guards the node map; muEdgeAdj
// guards edges and the adjacency index.
type Graph struct {
	muNode    sync.RWMutex
	muEdgeAdj sync.RWMutex

	nextEdgeID uint64
	nodes      map[string]*Node
	edges      map[string]*Edge
	adjacency  map[string]map[string]struct{} // adjacency[from][edgeID]
}

// New constructs an empty Graph.
func New() *Graph {
	return &Graph{
		nodes:     make(map[string]*Node),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]struct{}),
	}
}

// AddNode inserts a node at point under id. Re-adding an existing id with
// the same point is a no-op; re-adding it with a different point returns
// ErrNodeExists.
func (g *Graph) AddNode(id string, point geo.Point) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.muNode.Lock()
	defer g.muNode.Unlock()

	if existing, ok := g.nodes[id]; ok {
		if existing.Point.Equal(point) {
			return nil
		}
		return ErrNodeExists
	}
	g.nodes[id] = &Node{ID: id, Point: point}

	g.muEdgeAdj.Lock()
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]struct{})
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasNode reports whether id is a node of the graph.
func (g *Graph) HasNode(id string) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodes[id]
	return ok
}

// Node returns the node stored under id.
func (g *Graph) Node(id string) (*Node, bool) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	n, ok := g.nodes[id]
	return n, ok
}

// AddEdge creates a directed edge from→to carrying polyline, returning its
// generated ID. Returns ErrNodeNotFound if either endpoint is absent,
// ErrInvalidPolyline if polyline has fewer than two points.
func (g *Graph) AddEdge(from, to string, polyline geo.Polyline, offRoad bool) (string, error) {
	if !g.HasNode(from) || !g.HasNode(to) {
		return "", ErrNodeNotFound
	}
	if len(polyline.Points) < 2 {
		return "", ErrInvalidPolyline
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	eid := fmt.Sprintf("%s%d", edgeIDPrefix, atomic.AddUint64(&g.nextEdgeID, 1))
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Polyline: polyline, OffRoad: offRoad}

	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]struct{})
	}
	g.adjacency[from][eid] = struct{}{}

	return eid, nil
}

// RemoveEdge deletes the edge with the given ID.
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	delete(g.adjacency[e.From], eid)
	return nil
}

// Edge returns the edge stored under id.
func (g *Graph) Edge(id string) (*Edge, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[id]
	return e, ok
}

// HasEdge reports whether at least one edge runs from→to.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for eid := range g.adjacency[from] {
		if g.edges[eid].To == to {
			return true
		}
	}
	return false
}

// Neighbors returns the outgoing edges of id, sorted by edge ID for
// deterministic iteration. Returns ErrNodeNotFound if id is absent.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if !g.HasNode(id) {
		return nil, ErrNodeNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.adjacency[id]))
	for eid := range g.adjacency[id] {
		out = append(out, g.edges[eid])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// NodeIDs returns every node ID, sorted.
func (g *Graph) NodeIDs() []string {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Edges returns every edge, sorted by ID.
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	return len(g.edges)
}
