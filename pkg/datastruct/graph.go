package datastruct

import "go.llib.dev/frameless/pkg/slicekit"

// Graph is a directed graph stored as adjacency lists.
//
// Edges may point to identifiers that were never registered with AddNode,
// and the same edge can be added more than once.
type Graph[ID comparable] struct {
	nodes map[ID][]ID
	order []ID
}

// AddNode registers id with no out-edges.
// Adding an already registered node leaves its edges untouched.
func (g *Graph[ID]) AddNode(id ID) {
	if g.nodes == nil {
		g.nodes = make(map[ID][]ID)
	}
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = []ID{}
	g.order = append(g.order, id)
}

// AddEdge adds a directed edge from -> to.
// The edge is dropped silently when from is not a registered node.
func (g *Graph[ID]) AddEdge(from, to ID) {
	edges, ok := g.nodes[from]
	if !ok {
		return
	}
	g.nodes[from] = append(edges, to)
}

func (g *Graph[ID]) HasNode(id ID) bool {
	_, ok := g.nodes[id]
	return ok
}

// Edges returns the out-edges of id in the order they were added.
func (g *Graph[ID]) Edges(id ID) ([]ID, bool) {
	edges, ok := g.nodes[id]
	if !ok {
		return nil, false
	}
	return slicekit.Clone(edges), true
}

// Nodes returns the registered nodes in registration order.
func (g *Graph[ID]) Nodes() []ID {
	return slicekit.Clone(g.order)
}

func (g *Graph[ID]) Len() int {
	return len(g.nodes)
}

func (g *Graph[ID]) ToMap() map[ID][]ID {
	m := make(map[ID][]ID, len(g.nodes))
	for id, edges := range g.nodes {
		m[id] = slicekit.Clone(edges)
	}
	return m
}
