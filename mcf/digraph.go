// Package mcf defines the data model shared by the minimum cost flow
// solver: a directed multigraph with dense integer node and arc handles,
// the problem instance built on top of it, and the error types reported
// when an instance is rejected.
package mcf

import "fmt"

// Arc represents a directed arc between two nodes.
type Arc struct {
	From int
	To   int
}

// Digraph is an append-only directed multigraph. Nodes and arcs are
// identified by dense 0-based integers assigned in insertion order and
// never reused or reordered. The topology is meant to be frozen once
// construction completes: there is no removal operation.
type Digraph struct {
	// Nexts[u] lists the ids of the arcs leaving node u, in insertion
	// order.
	Nexts [][]int

	// Arcs lists all arcs in insertion order.
	Arcs []Arc
}

// NewDigraph creates a new directed graph with the specified arcs and
// number of nodes. It is important to ensure that arcs are only between
// nodes within the range [0, nNodes); otherwise, the function will
// panic.
func NewDigraph(arcs []Arc, nNodes int) *Digraph {
	g := &Digraph{
		Nexts: make([][]int, nNodes),
		Arcs:  make([]Arc, len(arcs)),
	}
	for i, a := range arcs {
		g.Arcs[i] = a
		g.Nexts[a.From] = append(g.Nexts[a.From], i)
	}
	return g
}

// AddNode adds a new node to the graph and returns its id. Ids are
// assigned in insertion order.
func (g *Digraph) AddNode() int {
	g.Nexts = append(g.Nexts, nil)
	return len(g.Nexts) - 1
}

// AddArc adds a new arc from node u to node v and returns its id. Both
// nodes must already be in the graph; otherwise, the function will
// panic.
func (g *Digraph) AddArc(u, v int) int {
	if u < 0 || len(g.Nexts) <= u || v < 0 || len(g.Nexts) <= v {
		panic(fmt.Sprintf("mcf: arc (%d, %d) connects nodes outside the graph", u, v))
	}
	id := len(g.Arcs)
	g.Arcs = append(g.Arcs, Arc{From: u, To: v})
	g.Nexts[u] = append(g.Nexts[u], id)
	return id
}

// NumNodes returns the number of nodes in the graph.
func (g *Digraph) NumNodes() int {
	return len(g.Nexts)
}

// NumArcs returns the number of arcs in the graph.
func (g *Digraph) NumArcs() int {
	return len(g.Arcs)
}

// Arc returns the endpoints of the given arc.
func (g *Digraph) Arc(id int) Arc {
	return g.Arcs[id]
}

// OutArcs returns the ids of the arcs leaving node u in insertion
// order.
//
// Important: the slice is a view on the graph's internal structure and
// should only be used in read-only operations.
func (g *Digraph) OutArcs(u int) []int {
	return g.Nexts[u]
}
