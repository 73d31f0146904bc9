package solver

import "github.com/rhartert/mcflow/mcf"

// residual is the residual network a single Solve call works on. Every
// instance arc i is represented by a pair of residual arcs: arc 2*i is
// the forward copy (capacity Upper[i]-Lower[i], cost Cost[i]) and arc
// 2*i+1 its reverse (capacity 0, cost -Cost[i]). Pushing flow on one
// arc of a pair frees the same amount on the other, which is why the
// reverse of arc j is always j^1.
//
// Lower bounds are eliminated at construction: Lower[i] units are
// pushed unconditionally on every arc and the node imbalances are
// accounted in the initial excess values. All residual reasoning then
// uses implicit zero lower bounds.
type residual struct {
	// nexts[u] lists the residual arcs leaving node u.
	nexts [][]int

	// head[j] is the node residual arc j points to.
	head []int

	cap  []int64
	cost []float64
}

// newResidual builds the residual network of inst and the initial
// per-node excess values (declared supply adjusted by the lower-bound
// elimination). The instance must have been validated.
func newResidual(inst *mcf.Instance) (*residual, []int64) {
	n := inst.Graph.NumNodes()
	m := inst.Graph.NumArcs()

	r := &residual{
		nexts: make([][]int, n),
		head:  make([]int, 2*m),
		cap:   make([]int64, 2*m),
		cost:  make([]float64, 2*m),
	}

	excess := make([]int64, n)
	copy(excess, inst.Supply)

	for i, a := range inst.Graph.Arcs {
		fwd, bwd := 2*i, 2*i+1

		r.head[fwd] = a.To
		r.cap[fwd] = inst.Upper[i] - inst.Lower[i]
		r.cost[fwd] = inst.Cost[i]
		r.nexts[a.From] = append(r.nexts[a.From], fwd)

		r.head[bwd] = a.From
		r.cap[bwd] = 0
		r.cost[bwd] = -inst.Cost[i]
		r.nexts[a.To] = append(r.nexts[a.To], bwd)

		// Mandatory part of the flow: push the lower bound now and
		// leave the node imbalance to be resolved by the search.
		excess[a.From] -= inst.Lower[i]
		excess[a.To] += inst.Lower[i]
	}

	return r, excess
}

// tail returns the node residual arc j leaves from.
func (r *residual) tail(j int) int {
	return r.head[j^1]
}

// push sends amount units on residual arc j, freeing the same amount on
// its reverse arc.
func (r *residual) push(j int, amount int64) {
	r.cap[j] -= amount
	r.cap[j^1] += amount
}

// flows extracts the per-arc flow values of the instance from the
// residual capacities. The flow on arc i is its lower bound plus
// whatever has been pushed on its forward copy, which is exactly the
// capacity accumulated on its reverse.
func (r *residual) flows(inst *mcf.Instance) []int64 {
	flow := make([]int64, inst.Graph.NumArcs())
	for i := range flow {
		flow[i] = inst.Lower[i] + r.cap[2*i+1]
	}
	return flow
}
