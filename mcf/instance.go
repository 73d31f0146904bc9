package mcf

import "fmt"

// Instance groups a digraph with the per-arc capacity bounds and costs
// and the per-node supplies of a minimum cost flow problem. Supplies
// are positive for nodes that must emit net flow, negative for nodes
// that must absorb net flow, and zero for transshipment nodes.
//
// The instance is read-only once built: the solver keeps its working
// state (residual capacities, potentials) in structures owned by a
// single run.
type Instance struct {
	Graph  *Digraph
	Lower  []int64
	Upper  []int64
	Cost   []float64
	Supply []int64
}

// Validate checks that the instance is well formed: one bound, cost and
// supply entry per graph element, no negative capacity, and Lower[a] <=
// Upper[a] for every arc a. It returns a *ConfigError describing the
// first violation found.
func (inst *Instance) Validate() error {
	n := inst.Graph.NumNodes()
	m := inst.Graph.NumArcs()
	if len(inst.Lower) != m || len(inst.Upper) != m || len(inst.Cost) != m {
		return &ConfigError{
			Arc:    -1,
			Reason: fmt.Sprintf("want %d entries per arc map, got lower=%d upper=%d cost=%d", m, len(inst.Lower), len(inst.Upper), len(inst.Cost)),
		}
	}
	if len(inst.Supply) != n {
		return &ConfigError{
			Arc:    -1,
			Reason: fmt.Sprintf("want %d supply entries, got %d", n, len(inst.Supply)),
		}
	}
	for a := 0; a < m; a++ {
		if inst.Lower[a] < 0 {
			return &ConfigError{Arc: a, Reason: fmt.Sprintf("negative lower bound %d", inst.Lower[a])}
		}
		if inst.Upper[a] < 0 {
			return &ConfigError{Arc: a, Reason: fmt.Sprintf("negative capacity %d", inst.Upper[a])}
		}
		if inst.Lower[a] > inst.Upper[a] {
			return &ConfigError{Arc: a, Reason: fmt.Sprintf("lower bound %d exceeds capacity %d", inst.Lower[a], inst.Upper[a])}
		}
	}
	return nil
}

// TotalCost returns the cost of the given per-arc flow values.
func (inst *Instance) TotalCost(flow []int64) float64 {
	total := 0.0
	for a, f := range flow {
		total += inst.Cost[a] * float64(f)
	}
	return total
}
