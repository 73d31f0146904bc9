// Package solver contains an implementation of the capacity scaling
// algorithm (successive shortest augmenting paths) to compute a flow of
// minimum total cost, or report that no feasible flow exists.
package solver

import (
	"fmt"

	"github.com/rhartert/mcflow/mcf"
	"github.com/rhartert/sparsesets"
)

const defaultEpsilon = 1e-9

type Config struct {
	// Epsilon is the tolerance used when comparing reduced costs.
	// Values within Epsilon of zero are treated as zero. Leaving it
	// unset selects a default of 1e-9.
	Epsilon float64
}

// Result is the outcome of a successful run.
type Result struct {
	// Flow is the per-arc flow value, indexed by arc id. It satisfies
	// the capacity bounds of the instance and conserves flow at every
	// node.
	Flow []int64

	// Cost is the total cost of the flow.
	Cost float64

	// Phases and Augmentations count the scaling phases and the
	// augmenting paths used by the run, for diagnostics.
	Phases        int
	Augmentations int
}

// state gathers the working structures owned by a single Solve call:
// the residual network, the node potentials and excesses, and the
// scratch slices of the shortest path search. Nothing here outlives the
// call, so repeated runs on the same instance are independent.
type state struct {
	inst    *mcf.Instance
	res     *residual
	epsilon float64

	excess []int64
	pi     []float64

	// Candidate nodes of the current scaling phase. Entries whose
	// excess no longer meets the threshold are not removed; the scans
	// in pickActive and hasDeficit skip them, and both sets are rebuilt
	// when the phase changes. retired holds the active nodes that
	// failed to reach any deficit node at the current delta; they are
	// reconsidered in the next phase.
	active  *sparsesets.Set
	deficit *sparsesets.Set
	retired *sparsesets.Set

	// Scratch structures filled by shortestPath.
	dist      []float64
	parentArc []int
	settled   []bool

	phases        int
	augmentations int
}

// Solve computes a minimum cost flow for the instance. It returns a
// *mcf.ConfigError if the instance is malformed, an error wrapping
// mcf.ErrInfeasible if no flow satisfies the conservation and capacity
// constraints, and the optimal flow otherwise.
//
// The total cost of the returned flow is uniquely determined by the
// instance; the flow values themselves depend on arc insertion order
// when several optimal flows exist.
func Solve(inst *mcf.Instance, cfg Config) (*Result, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}

	total := int64(0)
	for _, s := range inst.Supply {
		total += s
	}
	if total != 0 {
		return nil, fmt.Errorf("total supply is %d, want 0: %w", total, mcf.ErrInfeasible)
	}

	s := newState(inst, cfg)
	if err := s.run(); err != nil {
		return nil, err
	}

	flow := s.res.flows(inst)
	return &Result{
		Flow:          flow,
		Cost:          inst.TotalCost(flow),
		Phases:        s.phases,
		Augmentations: s.augmentations,
	}, nil
}

func newState(inst *mcf.Instance, cfg Config) *state {
	epsilon := cfg.Epsilon
	if epsilon == 0 {
		epsilon = defaultEpsilon
	}

	n := inst.Graph.NumNodes()
	res, excess := newResidual(inst)

	return &state{
		inst:      inst,
		res:       res,
		epsilon:   epsilon,
		excess:    excess,
		pi:        make([]float64, n),
		active:    sparsesets.New(n),
		deficit:   sparsesets.New(n),
		retired:   sparsesets.New(n),
		dist:      make([]float64, n),
		parentArc: make([]int, n),
		settled:   make([]bool, n),
	}
}

// run drives the scaling loop: delta starts at the largest power of two
// not exceeding the maximum absolute node excess and is halved until
// the delta = 1 phase completes. The flow is optimal if every excess is
// zero by then.
func (s *state) run() error {
	if s.hasNegativeCost() {
		// Reduced costs must be nonnegative before the first Dijkstra
		// search. If the pre-pass reports a negative residual cycle,
		// potentials stay at zero and the saturation step of the first
		// phase absorbs the negative arcs instead.
		initPotentials(s.res, s.pi)
	}

	maxExcess := int64(1)
	for _, e := range s.excess {
		if e < 0 {
			e = -e
		}
		if e > maxExcess {
			maxExcess = e
		}
	}

	delta := int64(1)
	for delta <= maxExcess/2 {
		delta *= 2
	}

	for ; delta >= 1; delta /= 2 {
		s.phases++
		s.saturate(delta)
		s.rebuildSets(delta)

		for s.hasDeficit(delta) {
			src, ok := s.pickActive(delta)
			if !ok {
				break
			}
			t, ok := s.shortestPath(src, delta)
			if !ok {
				s.retired.Insert(src)
				continue
			}
			s.updatePotentials(t)
			s.augment(src, t, delta)
		}
	}

	for _, e := range s.excess {
		if e != 0 {
			return fmt.Errorf("leftover excess after scaling: %w", mcf.ErrInfeasible)
		}
	}
	return nil
}

func (s *state) hasNegativeCost() bool {
	for _, c := range s.inst.Cost {
		if c < 0 {
			return true
		}
	}
	return false
}

// saturate pushes the full remaining capacity of every residual arc
// that is admissible at this delta and has a negative reduced cost.
// Halving delta admits arcs the previous phases ignored, and those arcs
// may violate the nonnegative reduced cost invariant; saturating them
// moves the violation into the node excesses, where the path search
// resolves it.
func (s *state) saturate(delta int64) {
	for j, c := range s.res.cap {
		if c < delta {
			continue
		}
		u, v := s.res.tail(j), s.res.head[j]
		if s.res.cost[j]+s.pi[u]-s.pi[v] < -s.epsilon {
			s.res.push(j, c)
			s.excess[u] -= c
			s.excess[v] += c
		}
	}
}

func (s *state) rebuildSets(delta int64) {
	s.active.Clear()
	s.deficit.Clear()
	s.retired.Clear()
	for v, e := range s.excess {
		if e >= delta {
			s.active.Insert(v)
		}
		if e <= -delta {
			s.deficit.Insert(v)
		}
	}
}

// pickActive returns a node with excess at least delta that has not
// been retired in this phase.
func (s *state) pickActive(delta int64) (int, bool) {
	for _, v := range s.active.Content() {
		if s.excess[v] >= delta && !s.retired.Contains(v) {
			return v, true
		}
	}
	return 0, false
}

func (s *state) hasDeficit(delta int64) bool {
	for _, v := range s.deficit.Content() {
		if s.excess[v] <= -delta {
			return true
		}
	}
	return false
}

// updatePotentials folds the distances of the last search into the node
// potentials: settled nodes move by their exact distance, every other
// node by the distance of the reached deficit node t, which is a lower
// bound on theirs. This restores the nonnegative reduced cost invariant
// after the push changes the residual topology along the path.
func (s *state) updatePotentials(t int) {
	dt := s.dist[t]
	for v := range s.pi {
		if s.settled[v] {
			s.pi[v] += s.dist[v]
		} else {
			s.pi[v] += dt
		}
	}
}

// augment pushes exactly delta units along the path found by the last
// search, walking the parent arcs back from t to src.
func (s *state) augment(src, t int, delta int64) {
	for v := t; v != src; {
		j := s.parentArc[v]
		s.res.push(j, delta)
		v = s.res.tail(j)
	}
	s.excess[src] -= delta
	s.excess[t] += delta
	s.augmentations++
}
