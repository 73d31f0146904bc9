package solver

import (
	"math"

	"github.com/rhartert/yagh"
)

// initPotentials computes initial node potentials as shortest-path
// distances from a virtual source connected to every node at distance
// zero, relaxing only residual arcs with remaining capacity. This is a
// Bellman-Ford pass: it tolerates negative arc costs and is required
// for the reduced costs to be nonnegative when the search starts.
//
// It returns false if the relaxation has not stabilized after n rounds,
// which means the residual network contains a cycle of negative cost.
// In that case pi is left untouched.
func initPotentials(r *residual, pi []float64) bool {
	dist := make([]float64, len(pi))

	for round := 0; round <= len(pi); round++ {
		changed := false
		for j, c := range r.cap {
			if c == 0 {
				continue
			}
			u, v := r.tail(j), r.head[j]
			if d := dist[u] + r.cost[j]; d < dist[v] {
				dist[v] = d
				changed = true
			}
		}
		if !changed {
			copy(pi, dist)
			return true
		}
	}
	return false
}

// shortestPath runs a Dijkstra search from node src over the residual
// arcs with at least delta remaining capacity, using reduced costs
// cost[j] + pi[tail(j)] - pi[head(j)] as arc lengths. The search stops
// as soon as it settles a node whose excess is at most -delta and
// returns that node.
//
// The search fills s.dist, s.parentArc and s.settled as a side effect:
// settled nodes carry their exact distance from src and the residual
// arc through which they were first reached. When several shortest
// paths tie, the first one discovered by the heap is kept, which is
// stable under arc insertion order. The second return value is false if
// no deficit node is reachable at this delta.
func (s *state) shortestPath(src int, delta int64) (int, bool) {
	for v := range s.dist {
		s.dist[v] = math.Inf(1)
		s.parentArc[v] = -1
		s.settled[v] = false
	}

	heap := yagh.New[float64](len(s.dist))
	s.dist[src] = 0
	heap.Put(src, 0)

	for heap.Size() > 0 {
		entry, _ := heap.Pop()
		u := entry.Elem
		s.settled[u] = true

		if s.excess[u] <= -delta {
			return u, true
		}

		for _, j := range s.res.nexts[u] {
			if s.res.cap[j] < delta {
				continue
			}
			v := s.res.head[j]
			if s.settled[v] {
				continue
			}
			rc := s.res.cost[j] + s.pi[u] - s.pi[v]
			if rc < 0 {
				// Reduced costs are nonnegative on arcs with at least
				// delta capacity; only float noise can land here.
				rc = 0
			}
			if d := entry.Cost + rc; d < s.dist[v] {
				s.dist[v] = d
				s.parentArc[v] = j
				heap.Put(v, d)
			}
		}
	}

	return 0, false
}
