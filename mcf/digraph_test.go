package mcf

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewDigraph(t *testing.T) {
	want := &Digraph{
		Nexts: [][]int{{0, 2}, {1}, nil},
		Arcs:  []Arc{{0, 1}, {1, 2}, {0, 2}},
	}

	got := NewDigraph([]Arc{{0, 1}, {1, 2}, {0, 2}}, 3)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NewDigraph(): mismatch (-want +got):\n%s", diff)
	}
}

func TestDigraph_AddNode(t *testing.T) {
	g := &Digraph{}

	for want := 0; want < 3; want++ {
		if got := g.AddNode(); got != want {
			t.Errorf("AddNode(): want id %d, got %d", want, got)
		}
	}
	if got := g.NumNodes(); got != 3 {
		t.Errorf("NumNodes(): want 3, got %d", got)
	}
}

func TestDigraph_AddArc(t *testing.T) {
	wantNexts := [][]int{{0, 1}, {2}, nil}
	wantArcs := []Arc{{0, 1}, {0, 2}, {1, 2}}
	g := NewDigraph(nil, 3)

	if got := g.AddArc(0, 1); got != 0 {
		t.Errorf("AddArc(0, 1): want id 0, got %d", got)
	}
	if got := g.AddArc(0, 2); got != 1 {
		t.Errorf("AddArc(0, 2): want id 1, got %d", got)
	}
	if got := g.AddArc(1, 2); got != 2 {
		t.Errorf("AddArc(1, 2): want id 2, got %d", got)
	}

	if diff := cmp.Diff(wantNexts, g.Nexts); diff != "" {
		t.Errorf("Nexts: mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantArcs, g.Arcs); diff != "" {
		t.Errorf("Arcs: mismatch (-want +got):\n%s", diff)
	}
}

func TestDigraph_AddArc_parallelArcs(t *testing.T) {
	wantNexts := [][]int{{0, 1}, nil}
	g := NewDigraph(nil, 2)

	g.AddArc(0, 1)
	g.AddArc(0, 1)

	if diff := cmp.Diff(wantNexts, g.Nexts); diff != "" {
		t.Errorf("Nexts: mismatch (-want +got):\n%s", diff)
	}
}

func TestDigraph_OutArcs(t *testing.T) {
	want := []int{0, 2}
	g := NewDigraph([]Arc{{0, 1}, {1, 2}, {0, 2}}, 3)

	got := g.OutArcs(0)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("OutArcs(0): mismatch (-want +got):\n%s", diff)
	}
}

func TestDigraph_Arc(t *testing.T) {
	want := Arc{From: 1, To: 2}
	g := NewDigraph([]Arc{{0, 1}, {1, 2}}, 3)

	if got := g.Arc(1); got != want {
		t.Errorf("Arc(1): want %v, got %v", want, got)
	}
	if got := g.NumArcs(); got != 2 {
		t.Errorf("NumArcs(): want 2, got %d", got)
	}
}
