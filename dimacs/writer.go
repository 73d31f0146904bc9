package dimacs

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rhartert/mcflow/mcf"
)

// WriteFlow writes one line per arc carrying nonzero flow, in arc
// insertion order, as "<from> <to> <flow>" with the same 1-based node
// ids the reader accepts. Arcs with zero flow are omitted. The first
// write error is returned; callers that need all-or-nothing output
// should write to a buffer and commit it in one operation.
func WriteFlow(w io.Writer, g *mcf.Digraph, flow []int64) error {
	if len(flow) != g.NumArcs() {
		return fmt.Errorf("dimacs: want %d flow values, got %d", g.NumArcs(), len(flow))
	}
	bw := bufio.NewWriter(w)
	for i, a := range g.Arcs {
		if flow[i] == 0 {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", a.From+1, a.To+1, flow[i]); err != nil {
			return err
		}
	}
	return bw.Flush()
}
