// Package dimacs reads minimum cost flow instances in the DIMACS "min"
// text format and writes flow assignments back out. Node ids are
// 1-based in both formats; the reader remaps them to the dense 0-based
// ids of the graph store and the writer re-emits the original ids.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rhartert/mcflow/mcf"
)

// FormatError reports a malformed input file. Line is the 1-based
// number of the offending line; for errors only detectable at the end
// of the input, such as a missing arc, it is the number of the last
// line read.
type FormatError struct {
	Line   int
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("dimacs: line %d: %s", e.Line, e.Reason)
}

// Read parses a DIMACS min-file:
//
//	c <comment>
//	p min <nodes> <arcs>
//	n <id> <supply>
//	a <from> <to> <lower> <upper> <cost>
//
// Comment and blank lines are ignored. The problem line must come
// first; node lines declare the nonzero supplies (positive) and demands
// (negative) and may not repeat an id; arc lines must match the
// declared arc count exactly. Node references outside [1, nodes] and
// malformed lines are rejected with a *FormatError carrying the line
// number.
func Read(r io.Reader) (*mcf.Instance, error) {
	scanner := bufio.NewScanner(r)

	var inst *mcf.Instance
	var declared []bool
	nArcs := 0

	ln := 0
	for scanner.Scan() {
		ln++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == 'c' {
			continue
		}
		parts := strings.Fields(line)

		switch parts[0] {
		case "p":
			if inst != nil {
				return nil, &FormatError{ln, "duplicate problem line"}
			}
			if len(parts) != 4 || parts[1] != "min" {
				return nil, &FormatError{ln, "problem line must be \"p min <nodes> <arcs>\""}
			}
			n, err := strconv.Atoi(parts[2])
			if err != nil || n < 0 {
				return nil, &FormatError{ln, fmt.Sprintf("invalid node count %q", parts[2])}
			}
			m, err := strconv.Atoi(parts[3])
			if err != nil || m < 0 {
				return nil, &FormatError{ln, fmt.Sprintf("invalid arc count %q", parts[3])}
			}
			g := &mcf.Digraph{}
			for i := 0; i < n; i++ {
				g.AddNode()
			}
			inst = &mcf.Instance{
				Graph:  g,
				Lower:  make([]int64, 0, m),
				Upper:  make([]int64, 0, m),
				Cost:   make([]float64, 0, m),
				Supply: make([]int64, n),
			}
			declared = make([]bool, n)
			nArcs = m

		case "n":
			if inst == nil {
				return nil, &FormatError{ln, "node record before problem line"}
			}
			if len(parts) != 3 {
				return nil, &FormatError{ln, "node record must be \"n <id> <supply>\""}
			}
			id, err := nodeRef(parts[1], inst.Graph.NumNodes())
			if err != nil {
				return nil, &FormatError{ln, err.Error()}
			}
			if declared[id] {
				return nil, &FormatError{ln, fmt.Sprintf("duplicate record for node %s", parts[1])}
			}
			supply, err := strconv.ParseInt(parts[2], 10, 64)
			if err != nil {
				return nil, &FormatError{ln, fmt.Sprintf("invalid supply %q", parts[2])}
			}
			declared[id] = true
			inst.Supply[id] = supply

		case "a":
			if inst == nil {
				return nil, &FormatError{ln, "arc record before problem line"}
			}
			if len(parts) != 6 {
				return nil, &FormatError{ln, "arc record must be \"a <from> <to> <lower> <upper> <cost>\""}
			}
			if inst.Graph.NumArcs() == nArcs {
				return nil, &FormatError{ln, fmt.Sprintf("more than %d arc records", nArcs)}
			}
			from, err := nodeRef(parts[1], inst.Graph.NumNodes())
			if err != nil {
				return nil, &FormatError{ln, err.Error()}
			}
			to, err := nodeRef(parts[2], inst.Graph.NumNodes())
			if err != nil {
				return nil, &FormatError{ln, err.Error()}
			}
			lower, err := strconv.ParseInt(parts[3], 10, 64)
			if err != nil {
				return nil, &FormatError{ln, fmt.Sprintf("invalid lower bound %q", parts[3])}
			}
			upper, err := strconv.ParseInt(parts[4], 10, 64)
			if err != nil {
				return nil, &FormatError{ln, fmt.Sprintf("invalid capacity %q", parts[4])}
			}
			cost, err := strconv.ParseFloat(parts[5], 64)
			if err != nil {
				return nil, &FormatError{ln, fmt.Sprintf("invalid cost %q", parts[5])}
			}
			inst.Graph.AddArc(from, to)
			inst.Lower = append(inst.Lower, lower)
			inst.Upper = append(inst.Upper, upper)
			inst.Cost = append(inst.Cost, cost)

		default:
			return nil, &FormatError{ln, fmt.Sprintf("unknown line descriptor %q", parts[0])}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if inst == nil {
		return nil, &FormatError{ln, "missing problem line"}
	}
	if inst.Graph.NumArcs() != nArcs {
		return nil, &FormatError{ln, fmt.Sprintf("want %d arc records, got %d", nArcs, inst.Graph.NumArcs())}
	}
	return inst, nil
}

// ReadFile parses the DIMACS min-file at the given path.
func ReadFile(path string) (*mcf.Instance, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Read(file)
}

// nodeRef parses a 1-based external node id and remaps it to the
// 0-based id used by the graph store.
func nodeRef(s string, nNodes int) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid node id %q", s)
	}
	if id < 1 || nNodes < id {
		return 0, fmt.Errorf("node id %d out of range [1, %d]", id, nNodes)
	}
	return id - 1, nil
}
