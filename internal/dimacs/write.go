package dimacs

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rhartert/dpll/internal/sat"
)

// Write emits the instance in DIMACS CNF format: comment lines first, then
// the header, then one zero-terminated line per clause.
func Write(w io.Writer, instance *Instance) error {
	bw := bufio.NewWriter(w)
	for _, c := range instance.Comments {
		fmt.Fprintln(bw, c)
	}
	fmt.Fprintf(bw, "p cnf %d %d\n", instance.Variables, len(instance.Clauses))
	for _, clause := range instance.Clauses {
		for _, l := range clause {
			fmt.Fprintf(bw, "%d ", l)
		}
		fmt.Fprintln(bw, "0")
	}
	return bw.Flush()
}

// Model is the part of a solver needed to report a satisfying assignment.
type Model interface {
	NumVariables() int
	VarValue(x int) sat.LBool
}

// WriteSolution reports a verdict: the word SATISFIABLE or UNSATISFIABLE on
// its own line and, for satisfiable instances, a second line with one
// signed integer per variable. Variables the solver left unassigned are
// don't-care and reported positive.
func WriteSolution(w io.Writer, satisfiable bool, m Model) error {
	bw := bufio.NewWriter(w)
	if !satisfiable {
		fmt.Fprintln(bw, "UNSATISFIABLE")
		return bw.Flush()
	}
	fmt.Fprintln(bw, "SATISFIABLE")
	for v := 0; v < m.NumVariables(); v++ {
		if v > 0 {
			fmt.Fprint(bw, " ")
		}
		if m.VarValue(v) == sat.False {
			fmt.Fprint(bw, -(v + 1))
		} else {
			fmt.Fprint(bw, v+1)
		}
	}
	fmt.Fprintln(bw)
	return bw.Flush()
}
