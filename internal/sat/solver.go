// Package sat implements a DPLL satisfiability solver for formulas in
// conjunctive normal form. The solver combines unit propagation to
// fixpoint, a one-time pure literal pass, and recursive branching with
// chronological backtracking.
package sat

import "fmt"

type Solver struct {
	// Clause database. Preprocessing removes tautologies and orders the
	// remaining clauses by ascending length; after that the database is
	// immutable and clause positions are stable identities.
	clauses []*Clause
	numVars int

	// Value assigned to each variable.
	assigns []LBool

	// Trail of assignments in the order they were made. Search saves the
	// trail length before branching and rolls back to it on failure.
	trail []Literal

	// Watched literals. Each clause watches two of its slots (one for
	// unit clauses, none for empty ones) and is listed under the literals
	// it watches. The index is maintained on every assignment; bcp alone
	// decides units and conflicts.
	watches    []watchPair
	watchLists [][]int

	// Per-variable polarity census of the preprocessed clauses. Computed
	// once and never refreshed during search.
	positives []int
	negatives []int
	pureVal   []LBool

	// Variable ordering.
	order     *VarOrder // static occurrence order, nil unless enabled
	tmpScores []int     // reused by pickBranchVar

	// Shared by operations that need to put literals in a set and empty
	// that set efficiently.
	seenLits *ResetSet

	// Search statistics.
	TotalDecisions    int64
	TotalPropagations int64
	TotalConflicts    int64
}

// watchPair holds the positions of a clause's two watched slots. Unit
// clauses watch their only slot twice. Empty clauses keep the zero value
// and never appear in a watch list.
type watchPair struct {
	first  int
	second int
}

type Options struct {
	// StaticOrder branches on the unassigned variable with the most
	// occurrences in the input formula instead of rescoring unresolved
	// clauses at every decision.
	StaticOrder bool
}

var DefaultOptions = Options{
	StaticOrder: false,
}

// NewDefaultSolver returns a solver configured with default options. This is
// equivalent to calling NewSolver with DefaultOptions.
func NewDefaultSolver(numVars int, clauses [][]int) (*Solver, error) {
	return NewSolver(numVars, clauses, DefaultOptions)
}

// NewSolver returns a solver for the CNF formula over variables 1..numVars
// made of the given clauses. Clause literals follow the DIMACS convention:
// a non-zero integer whose magnitude is the variable and whose sign is the
// polarity. Literals with magnitude outside [1, numVars] are rejected.
// Empty clauses are accepted and make the formula unsatisfiable.
func NewSolver(numVars int, clauses [][]int, ops Options) (*Solver, error) {
	s := &Solver{
		numVars:    numVars,
		assigns:    make([]LBool, numVars),
		trail:      make([]Literal, 0, numVars),
		watchLists: make([][]int, numVars*2),
		positives:  make([]int, numVars),
		negatives:  make([]int, numVars),
		pureVal:    make([]LBool, numVars),
		tmpScores:  make([]int, numVars),
		seenLits:   NewResetSet(numVars * 2),
	}
	if err := s.addClauses(clauses); err != nil {
		return nil, err
	}
	s.preprocess()
	if ops.StaticOrder {
		s.order = NewVarOrder(s)
	}
	return s, nil
}

func (s *Solver) NumVariables() int {
	return len(s.assigns)
}

func (s *Solver) NumClauses() int {
	return len(s.clauses)
}

// VarValue returns the value of variable x. In a satisfying assignment,
// Unknown means the variable is a don't-care: no remaining clause needs it.
func (s *Solver) VarValue(x int) LBool {
	return s.assigns[x]
}

func (s *Solver) LitValue(l Literal) LBool {
	v := s.assigns[l.VarID()]
	if l.IsPositive() {
		return v
	}
	return v.Opposite()
}

// Solve reports whether the formula is satisfiable. If it returns true,
// the satisfying assignment can be read with VarValue. If it returns
// false, the trail has been rolled back and all variables are unassigned.
func (s *Solver) Solve() bool {
	return s.search()
}

// search decides satisfiability of the formula under the assignments
// currently on the trail. On failure the trail is restored to its state at
// entry.
func (s *Solver) search() bool {
	entry := s.snapshot()

	// The outermost call starts by fixing pure variables to their only
	// polarity. The census is not refreshed, so this happens once.
	if entry == 0 && !s.assignPureVars() {
		s.rollback(entry)
		return false
	}

	if !s.bcp() {
		s.rollback(entry)
		return false
	}

	v, ok := s.pickBranchVar()
	if !ok {
		// Every clause has a true literal: the remaining variables are
		// don't-care.
		return true
	}

	first := PositiveLiteral(v)
	if s.negatives[v] > s.positives[v] {
		first = NegativeLiteral(v)
	}

	s.TotalDecisions++
	mark := s.snapshot()
	if s.assign(first) && s.search() {
		return true
	}
	s.rollback(mark)
	if s.assign(first.Opposite()) && s.search() {
		return true
	}
	s.rollback(entry)
	return false
}

// assignPureVars assigns every unassigned variable that occurs with a
// single polarity in the input formula to that polarity. It returns false
// if an assignment is rejected.
func (s *Solver) assignPureVars() bool {
	for v := 0; v < s.numVars; v++ {
		if s.assigns[v] != Unknown {
			continue
		}
		var l Literal
		switch s.pureVal[v] {
		case True:
			l = PositiveLiteral(v)
		case False:
			l = NegativeLiteral(v)
		default:
			continue
		}
		if !s.assign(l) {
			return false
		}
	}
	return true
}

// addClauses converts and validates the input clauses.
func (s *Solver) addClauses(clauses [][]int) error {
	s.clauses = make([]*Clause, 0, len(clauses))
	for _, cls := range clauses {
		literals := make([]Literal, len(cls))
		for i, l := range cls {
			switch {
			case l == 0:
				return fmt.Errorf("clause %v: literal 0 is reserved as a terminator", cls)
			case l > s.numVars || -l > s.numVars:
				return fmt.Errorf("clause %v: literal %d is outside the variable range [1, %d]", cls, l, s.numVars)
			case l > 0:
				literals[i] = PositiveLiteral(l - 1)
			default:
				literals[i] = NegativeLiteral(-l - 1)
			}
		}
		s.clauses = append(s.clauses, newClause(literals))
	}
	return nil
}
