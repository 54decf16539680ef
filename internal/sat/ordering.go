package sat

import "github.com/rhartert/yagh"

// pickBranchVar returns the variable to branch on next, or false when every
// clause already has a true literal and there is nothing left to decide.
//
// The default heuristic rescores the formula at every decision: each clause
// with no true literal adds one point to each of its unassigned variables,
// and the lowest variable with the strictly highest score wins. A best
// score of zero means no clause is unresolved.
func (s *Solver) pickBranchVar() (int, bool) {
	if s.order != nil {
		return s.order.Select()
	}

	scores := s.tmpScores
	for v := range scores {
		scores[v] = 0
	}
	for _, c := range s.clauses {
		resolved := false
		for _, l := range c.literals {
			if s.LitValue(l) == True {
				resolved = true
				break
			}
		}
		if resolved {
			continue
		}
		for _, l := range c.literals {
			if s.LitValue(l) == Unknown {
				scores[l.VarID()]++
			}
		}
	}

	best, bestScore := 0, 0
	for v := 0; v < s.numVars; v++ {
		if s.assigns[v] == Unknown && scores[v] > bestScore {
			best, bestScore = v, scores[v]
		}
	}
	return best, bestScore > 0
}

// VarOrder selects branching variables by occurrence count: the variable
// with the most occurrences in the input formula comes first. The counts
// come from preprocessing and are never refreshed, so the heap is filled
// once at construction. Assigned variables are discarded lazily by Select
// and reinserted by Undo when the trail unwinds.
type VarOrder struct {
	solver *Solver
	heap   *yagh.IntMap[float64]
}

func NewVarOrder(s *Solver) *VarOrder {
	vo := &VarOrder{
		solver: s,
		heap:   yagh.New[float64](s.numVars),
	}
	for v := 0; v < s.numVars; v++ {
		vo.Undo(v)
	}
	return vo
}

// Undo puts a variable back in the heap after it leaves the trail.
func (vo *VarOrder) Undo(varID int) {
	count := vo.solver.positives[varID] + vo.solver.negatives[varID]
	vo.heap.Put(varID, -float64(count))
}

// Select returns the unassigned variable with the highest occurrence count.
// An empty heap means every variable is assigned, which a clean bcp pass
// only allows when the formula is satisfied.
func (vo *VarOrder) Select() (int, bool) {
	for {
		next, ok := vo.heap.Pop()
		if !ok {
			return 0, false
		}
		if vo.solver.VarValue(next.Elem) != Unknown {
			continue // already assigned
		}
		return next.Elem, true
	}
}
