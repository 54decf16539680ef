package sat

import "sort"

// preprocess runs once at construction. It drops tautological clauses,
// orders the survivors by ascending length so that short clauses are
// scanned first, installs the initial watches, and takes the polarity
// census used by the pure literal pass and the branching direction.
//
// Empty clauses survive preprocessing: they belong to no watch list and
// are reported as conflicts by the first bcp pass.
func (s *Solver) preprocess() {
	kept := s.clauses[:0]
	for _, c := range s.clauses {
		if !s.isTautology(c) {
			kept = append(kept, c)
		}
	}
	s.clauses = kept

	// The sort must be stable: clauses of equal length keep their input
	// order, which fixes the scan order of bcp and pickBranchVar.
	sort.SliceStable(s.clauses, func(i, j int) bool {
		return s.clauses[i].Len() < s.clauses[j].Len()
	})

	s.watches = make([]watchPair, len(s.clauses))
	for i, c := range s.clauses {
		switch {
		case c.Len() == 0:
			continue
		case c.Len() == 1:
			s.watches[i] = watchPair{first: 0, second: 0}
			s.watchLists[c.literals[0]] = append(s.watchLists[c.literals[0]], i)
		default:
			s.watches[i] = watchPair{first: 0, second: 1}
			s.watchLists[c.literals[0]] = append(s.watchLists[c.literals[0]], i)
			s.watchLists[c.literals[1]] = append(s.watchLists[c.literals[1]], i)
		}
	}

	for _, c := range s.clauses {
		for _, l := range c.literals {
			if l.IsPositive() {
				s.positives[l.VarID()]++
			} else {
				s.negatives[l.VarID()]++
			}
		}
	}
	for v := 0; v < s.numVars; v++ {
		switch {
		case s.positives[v] > 0 && s.negatives[v] == 0:
			s.pureVal[v] = True
		case s.negatives[v] > 0 && s.positives[v] == 0:
			s.pureVal[v] = False
		}
	}
}

// isTautology returns true if the clause contains a literal and its
// opposite. Such a clause is true under any assignment. The scan reuses the
// solver's literal set, cleared once per clause.
func (s *Solver) isTautology(c *Clause) bool {
	s.seenLits.Clear()
	for _, l := range c.literals {
		if s.seenLits.Contains(int(l.Opposite())) {
			return true
		}
		s.seenLits.Add(int(l))
	}
	return false
}
