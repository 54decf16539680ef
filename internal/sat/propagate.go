package sat

// bcp runs boolean constraint propagation to fixpoint. Each pass scans the
// whole clause database in order: a clause with a true literal is skipped,
// a clause with a single unassigned literal and no true one forces that
// literal, and a clause with neither is a conflict. Passes repeat until one
// completes without forcing anything.
//
// bcp returns false on conflict. Assignments made before the conflict stay
// on the trail for the caller to roll back.
func (s *Solver) bcp() bool {
	for changed := true; changed; {
		changed = false
		for _, c := range s.clauses {
			// Count unassigned literals, saturating at 2 when the clause
			// is satisfied or has at least two open slots.
			count := 0
			var unit Literal
			for _, l := range c.literals {
				switch s.LitValue(l) {
				case True:
					count = 2
				case Unknown:
					count++
					unit = l
				}
				if count > 1 {
					break
				}
			}
			switch count {
			case 0:
				s.TotalConflicts++
				return false
			case 1:
				if !s.assign(unit) {
					return false
				}
				s.TotalPropagations++
				changed = true
			}
		}
	}
	return true
}

// moveWatches visits every clause watching the newly falsified literal and
// tries to move that watch to a slot whose literal is not false. A clause
// whose other watched literal is true is left alone. When no replacement
// slot exists the watch stays on the false literal: the clause is then unit
// or conflicting, which the next bcp scan detects.
func (s *Solver) moveWatches(falsified Literal) {
	list := s.watchLists[falsified]
	for i := 0; i < len(list); {
		ci := list[i]
		c := s.clauses[ci]

		cur, other := s.watches[ci].first, s.watches[ci].second
		if c.literals[cur] != falsified {
			cur, other = other, cur
		}
		if s.LitValue(c.literals[other]) == True {
			i++
			continue
		}

		moved := false
		for j := range c.literals {
			if j == cur || j == other || s.LitValue(c.literals[j]) == False {
				continue
			}
			if s.watches[ci].first == cur {
				s.watches[ci].first = j
			} else {
				s.watches[ci].second = j
			}
			list[i] = list[len(list)-1]
			list = list[:len(list)-1]
			s.watchLists[c.literals[j]] = append(s.watchLists[c.literals[j]], ci)
			moved = true
			break
		}
		if !moved {
			i++
		}
	}
	s.watchLists[falsified] = list
}
