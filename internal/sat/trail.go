package sat

// assign makes literal l true, records it on the trail, and updates the
// watch index for the newly falsified opposite literal. If l's variable is
// already assigned, assign changes nothing and reports whether the existing
// value agrees with l. Decisions, unit propagation, and the pure literal
// pass all go through this single entry point.
func (s *Solver) assign(l Literal) bool {
	switch s.LitValue(l) {
	case True:
		return true
	case False:
		return false
	}
	s.assigns[l.VarID()] = Lift(l.IsPositive())
	s.trail = append(s.trail, l)
	s.moveWatches(l.Opposite())
	return true
}

// snapshot returns a mark identifying the current trail state.
func (s *Solver) snapshot() int {
	return len(s.trail)
}

// rollback undoes every assignment made after mark, most recent first.
func (s *Solver) rollback(mark int) {
	for len(s.trail) > mark {
		s.undoOne()
	}
}

func (s *Solver) undoOne() {
	l := s.trail[len(s.trail)-1]
	v := l.VarID()
	s.assigns[v] = Unknown
	s.trail = s.trail[:len(s.trail)-1]
	if s.order != nil {
		s.order.Undo(v)
	}
}
