package sat

import "strings"

// Clause is a disjunction of literals. Clauses are immutable once the
// solver is built: the preprocessor fixes their position in the clause
// slice, and that position identifies them in the watch index.
type Clause struct {
	literals []Literal
}

func newClause(literals []Literal) *Clause {
	return &Clause{literals: literals}
}

// Len returns the number of literals in the clause.
func (c *Clause) Len() int {
	return len(c.literals)
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
