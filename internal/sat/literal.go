package sat

import "fmt"

// Literal represents a literal, which either represents a boolean variable
// or its negation. A literal is encoded as twice its variable ID, plus one
// for negations, so the two literals of a variable are adjacent and the
// encoding doubles as an index into per-literal tables.
type Literal int

// PositiveLiteral returns the literal representing the variable's value.
func PositiveLiteral(varID int) Literal {
	return Literal(varID * 2)
}

// NegativeLiteral returns the literal representing the variable's negation.
func NegativeLiteral(varID int) Literal {
	return Literal(varID*2 + 1)
}

// VarID returns the ID of the literal's variable.
func (l Literal) VarID() int {
	return int(l) / 2
}

// IsPositive returns true if and only if the literal represents the value
// of its boolean variable (i.e. not its negation).
func (l Literal) IsPositive() bool {
	return l&1 == 0
}

// Opposite returns the opposite literal.
func (l Literal) Opposite() Literal {
	return l ^ 1
}

func (l Literal) String() string {
	if l.IsPositive() {
		return fmt.Sprintf("%d", l.VarID())
	}
	return fmt.Sprintf("!%d", l.VarID())
}
