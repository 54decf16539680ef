package sat

import "testing"

func TestLiteral(t *testing.T) {
	tests := []struct {
		l        Literal
		varID    int
		positive bool
		str      string
	}{
		{PositiveLiteral(0), 0, true, "0"},
		{NegativeLiteral(0), 0, false, "!0"},
		{PositiveLiteral(7), 7, true, "7"},
		{NegativeLiteral(7), 7, false, "!7"},
	}
	for _, tt := range tests {
		if got := tt.l.VarID(); got != tt.varID {
			t.Errorf("VarID(%d): want %d, got %d", tt.l, tt.varID, got)
		}
		if got := tt.l.IsPositive(); got != tt.positive {
			t.Errorf("IsPositive(%d): want %v, got %v", tt.l, tt.positive, got)
		}
		if got := tt.l.Opposite().Opposite(); got != tt.l {
			t.Errorf("Opposite(Opposite(%d)): want %d, got %d", tt.l, tt.l, got)
		}
		if got := tt.l.Opposite().VarID(); got != tt.varID {
			t.Errorf("Opposite(%d).VarID(): want %d, got %d", tt.l, tt.varID, got)
		}
		if got := tt.l.String(); got != tt.str {
			t.Errorf("String(%d): want %q, got %q", tt.l, tt.str, got)
		}
	}
}

func TestLift(t *testing.T) {
	if got := Lift(true); got != True {
		t.Errorf("Lift(true): want true, got %s", got)
	}
	if got := Lift(false); got != False {
		t.Errorf("Lift(false): want false, got %s", got)
	}
}

func TestLBool_Opposite(t *testing.T) {
	tests := []struct {
		b    LBool
		want LBool
	}{
		{True, False},
		{False, True},
		{Unknown, Unknown},
	}
	for _, tt := range tests {
		if got := tt.b.Opposite(); got != tt.want {
			t.Errorf("Opposite(%s): want %s, got %s", tt.b, tt.want, got)
		}
	}
}

func TestLBool_String(t *testing.T) {
	tests := []struct {
		b    LBool
		want string
	}{
		{True, "true"},
		{False, "false"},
		{Unknown, "unknown"},
	}
	for _, tt := range tests {
		if got := tt.b.String(); got != tt.want {
			t.Errorf("String(%d): want %q, got %q", tt.b, tt.want, got)
		}
	}
}
