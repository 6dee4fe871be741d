package fol

import "testing"

func TestNewVariableRejectsNonVariableSymbol(t *testing.T) {
	if _, err := NewVariable(FreshConstant()); err == nil {
		t.Fatalf("expected an error constructing a variable term from a constant symbol")
	}
}

func TestNewOperationRejectsArityMismatch(t *testing.T) {
	op := FreshOperation(2)
	c := MustConstant(FreshConstant())
	if _, err := NewOperation(op, c); err == nil {
		t.Fatalf("expected an arity error for a binary operation given one argument")
	}
}

func TestNewOperationRejectsInvalidArgument(t *testing.T) {
	op := FreshOperation(1)
	if _, err := NewOperation(op, Term{}); err == nil {
		t.Fatalf("expected an error for a zero-value Term argument")
	}
}

func TestTermEqualIsStructural(t *testing.T) {
	sym := FreshOperation(1)
	v := FreshVariable()
	a := MustOperation(sym, MustVariable(v))
	b := MustOperation(sym, MustVariable(v))
	if !a.Equal(b) {
		t.Fatalf("two operation terms over the same symbol and args should be equal")
	}
}

func TestTermCompareOrdersBySymbolThenArgs(t *testing.T) {
	op := FreshOperation(1)
	c1, c2 := MustConstant(FreshConstant()), MustConstant(FreshConstant())
	a := MustOperation(op, c1)
	b := MustOperation(op, c2)
	if a.Compare(b) == 0 {
		t.Fatalf("distinct arguments under the same symbol should compare non-zero")
	}
	ab, ba := a.Compare(b), b.Compare(a)
	if (ab < 0) == (ba < 0) {
		t.Fatalf("Compare should be antisymmetric: a.Compare(b)=%d b.Compare(a)=%d", ab, ba)
	}
}

func TestTermHashIsStableAndCollisionFreeForDistinctSymbols(t *testing.T) {
	c1 := MustConstant(FreshConstant())
	c2 := MustConstant(FreshConstant())
	if c1.Hash() != c1.Hash() {
		t.Fatalf("Hash should be stable across calls")
	}
	if c1.Hash() == c2.Hash() {
		t.Fatalf("distinct fresh constants should not collide (not guaranteed in general, but expected here)")
	}
}

func TestTermFreeVariablesOfOperationUnionsArgs(t *testing.T) {
	op := FreshOperation(2)
	v1, v2 := FreshVariable(), FreshVariable()
	term := MustOperation(op, MustVariable(v1), MustVariable(v2))

	fv := term.FreeVariables()
	if len(fv) != 2 {
		t.Fatalf("expected both variables free in the operation term, got %v", fv)
	}
}

func TestTermFreeVariablesOfConstantIsEmpty(t *testing.T) {
	c := MustConstant(FreshConstant())
	if len(c.FreeVariables()) != 0 {
		t.Fatalf("a constant has no free variables")
	}
}

func TestTermIsFreeVariable(t *testing.T) {
	v := FreshVariable()
	other := FreshVariable()
	term := MustVariable(v)
	if !term.IsFreeVariable(v) {
		t.Fatalf("v should be free in itself")
	}
	if term.IsFreeVariable(other) {
		t.Fatalf("an unrelated variable should not be reported free")
	}
}

func TestTermStringRendersOperationApplication(t *testing.T) {
	op := FreshOperation(1)
	c := MustConstant(FreshConstant())
	got := MustOperation(op, c).String()
	if len(got) == 0 {
		t.Fatalf("expected a non-empty rendering")
	}
}
