package fol

import "testing"

func TestConcludeContradictionClosesOnComplementaryLiterals(t *testing.T) {
	a := atom()
	g := NewGoal(a, NewNegation(a))
	if !ConcludeContradiction(NewSystem(g)) {
		t.Fatalf("expected {a, not a} to refute")
	}
}

func TestConcludeContradictionSurvivesASingleLiteral(t *testing.T) {
	a := atom()
	g := NewGoal(a)
	if ConcludeContradiction(NewSystem(g)) {
		t.Fatalf("a single literal goal must not refute")
	}
}

func TestConcludeContradictionExpandsAlphaIntoContradiction(t *testing.T) {
	a := atom()
	g := NewGoal(NewConjunction(a, NewNegation(a)))
	if !ConcludeContradiction(NewSystem(g)) {
		t.Fatalf("expected a and not a (inside a conjunction) to refute")
	}
}

func TestConcludeContradictionClosesAllBetaBranches(t *testing.T) {
	a, b := atom(), atom()
	g := NewGoal(NewDisjunction(a, b), NewNegation(a), NewNegation(b))
	if !ConcludeContradiction(NewSystem(g)) {
		t.Fatalf("expected every branch of (a or b), not a, not b to close")
	}
}

func TestConcludeContradictionLeavesOneOpenBetaBranch(t *testing.T) {
	a, b := atom(), atom()
	g := NewGoal(NewDisjunction(a, b), NewNegation(a))
	if ConcludeContradiction(NewSystem(g)) {
		t.Fatalf("the b branch has no contradiction and should stay open")
	}
}

func TestConcludeContradictionClosesViaUnificationOfGammaInstance(t *testing.T) {
	x := FreshVariable()
	sym := FreshRelation(1)
	c := MustConstant(FreshConstant())

	universal := MustUniversal([]Symbol{x}, MustRelation(sym, MustVariable(x)))
	g := NewGoal(universal, NewNegation(MustRelation(sym, c)))

	if !ConcludeContradiction(NewSystem(g)) {
		t.Fatalf("expected forall(x) R(x), not R(c) to refute via unification closure")
	}
}

func TestConcludeContradictionRespectsDeltaWitness(t *testing.T) {
	x := FreshVariable()
	sym := FreshRelation(1)
	c := MustConstant(FreshConstant())

	existential := MustExistential([]Symbol{x}, MustRelation(sym, MustVariable(x)))
	g := NewGoal(existential, NewNegation(MustRelation(sym, c)))

	// A delta witness is a fresh constant, not c itself, so this does not
	// close: the negated instance talks about c, the witness about some
	// other constant entirely.
	if ConcludeContradiction(NewSystem(g)) {
		t.Fatalf("a delta witness distinct from c should not force a contradiction with not R(c)")
	}
}

func TestConcludeContradictionEmptySystemIsTriviallyRefuted(t *testing.T) {
	if !ConcludeContradiction(NewSystem()) {
		t.Fatalf("the empty system should be refuted")
	}
}
