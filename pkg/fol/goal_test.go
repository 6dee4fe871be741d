package fol

import "testing"

func TestGoalDeduplicatesOnConstruction(t *testing.T) {
	f := MustRelation(FreshRelation(0))
	g := NewGoal(f, f, f)
	if g.Len() != 1 {
		t.Fatalf("expected duplicates collapsed, got len %d", g.Len())
	}
}

func TestGoalAddAndWithoutAreValueSemantics(t *testing.T) {
	f1 := MustRelation(FreshRelation(0))
	f2 := MustRelation(FreshRelation(0))
	g := NewGoal(f1)

	g2 := g.Add(f2)
	if g.Len() != 1 {
		t.Fatalf("Add must not mutate the receiver")
	}
	if g2.Len() != 2 {
		t.Fatalf("expected the new goal to contain both formulas")
	}

	g3 := g2.Without(f1)
	if g3.Len() != 1 || !g3.Contains(f2) {
		t.Fatalf("Without should remove exactly f1")
	}
}

func TestGoalIsStrictSupersetOf(t *testing.T) {
	f1 := MustRelation(FreshRelation(0))
	f2 := MustRelation(FreshRelation(0))

	small := NewGoal(f1)
	big := NewGoal(f1, f2)

	if !big.IsStrictSupersetOf(small) {
		t.Fatalf("big should be a strict superset of small")
	}
	if small.IsStrictSupersetOf(big) {
		t.Fatalf("small cannot be a strict superset of big")
	}
	if big.IsStrictSupersetOf(big) {
		t.Fatalf("a goal is not a strict superset of itself")
	}
}

func TestGoalHasFalse(t *testing.T) {
	g := NewGoal(MustRelation(FreshRelation(0)), FalseFormula())
	if !g.HasFalse() {
		t.Fatalf("expected HasFalse to find the False member")
	}
	if NewGoal(TrueFormula()).HasFalse() {
		t.Fatalf("a goal without False should report HasFalse=false")
	}
}

func TestGoalReplace(t *testing.T) {
	f1 := MustRelation(FreshRelation(0))
	f2 := MustRelation(FreshRelation(0))
	f3 := MustRelation(FreshRelation(0))

	g := NewGoal(f1).Replace(f1, f2, f3)
	if g.Len() != 2 || !g.Contains(f2) || !g.Contains(f3) || g.Contains(f1) {
		t.Fatalf("Replace should remove f1 and add f2, f3: got %v", g)
	}
}

func TestGoalApplySubstitutesThroughMembers(t *testing.T) {
	v := FreshVariable()
	c := MustConstant(FreshConstant())
	sym := FreshRelation(1)
	g := NewGoal(MustRelation(sym, MustVariable(v)))

	out := g.Apply(NewSubstitution().Extend(v, c))
	want := NewGoal(MustRelation(sym, c))
	if !out.Equal(want) {
		t.Fatalf("expected %v, got %v", want, out)
	}
}

func TestGoalEqualIgnoresOrder(t *testing.T) {
	f1 := MustRelation(FreshRelation(0))
	f2 := MustRelation(FreshRelation(0))

	a := NewGoal(f1, f2)
	b := NewGoal(f2, f1)
	if !a.Equal(b) {
		t.Fatalf("goal equality should be order-independent")
	}
}
