package fol

import "testing"

func TestSystemIsRefutedOnEmpty(t *testing.T) {
	if !NewSystem().IsRefuted() {
		t.Fatalf("the empty system should report IsRefuted")
	}
	g := NewGoal(MustRelation(FreshRelation(0)))
	if NewSystem(g).IsRefuted() {
		t.Fatalf("a system with a goal should not be refuted")
	}
}

func TestSystemHasEmptyGoal(t *testing.T) {
	if !NewSystem(NewGoal()).HasEmptyGoal() {
		t.Fatalf("expected the empty goal to be detected")
	}
	g := NewGoal(MustRelation(FreshRelation(0)))
	if NewSystem(g).HasEmptyGoal() {
		t.Fatalf("a non-empty goal should not count as the empty goal")
	}
}

func TestSystemDeduplicatesGoals(t *testing.T) {
	g := NewGoal(MustRelation(FreshRelation(0)))
	s := NewSystem(g, g)
	if s.Len() != 1 {
		t.Fatalf("expected duplicate goals collapsed, got len %d", s.Len())
	}
}

func TestSystemApplySubstitutesThroughGoals(t *testing.T) {
	v := FreshVariable()
	c := MustConstant(FreshConstant())
	sym := FreshRelation(1)

	g := NewGoal(MustRelation(sym, MustVariable(v)))
	sys := NewSystem(g)

	out := sys.Apply(NewSubstitution().Extend(v, c))
	want := NewSystem(NewGoal(MustRelation(sym, c)))
	if !out.Equal(want) {
		t.Fatalf("expected %v, got %v", want, out)
	}
}

func TestWithGoalsIsAnAliasForNewSystem(t *testing.T) {
	g := NewGoal(MustRelation(FreshRelation(0)))
	if !WithGoals([]Goal{g}).Equal(NewSystem(g)) {
		t.Fatalf("WithGoals should behave exactly like NewSystem")
	}
}
