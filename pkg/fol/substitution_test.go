package fol

import "testing"

func TestSubstitutionApplyToTermReplacesVariable(t *testing.T) {
	v := FreshVariable()
	c := MustConstant(FreshConstant())
	s := NewSubstitution().Extend(v, c)

	got := s.ApplyToTerm(MustVariable(v))
	if !got.Equal(c) {
		t.Fatalf("expected v replaced by c, got %v", got)
	}
}

func TestSubstitutionApplyToTermLeavesUnboundVariable(t *testing.T) {
	v := FreshVariable()
	s := NewSubstitution()
	got := s.ApplyToTerm(MustVariable(v))
	if !got.Equal(MustVariable(v)) {
		t.Fatalf("unbound variable should be returned unchanged")
	}
}

func TestSubstitutionApplyToTermRecursesIntoOperation(t *testing.T) {
	v := FreshVariable()
	c := MustConstant(FreshConstant())
	op := FreshOperation(1)
	s := NewSubstitution().Extend(v, c)

	got := s.ApplyToTerm(MustOperation(op, MustVariable(v)))
	want := MustOperation(op, c)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSubstitutionComposeRewritesExistingRange(t *testing.T) {
	v1, v2 := FreshVariable(), FreshVariable()
	c := MustConstant(FreshConstant())

	s := NewSubstitution().Compose(v1, MustVariable(v2))
	s = s.Compose(v2, c)

	got, _ := s.Lookup(v1)
	if !got.Equal(c) {
		t.Fatalf("expected v1's range term rewritten to c, got %v", got)
	}
}

func TestSubstitutionRestrictNarrowsDomain(t *testing.T) {
	v1, v2 := FreshVariable(), FreshVariable()
	c := MustConstant(FreshConstant())
	s := NewSubstitution().Extend(v1, c).Extend(v2, c)

	r := s.Restrict([]Symbol{v1})
	if len(r.Domain()) != 1 {
		t.Fatalf("expected restricted domain of size 1, got %d", len(r.Domain()))
	}
	if _, ok := r.Lookup(v2); ok {
		t.Fatalf("v2 should not survive Restrict to {v1}")
	}
}

func TestSubstitutionExtendDoesNotMutateReceiver(t *testing.T) {
	v := FreshVariable()
	c := MustConstant(FreshConstant())

	base := NewSubstitution()
	extended := base.Extend(v, c)

	if !base.IsEmpty() {
		t.Fatalf("Extend must not mutate its receiver")
	}
	if extended.IsEmpty() {
		t.Fatalf("Extend should produce a non-empty substitution")
	}
}
