package fol

import "testing"

func TestFormulaEqualIsStructural(t *testing.T) {
	sym := FreshRelation(1)
	c := MustConstant(FreshConstant())

	a := MustRelation(sym, c)
	b := MustRelation(sym, c)

	if !a.Equal(b) {
		t.Fatalf("structurally identical relations should be Equal")
	}
	if a.Hash() != b.Hash() {
		t.Fatalf("Equal formulas must hash equal")
	}
}

func TestFormulaCompareOrdersByKindThenContent(t *testing.T) {
	if FalseFormula().Compare(TrueFormula()) >= 0 {
		t.Fatalf("False should sort before True")
	}
	if TrueFormula().Compare(FalseFormula()) <= 0 {
		t.Fatalf("Compare should be antisymmetric")
	}
}

func TestQuantifierDegeneratesOnEmptyBinder(t *testing.T) {
	body := MustRelation(FreshRelation(0))
	f := MustUniversal(nil, body)
	if !f.Equal(body) {
		t.Fatalf("empty binder list should degenerate to the body")
	}
}

func TestQuantifierRejectsDuplicateBinder(t *testing.T) {
	v := FreshVariable()
	body := MustRelation(FreshRelation(0))
	if _, err := NewUniversal([]Symbol{v, v}, body); err == nil {
		t.Fatalf("expected an error for a repeated binder")
	}
}

func TestQuantifierRejectsNonVariableBinder(t *testing.T) {
	c := FreshConstant()
	body := MustRelation(FreshRelation(0))
	if _, err := NewUniversal([]Symbol{c}, body); err == nil {
		t.Fatalf("expected an error for a non-Variable binder")
	}
}

func TestFreeVariablesExcludesBoundVars(t *testing.T) {
	v := FreshVariable()
	vt := MustVariable(v)
	sym := FreshRelation(1)
	body := MustRelation(sym, vt)
	f := MustUniversal([]Symbol{v}, body)

	if len(f.FreeVariables()) != 0 {
		t.Fatalf("bound variable must not appear free in the quantified formula")
	}
	if len(body.FreeVariables()) != 1 {
		t.Fatalf("the unquantified body should still have v free")
	}
}

func TestNewRelationRejectsArityMismatch(t *testing.T) {
	sym := FreshRelation(2)
	if _, err := NewRelation(sym, MustConstant(FreshConstant())); err == nil {
		t.Fatalf("expected an arity error")
	}
}
