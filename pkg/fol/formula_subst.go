package fol

// Apply applies a substitution to a formula, capture-avoiding at every
// binder, exactly as specified in spec.md §4.3:
//
//  1. S = s restricted to free_vars(formula).
//  2. T = union of free_vars(S(v)) for v in dom(S) ∩ free_vars(formula).
//  3. For each bound variable v: if v ∈ T, rename it to a fresh
//     variable in the emitted binder list and extend S accordingly;
//     otherwise pass it through unchanged.
//  4. Recurse into the body under the augmented S.
func (f Formula) Apply(s Substitution) Formula {
	switch f.Kind() {
	case False, True:
		return f
	case Equality:
		return NewEquality(applyTerms(s, f.Terms())...)
	case Disequality:
		return NewDisequality(applyTerms(s, f.Terms())...)
	case Relation:
		return MustRelation(f.RelationSymbol(), applyTerms(s, f.Terms())...)
	case Negation:
		return NewNegation(f.Subformulas()[0].Apply(s))
	case Conjunction, Disjunction, Implication, Equivalence:
		return newConnective(f.Kind(), applyFormulas(s, f.Subformulas()))
	case Universal, Existential:
		return f.applyQuantifier(s)
	default:
		return f
	}
}

func applyTerms(s Substitution, ts []Term) []Term {
	out := make([]Term, len(ts))
	for i, t := range ts {
		out[i] = s.ApplyToTerm(t)
	}
	return out
}

func applyFormulas(s Substitution, fs []Formula) []Formula {
	out := make([]Formula, len(fs))
	for i, g := range fs {
		out[i] = g.Apply(s)
	}
	return out
}

func (f Formula) applyQuantifier(s Substitution) Formula {
	fv := f.freeVarSet()
	restricted := s.Restrict(fv.slice())

	var t varSet
	for _, v := range restricted.Domain() {
		bound, _ := restricted.Lookup(v)
		t = t.union(bound.freeVarSet())
	}

	body := f.Subformulas()[0]
	augmented := restricted
	newVars := make([]Symbol, len(f.Vars()))
	for i, v := range f.Vars() {
		if t.contains(v) {
			fresh := FreshVariable()
			augmented = augmented.Extend(v, MustVariable(fresh))
			newVars[i] = fresh
		} else {
			newVars[i] = v
		}
	}

	newBody := body.Apply(augmented)
	if f.Kind() == Universal {
		return MustUniversal(newVars, newBody)
	}
	return MustExistential(newVars, newBody)
}
