package fol

import "sort"

// Simplify reduces a formula to a normal form by structural recursion
// using the fixed rewrite system of spec.md §4.5, applied bottom-up to
// a fixed point within one call. Simplify is idempotent:
// Simplify(Simplify(f)) is structurally equal to Simplify(f).
func Simplify(f Formula) Formula {
	return f.Simplify()
}

// Simplify is the method form of the package-level Simplify function.
func (f Formula) Simplify() Formula {
	switch f.Kind() {
	case False, True:
		return f
	case Equality:
		return simplifyEquality(f)
	case Disequality:
		return simplifyDisequality(f)
	case Relation:
		return f
	case Negation:
		return simplifyNegation(f)
	case Conjunction, Disjunction:
		return simplifyConjunctionDisjunction(f)
	case Implication:
		return simplifyImplication(f)
	case Equivalence:
		return simplifyEquivalence(f)
	case Universal, Existential:
		return simplifyQuantifier(f)
	default:
		return f
	}
}

func dedupeTerms(terms []Term) []Term {
	cp := append([]Term(nil), terms...)
	sort.Slice(cp, func(i, j int) bool { return cp[i].Less(cp[j]) })
	out := cp[:0]
	for i, t := range cp {
		if i == 0 || !out[len(out)-1].Equal(t) {
			out = append(out, t)
		}
	}
	return out
}

func simplifyEquality(f Formula) Formula {
	terms := f.Terms()
	if len(terms) <= 1 {
		return TrueFormula()
	}
	unique := dedupeTerms(terms)
	if len(unique) != len(terms) {
		return NewEquality(unique...).Simplify()
	}
	return f
}

func simplifyDisequality(f Formula) Formula {
	terms := f.Terms()
	if len(terms) <= 1 {
		return TrueFormula()
	}
	for i := 0; i < len(terms); i++ {
		for j := i + 1; j < len(terms); j++ {
			if terms[i].Equal(terms[j]) {
				return FalseFormula()
			}
		}
	}
	return f
}

func simplifyNegation(f Formula) Formula {
	arg := f.Subformulas()[0].Simplify()

	switch arg.Kind() {
	case False:
		return TrueFormula()
	case True:
		return FalseFormula()
	case Negation:
		return arg.Subformulas()[0]
	case Equality:
		if len(arg.Terms()) == 2 {
			return NewDisequality(arg.Terms()...)
		}
	case Disequality:
		if len(arg.Terms()) == 2 {
			return NewEquality(arg.Terms()...)
		}
	case Conjunction, Disjunction:
		subs := arg.Subformulas()
		negated := make([]Formula, len(subs))
		for i, s := range subs {
			negated[i] = NewNegation(s).Simplify()
		}
		if arg.Kind() == Conjunction {
			return newConnective(Disjunction, negated)
		}
		return newConnective(Conjunction, negated)
	case Implication:
		if len(arg.Subformulas()) == 2 {
			f1 := arg.Subformulas()[0]
			f2 := arg.Subformulas()[1]
			return NewConjunction(f1, NewNegation(f2).Simplify())
		}
	case Universal:
		body := NewNegation(arg.Subformulas()[0]).Simplify()
		return MustExistential(arg.Vars(), body)
	case Existential:
		body := NewNegation(arg.Subformulas()[0]).Simplify()
		return MustUniversal(arg.Vars(), body)
	}

	return NewNegation(arg)
}

// insertSortedFormula inserts f into a slice kept sorted and deduped by
// the formula total order, mirroring the std::set<Formula> the
// original implementation builds for the same rewrite steps.
func insertSortedFormula(set []Formula, f Formula) []Formula {
	i := sort.Search(len(set), func(i int) bool { return !set[i].Less(f) })
	if i < len(set) && set[i].Equal(f) {
		return set
	}
	set = append(set, Formula{})
	copy(set[i+1:], set[i:])
	set[i] = f
	return set
}

func simplifyConjunctionDisjunction(f Formula) Formula {
	isConjunction := f.Kind() == Conjunction
	var set []Formula

	for _, sub := range f.Subformulas() {
		s := sub.Simplify()
		switch {
		case s.Kind() == f.Kind():
			for _, inner := range s.Subformulas() {
				set = insertSortedFormula(set, inner)
			}
		case s.Kind() == True || s.Kind() == False:
			if isConjunction != (s.Kind() == True) {
				// Annihilating element: False for ∧, True for ∨.
				return s
			}
			// Identity element: True for ∧, False for ∨ -- dropped.
		default:
			set = insertSortedFormula(set, s)
		}
	}

	if len(set) == 0 {
		if isConjunction {
			return TrueFormula()
		}
		return FalseFormula()
	}
	if len(set) == 1 {
		return set[0]
	}
	return newConnective(f.Kind(), set)
}

func simplifyImplication(f Formula) Formula {
	orig := f.Subformulas()
	fs := make([]Formula, len(orig))
	hasFalse, hasTrue := false, false
	falsePos, truePos := -1, -1

	for i, sub := range orig {
		s := sub.Simplify()
		fs[i] = s
		if s.Kind() == False {
			hasFalse = true
			falsePos = i
		}
		if !hasTrue && s.Kind() == True {
			hasTrue = true
			truePos = i
		}
	}

	if hasFalse && hasTrue && truePos < falsePos {
		return FalseFormula()
	}

	begin := 0
	if hasFalse {
		begin = falsePos + 1
	}
	end := len(fs)
	if hasTrue {
		end = truePos
	}

	var result []Formula
	if hasTrue {
		for i := truePos + 1; i < len(fs); i++ {
			if fs[i].Kind() != True {
				result = append(result, fs[i])
			}
		}
	}
	if hasFalse {
		for i := 0; i < falsePos; i++ {
			if fs[i].Kind() != False {
				result = append(result, NewNegation(fs[i]).Simplify())
			}
		}
	}

	middle := fs[begin:end]
	var blocks []Formula
	i := 0
	for i < len(middle) {
		j := i + 1
		for j < len(middle) && middle[j].Equal(middle[i]) {
			j++
		}
		if j-i == 1 {
			blocks = append(blocks, middle[i])
		} else {
			blocks = append(blocks, NewEquivalence(middle[i:j]...))
		}
		i = j
	}

	if len(blocks) == len(fs) {
		// Nothing to extract (no leading ⊥ / trailing ⊤) and no
		// contiguous middle collapse: the chain is unchanged in shape.
		return NewImplication(blocks...)
	}

	switch len(blocks) {
	case 0:
		// Nothing survives in the middle.
	case 1:
		result = append(result, TrueFormula())
	default:
		result = append(result, NewImplication(blocks...))
	}

	// The generic Conjunction rewrite absorbs/dedupes `result`,
	// guaranteeing idempotence (spec.md §8 item 5) even though the
	// result slice can itself mix True/False/ordinary formulas.
	return NewConjunction(result...).Simplify()
}

func simplifyEquivalence(f Formula) Formula {
	hasFalse, hasTrue := false, false
	var args []Formula

	for _, sub := range f.Subformulas() {
		s := sub.Simplify()
		switch s.Kind() {
		case True:
			hasTrue = true
		case False:
			hasFalse = true
		default:
			args = insertSortedFormula(args, s)
		}
	}

	if len(args) == 0 {
		if hasFalse && hasTrue {
			return FalseFormula()
		}
		return TrueFormula()
	}

	if hasFalse && hasTrue {
		return FalseFormula()
	}

	if hasFalse {
		negated := make([]Formula, len(args))
		for i, a := range args {
			negated[i] = NewNegation(a).Simplify()
		}
		return NewConjunction(negated...).Simplify()
	}

	if hasTrue {
		return NewConjunction(args...).Simplify()
	}

	if len(args) == 1 {
		return TrueFormula()
	}

	return newConnective(Equivalence, args)
}

func containsSymbol(vars []Symbol, v Symbol) bool {
	for _, w := range vars {
		if w.Equal(v) {
			return true
		}
	}
	return false
}

func simplifyQuantifier(f Formula) Formula {
	body := f.Subformulas()[0].Simplify()
	free := body.freeVarSet()

	var newVars []Symbol
	for _, v := range f.Vars() {
		if free.contains(v) {
			newVars = append(newVars, v)
		}
	}

	sub := body
	if body.Kind() == f.Kind() {
		for _, w := range body.Vars() {
			if !containsSymbol(newVars, w) {
				newVars = append(newVars, w)
			}
		}
		sub = body.Subformulas()[0]
	}

	if len(newVars) == 0 {
		return sub
	}
	if f.Kind() == Universal {
		return MustUniversal(newVars, sub)
	}
	return MustExistential(newVars, sub)
}
