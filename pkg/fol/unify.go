package fol

// Pair is an unordered unification obligation (u, v) for Unify.
type Pair struct {
	Left, Right Term
}

// Unify implements Robinson unification with occurs check, per
// spec.md §4.4. It returns the most general unifier for the given
// work list of term pairs, or ok=false if no unifier exists.
func Unify(pairs []Pair) (Substitution, bool) {
	work := append([]Pair(nil), pairs...)
	result := NewSubstitution()

	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]
		u, v := result.ApplyToTerm(p.Left), result.ApplyToTerm(p.Right)

		if u.Equal(v) {
			continue
		}

		if u.Kind() == Variable || v.Kind() == Variable {
			var x Symbol
			var t Term
			if u.Kind() == Variable {
				x, t = u.Symbol(), v
			} else {
				x, t = v.Symbol(), u
			}

			if t.IsFreeVariable(x) {
				return NewSubstitution(), false
			}

			result = result.Compose(x, t)
			continue
		}

		if u.Kind() == Constant || v.Kind() == Constant || !u.Symbol().Equal(v.Symbol()) {
			return NewSubstitution(), false
		}

		// Same Operation symbol, necessarily equal arity.
		ua, va := u.Args(), v.Args()
		for i := 0; i < len(ua); i++ {
			work = append(work, Pair{Left: ua[i], Right: va[i]})
		}
	}

	return result, true
}

// UnifyTerms is a convenience wrapper around Unify for the common
// two-term case.
func UnifyTerms(u, v Term) (Substitution, bool) {
	return Unify([]Pair{{Left: u, Right: v}})
}
