package fol

import "context"

// termClasses is a union-find over a goal's equality/disequality
// term vocabulary, the congruence witness of spec.md §4.7 step 4. It
// is syntactic, not semantic: congruence is not propagated under
// function symbols beyond the structural rule in produceInequalities.
type termClasses struct {
	terms  []Term
	parent []int
}

func newTermClasses() *termClasses {
	return &termClasses{}
}

func (tc *termClasses) indexOf(t Term) int {
	for i, u := range tc.terms {
		if u.Equal(t) {
			return i
		}
	}
	tc.terms = append(tc.terms, t)
	tc.parent = append(tc.parent, len(tc.parent))
	return len(tc.parent) - 1
}

func (tc *termClasses) find(i int) int {
	for tc.parent[i] != i {
		tc.parent[i] = tc.parent[tc.parent[i]]
		i = tc.parent[i]
	}
	return i
}

func (tc *termClasses) union(a, b Term) {
	ia, ib := tc.find(tc.indexOf(a)), tc.find(tc.indexOf(b))
	if ia != ib {
		tc.parent[ia] = ib
	}
}

func (tc *termClasses) sameClass(a, b Term) bool {
	return tc.find(tc.indexOf(a)) == tc.find(tc.indexOf(b))
}

// classMembers returns every term already known to termClasses that
// shares t's equivalence class, including t itself.
func (tc *termClasses) classMembers(t Term) []Term {
	root := tc.find(tc.indexOf(t))
	var members []Term
	for i, u := range tc.terms {
		if tc.find(i) == root {
			members = append(members, u)
		}
	}
	return members
}

// disequalityConstraint is one pairwise "must differ" obligation drawn
// from a Disequality atom in a goal.
type disequalityConstraint struct {
	A, B Term
}

// equivalenceClasses builds the union-find over every term mentioned
// by an equality or disequality atom of g (spec.md §4.7 step 4),
// together with the disequality constraints it must not violate.
func equivalenceClasses(g Goal) (*termClasses, []disequalityConstraint) {
	tc := newTermClasses()
	var constraints []disequalityConstraint

	for _, f := range g.Formulas() {
		switch f.Kind() {
		case Equality:
			ts := f.Terms()
			for i := 1; i < len(ts); i++ {
				tc.union(ts[0], ts[i])
			}
			for _, t := range ts {
				tc.indexOf(t)
			}
		case Disequality:
			ts := f.Terms()
			for i := 0; i < len(ts); i++ {
				tc.indexOf(ts[i])
				for j := i + 1; j < len(ts); j++ {
					constraints = append(constraints, disequalityConstraint{A: ts[i], B: ts[j]})
				}
			}
		}
	}

	return tc, constraints
}

// removeEqualityInequalityContradictions drops every goal whose
// equivalence classes force two disequality-constrained terms into the
// same class (spec.md §4.7 step 5), which also subsumes the "a
// disequality list with two structurally equal terms closes its goal"
// rule, since structurally equal terms always land in the same class.
func removeEqualityInequalityContradictions(sys System) System {
	out := make([]Goal, 0, sys.Len())
	for _, g := range sys.Goals() {
		tc, constraints := equivalenceClasses(g)
		closed := false
		for _, c := range constraints {
			if tc.sameClass(c.A, c.B) {
				closed = true
				break
			}
		}
		if !closed {
			out = append(out, g)
		}
	}
	return WithGoals(out)
}

// produceInequalities expands the two structural disequality
// consequences of spec.md §4.7 step 3 across every goal of sys.
func produceInequalities(sys System) System {
	out := make([]Goal, 0, sys.Len())
	for _, g := range sys.Goals() {
		branches, closed, changed := inequalityBranches(g)
		switch {
		case closed:
			// Dropped: the goal is contradictory.
		case changed:
			out = append(out, branches...)
		default:
			out = append(out, g)
		}
	}
	return WithGoals(out)
}

func inequalityBranches(g Goal) (branches []Goal, closed bool, changed bool) {
	formulas := g.Formulas()

	for _, f := range formulas {
		if f.Kind() != Disequality || len(f.Terms()) != 2 {
			continue
		}
		a, b := f.Terms()[0], f.Terms()[1]
		if a.Kind() != Operation || b.Kind() != Operation || !a.Symbol().Equal(b.Symbol()) {
			continue
		}
		if sibs, ok := splitOnComponents(g, a.Args(), b.Args()); ok {
			return sibs, false, true
		}
	}

	for _, f := range formulas {
		if f.Kind() != Negation {
			continue
		}
		neg := f.Subformulas()[0]
		if neg.Kind() != Relation {
			continue
		}
		for _, f2 := range formulas {
			if f2.Kind() != Relation || !f2.RelationSymbol().Equal(neg.RelationSymbol()) {
				continue
			}
			if relationArgsEqual(neg, f2) {
				return nil, true, true
			}
			if sibs, ok := splitOnComponents(g, neg.Terms(), f2.Terms()); ok {
				return sibs, false, true
			}
		}
	}

	return nil, false, false
}

func relationArgsEqual(a, b Formula) bool {
	at, bt := a.Terms(), b.Terms()
	for i := range at {
		if !at[i].Equal(bt[i]) {
			return false
		}
	}
	return true
}

// splitOnComponents builds the sibling goals {…, aᵢ ≠ bᵢ} for each
// component index, or reports ok=false if one of them is already
// present in g (the "already implied" pruning of spec.md §4.7 step 3).
func splitOnComponents(g Goal, a, b []Term) (branches []Goal, ok bool) {
	for i := range a {
		if g.Contains(NewDisequality(a[i], b[i])) {
			return nil, false
		}
	}
	out := make([]Goal, len(a))
	for i := range a {
		out[i] = g.Add(NewDisequality(a[i], b[i]))
	}
	return out, true
}

// unificationClosure implements spec.md §4.7 step 6: for every
// disequality atom in a surviving goal, expand each of its two terms
// through the goal's equality-chain equivalence class (equivalenceClasses,
// above) and try to unify every cross-pair the disequality forbids, not
// just the atom's own literal terms — a term equated elsewhere in the
// goal to one side of a disequality can still unify with the other side.
// On success, substitute through the rest of the system and recurse,
// returning true on the first branch that closes.
func unificationClosure(sys System, depth int) bool {
	for _, g := range sys.Goals() {
		tc, _ := equivalenceClasses(g)
		for _, f := range g.Formulas() {
			if f.Kind() != Disequality {
				continue
			}
			terms := f.Terms()
			for i := 0; i < len(terms); i++ {
				for j := i + 1; j < len(terms); j++ {
					classA := tc.classMembers(terms[i])
					classB := tc.classMembers(terms[j])
					for _, qa := range classA {
						for _, qb := range classB {
							sub, ok := UnifyTerms(qa, qb)
							if !ok {
								continue
							}
							residual := make([]Goal, 0, sys.Len())
							for _, other := range sys.Goals() {
								if other.Equal(g) {
									continue
								}
								residual = append(residual, other.Apply(sub))
							}
							if concludeContradiction(WithGoals(residual), depth+1) {
								return true
							}
						}
					}
				}
			}
		}
	}
	return false
}

// unificationClosureContext mirrors unificationClosure but threads a
// context through the recursive descent for Theory.DrawContext.
func unificationClosureContext(ctx context.Context, sys System, depth int) (bool, error) {
	for _, g := range sys.Goals() {
		tc, _ := equivalenceClasses(g)
		for _, f := range g.Formulas() {
			if f.Kind() != Disequality {
				continue
			}
			terms := f.Terms()
			for i := 0; i < len(terms); i++ {
				for j := i + 1; j < len(terms); j++ {
					classA := tc.classMembers(terms[i])
					classB := tc.classMembers(terms[j])
					for _, qa := range classA {
						for _, qb := range classB {
							if err := ctx.Err(); err != nil {
								return false, err
							}
							sub, ok := UnifyTerms(qa, qb)
							if !ok {
								continue
							}
							residual := make([]Goal, 0, sys.Len())
							for _, other := range sys.Goals() {
								if other.Equal(g) {
									continue
								}
								residual = append(residual, other.Apply(sub))
							}
							proved, err := concludeContradictionContext(ctx, WithGoals(residual), depth+1)
							if err != nil {
								return false, err
							}
							if proved {
								return true, nil
							}
						}
					}
				}
			}
		}
	}
	return false, nil
}
