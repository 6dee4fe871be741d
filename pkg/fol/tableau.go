package fol

import "context"

// maxUnificationDepth bounds the recursion depth of the unification
// closure step (spec.md §4.7 step 6). The calculus is not guaranteed
// to terminate on arbitrary first-order input when γ-instantiation
// diverges; this cap turns runaway search into a clean "not proved"
// instead of an unbounded recursion.
const maxUnificationDepth = 64

// ConcludeContradiction is the tableau engine's top-level driver
// (spec.md §4.7): it runs supergoal pruning, literal reduction,
// α/β/γ/δ expansion, inequality propagation, equivalence-class
// bookkeeping and unification-driven closure to a fixed point, and
// reports whether the system refutes to ⊥.
func ConcludeContradiction(sys System) bool {
	return concludeContradiction(sys, 0)
}

// concludeContradictionContext is the context-aware entry point used
// by Theory.DrawContext. It checks ctx only between outer pipeline
// iterations and before descending into unification closure, since the
// core itself never suspends on I/O (spec.md §5); a cancelled context
// surfaces as an error rather than a silently wrong answer.
func concludeContradictionContext(ctx context.Context, sys System, depth int) (bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		before := sys

		sys = removeSupergoals(sys)
		sys = systemToLiterals(sys)
		sys = removeSupergoals(sys)
		sys = produceInequalities(sys)
		sys = removeSupergoals(sys)
		sys = removeEqualityInequalityContradictions(sys)

		if sys.Equal(before) {
			break
		}
	}

	if sys.IsRefuted() {
		return true, nil
	}

	if depth >= maxUnificationDepth {
		return false, nil
	}

	if err := ctx.Err(); err != nil {
		return false, err
	}

	return unificationClosureContext(ctx, sys, depth)
}

func concludeContradiction(sys System, depth int) bool {
	for {
		before := sys

		sys = removeSupergoals(sys)
		sys = systemToLiterals(sys)
		sys = removeSupergoals(sys)
		sys = produceInequalities(sys)
		sys = removeSupergoals(sys)
		sys = removeEqualityInequalityContradictions(sys)

		if sys.Equal(before) {
			break
		}
	}

	if sys.IsRefuted() {
		return true
	}

	if depth >= maxUnificationDepth {
		return false
	}

	return unificationClosure(sys, depth)
}

// removeSupergoals drops any goal that is a strict superset of another
// surviving goal (spec.md §4.7 step 1).
func removeSupergoals(sys System) System {
	goals := sys.Goals()
	keep := make([]bool, len(goals))
	for i := range goals {
		keep[i] = true
	}
	for i := range goals {
		for j := range goals {
			if i == j {
				continue
			}
			if goals[i].IsStrictSupersetOf(goals[j]) {
				keep[i] = false
				break
			}
		}
	}
	out := make([]Goal, 0, len(goals))
	for i, g := range goals {
		if keep[i] {
			out = append(out, g)
		}
	}
	return WithGoals(out)
}

// systemToLiterals drives every goal to a literal-only fixed point via
// literal reduction and α/β/γ/δ expansion (spec.md §4.7 step 2).
func systemToLiterals(sys System) System {
	goals := append([]Goal(nil), sys.Goals()...)
	for i := 0; i < len(goals); i++ {
		g, closed := reduceGoalToLiterals(goals[i])
		if closed {
			goals = append(goals[:i], goals[i+1:]...)
			i--
			continue
		}
		if len(g) == 1 {
			goals[i] = g[0]
			continue
		}
		// β split: replace goals[i] with its siblings and keep
		// reducing each of them in turn.
		goals = append(goals[:i], append(g, goals[i+1:]...)...)
		i--
	}
	return WithGoals(goals)
}

// reduceGoalToLiterals reduces a single goal to a literal-only fixed
// point, returning the resulting sibling goals (one element unless a
// β-split happened) or closed=true if the goal collapsed to ⊥.
func reduceGoalToLiterals(g Goal) (siblings []Goal, closed bool) {
	for {
		if g.HasFalse() {
			return nil, true
		}

		if f, ok := findLiteralReduction(g); ok {
			g = applyLiteralReduction(g, f)
			continue
		}

		if f, cl, ok := findAlphaGammaDelta(g); ok {
			g = g.Replace(f, cl...)
			continue
		}

		if f, branches, ok := findBeta(g); ok {
			rest := g.Without(f)
			out := make([]Goal, len(branches))
			for i, b := range branches {
				out[i] = rest.Add(b)
			}
			var all []Goal
			for _, sib := range out {
				sibSiblings, sibClosed := reduceGoalToLiterals(sib)
				if !sibClosed {
					all = append(all, sibSiblings...)
				}
			}
			return all, false
		}

		return []Goal{g}, false
	}
}

// findLiteralReduction looks for ¬¬φ (collapses to φ) or ⊤ (dropped)
// among g's members.
func findLiteralReduction(g Goal) (Formula, bool) {
	for _, f := range g.Formulas() {
		if f.Kind() == True {
			return f, true
		}
		if f.Kind() == Negation && f.Subformulas()[0].Kind() == Negation {
			return f, true
		}
	}
	return Formula{}, false
}

func applyLiteralReduction(g Goal, f Formula) Goal {
	if f.Kind() == True {
		return g.Without(f)
	}
	// ¬¬φ ⇒ φ
	inner := f.Subformulas()[0].Subformulas()[0]
	return g.Replace(f, inner)
}

// findAlphaGammaDelta returns the first α/γ/δ-classified formula in g
// together with its expansion.
func findAlphaGammaDelta(g Goal) (Formula, []Formula, bool) {
	for _, f := range g.Formulas() {
		c := Classify(f)
		switch c.Class {
		case ClassAlpha:
			return f, c.Children, true
		case ClassGamma:
			s := NewSubstitution()
			for _, v := range c.Vars {
				s = s.Extend(v, MustVariable(FreshVariable()))
			}
			return f, []Formula{c.Children[0].Apply(s)}, true
		case ClassDelta:
			s := NewSubstitution()
			for _, v := range c.Vars {
				s = s.Extend(v, MustConstant(FreshConstant()))
			}
			return f, []Formula{c.Children[0].Apply(s)}, true
		}
	}
	return Formula{}, nil, false
}

// findBeta returns the first β-classified formula in g together with
// its branch children.
func findBeta(g Goal) (Formula, []Formula, bool) {
	for _, f := range g.Formulas() {
		c := Classify(f)
		if c.Class == ClassBeta {
			return f, c.Children, true
		}
	}
	return Formula{}, nil, false
}
