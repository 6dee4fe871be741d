package fol

import "sort"

// Substitution is a finite mapping from Variable symbols to Term
// values (spec.md §3). It is immutable: Extend returns a new
// Substitution rather than mutating the receiver, mirroring the
// immutability of Term and Formula values it is applied to.
type Substitution struct {
	bindings map[int64]Term
}

// NewSubstitution returns the empty substitution.
func NewSubstitution() Substitution {
	return Substitution{bindings: map[int64]Term{}}
}

// substitutionOf builds a Substitution from an explicit variable/term
// map.
func substitutionOf(m map[Symbol]Term) Substitution {
	s := NewSubstitution()
	for v, t := range m {
		s.bindings[v.ID()] = t
	}
	return s
}

// singleton builds the one-binding substitution {v ↦ t}.
func singleton(v Symbol, t Term) Substitution {
	return Substitution{bindings: map[int64]Term{v.ID(): t}}
}

// IsEmpty reports whether the substitution has no bindings.
func (s Substitution) IsEmpty() bool { return len(s.bindings) == 0 }

// Lookup returns the term bound to v, if any.
func (s Substitution) Lookup(v Symbol) (Term, bool) {
	t, ok := s.bindings[v.ID()]
	return t, ok
}

// Domain returns the substitution's domain as an ascending slice of
// Variable symbols.
func (s Substitution) Domain() []Symbol {
	ids := make([]int64, 0, len(s.bindings))
	for id := range s.bindings {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]Symbol, len(ids))
	for i, id := range ids {
		out[i] = Symbol{kind: Variable, id: id}
	}
	return out
}

func (s Substitution) clone() Substitution {
	m := make(map[int64]Term, len(s.bindings))
	for k, v := range s.bindings {
		m[k] = v
	}
	return Substitution{bindings: m}
}

// Extend returns a new substitution equal to s plus the binding
// v ↦ t. It does not rewrite s's existing range terms; use Compose for
// that (the behavior the unifier of spec.md §4.4 needs).
func (s Substitution) Extend(v Symbol, t Term) Substitution {
	cp := s.clone()
	cp.bindings[v.ID()] = t
	return cp
}

// Compose implements the unifier's binding step from spec.md §4.4:
// "compose the current result with {x ↦ t} (apply the new binding to
// every range term already in the result, then insert)".
func (s Substitution) Compose(x Symbol, t Term) Substitution {
	single := singleton(x, t)
	updated := make(map[int64]Term, len(s.bindings)+1)
	for id, term := range s.bindings {
		updated[id] = single.ApplyToTerm(term)
	}
	updated[x.ID()] = t
	return Substitution{bindings: updated}
}

// Restrict returns the substitution narrowed to the given domain
// variables, per spec.md §4.3 step 1 of formula substitution.
func (s Substitution) Restrict(vars []Symbol) Substitution {
	out := NewSubstitution()
	for _, v := range vars {
		if t, ok := s.Lookup(v); ok {
			out.bindings[v.ID()] = t
		}
	}
	return out
}

// ApplyToTerm applies the substitution homomorphically, as specified
// by spec.md §3: atoms are replaced pointwise, operation arguments are
// substituted recursively.
func (s Substitution) ApplyToTerm(t Term) Term {
	switch t.Kind() {
	case Variable:
		if repl, ok := s.Lookup(t.Symbol()); ok {
			return repl
		}
		return t
	case Constant:
		return t
	case Operation:
		args := t.Args()
		newArgs := make([]Term, len(args))
		changed := false
		for i, a := range args {
			na := s.ApplyToTerm(a)
			newArgs[i] = na
			if !na.Equal(a) {
				changed = true
			}
		}
		if !changed {
			return t
		}
		return MustOperation(t.Symbol(), newArgs...)
	default:
		return t
	}
}
