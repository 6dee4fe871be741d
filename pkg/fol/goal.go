package fol

import (
	"sort"
	"strings"
)

// Goal is an unordered set of formulas interpreted as their
// conjunction (spec.md §3). It is kept internally as a slice sorted
// and deduplicated by the formula total order, giving Goal values a
// canonical structural representation -- the Go analogue of the
// original's std::set<Formula>.
type Goal struct {
	formulas []Formula
}

// NewGoal builds a Goal from fs, deduplicating by structural equality.
func NewGoal(fs ...Formula) Goal {
	g := Goal{}
	for _, f := range fs {
		g.formulas = insertSortedFormula(g.formulas, f)
	}
	return g
}

// Formulas returns the goal's members in ascending structural order.
func (g Goal) Formulas() []Formula { return g.formulas }

// Len reports the number of formulas in the goal.
func (g Goal) Len() int { return len(g.formulas) }

// Contains reports whether f is a member of g.
func (g Goal) Contains(f Formula) bool {
	i := sort.Search(len(g.formulas), func(i int) bool { return !g.formulas[i].Less(f) })
	return i < len(g.formulas) && g.formulas[i].Equal(f)
}

// Add returns a new Goal equal to g plus f.
func (g Goal) Add(f Formula) Goal {
	return Goal{formulas: insertSortedFormula(append([]Formula(nil), g.formulas...), f)}
}

// Without returns a new Goal equal to g with f removed, if present.
func (g Goal) Without(f Formula) Goal {
	out := make([]Formula, 0, len(g.formulas))
	for _, x := range g.formulas {
		if !x.Equal(f) {
			out = append(out, x)
		}
	}
	return Goal{formulas: out}
}

// Union returns g ∪ other.
func (g Goal) Union(other Goal) Goal {
	out := append([]Formula(nil), g.formulas...)
	for _, f := range other.formulas {
		out = insertSortedFormula(out, f)
	}
	return Goal{formulas: out}
}

// Replace returns a new Goal with old removed and each of news added;
// the common shape of an α/γ/δ expansion step.
func (g Goal) Replace(old Formula, news ...Formula) Goal {
	out := g.Without(old)
	for _, n := range news {
		out = out.Add(n)
	}
	return out
}

// IsStrictSupersetOf reports whether g contains every formula of other
// and at least one more, the condition supergoal pruning (spec.md
// §4.7 step 1) removes.
func (g Goal) IsStrictSupersetOf(other Goal) bool {
	if len(g.formulas) <= len(other.formulas) {
		return false
	}
	for _, f := range other.formulas {
		if !g.Contains(f) {
			return false
		}
	}
	return true
}

// HasFalse reports whether ⊥ is a member of g, the cheapest possible
// closure witness.
func (g Goal) HasFalse() bool {
	for _, f := range g.formulas {
		if f.Kind() == False {
			return true
		}
	}
	return false
}

// Apply substitutes s through every formula of g.
func (g Goal) Apply(s Substitution) Goal {
	return NewGoal(applyFormulas(s, g.formulas)...)
}

// Compare gives the structural total order over goals, used to keep
// System's goal list canonical.
func (g Goal) Compare(other Goal) int {
	return compareFormulaSlices(g.formulas, other.formulas)
}

// Equal reports whether g and other contain the same formulas.
func (g Goal) Equal(other Goal) bool { return g.Compare(other) == 0 }

// Less reports whether g precedes other in the goal total order.
func (g Goal) Less(other Goal) bool { return g.Compare(other) < 0 }

func (g Goal) String() string {
	parts := make([]string, len(g.formulas))
	for i, f := range g.formulas {
		parts[i] = f.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
