package fol

import (
	"sort"
	"strings"
)

// System is an unordered set of goals interpreted as their disjunction
// (spec.md §3). The empty system is ⊥ (refuted); a system containing
// the empty goal is ⊤. Internally a sorted, deduplicated slice, same
// rationale as Goal.
type System struct {
	goals []Goal
}

// NewSystem builds a System from gs, deduplicating by structural
// equality.
func NewSystem(gs ...Goal) System {
	s := System{}
	for _, g := range gs {
		s.goals = insertSortedGoal(s.goals, g)
	}
	return s
}

func insertSortedGoal(set []Goal, g Goal) []Goal {
	i := sort.Search(len(set), func(i int) bool { return !set[i].Less(g) })
	if i < len(set) && set[i].Equal(g) {
		return set
	}
	set = append(set, Goal{})
	copy(set[i+1:], set[i:])
	set[i] = g
	return set
}

// Goals returns the system's members in ascending structural order.
func (s System) Goals() []Goal { return s.goals }

// Len reports the number of goals in the system.
func (s System) Len() int { return len(s.goals) }

// IsRefuted reports whether s is the empty system (⊥: no surviving
// disjunct, every branch closed).
func (s System) IsRefuted() bool { return len(s.goals) == 0 }

// HasEmptyGoal reports whether s contains the empty goal (⊤: an open
// branch with no remaining obligations -- signals the refutation
// pipeline found no contradiction on that branch).
func (s System) HasEmptyGoal() bool {
	for _, g := range s.goals {
		if g.Len() == 0 {
			return true
		}
	}
	return false
}

// WithGoals returns a new System holding exactly gs (deduplicated,
// sorted); used by each pipeline stage to rebuild the working set.
func WithGoals(gs []Goal) System { return NewSystem(gs...) }

// Apply substitutes s through every goal of sys.
func (sys System) Apply(s Substitution) System {
	out := make([]Goal, len(sys.goals))
	for i, g := range sys.goals {
		out[i] = g.Apply(s)
	}
	return NewSystem(out...)
}

// Compare gives the structural total order over systems.
func (s System) Compare(other System) int {
	for i := 0; i < len(s.goals) && i < len(other.goals); i++ {
		if c := s.goals[i].Compare(other.goals[i]); c != 0 {
			return c
		}
	}
	return compareLen(len(s.goals), len(other.goals))
}

// Equal reports whether s and other contain the same goals.
func (s System) Equal(other System) bool { return s.Compare(other) == 0 }

func (s System) String() string {
	parts := make([]string, len(s.goals))
	for i, g := range s.goals {
		parts[i] = g.String()
	}
	return strings.Join(parts, " | ")
}
