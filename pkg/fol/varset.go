package fol

import "sort"

// varSet is a canonical, ascending-by-identity slice of variable
// symbols. Representing free-variable sets as sorted slices rather
// than maps keeps the structural order the rest of the package relies
// on (spec.md §5: "systems and goals iterate in their structural total
// order") without a separate sort step at every consumer.
type varSet []Symbol

func newVarSet(vars ...Symbol) varSet {
	s := append(varSet(nil), vars...)
	return s.normalize()
}

func (s varSet) normalize() varSet {
	sort.Slice(s, func(i, j int) bool { return s[i].Less(s[j]) })
	out := s[:0]
	for i, v := range s {
		if i == 0 || !out[len(out)-1].Equal(v) {
			out = append(out, v)
		}
	}
	return out
}

func (s varSet) contains(v Symbol) bool {
	i := sort.Search(len(s), func(i int) bool { return !s[i].Less(v) })
	return i < len(s) && s[i].Equal(v)
}

// union returns the ascending merge of s and other with duplicates
// removed.
func (s varSet) union(other varSet) varSet {
	if len(other) == 0 {
		return s
	}
	if len(s) == 0 {
		return other
	}
	merged := make(varSet, 0, len(s)+len(other))
	merged = append(merged, s...)
	merged = append(merged, other...)
	return merged.normalize()
}

// minus returns s with every variable that appears in other removed,
// preserving order.
func (s varSet) minus(other varSet) varSet {
	if len(other) == 0 {
		return s
	}
	out := make(varSet, 0, len(s))
	for _, v := range s {
		if !other.contains(v) {
			out = append(out, v)
		}
	}
	return out
}

func (s varSet) slice() []Symbol {
	return append([]Symbol(nil), s...)
}
