// Package dictionary implements the scope-stacked name↔symbol map the
// reader and writer use to turn concrete syntax names into fol.Symbol
// values and back. It is a bidirectional, lexically-scoped environment
// stack: the reader pushes a scope at every quantifier and merges it
// into its parent when the quantifier's syntactic extent ends, so the
// writer can still recover the bound variables' names.
package dictionary

import "github.com/nstefanovic/folproof/pkg/fol"

// environment is one lexical scope: a bidirectional map between names
// and symbols. A name is never rebound within a single environment --
// Insert reports false instead of overwriting. A symbol inserted under
// a second name maps back to the most recent name.
type environment struct {
	byName   map[string]fol.Symbol
	bySymbol map[int64]string
}

func newEnvironment() *environment {
	return &environment{byName: map[string]fol.Symbol{}, bySymbol: map[int64]string{}}
}

func (e *environment) insert(name string, sym fol.Symbol) bool {
	if _, ok := e.byName[name]; ok {
		return false
	}
	e.byName[name] = sym
	e.bySymbol[sym.ID()] = name
	return true
}

// Dictionary is a stack of scopes, searched innermost-first, mirroring
// dictionary.h's Dictionary/Environment pair.
type Dictionary struct {
	scopes []*environment
}

// New returns a Dictionary with a single, empty top-level scope.
func New() *Dictionary {
	d := &Dictionary{}
	d.Push()
	return d
}

// Push opens a new, empty lexical scope.
func (d *Dictionary) Push() {
	d.scopes = append(d.scopes, newEnvironment())
}

// Pop closes the innermost scope. It reports false and does nothing if
// only the top-level scope remains, matching the original's refusal to
// ever leave the dictionary without an environment.
func (d *Dictionary) Pop() bool {
	if len(d.scopes) <= 1 {
		return false
	}
	d.scopes = d.scopes[:len(d.scopes)-1]
	return true
}

// MergeTopTwo folds the innermost scope into the one beneath it,
// preferring the innermost scope's bindings on a name clash, and pops
// the now-redundant top. The reader uses it when a quantifier's scope
// closes, so the bound names stay available to the writer.
func (d *Dictionary) MergeTopTwo() bool {
	if len(d.scopes) < 2 {
		return false
	}
	top := d.scopes[len(d.scopes)-1]
	under := d.scopes[len(d.scopes)-2]
	for name, sym := range top.byName {
		under.byName[name] = sym
		under.bySymbol[sym.ID()] = name
	}
	d.scopes = d.scopes[:len(d.scopes)-1]
	return true
}

// Insert binds name to sym in the innermost scope. It reports false if
// name is already bound there.
func (d *Dictionary) Insert(name string, sym fol.Symbol) bool {
	return d.scopes[len(d.scopes)-1].insert(name, sym)
}

// LookupByName searches scopes innermost-first for name.
func (d *Dictionary) LookupByName(name string) (fol.Symbol, bool) {
	for i := len(d.scopes) - 1; i >= 0; i-- {
		if sym, ok := d.scopes[i].byName[name]; ok {
			return sym, true
		}
	}
	return fol.Symbol{}, false
}

// LookupBySymbol searches scopes innermost-first for sym's bound name.
func (d *Dictionary) LookupBySymbol(sym fol.Symbol) (string, bool) {
	for i := len(d.scopes) - 1; i >= 0; i-- {
		if name, ok := d.scopes[i].bySymbol[sym.ID()]; ok {
			return name, true
		}
	}
	return "", false
}

// Depth reports the number of open scopes, including the top-level one.
func (d *Dictionary) Depth() int { return len(d.scopes) }
