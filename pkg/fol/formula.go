package fol

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Formula is an immutable tree over the variants enumerated in
// spec.md §3: False, True, Equality, Disequality, Relation, Negation,
// Conjunction, Disjunction, Implication, Equivalence, Universal and
// Existential. Like Term, it is a value wrapper around a shared node,
// so copying a Formula copies a pointer and sub-structure sharing is
// automatic.
type Formula struct {
	n *formulaNode
}

type formulaNode struct {
	kind Kind

	// relation holds the Relation symbol for Relation formulas; it is
	// the zero Symbol for every other kind.
	relation Symbol

	// terms holds the argument terms of Equality, Disequality and
	// Relation formulas.
	terms []Term

	// subs holds the operands of the boolean connectives (k-ary) and,
	// for quantifiers, the single-element body at subs[0].
	subs []Formula

	// vars holds the non-empty, ordered, distinct bound-variable list
	// of a quantifier.
	vars []Symbol

	freeVars    varSet
	freeVarsSet bool
	hashVal     uint64
	hashSet     bool
}

func wrapFormula(n *formulaNode) Formula { return Formula{n: n} }

var (
	falseFormulaNode = &formulaNode{kind: False}
	trueFormulaNode  = &formulaNode{kind: True}
)

// FalseFormula returns the singleton ⊥ formula.
func FalseFormula() Formula { return wrapFormula(falseFormulaNode) }

// TrueFormula returns the singleton ⊤ formula.
func TrueFormula() Formula { return wrapFormula(trueFormulaNode) }

// IsValid reports whether f was produced by a constructor.
func (f Formula) IsValid() bool { return f.n != nil }

// Kind reports f's variant.
func (f Formula) Kind() Kind { return f.n.kind }

// RelationSymbol returns the relation symbol of a Relation formula; it
// is the zero Symbol for every other kind.
func (f Formula) RelationSymbol() Symbol { return f.n.relation }

// Terms returns the argument terms of an Equality, Disequality or
// Relation formula.
func (f Formula) Terms() []Term { return f.n.terms }

// Subformulas returns the operands of a boolean connective, or the
// single-element [body] of a quantifier.
func (f Formula) Subformulas() []Formula { return f.n.subs }

// Vars returns the bound-variable list of a quantifier.
func (f Formula) Vars() []Symbol { return f.n.vars }

// NewEquality builds an n-ary equality formula. Per spec.md §3, an
// equality of zero or one term is semantically ⊤; that reduction is
// performed by Simplify, not by this constructor, so that the raw tree
// shape survives until simplification asks for a normal form.
func NewEquality(terms ...Term) Formula {
	return wrapFormula(&formulaNode{kind: Equality, terms: append([]Term(nil), terms...)})
}

// NewDisequality builds a pairwise-distinct disequality formula over
// terms.
func NewDisequality(terms ...Term) Formula {
	return wrapFormula(&formulaNode{kind: Disequality, terms: append([]Term(nil), terms...)})
}

// NewRelation builds a relation atom. It fails with an ArityError if
// len(terms) disagrees with sym.Arity(), and with ErrInvalidKind if
// sym is not a Relation symbol.
func NewRelation(sym Symbol, terms ...Term) (Formula, error) {
	if sym.Kind() != Relation {
		return Formula{}, fmt.Errorf("%w: NewRelation requires a Relation symbol, got %s", ErrInvalidKind, sym.Kind())
	}
	if len(terms) != sym.Arity() {
		return Formula{}, newArityError(sym, sym.Arity(), len(terms))
	}
	return wrapFormula(&formulaNode{kind: Relation, relation: sym, terms: append([]Term(nil), terms...)}), nil
}

// MustRelation is NewRelation for callers certain the arity agrees; it
// panics on invariant violation.
func MustRelation(sym Symbol, terms ...Term) Formula {
	f, err := NewRelation(sym, terms...)
	if err != nil {
		panic(err)
	}
	return f
}

// NewNegation builds ¬f.
func NewNegation(f Formula) Formula {
	return wrapFormula(&formulaNode{kind: Negation, subs: []Formula{f}})
}

func newConnective(kind Kind, fs []Formula) Formula {
	return wrapFormula(&formulaNode{kind: kind, subs: append([]Formula(nil), fs...)})
}

// NewConjunction builds a k-ary conjunction of fs.
func NewConjunction(fs ...Formula) Formula { return newConnective(Conjunction, fs) }

// NewDisjunction builds a k-ary disjunction of fs.
func NewDisjunction(fs ...Formula) Formula { return newConnective(Disjunction, fs) }

// NewImplication builds a k-ary implication chain φ₁ ⇒ … ⇒ φₖ.
func NewImplication(fs ...Formula) Formula { return newConnective(Implication, fs) }

// NewEquivalence builds a k-ary equivalence of fs.
func NewEquivalence(fs ...Formula) Formula { return newConnective(Equivalence, fs) }

func newQuantifier(kind Kind, vars []Symbol, body Formula) (Formula, error) {
	if len(vars) == 0 {
		// spec.md §4.3: "callers may pre-filter to produce an unbinded
		// body if empty" -- an empty binder degenerates to its body.
		return body, nil
	}
	seen := make(map[int64]bool, len(vars))
	cp := make([]Symbol, len(vars))
	for i, v := range vars {
		if v.Kind() != Variable {
			return Formula{}, fmt.Errorf("%w: quantifier binder %d is not a Variable symbol, got %s", ErrInvalidKind, i, v.Kind())
		}
		if seen[v.ID()] {
			return Formula{}, fmt.Errorf("%w: quantifier binder list contains %s twice", ErrMalformedFormula, v)
		}
		seen[v.ID()] = true
		cp[i] = v
	}
	return wrapFormula(&formulaNode{kind: kind, vars: cp, subs: []Formula{body}}), nil
}

// NewUniversal builds ∀vars.body. An empty vars list degenerates to
// body itself, per spec.md §4.3.
func NewUniversal(vars []Symbol, body Formula) (Formula, error) {
	return newQuantifier(Universal, vars, body)
}

// NewExistential builds ∃vars.body. An empty vars list degenerates to
// body itself, per spec.md §4.3.
func NewExistential(vars []Symbol, body Formula) (Formula, error) {
	return newQuantifier(Existential, vars, body)
}

// MustUniversal panics instead of returning an error; for use with
// already-validated binder lists.
func MustUniversal(vars []Symbol, body Formula) Formula {
	f, err := NewUniversal(vars, body)
	if err != nil {
		panic(err)
	}
	return f
}

// MustExistential panics instead of returning an error; for use with
// already-validated binder lists.
func MustExistential(vars []Symbol, body Formula) Formula {
	f, err := NewExistential(vars, body)
	if err != nil {
		panic(err)
	}
	return f
}

// kindRank gives the total order's precedence among kinds, used only
// when two formulas' kinds differ.
func kindRank(k Kind) int {
	switch k {
	case False:
		return 0
	case True:
		return 1
	case Equality:
		return 2
	case Disequality:
		return 3
	case Relation:
		return 4
	case Negation:
		return 5
	case Conjunction:
		return 6
	case Disjunction:
		return 7
	case Implication:
		return 8
	case Equivalence:
		return 9
	case Universal:
		return 10
	case Existential:
		return 11
	default:
		return 99
	}
}

// Compare gives the structural total order over formulas used for
// deterministic set representation throughout the tableau engine.
func (f Formula) Compare(other Formula) int {
	if f.Kind() != other.Kind() {
		ra, rb := kindRank(f.Kind()), kindRank(other.Kind())
		if ra < rb {
			return -1
		}
		return 1
	}
	switch f.Kind() {
	case False, True:
		return 0
	case Equality, Disequality:
		return compareTermSlices(f.Terms(), other.Terms())
	case Relation:
		if !f.RelationSymbol().Equal(other.RelationSymbol()) {
			if f.RelationSymbol().Less(other.RelationSymbol()) {
				return -1
			}
			return 1
		}
		return compareTermSlices(f.Terms(), other.Terms())
	case Negation, Conjunction, Disjunction, Implication, Equivalence:
		return compareFormulaSlices(f.Subformulas(), other.Subformulas())
	case Universal, Existential:
		if c := compareSymbolSlices(f.Vars(), other.Vars()); c != 0 {
			return c
		}
		return f.Subformulas()[0].Compare(other.Subformulas()[0])
	default:
		return 0
	}
}

func compareTermSlices(a, b []Term) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := a[i].Compare(b[i]); c != 0 {
			return c
		}
	}
	return compareLen(len(a), len(b))
}

func compareFormulaSlices(a, b []Formula) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := a[i].Compare(b[i]); c != 0 {
			return c
		}
	}
	return compareLen(len(a), len(b))
}

func compareSymbolSlices(a, b []Symbol) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if !a[i].Equal(b[i]) {
			if a[i].Less(b[i]) {
				return -1
			}
			return 1
		}
	}
	return compareLen(len(a), len(b))
}

func compareLen(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equal reports whether f and other are structurally identical.
func (f Formula) Equal(other Formula) bool { return f.Compare(other) == 0 }

// Less reports whether f precedes other in the formula total order.
func (f Formula) Less(other Formula) bool { return f.Compare(other) < 0 }

// Hash is a structural hash consistent with Equal: f.Equal(g) implies
// f.Hash() == g.Hash().
func (f Formula) Hash() uint64 {
	if f.n.hashSet {
		return f.n.hashVal
	}
	h := fnv.New64a()
	var buf [8]byte
	putInt64(&buf, int64(kindRank(f.Kind())))
	h.Write(buf[:])
	switch f.Kind() {
	case Relation:
		putInt64(&buf, f.RelationSymbol().ID())
		h.Write(buf[:])
		fallthrough
	case Equality, Disequality:
		for _, t := range f.Terms() {
			putInt64(&buf, int64(t.Hash()))
			h.Write(buf[:])
		}
	case Negation, Conjunction, Disjunction, Implication, Equivalence:
		for _, sub := range f.Subformulas() {
			putInt64(&buf, int64(sub.Hash()))
			h.Write(buf[:])
		}
	case Universal, Existential:
		for _, v := range f.Vars() {
			putInt64(&buf, v.ID())
			h.Write(buf[:])
		}
		putInt64(&buf, int64(f.Subformulas()[0].Hash()))
		h.Write(buf[:])
	}
	v := h.Sum64()
	f.n.hashVal = v
	f.n.hashSet = true
	return v
}

// FreeVariables returns f's free variables in ascending order, per the
// recursive definition in spec.md §4.3.
func (f Formula) FreeVariables() []Symbol {
	return f.freeVarSet().slice()
}

func (f Formula) freeVarSet() varSet {
	if f.n.freeVarsSet {
		return f.n.freeVars
	}
	var result varSet
	switch f.Kind() {
	case False, True:
		result = nil
	case Equality, Disequality, Relation:
		for _, t := range f.Terms() {
			result = result.union(t.freeVarSet())
		}
	case Negation, Conjunction, Disjunction, Implication, Equivalence:
		for _, sub := range f.Subformulas() {
			result = result.union(sub.freeVarSet())
		}
	case Universal, Existential:
		result = f.Subformulas()[0].freeVarSet().minus(newVarSet(f.Vars()...))
	}
	f.n.freeVars = result
	f.n.freeVarsSet = true
	return result
}

// IsFreeVariable reports whether v occurs free in f.
func (f Formula) IsFreeVariable(v Symbol) bool {
	return f.freeVarSet().contains(v)
}

func (f Formula) String() string {
	switch f.Kind() {
	case False:
		return "false"
	case True:
		return "true"
	case Equality:
		return joinTerms(f.Terms(), " = ")
	case Disequality:
		return joinTerms(f.Terms(), " != ")
	case Relation:
		parts := make([]string, len(f.Terms()))
		for i, t := range f.Terms() {
			parts[i] = t.String()
		}
		return fmt.Sprintf("%s(%s)", f.RelationSymbol(), strings.Join(parts, ", "))
	case Negation:
		return "not " + f.Subformulas()[0].String()
	case Conjunction:
		return joinFormulas(f.Subformulas(), " and ")
	case Disjunction:
		return joinFormulas(f.Subformulas(), " or ")
	case Implication:
		return joinFormulas(f.Subformulas(), " imp ")
	case Equivalence:
		return joinFormulas(f.Subformulas(), " equ ")
	case Universal:
		return quantifierString("forall", f.Vars(), f.Subformulas()[0])
	case Existential:
		return quantifierString("exists", f.Vars(), f.Subformulas()[0])
	default:
		return "<invalid formula>"
	}
}

func joinTerms(ts []Term, sep string) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}
	return strings.Join(parts, sep)
}

func joinFormulas(fs []Formula, sep string) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = "(" + f.String() + ")"
	}
	return strings.Join(parts, sep)
}

func quantifierString(kw string, vars []Symbol, body Formula) string {
	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = v.String()
	}
	return fmt.Sprintf("%s (%s) (%s)", kw, strings.Join(names, ", "), body.String())
}
