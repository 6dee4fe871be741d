package fol

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Term is an immutable tree over symbols: a variable, a constant, or
// an operation application. Term is a thin value wrapper around a
// shared *termNode; copying a Term copies a pointer, so structural
// sharing of sub-terms across many Term values is automatic and the
// Go garbage collector reclaims a node once its last Term value is
// dropped (spec.md §3's "ownership" paragraph, resolved for Go in
// DESIGN.md: no manual reference counting is needed).
//
// The zero Term is invalid; all Term values in circulation are
// produced by NewVariable, NewConstant or NewOperation.
type Term struct {
	n *termNode
}

type termNode struct {
	kind Kind // Variable, Constant or Operation
	sym  Symbol
	args []Term

	// Lazily computed caches. The tableau engine is single-threaded
	// per spec.md §5, so these are plain fields rather than
	// sync.Once-guarded: a Term is only ever read by the goroutine
	// that holds it unless a caller deliberately shares one across
	// goroutines, which is the caller's synchronization burden, exactly
	// as spec.md §5 assigns it ("independent instances... are trivially
	// safe").
	freeVars    varSet
	freeVarsSet bool
	hashVal     uint64
	hashSet     bool
}

func wrap(n *termNode) Term { return Term{n: n} }

// IsValid reports whether t was produced by a constructor, as opposed
// to being the Term zero value.
func (t Term) IsValid() bool { return t.n != nil }

// Kind reports whether t is a Variable, Constant or Operation term.
func (t Term) Kind() Kind { return t.n.kind }

// Symbol returns the symbol at the root of t.
func (t Term) Symbol() Symbol { return t.n.sym }

// Args returns the argument terms of an Operation term, or nil for a
// variable or constant.
func (t Term) Args() []Term { return t.n.args }

// NewVariable builds a variable term from a Variable symbol.
func NewVariable(sym Symbol) (Term, error) {
	if sym.Kind() != Variable {
		return Term{}, fmt.Errorf("%w: NewVariable requires a Variable symbol, got %s", ErrInvalidKind, sym.Kind())
	}
	return wrap(&termNode{kind: Variable, sym: sym}), nil
}

// MustVariable is NewVariable for callers constructing from symbols
// they already know to be Variable-kinded (e.g. freshly allocated by
// FreshVariable); it panics on invariant violation.
func MustVariable(sym Symbol) Term {
	t, err := NewVariable(sym)
	if err != nil {
		panic(err)
	}
	return t
}

// NewConstant builds a constant term from a Constant symbol.
func NewConstant(sym Symbol) (Term, error) {
	if sym.Kind() != Constant {
		return Term{}, fmt.Errorf("%w: NewConstant requires a Constant symbol, got %s", ErrInvalidKind, sym.Kind())
	}
	return wrap(&termNode{kind: Constant, sym: sym}), nil
}

// MustConstant is NewConstant for symbols already known to be
// Constant-kinded; it panics on invariant violation.
func MustConstant(sym Symbol) Term {
	t, err := NewConstant(sym)
	if err != nil {
		panic(err)
	}
	return t
}

// NewOperation builds an operation application. It fails with an
// ArityError (wrapping ErrArityMismatch) if len(args) does not match
// sym.Arity(), and with ErrInvalidKind if sym is not an Operation
// symbol.
func NewOperation(sym Symbol, args ...Term) (Term, error) {
	if sym.Kind() != Operation {
		return Term{}, fmt.Errorf("%w: NewOperation requires an Operation symbol, got %s", ErrInvalidKind, sym.Kind())
	}
	if len(args) != sym.Arity() {
		return Term{}, newArityError(sym, sym.Arity(), len(args))
	}
	for i, a := range args {
		if !a.IsValid() {
			return Term{}, fmt.Errorf("%w: argument %d of %s is the zero Term", ErrMalformedFormula, i, sym)
		}
	}
	cp := append([]Term(nil), args...)
	return wrap(&termNode{kind: Operation, sym: sym, args: cp}), nil
}

// MustOperation is NewOperation for callers certain the arity agrees;
// it panics on invariant violation.
func MustOperation(sym Symbol, args ...Term) Term {
	t, err := NewOperation(sym, args...)
	if err != nil {
		panic(err)
	}
	return t
}

// Equal reports whether t and other are structurally identical:
// same symbol at the root and, for operations, pairwise structurally
// equal arguments.
func (t Term) Equal(other Term) bool {
	return t.Compare(other) == 0
}

// Compare gives the lexicographic total order over (symbol, arguments)
// described in spec.md §4.2: terms are first ordered by root symbol
// identity, and among terms with the same root symbol, by the first
// argument position where they differ.
func (t Term) Compare(other Term) int {
	if !t.Symbol().Equal(other.Symbol()) {
		if t.Symbol().Less(other.Symbol()) {
			return -1
		}
		return 1
	}
	a, b := t.Args(), other.Args()
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := a[i].Compare(b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// Less reports whether t precedes other in the term total order.
func (t Term) Less(other Term) bool { return t.Compare(other) < 0 }

// Hash combines the root symbol's identity with the hashes of the
// arguments, per spec.md §4.2. It is cached on the node after first
// computation.
func (t Term) Hash() uint64 {
	if t.n.hashSet {
		return t.n.hashVal
	}
	h := fnv.New64a()
	var buf [8]byte
	putInt64(&buf, t.Symbol().ID())
	h.Write(buf[:])
	for _, a := range t.Args() {
		putInt64(&buf, int64(a.Hash()))
		h.Write(buf[:])
	}
	v := h.Sum64()
	t.n.hashVal = v
	t.n.hashSet = true
	return v
}

func putInt64(buf *[8]byte, v int64) {
	u := uint64(v)
	for i := 0; i < 8; i++ {
		buf[i] = byte(u >> (8 * uint(i)))
	}
}

// FreeVariables returns the set of variables occurring in t, as an
// ascending slice by symbol identity. The result is cached on the
// node after first computation.
func (t Term) FreeVariables() []Symbol {
	return t.freeVarSet().slice()
}

func (t Term) freeVarSet() varSet {
	if t.n.freeVarsSet {
		return t.n.freeVars
	}
	var result varSet
	switch t.Kind() {
	case Variable:
		result = newVarSet(t.Symbol())
	case Constant:
		result = nil
	case Operation:
		for _, a := range t.Args() {
			result = result.union(a.freeVarSet())
		}
	}
	t.n.freeVars = result
	t.n.freeVarsSet = true
	return result
}

// IsFreeVariable reports whether v occurs free in t.
func (t Term) IsFreeVariable(v Symbol) bool {
	return t.freeVarSet().contains(v)
}

// String renders t using bare symbol names; internal/writer provides
// the user-facing, precedence-aware pretty-printer.
func (t Term) String() string {
	switch t.Kind() {
	case Variable, Constant:
		return t.Symbol().String()
	case Operation:
		parts := make([]string, len(t.Args()))
		for i, a := range t.Args() {
			parts[i] = a.String()
		}
		return fmt.Sprintf("%s(%s)", t.Symbol(), strings.Join(parts, ", "))
	default:
		return "<invalid term>"
	}
}
