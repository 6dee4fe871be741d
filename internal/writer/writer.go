// Package writer implements the precedence-aware pretty-printer
// spec.md §6 describes as an external collaborator: a table of
// connective glyphs, and a precedence rule (atoms & quantifiers bind
// tightest, then conjunction/disjunction, then implication/equivalence)
// that decides when an inner sub-formula needs parentheses.
//
// Output is for human consumption only; there is no reversibility
// requirement against the reader package.
package writer

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/nstefanovic/folproof/internal/dictionary"
	"github.com/nstefanovic/folproof/pkg/fol"
)

// Glyphs is the table of connective spellings a Writer renders with.
type Glyphs struct {
	Not, And, Or, Imp, Equ   string
	Forall, Exists           string
	Eq, Neq                  string
	True, False              string
}

// ASCII renders with the reader's own keywords, so Write output is
// re-parseable by package reader.
var ASCII = Glyphs{
	Not: "not", And: "and", Or: "or", Imp: "imp", Equ: "equ",
	Forall: "forall", Exists: "exists",
	Eq: "=", Neq: "neq",
	True: "true", False: "false",
}

// Unicode renders with traditional logical notation, for display only.
var Unicode = Glyphs{
	Not: "¬", And: "∧", Or: "∨", Imp: "⇒", Equ: "⇔",
	Forall: "∀", Exists: "∃",
	Eq: "=", Neq: "≠",
	True: "⊤", False: "⊥",
}

// Writer renders formulas using a Glyphs table and a Dictionary to
// recover user-visible names for symbols that have one.
type Writer struct {
	glyphs  Glyphs
	dict    *dictionary.Dictionary
	colored bool

	connective *color.Color
	quantifier *color.Color
}

// New builds a plain Writer. dict may be nil, in which case every
// symbol renders under its internal name (Symbol.String).
func New(glyphs Glyphs, dict *dictionary.Dictionary) *Writer {
	return &Writer{glyphs: glyphs, dict: dict}
}

// NewColored builds a Writer that highlights connectives and
// quantifiers with ANSI color via fatih/color, for terminal output
// (the cmd/folproof REPL).
func NewColored(glyphs Glyphs, dict *dictionary.Dictionary) *Writer {
	return &Writer{
		glyphs:     glyphs,
		dict:       dict,
		colored:    true,
		connective: color.New(color.FgYellow),
		quantifier: color.New(color.FgCyan, color.Bold),
	}
}

func (w *Writer) paint(c *color.Color, s string) string {
	if !w.colored || c == nil {
		return s
	}
	return c.Sprint(s)
}

// precedence gives the outer/inner bracket-decision weight of
// spec.md §6: atoms & quantifiers (0), conjunction/disjunction (1),
// implication/equivalence (2).
func precedence(f fol.Formula) int {
	switch f.Kind() {
	case fol.Conjunction, fol.Disjunction:
		return 1
	case fol.Implication, fol.Equivalence:
		return 2
	default:
		return 0
	}
}

func isBinary(f fol.Formula) bool {
	switch f.Kind() {
	case fol.Conjunction, fol.Disjunction, fol.Implication, fol.Equivalence:
		return true
	default:
		return false
	}
}

// Write renders f to its concrete-syntax-flavored text form.
func (w *Writer) Write(f fol.Formula) string {
	return w.render(f, 3)
}

func (w *Writer) render(f fol.Formula, outerPrec int) string {
	body := w.renderBody(f)
	if isBinary(f) && precedence(f) >= outerPrec {
		return "(" + body + ")"
	}
	return body
}

func (w *Writer) renderBody(f fol.Formula) string {
	switch f.Kind() {
	case fol.False:
		return w.glyphs.False
	case fol.True:
		return w.glyphs.True

	case fol.Equality:
		return w.joinTerms(f.Terms(), " "+w.glyphs.Eq+" ")
	case fol.Disequality:
		return w.joinTerms(f.Terms(), " "+w.glyphs.Neq+" ")

	case fol.Relation:
		parts := make([]string, len(f.Terms()))
		for i, t := range f.Terms() {
			parts[i] = w.renderTerm(t)
		}
		return fmt.Sprintf("%s(%s)", w.symbolName(f.RelationSymbol()), strings.Join(parts, ", "))

	case fol.Negation:
		return w.paint(w.connective, w.glyphs.Not) + " " + w.render(f.Subformulas()[0], 0)

	case fol.Conjunction:
		return w.joinFormulas(f.Subformulas(), " "+w.paint(w.connective, w.glyphs.And)+" ", 1)
	case fol.Disjunction:
		return w.joinFormulas(f.Subformulas(), " "+w.paint(w.connective, w.glyphs.Or)+" ", 1)
	case fol.Implication:
		return w.joinFormulas(f.Subformulas(), " "+w.paint(w.connective, w.glyphs.Imp)+" ", 2)
	case fol.Equivalence:
		return w.joinFormulas(f.Subformulas(), " "+w.paint(w.connective, w.glyphs.Equ)+" ", 2)

	case fol.Universal:
		return w.renderQuantifier(w.glyphs.Forall, f.Vars(), f.Subformulas()[0])
	case fol.Existential:
		return w.renderQuantifier(w.glyphs.Exists, f.Vars(), f.Subformulas()[0])

	default:
		return "<?>"
	}
}

func (w *Writer) renderQuantifier(kw string, vars []fol.Symbol, body fol.Formula) string {
	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = w.symbolName(v)
	}
	return fmt.Sprintf("%s(%s) %s", w.paint(w.quantifier, kw), strings.Join(names, ", "), w.render(body, 0))
}

func (w *Writer) joinFormulas(fs []fol.Formula, sep string, outerPrec int) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = w.render(f, outerPrec)
	}
	return strings.Join(parts, sep)
}

func (w *Writer) joinTerms(ts []fol.Term, sep string) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = w.renderTerm(t)
	}
	return strings.Join(parts, sep)
}

func (w *Writer) renderTerm(t fol.Term) string {
	switch t.Kind() {
	case fol.Variable, fol.Constant:
		return w.symbolName(t.Symbol())
	case fol.Operation:
		parts := make([]string, len(t.Args()))
		for i, a := range t.Args() {
			parts[i] = w.renderTerm(a)
		}
		return fmt.Sprintf("%s(%s)", w.symbolName(t.Symbol()), strings.Join(parts, ", "))
	default:
		return "<?>"
	}
}

func (w *Writer) symbolName(sym fol.Symbol) string {
	if w.dict != nil {
		if name, ok := w.dict.LookupBySymbol(sym); ok {
			return name
		}
	}
	return sym.String()
}
