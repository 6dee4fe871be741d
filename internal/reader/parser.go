// Package reader implements the recursive-descent concrete-syntax
// parser spec.md §6 describes as an external collaborator: infix `=`
// and `neq`, prefix `not`/`forall`/`exists` with parenthesized binder
// lists, infix `and`/`or`/`imp`/`equ`, and atomic terms `v_name`,
// `c_name`, `f_name(...)`, `R_name(...)` whose prefix letter declares
// the symbol's intended kind.
//
// Per spec.md §9's design note, this is a straight recursive-descent
// parser with explicit (value, error) results -- no speculative-parse
// exceptions.
package reader

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/nstefanovic/folproof/internal/dictionary"
	"github.com/nstefanovic/folproof/pkg/fol"
)

// Parser parses concrete syntax into fol.Formula values against a
// Dictionary that resolves names to symbols, declaring a symbol's kind
// and (for f_/R_ names) arity on first occurrence.
type Parser struct {
	toks []token
	pos  int
	dict *dictionary.Dictionary
}

// New builds a Parser over input, resolving and declaring names
// against dict. Passing a fresh dictionary.New() gives every name in
// input its own namespace; passing a shared Dictionary lets a caller
// parse several formulas (e.g. an axiom set and a query) that refer to
// the same symbols by name.
func New(input string, dict *dictionary.Dictionary) *Parser {
	return &Parser{toks: tokenize(input), dict: dict}
}

func (p *Parser) peek() token { return p.toks[p.pos] }

func (p *Parser) advance() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) expectKeyword(kw string) error {
	t := p.peek()
	if t.kind == tokEOF {
		return newSyntaxError(UnexpectedEnd, t.offset)
	}
	if t.kind != tokKeyword || t.text != kw {
		return &SyntaxError{Kind: WrongToken, Offset: t.offset, Expected: kw, Found: t.text}
	}
	p.advance()
	return nil
}

func (p *Parser) expect(kind tokenKind, expected string) error {
	t := p.peek()
	if t.kind == tokEOF {
		return newSyntaxError(UnexpectedEnd, t.offset)
	}
	if t.kind != kind {
		return &SyntaxError{Kind: WrongToken, Offset: t.offset, Expected: expected, Found: t.text}
	}
	p.advance()
	return nil
}

// ParseFormula parses the Parser's entire input as a single formula.
func (p *Parser) ParseFormula() (fol.Formula, error) {
	f, err := p.parseImpEqu()
	if err != nil {
		return fol.Formula{}, err
	}
	if p.peek().kind != tokEOF {
		return fol.Formula{}, &SyntaxError{Kind: WrongToken, Offset: p.peek().offset, Expected: "end of input", Found: p.peek().text}
	}
	return f, nil
}

// Parse is the package-level convenience wrapper: it builds a private
// dictionary.New() and parses input as one formula.
func Parse(input string) (fol.Formula, error) {
	return New(input, dictionary.New()).ParseFormula()
}

// ParseAxioms parses each source string as an independent formula
// against a single shared dictionary (so the axioms and any later
// query can refer to the same constants and relations), aggregating
// every failure via go-multierror instead of stopping at the first.
func ParseAxioms(srcs []string, dict *dictionary.Dictionary) ([]fol.Formula, error) {
	var result []fol.Formula
	var errs *multierror.Error
	for i, src := range srcs {
		f, err := New(src, dict).ParseFormula()
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("axiom %d: %w", i, err))
			continue
		}
		result = append(result, f)
	}
	return result, errs.ErrorOrNil()
}

func (p *Parser) parseImpEqu() (fol.Formula, error) {
	left, err := p.parseAndOr()
	if err != nil {
		return fol.Formula{}, err
	}

	switch {
	case p.peek().kind == tokKeyword && p.peek().text == "imp":
		chain := []fol.Formula{left}
		for p.peek().kind == tokKeyword && p.peek().text == "imp" {
			p.advance()
			next, err := p.parseAndOr()
			if err != nil {
				return fol.Formula{}, err
			}
			chain = append(chain, next)
		}
		return fol.NewImplication(chain...), nil

	case p.peek().kind == tokKeyword && p.peek().text == "equ":
		chain := []fol.Formula{left}
		for p.peek().kind == tokKeyword && p.peek().text == "equ" {
			p.advance()
			next, err := p.parseAndOr()
			if err != nil {
				return fol.Formula{}, err
			}
			chain = append(chain, next)
		}
		return fol.NewEquivalence(chain...), nil
	}

	return left, nil
}

func (p *Parser) parseAndOr() (fol.Formula, error) {
	left, err := p.parseUnary()
	if err != nil {
		return fol.Formula{}, err
	}

	switch {
	case p.peek().kind == tokKeyword && p.peek().text == "and":
		chain := []fol.Formula{left}
		for p.peek().kind == tokKeyword && p.peek().text == "and" {
			p.advance()
			next, err := p.parseUnary()
			if err != nil {
				return fol.Formula{}, err
			}
			chain = append(chain, next)
		}
		return fol.NewConjunction(chain...), nil

	case p.peek().kind == tokKeyword && p.peek().text == "or":
		chain := []fol.Formula{left}
		for p.peek().kind == tokKeyword && p.peek().text == "or" {
			p.advance()
			next, err := p.parseUnary()
			if err != nil {
				return fol.Formula{}, err
			}
			chain = append(chain, next)
		}
		return fol.NewDisjunction(chain...), nil
	}

	return left, nil
}

func (p *Parser) parseUnary() (fol.Formula, error) {
	t := p.peek()

	if t.kind == tokKeyword && t.text == "not" {
		p.advance()
		inner, err := p.parseUnary()
		if err != nil {
			return fol.Formula{}, err
		}
		return fol.NewNegation(inner), nil
	}

	if t.kind == tokKeyword && (t.text == "forall" || t.text == "exists") {
		return p.parseQuantifier(t.text)
	}

	return p.parseAtomicFormula()
}

func (p *Parser) parseQuantifier(kw string) (fol.Formula, error) {
	p.advance()
	if err := p.expect(tokLParen, "("); err != nil {
		return fol.Formula{}, err
	}

	p.dict.Push()
	defer p.dict.MergeTopTwo()

	var vars []fol.Symbol
	for {
		t := p.peek()
		if t.kind != tokIdent {
			return fol.Formula{}, newSyntaxError(NameExpected, t.offset)
		}
		if !strings.HasPrefix(t.text, "v_") {
			return fol.Formula{}, newSyntaxError(VariableExpected, t.offset)
		}
		p.advance()
		sym := fol.FreshVariable()
		p.dict.Insert(t.text, sym)
		vars = append(vars, sym)

		if p.peek().kind == tokComma {
			p.advance()
			continue
		}
		break
	}

	if err := p.expect(tokRParen, ")"); err != nil {
		return fol.Formula{}, err
	}

	body, err := p.parseUnary()
	if err != nil {
		return fol.Formula{}, err
	}

	if kw == "forall" {
		return fol.MustUniversal(vars, body), nil
	}
	return fol.MustExistential(vars, body), nil
}

func (p *Parser) parseAtomicFormula() (fol.Formula, error) {
	t := p.peek()

	if t.kind == tokLParen {
		p.advance()
		f, err := p.parseImpEqu()
		if err != nil {
			return fol.Formula{}, err
		}
		if err := p.expect(tokRParen, ")"); err != nil {
			return fol.Formula{}, err
		}
		return f, nil
	}

	if t.kind == tokKeyword && t.text == "true" {
		p.advance()
		return fol.TrueFormula(), nil
	}
	if t.kind == tokKeyword && t.text == "false" {
		p.advance()
		return fol.FalseFormula(), nil
	}

	if t.kind != tokIdent {
		return fol.Formula{}, newSyntaxError(FormulaExpected, t.offset)
	}

	if strings.HasPrefix(t.text, "R_") {
		return p.parseRelation()
	}

	first, err := p.parseTerm()
	if err != nil {
		return fol.Formula{}, err
	}

	terms := []fol.Term{first}
	switch {
	case p.peek().kind == tokEquals:
		for p.peek().kind == tokEquals {
			p.advance()
			next, err := p.parseTerm()
			if err != nil {
				return fol.Formula{}, err
			}
			terms = append(terms, next)
		}
		return fol.NewEquality(terms...), nil

	case p.peek().kind == tokKeyword && p.peek().text == "neq":
		for p.peek().kind == tokKeyword && p.peek().text == "neq" {
			p.advance()
			next, err := p.parseTerm()
			if err != nil {
				return fol.Formula{}, err
			}
			terms = append(terms, next)
		}
		return fol.NewDisequality(terms...), nil
	}

	return fol.Formula{}, newSyntaxError(EqualityOrNonequalityExpected, p.peek().offset)
}

func (p *Parser) parseRelation() (fol.Formula, error) {
	t := p.advance()
	sym, existed := p.dict.LookupByName(t.text)

	if err := p.expect(tokLParen, "("); err != nil {
		return fol.Formula{}, err
	}
	args, err := p.parseTermList()
	if err != nil {
		return fol.Formula{}, err
	}

	if existed {
		if sym.Kind() != fol.Relation {
			return fol.Formula{}, newSyntaxError(RelationExpected, t.offset)
		}
		if sym.Arity() != len(args) {
			return fol.Formula{}, &SyntaxError{Kind: WrongArity, Offset: t.offset,
				Expected: fmt.Sprintf("%d", sym.Arity()), Found: fmt.Sprintf("%d", len(args))}
		}
	} else {
		sym = fol.FreshRelation(len(args))
		p.dict.Insert(t.text, sym)
	}

	return fol.MustRelation(sym, args...), nil
}

func (p *Parser) parseTermList() ([]fol.Term, error) {
	if p.peek().kind == tokRParen {
		p.advance()
		return nil, nil
	}
	var terms []fol.Term
	for {
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
		if p.peek().kind == tokComma {
			p.advance()
			continue
		}
		break
	}
	if err := p.expect(tokRParen, ")"); err != nil {
		return nil, err
	}
	return terms, nil
}

func (p *Parser) parseTerm() (fol.Term, error) {
	t := p.peek()
	if t.kind != tokIdent {
		return fol.Term{}, newSyntaxError(TermExpected, t.offset)
	}

	switch {
	case strings.HasPrefix(t.text, "v_"):
		p.advance()
		sym, existed := p.dict.LookupByName(t.text)
		if !existed {
			sym = fol.FreshVariable()
			p.dict.Insert(t.text, sym)
		} else if sym.Kind() != fol.Variable {
			return fol.Term{}, newSyntaxError(VariableExpected, t.offset)
		}
		return fol.MustVariable(sym), nil

	case strings.HasPrefix(t.text, "c_"):
		p.advance()
		sym, existed := p.dict.LookupByName(t.text)
		if !existed {
			sym = fol.FreshConstant()
			p.dict.Insert(t.text, sym)
		} else if sym.Kind() != fol.Constant {
			return fol.Term{}, newSyntaxError(ConstantExpected, t.offset)
		}
		return fol.MustConstant(sym), nil

	case strings.HasPrefix(t.text, "f_"):
		p.advance()
		sym, existed := p.dict.LookupByName(t.text)
		if err := p.expect(tokLParen, "("); err != nil {
			return fol.Term{}, err
		}
		args, err := p.parseTermList()
		if err != nil {
			return fol.Term{}, err
		}
		if existed {
			if sym.Kind() != fol.Operation {
				return fol.Term{}, newSyntaxError(OperationExpected, t.offset)
			}
			if sym.Arity() != len(args) {
				return fol.Term{}, &SyntaxError{Kind: WrongArity, Offset: t.offset,
					Expected: fmt.Sprintf("%d", sym.Arity()), Found: fmt.Sprintf("%d", len(args))}
			}
		} else {
			sym = fol.FreshOperation(len(args))
			p.dict.Insert(t.text, sym)
		}
		return fol.MustOperation(sym, args...), nil
	}

	return fol.Term{}, newSyntaxError(NameExpected, t.offset)
}
