package fol

import (
	"context"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Theory is the façade of spec.md §4.8: an immutable axiom set plus a
// mutable, monotonically-growing cache of formulas already known to
// follow from it. The cache is the only mutable state in the package;
// it is never shared between Theory instances and a single instance is
// not safe for concurrent Draw calls (spec.md §5).
type Theory struct {
	axioms Goal
	cache  []Formula

	logger hclog.Logger
	stats  *Stats
}

// TheoryOption configures optional instrumentation on a Theory.
type TheoryOption func(*Theory)

// WithLogger attaches structured logging to Draw calls.
func WithLogger(l hclog.Logger) TheoryOption {
	return func(t *Theory) { t.logger = l }
}

// WithStats attaches Prometheus counters to Draw calls.
func WithStats(s *Stats) TheoryOption {
	return func(t *Theory) { t.stats = s }
}

// NewTheory builds a Theory over axioms. Per spec.md §4.8 the theorem
// cache is initialized to the axioms themselves: each axiom is trivially
// a theorem of the theory it belongs to.
func NewTheory(axioms []Formula, opts ...TheoryOption) *Theory {
	t := &Theory{
		axioms: NewGoal(axioms...),
		logger: hclog.NewNullLogger(),
	}
	for _, a := range axioms {
		t.cache = insertSortedFormula(t.cache, a)
	}
	for _, opt := range opts {
		opt(t)
	}
	t.stats.setTheoremCount(len(t.cache))
	return t
}

// Axioms returns the theory's axiom set in ascending structural order.
func (t *Theory) Axioms() []Formula { return t.axioms.Formulas() }

// Theorems returns every formula currently cached as proved, in
// ascending structural order.
func (t *Theory) Theorems() []Formula {
	return append([]Formula(nil), t.cache...)
}

// Contains reports whether f is already cached as a theorem, without
// attempting a proof.
func (t *Theory) Contains(f Formula) bool {
	for _, c := range t.cache {
		if c.Equal(f) {
			return true
		}
	}
	return false
}

// Draw reports whether f follows from the theory's axioms. It returns
// true immediately if f is already cached; otherwise it runs the
// tableau engine on axioms ∪ {¬f} and, on success, caches f.
func (t *Theory) Draw(f Formula) bool {
	ok, _ := t.draw(context.Background(), f)
	return ok
}

// DrawContext is Draw with cooperative cancellation: the tableau's
// outer fixed-point loop checks ctx between iterations (spec.md §5
// notes cancellation is a host concern; this is the convenience hook
// SPEC_FULL.md adds for callers that want one). A cancelled context
// yields ok=false and the context's error.
func (t *Theory) DrawContext(ctx context.Context, f Formula) (bool, error) {
	return t.draw(ctx, f)
}

func (t *Theory) draw(ctx context.Context, f Formula) (bool, error) {
	if t.Contains(f) {
		return true, nil
	}

	start := time.Now()
	t.logger.Debug("drawing formula", "formula", f.String())

	negated := t.axioms.Add(NewNegation(f).Simplify())
	proved, err := concludeContradictionContext(ctx, NewSystem(negated), 0)

	outcome := "refuted"
	if err != nil {
		outcome = "cancelled"
	} else if !proved {
		outcome = "open"
	}
	t.stats.observeDraw(outcome, time.Since(start))

	if err != nil {
		t.logger.Warn("draw cancelled", "formula", f.String(), "error", err)
		return false, err
	}

	if proved {
		t.cache = insertSortedFormula(t.cache, f)
		t.stats.setTheoremCount(len(t.cache))
		t.logger.Debug("formula proved", "formula", f.String())
	}
	return proved, nil
}
