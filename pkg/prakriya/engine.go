// Package prakriya drives rule selection and application to a fixed
// point, producing an auditable trace (the prakriyā, or derivation).
//
// The engine holds only read-only shared state; every Derive call owns a
// private context, so independent derivations run concurrently without
// coordination.
package prakriya

import (
	"context"
	"fmt"

	"github.com/kittclouds/panini/pkg/sutra"
	"github.com/kittclouds/panini/pkg/varna"
)

// Result is a completed derivation: the final form and its trace.
type Result struct {
	Form    string
	Trace   Trace
	Context *sutra.Context
}

// Engine repeatedly matches, resolves, and applies rules until no rule
// matches or a bound is hit.
type Engine struct {
	graph    *sutra.Graph
	table    *varna.Table
	resolver *sutra.Resolver
	scope    string
	maxSteps int
}

// Option configures an Engine.
type Option func(*Engine)

// WithScope restricts matching to rules governed by the named scope.
func WithScope(scope string) Option {
	return func(e *Engine) { e.scope = scope }
}

// WithMaxSteps overrides the step budget. The default is proportional to
// the graph size; the budget exists because the rule graph is cyclic and
// nothing else structurally guarantees progress.
func WithMaxSteps(n int) Option {
	return func(e *Engine) { e.maxSteps = n }
}

// WithResolver replaces the default resolver (custom policy or scorer).
func WithResolver(r *sutra.Resolver) Option {
	return func(e *Engine) { e.resolver = r }
}

// New creates an engine over a built graph.
func New(graph *sutra.Graph, table *varna.Table, opts ...Option) *Engine {
	e := &Engine{
		graph:    graph,
		table:    table,
		maxSteps: 4*graph.Len() + 16,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.resolver == nil {
		e.resolver = sutra.NewResolver(graph)
	}
	return e
}

// Derive cascades rule application on a fresh context seeded from form.
// Input with symbols outside the canonical table is rejected before any
// rule is attempted.
func (e *Engine) Derive(ctx context.Context, form string) (*Result, error) {
	if err := e.table.Validate(form); err != nil {
		return nil, err
	}
	dctx := sutra.NewContext(e.table, form)
	for _, term := range e.graph.CarriedTerms(e.scope) {
		dctx.Carry(term)
	}
	return e.Run(ctx, dctx)
}

// Run cascades rule application on a caller-seeded context. The context
// must be exclusive to this call; it is mutated in place.
func (e *Engine) Run(ctx context.Context, dctx *sutra.Context) (*Result, error) {
	var trace Trace
	for step := 0; ; step++ {
		if step >= e.maxSteps {
			return nil, &StalledError{
				Reason: fmt.Sprintf("step budget %d exceeded", e.maxSteps),
				Form:   dctx.Form,
				Trace:  trace,
			}
		}
		cands := e.graph.RulesMatching(dctx, e.scope)
		if len(cands) == 0 {
			return &Result{Form: dctx.Form, Trace: trace, Context: dctx}, nil
		}
		winner, why, err := e.resolver.Resolve(ctx, cands, dctx)
		if err != nil {
			return nil, err
		}
		before := dctx.Form
		pos := winner.Action(dctx)
		if dctx.Form == before {
			// No-progress application: end immediately instead of
			// burning the whole step budget.
			return nil, &StalledError{
				Reason: fmt.Sprintf("rule %s made no progress", winner.ID),
				Form:   dctx.Form,
				Trace:  trace,
			}
		}
		dctx.Pos = pos
		trace = append(trace, Step{
			Rule:          winner.ID,
			Position:      pos,
			Before:        before,
			After:         dctx.Form,
			Justification: why,
		})
	}
}
