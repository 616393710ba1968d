// Package sandhi applies deterministic euphonic combination at the
// junction of two forms: the classical vowel rules iko yaṇ aci (6.1.77),
// ād guṇaḥ (6.1.87), vṛddhir eci (6.1.88) and akaḥ savarṇe dīrghaḥ
// (6.1.101), plus retroflexion (8.4.2), expressed as a rule graph and
// driven by the derivation engine so that one merge can cascade into
// further rewrites.
package sandhi

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kittclouds/panini/pkg/prakriya"
	"github.com/kittclouds/panini/pkg/sutra"
	"github.com/kittclouds/panini/pkg/varna"
)

// Scope is the governing-header name boundary rules live under.
const Scope = "samhita"

// Result of a sandhi application. Changed false means no rule ever
// matched: plain concatenation is a valid grammatical outcome, not a
// failure.
type Result struct {
	Merged  string
	Applied []sutra.ID
	Trace   prakriya.Trace
	Changed bool
}

// Engine is the boundary-transformation engine. Safe for concurrent use.
type Engine struct {
	table  *varna.Table
	graph  *sutra.Graph
	engine *prakriya.Engine
}

// Option configures the engine.
type Option func(*config)

type config struct {
	resolver *sutra.Resolver
	maxSteps int
}

// WithResolver installs a custom resolver (policy or scorer).
func WithResolver(r *sutra.Resolver) Option {
	return func(c *config) { c.resolver = r }
}

// WithMaxSteps overrides the cascade step budget.
func WithMaxSteps(n int) Option {
	return func(c *config) { c.maxSteps = n }
}

// New builds the engine with the built-in rule set.
func New(opts ...Option) (*Engine, error) {
	table := varna.NewTable()
	graph, err := sutra.Build(table, Records())
	if err != nil {
		return nil, fmt.Errorf("sandhi: %w", err)
	}
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	eopts := []prakriya.Option{prakriya.WithScope(Scope)}
	if c.resolver != nil {
		eopts = append(eopts, prakriya.WithResolver(c.resolver))
	}
	if c.maxSteps > 0 {
		eopts = append(eopts, prakriya.WithMaxSteps(c.maxSteps))
	}
	return &Engine{
		table:  table,
		graph:  graph,
		engine: prakriya.New(graph, table, eopts...),
	}, nil
}

// Graph exposes the rule registry (RuleRegistry.get lives here).
func (e *Engine) Graph() *sutra.Graph { return e.graph }

// Table exposes the shared phoneme table.
func (e *Engine) Table() *varna.Table { return e.table }

// Apply merges two forms, applying boundary rules to a fixed point.
// Input containing symbols outside the canonical table is rejected
// before any rule is attempted.
func (e *Engine) Apply(left, right string) (Result, error) {
	left = strings.TrimSpace(left)
	right = strings.TrimSpace(right)
	if err := e.table.Validate(left); err != nil {
		return Result{}, err
	}
	if err := e.table.Validate(right); err != nil {
		return Result{}, err
	}
	if left == "" || right == "" {
		return Result{Merged: left + right}, nil
	}

	dctx := sutra.NewContext(e.table, left+right)
	dctx.Boundary = len(left)
	for _, term := range e.graph.CarriedTerms(Scope) {
		dctx.Carry(term)
	}

	res, err := e.engine.Run(context.Background(), dctx)
	if err != nil {
		var stalled *prakriya.StalledError
		if errors.As(err, &stalled) {
			return Result{}, fmt.Errorf("sandhi: %q + %q: %w", left, right, err)
		}
		return Result{}, err
	}
	return Result{
		Merged:  res.Form,
		Applied: res.Trace.Applied(),
		Trace:   res.Trace,
		Changed: len(res.Trace) > 0,
	}, nil
}
