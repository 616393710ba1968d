package sutra

import (
	"context"
	"log/slog"
	"time"
)

// Justification tags the tie-break clause that decided a resolution.
// It is recorded in derivation traces for auditability.
type Justification string

const (
	JustApavada  Justification = "apavada"  // explicit exception won
	JustVishesha Justification = "vishesha" // higher specificity won
	JustPara     Justification = "para"     // later rule prevailed
	JustScorer   Justification = "scorer"   // external hint broke the tie
	JustOnly     Justification = "ekavidhi" // single candidate, no conflict
)

// Clause is one step of the tie-break policy. Narrow returns the
// candidates that survive the clause; returning a single rule decides
// the conflict. A clause must never return an empty, larger, or
// reordered set.
type Clause struct {
	Name   Justification
	Narrow func(g *Graph, cands []*Rule, ctx *Context) []*Rule
}

// Policy is the ordered tie-break table. The shipped default encodes the
// classical priority: explicit exception first, generality second,
// chronology third. The exact ordering of interpretive meta-rules beyond
// these clauses is contested ground; swap in a custom Policy to follow a
// different reading.
type Policy []Clause

// DefaultPolicy returns the apavāda > viśeṣa > para clause chain.
func DefaultPolicy() Policy {
	return Policy{
		{Name: JustApavada, Narrow: narrowApavada},
		{Name: JustVishesha, Narrow: narrowSpecificity},
		{Name: JustPara, Narrow: narrowTextualOrder},
	}
}

// narrowApavada drops every candidate that another candidate overrides,
// directly or transitively through the candidate set. Mutually
// overriding cycles eliminate neither side.
func narrowApavada(g *Graph, cands []*Rule, _ *Context) []*Rule {
	if len(cands) < 2 {
		return cands
	}
	inSet := make(map[ID]int, len(cands))
	for i, r := range cands {
		inSet[r.ID] = i
	}
	// reaches[i][j]: candidate i overrides candidate j within the set.
	reaches := make([]map[int]bool, len(cands))
	for i, r := range cands {
		reaches[i] = make(map[int]bool)
		stack := []ID{r.ID}
		visited := map[ID]bool{r.ID: true}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, target := range g.Overrides(id) {
				if visited[target] {
					continue
				}
				visited[target] = true
				if j, ok := inSet[target]; ok {
					reaches[i][j] = true
					stack = append(stack, target)
				}
			}
		}
	}
	out := make([]*Rule, 0, len(cands))
	for j, r := range cands {
		dominated := false
		for i := range cands {
			if i != j && reaches[i][j] && !reaches[j][i] {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, r)
		}
	}
	return out
}

// narrowSpecificity keeps the candidates with the narrowest predicate,
// measured by the structural-specificity count.
func narrowSpecificity(_ *Graph, cands []*Rule, _ *Context) []*Rule {
	if len(cands) < 2 {
		return cands
	}
	best := cands[0].Specificity
	for _, r := range cands[1:] {
		if r.Specificity > best {
			best = r.Specificity
		}
	}
	out := make([]*Rule, 0, len(cands))
	for _, r := range cands {
		if r.Specificity == best {
			out = append(out, r)
		}
	}
	return out
}

// narrowTextualOrder keeps the numerically latest rule: vipratiṣedhe
// paraṁ kāryam, the traditional last resort.
func narrowTextualOrder(_ *Graph, cands []*Rule, _ *Context) []*Rule {
	if len(cands) < 2 {
		return cands
	}
	best := cands[0]
	for _, r := range cands[1:] {
		if best.ID.Before(r.ID) {
			best = r
		}
	}
	return []*Rule{best}
}

// DefaultScorerTimeout bounds the optional external hint so it can never
// stall the deterministic path.
const DefaultScorerTimeout = 50 * time.Millisecond

// Resolver picks exactly one rule among simultaneously applicable
// candidates. The symbolic policy always runs first; a configured Scorer
// is consulted only on a residual tie and its failures are absorbed.
type Resolver struct {
	g       *Graph
	policy  Policy
	scorer  Scorer
	timeout time.Duration
	log     *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithPolicy replaces the default clause chain.
func WithPolicy(p Policy) ResolverOption {
	return func(r *Resolver) { r.policy = p }
}

// WithScorer installs the optional external hint.
func WithScorer(s Scorer) ResolverOption {
	return func(r *Resolver) { r.scorer = s }
}

// WithScorerTimeout bounds each Suggest call.
func WithScorerTimeout(d time.Duration) ResolverOption {
	return func(r *Resolver) { r.timeout = d }
}

// WithLogger sets the logger for scorer diagnostics.
func WithLogger(l *slog.Logger) ResolverOption {
	return func(r *Resolver) { r.log = l }
}

// NewResolver creates a resolver over a built graph.
func NewResolver(g *Graph, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		g:       g,
		policy:  DefaultPolicy(),
		timeout: DefaultScorerTimeout,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve applies the tie-break chain in strict order, short-circuiting
// at the first clause that yields a unique winner. A residual tie after
// the optional scorer step returns a *TieError.
func (r *Resolver) Resolve(ctx context.Context, cands []*Rule, dctx *Context) (*Rule, Justification, error) {
	if len(cands) == 0 {
		return nil, "", ErrNoCandidates
	}
	if len(cands) == 1 {
		return cands[0], JustOnly, nil
	}
	for _, clause := range r.policy {
		narrowed := clause.Narrow(r.g, cands, dctx)
		if len(narrowed) == 1 {
			return narrowed[0], clause.Name, nil
		}
		if len(narrowed) > 1 && len(narrowed) <= len(cands) {
			cands = narrowed
		}
	}
	if winner := r.consultScorer(ctx, cands, dctx); winner != nil {
		return winner, JustScorer, nil
	}
	ids := make([]ID, len(cands))
	for i, c := range cands {
		ids[i] = c.ID
	}
	return nil, "", &TieError{Candidates: ids}
}

// consultScorer runs the external hint under a bounded timeout. Any
// error, timeout, or empty ranking degrades to "no opinion".
func (r *Resolver) consultScorer(parent context.Context, cands []*Rule, dctx *Context) *Rule {
	if r.scorer == nil {
		return nil
	}
	if parent == nil {
		parent = context.Background()
	}
	sctx, cancel := context.WithTimeout(parent, r.timeout)
	defer cancel()

	ids := make([]ID, len(cands))
	for i, c := range cands {
		ids[i] = c.ID
	}

	type outcome struct {
		ranked []ID
		err    error
	}
	ch := make(chan outcome, 1)
	go func() {
		ranked, err := r.scorer.Suggest(sctx, ids, ContextFeatures(dctx))
		ch <- outcome{ranked: ranked, err: err}
	}()

	select {
	case <-sctx.Done():
		r.log.Debug("scorer timed out, proceeding without hint")
		return nil
	case out := <-ch:
		if out.err != nil {
			r.log.Debug("scorer declined", "err", out.err)
			return nil
		}
		byID := make(map[ID]*Rule, len(cands))
		for _, c := range cands {
			byID[c.ID] = c
		}
		for _, id := range out.ranked {
			if c, ok := byID[id]; ok {
				return c
			}
		}
		return nil
	}
}
