package sutra

import "context"

// Scorer is the capability interface for the optional external conflict
// hint. Implementations rank the still-tied candidates; returning
// (nil, nil) means "no opinion". The resolver consults a Scorer only
// after the symbolic clauses and never lets it override their decision.
//
// Implementations must respect ctx cancellation; the resolver bounds
// every call with a timeout and proceeds without the hint on any error.
type Scorer interface {
	Suggest(ctx context.Context, candidates []ID, features []float32) ([]ID, error)
}

// ScorerFunc adapts a function to the Scorer interface.
type ScorerFunc func(ctx context.Context, candidates []ID, features []float32) ([]ID, error)

// Suggest implements Scorer.
func (f ScorerFunc) Suggest(ctx context.Context, candidates []ID, features []float32) ([]ID, error) {
	return f(ctx, candidates, features)
}
