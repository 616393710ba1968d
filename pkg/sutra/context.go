package sutra

import "github.com/kittclouds/panini/pkg/varna"

// Context is the local transformation context a rule's predicate and
// action operate on. It is owned exclusively by the derivation request
// that created it and must never be shared across requests.
type Context struct {
	Table *varna.Table

	// Form is the current surface form (IAST or Devanāgarī).
	Form string

	// Boundary is the byte offset of the active junction inside Form,
	// -1 when no junction is in play. Boundary-sensitive rules consume
	// it; later cascade steps run with it cleared.
	Boundary int

	// Terms holds the carried terms (anuvṛtti) currently in force.
	Terms map[string]bool

	// Pos is the byte position of the most recent rewrite, -1 initially.
	Pos int
}

// NewContext creates a context for a fresh form with no junction.
func NewContext(table *varna.Table, form string) *Context {
	return &Context{
		Table:    table,
		Form:     form,
		Boundary: -1,
		Terms:    make(map[string]bool),
		Pos:      -1,
	}
}

// Carry marks a term as available in context.
func (c *Context) Carry(term string) { c.Terms[term] = true }

// Has reports whether every named term is currently carried.
func (c *Context) Has(terms ...string) bool {
	for _, t := range terms {
		if !c.Terms[t] {
			return false
		}
	}
	return true
}

// ContextFeatures projects a context onto a small numeric feature vector
// for the optional scorer: the canonical ranks of up to the first four
// and last four phonemes of the form, normalized to [0,1].
func ContextFeatures(c *Context) []float32 {
	const window = 4
	feats := make([]float32, 2*window)
	if c == nil || c.Table == nil {
		return feats
	}
	ph, err := c.Table.Tokenize(c.Form)
	if err != nil || len(ph) == 0 {
		return feats
	}
	denom := float32(c.Table.Len())
	for i := 0; i < window && i < len(ph); i++ {
		feats[i] = float32(ph[i].Rank) / denom
	}
	for i := 0; i < window && i < len(ph); i++ {
		feats[window+i] = float32(ph[len(ph)-1-i].Rank) / denom
	}
	return feats
}
