// Package sutra models a corpus of grammatical production rules as an
// immutable directed graph and resolves conflicts among simultaneously
// applicable rules with the classical Vipratiṣedha tie-break.
//
// The graph is built once from loader records and never mutated again;
// it is safe for unsynchronized sharing across concurrent derivations.
package sutra

// Kind is the closed set of rule kinds. Behavior differences are matched
// exhaustively on it; only operative rules (Vidhi, Atidesha) carry an
// action and can win a derivation step.
type Kind int

const (
	// Samjna defines a technical term (saṃjñā), e.g. 1.1.1 vṛddhir ādaic.
	Samjna Kind = iota
	// Vidhi is an operative rule performing a rewrite.
	Vidhi
	// Niyama restricts the domain of another rule.
	Niyama
	// Paribhasha is an interpretive meta-rule steering rule application.
	Paribhasha
	// Atidesha extends a rule's behavior to an analogous domain.
	Atidesha
	// Adhikara is a governing header: it opens a scope and may carry a
	// term forward into every rule under that scope.
	Adhikara
)

var kindNames = [...]string{"samjna", "vidhi", "niyama", "paribhasha", "atidesha", "adhikara"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Operative reports whether a rule of this kind performs rewrites.
func (k Kind) Operative() bool { return k == Vidhi || k == Atidesha }

// EdgeKind distinguishes the directed relations between rules.
type EdgeKind int

const (
	// EdgeApavada: the source rule is a declared exception to the target
	// and always wins over it when both match.
	EdgeApavada EdgeKind = iota
	// EdgeAdhikara: the source rule's governing-header chain passes
	// through the target.
	EdgeAdhikara
	// EdgeAnuvrtti: the source rule textually inherits a term from the
	// target; the term must be present in context before the source's
	// predicate is even evaluated.
	EdgeAnuvrtti
)

// Predicate tests whether a rule currently applies to a context.
type Predicate func(*Context) bool

// Action applies the rule's rewrite in place and returns the byte
// position of the change, or -1 if the rewrite could not be performed.
type Action func(*Context) int

// Rule is one node of the graph. Fields are read-only after Build.
type Rule struct {
	ID          ID
	Text        string // the sūtra text, e.g. "iko yaṇ aci"
	Description string
	Kind        Kind
	Scope       []string // governing header chain, outermost first
	Specificity int      // structural narrowness; higher is more specific
	Requires    []string // carried terms that must be in context
	Triggers    []string // surface substring hints for candidate indexing
	Declares    Declares

	Predicate Predicate
	Action    Action
}

// Declares carries the kind-specific payload of non-operative rules.
type Declares struct {
	ScopeName string // Adhikara: scope this header opens
	Term      string // Adhikara/Samjna: term carried into the scope
}

// Record is the loader-boundary schema: one parsed rule ready for
// assembly into the graph. Edge targets reference IDs in string form.
type Record struct {
	ID          string
	Text        string
	Description string
	Kind        Kind
	Scope       []string
	Specificity int
	Requires    []string
	Triggers    []string
	Declares    Declares

	Overrides    []string // apavāda targets
	InheritsFrom []string // adhikāra chain targets
	CarriesFrom  []string // anuvṛtti sources

	Predicate Predicate
	Action    Action
}
