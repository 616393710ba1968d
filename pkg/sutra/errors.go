package sutra

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound marks lookups of unknown rule identifiers.
var ErrNotFound = errors.New("rule not found")

// ErrTie is returned when every tie-break clause is exhausted and more
// than one candidate remains. It signals a defect in the active rule
// subset for that context and is never resolved by arbitrary choice.
var ErrTie = errors.New("unresolvable rule conflict")

// ErrNoCandidates marks a Resolve call with an empty candidate set,
// which violates the resolver contract.
var ErrNoCandidates = errors.New("empty candidate set")

// StructuralError aggregates every defect found while building a graph.
// Construction is all-or-nothing: when it is returned, no graph exists.
type StructuralError struct {
	Issues []string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("sutra: structural defects in rule set (%d): %s",
		len(e.Issues), strings.Join(e.Issues, "; "))
}

// TieError reports the surviving candidates of an exhausted tie-break.
type TieError struct {
	Candidates []ID
}

func (e *TieError) Error() string {
	ids := make([]string, len(e.Candidates))
	for i, id := range e.Candidates {
		ids[i] = id.String()
	}
	return fmt.Sprintf("sutra: %v among %s", ErrTie, strings.Join(ids, ", "))
}

func (e *TieError) Unwrap() error { return ErrTie }
