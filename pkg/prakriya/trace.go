package prakriya

import (
	"fmt"
	"strings"

	"github.com/kittclouds/panini/pkg/sutra"
)

// Step records one applied rule: which rule, where, the form before and
// after, and the tie-break clause that selected it.
type Step struct {
	Rule          sutra.ID
	Position      int
	Before, After string
	Justification sutra.Justification
}

// Trace is the ordered audit log of a derivation.
type Trace []Step

// String renders the trace one step per line, prakriyā style.
func (t Trace) String() string {
	var b strings.Builder
	for i, s := range t {
		fmt.Fprintf(&b, "%d. [%s] %s → %s (%s)\n",
			i+1, s.Rule, s.Before, s.After, s.Justification)
	}
	return b.String()
}

// Applied returns the rule IDs in application order.
func (t Trace) Applied() []sutra.ID {
	ids := make([]sutra.ID, len(t))
	for i, s := range t {
		ids[i] = s.Rule
	}
	return ids
}
