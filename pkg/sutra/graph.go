package sutra

import (
	"fmt"
	"sort"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	ahocorasick "github.com/petar-dambovaliev/aho-corasick"

	"github.com/kittclouds/panini/pkg/varna"
)

// Graph is the immutable rule graph. Nodes live in a flat indexed store
// sorted by canonical ID; edges are index lists, so cycles carry no
// ownership concerns. Built once, then read-only.
type Graph struct {
	table *varna.Table
	rules []Rule
	index map[ID]int

	overrides [][]int // apavāda edges, by node index
	inherits  [][]int // adhikāra edges
	carries   [][]int // anuvṛtti edges

	// Candidate indexes: operative rules per scope, plus an Aho-Corasick
	// automaton over surface triggers with a posting bitmap per pattern.
	operative   *roaring.Bitmap
	scopeSets   map[string]*roaring.Bitmap
	untriggered *roaring.Bitmap
	triggerAC   ahocorasick.AhoCorasick
	triggerSets []*roaring.Bitmap
	hasTriggers bool

	scopeTerms map[string][]string // terms carried by a scope's headers
}

// Build assembles and validates a graph from loader records. Defects are
// aggregated into a single *StructuralError; on error no graph is
// returned at all.
func Build(table *varna.Table, records []Record) (*Graph, error) {
	var issues []string
	report := func(format string, args ...any) {
		issues = append(issues, fmt.Sprintf(format, args...))
	}

	type parsed struct {
		rec Record
		id  ID
	}
	items := make([]parsed, 0, len(records))
	seen := make(map[ID]string, len(records))
	for _, rec := range records {
		id, err := ParseID(rec.ID)
		if err != nil {
			report("%v", err)
			continue
		}
		if prev, dup := seen[id]; dup {
			report("duplicate rule id %s (%q and %q)", id, prev, rec.Text)
			continue
		}
		seen[id] = rec.Text
		items = append(items, parsed{rec: rec, id: id})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].id.Before(items[j].id) })

	g := &Graph{
		table:       table,
		rules:       make([]Rule, len(items)),
		index:       make(map[ID]int, len(items)),
		overrides:   make([][]int, len(items)),
		inherits:    make([][]int, len(items)),
		carries:     make([][]int, len(items)),
		operative:   roaring.New(),
		scopeSets:   make(map[string]*roaring.Bitmap),
		untriggered: roaring.New(),
		scopeTerms:  make(map[string][]string),
	}

	declaredScopes := make(map[string]bool)
	declaredTerms := make(map[string]bool)
	for i, it := range items {
		rec := it.rec
		g.rules[i] = Rule{
			ID:          it.id,
			Text:        rec.Text,
			Description: rec.Description,
			Kind:        rec.Kind,
			Scope:       rec.Scope,
			Specificity: rec.Specificity,
			Requires:    rec.Requires,
			Triggers:    rec.Triggers,
			Declares:    rec.Declares,
			Predicate:   rec.Predicate,
			Action:      rec.Action,
		}
		g.index[it.id] = i
		if rec.Declares.ScopeName != "" {
			declaredScopes[rec.Declares.ScopeName] = true
			if rec.Declares.Term != "" {
				g.scopeTerms[rec.Declares.ScopeName] = append(
					g.scopeTerms[rec.Declares.ScopeName], rec.Declares.Term)
			}
		}
		if rec.Declares.Term != "" {
			declaredTerms[rec.Declares.Term] = true
		}
	}

	resolve := func(from ID, targets []string, kind string) []int {
		out := make([]int, 0, len(targets))
		for _, s := range targets {
			tid, err := ParseID(s)
			if err != nil {
				report("rule %s: bad %s target %q", from, kind, s)
				continue
			}
			j, ok := g.index[tid]
			if !ok {
				report("rule %s: dangling %s edge to %s", from, kind, tid)
				continue
			}
			out = append(out, j)
		}
		return out
	}

	var triggerPatterns []string
	triggerIndex := make(map[string]int)
	for i := range g.rules {
		r := &g.rules[i]
		rec := items[i].rec

		g.overrides[i] = resolve(r.ID, rec.Overrides, "apavada")
		g.inherits[i] = resolve(r.ID, rec.InheritsFrom, "adhikara")
		g.carries[i] = resolve(r.ID, rec.CarriesFrom, "anuvrtti")

		// Apavāda must point from specific to general: the overrider's
		// matched-context set is structurally narrower than the target's.
		for _, j := range g.overrides[i] {
			if r.Specificity <= g.rules[j].Specificity {
				report("rule %s: apavada edge to %s violates specificity (source %d <= target %d)",
					r.ID, g.rules[j].ID, r.Specificity, g.rules[j].Specificity)
			}
		}
		for _, j := range g.inherits[i] {
			if g.rules[j].Kind != Adhikara {
				report("rule %s: adhikara edge to non-header %s", r.ID, g.rules[j].ID)
			}
		}
		for _, term := range r.Requires {
			found := declaredTerms[term]
			for _, j := range g.carries[i] {
				if g.rules[j].Declares.Term == term {
					found = true
				}
			}
			if !found {
				report("rule %s: carried term %q is declared by no rule", r.ID, term)
			}
		}
		for _, scope := range r.Scope {
			if !declaredScopes[scope] {
				report("rule %s: unreachable scope chain: %q has no governing header", r.ID, scope)
			}
		}

		if r.Kind.Operative() {
			if r.Predicate == nil || r.Action == nil {
				report("rule %s: operative rule lacks predicate or action", r.ID)
				continue
			}
			g.operative.Add(uint32(i))
			for _, scope := range r.Scope {
				set, ok := g.scopeSets[scope]
				if !ok {
					set = roaring.New()
					g.scopeSets[scope] = set
				}
				set.Add(uint32(i))
			}
			if len(r.Triggers) == 0 {
				g.untriggered.Add(uint32(i))
			} else {
				for _, trig := range r.Triggers {
					pat := strings.ToLower(trig)
					idx, ok := triggerIndex[pat]
					if !ok {
						idx = len(triggerPatterns)
						triggerIndex[pat] = idx
						triggerPatterns = append(triggerPatterns, pat)
						g.triggerSets = append(g.triggerSets, roaring.New())
					}
					g.triggerSets[idx].Add(uint32(i))
				}
			}
		}
	}

	if len(issues) > 0 {
		return nil, &StructuralError{Issues: issues}
	}

	if len(triggerPatterns) > 0 {
		builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
			AsciiCaseInsensitive: true,
			MatchOnlyWholeWords:  false,
			MatchKind:            ahocorasick.StandardMatch,
		})
		g.triggerAC = builder.Build(triggerPatterns)
		g.hasTriggers = true
	}
	return g, nil
}

// Len returns the number of rules.
func (g *Graph) Len() int { return len(g.rules) }

// All returns the rules in canonical ID order.
func (g *Graph) All() []Rule { return g.rules }

// Get returns the rule with the given ID.
func (g *Graph) Get(id ID) (*Rule, error) {
	i, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("sutra: %w: %s", ErrNotFound, id)
	}
	return &g.rules[i], nil
}

// Lookup is Get for string identifiers ("1.1.1").
func (g *Graph) Lookup(id string) (*Rule, error) {
	parsed, err := ParseID(id)
	if err != nil {
		return nil, fmt.Errorf("sutra: %w: %s", ErrNotFound, id)
	}
	return g.Get(parsed)
}

// Overrides returns the apavāda targets of a rule.
func (g *Graph) Overrides(id ID) []ID {
	i, ok := g.index[id]
	if !ok {
		return nil
	}
	out := make([]ID, len(g.overrides[i]))
	for k, j := range g.overrides[i] {
		out[k] = g.rules[j].ID
	}
	return out
}

// CarriedTerms returns the terms the governing headers of a scope carry
// into every rule under it. Derivations seed their context with these.
func (g *Graph) CarriedTerms(scope string) []string {
	return g.scopeTerms[scope]
}

// RulesMatching returns every operative rule whose predicate holds
// against the context, in canonical ID order. A non-empty scope restricts
// matching to rules whose governing chain includes that scope. Rules
// whose required carried terms are absent from the context are skipped
// before their predicate is evaluated.
func (g *Graph) RulesMatching(ctx *Context, scope string) []*Rule {
	base := g.operative.Clone()
	if scope != "" {
		set, ok := g.scopeSets[scope]
		if !ok {
			return nil
		}
		base.And(set)
	}
	if g.hasTriggers {
		eligible := g.untriggered.Clone()
		for _, m := range g.triggerAC.FindAll(strings.ToLower(ctx.Form)) {
			eligible.Or(g.triggerSets[m.Pattern()])
		}
		base.And(eligible)
	}

	var out []*Rule
	it := base.Iterator()
	for it.HasNext() {
		r := &g.rules[it.Next()]
		if !ctx.Has(r.Requires...) {
			continue
		}
		if r.Predicate(ctx) {
			out = append(out, r)
		}
	}
	return out
}
