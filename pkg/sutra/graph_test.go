package sutra

import (
	"strings"
	"testing"

	"github.com/kittclouds/panini/pkg/varna"
)

func replaceFirst(from, to string) Action {
	return func(ctx *Context) int {
		pos := strings.Index(ctx.Form, from)
		if pos < 0 {
			return -1
		}
		ctx.Form = ctx.Form[:pos] + to + ctx.Form[pos+len(from):]
		return pos
	}
}

func containsPred(sub string) Predicate {
	return func(ctx *Context) bool { return strings.Contains(ctx.Form, sub) }
}

func testRecords() []Record {
	return []Record{
		{
			ID: "6.1.72", Text: "saṃhitāyām", Kind: Adhikara, Specificity: 1,
			Declares: Declares{ScopeName: "samhita", Term: "samhitayam"},
		},
		{
			ID: "6.1.87", Text: "general", Kind: Vidhi, Specificity: 2,
			Scope:        []string{"samhita"},
			Requires:     []string{"samhitayam"},
			InheritsFrom: []string{"6.1.72"},
			CarriesFrom:  []string{"6.1.72"},
			Predicate:    containsPred("a"),
			Action:       replaceFirst("a", "e"),
		},
		{
			ID: "6.1.101", Text: "exception", Kind: Vidhi, Specificity: 4,
			Scope:        []string{"samhita"},
			Requires:     []string{"samhitayam"},
			Overrides:    []string{"6.1.87"},
			InheritsFrom: []string{"6.1.72"},
			CarriesFrom:  []string{"6.1.72"},
			Predicate:    containsPred("aa"),
			Action:       replaceFirst("aa", "ā"),
		},
	}
}

func TestBuildAndGet(t *testing.T) {
	g, err := Build(varna.NewTable(), testRecords())
	if err != nil {
		t.Fatal(err)
	}
	if g.Len() != 3 {
		t.Fatalf("graph has %d rules, want 3", g.Len())
	}

	r, err := g.Lookup("6.1.72")
	if err != nil {
		t.Fatal(err)
	}
	if r.Text != "saṃhitāyām" || r.Kind != Adhikara {
		t.Errorf("6.1.72 = %q (%v)", r.Text, r.Kind)
	}

	if _, err := g.Lookup("9.9.9"); err == nil {
		t.Error("lookup of unknown id succeeded")
	}

	over := g.Overrides(MustID("6.1.101"))
	if len(over) != 1 || over[0] != MustID("6.1.87") {
		t.Errorf("overrides of 6.1.101 = %v", over)
	}

	terms := g.CarriedTerms("samhita")
	if len(terms) != 1 || terms[0] != "samhitayam" {
		t.Errorf("carried terms = %v", terms)
	}
}

func TestBuildAggregatesDefects(t *testing.T) {
	records := []Record{
		{ID: "not-an-id", Kind: Samjna, Specificity: 1},
		{ID: "1.1.1", Text: "first", Kind: Samjna, Specificity: 1},
		{ID: "1.1.1", Text: "second", Kind: Samjna, Specificity: 1},
		{
			ID: "2.1.1", Text: "dangler", Kind: Vidhi, Specificity: 2,
			Overrides: []string{"9.9.9"},
			Predicate: containsPred("x"), Action: replaceFirst("x", "y"),
		},
		{
			ID: "2.1.2", Text: "weak exception", Kind: Vidhi, Specificity: 1,
			Overrides: []string{"2.1.1"},
			Predicate: containsPred("x"), Action: replaceFirst("x", "y"),
		},
		{
			ID: "2.1.3", Text: "orphan scope", Kind: Vidhi, Specificity: 2,
			Scope:     []string{"nowhere"},
			Predicate: containsPred("x"), Action: replaceFirst("x", "y"),
		},
		{ID: "2.1.4", Text: "inert", Kind: Vidhi, Specificity: 2},
	}

	_, err := Build(varna.NewTable(), records)
	if err == nil {
		t.Fatal("defective rule set accepted")
	}
	se, ok := err.(*StructuralError)
	if !ok {
		t.Fatalf("error type = %T", err)
	}
	wantFragments := []string{
		"invalid id",
		"duplicate rule id 1.1.1",
		"dangling apavada edge",
		"violates specificity",
		"unreachable scope chain",
		"lacks predicate or action",
	}
	for _, frag := range wantFragments {
		found := false
		for _, issue := range se.Issues {
			if strings.Contains(issue, frag) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no issue mentioning %q in %v", frag, se.Issues)
		}
	}
}

func TestRulesMatching(t *testing.T) {
	g, err := Build(varna.NewTable(), testRecords())
	if err != nil {
		t.Fatal(err)
	}
	table := varna.NewTable()

	ctx := NewContext(table, "kaa")
	ctx.Carry("samhitayam")
	got := g.RulesMatching(ctx, "samhita")
	if len(got) != 2 {
		t.Fatalf("matched %d rules, want 2", len(got))
	}
	// Canonical ID order.
	if got[0].ID != MustID("6.1.87") || got[1].ID != MustID("6.1.101") {
		t.Errorf("order = %v, %v", got[0].ID, got[1].ID)
	}

	// Required term absent: predicates never run.
	bare := NewContext(table, "kaa")
	if got := g.RulesMatching(bare, "samhita"); len(got) != 0 {
		t.Errorf("matched %d rules without carried term", len(got))
	}

	// Unknown scope matches nothing.
	if got := g.RulesMatching(ctx, "tripadi"); len(got) != 0 {
		t.Errorf("matched %d rules in undeclared scope", len(got))
	}
}

func TestRulesMatchingTriggers(t *testing.T) {
	records := append(testRecords(), Record{
		ID: "8.4.1", Text: "triggered", Kind: Vidhi, Specificity: 3,
		Scope:        []string{"samhita"},
		Triggers:     []string{"n"},
		InheritsFrom: []string{"6.1.72"},
		Predicate:    containsPred("n"),
		Action:       replaceFirst("n", "ṇ"),
	})
	g, err := Build(varna.NewTable(), records)
	if err != nil {
		t.Fatal(err)
	}
	table := varna.NewTable()

	ctx := NewContext(table, "kana")
	ctx.Carry("samhitayam")
	found := false
	for _, r := range g.RulesMatching(ctx, "samhita") {
		if r.ID == MustID("8.4.1") {
			found = true
		}
	}
	if !found {
		t.Error("triggered rule missed on matching form")
	}

	ctx2 := NewContext(table, "kaa")
	ctx2.Carry("samhitayam")
	for _, r := range g.RulesMatching(ctx2, "samhita") {
		if r.ID == MustID("8.4.1") {
			t.Error("triggered rule matched without its trigger substring")
		}
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID("6.1.77")
	if err != nil {
		t.Fatal(err)
	}
	if id.Adhyaya != 6 || id.Pada != 1 || id.Sutra != 77 {
		t.Errorf("parsed = %+v", id)
	}
	if id.String() != "6.1.77" {
		t.Errorf("String() = %q", id.String())
	}

	for _, bad := range []string{"", "6.1", "6.1.77.2", "a.b.c", "0.1.1", "-1.1.1"} {
		if _, err := ParseID(bad); err == nil {
			t.Errorf("ParseID(%q) accepted", bad)
		}
	}

	if !MustID("1.1.1").Before(MustID("1.1.2")) {
		t.Error("1.1.1 must precede 1.1.2")
	}
	if !MustID("1.4.2").Before(MustID("6.1.77")) {
		t.Error("1.4.2 must precede 6.1.77")
	}
	if MustID("8.2.1").Before(MustID("6.1.101")) {
		t.Error("8.2.1 must not precede 6.1.101")
	}
}
