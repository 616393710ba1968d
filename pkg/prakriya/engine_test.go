package prakriya

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kittclouds/panini/pkg/sutra"
	"github.com/kittclouds/panini/pkg/varna"
)

func rewrite(from, to string) (sutra.Predicate, sutra.Action) {
	pred := func(ctx *sutra.Context) bool { return strings.Contains(ctx.Form, from) }
	act := func(ctx *sutra.Context) int {
		pos := strings.Index(ctx.Form, from)
		if pos < 0 {
			return -1
		}
		ctx.Form = ctx.Form[:pos] + to + ctx.Form[pos+len(from):]
		return pos
	}
	return pred, act
}

func buildGraph(t *testing.T, records []sutra.Record) (*sutra.Graph, *varna.Table) {
	t.Helper()
	table := varna.NewTable()
	g, err := sutra.Build(table, records)
	if err != nil {
		t.Fatal(err)
	}
	return g, table
}

func TestDeriveCascade(t *testing.T) {
	p1, a1 := rewrite("aa", "ā")
	p2, a2 := rewrite("āt", "ān")
	g, table := buildGraph(t, []sutra.Record{
		{ID: "2.1.1", Text: "contract", Kind: sutra.Vidhi, Specificity: 2, Predicate: p1, Action: a1},
		{ID: "2.1.2", Text: "shift", Kind: sutra.Vidhi, Specificity: 2, Predicate: p2, Action: a2},
	})
	e := New(g, table)

	res, err := e.Derive(context.Background(), "kaat")
	if err != nil {
		t.Fatal(err)
	}
	if res.Form != "kān" {
		t.Fatalf("final form = %q, want kān", res.Form)
	}
	if len(res.Trace) != 2 {
		t.Fatalf("trace has %d steps, want 2", len(res.Trace))
	}
	if res.Trace[0].Rule != sutra.MustID("2.1.1") || res.Trace[1].Rule != sutra.MustID("2.1.2") {
		t.Errorf("applied = %v", res.Trace.Applied())
	}
	if res.Trace[0].Before != "kaat" || res.Trace[0].After != "kāt" {
		t.Errorf("step 1 = %+v", res.Trace[0])
	}
	if res.Trace[1].Justification != sutra.JustOnly {
		t.Errorf("step 2 justification = %q", res.Trace[1].Justification)
	}
}

func TestDeriveDeterministic(t *testing.T) {
	p1, a1 := rewrite("aa", "ā")
	p2, a2 := rewrite("āt", "ān")
	g, table := buildGraph(t, []sutra.Record{
		{ID: "2.1.1", Kind: sutra.Vidhi, Specificity: 2, Predicate: p1, Action: a1},
		{ID: "2.1.2", Kind: sutra.Vidhi, Specificity: 2, Predicate: p2, Action: a2},
	})
	e := New(g, table)

	first, err := e.Derive(context.Background(), "kaat")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := e.Derive(context.Background(), "kaat")
		if err != nil {
			t.Fatal(err)
		}
		if again.Form != first.Form || again.Trace.String() != first.Trace.String() {
			t.Fatalf("run %d diverged:\n%s\nvs\n%s", i, again.Trace.String(), first.Trace.String())
		}
	}
}

func TestDeriveNoMatchIsSuccess(t *testing.T) {
	p1, a1 := rewrite("aa", "ā")
	g, table := buildGraph(t, []sutra.Record{
		{ID: "2.1.1", Kind: sutra.Vidhi, Specificity: 2, Predicate: p1, Action: a1},
	})
	e := New(g, table)

	res, err := e.Derive(context.Background(), "kim")
	if err != nil {
		t.Fatal(err)
	}
	if res.Form != "kim" || len(res.Trace) != 0 {
		t.Errorf("untouched form came back as %q with %d steps", res.Form, len(res.Trace))
	}
}

func TestDeriveNoProgressStalls(t *testing.T) {
	pred := func(ctx *sutra.Context) bool { return strings.Contains(ctx.Form, "k") }
	act := func(ctx *sutra.Context) int { return 0 } // claims success, changes nothing
	g, table := buildGraph(t, []sutra.Record{
		{ID: "2.1.1", Kind: sutra.Vidhi, Specificity: 2, Predicate: pred, Action: act},
	})
	e := New(g, table)

	_, err := e.Derive(context.Background(), "ka")
	if !errors.Is(err, ErrStalled) {
		t.Fatalf("err = %v, want stall", err)
	}
	var stalled *StalledError
	if !errors.As(err, &stalled) {
		t.Fatalf("error type = %T", err)
	}
	if !strings.Contains(stalled.Reason, "no progress") {
		t.Errorf("reason = %q", stalled.Reason)
	}
	if stalled.Form != "ka" {
		t.Errorf("stalled form = %q", stalled.Form)
	}
}

func TestDeriveBudgetStalls(t *testing.T) {
	p1, a1 := rewrite("ka", "ki")
	p2, a2 := rewrite("ki", "ka")
	g, table := buildGraph(t, []sutra.Record{
		{ID: "2.1.1", Kind: sutra.Vidhi, Specificity: 2, Predicate: p1, Action: a1},
		{ID: "2.1.2", Kind: sutra.Vidhi, Specificity: 2, Predicate: p2, Action: a2},
	})
	e := New(g, table, WithMaxSteps(6))

	_, err := e.Derive(context.Background(), "ka")
	if !errors.Is(err, ErrStalled) {
		t.Fatalf("err = %v, want stall", err)
	}
	var stalled *StalledError
	if !errors.As(err, &stalled) {
		t.Fatalf("error type = %T", err)
	}
	if len(stalled.Trace) != 6 {
		t.Errorf("partial trace has %d steps, want the full budget of 6", len(stalled.Trace))
	}
	if !strings.Contains(stalled.Reason, "budget") {
		t.Errorf("reason = %q", stalled.Reason)
	}
}

func TestDeriveRejectsMalformedInput(t *testing.T) {
	p1, a1 := rewrite("aa", "ā")
	g, table := buildGraph(t, []sutra.Record{
		{ID: "2.1.1", Kind: sutra.Vidhi, Specificity: 2, Predicate: p1, Action: a1},
	})
	e := New(g, table)

	_, err := e.Derive(context.Background(), "k~a")
	if !errors.Is(err, varna.ErrMalformedInput) {
		t.Fatalf("err = %v, want malformed input", err)
	}
}

func TestDeriveSeedsCarriedTerms(t *testing.T) {
	p1, a1 := rewrite("aa", "ā")
	g, table := buildGraph(t, []sutra.Record{
		{
			ID: "6.1.72", Kind: sutra.Adhikara, Specificity: 1,
			Declares: sutra.Declares{ScopeName: "samhita", Term: "samhitayam"},
		},
		{
			ID: "6.1.101", Kind: sutra.Vidhi, Specificity: 2,
			Scope:        []string{"samhita"},
			Requires:     []string{"samhitayam"},
			InheritsFrom: []string{"6.1.72"},
			CarriesFrom:  []string{"6.1.72"},
			Predicate:    p1, Action: a1,
		},
	})
	e := New(g, table, WithScope("samhita"))

	res, err := e.Derive(context.Background(), "kaa")
	if err != nil {
		t.Fatal(err)
	}
	if res.Form != "kā" {
		t.Fatalf("form = %q: the scope's carried term was not seeded", res.Form)
	}
}
