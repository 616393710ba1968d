package sandhi

import (
	"errors"
	"strings"
	"testing"

	"github.com/kittclouds/panini/pkg/sutra"
	"github.com/kittclouds/panini/pkg/varna"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New()
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestApplySavarnaDirgha(t *testing.T) {
	e := newEngine(t)

	res, err := e.Apply("dev", "alaya")
	if err != nil {
		t.Fatal(err)
	}
	if res.Merged != "devālaya" {
		t.Fatalf("dev + alaya = %q, want devālaya", res.Merged)
	}
	if !res.Changed {
		t.Error("Changed not set")
	}
	if len(res.Applied) != 1 || res.Applied[0] != sutra.MustID("6.1.101") {
		t.Errorf("applied = %v, want [6.1.101]", res.Applied)
	}
	// 6.1.101 beats the general guṇa rule as its declared exception.
	if res.Trace[0].Justification != sutra.JustApavada {
		t.Errorf("justification = %q", res.Trace[0].Justification)
	}
}

func TestApplyGuna(t *testing.T) {
	e := newEngine(t)

	res, err := e.Apply("mahā", "īśvara")
	if err != nil {
		t.Fatal(err)
	}
	if res.Merged != "maheśvara" {
		t.Fatalf("mahā + īśvara = %q, want maheśvara", res.Merged)
	}
	if len(res.Applied) != 1 || res.Applied[0] != sutra.MustID("6.1.87") {
		t.Errorf("applied = %v, want [6.1.87]", res.Applied)
	}
}

func TestApplyVrddhi(t *testing.T) {
	e := newEngine(t)

	res, err := e.Apply("deva", "eva")
	if err != nil {
		t.Fatal(err)
	}
	if res.Merged != "devaiva" {
		t.Fatalf("deva + eva = %q, want devaiva", res.Merged)
	}
	if len(res.Applied) != 1 || res.Applied[0] != sutra.MustID("6.1.88") {
		t.Errorf("applied = %v, want [6.1.88]", res.Applied)
	}
}

func TestApplyYan(t *testing.T) {
	e := newEngine(t)

	res, err := e.Apply("dadhi", "atra")
	if err != nil {
		t.Fatal(err)
	}
	if res.Merged != "dadhyatra" {
		t.Fatalf("dadhi + atra = %q, want dadhyatra", res.Merged)
	}
	if len(res.Applied) != 1 || res.Applied[0] != sutra.MustID("6.1.77") {
		t.Errorf("applied = %v, want [6.1.77]", res.Applied)
	}
}

func TestApplyCascadesIntoNatva(t *testing.T) {
	e := newEngine(t)

	// Guṇa produces the r that then retroflexes the following n.
	res, err := e.Apply("deva", "ṛna")
	if err != nil {
		t.Fatal(err)
	}
	if res.Merged != "devarṇa" {
		t.Fatalf("deva + ṛna = %q, want devarṇa", res.Merged)
	}
	want := []sutra.ID{sutra.MustID("6.1.87"), sutra.MustID("8.4.2")}
	if len(res.Applied) != 2 || res.Applied[0] != want[0] || res.Applied[1] != want[1] {
		t.Errorf("applied = %v, want %v", res.Applied, want)
	}
}

func TestApplyNatvaOnly(t *testing.T) {
	e := newEngine(t)

	res, err := e.Apply("kṛṣ", "na")
	if err != nil {
		t.Fatal(err)
	}
	if res.Merged != "kṛṣṇa" {
		t.Fatalf("kṛṣ + na = %q, want kṛṣṇa", res.Merged)
	}
	if len(res.Applied) != 1 || res.Applied[0] != sutra.MustID("8.4.2") {
		t.Errorf("applied = %v, want [8.4.2]", res.Applied)
	}
}

func TestApplyUnchanged(t *testing.T) {
	e := newEngine(t)

	res, err := e.Apply("tat", "tvam")
	if err != nil {
		t.Fatal(err)
	}
	if res.Merged != "tattvam" {
		t.Fatalf("tat + tvam = %q, want plain concatenation", res.Merged)
	}
	if res.Changed || len(res.Applied) != 0 {
		t.Error("no rule matched, yet the result claims a change")
	}
}

func TestApplyDevanagari(t *testing.T) {
	e := newEngine(t)

	res, err := e.Apply("देव", "आलय")
	if err != nil {
		t.Fatal(err)
	}
	if res.Merged != "देवालय" {
		t.Fatalf("देव + आलय = %q, want देवालय", res.Merged)
	}
	if len(res.Applied) != 1 || res.Applied[0] != sutra.MustID("6.1.101") {
		t.Errorf("applied = %v, want [6.1.101]", res.Applied)
	}
}

func TestApplyEmptySide(t *testing.T) {
	e := newEngine(t)

	res, err := e.Apply("deva", "")
	if err != nil {
		t.Fatal(err)
	}
	if res.Merged != "deva" || res.Changed {
		t.Errorf("deva + ε = %q changed=%v", res.Merged, res.Changed)
	}
}

func TestApplyRejectsMalformedInput(t *testing.T) {
	e := newEngine(t)

	if _, err := e.Apply("xq#", "a"); !errors.Is(err, varna.ErrMalformedInput) {
		t.Fatalf("err = %v, want malformed input", err)
	}
}

func TestApplyDeterministic(t *testing.T) {
	e := newEngine(t)

	first, err := e.Apply("dev", "alaya")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := e.Apply("dev", "alaya")
		if err != nil {
			t.Fatal(err)
		}
		if again.Merged != first.Merged || again.Trace.String() != first.Trace.String() {
			t.Fatalf("run %d diverged", i)
		}
	}
}

func TestRuleRegistryLookup(t *testing.T) {
	e := newEngine(t)

	r, err := e.Graph().Lookup("1.1.1")
	if err != nil {
		t.Fatal(err)
	}
	if r.Text != "vṛddhir ādaic" {
		t.Errorf("1.1.1 text = %q, want vṛddhir ādaic", r.Text)
	}
	if r.Kind != sutra.Samjna {
		t.Errorf("1.1.1 kind = %v", r.Kind)
	}

	if _, err := e.Graph().Lookup("9.9.9"); !errors.Is(err, sutra.ErrNotFound) {
		t.Errorf("lookup of 9.9.9 = %v, want not found", err)
	}
}

func TestExplain(t *testing.T) {
	e := newEngine(t)

	hints := e.Explain("devālaya")
	found := false
	for _, h := range hints {
		if strings.Contains(h, "6.1.101") {
			found = true
		}
	}
	if !found {
		t.Errorf("no savarṇa-dīrgha hint in %v", hints)
	}

	if hints := e.Explain("kṛṣṇa"); len(hints) == 0 {
		t.Error("retroflex ṇ yielded no hint")
	}
}
