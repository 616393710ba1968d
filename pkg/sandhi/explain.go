package sandhi

import (
	"fmt"
	"strings"
)

// Explain heuristically spots traces of sandhi already present in text:
// surface shapes that could only (or most plausibly) have arisen from a
// boundary rule. It is reverse engineering, not derivation, so the
// output is advisory.
func (e *Engine) Explain(text string) []string {
	var out []string
	add := func(id, note string) {
		out = append(out, fmt.Sprintf("possible %s (%s): %s", ruleName(e.graph, id), id, note))
	}

	if strings.Contains(text, "्य") || strings.Contains(text, "्व") ||
		containsAny(text, "ya", "yā", "vya") {
		add("6.1.77", "a semivowel may derive from i/ī or u/ū before a vowel")
	}
	if containsAny(text, "े", "ो", "e", "o") {
		add("6.1.87", "e/o may derive from a/ā + i/u")
	}
	if containsAny(text, "ै", "ौ", "ai", "au") {
		add("6.1.88", "ai/au may derive from a/ā + e/o")
	}
	if containsAny(text, "ा", "ी", "ू", "ā", "ī", "ū") {
		add("6.1.101", "a long vowel may derive from two similar vowels")
	}
	if containsAny(text, "ण", "ṇ") {
		add("8.4.2", "retroflex ṇ may derive from n after r/ṛ/ṝ/ṣ")
	}
	return out
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
