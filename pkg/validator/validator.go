// Package validator orchestrates the full analysis pipeline: sandhi
// trace detection, morphology, the kāraka semantic graph, compound
// identification and meter analysis, rolled into one Validate call.
package validator

import (
	"fmt"
	"strings"

	"github.com/kittclouds/panini/pkg/chandas"
	"github.com/kittclouds/panini/pkg/karaka"
	"github.com/kittclouds/panini/pkg/morph"
	"github.com/kittclouds/panini/pkg/samasa"
	"github.com/kittclouds/panini/pkg/sandhi"
)

// Severity of a finding.
type Severity string

const (
	Info    Severity = "info"
	Warning Severity = "warning"
	Error   Severity = "error"
)

// Result is the full analysis of one segment.
type Result struct {
	Text        string
	Valid       bool
	Errors      []string
	Warnings    []string
	Suggestions []string
	Patterns    map[string]int
	Graph       *karaka.Graph
	Meter       string
}

// Validator bundles the analyzers. Build once, share freely.
type Validator struct {
	sandhi  *sandhi.Engine
	morph   *morph.Analyzer
	parser  *karaka.Parser
	samasa  *samasa.Analyzer
	chandas *chandas.Analyzer
}

// New builds the pipeline with default analyzers.
func New() (*Validator, error) {
	se, err := sandhi.New()
	if err != nil {
		return nil, fmt.Errorf("validator: %w", err)
	}
	ma := morph.New()
	return &Validator{
		sandhi:  se,
		morph:   ma,
		parser:  karaka.NewParser(ma),
		samasa:  samasa.New(),
		chandas: chandas.New(),
	}, nil
}

// Validate runs the full pipeline on one segment of text.
func (v *Validator) Validate(text string) Result {
	result := Result{
		Text:     text,
		Valid:    true,
		Patterns: map[string]int{"sandhi": 0, "samasa": 0, "vibhakti": 0, "dhatu": 0},
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		result.Valid = false
		result.Errors = append(result.Errors, "empty input")
		return result
	}

	for _, exp := range v.sandhi.Explain(text) {
		result.Suggestions = append(result.Suggestions, exp)
		result.Patterns["sandhi"]++
	}

	v.analyzeMorphology(words, &result)
	v.analyzeSemantics(text, &result)
	v.analyzeCompounds(words, &result)
	v.analyzeMeter(text, &result)

	return result
}

func (v *Validator) analyzeMorphology(words []string, result *Result) {
	for _, word := range words {
		for _, a := range v.morph.Analyze(word) {
			var label string
			switch {
			case a.Vibhakti != "":
				label = fmt.Sprintf("[%s %s]", a.Vibhakti, a.Vacana)
				result.Patterns["vibhakti"]++
			case a.Lakara != "":
				label = fmt.Sprintf("[%s %s %s]", a.Lakara, a.Purusha, a.Vacana)
				result.Patterns["dhatu"]++
			default:
				label = "[unanalyzed]"
			}
			line := fmt.Sprintf("Morphology (%s): %s + %s %s", word, a.Stem, a.Suffix, label)
			if role := morph.Karaka(a); role != "Unknown" {
				line += " -> Role: " + role
			}
			result.Suggestions = append(result.Suggestions, line)
		}
	}
}

func (v *Validator) analyzeSemantics(text string, result *Result) {
	graph := v.parser.Parse(text)
	if graph.NodeCount() == 0 {
		return
	}
	result.Graph = graph
	relations := graph.Relations()
	if len(relations) == 0 {
		return
	}
	result.Suggestions = append(result.Suggestions, "--- Semantic Network (Kāraka) ---")
	for _, r := range relations {
		result.Suggestions = append(result.Suggestions,
			fmt.Sprintf("%s --[%s]--> %s", r.Source.Label, r.Relation, r.Target.Label))
	}
}

func (v *Validator) analyzeCompounds(words []string, result *Result) {
	for _, word := range words {
		if sa := v.samasa.Analyze(word); sa != nil {
			result.Suggestions = append(result.Suggestions,
				fmt.Sprintf("Compound (%s): %s, %s -> %s",
					word, sa.Type, strings.Join(sa.Constituents, " + "), sa.Meaning))
			result.Patterns["samasa"]++
		}
	}
}

func (v *Validator) analyzeMeter(text string, result *Result) {
	mr := v.chandas.Analyze(text)
	if mr.SyllableCount == 0 {
		return
	}
	result.Meter = mr.Meter
	result.Suggestions = append(result.Suggestions,
		fmt.Sprintf("Meter: %s (pattern=%s, syllables=%d)", mr.Meter, mr.Pattern, mr.SyllableCount))
}
