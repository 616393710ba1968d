package varna

import (
	"fmt"
	"strings"
	"unicode"
)

// Script identifies the writing system of an input string.
type Script int

const (
	ScriptIAST Script = iota
	ScriptDevanagari
)

// DetectScript reports Devanāgarī if the text contains any Devanāgarī
// code point, IAST otherwise.
func DetectScript(text string) Script {
	for _, r := range text {
		if r >= 0x0900 && r <= 0x097F {
			return ScriptDevanagari
		}
	}
	return ScriptIAST
}

// skippable runes carry no phonemic content: whitespace, daṇḍas and
// common punctuation.
func skippable(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case '।', '॥', '|', '.', ',', ';', ':', '-', '\'', '!', '?':
		return true
	}
	return false
}

// Tokenize splits text into canonical phonemes, detecting the script.
// Any symbol outside the canonical table yields ErrMalformedInput.
func (t *Table) Tokenize(text string) ([]*Phoneme, error) {
	if DetectScript(text) == ScriptDevanagari {
		return t.tokenizeDevanagari(text)
	}
	return t.tokenizeIAST(text)
}

// Validate rejects input containing phonemes outside the canonical table.
func (t *Table) Validate(text string) error {
	_, err := t.Tokenize(text)
	return err
}

// tokenizeIAST consumes romanized text, longest match first so that the
// digraphs (ai, au, kh, gh, ch, jh, ṭh, ḍh, th, dh, ph, bh) win over
// their one-letter prefixes.
func (t *Table) tokenizeIAST(text string) ([]*Phoneme, error) {
	runes := []rune(strings.ToLower(text))
	out := make([]*Phoneme, 0, len(runes))
	for i := 0; i < len(runes); {
		if skippable(runes[i]) {
			i++
			continue
		}
		if i+1 < len(runes) {
			if p, ok := t.byIAST[string(runes[i:i+2])]; ok {
				out = append(out, p)
				i += 2
				continue
			}
		}
		p, ok := t.byIAST[string(runes[i])]
		if !ok {
			return nil, fmt.Errorf("varna: %w: %q at %d", ErrMalformedInput, runes[i], i)
		}
		out = append(out, p)
		i++
	}
	return out, nil
}

// tokenizeDevanagari consumes Devanāgarī text. A consonant letter carries
// the inherent short a unless followed by a mātrā or virāma.
func (t *Table) tokenizeDevanagari(text string) ([]*Phoneme, error) {
	runes := []rune(text)
	inherentA := t.bySymbol['अ']
	out := make([]*Phoneme, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if skippable(r) {
			continue
		}
		if v, ok := t.byMatra[r]; ok {
			// A mātrā normally follows a consonant; standalone it still
			// denotes its vowel.
			out = append(out, v)
			continue
		}
		p, ok := t.bySymbol[r]
		if !ok {
			return nil, fmt.Errorf("varna: %w: %q at %d", ErrMalformedInput, r, i)
		}
		out = append(out, p)
		if p.Vowel || p.Symbol == Virama || p.Symbol == Anusvara || p.Symbol == Visarga {
			continue
		}
		// Consonant: look ahead for mātrā or virāma; otherwise inherent a.
		if i+1 < len(runes) {
			next := runes[i+1]
			if _, isMatra := t.byMatra[next]; isMatra {
				continue
			}
			if next == Virama {
				continue
			}
		}
		out = append(out, inherentA)
	}
	return out, nil
}
