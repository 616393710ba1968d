package sandhi

import (
	"unicode/utf8"

	"github.com/kittclouds/panini/pkg/varna"
)

// Retroflexion (ṇatva): after r, ṛ, ṝ or ṣ, a following dental n becomes
// retroflex ṇ, even across intervening vowels, gutturals, labials,
// semivowels, h and anusvāra (8.4.2). Anything else blocks the spread.

var iastTriggers = map[rune]bool{'r': true, 'ṛ': true, 'ṝ': true, 'ṣ': true}

var iastTransparent = map[rune]bool{
	'a': true, 'ā': true, 'i': true, 'ī': true, 'u': true, 'ū': true,
	'e': true, 'o': true,
	'k': true, 'g': true, 'ṅ': true,
	'p': true, 'b': true, 'm': true,
	'y': true, 'v': true, 'h': true, 'ṃ': true,
}

var devTriggers = map[rune]bool{'र': true, 'ष': true, 'ऋ': true, 'ॠ': true, 'ृ': true, 'ॄ': true}

var devTransparent = map[rune]bool{
	'अ': true, 'आ': true, 'इ': true, 'ई': true, 'उ': true, 'ऊ': true,
	'ए': true, 'ओ': true,
	'ा': true, 'ि': true, 'ी': true, 'ु': true, 'ू': true, 'े': true, 'ो': true,
	'क': true, 'ख': true, 'ग': true, 'घ': true, 'ङ': true,
	'प': true, 'फ': true, 'ब': true, 'भ': true, 'म': true,
	'य': true, 'व': true, 'ह': true,
	varna.Virama: true, varna.Anusvara: true,
}

// natvaSite returns the byte offset of the first n eligible for
// retroflexion, or -1.
func natvaSite(form string) int {
	if varna.DetectScript(form) == varna.ScriptDevanagari {
		return natvaSiteDevanagari(form)
	}
	return natvaSiteIAST(form)
}

func natvaSiteIAST(form string) int {
	armed := false
	for i, r := range form {
		switch {
		case iastTriggers[r]:
			armed = true
		case r == 'n':
			if armed && iastVowelFollows(form, i+utf8.RuneLen(r)) {
				return i
			}
			armed = false
		case iastTransparent[r]:
			// spread continues
		default:
			armed = false
		}
	}
	return -1
}

func iastVowelFollows(form string, at int) bool {
	if at >= len(form) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(form[at:])
	switch r {
	case 'a', 'ā', 'i', 'ī', 'u', 'ū', 'ṛ', 'ṝ', 'ḷ', 'e', 'o':
		return true
	}
	return false
}

func natvaSiteDevanagari(form string) int {
	armed := false
	for i, r := range form {
		switch {
		case devTriggers[r]:
			armed = true
		case r == 'न':
			if armed && devVowelFollows(form, i+utf8.RuneLen(r)) {
				return i
			}
			armed = false
		case devTransparent[r]:
		default:
			armed = false
		}
	}
	return -1
}

// devVowelFollows: a Devanāgarī न carries a vowel unless the next rune
// is a virāma.
func devVowelFollows(form string, at int) bool {
	if at >= len(form) {
		return true // final न carries the inherent a
	}
	r, _ := utf8.DecodeRuneInString(form[at:])
	return r != varna.Virama
}
