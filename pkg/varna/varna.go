// Package varna provides the canonical Sanskrit phoneme table (varṇamālā):
// a fixed ordering of the phonetic alphabet, named contiguous classes
// (pratyāhāras) over that ordering, and script-aware tokenization for
// Devanāgarī and IAST input.
//
// The table is fixed data built once; it is read-only after construction
// and safe for concurrent use.
package varna

import "fmt"

// Place is the articulation point of a phoneme.
type Place string

const (
	Kantha       Place = "kantha" // guttural
	Talu         Place = "talu"   // palatal
	Murdha       Place = "murdha" // retroflex
	Danta        Place = "danta"  // dental
	Ostha        Place = "ostha"  // labial
	KanthaTalu   Place = "kantha-talu"
	KanthaOstha  Place = "kantha-ostha"
	DantaOstha   Place = "danta-ostha"
	Nasika       Place = "nasika"
	PlaceUnknown Place = "none"
)

// Phoneme is one atomic sound with its canonical rank in the fixed ordering.
type Phoneme struct {
	Symbol rune   // Devanāgarī form, e.g. 'क'
	IAST   string // romanization, e.g. "k"
	Rank   int    // position in the canonical ordering
	Vowel  bool   // svara (ac)
	Long   bool   // dīrgha (prosodically long)
	Voiced bool   // ghoṣa
	Place  Place
	Matra  rune // dependent vowel sign, 0 if none
}

// Special marks kept at the tail of the ordering.
const (
	Virama   = '्'
	Anusvara = 'ं'
	Visarga  = 'ः'
)

// phonemes lists the canonical ordering. Vowels first (simple, then
// diphthongs), stops varga by varga, semivowels, sibilants, then the
// ayogavāha marks and the virāma. Classes below are ranges over this order,
// so the order itself is load-bearing: do not reorder.
var phonemes = []Phoneme{
	{'अ', "a", 0, true, false, true, Kantha, 0},
	{'आ', "ā", 1, true, true, true, Kantha, 'ा'},
	{'इ', "i", 2, true, false, true, Talu, 'ि'},
	{'ई', "ī", 3, true, true, true, Talu, 'ी'},
	{'उ', "u", 4, true, false, true, Ostha, 'ु'},
	{'ऊ', "ū", 5, true, true, true, Ostha, 'ू'},
	{'ऋ', "ṛ", 6, true, false, true, Murdha, 'ृ'},
	{'ॠ', "ṝ", 7, true, true, true, Murdha, 'ॄ'},
	{'ऌ', "ḷ", 8, true, false, true, Danta, 'ॢ'},
	{'ए', "e", 9, true, true, true, KanthaTalu, 'े'},
	{'ऐ', "ai", 10, true, true, true, KanthaTalu, 'ै'},
	{'ओ', "o", 11, true, true, true, KanthaOstha, 'ो'},
	{'औ', "au", 12, true, true, true, KanthaOstha, 'ौ'},

	{'क', "k", 13, false, false, false, Kantha, 0},
	{'ख', "kh", 14, false, false, false, Kantha, 0},
	{'ग', "g", 15, false, false, true, Kantha, 0},
	{'घ', "gh", 16, false, false, true, Kantha, 0},
	{'ङ', "ṅ", 17, false, false, true, Kantha, 0},

	{'च', "c", 18, false, false, false, Talu, 0},
	{'छ', "ch", 19, false, false, false, Talu, 0},
	{'ज', "j", 20, false, false, true, Talu, 0},
	{'झ', "jh", 21, false, false, true, Talu, 0},
	{'ञ', "ñ", 22, false, false, true, Talu, 0},

	{'ट', "ṭ", 23, false, false, false, Murdha, 0},
	{'ठ', "ṭh", 24, false, false, false, Murdha, 0},
	{'ड', "ḍ", 25, false, false, true, Murdha, 0},
	{'ढ', "ḍh", 26, false, false, true, Murdha, 0},
	{'ण', "ṇ", 27, false, false, true, Murdha, 0},

	{'त', "t", 28, false, false, false, Danta, 0},
	{'थ', "th", 29, false, false, false, Danta, 0},
	{'द', "d", 30, false, false, true, Danta, 0},
	{'ध', "dh", 31, false, false, true, Danta, 0},
	{'न', "n", 32, false, false, true, Danta, 0},

	{'प', "p", 33, false, false, false, Ostha, 0},
	{'फ', "ph", 34, false, false, false, Ostha, 0},
	{'ब', "b", 35, false, false, true, Ostha, 0},
	{'भ', "bh", 36, false, false, true, Ostha, 0},
	{'म', "m", 37, false, false, true, Ostha, 0},

	{'य', "y", 38, false, false, true, Talu, 0},
	{'र', "r", 39, false, false, true, Murdha, 0},
	{'ल', "l", 40, false, false, true, Danta, 0},
	{'व', "v", 41, false, false, true, DantaOstha, 0},

	{'श', "ś", 42, false, false, false, Talu, 0},
	{'ष', "ṣ", 43, false, false, false, Murdha, 0},
	{'स', "s", 44, false, false, false, Danta, 0},
	{'ह', "h", 45, false, false, true, Kantha, 0},

	{Anusvara, "ṃ", 46, false, false, true, Nasika, 0},
	{Visarga, "ḥ", 47, false, false, false, Kantha, 0},
	{Virama, "", 48, false, false, false, PlaceUnknown, 0},
}

// Table is the immutable phoneme registry. Build once with NewTable and
// share freely; no method mutates it.
type Table struct {
	phonemes []Phoneme
	bySymbol map[rune]*Phoneme
	byIAST   map[string]*Phoneme
	byMatra  map[rune]*Phoneme
	classes  map[string]Class
}

// NewTable builds the canonical table with all pratyāhāra classes resolved.
func NewTable() *Table {
	t := &Table{
		phonemes: phonemes,
		bySymbol: make(map[rune]*Phoneme, len(phonemes)),
		byIAST:   make(map[string]*Phoneme, len(phonemes)),
		byMatra:  make(map[rune]*Phoneme, 16),
		classes:  make(map[string]Class, len(classRanges)),
	}
	for i := range t.phonemes {
		p := &t.phonemes[i]
		t.bySymbol[p.Symbol] = p
		if p.IAST != "" {
			t.byIAST[p.IAST] = p
		}
		if p.Matra != 0 {
			t.byMatra[p.Matra] = p
		}
	}
	for name, r := range classRanges {
		t.classes[name] = Class{Name: name, Lo: r[0], Hi: r[1]}
	}
	return t
}

// Len returns the size of the canonical alphabet.
func (t *Table) Len() int { return len(t.phonemes) }

// All returns the phonemes in canonical order.
func (t *Table) All() []Phoneme { return t.phonemes }

// Lookup resolves a Devanāgarī symbol.
func (t *Table) Lookup(sym rune) (*Phoneme, bool) {
	p, ok := t.bySymbol[sym]
	return p, ok
}

// LookupIAST resolves a romanized form ("k", "ai", "ṣ", …).
func (t *Table) LookupIAST(s string) (*Phoneme, bool) {
	p, ok := t.byIAST[s]
	return p, ok
}

// VowelOfMatra resolves a dependent vowel sign to its independent vowel.
func (t *Table) VowelOfMatra(m rune) (*Phoneme, bool) {
	p, ok := t.byMatra[m]
	return p, ok
}

// RankOf returns the canonical rank of a Devanāgarī symbol.
func (t *Table) RankOf(sym rune) (int, error) {
	p, ok := t.bySymbol[sym]
	if !ok {
		return 0, fmt.Errorf("varna: %w: %q", ErrMalformedInput, sym)
	}
	return p.Rank, nil
}
