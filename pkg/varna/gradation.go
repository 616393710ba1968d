package varna

// Vowel gradation tables used by the sandhi rules: savarṇa (homorganic)
// families, dīrgha (lengthening), guṇa and vṛddhi substitutions, and the
// yaṇ semivowel correspondence.

// savarnaFamily groups simple vowels that differ only in length.
// Diphthongs have no savarṇa partner here.
var savarnaFamily = map[string]int{
	"a": 0, "ā": 0,
	"i": 1, "ī": 1,
	"u": 2, "ū": 2,
	"ṛ": 3, "ṝ": 3,
	"ḷ": 4,
}

// Savarna reports whether two vowels are homorganic (same family,
// length ignored).
func (t *Table) Savarna(a, b *Phoneme) bool {
	if a == nil || b == nil || !a.Vowel || !b.Vowel {
		return false
	}
	fa, oka := savarnaFamily[a.IAST]
	fb, okb := savarnaFamily[b.IAST]
	return oka && okb && fa == fb
}

var dirghaOf = map[string]string{
	"a": "ā", "ā": "ā",
	"i": "ī", "ī": "ī",
	"u": "ū", "ū": "ū",
	"ṛ": "ṝ", "ṝ": "ṝ",
	"ḷ": "ṝ", // ḹ is outside the table; the retroflex long vowel stands in
}

// Dirgha returns the long counterpart of a simple vowel, or nil.
func (t *Table) Dirgha(p *Phoneme) *Phoneme {
	if p == nil {
		return nil
	}
	long, ok := dirghaOf[p.IAST]
	if !ok {
		return nil
	}
	d, _ := t.byIAST[long]
	return d
}

// gunaOf maps ik vowels to their guṇa substitute. The ṛ and ḷ grades
// surface as "ar"/"al" (vowel plus semivowel with virāma in Devanāgarī).
var gunaOf = map[string]string{
	"i": "e", "ī": "e",
	"u": "o", "ū": "o",
	"ṛ": "ar", "ṝ": "ar",
	"ḷ": "al",
}

// Guna returns the guṇa substitute for an ik vowel as IAST ("" if none).
func (t *Table) Guna(p *Phoneme) string {
	if p == nil {
		return ""
	}
	return gunaOf[p.IAST]
}

// vrddhiOf maps ec vowels to their vṛddhi substitute (a/ā + ec → vṛddhi).
var vrddhiOf = map[string]string{
	"e": "ai", "ai": "ai",
	"o": "au", "au": "au",
}

// Vrddhi returns the vṛddhi substitute for an ec vowel as IAST ("" if none).
func (t *Table) Vrddhi(p *Phoneme) string {
	if p == nil {
		return ""
	}
	return vrddhiOf[p.IAST]
}

// yanOf maps ik vowels to the corresponding semivowel.
var yanOf = map[string]string{
	"i": "y", "ī": "y",
	"u": "v", "ū": "v",
	"ṛ": "r", "ṝ": "r",
	"ḷ": "l",
}

// Yan returns the semivowel substitute for an ik vowel ("" if none).
func (t *Table) Yan(p *Phoneme) string {
	if p == nil {
		return ""
	}
	return yanOf[p.IAST]
}
