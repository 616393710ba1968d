// Package morph decomposes inflected Sanskrit words into stem and
// suffix with their grammatical features: vibhakti (case), vacana
// (number) and liṅga for nominals, lakāra and puruṣa for verbals.
// Coverage follows the rāma-śabda a-stem paradigm and the present
// tense (laṭ) endings, in both Devanāgarī and IAST.
package morph

import (
	"sort"
	"strings"
)

// Category of an analyzed word.
type Category string

const (
	Subanta Category = "Subanta" // nominal
	Tinanta Category = "Tiṅanta" // verbal
	Avyaya  Category = "Avyaya"  // indeclinable / unanalyzed
)

// Analysis is one possible decomposition of a word.
type Analysis struct {
	Original string
	Stem     string
	Suffix   string
	Category Category

	// Subanta features.
	Vibhakti string
	Vacana   string
	Linga    string

	// Tiṅanta features.
	Lakara  string
	Purusha string
}

type feature struct {
	a, b string // case+number for nouns, person+number for verbs
}

var nounEndings = map[string]feature{
	"ः": {"Nominative", "Singular"}, "ौ": {"Nominative", "Dual"},
	"ाः": {"Nominative", "Plural"}, "म्": {"Accusative", "Singular"},
	"ान्": {"Accusative", "Plural"}, "ेन": {"Instrumental", "Singular"},
	"ेण": {"Instrumental", "Singular"}, "ाभ्याम्": {"Instrumental", "Dual"},
	"ैः": {"Instrumental", "Plural"}, "ाय": {"Dative", "Singular"},
	"ेभ्यः": {"Dative", "Plural"}, "ात्": {"Ablative", "Singular"},
	"स्य": {"Genitive", "Singular"}, "योः": {"Genitive", "Dual"},
	"ानाम्": {"Genitive", "Plural"}, "े": {"Locative", "Singular"},
	"ेषु": {"Locative", "Plural"},

	"aḥ": {"Nominative", "Singular"}, "au": {"Nominative", "Dual"},
	"āḥ": {"Nominative", "Plural"}, "am": {"Accusative", "Singular"},
	"ān": {"Accusative", "Plural"}, "ena": {"Instrumental", "Singular"},
	"eṇa": {"Instrumental", "Singular"}, "ābhyām": {"Instrumental", "Dual"},
	"aiḥ": {"Instrumental", "Plural"}, "āya": {"Dative", "Singular"},
	"ebhyaḥ": {"Dative", "Plural"}, "āt": {"Ablative", "Singular"},
	"asya": {"Genitive", "Singular"}, "ayoḥ": {"Genitive", "Dual"},
	"ānām": {"Genitive", "Plural"}, "e": {"Locative", "Singular"},
	"eṣu": {"Locative", "Plural"},
}

var verbEndings = map[string]feature{
	"ति": {"Prathama", "Singular"}, "तः": {"Prathama", "Dual"},
	"न्ति": {"Prathama", "Plural"}, "सि": {"Madhyama", "Singular"},
	"थः": {"Madhyama", "Dual"}, "थ": {"Madhyama", "Plural"},
	"मि": {"Uttama", "Singular"}, "वः": {"Uttama", "Dual"},
	"मः": {"Uttama", "Plural"}, "ते": {"Prathama", "Singular"},

	"ti": {"Prathama", "Singular"}, "taḥ": {"Prathama", "Dual"},
	"nti": {"Prathama", "Plural"}, "si": {"Madhyama", "Singular"},
	"thaḥ": {"Madhyama", "Dual"}, "tha": {"Madhyama", "Plural"},
	"mi": {"Uttama", "Singular"}, "vaḥ": {"Uttama", "Dual"},
	"maḥ": {"Uttama", "Plural"}, "te": {"Prathama", "Singular"},
}

// Analyzer is a rule-based suffix stripper. Stateless and safe for
// concurrent use.
type Analyzer struct {
	nounOrder []string
	verbOrder []string
}

// New builds the analyzer with its built-in paradigms.
func New() *Analyzer {
	return &Analyzer{
		nounOrder: orderedSuffixes(nounEndings),
		verbOrder: orderedSuffixes(verbEndings),
	}
}

// orderedSuffixes sorts longest first so the most specific ending wins,
// with a lexicographic tiebreak for determinism.
func orderedSuffixes(m map[string]feature) []string {
	out := make([]string, 0, len(m))
	for s := range m {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}

// Analyze returns every decomposition of word the paradigms admit, noun
// readings before verb readings. A word matching nothing comes back as
// a single Avyaya entry.
func (a *Analyzer) Analyze(word string) []Analysis {
	word = strings.TrimSpace(word)
	var out []Analysis

	for _, ending := range a.nounOrder {
		if strings.HasSuffix(word, ending) {
			f := nounEndings[ending]
			out = append(out, Analysis{
				Original: word,
				Stem:     strings.TrimSuffix(word, ending),
				Suffix:   ending,
				Category: Subanta,
				Vibhakti: f.a,
				Vacana:   f.b,
				Linga:    "Masculine (a-stem)",
			})
		}
	}
	for _, ending := range a.verbOrder {
		if strings.HasSuffix(word, ending) {
			f := verbEndings[ending]
			out = append(out, Analysis{
				Original: word,
				Stem:     strings.TrimSuffix(word, ending),
				Suffix:   ending,
				Category: Tinanta,
				Lakara:   "Laṭ (Present)",
				Purusha:  f.a,
				Vacana:   f.b,
			})
		}
	}

	if len(out) == 0 {
		out = append(out, Analysis{Original: word, Stem: word, Category: Avyaya})
	}
	return out
}

var karakaByVibhakti = map[string]string{
	"Nominative":   "Kartā (Agent)",
	"Accusative":   "Karma (Object)",
	"Instrumental": "Karaṇa (Instrument)",
	"Dative":       "Sampradāna (Recipient)",
	"Ablative":     "Apādāna (Source)",
	"Genitive":     "Sambandha (Relation)",
	"Locative":     "Adhikaraṇa (Location)",
	"Vocative":     "Sambodhana (Address)",
}

// Karaka maps a subanta vibhakti to its semantic role. A tiṅanta is
// the action itself.
func Karaka(a Analysis) string {
	if a.Category == Tinanta {
		return "Kriyā (Action)"
	}
	if role, ok := karakaByVibhakti[a.Vibhakti]; ok {
		return role
	}
	return "Unknown"
}
