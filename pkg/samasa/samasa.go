// Package samasa classifies Sanskrit compound words into the Pāṇinian
// compound types: avyayībhāva, dvandva, bahuvrīhi, karmadhāraya and
// tatpuruṣa, splitting them against a small built-in lexicon.
package samasa

import "strings"

// Result of compound analysis.
type Result struct {
	Original     string
	Constituents []string
	Type         string
	Meaning      string
}

var avyayaPrefixes = []string{
	"yathā", "yatha", "prati", "upa", "anu", "nir", "sah",
	"यथा", "प्रति", "उप", "अनु", "निर्", "सह",
}

var lexicon = map[string]string{
	"rāja": "king", "raja": "king",
	"puruṣa": "man", "purusha": "man",
	"nīla": "blue", "neela": "blue",
	"kamala": "lotus",
	"pīta":   "yellow", "pita": "yellow",
	"ambara": "cloth",
	"rāma":   "Rāma", "rama": "Rāma", "ram": "Rāma",
	"kṛṣṇa": "Kṛṣṇa", "krishna": "Kṛṣṇa",
	"gaja":  "elephant",
	"ānana": "face", "anana": "face",
	"deva":  "god",
	"dāsa":  "servant", "dasa": "servant",
	"dharma": "dharma",
	"artha":  "wealth",
	"kāma":   "desire", "kama": "desire",
	"mokṣa": "liberation", "moksha": "liberation",
	"nara":  "man",
	"siṃha": "lion", "simha": "lion",
	"mahā": "great", "maha": "great",
	"राज": "king", "पुरुष": "man", "नील": "blue", "कमल": "lotus",
	"पीत": "yellow", "अम्बर": "cloth", "राम": "Rāma", "कृष्ण": "Kṛṣṇa",
	"गज": "elephant", "आनन": "face", "देव": "god", "दास": "servant",
	"धर्म": "dharma", "अर्थ": "wealth", "काम": "desire", "मोक्ष": "liberation",
	"नर": "man", "सिंह": "lion", "महा": "great",
}

type pattern struct {
	firsts, seconds []string
	meaning         string
}

var bahuvrihiPatterns = []pattern{
	{[]string{"pīta", "pita", "पीत"}, []string{"ambara", "अम्बर", "āmbara"},
		"One who has yellow garments (Viṣṇu)"},
	{[]string{"gaja", "गज"}, []string{"ānana", "anana", "आनन"},
		"One who has an elephant face (Gaṇeśa)"},
	{[]string{"nara", "नर"}, []string{"siṃha", "simha", "सिंह"},
		"One who is a lion among men (Viṣṇu)"},
}

var karmadharayaPatterns = []pattern{
	{[]string{"nīla", "neela", "नील"}, []string{"kamala", "कमल"}, "The blue lotus"},
	{[]string{"mahā", "maha", "महा"}, []string{"deva", "देव"}, "The great god"},
	{[]string{"mahā", "maha", "महा"}, []string{"rāja", "raja", "राज"}, "The great king"},
}

var tatpurushaPatterns = []pattern{
	{[]string{"rāja", "raja", "राज"}, []string{"puruṣa", "purusha", "पुरुष"},
		"Man of the King"},
	{[]string{"deva", "देव"}, []string{"dāsa", "dasa", "दास"},
		"Servant of god"},
	{[]string{"dharma", "धर्म"}, []string{"artha", "अर्थ"},
		"Meaning of dharma"},
}

// Analyzer splits and classifies compounds. Stateless and safe for
// concurrent use.
type Analyzer struct{}

// New returns a ready analyzer.
func New() *Analyzer { return &Analyzer{} }

// Analyze returns the classification of word, or nil when no compound
// reading is found. Checks run in fixed priority: avyayībhāva, dvandva,
// bahuvrīhi, karmadhāraya, tatpuruṣa.
func (a *Analyzer) Analyze(word string) *Result {
	clean := strings.TrimSpace(word)
	if clean == "" {
		return nil
	}
	stem := stripEnding(strings.ToLower(clean))

	for _, prefix := range avyayaPrefixes {
		if strings.HasPrefix(strings.ToLower(clean), prefix) {
			remainder := clean[len(prefix):]
			if remainder != "" {
				return &Result{
					Original:     word,
					Constituents: []string{prefix, remainder},
					Type:         "Avyayībhāva (Adverbial)",
					Meaning:      "In the manner of / regarding " + remainder,
				}
			}
		}
	}

	if r := tryDvandva(word, clean); r != nil {
		return r
	}
	if r := tryPatterns(word, stem, bahuvrihiPatterns, "Bahuvrīhi (Possessive)"); r != nil {
		return r
	}
	if r := tryPatterns(word, stem, karmadharayaPatterns, "Karmadhāraya (Descriptive)"); r != nil {
		return r
	}
	return tryPatterns(word, stem, tatpurushaPatterns, "Tatpuruṣa (Determinative)")
}

func stripEnding(s string) string {
	for _, suffix := range []string{"ḥ", "h", "m", "ṁ", "म्", "ः"} {
		if strings.HasSuffix(s, suffix) {
			return strings.TrimSuffix(s, suffix)
		}
	}
	return s
}

func inLexicon(part string) bool {
	if _, ok := lexicon[part]; ok {
		return true
	}
	_, ok := lexicon[part+"a"]
	return ok
}

// tryDvandva detects the copulative reading from a dual ending: the
// constituents appear coordinated, marked by -au or -ौ.
func tryDvandva(word, clean string) *Result {
	lc := strings.ToLower(clean)
	var base string
	switch {
	case strings.HasSuffix(lc, "au"):
		base = lc[:len(lc)-2]
	case strings.HasSuffix(clean, "ौ"):
		base = strings.TrimSuffix(lc, "ौ")
	default:
		return nil
	}
	runes := []rune(base)
	for i := 1; i < len(runes); i++ {
		p1, p2 := string(runes[:i]), string(runes[i:])
		if inLexicon(p1) && inLexicon(p2) {
			return &Result{
				Original:     word,
				Constituents: []string{p1, p2},
				Type:         "Dvandva (Copulative)",
				Meaning:      p1 + " and " + p2,
			}
		}
	}
	return nil
}

func tryPatterns(word, stem string, patterns []pattern, typ string) *Result {
	for _, p := range patterns {
		for _, f := range p.firsts {
			for _, s := range p.seconds {
				if strings.Contains(stem, f) && strings.Contains(stem, s) {
					return &Result{
						Original:     word,
						Constituents: []string{f, s},
						Type:         typ,
						Meaning:      p.meaning,
					}
				}
			}
		}
	}
	return nil
}
