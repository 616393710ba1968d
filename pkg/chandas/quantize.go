package chandas

import "strings"

// Quantization per Piṅgala: a syllable is guru when its vowel is long,
// when anusvāra or visarga follows, or when a conjunct of two or more
// consonants follows a short vowel (saṃyoga). Everything else is laghu.

var iastShortVowels = map[rune]bool{'a': true, 'i': true, 'u': true, 'ṛ': true, 'ḷ': true}

var iastLongVowels = map[rune]bool{
	'ā': true, 'ī': true, 'ū': true, 'ṝ': true, 'ḹ': true,
	'e': true, 'o': true,
	'A': true, 'I': true, 'U': true, 'E': true, 'O': true,
}

var iastAnusvaraVisarga = map[rune]bool{'ṃ': true, 'ḥ': true, 'M': true, 'H': true}

var devShortVowels = map[rune]bool{'अ': true, 'इ': true, 'उ': true, 'ऋ': true, 'ऌ': true}

var devLongVowels = map[rune]bool{
	'आ': true, 'ई': true, 'ऊ': true, 'ॠ': true,
	'ए': true, 'ऐ': true, 'ओ': true, 'औ': true,
}

var devShortMatra = map[rune]bool{'ि': true, 'ु': true, 'ृ': true}

var devLongMatra = map[rune]bool{
	'ा': true, 'ी': true, 'ू': true, 'ॄ': true,
	'े': true, 'ै': true, 'ो': true, 'ौ': true,
}

var devAnusvara = map[rune]bool{'ं': true, 'ः': true}

const devVirama = '्'

var devConsonants = func() map[rune]bool {
	m := make(map[rune]bool)
	for _, r := range "कखगघङचछजझञटठडढणतथदधनपफबभमयरलवशषसह" {
		m[r] = true
	}
	return m
}()

func quantizeIAST(text string) []Weight {
	clean := []rune(strings.NewReplacer(" ", "", "|", "", "\n", "").Replace(text))
	var weights []Weight
	n := len(clean)
	for i := 0; i < n; i++ {
		ch := clean[i]
		short := iastShortVowels[ch]
		long := iastLongVowels[ch]
		if !short && !long {
			continue
		}
		w := Laghu
		if long {
			w = Guru
		}
		if i+1 < n && iastAnusvaraVisarga[clean[i+1]] {
			w = Guru
		}
		if w == Laghu {
			cons := 0
			for j := i + 1; j < n; j++ {
				if iastAnusvaraVisarga[clean[j]] {
					w = Guru
					break
				}
				if !iastShortVowels[clean[j]] && !iastLongVowels[clean[j]] {
					cons++
					continue
				}
				break
			}
			if cons > 1 {
				w = Guru
			}
		}
		weights = append(weights, w)
	}
	return weights
}

func quantizeDevanagari(text string) []Weight {
	clean := []rune(strings.NewReplacer(" ", "", "।", "", "॥", "", "\n", "").Replace(text))
	var weights []Weight
	n := len(clean)
	i := 0
	for i < n {
		ch := clean[i]

		// Independent vowel.
		if devShortVowels[ch] || devLongVowels[ch] {
			w := Laghu
			if devLongVowels[ch] {
				w = Guru
			}
			if i+1 < n && devAnusvara[clean[i+1]] {
				w = Guru
				i++
			}
			if w == Laghu {
				w = samyogaWeight(clean, i)
			}
			weights = append(weights, w)
			i++
			continue
		}

		// Consonant, possibly heading a virāma-joined cluster.
		if devConsonants[ch] {
			for i+1 < n && clean[i+1] == devVirama {
				i += 2
				if i >= n {
					break
				}
			}
			i++
			if i >= n {
				break
			}
			nxt := clean[i]
			switch {
			case devShortMatra[nxt]:
				w := Laghu
				if i+1 < n && devAnusvara[clean[i+1]] {
					w = Guru
					i++
				}
				if w == Laghu {
					w = samyogaWeight(clean, i)
				}
				weights = append(weights, w)
				i++
			case devLongMatra[nxt]:
				weights = append(weights, Guru)
				i++
			case devAnusvara[nxt]:
				weights = append(weights, Guru)
				i++
			case nxt == devVirama:
				// Halant consonant carries no vowel.
				i++
			default:
				// Inherent a, short.
				weights = append(weights, samyogaWeight(clean, i-1))
			}
			continue
		}

		// Bare mātrā (malformed but tolerated).
		switch {
		case devShortMatra[ch]:
			weights = append(weights, Laghu)
		case devLongMatra[ch]:
			weights = append(weights, Guru)
		}
		i++
	}
	return weights
}

// samyogaWeight promotes a short vowel at pos to guru when two or more
// consonants follow before the next vowel.
func samyogaWeight(chars []rune, pos int) Weight {
	cons := 0
	for j := pos + 1; j < len(chars); j++ {
		if chars[j] == devVirama {
			continue
		}
		if !devConsonants[chars[j]] {
			break
		}
		cons++
	}
	if cons >= 2 {
		return Guru
	}
	return Laghu
}
