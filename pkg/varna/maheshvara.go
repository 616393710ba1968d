package varna

import "strings"

// The fourteen Māheśvara sūtras, the traditional source of the canonical
// ordering. Each sūtra lists phonemes followed by a one-letter marker
// (anubandha) that pratyāhāra names terminate on.
var MaheshvaraSutras = []string{
	"अ इ उ ण्",
	"ऋ ऌ क्",
	"ए ओ ङ्",
	"ऐ औ च्",
	"ह य व र ट्",
	"ल ण्",
	"ञ म ङ ण न म्",
	"झ भ ञ्",
	"घ ढ ध ष्",
	"ज ब ग ड द श्",
	"ख फ छ ठ थ च ट त व्",
	"क प य्",
	"श ष स र्",
	"ह ल्",
}

// SutraStat summarizes one Māheśvara sūtra: its phoneme count (the
// anubandha excluded) and whether that count is prime. The distribution
// of prime counts is a curiosity of the traditional ordering, reported
// here for reference only; class membership never depends on it.
type SutraStat struct {
	Sutra    string
	Phonemes int
	Prime    bool
}

// MaheshvaraStats computes per-sūtra phoneme counts and primality.
func MaheshvaraStats() []SutraStat {
	stats := make([]SutraStat, len(MaheshvaraSutras))
	for i, s := range MaheshvaraSutras {
		n := len(strings.Fields(s)) - 1 // last field is the anubandha
		if n < 0 {
			n = 0
		}
		stats[i] = SutraStat{Sutra: s, Phonemes: n, Prime: isPrime(n)}
	}
	return stats
}

// PrimeDensity returns the fraction of sūtras with a prime phoneme count.
func PrimeDensity() float64 {
	stats := MaheshvaraStats()
	primes := 0
	for _, s := range stats {
		if s.Prime {
			primes++
		}
	}
	return float64(primes) / float64(len(stats))
}

func isPrime(n int) bool {
	if n <= 1 {
		return false
	}
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}
