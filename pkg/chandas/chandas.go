// Package chandas implements Piṅgala's prosodic algorithms: Laghu/Guru
// quantization of Sanskrit text, Prastāra enumeration, Naṣṭam and
// Uddiṣṭam index conversions, and meter identification. Works on both
// IAST and Devanāgarī input.
package chandas

import (
	"errors"
	"strconv"
	"strings"

	"github.com/kittclouds/panini/pkg/varna"
)

// Weight is the metrical weight of one syllable.
type Weight uint8

const (
	Laghu Weight = iota // light
	Guru                // heavy
)

func (w Weight) String() string {
	if w == Guru {
		return "Guru"
	}
	return "Laghu"
}

// Bit returns the pattern digit: 0 for laghu, 1 for guru.
func (w Weight) Bit() byte {
	if w == Guru {
		return '1'
	}
	return '0'
}

// Result of a meter analysis. Pattern is the binary string form, one
// digit per syllable, most significant first.
type Result struct {
	Text          string
	Pattern       string
	Weights       []Weight
	SyllableCount int
	LaghuCount    int
	GuruCount     int
	Decimal       uint64
	Meter         string
}

func (r Result) String() string {
	var b strings.Builder
	b.WriteString("MeterResult(meter=")
	b.WriteString(r.Meter)
	b.WriteString(", pattern=")
	b.WriteString(r.Pattern)
	b.WriteString(", syllables=")
	b.WriteString(strconv.Itoa(r.SyllableCount))
	b.WriteString(", L:G=")
	b.WriteString(strconv.Itoa(r.LaghuCount))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(r.GuruCount))
	b.WriteByte(')')
	return b.String()
}

// Analyzer is the prosodic analyzer. Stateless and safe for concurrent
// use.
type Analyzer struct{}

// New returns a ready analyzer.
func New() *Analyzer { return &Analyzer{} }

// Analyze quantizes text into a syllable weight pattern and identifies
// the meter by syllable count.
func (a *Analyzer) Analyze(text string) Result {
	var weights []Weight
	if varna.DetectScript(text) == varna.ScriptDevanagari {
		weights = quantizeDevanagari(text)
	} else {
		weights = quantizeIAST(text)
	}
	return newResult(text, weights)
}

func newResult(text string, weights []Weight) Result {
	pattern := make([]byte, len(weights))
	guru := 0
	for i, w := range weights {
		pattern[i] = w.Bit()
		if w == Guru {
			guru++
		}
	}
	r := Result{
		Text:          text,
		Pattern:       string(pattern),
		Weights:       weights,
		SyllableCount: len(weights),
		LaghuCount:    len(weights) - guru,
		GuruCount:     guru,
		Meter:         identifyMeter(len(weights)),
	}
	if len(weights) > 0 && len(weights) <= 64 {
		r.Decimal, _ = strconv.ParseUint(r.Pattern, 2, 64)
	}
	return r
}

// identifyMeter names a meter by pāda (quarter-verse) syllable count.
func identifyMeter(n int) string {
	switch {
	case n == 0:
		return "Unknown"
	case n == 6:
		return "Gāyatrī (6)"
	case n == 7:
		return "Uṣṇih (7)"
	case n == 8:
		return "Anuṣṭubh / Śloka (8)"
	case n == 9:
		return "Bṛhatī (9)"
	case n == 11:
		return "Triṣṭubh (11)"
	case n == 12:
		return "Jagatī (12)"
	}
	return "Unclassified (" + strconv.Itoa(n) + " syllables)"
}

// maxPrastaraLength bounds enumeration; 2^20 patterns is already a
// megaline of output.
const maxPrastaraLength = 20

// ErrPatternTooLong is returned when a requested pattern length exceeds
// what the index arithmetic supports.
var ErrPatternTooLong = errors.New("chandas: pattern too long")

// ErrBadPattern is returned for patterns containing digits other than 0
// and 1.
var ErrBadPattern = errors.New("chandas: pattern must be binary")

// Prastara enumerates all 2^n meter patterns of length n in index
// order.
func (a *Analyzer) Prastara(n int) ([]string, error) {
	if n < 0 || n > maxPrastaraLength {
		return nil, ErrPatternTooLong
	}
	out := make([]string, 0, 1<<n)
	for i := uint64(0); i < 1<<n; i++ {
		out = append(out, pad(strconv.FormatUint(i, 2), n))
	}
	return out, nil
}

// Nashtam recovers the pattern at a given prastāra index.
func (a *Analyzer) Nashtam(index uint64, length int) (string, error) {
	if length < 0 || length > 64 {
		return "", ErrPatternTooLong
	}
	return pad(strconv.FormatUint(index, 2), length), nil
}

// Uddishtam recovers the prastāra index of a pattern.
func (a *Analyzer) Uddishtam(pattern string) (uint64, error) {
	if len(pattern) > 64 {
		return 0, ErrPatternTooLong
	}
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '0' && pattern[i] != '1' {
			return 0, ErrBadPattern
		}
	}
	if pattern == "" {
		return 0, nil
	}
	return strconv.ParseUint(pattern, 2, 64)
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
