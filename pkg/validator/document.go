package validator

import (
	"errors"
	"regexp"
	"strings"
)

// SplitMode controls document segmentation.
type SplitMode string

const (
	SplitVerse    SplitMode = "verse"    // daṇḍa or newline
	SplitLine     SplitMode = "line"     // newline only
	SplitSentence SplitMode = "sentence" // daṇḍa, period, !, ?, newline
)

// ErrBadSplitMode is returned for an unrecognized split mode.
var ErrBadSplitMode = errors.New("validator: split mode must be verse, line or sentence")

var (
	verseSplit    = regexp.MustCompile(`[।॥\n]+`)
	sentenceSplit = regexp.MustCompile(`[।॥.!?\n]+`)
	noiseSegment  = regexp.MustCompile(`^[\s()\[\]{}०-९0-9.,:;\-_/]+$`)
)

// Segment is one analyzed piece of a document.
type Segment struct {
	Index  int
	Text   string
	Result Result
}

// DocumentResult aggregates per-segment analyses.
type DocumentResult struct {
	SplitMode       SplitMode
	SegmentCount    int
	ValidSegments   int
	InvalidSegments int
	Totals          map[string]int
	Segments        []Segment
}

// ValidateDocument splits a larger text into segments and validates
// each. Numbering and punctuation-only fragments are dropped unless
// includeEmpty is set.
func (v *Validator) ValidateDocument(text string, mode SplitMode, includeEmpty bool) (DocumentResult, error) {
	parts, err := splitDocument(text, mode)
	if err != nil {
		return DocumentResult{}, err
	}
	if !includeEmpty {
		kept := parts[:0]
		for _, s := range parts {
			if strings.TrimSpace(s) != "" && !noiseSegment.MatchString(s) {
				kept = append(kept, s)
			}
		}
		parts = kept
	}

	doc := DocumentResult{
		SplitMode: mode,
		Totals:    map[string]int{"sandhi": 0, "samasa": 0, "vibhakti": 0, "dhatu": 0},
	}
	for i, part := range parts {
		r := v.Validate(part)
		if r.Valid {
			doc.ValidSegments++
		}
		for key := range doc.Totals {
			doc.Totals[key] += r.Patterns[key]
		}
		doc.Segments = append(doc.Segments, Segment{Index: i + 1, Text: part, Result: r})
	}
	doc.SegmentCount = len(doc.Segments)
	doc.InvalidSegments = doc.SegmentCount - doc.ValidSegments
	return doc, nil
}

func splitDocument(text string, mode SplitMode) ([]string, error) {
	var parts []string
	switch SplitMode(strings.ToLower(strings.TrimSpace(string(mode)))) {
	case SplitLine:
		parts = strings.Split(text, "\n")
	case SplitSentence:
		parts = sentenceSplit.Split(text, -1)
	case SplitVerse:
		parts = verseSplit.Split(text, -1)
	default:
		return nil, ErrBadSplitMode
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}
