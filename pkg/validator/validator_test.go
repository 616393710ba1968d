package validator

import (
	"errors"
	"testing"
)

func newValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := New()
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestValidateSentence(t *testing.T) {
	v := newValidator(t)

	r := v.Validate("रामः वनम् गच्छति")
	if !r.Valid {
		t.Fatalf("errors = %v", r.Errors)
	}
	if r.Patterns["vibhakti"] < 2 {
		t.Errorf("vibhakti readings = %d, want at least 2", r.Patterns["vibhakti"])
	}
	if r.Patterns["dhatu"] < 1 {
		t.Errorf("dhatu readings = %d, want at least 1", r.Patterns["dhatu"])
	}
	if r.Graph == nil {
		t.Fatal("no semantic graph")
	}
	if r.Graph.EdgeCount() != 2 {
		t.Errorf("kāraka edges = %d, want 2", r.Graph.EdgeCount())
	}
	if r.Meter == "" {
		t.Error("meter missing")
	}
	if len(r.Suggestions) == 0 {
		t.Error("no suggestions produced")
	}
}

func TestValidateCompound(t *testing.T) {
	v := newValidator(t)

	r := v.Validate("rājapuruṣaḥ gacchati")
	if r.Patterns["samasa"] != 1 {
		t.Errorf("samasa hits = %d, want 1", r.Patterns["samasa"])
	}
}

func TestValidateEmpty(t *testing.T) {
	v := newValidator(t)

	r := v.Validate("   ")
	if r.Valid {
		t.Error("blank input validated")
	}
	if len(r.Errors) == 0 {
		t.Error("no error recorded")
	}
}

func TestValidateDocumentVerses(t *testing.T) {
	v := newValidator(t)

	text := "रामः वनम् गच्छति। कृष्णः फलम् इच्छति॥ १२ ॥"
	doc, err := v.ValidateDocument(text, SplitVerse, false)
	if err != nil {
		t.Fatal(err)
	}
	if doc.SegmentCount != 2 {
		t.Fatalf("segments = %d, want 2 after noise filtering", doc.SegmentCount)
	}
	if doc.ValidSegments != 2 || doc.InvalidSegments != 0 {
		t.Errorf("valid/invalid = %d/%d", doc.ValidSegments, doc.InvalidSegments)
	}
	if doc.Totals["vibhakti"] < 4 {
		t.Errorf("total vibhakti = %d, want at least 4", doc.Totals["vibhakti"])
	}
	for i, seg := range doc.Segments {
		if seg.Index != i+1 {
			t.Errorf("segment %d numbered %d", i, seg.Index)
		}
	}
}

func TestValidateDocumentLines(t *testing.T) {
	v := newValidator(t)

	doc, err := v.ValidateDocument("rāmaḥ gacchati\n\nkṛṣṇaḥ paṭhati", SplitLine, false)
	if err != nil {
		t.Fatal(err)
	}
	if doc.SegmentCount != 2 {
		t.Errorf("segments = %d, want 2", doc.SegmentCount)
	}
}

func TestValidateDocumentBadMode(t *testing.T) {
	v := newValidator(t)

	_, err := v.ValidateDocument("rāmaḥ", SplitMode("paragraph"), false)
	if !errors.Is(err, ErrBadSplitMode) {
		t.Errorf("err = %v, want ErrBadSplitMode", err)
	}
}
