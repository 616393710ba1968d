// Package corpus provides the SQLite-backed record store at the loader
// boundary: parsed sūtra metadata and Dhātupāṭha records, queryable and
// reloadable without re-parsing any source text. Rule behavior
// (predicates and actions) is code and never persisted; a stored sūtra
// row is the declarative projection of a loader record.
package corpus

import (
	"github.com/kittclouds/panini/pkg/dhatu"
	"github.com/kittclouds/panini/pkg/sutra"
)

// SutraRow is one persisted sūtra record.
type SutraRow struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	Kind        string   `json:"kind"`
	Description string   `json:"description"`
	Specificity int      `json:"specificity"`
	Scopes      []string `json:"scopes,omitempty"`
	Requires    []string `json:"requires,omitempty"`
	Triggers    []string `json:"triggers,omitempty"`
	Overrides   []string `json:"overrides,omitempty"`
	Inherits    []string `json:"inherits,omitempty"`
	Carries     []string `json:"carries,omitempty"`
	ScopeName   string   `json:"scopeName,omitempty"`
	Term        string   `json:"term,omitempty"`
}

// RowFromRecord projects the declarative part of a loader record.
func RowFromRecord(r sutra.Record) SutraRow {
	return SutraRow{
		ID:          r.ID,
		Text:        r.Text,
		Kind:        r.Kind.String(),
		Description: r.Description,
		Specificity: r.Specificity,
		Scopes:      r.Scope,
		Requires:    r.Requires,
		Triggers:    r.Triggers,
		Overrides:   r.Overrides,
		Inherits:    r.InheritsFrom,
		Carries:     r.CarriesFrom,
		ScopeName:   r.Declares.ScopeName,
		Term:        r.Declares.Term,
	}
}

// DhatuRow is one persisted Dhātupāṭha record.
type DhatuRow struct {
	ID      string `json:"id"`
	Gana    string `json:"gana"`
	Root    string `json:"root"`
	Meaning string `json:"meaning"`
	Pada    string `json:"pada"`
	SetAnit string `json:"setAnit"`
}

// RowFromDhatu converts a registry record to its persisted form.
func RowFromDhatu(d dhatu.Dhatu) DhatuRow {
	return DhatuRow{
		ID:      d.ID,
		Gana:    d.Gana,
		Root:    d.Root,
		Meaning: d.Meaning,
		Pada:    string(d.Pada),
		SetAnit: d.SetAnit,
	}
}

// ToDhatu converts a persisted row back to a registry record.
func (r DhatuRow) ToDhatu() dhatu.Dhatu {
	return dhatu.Dhatu{
		ID:      r.ID,
		Gana:    r.Gana,
		Root:    r.Root,
		Meaning: r.Meaning,
		Pada:    dhatu.Pada(r.Pada),
		SetAnit: r.SetAnit,
	}
}

// Storer is the persistence interface; Store is the sole
// implementation.
type Storer interface {
	UpsertSutra(row SutraRow) error
	GetSutra(id string) (*SutraRow, error)
	SearchSutras(query string) ([]SutraRow, error)
	ListSutras(kind string) ([]SutraRow, error)
	CountSutras() (int, error)

	UpsertDhatu(row DhatuRow) error
	GetDhatu(id string) (*DhatuRow, error)
	ListDhatus(gana string) ([]DhatuRow, error)
	CountDhatus() (int, error)

	Close() error
}
