package corpus

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/kittclouds/panini/pkg/dhatu"
	"github.com/kittclouds/panini/pkg/sutra"
)

// Store is the SQLite-backed corpus store. Thread-safe.
type Store struct {
	mu  sync.RWMutex
	db  *sql.DB
	log *slog.Logger
}

const schema = `
CREATE TABLE IF NOT EXISTS sutras (
    id TEXT PRIMARY KEY,
    text TEXT NOT NULL,
    kind TEXT NOT NULL,
    description TEXT,
    specificity INTEGER NOT NULL DEFAULT 0,
    scopes TEXT,
    requires TEXT,
    triggers TEXT,
    overrides TEXT,
    inherits TEXT,
    carries TEXT,
    scope_name TEXT,
    term TEXT
);

CREATE INDEX IF NOT EXISTS idx_sutras_kind ON sutras(kind);

CREATE TABLE IF NOT EXISTS dhatus (
    id TEXT PRIMARY KEY,
    gana TEXT NOT NULL,
    root TEXT NOT NULL,
    meaning TEXT,
    pada TEXT,
    set_anit TEXT
);

CREATE INDEX IF NOT EXISTS idx_dhatus_gana ON dhatus(gana);
CREATE INDEX IF NOT EXISTS idx_dhatus_root ON dhatus(root);
`

// New creates an in-memory store.
func New() (*Store, error) {
	return NewWithDSN(":memory:")
}

// NewWithDSN creates a store backed by the given data source name. Use
// ":memory:" for in-memory or a file path for persistent storage.
func NewWithDSN(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("corpus: open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("corpus: create schema: %w", err)
	}
	return &Store{db: db, log: slog.Default()}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SeedSutras persists the declarative projection of a loader record
// set.
func (s *Store) SeedSutras(records []sutra.Record) error {
	for _, r := range records {
		if err := s.UpsertSutra(RowFromRecord(r)); err != nil {
			return err
		}
	}
	s.log.Debug("seeded sutra corpus", "count", len(records))
	return nil
}

// SeedDhatus persists a root set.
func (s *Store) SeedDhatus(roots []dhatu.Dhatu) error {
	for _, d := range roots {
		if err := s.UpsertDhatu(RowFromDhatu(d)); err != nil {
			return err
		}
	}
	s.log.Debug("seeded dhatu corpus", "count", len(roots))
	return nil
}

// LoadRegistry rebuilds a root registry from the stored records.
func (s *Store) LoadRegistry() (*dhatu.Registry, error) {
	rows, err := s.ListDhatus("")
	if err != nil {
		return nil, err
	}
	records := make([]dhatu.Dhatu, len(rows))
	for i, r := range rows {
		records[i] = r.ToDhatu()
	}
	return dhatu.NewRegistry(records), nil
}

// UpsertSutra inserts or replaces one sūtra row.
func (s *Store) UpsertSutra(row SutraRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO sutras (id, text, kind, description, specificity,
			scopes, requires, triggers, overrides, inherits, carries, scope_name, term)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			text = excluded.text,
			kind = excluded.kind,
			description = excluded.description,
			specificity = excluded.specificity,
			scopes = excluded.scopes,
			requires = excluded.requires,
			triggers = excluded.triggers,
			overrides = excluded.overrides,
			inherits = excluded.inherits,
			carries = excluded.carries,
			scope_name = excluded.scope_name,
			term = excluded.term
	`, row.ID, row.Text, row.Kind, row.Description, row.Specificity,
		marshalList(row.Scopes), marshalList(row.Requires), marshalList(row.Triggers),
		marshalList(row.Overrides), marshalList(row.Inherits), marshalList(row.Carries),
		row.ScopeName, row.Term)
	return err
}

const sutraColumns = `id, text, kind, description, specificity,
	scopes, requires, triggers, overrides, inherits, carries, scope_name, term`

// GetSutra retrieves one row by id; (nil, nil) when absent.
func (s *Store) GetSutra(id string) (*SutraRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, err := scanSutra(s.db.QueryRow(
		`SELECT `+sutraColumns+` FROM sutras WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// SearchSutras matches the query against sūtra text and description.
func (s *Store) SearchSutras(query string) ([]SutraRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	like := "%" + query + "%"
	rows, err := s.db.Query(`
		SELECT `+sutraColumns+` FROM sutras
		WHERE text LIKE ? OR description LIKE ?
		ORDER BY id
	`, like, like)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSutras(rows)
}

// ListSutras returns all rows, optionally filtered by kind, in id
// order.
func (s *Store) ListSutras(kind string) ([]SutraRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		rows *sql.Rows
		err  error
	)
	if kind != "" {
		rows, err = s.db.Query(`SELECT `+sutraColumns+` FROM sutras WHERE kind = ? ORDER BY id`, kind)
	} else {
		rows, err = s.db.Query(`SELECT ` + sutraColumns + ` FROM sutras ORDER BY id`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSutras(rows)
}

// CountSutras returns the number of stored sūtra rows.
func (s *Store) CountSutras() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM sutras`).Scan(&count)
	return count, err
}

// UpsertDhatu inserts or replaces one root row.
func (s *Store) UpsertDhatu(row DhatuRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO dhatus (id, gana, root, meaning, pada, set_anit)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			gana = excluded.gana,
			root = excluded.root,
			meaning = excluded.meaning,
			pada = excluded.pada,
			set_anit = excluded.set_anit
	`, row.ID, row.Gana, row.Root, row.Meaning, row.Pada, row.SetAnit)
	return err
}

// GetDhatu retrieves one root by id; (nil, nil) when absent.
func (s *Store) GetDhatu(id string) (*DhatuRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var row DhatuRow
	err := s.db.QueryRow(`
		SELECT id, gana, root, meaning, pada, set_anit FROM dhatus WHERE id = ?
	`, id).Scan(&row.ID, &row.Gana, &row.Root, &row.Meaning, &row.Pada, &row.SetAnit)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListDhatus returns all roots, optionally filtered by gaṇa.
func (s *Store) ListDhatus(gana string) ([]DhatuRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		rows *sql.Rows
		err  error
	)
	if gana != "" {
		rows, err = s.db.Query(`SELECT id, gana, root, meaning, pada, set_anit FROM dhatus WHERE gana = ? ORDER BY id`, gana)
	} else {
		rows, err = s.db.Query(`SELECT id, gana, root, meaning, pada, set_anit FROM dhatus ORDER BY id`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DhatuRow
	for rows.Next() {
		var row DhatuRow
		if err := rows.Scan(&row.ID, &row.Gana, &row.Root, &row.Meaning, &row.Pada, &row.SetAnit); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// CountDhatus returns the number of stored roots.
func (s *Store) CountDhatus() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM dhatus`).Scan(&count)
	return count, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSutra(sc scanner) (*SutraRow, error) {
	var row SutraRow
	var scopes, requires, triggers, overrides, inherits, carries string
	if err := sc.Scan(
		&row.ID, &row.Text, &row.Kind, &row.Description, &row.Specificity,
		&scopes, &requires, &triggers, &overrides, &inherits, &carries,
		&row.ScopeName, &row.Term,
	); err != nil {
		return nil, err
	}
	row.Scopes = unmarshalList(scopes)
	row.Requires = unmarshalList(requires)
	row.Triggers = unmarshalList(triggers)
	row.Overrides = unmarshalList(overrides)
	row.Inherits = unmarshalList(inherits)
	row.Carries = unmarshalList(carries)
	return &row, nil
}

func collectSutras(rows *sql.Rows) ([]SutraRow, error) {
	var out []SutraRow
	for rows.Next() {
		row, err := scanSutra(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *row)
	}
	return out, rows.Err()
}

func marshalList(list []string) string {
	if len(list) == 0 {
		return ""
	}
	b, err := json.Marshal(list)
	if err != nil {
		return ""
	}
	return string(b)
}

func unmarshalList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil
	}
	return out
}

// Compile-time interface check.
var _ Storer = (*Store)(nil)
