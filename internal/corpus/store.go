// Package corpus keeps a SQLite-backed regression corpus of parsed names.
package corpus

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/vmunix/vidocq/internal/batch"
	"github.com/vmunix/vidocq/internal/migrations"
	"github.com/vmunix/vidocq/pkg/release"
)

// Entry is one recorded name and the record it parsed to.
type Entry struct {
	ID         int64              `json:"id"`
	Name       string             `json:"name"`
	Hint       release.MediaType  `json:"hint"`
	Info       *release.MediaInfo `json:"info"`
	RecordedAt time.Time          `json:"recorded_at"`
}

// querier abstracts *sql.DB and *sql.Tx for shared query logic.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Store provides access to corpus entries.
type Store struct {
	db *sql.DB
}

// NewStore wraps an open database whose schema is already applied.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open opens (creating if needed) the corpus database at path and applies
// the schema. ":memory:" opens a private in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// SQLite serializes writers; one connection also keeps :memory: shared.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, migrations.CorpusSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return NewStore(db), nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// mapSQLiteError converts SQLite errors to package errors.
func mapSQLiteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	// modernc.org/sqlite wraps errors; check error message for constraint violations
	if strings.Contains(err.Error(), "CHECK constraint failed") {
		return ErrConstraint
	}
	return err
}

func record(ctx context.Context, q querier, name string, hint release.MediaType, info *release.MediaInfo) (*Entry, error) {
	payload, err := json.Marshal(info)
	if err != nil {
		return nil, fmt.Errorf("encode %q: %w", name, err)
	}

	now := time.Now().UTC()
	var id int64
	err = q.QueryRowContext(ctx,
		`INSERT INTO corpus_entries (name, media_type_hint, info, recorded_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(name, media_type_hint) DO UPDATE SET info = excluded.info, recorded_at = excluded.recorded_at
		 RETURNING id`,
		name, hint.String(), string(payload), now,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("record %q: %w", name, mapSQLiteError(err))
	}

	return &Entry{ID: id, Name: name, Hint: hint, Info: info, RecordedAt: now}, nil
}

// Record stores info for (name, hint), replacing any earlier record.
func (s *Store) Record(ctx context.Context, name string, hint release.MediaType, info *release.MediaInfo) (*Entry, error) {
	return record(ctx, s.db, name, hint, info)
}

// RecordAll stores every result under hint in a single transaction.
func (s *Store) RecordAll(ctx context.Context, hint release.MediaType, results []batch.Result) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, r := range results {
		if _, err = record(ctx, tx, r.Name, hint, r.Info); err != nil {
			return err
		}
	}
	return tx.Commit()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*Entry, error) {
	var (
		e       Entry
		hint    string
		payload string
	)
	if err := row.Scan(&e.ID, &e.Name, &hint, &payload, &e.RecordedAt); err != nil {
		return nil, err
	}

	h, err := release.ParseMediaType(hint)
	if err != nil {
		return nil, fmt.Errorf("entry %d: %w", e.ID, err)
	}
	e.Hint = h

	e.Info = &release.MediaInfo{}
	if err := json.Unmarshal([]byte(payload), e.Info); err != nil {
		return nil, fmt.Errorf("decode entry %d: %w", e.ID, err)
	}
	return &e, nil
}

const entryColumns = "id, name, media_type_hint, info, recorded_at"

// Get retrieves the entry for (name, hint).
// Returns ErrNotFound if it was never recorded.
func (s *Store) Get(ctx context.Context, name string, hint release.MediaType) (*Entry, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+entryColumns+" FROM corpus_entries WHERE name = ? AND media_type_hint = ?",
		name, hint.String(),
	)
	e, err := scanEntry(row)
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", name, mapSQLiteError(err))
	}
	return e, nil
}

// List returns every entry ordered by name, then hint.
func (s *Store) List(ctx context.Context) ([]*Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+entryColumns+" FROM corpus_entries ORDER BY name, media_type_hint",
	)
	if err != nil {
		return nil, fmt.Errorf("list corpus: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan corpus: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate corpus: %w", err)
	}
	return entries, nil
}

// Count returns the number of entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM corpus_entries").Scan(&n); err != nil {
		return 0, fmt.Errorf("count corpus: %w", err)
	}
	return n, nil
}

// Delete removes the entry for (name, hint).
// Returns ErrNotFound if there was none.
func (s *Store) Delete(ctx context.Context, name string, hint release.MediaType) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM corpus_entries WHERE name = ? AND media_type_hint = ?", name, hint.String(),
	)
	if err != nil {
		return fmt.Errorf("delete %q: %w", name, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("delete %q: %w", name, ErrNotFound)
	}
	return nil
}
