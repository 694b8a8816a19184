// SPDX-License-Identifier: MIT

// Package sqlite persists named sparse matrices in a SQLite database.
//
// Each matrix is one row in "matrices" (name, shape, update time) plus one row
// per stored entry in "matrix_entries". Zero values are never written, so the
// entry table mirrors the in-memory sparsity exactly.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-logr/logr"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/sparsecalc/internal/platform/logging"
	"github.com/katalvlaran/sparsecalc/internal/platform/storage/sqlitemigrate"
	"github.com/katalvlaran/sparsecalc/internal/storage/sqlite/migrations"
	"github.com/katalvlaran/sparsecalc/sparse"
)

// ErrNotFound is returned when no matrix is stored under the requested name.
var ErrNotFound = errors.New("store: matrix not found")

// Summary describes a stored matrix without loading its entries.
type Summary struct {
	Name      string
	Rows      int
	Cols      int
	NNZ       int
	UpdatedAt time.Time
}

// Store persists matrices in SQLite.
type Store struct {
	sqlDB *sql.DB
	log   logr.Logger
	now   func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for V(1) store diagnostics.
func WithLogger(l logr.Logger) Option {
	return func(s *Store) { s.log = logging.OrDiscard(l) }
}

// WithClock overrides the clock used for UpdatedAt stamps.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("store: WithClock requires a non-nil clock")
	}
	return func(s *Store) { s.now = now }
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite matrix store at path and applies embedded migrations.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := "file:" + cleanPath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	s := &Store{sqlDB: sqlDB, log: logr.Discard(), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.log.V(1).Info("opened matrix store", "path", cleanPath)

	return s, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("matrix name is required")
	}
	return name, nil
}

// Put stores m under name, replacing any matrix already stored there.
// The write is a single transaction: readers never see a half-written matrix.
func (s *Store) Put(ctx context.Context, name string, m *sparse.Matrix) (err error) {
	if err := s.ready(ctx); err != nil {
		return err
	}
	name, err = normalizeName(name)
	if err != nil {
		return err
	}
	if err := sparse.ValidateNotNil(m); err != nil {
		return fmt.Errorf("put matrix %q: %w", name, err)
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin put transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM matrix_entries WHERE name = ?`, name); err != nil {
		return fmt.Errorf("clear matrix entries: %w", err)
	}
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO matrices (name, num_rows, num_cols, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   num_rows = excluded.num_rows,
		   num_cols = excluded.num_cols,
		   updated_at = excluded.updated_at`,
		name, m.Rows(), m.Cols(), toMillis(s.now()),
	); err != nil {
		return fmt.Errorf("put matrix header: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO matrix_entries (name, row_idx, col_idx, value) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare entry insert: %w", err)
	}
	defer stmt.Close()

	for e := range m.All() {
		if _, err = stmt.ExecContext(ctx, name, e.Row, e.Col, e.Value); err != nil {
			return fmt.Errorf("put entry %s: %w", e, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit put transaction: %w", err)
	}
	s.log.V(1).Info("stored matrix", "name", name, "rows", m.Rows(), "cols", m.Cols(), "nnz", m.NNZ())

	return nil
}

// Get loads the matrix stored under name, or ErrNotFound.
func (s *Store) Get(ctx context.Context, name string) (*sparse.Matrix, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}

	var rows, cols int
	err = s.sqlDB.QueryRowContext(ctx,
		`SELECT num_rows, num_cols FROM matrices WHERE name = ?`, name,
	).Scan(&rows, &cols)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get matrix %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("get matrix header: %w", err)
	}

	result, err := s.sqlDB.QueryContext(ctx,
		`SELECT row_idx, col_idx, value FROM matrix_entries
		  WHERE name = ?
		  ORDER BY row_idx, col_idx`, name)
	if err != nil {
		return nil, fmt.Errorf("get matrix entries: %w", err)
	}
	defer result.Close()

	var entries []sparse.Entry
	for result.Next() {
		var e sparse.Entry
		if err := result.Scan(&e.Row, &e.Col, &e.Value); err != nil {
			return nil, fmt.Errorf("scan matrix entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("iterate matrix entries: %w", err)
	}

	m, err := sparse.FromEntries(rows, cols, entries)
	if err != nil {
		return nil, fmt.Errorf("rebuild matrix %q: %w", name, err)
	}
	s.log.V(1).Info("loaded matrix", "name", name, "rows", rows, "cols", cols, "nnz", len(entries))

	return m, nil
}

// List returns a summary of every stored matrix ordered by name.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	result, err := s.sqlDB.QueryContext(ctx,
		`SELECT m.name, m.num_rows, m.num_cols, m.updated_at,
		        (SELECT COUNT(*) FROM matrix_entries e WHERE e.name = m.name)
		   FROM matrices m
		  ORDER BY m.name`)
	if err != nil {
		return nil, fmt.Errorf("list matrices: %w", err)
	}
	defer result.Close()

	var out []Summary
	for result.Next() {
		var sum Summary
		var updatedAt int64
		if err := result.Scan(&sum.Name, &sum.Rows, &sum.Cols, &updatedAt, &sum.NNZ); err != nil {
			return nil, fmt.Errorf("scan matrix summary: %w", err)
		}
		sum.UpdatedAt = fromMillis(updatedAt)
		out = append(out, sum)
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("iterate matrix summaries: %w", err)
	}

	return out, nil
}

// Delete removes the matrix stored under name, or returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, name string) (err error) {
	if err := s.ready(ctx); err != nil {
		return err
	}
	name, err = normalizeName(name)
	if err != nil {
		return err
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM matrix_entries WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete matrix entries: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM matrices WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete matrix header: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete matrix rows affected: %w", err)
	}
	if n == 0 {
		err = fmt.Errorf("delete matrix %q: %w", name, ErrNotFound)
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit delete transaction: %w", err)
	}
	s.log.V(1).Info("deleted matrix", "name", name)

	return nil
}
