// Package store persists downloaded price histories in a SQLite
// database so analysis tools do not re-parse source files on every run.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"nordquant/internal/timeseries"
)

// ErrSymbolNotFound is returned when no rows exist for a symbol.
var ErrSymbolNotFound = errors.New("symbol not found in store")

// Store persists price histories in a SQLite database.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens (or creates) the SQLite database and runs migrations.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so analysis reads do not block refresh writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS price_records (
			symbol  TEXT NOT NULL,
			date    TEXT NOT NULL,
			open    REAL NOT NULL,
			high    REAL NOT NULL,
			low     REAL NOT NULL,
			close   REAL NOT NULL,
			volume  REAL NOT NULL,
			value   REAL NOT NULL,
			UNIQUE (symbol, date)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_price_symbol ON price_records(symbol)`,

		`CREATE TABLE IF NOT EXISTS series_columns (
			symbol TEXT NOT NULL,
			column_name TEXT NOT NULL,
			UNIQUE (symbol, column_name)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec migration: %w", err)
		}
	}
	return nil
}

// SaveSeries replaces the stored history for a symbol with the given
// series. The replacement is transactional: readers never observe a
// half-written history.
func (s *Store) SaveSeries(ctx context.Context, symbol string, series *timeseries.Series) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM price_records WHERE symbol = ?`, symbol); err != nil {
		return fmt.Errorf("clear %s: %w", symbol, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM series_columns WHERE symbol = ?`, symbol); err != nil {
		return fmt.Errorf("clear columns for %s: %w", symbol, err)
	}

	insert, err := tx.PrepareContext(ctx, `INSERT INTO price_records
		(symbol, date, open, high, low, close, volume, value)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer insert.Close()

	for i := 0; i < series.Len(); i++ {
		rec := series.At(i)
		_, err := insert.ExecContext(ctx, symbol, rec.Date.Format("2006-01-02"),
			rec.Open, rec.High, rec.Low, rec.Close, rec.Volume, rec.Value)
		if err != nil {
			return fmt.Errorf("insert %s %s: %w", symbol, rec.Date.Format("2006-01-02"), err)
		}
	}

	for _, col := range series.Columns() {
		if _, err := tx.ExecContext(ctx, `INSERT INTO series_columns (symbol, column_name) VALUES (?, ?)`,
			symbol, string(col)); err != nil {
			return fmt.Errorf("insert column %s for %s: %w", col, symbol, err)
		}
	}

	return tx.Commit()
}

// LoadSeries reads a symbol's stored history back into a series.
func (s *Store) LoadSeries(ctx context.Context, symbol string) (*timeseries.Series, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT date, open, high, low, close, volume, value
		FROM price_records WHERE symbol = ? ORDER BY date`, symbol)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", symbol, err)
	}
	defer rows.Close()

	var records []timeseries.PriceRecord
	for rows.Next() {
		var dateStr string
		var rec timeseries.PriceRecord
		if err := rows.Scan(&dateStr, &rec.Open, &rec.High, &rec.Low, &rec.Close, &rec.Volume, &rec.Value); err != nil {
			return nil, fmt.Errorf("scan row for %s: %w", symbol, err)
		}
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, fmt.Errorf("bad stored date %q for %s: %w", dateStr, symbol, err)
		}
		rec.Date = timeseries.Normalize(date)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows for %s: %w", symbol, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrSymbolNotFound, symbol)
	}

	columns, err := s.loadColumns(ctx, symbol)
	if err != nil {
		return nil, err
	}
	return timeseries.NewSeries(records, columns...)
}

func (s *Store) loadColumns(ctx context.Context, symbol string) ([]timeseries.Column, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT column_name FROM series_columns WHERE symbol = ?`, symbol)
	if err != nil {
		return nil, fmt.Errorf("query columns for %s: %w", symbol, err)
	}
	defer rows.Close()

	var columns []timeseries.Column
	for rows.Next() {
		var col string
		if err := rows.Scan(&col); err != nil {
			return nil, fmt.Errorf("scan column for %s: %w", symbol, err)
		}
		columns = append(columns, timeseries.Column(strings.TrimSpace(col)))
	}
	return columns, rows.Err()
}

// Symbols lists every symbol with stored history, sorted.
func (s *Store) Symbols(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT symbol FROM price_records ORDER BY symbol`)
	if err != nil {
		return nil, fmt.Errorf("query symbols: %w", err)
	}
	defer rows.Close()

	var symbols []string
	for rows.Next() {
		var symbol string
		if err := rows.Scan(&symbol); err != nil {
			return nil, fmt.Errorf("scan symbol: %w", err)
		}
		symbols = append(symbols, symbol)
	}
	return symbols, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
