package calendar

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"time"
)

// DefaultTableName is the SQL table used by [SQLStore] unless overridden.
const DefaultTableName = "business_calendar"

var identifierRx = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLStore persists calendar days in a SQL table with the columns
// date (TEXT, DateLayout, primary key) and workday (INTEGER, 0 or 1).
// Statements use the SQLite dialect.
type SQLStore struct {
	db    *sql.DB
	table string
}

// NewSQLStore returns a new [SQLStore] over db. An empty table name selects
// [DefaultTableName].
func NewSQLStore(db *sql.DB, table string) (*SQLStore, error) {
	if db == nil {
		return nil, errors.New("nil database")
	}
	if table == "" {
		table = DefaultTableName
	}
	if !identifierRx.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	return &SQLStore{db: db, table: table}, nil
}

// Init creates the calendar table if it does not exist.
func (s *SQLStore) Init(ctx context.Context) error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	date    TEXT PRIMARY KEY,
	workday INTEGER NOT NULL CHECK (workday IN (0, 1))
)`, s.table)
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create table %s: %w", s.table, err)
	}
	return nil
}

// Upsert inserts the entries, overwriting the workday flag of dates that
// are already stored. All entries are written in a single transaction.
func (s *SQLStore) Upsert(ctx context.Context, entries []Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	query := fmt.Sprintf(`INSERT INTO %s (date, workday) VALUES (?, ?)
ON CONFLICT(date) DO UPDATE SET workday = excluded.workday`, s.table)
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, entry := range entries {
		r := newRecord(entry)
		if _, err := stmt.ExecContext(ctx, r.Date, r.Workday); err != nil {
			return fmt.Errorf("upsert %s: %w", r.Date, err)
		}
	}
	return tx.Commit()
}

// Load reads the days in the inclusive range [from, to] into a [Table].
func (s *SQLStore) Load(ctx context.Context, from, to time.Time) (*Table, error) {
	query := fmt.Sprintf(`SELECT date, workday FROM %s
WHERE date >= ? AND date <= ? ORDER BY date`, s.table)
	rows, err := s.db.QueryContext(ctx, query,
		from.Format(DateLayout), to.Format(DateLayout))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", s.table, err)
	}
	defer rows.Close()

	var records []record
	for rows.Next() {
		var r record
		if err := rows.Scan(&r.Date, &r.Workday); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tableFromRecords(records)
}

// LoadAll reads every stored day into a [Table].
func (s *SQLStore) LoadAll(ctx context.Context) (*Table, error) {
	return s.Load(ctx, time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC))
}
