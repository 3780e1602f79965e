// Package store persists journal entries in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/razao-dev/razao/internal/journal"
	"github.com/razao-dev/razao/internal/model"
)

const dateFormat = "2006-01-02"

// SQLite implements journal.Store over a local SQLite database.
type SQLite struct {
	db  *sql.DB
	log zerolog.Logger
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists.
func Open(path string, log zerolog.Logger) (*SQLite, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_foreign_keys=on", path))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return &SQLite{db: db, log: log}, nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// CreateEntry writes the entry row and all of its lines in a single
// transaction. Any failure rolls the whole write back.
func (s *SQLite) CreateEntry(ctx context.Context, e model.JournalEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO journal_entries (id, number, date, description, document_ref)
		VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.Number, e.Date.Format(dateFormat), e.Description, e.DocumentRef,
	)
	if err != nil {
		return fmt.Errorf("inserting entry %s: %w", e.Number, mapError(err))
	}

	for i, l := range e.Lines {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO journal_entry_lines (entry_id, account_code, debit, credit)
			VALUES (?, ?, ?, ?)`,
			e.ID, l.AccountCode, l.Debit.String(), l.Credit.String(),
		)
		if err != nil {
			return fmt.Errorf("inserting line %d of entry %s: %w", i+1, e.Number, mapError(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing entry %s: %w", e.Number, mapError(err))
	}

	s.log.Debug().Str("entry", e.Number).Int("lines", len(e.Lines)).Msg("entry stored")
	return nil
}

// ListEntries returns entries matching the filter ordered by date then
// number, with their lines attached. The parent/child join happens
// client-side.
func (s *SQLite) ListEntries(ctx context.Context, f journal.Filter) ([]model.JournalEntry, error) {
	query := `SELECT id, number, date, description, document_ref FROM journal_entries`
	var conds []string
	var args []any
	if !f.From.IsZero() {
		conds = append(conds, "date >= ?")
		args = append(args, f.From.Format(dateFormat))
	}
	if !f.To.IsZero() {
		conds = append(conds, "date <= ?")
		args = append(args, f.To.Format(dateFormat))
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY date, number"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var entries []model.JournalEntry
	index := make(map[string]int)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		index[e.ID] = len(entries)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading entries: %w", err)
	}

	if err := s.attachLines(ctx, entries, index); err != nil {
		return nil, err
	}

	if f.AccountCode != "" {
		filtered := entries[:0]
		for _, e := range entries {
			for _, l := range e.Lines {
				if l.AccountCode == f.AccountCode {
					filtered = append(filtered, e)
					break
				}
			}
		}
		entries = filtered
	}

	return entries, nil
}

// GetEntry fetches one entry by its store ID.
func (s *SQLite) GetEntry(ctx context.Context, id string) (model.JournalEntry, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, number, date, description, document_ref
		FROM journal_entries WHERE id = ?`, id)

	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return model.JournalEntry{}, false, nil
	}
	if err != nil {
		return model.JournalEntry{}, false, err
	}

	entries := []model.JournalEntry{e}
	if err := s.attachLines(ctx, entries, map[string]int{e.ID: 0}); err != nil {
		return model.JournalEntry{}, false, err
	}
	return entries[0], true, nil
}

// MaxSequence returns the highest entry sequence used in a month, zero
// if the month is empty.
func (s *SQLite) MaxSequence(ctx context.Context, year, month int) (int, error) {
	prefix := fmt.Sprintf("%04d-%02d-", year, month)
	rows, err := s.db.QueryContext(ctx,
		`SELECT number FROM journal_entries WHERE number LIKE ?`, prefix+"%")
	if err != nil {
		return 0, fmt.Errorf("querying entry numbers: %w", err)
	}
	defer rows.Close()

	max := 0
	for rows.Next() {
		var number string
		if err := rows.Scan(&number); err != nil {
			return 0, fmt.Errorf("scanning entry number: %w", err)
		}
		_, _, seq, err := journal.ParseNumber(number)
		if err != nil {
			continue
		}
		if seq > max {
			max = seq
		}
	}
	return max, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(r rowScanner) (model.JournalEntry, error) {
	var e model.JournalEntry
	var dateStr string
	if err := r.Scan(&e.ID, &e.Number, &dateStr, &e.Description, &e.DocumentRef); err != nil {
		return model.JournalEntry{}, err
	}
	d, err := time.Parse(dateFormat, dateStr)
	if err != nil {
		return model.JournalEntry{}, fmt.Errorf("parsing entry date %q: %w", dateStr, err)
	}
	e.Date = d
	return e, nil
}

func (s *SQLite) attachLines(ctx context.Context, entries []model.JournalEntry, index map[string]int) error {
	if len(entries) == 0 {
		return nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT entry_id, account_code, debit, credit
		FROM journal_entry_lines ORDER BY id`)
	if err != nil {
		return fmt.Errorf("querying lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entryID, code, debitStr, creditStr string
		if err := rows.Scan(&entryID, &code, &debitStr, &creditStr); err != nil {
			return fmt.Errorf("scanning line: %w", err)
		}
		i, ok := index[entryID]
		if !ok {
			continue
		}

		debit, err := decimal.NewFromString(debitStr)
		if err != nil {
			return fmt.Errorf("parsing debit %q: %w", debitStr, err)
		}
		credit, err := decimal.NewFromString(creditStr)
		if err != nil {
			return fmt.Errorf("parsing credit %q: %w", creditStr, err)
		}

		entries[i].Lines = append(entries[i].Lines, model.EntryLine{
			AccountCode: code,
			Debit:       debit,
			Credit:      credit,
		})
	}
	return rows.Err()
}
