package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/razao-dev/razao/internal/journal"
	"github.com/razao-dev/razao/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func openTestStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "razao.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testEntry(id, number string, d time.Time) model.JournalEntry {
	return model.JournalEntry{
		ID:          id,
		Number:      number,
		Date:        d,
		Description: "Salários de Janeiro",
		DocumentRef: "FOLHA-01",
		Lines: []model.EntryLine{
			{AccountCode: "63.1", Debit: dec("1000")},
			{AccountCode: "43.1", Credit: dec("1000")},
		},
	}
}

func TestCreateAndListEntries(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	e := testEntry("01ARZ000000000000000000001", "2025-01-001", date(2025, 1, 15))
	require.NoError(t, s.CreateEntry(ctx, e))

	got, err := s.ListEntries(ctx, journal.Filter{})
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, e.ID, got[0].ID)
	assert.Equal(t, "2025-01-001", got[0].Number)
	assert.Equal(t, "Salários de Janeiro", got[0].Description)
	assert.Equal(t, "FOLHA-01", got[0].DocumentRef)
	assert.True(t, got[0].Date.Equal(date(2025, 1, 15)))

	require.Len(t, got[0].Lines, 2)
	assert.Equal(t, "63.1", got[0].Lines[0].AccountCode)
	assert.True(t, got[0].Lines[0].Debit.Equal(dec("1000")))
	assert.True(t, got[0].Lines[1].Credit.Equal(dec("1000")))
}

func TestListEntriesDateFilterAndOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateEntry(ctx, testEntry("id-3", "2025-03-001", date(2025, 3, 1))))
	require.NoError(t, s.CreateEntry(ctx, testEntry("id-1", "2025-01-001", date(2025, 1, 1))))
	require.NoError(t, s.CreateEntry(ctx, testEntry("id-2", "2025-02-001", date(2025, 2, 1))))

	all, err := s.ListEntries(ctx, journal.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2025-01-001", all[0].Number)
	assert.Equal(t, "2025-03-001", all[2].Number)

	feb, err := s.ListEntries(ctx, journal.Filter{
		From: date(2025, 2, 1),
		To:   date(2025, 2, 28),
	})
	require.NoError(t, err)
	require.Len(t, feb, 1)
	assert.Equal(t, "2025-02-001", feb[0].Number)
}

func TestListEntriesAccountFilter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateEntry(ctx, testEntry("id-1", "2025-01-001", date(2025, 1, 5))))

	sale := model.JournalEntry{
		ID:     "id-2",
		Number: "2025-01-002",
		Date:   date(2025, 1, 9),
		Lines: []model.EntryLine{
			{AccountCode: "43.1", Debit: dec("500")},
			{AccountCode: "71", Credit: dec("500")},
		},
	}
	require.NoError(t, s.CreateEntry(ctx, sale))

	got, err := s.ListEntries(ctx, journal.Filter{AccountCode: "71"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2025-01-002", got[0].Number)
}

func TestGetEntry(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	e := testEntry("id-1", "2025-01-001", date(2025, 1, 15))
	require.NoError(t, s.CreateEntry(ctx, e))

	got, ok, err := s.GetEntry(ctx, "id-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "2025-01-001", got.Number)
	require.Len(t, got.Lines, 2)

	_, ok, err = s.GetEntry(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMaxSequence(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	max, err := s.MaxSequence(ctx, 2025, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, max)

	require.NoError(t, s.CreateEntry(ctx, testEntry("id-1", "2025-01-001", date(2025, 1, 1))))
	require.NoError(t, s.CreateEntry(ctx, testEntry("id-2", "2025-01-007", date(2025, 1, 9))))
	require.NoError(t, s.CreateEntry(ctx, testEntry("id-3", "2025-02-003", date(2025, 2, 1))))

	max, err = s.MaxSequence(ctx, 2025, 1)
	require.NoError(t, err)
	assert.Equal(t, 7, max)

	max, err = s.MaxSequence(ctx, 2025, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, max)
}

func TestCreateEntryDuplicateNumber(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateEntry(ctx, testEntry("id-1", "2025-01-001", date(2025, 1, 1))))

	err := s.CreateEntry(ctx, testEntry("id-2", "2025-01-001", date(2025, 1, 2)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate value")

	// The failed write must leave no rows behind.
	got, lerr := s.ListEntries(ctx, journal.Filter{})
	require.NoError(t, lerr)
	require.Len(t, got, 1)
	assert.Equal(t, "id-1", got[0].ID)
}

func TestCreateEntryAtomicRollback(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Second insert of the same ID fails at the parent row; the lines of
	// the first are untouched and no partial second entry exists.
	e := testEntry("id-1", "2025-01-001", date(2025, 1, 1))
	require.NoError(t, s.CreateEntry(ctx, e))

	dup := e
	dup.Number = "2025-01-002"
	require.Error(t, s.CreateEntry(ctx, dup))

	got, err := s.ListEntries(ctx, journal.Filter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, got[0].Lines, 2, "no orphan lines from the rolled-back write")
}

func TestConstraintColumn(t *testing.T) {
	tests := []struct {
		msg  string
		want string
	}{
		{"NOT NULL constraint failed: journal_entries.description", "description"},
		{"UNIQUE constraint failed: journal_entries.number", "number"},
		{"FOREIGN KEY constraint failed", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, constraintColumn(tt.msg), "constraintColumn(%q)", tt.msg)
	}
}
