package journal

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/razao-dev/razao/internal/model"
)

// Filter narrows entry listings. Zero values mean "no bound".
type Filter struct {
	From        time.Time
	To          time.Time
	AccountCode string // keep only entries touching this account
}

// Store persists journal entries. CreateEntry must write the entry and
// all of its lines atomically: a failure leaves no partial rows.
type Store interface {
	CreateEntry(ctx context.Context, e model.JournalEntry) error
	ListEntries(ctx context.Context, f Filter) ([]model.JournalEntry, error)
	GetEntry(ctx context.Context, id string) (model.JournalEntry, bool, error)
	MaxSequence(ctx context.Context, year, month int) (int, error)
}

// Service provides business logic for journal entries.
type Service struct {
	store    Store
	accounts AccountChecker
	log      zerolog.Logger
}

// NewService creates a journal Service.
func NewService(store Store, accounts AccountChecker, log zerolog.Logger) *Service {
	return &Service{store: store, accounts: accounts, log: log}
}

// Draft holds the caller-supplied fields of a candidate entry.
type Draft struct {
	Date        time.Time
	Description string
	DocumentRef string
	Lines       []model.EntryLine
}

// Post validates a draft and writes it as an immutable journal entry.
// The entry and its lines are persisted in a single transaction; a
// rejected draft leaves the store untouched.
func (s *Service) Post(ctx context.Context, d Draft) (model.JournalEntry, error) {
	year := d.Date.Year()
	month := int(d.Date.Month())

	seq, err := s.store.MaxSequence(ctx, year, month)
	if err != nil {
		return model.JournalEntry{}, fmt.Errorf("next entry sequence: %w", err)
	}

	entry := model.JournalEntry{
		ID:          ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String(),
		Number:      FormatNumber(year, month, seq+1),
		Date:        d.Date,
		Description: d.Description,
		DocumentRef: d.DocumentRef,
		Lines:       d.Lines,
	}

	if verrs := ValidateEntry(entry, s.accounts); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return model.JournalEntry{}, fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}

	if err := s.store.CreateEntry(ctx, entry); err != nil {
		return model.JournalEntry{}, fmt.Errorf("posting entry %s: %w", entry.Number, err)
	}

	s.log.Info().
		Str("entry", entry.Number).
		Str("date", entry.Date.Format("2006-01-02")).
		Str("amount", entry.TotalDebit().StringFixed(2)).
		Msg("entry posted")

	return entry, nil
}

// Entries lists posted entries matching the filter, ordered by date then
// entry number.
func (s *Service) Entries(ctx context.Context, f Filter) ([]model.JournalEntry, error) {
	return s.store.ListEntries(ctx, f)
}

// Entry fetches one entry by its store ID.
func (s *Service) Entry(ctx context.Context, id string) (model.JournalEntry, bool, error) {
	return s.store.GetEntry(ctx, id)
}

// BalancedPair builds a two-line draft moving amount from creditAccount
// to debitAccount. Convenience for simple captures such as imports.
func BalancedPair(date time.Time, description, ref, debitAccount, creditAccount string, amount decimal.Decimal) Draft {
	return Draft{
		Date:        date,
		Description: description,
		DocumentRef: ref,
		Lines: []model.EntryLine{
			{AccountCode: debitAccount, Debit: amount},
			{AccountCode: creditAccount, Credit: amount},
		},
	}
}
