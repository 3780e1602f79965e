package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryLine is one debit/credit row of a journal entry. A line may carry
// both a debit and a credit amount; only the entry-level balance binds.
type EntryLine struct {
	AccountCode string
	Debit       decimal.Decimal // zero if credit side
	Credit      decimal.Decimal // zero if debit side
}

// Movement returns the line's signed contribution to its account's
// balance: debit − credit.
func (l EntryLine) Movement() decimal.Decimal {
	return l.Debit.Sub(l.Credit)
}

// JournalEntry is one balanced accounting event. Entries are immutable
// once posted; there is no update or delete path.
type JournalEntry struct {
	ID          string // ULID, store primary key
	Number      string // "YYYY-MM-NNN", human-facing
	Date        time.Time
	Description string
	DocumentRef string
	Lines       []EntryLine
}

// TotalDebit sums the debit column across lines.
func (e JournalEntry) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Debit)
	}
	return total
}

// TotalCredit sums the credit column across lines.
func (e JournalEntry) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Credit)
	}
	return total
}
