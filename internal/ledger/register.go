package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/razao-dev/razao/internal/model"
)

// RegisterRow is one movement of a single-account register with its
// running balance.
type RegisterRow struct {
	EntryNumber string
	Date        time.Time
	Description string
	DocumentRef string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Balance     decimal.Decimal // running balance after this row
}

// Register filters all entries' lines down to one account code, sorted
// by entry date ascending (entry number breaks ties), and computes the
// running balance column starting from zero.
func Register(entries []model.JournalEntry, code string) []RegisterRow {
	type movement struct {
		entry model.JournalEntry
		line  model.EntryLine
	}

	var moves []movement
	for _, e := range entries {
		for _, l := range e.Lines {
			if l.AccountCode == code {
				moves = append(moves, movement{entry: e, line: l})
			}
		}
	}

	sort.SliceStable(moves, func(i, j int) bool {
		if !moves[i].entry.Date.Equal(moves[j].entry.Date) {
			return moves[i].entry.Date.Before(moves[j].entry.Date)
		}
		return moves[i].entry.Number < moves[j].entry.Number
	})

	rows := make([]RegisterRow, 0, len(moves))
	balance := decimal.Zero
	for _, m := range moves {
		balance = balance.Add(m.line.Movement())
		rows = append(rows, RegisterRow{
			EntryNumber: m.entry.Number,
			Date:        m.entry.Date,
			Description: m.entry.Description,
			DocumentRef: m.entry.DocumentRef,
			Debit:       m.line.Debit,
			Credit:      m.line.Credit,
			Balance:     balance,
		})
	}
	return rows
}
