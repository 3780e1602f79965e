// Package ledger folds journal entries into per-account balances.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/razao-dev/razao/internal/model"
)

// BalanceMap maps an account code to its signed balance
// (Σdebit − Σcredit). Positive means debit-heavy.
type BalanceMap map[string]decimal.Decimal

// Balances folds all entry lines into a balance per account code. The
// fold is associative: input order does not affect the result, and
// recomputing over the same entries yields the same map.
func Balances(entries []model.JournalEntry) BalanceMap {
	balances := make(BalanceMap)
	for _, e := range entries {
		for _, l := range e.Lines {
			balances[l.AccountCode] = balances[l.AccountCode].Add(l.Movement())
		}
	}
	return balances
}

// Get returns the balance for code, zero if the account never moved.
func (b BalanceMap) Get(code string) decimal.Decimal {
	return b[code]
}

// Total returns the sum of all balances. A ledger built solely from
// balanced entries totals zero (up to the posting epsilon).
func (b BalanceMap) Total() decimal.Decimal {
	total := decimal.Zero
	for _, v := range b {
		total = total.Add(v)
	}
	return total
}
