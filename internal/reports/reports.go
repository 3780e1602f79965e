// Package reports builds financial statements from aggregated balances.
package reports

import (
	"github.com/shopspring/decimal"

	"github.com/razao-dev/razao/internal/model"
)

// Chart looks up accounts by code. Satisfied by accounts.Service;
// injected so tests can supply a fabricated chart.
type Chart interface {
	Get(code string) (model.Account, bool)
}

// AccountAmount is one account with its report-specific value.
type AccountAmount struct {
	Code   string
	Name   string
	Amount decimal.Decimal
}

func sumAmounts(items []AccountAmount) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount)
	}
	return total
}
