package reports

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/razao-dev/razao/internal/ledger"
	"github.com/razao-dev/razao/internal/model"
)

// IncomeStatement partitions balances into revenue (Proveitos,
// sign-flipped from their credit-normal balances) and expenses (Custos).
// Zero-balance accounts are omitted from the listings; omitting them
// cannot change the totals.
type IncomeStatement struct {
	Revenue  []AccountAmount
	Expenses []AccountAmount

	TotalRevenue  decimal.Decimal
	TotalExpenses decimal.Decimal
	NetIncome     decimal.Decimal // TotalRevenue − TotalExpenses
}

// BuildIncomeStatement projects aggregated balances into an income
// statement.
func BuildIncomeStatement(chart Chart, balances ledger.BalanceMap) (IncomeStatement, error) {
	var is IncomeStatement

	codes := make([]string, 0, len(balances))
	for code := range balances {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		acct, ok := chart.Get(code)
		if !ok {
			return IncomeStatement{}, fmt.Errorf("balance for unknown account %s", code)
		}

		bal := balances.Get(code)
		if bal.IsZero() {
			continue
		}

		switch acct.Class {
		case model.ClassProveitos:
			is.Revenue = append(is.Revenue, AccountAmount{Code: code, Name: acct.Name, Amount: bal.Neg()})
		case model.ClassCustos:
			is.Expenses = append(is.Expenses, AccountAmount{Code: code, Name: acct.Name, Amount: bal})
		}
	}

	is.TotalRevenue = sumAmounts(is.Revenue)
	is.TotalExpenses = sumAmounts(is.Expenses)
	is.NetIncome = is.TotalRevenue.Sub(is.TotalExpenses)

	return is, nil
}
