package reports

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/razao-dev/razao/internal/ledger"
	"github.com/razao-dev/razao/internal/model"
)

// BalanceSheet groups balances by class. Equity is carried in two forms:
// the class-based sum and the accounting-equation form
// (assets − liabilities). While the period result is not yet closed to
// Resultados, the two differ by exactly NetIncome:
//
//	DerivedEquity == ClassEquity + NetIncome
type BalanceSheet struct {
	Assets      []AccountAmount
	Liabilities []AccountAmount
	Equity      []AccountAmount

	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	ClassEquity      decimal.Decimal
	NetIncome        decimal.Decimal
	DerivedEquity    decimal.Decimal // TotalAssets − TotalLiabilities
}

// BuildBalanceSheet projects aggregated balances into a balance sheet.
func BuildBalanceSheet(chart Chart, balances ledger.BalanceMap) (BalanceSheet, error) {
	var bs BalanceSheet

	codes := make([]string, 0, len(balances))
	for code := range balances {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	revenue := decimal.Zero
	expenses := decimal.Zero

	for _, code := range codes {
		acct, ok := chart.Get(code)
		if !ok {
			return BalanceSheet{}, fmt.Errorf("balance for unknown account %s", code)
		}

		bal := balances.Get(code)
		switch acct.Class {
		case model.ClassActivo:
			bs.Assets = append(bs.Assets, AccountAmount{Code: code, Name: acct.Name, Amount: bal})
		case model.ClassPassivo:
			bs.Liabilities = append(bs.Liabilities, AccountAmount{Code: code, Name: acct.Name, Amount: bal.Neg()})
		case model.ClassCapitalProprio, model.ClassResultados:
			bs.Equity = append(bs.Equity, AccountAmount{Code: code, Name: acct.Name, Amount: bal.Neg()})
		case model.ClassCustos:
			expenses = expenses.Add(bal)
		case model.ClassProveitos:
			revenue = revenue.Add(bal.Neg())
		}
	}

	bs.TotalAssets = sumAmounts(bs.Assets)
	bs.TotalLiabilities = sumAmounts(bs.Liabilities)
	bs.ClassEquity = sumAmounts(bs.Equity)
	bs.NetIncome = revenue.Sub(expenses)
	bs.DerivedEquity = bs.TotalAssets.Sub(bs.TotalLiabilities)

	return bs, nil
}
