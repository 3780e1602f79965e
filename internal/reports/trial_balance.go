package reports

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/razao-dev/razao/internal/ledger"
	"github.com/razao-dev/razao/internal/model"
)

// TrialBalanceRow is one account's debit/credit column in the trial
// balance. Debit-heavy balances land in the debit column and vice versa.
type TrialBalanceRow struct {
	Code   string
	Name   string
	Class  model.AccountClass
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// TrialBalance lists every moved account with column totals and the
// class totals the dashboard splits balances into. Credit-normal classes
// (Passivo, Capital Próprio, Proveitos, Resultados) are sign-flipped so
// their totals read positive.
type TrialBalance struct {
	Rows        []TrialBalanceRow
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal

	Assets      decimal.Decimal
	Liabilities decimal.Decimal
	Equity      decimal.Decimal // class-based: Capital Próprio + Resultados
	Expenses    decimal.Decimal
	Revenue     decimal.Decimal
}

// BuildTrialBalance projects aggregated balances into a trial balance.
// Accounts that moved but net to zero keep their row; they contribute
// nothing to the totals.
func BuildTrialBalance(chart Chart, balances ledger.BalanceMap) (TrialBalance, error) {
	var tb TrialBalance

	codes := make([]string, 0, len(balances))
	for code := range balances {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		acct, ok := chart.Get(code)
		if !ok {
			return TrialBalance{}, fmt.Errorf("balance for unknown account %s", code)
		}

		bal := balances.Get(code)
		row := TrialBalanceRow{Code: code, Name: acct.Name, Class: acct.Class}
		if bal.IsNegative() {
			row.Credit = bal.Neg()
		} else {
			row.Debit = bal
		}
		tb.Rows = append(tb.Rows, row)
		tb.TotalDebit = tb.TotalDebit.Add(row.Debit)
		tb.TotalCredit = tb.TotalCredit.Add(row.Credit)

		switch acct.Class {
		case model.ClassActivo:
			tb.Assets = tb.Assets.Add(bal)
		case model.ClassPassivo:
			tb.Liabilities = tb.Liabilities.Add(bal.Neg())
		case model.ClassCapitalProprio, model.ClassResultados:
			tb.Equity = tb.Equity.Add(bal.Neg())
		case model.ClassCustos:
			tb.Expenses = tb.Expenses.Add(bal)
		case model.ClassProveitos:
			tb.Revenue = tb.Revenue.Add(bal.Neg())
		}
	}

	return tb, nil
}
