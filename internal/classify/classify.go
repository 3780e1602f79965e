// Package classify maps a journal entry to a human-readable
// transaction-type label for the activity feed.
package classify

import (
	"github.com/razao-dev/razao/internal/model"
)

// Top-level code groups the rules test against.
var (
	cashCodes     = []string{"41", "43"}
	clientCodes   = []string{"31"}
	supplierCodes = []string{"32"}
	stateCodes    = []string{"34"}
	payrollCodes  = []string{"36", "63"}
	expenseCodes  = []string{"62", "66"}
	revenueCodes  = []string{"71", "72"}
	capitalCodes  = []string{"51", "58"}
	loanCodes     = []string{"37"}
)

// Classification is the label attached to an entry in the activity feed.
type Classification struct {
	Name  string // stable rule identifier
	Label string // display label
}

// Summary records which top-level account-code groups appear in an entry
// with a non-zero debit or credit.
type Summary struct {
	debited  map[string]bool
	credited map[string]bool
}

// Summarize inspects an entry's lines and records the top-level code of
// every account with a non-zero debit or credit.
func Summarize(e model.JournalEntry) Summary {
	s := Summary{
		debited:  make(map[string]bool),
		credited: make(map[string]bool),
	}
	for _, l := range e.Lines {
		top := model.TopCode(l.AccountCode)
		if !l.Debit.IsZero() {
			s.debited[top] = true
		}
		if !l.Credit.IsZero() {
			s.credited[top] = true
		}
	}
	return s
}

// Debits reports whether any of the given top-level codes was debited.
func (s Summary) Debits(codes ...string) bool {
	for _, c := range codes {
		if s.debited[c] {
			return true
		}
	}
	return false
}

// Credits reports whether any of the given top-level codes was credited.
func (s Summary) Credits(codes ...string) bool {
	for _, c := range codes {
		if s.credited[c] {
			return true
		}
	}
	return false
}

// Rule is one row of the classification decision table.
type Rule struct {
	Name  string
	Label string
	When  func(Summary) bool
}

// Rules is the ordered decision table. Evaluation is first-match-wins,
// so more specific rules must come before more general ones.
var Rules = []Rule{
	{
		Name:  "client-receipt",
		Label: "client receipt",
		When:  func(s Summary) bool { return s.Debits(cashCodes...) && s.Credits(clientCodes...) },
	},
	{
		Name:  "service-sale",
		Label: "service sale",
		When:  func(s Summary) bool { return s.Debits(cashCodes...) && s.Credits(revenueCodes...) },
	},
	{
		Name:  "credit-sale",
		Label: "credit sale",
		When:  func(s Summary) bool { return s.Debits(clientCodes...) && s.Credits(revenueCodes...) },
	},
	{
		Name:  "supplier-payment",
		Label: "supplier payment",
		When:  func(s Summary) bool { return s.Debits(supplierCodes...) && s.Credits(cashCodes...) },
	},
	{
		Name:  "salary-payment",
		Label: "salary payment",
		When:  func(s Summary) bool { return s.Debits(payrollCodes...) && s.Credits(cashCodes...) },
	},
	{
		Name:  "tax-payment",
		Label: "tax payment",
		When:  func(s Summary) bool { return s.Debits(stateCodes...) && s.Credits(cashCodes...) },
	},
	{
		Name:  "expense-payment",
		Label: "expense payment",
		When:  func(s Summary) bool { return s.Debits(expenseCodes...) && s.Credits(cashCodes...) },
	},
	{
		Name:  "capital-contribution",
		Label: "capital contribution",
		When:  func(s Summary) bool { return s.Debits(cashCodes...) && s.Credits(capitalCodes...) },
	},
	{
		Name:  "loan-movement",
		Label: "loan movement",
		When: func(s Summary) bool {
			return (s.Debits(cashCodes...) && s.Credits(loanCodes...)) ||
				(s.Debits(loanCodes...) && s.Credits(cashCodes...))
		},
	},
	{
		Name:  "cash-transfer",
		Label: "cash transfer",
		When:  func(s Summary) bool { return s.Debits(cashCodes...) && s.Credits(cashCodes...) },
	},
}

// Other is the fallback classification when no rule matches.
var Other = Classification{Name: "other", Label: "other"}

// Entry classifies a journal entry. The result is deterministic and
// total: the first matching rule wins, and Other covers the rest.
func Entry(e model.JournalEntry) Classification {
	s := Summarize(e)
	for _, r := range Rules {
		if r.When(s) {
			return Classification{Name: r.Name, Label: r.Label}
		}
	}
	return Other
}
