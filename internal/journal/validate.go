package journal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/razao-dev/razao/internal/model"
)

// BalanceEpsilon is the maximum tolerated absolute difference between an
// entry's total debits and total credits. The source system compared
// floating-point totals against an implicit 0.001; here it is an explicit
// constant evaluated with exact decimal arithmetic.
var BalanceEpsilon = decimal.RequireFromString("0.001")

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Invariant   int
	Ref         string // entry number or account code, when known
	Description string
}

func (e ValidationError) Error() string {
	if e.Ref == "" {
		return fmt.Sprintf("invariant %d: %s", e.Invariant, e.Description)
	}
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.Ref, e.Description)
}

// AccountChecker tests whether an account code exists in the chart of
// accounts.
type AccountChecker interface {
	Exists(code string) bool
}

// ValidateEntry enforces the posting invariants on a candidate entry.
func ValidateEntry(e model.JournalEntry, accounts AccountChecker) []ValidationError {
	var errs []ValidationError

	// Invariant 1: at least two lines.
	if len(e.Lines) < 2 {
		errs = append(errs, ValidationError{
			Invariant:   1,
			Ref:         e.Number,
			Description: fmt.Sprintf("entry needs at least 2 lines, got %d", len(e.Lines)),
		})
	}

	// Invariant 2: debits and credits balance within BalanceEpsilon.
	totalDebit := e.TotalDebit()
	totalCredit := e.TotalCredit()
	if totalDebit.Sub(totalCredit).Abs().GreaterThan(BalanceEpsilon) {
		errs = append(errs, ValidationError{
			Invariant: 2,
			Ref:       e.Number,
			Description: fmt.Sprintf("debits and credits must be equal (debits %s, credits %s)",
				totalDebit.StringFixed(2), totalCredit.StringFixed(2)),
		})
	}

	// Invariant 3: date is required.
	if e.Date.IsZero() {
		errs = append(errs, ValidationError{
			Invariant:   3,
			Ref:         e.Number,
			Description: "entry date is required",
		})
	}

	for _, line := range e.Lines {
		// Invariant 4: valid account references.
		if !accounts.Exists(line.AccountCode) {
			errs = append(errs, ValidationError{
				Invariant:   4,
				Ref:         line.AccountCode,
				Description: fmt.Sprintf("unknown account %s", line.AccountCode),
			})
		}

		// Invariant 5: non-negative amounts.
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			errs = append(errs, ValidationError{
				Invariant:   5,
				Ref:         line.AccountCode,
				Description: "debit and credit must not be negative",
			})
		}
	}

	return errs
}
