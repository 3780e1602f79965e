package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankTransaction represents a parsed bank statement CSV row.
type BankTransaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // negative = outflow, positive = inflow
	Reference   string
	Category    string // statement category (Vendas, Salários, Compras, ...)
}
