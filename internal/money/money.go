// Package money formats decimal amounts as localized currency strings.
// Formatting is presentation-only; all arithmetic stays in decimals.
package money

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Format renders value in the given ISO 4217 currency, e.g.
// Format(dec("150000"), "AOA") -> "150.000,00 Kz".
func Format(value decimal.Decimal, currency string) string {
	cur := money.New(0, currency).Currency()
	minor := value.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, currency).Display()
}

// Symbol returns the display symbol of a currency ("Kz" for AOA).
func Symbol(currency string) string {
	return money.New(0, currency).Currency().Grapheme
}
