package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value with its currency (Amt with the Ccy attribute).
// The currency code is kept verbatim.
type Amount struct {
	Value    decimal.Decimal
	Currency string
}

// NewAmount creates a new Amount instance with the given value and currency
func NewAmount(value decimal.Decimal, currency string) Amount {
	return Amount{
		Value:    value,
		Currency: currency,
	}
}

// Signed returns the value as seen from the account holder: negative for debits
func (a Amount) Signed(cd CreditDebit) decimal.Decimal {
	if cd == Debit {
		return a.Value.Neg()
	}
	return a.Value
}

// String returns "CCY value"
func (a Amount) String() string {
	return fmt.Sprintf("%s %s", a.Currency, a.Value.String())
}
