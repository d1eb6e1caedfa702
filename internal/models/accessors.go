package models

import (
	"sort"

	"github.com/shopspring/decimal"
)

// OpeningBalance returns the first OPBD balance in document order, or nil
func (s *Statement) OpeningBalance() *Balance {
	return s.BalanceByCode(BalanceOpeningBooked)
}

// ClosingBalance returns the first CLBD balance in document order, or nil
func (s *Statement) ClosingBalance() *Balance {
	return s.BalanceByCode(BalanceClosingBooked)
}

// BalanceByCode returns the first balance whose coded type equals code.
// Later balances with the same code are ignored.
func (s *Statement) BalanceByCode(code BalanceCode) *Balance {
	for i := range s.Balances {
		if s.Balances[i].Type.Is(code) {
			return &s.Balances[i]
		}
	}
	return nil
}

// Counterparties returns the creditor and debtor of the entry's transaction, in that
// order, each paired with its account when one is on file.
func (e *Entry) Counterparties() []Counterparty {
	rp := e.Details.Transaction.RelatedParties
	if rp == nil {
		return nil
	}

	var out []Counterparty
	if rp.Creditor != nil {
		c := Counterparty{Role: RoleCreditor, Name: rp.Creditor.Name}
		if id, err := rp.CreditorAccountID(); err == nil {
			c.Account = &id
		}
		out = append(out, c)
	}
	if rp.Debtor != nil {
		c := Counterparty{Role: RoleDebtor, Name: rp.Debtor.Name}
		if id, err := rp.DebtorAccountID(); err == nil {
			c.Account = &id
		}
		out = append(out, c)
	}
	return out
}

// Totals sums the entries of one currency
type Totals struct {
	Currency string
	Credits  decimal.Decimal
	Debits   decimal.Decimal
	Count    int
}

// Net returns credits minus debits
func (t Totals) Net() decimal.Decimal {
	return t.Credits.Sub(t.Debits)
}

// Totals sums the statement's entries per currency, sorted by currency code
func (s *Statement) Totals() []Totals {
	byCurrency := make(map[string]*Totals)
	for i := range s.Entries {
		e := &s.Entries[i]
		t, ok := byCurrency[e.Amount.Currency]
		if !ok {
			t = &Totals{Currency: e.Amount.Currency}
			byCurrency[e.Amount.Currency] = t
		}
		if e.IsCredit() {
			t.Credits = t.Credits.Add(e.Amount.Value)
		} else {
			t.Debits = t.Debits.Add(e.Amount.Value)
		}
		t.Count++
	}

	out := make([]Totals, 0, len(byCurrency))
	for _, t := range byCurrency {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Currency < out[j].Currency })
	return out
}
