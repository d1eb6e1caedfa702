package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoAccountOnFile is returned when a counterparty's account is requested but the
// document carries none. A party never implies its account.
var ErrNoAccountOnFile = errors.New("no account on file")

// RemittanceInfo is the unstructured remittance text (RmtInf/Ustrd)
type RemittanceInfo struct {
	Unstructured []string
}

// String joins the remittance lines
func (r RemittanceInfo) String() string {
	return strings.Join(r.Unstructured, ", ")
}

// RelatedParties lists the counterparties of a transaction (RltdPties).
// All four fields are independently optional.
type RelatedParties struct {
	Creditor        *PartyID
	CreditorAccount *PartyAccount
	Debtor          *PartyID
	DebtorAccount   *PartyAccount
}

// PartyID identifies a counterparty by display name
type PartyID struct {
	Name string
}

// PartyAccount is a cash account reference (CdtrAcct, DbtrAcct, Acct)
type PartyAccount struct {
	ID       AccountIdentification
	Currency *string
	Name     *string
}

// AccountScheme discriminates the account identification choice
type AccountScheme int

const (
	// SchemeUnrecognized preserves an identification branch this model does not know
	SchemeUnrecognized AccountScheme = iota
	// SchemeIBAN is the IBAN branch
	SchemeIBAN
	// SchemeOther is the generic Othr/Id branch (BBAN and proprietary numbers)
	SchemeOther
)

func (s AccountScheme) String() string {
	switch s {
	case SchemeIBAN:
		return "IBAN"
	case SchemeOther:
		return "Othr"
	default:
		return "unrecognized"
	}
}

// AccountIdentification is the resolved Id choice of an account. Tag is the source
// element name, which for SchemeUnrecognized is the only way to tell what was present.
type AccountIdentification struct {
	Scheme AccountScheme
	Tag    string
	Value  string
}

// String returns the identifier, prefixed with its tag when the scheme is unrecognized
func (a AccountIdentification) String() string {
	if a.Scheme == SchemeUnrecognized {
		return fmt.Sprintf("%s:%s", a.Tag, a.Value)
	}
	return a.Value
}

// IBAN returns the IBAN, if the account is identified by one
func (a AccountIdentification) IBAN() (string, bool) {
	if a.Scheme != SchemeIBAN {
		return "", false
	}
	return a.Value, true
}

// CreditorAccountID returns the creditor's account identification
func (r *RelatedParties) CreditorAccountID() (AccountIdentification, error) {
	if r == nil || r.CreditorAccount == nil {
		return AccountIdentification{}, fmt.Errorf("creditor: %w", ErrNoAccountOnFile)
	}
	return r.CreditorAccount.ID, nil
}

// DebtorAccountID returns the debtor's account identification
func (r *RelatedParties) DebtorAccountID() (AccountIdentification, error) {
	if r == nil || r.DebtorAccount == nil {
		return AccountIdentification{}, fmt.Errorf("debtor: %w", ErrNoAccountOnFile)
	}
	return r.DebtorAccount.ID, nil
}

// PartyRole names the side a counterparty takes in a transaction
type PartyRole string

const (
	// RoleCreditor is the receiving side (Cdtr, CdtrAcct)
	RoleCreditor PartyRole = "creditor"
	// RoleDebtor is the paying side (Dbtr, DbtrAcct)
	RoleDebtor PartyRole = "debtor"
)

// Counterparty pairs a related party with its account, when one is on file
type Counterparty struct {
	Role    PartyRole
	Name    string
	Account *AccountIdentification
}

// String returns "name (account)" or just the name when no account is on file
func (c Counterparty) String() string {
	if c.Account == nil {
		return c.Name
	}
	return fmt.Sprintf("%s (%s)", c.Name, c.Account)
}
