// Package models provides the typed representation of an ISO 20022 camt.053.001.02
// Bank-to-Customer Statement. Values are built once by the decoder and never mutated.
package models

import (
	"time"
)

// Namespace053 is the XML namespace of camt.053.001.02 documents
const Namespace053 = "urn:iso:std:iso:20022:tech:xsd:camt.053.001.02"

// Document is the root envelope. It always carries exactly one message variant.
type Document struct {
	// Namespace is the namespace URI declared on the root element, empty when absent
	Namespace string
	Message   Message
}

// Message is the closed set of message variants a Document may carry.
// BankToCustomerStatement is currently the only implementation.
type Message interface {
	// MessageTag returns the XML tag that selected this variant
	MessageTag() string
	isMessage()
}

// BankToCustomerStatement returns the statement message, if that is the document's variant
func (d *Document) BankToCustomerStatement() (*BankToCustomerStatement, bool) {
	s, ok := d.Message.(*BankToCustomerStatement)
	return s, ok
}

// BankToCustomerStatement is the BkToCstmrStmt message payload
type BankToCustomerStatement struct {
	Header    Header
	Statement Statement
}

// MessageTag implements Message
func (*BankToCustomerStatement) MessageTag() string { return TagBankToCustomerStatement }

func (*BankToCustomerStatement) isMessage() {}

// Header is the group header (GrpHdr)
type Header struct {
	MessageID *string
	// CreationDateTime keeps the UTC offset written in the document
	CreationDateTime time.Time
}

// Statement is a single account statement (Stmt)
type Statement struct {
	ID       *string
	Account  *PartyAccount
	Balances []Balance
	Entries  []Entry
}

// Entry is one ledger movement (Ntry)
type Entry struct {
	Reference         *string
	Amount            Amount
	CreditDebit       CreditDebit
	Status            *string
	BookingDate       Date
	ValueDate         Date
	ServicerReference *string
	Details           EntryDetails
	AdditionalInfo    *string
}

// EntryDetails wraps the transaction details of an entry (NtryDtls)
type EntryDetails struct {
	Transaction TransactionDetails
}

// TransactionDetails is the per-entry narrative (TxDtls)
type TransactionDetails struct {
	Remittance     *RemittanceInfo
	RelatedParties *RelatedParties
}

// IsCredit returns true if the entry increases the account balance
func (e *Entry) IsCredit() bool {
	return e.CreditDebit == Credit
}

// IsDebit returns true if the entry decreases the account balance
func (e *Entry) IsDebit() bool {
	return e.CreditDebit == Debit
}

// RemittanceText returns the unstructured remittance text, or "" when none is present
func (e *Entry) RemittanceText() string {
	if e.Details.Transaction.Remittance == nil {
		return ""
	}
	return e.Details.Transaction.Remittance.String()
}
