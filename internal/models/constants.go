package models

import "fmt"

// CreditDebit is the closed credit/debit indicator (CdtDbtInd). The string value is the
// code found in the document.
type CreditDebit string

// Credit/debit indicator codes
const (
	Credit CreditDebit = "CRDT"
	Debit  CreditDebit = "DBIT"
)

// ParseCreditDebit maps an indicator code onto the closed set
func ParseCreditDebit(code string) (CreditDebit, error) {
	switch CreditDebit(code) {
	case Credit:
		return Credit, nil
	case Debit:
		return Debit, nil
	default:
		return "", fmt.Errorf("expected %s or %s", Credit, Debit)
	}
}

// Code returns the indicator exactly as written in the document
func (c CreditDebit) Code() string {
	return string(c)
}

// String returns a human-readable label
func (c CreditDebit) String() string {
	switch c {
	case Credit:
		return "credit"
	case Debit:
		return "debit"
	default:
		return "unknown"
	}
}

// Message variant tags
const (
	TagDocument                = "Document"
	TagBankToCustomerStatement = "BkToCstmrStmt"
)

// File permissions
const (
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)
