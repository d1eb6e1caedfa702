package models

// Balance is a named balance snapshot (Bal)
type Balance struct {
	Type        BalanceType
	Amount      Amount
	CreditDebit CreditDebit
	Date        Date
}

// BalanceTypeKind discriminates the CdOrPrtry choice of a balance type
type BalanceTypeKind int

const (
	// BalanceTypeCode is the Cd branch, an ISO balance type code
	BalanceTypeCode BalanceTypeKind = iota + 1
	// BalanceTypeProprietary is the Prtry branch, a bank specific label
	BalanceTypeProprietary
)

// BalanceType classifies a Balance. Exactly one of Code or Proprietary is meaningful,
// as selected by Kind.
type BalanceType struct {
	Kind        BalanceTypeKind
	Code        BalanceCode
	Proprietary string
}

// Is reports whether the type is the coded branch with the given code
func (t BalanceType) Is(code BalanceCode) bool {
	return t.Kind == BalanceTypeCode && t.Code == code
}

// String returns the code or the proprietary label
func (t BalanceType) String() string {
	if t.Kind == BalanceTypeProprietary {
		return t.Proprietary
	}
	return string(t.Code)
}

// BalanceCode is an open set of balance type codes. Codes outside the constants below
// are kept verbatim.
type BalanceCode string

// Balance type codes
const (
	BalanceOpeningBooked    BalanceCode = "OPBD"
	BalanceClosingBooked    BalanceCode = "CLBD"
	BalanceInterimBooked    BalanceCode = "ITBD"
	BalanceOpeningAvailable BalanceCode = "OPAV"
	BalanceInterimAvailable BalanceCode = "ITAV"
	BalanceClosingAvailable BalanceCode = "CLAV"
	BalanceForwardAvailable BalanceCode = "FWAV"
	BalancePreviouslyClosed BalanceCode = "PRCD"
	BalanceInformation      BalanceCode = "INFO"
	BalanceExpectedCredit   BalanceCode = "XPCD"
)

var knownBalanceCodes = map[BalanceCode]string{
	BalanceOpeningBooked:    "opening booked",
	BalanceClosingBooked:    "closing booked",
	BalanceInterimBooked:    "interim booked",
	BalanceOpeningAvailable: "opening available",
	BalanceInterimAvailable: "interim available",
	BalanceClosingAvailable: "closing available",
	BalanceForwardAvailable: "forward available",
	BalancePreviouslyClosed: "previously closed booked",
	BalanceInformation:      "information",
	BalanceExpectedCredit:   "expected credit",
}

// IsKnown reports whether the code is one of the listed ISO balance codes
func (c BalanceCode) IsKnown() bool {
	_, ok := knownBalanceCodes[c]
	return ok
}

// Description returns a human-readable name, or the raw code when unknown
func (c BalanceCode) Description() string {
	if d, ok := knownBalanceCodes[c]; ok {
		return d
	}
	return string(c)
}
