package xmlutils

// CAMT053 groups the XPath expressions used to sniff CAMT.053 documents before decoding
type CAMT053 struct {
	// Required lists the paths every bank-to-customer statement must contain
	Required []string

	Entry struct {
		Amount         string
		Currency       string
		CreditDebitInd string
		BookingDate    string
	}

	Balance struct {
		Code string
	}
}

// DefaultCamt053XPaths returns a CAMT053 struct with the default XPath expressions
func DefaultCamt053XPaths() CAMT053 {
	camt := CAMT053{}

	camt.Required = []string{
		XPathStatementMessage,
		XPathCreationDateTime,
		XPathStatement,
	}

	camt.Entry.Amount = "//Ntry/Amt"
	camt.Entry.Currency = "//Ntry/Amt/@Ccy"
	camt.Entry.CreditDebitInd = "//Ntry/CdtDbtInd"
	camt.Entry.BookingDate = "//Ntry/BookgDt/Dt"

	camt.Balance.Code = "//Stmt/Bal/Tp/CdOrPrtry/Cd"

	return camt
}

// XPath expressions for the document skeleton
const (
	XPathStatementMessage = "/Document/BkToCstmrStmt"
	XPathCreationDateTime = "/Document/BkToCstmrStmt/GrpHdr/CreDtTm"
	XPathStatement        = "/Document/BkToCstmrStmt/Stmt"
)
