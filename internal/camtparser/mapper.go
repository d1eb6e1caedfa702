package camtparser

import (
	"fmt"

	"fjacquet/camt-report/internal/models"
	"fjacquet/camt-report/internal/parsererror"
	"fjacquet/camt-report/internal/xmlutils"
)

// Cardinality helpers. Singular elements that occur more than once map their first
// occurrence.

func requiredChild(parent *xmlutils.Element, entity, name string) (*xmlutils.Element, error) {
	child := parent.Child(name)
	if child == nil {
		return nil, &parsererror.MissingFieldError{Entity: entity, Field: name}
	}
	return child, nil
}

// requiredText returns the trimmed text of a required leaf child. An empty leaf counts
// as missing.
func requiredText(parent *xmlutils.Element, entity, name string) (string, error) {
	child, err := requiredChild(parent, entity, name)
	if err != nil {
		return "", err
	}
	text := child.Text()
	if text == "" {
		return "", &parsererror.MissingFieldError{Entity: entity, Field: name}
	}
	return text, nil
}

func requiredOwnText(el *xmlutils.Element, entity string) (string, error) {
	text := el.Text()
	if text == "" {
		return "", &parsererror.MissingFieldError{Entity: entity, Field: el.Name()}
	}
	return text, nil
}

func optionalText(parent *xmlutils.Element, name string) *string {
	child := parent.Child(name)
	if child == nil {
		return nil
	}
	text := child.Text()
	return &text
}

func requiredAttr(el *xmlutils.Element, entity, name string) (string, error) {
	value, ok := el.Attr(name)
	if !ok || value == "" {
		return "", &parsererror.MissingFieldError{Entity: entity, Field: "@" + name}
	}
	return value, nil
}

// mapDocument maps the root element. strictNamespace additionally requires the
// camt.053.001.02 namespace on the root.
func mapDocument(root *xmlutils.Element, strictNamespace bool) (*models.Document, error) {
	if root.Name() != models.TagDocument {
		return nil, &parsererror.UnknownVariantError{
			Choice:   "root",
			Tag:      root.Name(),
			Expected: []string{models.TagDocument},
		}
	}
	if strictNamespace && root.Namespace() != models.Namespace053 {
		return nil, &parsererror.UnknownVariantError{
			Choice:   "Document namespace",
			Tag:      root.Namespace(),
			Expected: []string{models.Namespace053},
		}
	}

	msg, err := messageChoice.resolve(root)
	if err != nil {
		return nil, err
	}
	return &models.Document{Namespace: root.Namespace(), Message: msg}, nil
}

func mapBankToCustomerStatement(el *xmlutils.Element) (*models.BankToCustomerStatement, error) {
	const entity = models.TagBankToCustomerStatement

	grpHdr, err := requiredChild(el, entity, "GrpHdr")
	if err != nil {
		return nil, err
	}
	header, err := mapHeader(grpHdr)
	if err != nil {
		return nil, fmt.Errorf("GrpHdr: %w", err)
	}

	stmtEl, err := requiredChild(el, entity, "Stmt")
	if err != nil {
		return nil, err
	}
	stmt, err := mapStatement(stmtEl)
	if err != nil {
		return nil, fmt.Errorf("Stmt: %w", err)
	}

	return &models.BankToCustomerStatement{Header: header, Statement: stmt}, nil
}

func mapHeader(el *xmlutils.Element) (models.Header, error) {
	raw, err := requiredText(el, "GrpHdr", "CreDtTm")
	if err != nil {
		return models.Header{}, err
	}
	created, err := parseTimestamp("GrpHdr", "CreDtTm", raw)
	if err != nil {
		return models.Header{}, err
	}
	return models.Header{
		MessageID:        optionalText(el, "MsgId"),
		CreationDateTime: created,
	}, nil
}

func mapStatement(el *xmlutils.Element) (models.Statement, error) {
	stmt := models.Statement{ID: optionalText(el, "Id")}

	if acct := el.Child("Acct"); acct != nil {
		account, err := mapPartyAccount(acct, "Acct")
		if err != nil {
			return models.Statement{}, fmt.Errorf("Acct: %w", err)
		}
		stmt.Account = account
	}

	for i, balEl := range el.ChildrenNamed("Bal") {
		bal, err := mapBalance(balEl)
		if err != nil {
			return models.Statement{}, fmt.Errorf("Bal[%d]: %w", i, err)
		}
		stmt.Balances = append(stmt.Balances, bal)
	}

	for i, ntryEl := range el.ChildrenNamed("Ntry") {
		entry, err := mapEntry(ntryEl)
		if err != nil {
			return models.Statement{}, fmt.Errorf("Ntry[%d]: %w", i, err)
		}
		stmt.Entries = append(stmt.Entries, entry)
	}

	return stmt, nil
}

func mapBalance(el *xmlutils.Element) (models.Balance, error) {
	const entity = "Bal"

	tp, err := requiredChild(el, entity, "Tp")
	if err != nil {
		return models.Balance{}, err
	}
	cdOrPrtry, err := requiredChild(tp, "Tp", "CdOrPrtry")
	if err != nil {
		return models.Balance{}, err
	}
	balanceType, err := balanceTypeChoice.resolve(cdOrPrtry)
	if err != nil {
		return models.Balance{}, err
	}

	amount, err := mapAmount(el, entity)
	if err != nil {
		return models.Balance{}, err
	}
	cd, err := mapIndicator(el, entity)
	if err != nil {
		return models.Balance{}, err
	}
	date, err := mapDate(el, entity, "Dt")
	if err != nil {
		return models.Balance{}, err
	}

	return models.Balance{
		Type:        balanceType,
		Amount:      amount,
		CreditDebit: cd,
		Date:        date,
	}, nil
}

// mapAmount reads the Amt child of el: currency from the Ccy attribute, value from the text
func mapAmount(el *xmlutils.Element, entity string) (models.Amount, error) {
	amt, err := requiredChild(el, entity, "Amt")
	if err != nil {
		return models.Amount{}, err
	}
	ccy, err := requiredAttr(amt, "Amt", "Ccy")
	if err != nil {
		return models.Amount{}, err
	}
	raw, err := requiredOwnText(amt, entity)
	if err != nil {
		return models.Amount{}, err
	}
	value, err := parseDecimal(entity, "Amt", raw)
	if err != nil {
		return models.Amount{}, err
	}
	return models.NewAmount(value, ccy), nil
}

func mapIndicator(el *xmlutils.Element, entity string) (models.CreditDebit, error) {
	raw, err := requiredText(el, entity, "CdtDbtInd")
	if err != nil {
		return "", err
	}
	return parseIndicator(entity, raw)
}

// mapDate reads a date wrapper (BookgDt, ValDt, Bal/Dt) and its inner Dt leaf
func mapDate(el *xmlutils.Element, entity, wrapper string) (models.Date, error) {
	w, err := requiredChild(el, entity, wrapper)
	if err != nil {
		return models.Date{}, err
	}
	raw, err := requiredText(w, wrapper, "Dt")
	if err != nil {
		return models.Date{}, err
	}
	return parseDate(wrapper, "Dt", raw)
}

func mapEntry(el *xmlutils.Element) (models.Entry, error) {
	const entity = "Ntry"

	amount, err := mapAmount(el, entity)
	if err != nil {
		return models.Entry{}, err
	}
	cd, err := mapIndicator(el, entity)
	if err != nil {
		return models.Entry{}, err
	}
	booking, err := mapDate(el, entity, "BookgDt")
	if err != nil {
		return models.Entry{}, err
	}
	value, err := mapDate(el, entity, "ValDt")
	if err != nil {
		return models.Entry{}, err
	}

	detailsEl, err := requiredChild(el, entity, "NtryDtls")
	if err != nil {
		return models.Entry{}, err
	}
	details, err := mapEntryDetails(detailsEl)
	if err != nil {
		return models.Entry{}, fmt.Errorf("NtryDtls: %w", err)
	}

	return models.Entry{
		Reference:         optionalText(el, "NtryRef"),
		Amount:            amount,
		CreditDebit:       cd,
		Status:            optionalText(el, "Sts"),
		BookingDate:       booking,
		ValueDate:         value,
		ServicerReference: optionalText(el, "AcctSvcrRef"),
		Details:           details,
		AdditionalInfo:    optionalText(el, "AddtlNtryInf"),
	}, nil
}

func mapEntryDetails(el *xmlutils.Element) (models.EntryDetails, error) {
	txEl, err := requiredChild(el, "NtryDtls", "TxDtls")
	if err != nil {
		return models.EntryDetails{}, err
	}
	tx, err := mapTransactionDetails(txEl)
	if err != nil {
		return models.EntryDetails{}, fmt.Errorf("TxDtls: %w", err)
	}
	return models.EntryDetails{Transaction: tx}, nil
}

func mapTransactionDetails(el *xmlutils.Element) (models.TransactionDetails, error) {
	var tx models.TransactionDetails

	if rmtEl := el.Child("RmtInf"); rmtEl != nil {
		rmt, err := mapRemittance(rmtEl)
		if err != nil {
			return models.TransactionDetails{}, fmt.Errorf("RmtInf: %w", err)
		}
		tx.Remittance = rmt
	}

	if partiesEl := el.Child("RltdPties"); partiesEl != nil {
		parties, err := mapRelatedParties(partiesEl)
		if err != nil {
			return models.TransactionDetails{}, fmt.Errorf("RltdPties: %w", err)
		}
		tx.RelatedParties = parties
	}

	return tx, nil
}

func mapRemittance(el *xmlutils.Element) (*models.RemittanceInfo, error) {
	lines := el.ChildrenNamed("Ustrd")
	if len(lines) == 0 {
		return nil, &parsererror.MissingFieldError{Entity: "RmtInf", Field: "Ustrd"}
	}
	rmt := &models.RemittanceInfo{Unstructured: make([]string, 0, len(lines))}
	for _, line := range lines {
		rmt.Unstructured = append(rmt.Unstructured, line.Text())
	}
	return rmt, nil
}

func mapRelatedParties(el *xmlutils.Element) (*models.RelatedParties, error) {
	var (
		parties models.RelatedParties
		err     error
	)

	if cdtr := el.Child("Cdtr"); cdtr != nil {
		if parties.Creditor, err = mapParty(cdtr, "Cdtr"); err != nil {
			return nil, fmt.Errorf("Cdtr: %w", err)
		}
	}
	if acct := el.Child("CdtrAcct"); acct != nil {
		if parties.CreditorAccount, err = mapPartyAccount(acct, "CdtrAcct"); err != nil {
			return nil, fmt.Errorf("CdtrAcct: %w", err)
		}
	}
	if dbtr := el.Child("Dbtr"); dbtr != nil {
		if parties.Debtor, err = mapParty(dbtr, "Dbtr"); err != nil {
			return nil, fmt.Errorf("Dbtr: %w", err)
		}
	}
	if acct := el.Child("DbtrAcct"); acct != nil {
		if parties.DebtorAccount, err = mapPartyAccount(acct, "DbtrAcct"); err != nil {
			return nil, fmt.Errorf("DbtrAcct: %w", err)
		}
	}

	return &parties, nil
}

// mapParty requires Nm to be present; an empty name is kept as is.
func mapParty(el *xmlutils.Element, entity string) (*models.PartyID, error) {
	nm, err := requiredChild(el, entity, "Nm")
	if err != nil {
		return nil, err
	}
	return &models.PartyID{Name: nm.Text()}, nil
}

func mapPartyAccount(el *xmlutils.Element, entity string) (*models.PartyAccount, error) {
	idEl, err := requiredChild(el, entity, "Id")
	if err != nil {
		return nil, err
	}
	id, err := accountChoice.resolve(idEl)
	if err != nil {
		return nil, err
	}
	return &models.PartyAccount{
		ID:       id,
		Currency: optionalText(el, "Ccy"),
		Name:     optionalText(el, "Nm"),
	}, nil
}
