// Package common provides the CSV export of decoded statements and the account helpers
// shared by the commands.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/camt-report/internal/dateutils"
	"fjacquet/camt-report/internal/logging"
	"fjacquet/camt-report/internal/models"

	"github.com/gocarina/gocsv"
)

// DefaultDelimiter is used when no delimiter is configured
const DefaultDelimiter = ','

// EntryRow is the CSV representation of one statement entry
type EntryRow struct {
	Account           string `csv:"Account"`
	StatementID       string `csv:"StatementID"`
	BookingDate       string `csv:"BookingDate"`
	ValueDate         string `csv:"ValueDate"`
	CreditDebit       string `csv:"CreditDebit"`
	Amount            string `csv:"Amount"`
	Currency          string `csv:"Currency"`
	Debit             string `csv:"Debit"`
	Credit            string `csv:"Credit"`
	Status            string `csv:"Status"`
	Reference         string `csv:"Reference"`
	ServicerReference string `csv:"ServicerReference"`
	Creditor          string `csv:"Creditor"`
	CreditorAccount   string `csv:"CreditorAccount"`
	Debtor            string `csv:"Debtor"`
	DebtorAccount     string `csv:"DebtorAccount"`
	Remittance        string `csv:"Remittance"`
	AdditionalInfo    string `csv:"AdditionalInfo"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// accountOrEmpty renders an optional account without ever assuming it is present
func accountOrEmpty(acct *models.PartyAccount) string {
	if acct == nil {
		return ""
	}
	return acct.ID.String()
}

// EntryRows flattens the entries of a statement into CSV rows, in document order.
// Dates are formatted with dateLayout, amounts with two decimals.
func EntryRows(stmt *models.Statement, account string, dateLayout string) []EntryRow {
	if dateLayout == "" {
		dateLayout = dateutils.DateLayoutISO
	}

	rows := make([]EntryRow, 0, len(stmt.Entries))
	for i := range stmt.Entries {
		e := &stmt.Entries[i]

		row := EntryRow{
			Account:           account,
			StatementID:       deref(stmt.ID),
			BookingDate:       e.BookingDate.Format(dateLayout),
			ValueDate:         e.ValueDate.Format(dateLayout),
			CreditDebit:       e.CreditDebit.Code(),
			Amount:            e.Amount.Signed(e.CreditDebit).StringFixed(2),
			Currency:          e.Amount.Currency,
			Status:            deref(e.Status),
			Reference:         deref(e.Reference),
			ServicerReference: deref(e.ServicerReference),
			Remittance:        e.RemittanceText(),
			AdditionalInfo:    deref(e.AdditionalInfo),
		}
		if e.IsDebit() {
			row.Debit = e.Amount.Value.StringFixed(2)
		} else {
			row.Credit = e.Amount.Value.StringFixed(2)
		}

		if rp := e.Details.Transaction.RelatedParties; rp != nil {
			if rp.Creditor != nil {
				row.Creditor = rp.Creditor.Name
			}
			if rp.Debtor != nil {
				row.Debtor = rp.Debtor.Name
			}
			row.CreditorAccount = accountOrEmpty(rp.CreditorAccount)
			row.DebtorAccount = accountOrEmpty(rp.DebtorAccount)
		}

		rows = append(rows, row)
	}
	return rows
}

// WriteEntriesToCSV writes entry rows to csvFile, creating its directory when needed.
// A zero delimiter selects DefaultDelimiter.
func WriteEntriesToCSV(rows []EntryRow, csvFile string, delimiter rune, logger logging.Logger) error {
	if rows == nil {
		return fmt.Errorf("cannot write nil entries to CSV")
	}
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}

	logger.Info("Writing entries to CSV file",
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
		logging.Field{Key: logging.FieldDelimiter, Value: string(delimiter)})

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		logger.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		logger.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		logger.WithError(err).Error("Failed to marshal entries to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	logger.Info("Successfully wrote entries to CSV file",
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(rows)})

	return nil
}
