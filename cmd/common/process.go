// Package common contains shared functionality for command handlers
package common

import (
	"errors"
	"fmt"

	"fjacquet/camt-report/internal/logging"
	"fjacquet/camt-report/internal/models"
	"fjacquet/camt-report/internal/parser"
	"fjacquet/camt-report/internal/parsererror"
)

// ErrNoStatement is returned when a decoded document carries no bank-to-customer statement
var ErrNoStatement = errors.New("document does not carry a bank-to-customer statement")

// ProcessFile converts a single file to CSV using the given parser, validating its format
// first when validate is set.
func ProcessFile(p parser.FullParser, inputFile, outputFile string, validate bool, log logging.Logger) error {
	if inputFile == "" || outputFile == "" {
		return errors.New("input and output files must be specified")
	}

	p.SetLogger(log)

	if validate {
		log.Info("Validating format...")
		valid, err := p.ValidateFormat(inputFile)
		if err != nil {
			return fmt.Errorf("error validating file: %w", err)
		}
		if !valid {
			return &parsererror.InvalidFormatError{
				FilePath:       inputFile,
				ExpectedFormat: "CAMT.053 XML",
				Msg:            "the file is not in a valid format",
			}
		}
		log.Info("Validation successful.")
	}

	if err := p.ConvertToCSV(inputFile, outputFile); err != nil {
		return fmt.Errorf("error converting to CSV: %w", err)
	}
	log.Info("Conversion completed successfully!",
		logging.Field{Key: logging.FieldInputFile, Value: inputFile},
		logging.Field{Key: logging.FieldOutputFile, Value: outputFile})
	return nil
}

// LoadStatement decodes inputFile and returns its statement message
func LoadStatement(p parser.DocumentParser, inputFile string) (*models.BankToCustomerStatement, error) {
	if inputFile == "" {
		return nil, errors.New("an input file is required")
	}

	doc, err := p.ParseFile(inputFile)
	if err != nil {
		return nil, err
	}
	stmt, ok := doc.BankToCustomerStatement()
	if !ok {
		return nil, fmt.Errorf("%s: %w", inputFile, ErrNoStatement)
	}
	return stmt, nil
}
