package camtparser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"fjacquet/camt-report/internal/common"
	"fjacquet/camt-report/internal/logging"
	"fjacquet/camt-report/internal/models"
	"fjacquet/camt-report/internal/parser"
	"fjacquet/camt-report/internal/parsererror"
	"fjacquet/camt-report/internal/xmlutils"
)

// ParserName identifies this parser in errors and logs
const ParserName = "CAMT"

// Parser is the file-facing camt.053 decoder used by the commands. It adds logging,
// format sniffing and CSV export around Parse.
type Parser struct {
	parser.BaseParser
	opts       []Option
	delimiter  rune
	dateLayout string
}

// NewParser creates a file-facing parser. opts are applied to every decode.
func NewParser(logger logging.Logger, opts ...Option) *Parser {
	return &Parser{
		BaseParser: parser.NewBaseParser(logger),
		opts:       opts,
		delimiter:  common.DefaultDelimiter,
	}
}

// SetCSVFormat configures the delimiter and date layout used by ConvertToCSV
func (p *Parser) SetCSVFormat(delimiter rune, dateLayout string) {
	if delimiter != 0 {
		p.delimiter = delimiter
	}
	p.dateLayout = dateLayout
}

// Parse decodes a document from r
func (p *Parser) Parse(r io.Reader) (*models.Document, error) {
	doc, err := Parse(r, p.opts...)
	if err != nil {
		p.GetLogger().WithError(err).Debug("Failed to decode CAMT.053 document")
		return nil, err
	}
	return doc, nil
}

// ParseFile decodes the document stored at filePath. Decoding failures are wrapped in a
// *parsererror.ParseError carrying the path.
func (p *Parser) ParseFile(filePath string) (*models.Document, error) {
	logger := p.GetLogger().WithFields(
		logging.Field{Key: logging.FieldParser, Value: ParserName},
		logging.Field{Key: logging.FieldFile, Value: filePath})
	logger.Info("Parsing CAMT.053 XML file")
	start := time.Now()

	data, err := os.ReadFile(filePath)
	if err != nil {
		logger.WithError(err).Error("Failed to read XML file")
		return nil, fmt.Errorf("error reading XML file: %w", err)
	}

	doc, err := ParseBytes(data, p.opts...)
	if err != nil {
		logger.WithError(err).Error("Failed to decode CAMT.053 document")
		return nil, &parsererror.ParseError{
			Parser: ParserName,
			Field:  "file",
			Value:  filePath,
			Err:    err,
		}
	}

	if stmt, ok := doc.BankToCustomerStatement(); ok {
		statementID := ""
		if stmt.Statement.ID != nil {
			statementID = *stmt.Statement.ID
		}
		logger.Info("Successfully decoded CAMT.053 document",
			logging.Field{Key: logging.FieldStatement, Value: statementID},
			logging.Field{Key: logging.FieldBalances, Value: len(stmt.Statement.Balances)},
			logging.Field{Key: logging.FieldEntries, Value: len(stmt.Statement.Entries)},
			logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()})
	}
	return doc, nil
}

// ValidateFormat checks that filePath looks like a camt.053 statement without decoding
// it fully. A file that is not XML, or lacks a required path, is reported as invalid
// rather than as an error.
func (p *Parser) ValidateFormat(filePath string) (bool, error) {
	logger := p.GetLogger().WithField(logging.FieldFile, filePath)
	logger.Debug("Validating CAMT.053 format")

	if _, err := os.Stat(filePath); err != nil {
		logger.WithError(err).Error("XML file does not exist")
		return false, fmt.Errorf("error checking XML file: %w", err)
	}

	root, err := xmlutils.LoadXMLFile(filePath)
	if err != nil {
		logger.WithError(err).Debug("File is not valid XML")
		return false, nil
	}

	missing, err := xmlutils.MissingPaths(root, xmlutils.DefaultCamt053XPaths().Required...)
	if err != nil {
		return false, err
	}
	if len(missing) > 0 {
		logger.Debug("File is missing required CAMT.053 elements",
			logging.Field{Key: logging.FieldMissing, Value: missing})
		return false, nil
	}

	return true, nil
}

// ConvertToCSV decodes inputFile and writes its entries to outputFile
func (p *Parser) ConvertToCSV(inputFile, outputFile string) error {
	logger := p.GetLogger().WithFields(
		logging.Field{Key: logging.FieldInputFile, Value: inputFile},
		logging.Field{Key: logging.FieldOutputFile, Value: outputFile})
	logger.Info("Converting file to CSV")

	valid, err := p.ValidateFormat(inputFile)
	if err != nil {
		return fmt.Errorf("error validating file format: %w", err)
	}
	if !valid {
		return &parsererror.InvalidFormatError{
			FilePath:       inputFile,
			ExpectedFormat: "CAMT.053 XML",
			Msg:            "required statement elements not found",
		}
	}

	doc, err := p.ParseFile(inputFile)
	if err != nil {
		return err
	}
	stmt, ok := doc.BankToCustomerStatement()
	if !ok {
		return errors.New("document does not carry a bank-to-customer statement")
	}

	account := common.StatementAccount(&stmt.Statement, inputFile)
	rows := common.EntryRows(&stmt.Statement, account.ID, p.dateLayout)
	if err := common.WriteEntriesToCSV(rows, outputFile, p.delimiter, p.GetLogger()); err != nil {
		return fmt.Errorf("error writing entries to CSV: %w", err)
	}

	logger.Info("Successfully converted file to CSV",
		logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return nil
}

var _ parser.FullParser = (*Parser)(nil)
