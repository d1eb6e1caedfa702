package parser

import (
	"io"

	"fjacquet/camt-report/internal/logging"
	"fjacquet/camt-report/internal/models"
)

// DocumentParser decodes a statement document from a reader or a file.
// Implementations return the typed errors of package parsererror so callers can
// distinguish malformed input from schema violations.
type DocumentParser interface {
	Parse(r io.Reader) (*models.Document, error)
	ParseFile(filePath string) (*models.Document, error)
}

// FormatValidator performs a cheap structural check before a full decode
type FormatValidator interface {
	ValidateFormat(filePath string) (bool, error)
}

// CSVConverter writes the entries of a decoded document to CSV
type CSVConverter interface {
	ConvertToCSV(inputFile, outputFile string) error
}

// LoggerConfigurable allows the logger to be swapped after construction
type LoggerConfigurable interface {
	SetLogger(logger logging.Logger)
}

// FullParser combines every capability a command may need
type FullParser interface {
	DocumentParser
	FormatValidator
	CSVConverter
	LoggerConfigurable
}
