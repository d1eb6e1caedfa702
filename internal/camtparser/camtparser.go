// Package camtparser decodes ISO 20022 camt.053.001.02 Bank-to-Customer Statement
// documents into the typed model of package models.
//
// Decoding is a single synchronous pass: the XML is read into a generic element tree,
// which is then mapped bottom-up. The first failure is returned and no partial model is
// ever produced.
package camtparser

import (
	"io"
	"strings"

	"fjacquet/camt-report/internal/models"
	"fjacquet/camt-report/internal/parsererror"
	"fjacquet/camt-report/internal/xmlutils"
)

type options struct {
	strictNamespace bool
}

// Option configures a decode
type Option func(*options)

// WithStrictNamespace requires the root element to be in the camt.053.001.02 namespace.
// By default elements are matched on local names only.
func WithStrictNamespace(strict bool) Option {
	return func(o *options) {
		o.strictNamespace = strict
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Parse decodes a single camt.053 document from r
func Parse(r io.Reader, opts ...Option) (*models.Document, error) {
	root, err := xmlutils.ParseElement(r)
	return decodeElement(root, err, opts)
}

// ParseBytes decodes a camt.053 document held in memory
func ParseBytes(data []byte, opts ...Option) (*models.Document, error) {
	root, err := xmlutils.ParseElementBytes(data)
	return decodeElement(root, err, opts)
}

func decodeElement(root *xmlutils.Element, err error, opts []Option) (*models.Document, error) {
	if err != nil {
		return nil, &parsererror.MalformedXMLError{Err: err}
	}
	return mapDocument(root, buildOptions(opts).strictNamespace)
}

// ParseString decodes a camt.053 document from its text
func ParseString(s string, opts ...Option) (*models.Document, error) {
	return Parse(strings.NewReader(s), opts...)
}

// ParseStatement decodes r and returns its statement message
func ParseStatement(r io.Reader, opts ...Option) (*models.BankToCustomerStatement, error) {
	doc, err := Parse(r, opts...)
	if err != nil {
		return nil, err
	}
	stmt, ok := doc.BankToCustomerStatement()
	if !ok {
		return nil, &parsererror.UnknownVariantError{
			Choice:   "Document",
			Tag:      doc.Message.MessageTag(),
			Expected: []string{models.TagBankToCustomerStatement},
		}
	}
	return stmt, nil
}
