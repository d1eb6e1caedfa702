// Package parsererror defines the error taxonomy shared by the CAMT.053 decoder and the
// commands built on top of it.
package parsererror

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, one per failure class. Every typed error below matches exactly one of
// them through errors.Is.
var (
	ErrMalformedXML     = errors.New("malformed XML")
	ErrUnknownVariant   = errors.New("unknown variant")
	ErrMissingField     = errors.New("missing field")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidIndicator = errors.New("invalid credit/debit indicator")
)

// ParseError attaches file-level context to a decoding failure
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MalformedXMLError reports input that the XML tokenizer rejected.
type MalformedXMLError struct {
	Err error
}

func (e *MalformedXMLError) Error() string {
	return fmt.Sprintf("malformed XML: %v", e.Err)
}

func (e *MalformedXMLError) Unwrap() error {
	return e.Err
}

func (e *MalformedXMLError) Is(target error) bool {
	return target == ErrMalformedXML
}

// UnknownVariantError reports a choice point whose child tag is not one of the
// recognized alternatives. Tag is empty when no child was present at all.
type UnknownVariantError struct {
	Choice   string
	Tag      string
	Expected []string
}

func (e *UnknownVariantError) Error() string {
	tag := e.Tag
	if tag == "" {
		tag = "<none>"
	}
	return fmt.Sprintf("unknown variant %s for %s (expected one of: %s)",
		tag, e.Choice, strings.Join(e.Expected, ", "))
}

func (e *UnknownVariantError) Is(target error) bool {
	return target == ErrUnknownVariant
}

// MissingFieldError reports a required element or attribute that is absent.
type MissingFieldError struct {
	Entity string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %s in %s", e.Field, e.Entity)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// InvalidValueError reports scalar text that does not convert to its expected type.
// Kind is one of ErrInvalidDate, ErrInvalidTimestamp, ErrInvalidAmount or
// ErrInvalidIndicator.
type InvalidValueError struct {
	Kind   error
	Entity string
	Field  string
	Value  string
	Err    error
}

func (e *InvalidValueError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v in %s.%s: '%s': %v", e.Kind, e.Entity, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%v in %s.%s: '%s'", e.Kind, e.Entity, e.Field, e.Value)
}

func (e *InvalidValueError) Unwrap() error {
	return e.Err
}

func (e *InvalidValueError) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

// InvalidFormatError represents an error where the input file does not conform
// to the expected format for a specific parser.
type InvalidFormatError struct {
	FilePath             string
	ExpectedFormat       string
	ActualContentSnippet string // Optional: a snippet of the actual content for debugging
	Msg                  string
}

func (e *InvalidFormatError) Error() string {
	if e.ActualContentSnippet != "" {
		return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s. Content snippet: '%s'",
			e.FilePath, e.Msg, e.ExpectedFormat, e.ActualContentSnippet)
	}
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}
