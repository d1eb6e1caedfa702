package camtparser

import (
	"fmt"
	"regexp"
	"time"

	"fjacquet/camt-report/internal/dateutils"
	"fjacquet/camt-report/internal/models"
	"fjacquet/camt-report/internal/parsererror"

	"github.com/shopspring/decimal"
)

// xs:decimal lexical form; exponents are not allowed
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

func parseDate(entity, field, value string) (models.Date, error) {
	d, err := dateutils.ParseISODate(value)
	if err != nil {
		return models.Date{}, &parsererror.InvalidValueError{
			Kind:   parsererror.ErrInvalidDate,
			Entity: entity,
			Field:  field,
			Value:  value,
			Err:    err,
		}
	}
	return models.Date{Dt: d}, nil
}

func parseTimestamp(entity, field, value string) (time.Time, error) {
	t, err := dateutils.ParseTimestamp(value)
	if err != nil {
		return time.Time{}, &parsererror.InvalidValueError{
			Kind:   parsererror.ErrInvalidTimestamp,
			Entity: entity,
			Field:  field,
			Value:  value,
			Err:    err,
		}
	}
	return t, nil
}

func parseDecimal(entity, field, value string) (decimal.Decimal, error) {
	invalid := func(err error) error {
		return &parsererror.InvalidValueError{
			Kind:   parsererror.ErrInvalidAmount,
			Entity: entity,
			Field:  field,
			Value:  value,
			Err:    err,
		}
	}

	if !decimalPattern.MatchString(value) {
		return decimal.Zero, invalid(nil)
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, invalid(fmt.Errorf("not a decimal number: %w", err))
	}
	return d, nil
}

func parseIndicator(entity, value string) (models.CreditDebit, error) {
	cd, err := models.ParseCreditDebit(value)
	if err != nil {
		return "", &parsererror.InvalidValueError{
			Kind:   parsererror.ErrInvalidIndicator,
			Entity: entity,
			Field:  "CdtDbtInd",
			Value:  value,
			Err:    err,
		}
	}
	return cd, nil
}
