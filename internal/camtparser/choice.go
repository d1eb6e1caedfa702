package camtparser

import (
	"sort"
	"strings"

	"fjacquet/camt-report/internal/models"
	"fjacquet/camt-report/internal/parsererror"
	"fjacquet/camt-report/internal/xmlutils"
)

// variantFunc builds the value of one alternative from the element that selected it
type variantFunc[T any] func(el *xmlutils.Element) (T, error)

// choice resolves an element whose single child tag selects one of a closed set of
// alternatives. A fallback, when set, receives any tag outside the set.
type choice[T any] struct {
	name     string
	variants map[string]variantFunc[T]
	fallback variantFunc[T]
}

func newChoice[T any](name string, variants map[string]variantFunc[T]) *choice[T] {
	return &choice[T]{name: name, variants: variants}
}

func (c *choice[T]) withFallback(fn variantFunc[T]) *choice[T] {
	c.fallback = fn
	return c
}

// expected returns the recognized tags, sorted
func (c *choice[T]) expected() []string {
	tags := make([]string, 0, len(c.variants))
	for tag := range c.variants {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func (c *choice[T]) unknown(tag string) error {
	return &parsererror.UnknownVariantError{
		Choice:   c.name,
		Tag:      tag,
		Expected: c.expected(),
	}
}

// resolve inspects the element children of parent. Exactly one child must be present.
func (c *choice[T]) resolve(parent *xmlutils.Element) (T, error) {
	var zero T

	switch len(parent.Children) {
	case 0:
		return zero, c.unknown("")
	case 1:
	default:
		return zero, c.unknown(strings.Join(parent.ChildNames(), "+"))
	}

	child := &parent.Children[0]
	if build, ok := c.variants[child.Name()]; ok {
		return build(child)
	}
	if c.fallback != nil {
		return c.fallback(child)
	}
	return zero, c.unknown(child.Name())
}

// Choice points. Each resolver is independent; adding a message or scheme variant is
// a new map entry.

var messageChoice = newChoice("Document", map[string]variantFunc[models.Message]{
	models.TagBankToCustomerStatement: func(el *xmlutils.Element) (models.Message, error) {
		return mapBankToCustomerStatement(el)
	},
})

var balanceTypeChoice = newChoice("Bal.Tp.CdOrPrtry", map[string]variantFunc[models.BalanceType]{
	"Cd": func(el *xmlutils.Element) (models.BalanceType, error) {
		code, err := requiredOwnText(el, "CdOrPrtry")
		if err != nil {
			return models.BalanceType{}, err
		}
		return models.BalanceType{Kind: models.BalanceTypeCode, Code: models.BalanceCode(code)}, nil
	},
	"Prtry": func(el *xmlutils.Element) (models.BalanceType, error) {
		label, err := requiredOwnText(el, "CdOrPrtry")
		if err != nil {
			return models.BalanceType{}, err
		}
		return models.BalanceType{Kind: models.BalanceTypeProprietary, Proprietary: label}, nil
	},
})

var accountChoice = newChoice("Acct.Id", map[string]variantFunc[models.AccountIdentification]{
	"IBAN": func(el *xmlutils.Element) (models.AccountIdentification, error) {
		iban, err := requiredOwnText(el, "Id")
		if err != nil {
			return models.AccountIdentification{}, err
		}
		return models.AccountIdentification{Scheme: models.SchemeIBAN, Tag: el.Name(), Value: iban}, nil
	},
	"Othr": func(el *xmlutils.Element) (models.AccountIdentification, error) {
		id, err := requiredText(el, "Othr", "Id")
		if err != nil {
			return models.AccountIdentification{}, err
		}
		return models.AccountIdentification{Scheme: models.SchemeOther, Tag: el.Name(), Value: id}, nil
	},
}).withFallback(func(el *xmlutils.Element) (models.AccountIdentification, error) {
	return models.AccountIdentification{
		Scheme: models.SchemeUnrecognized,
		Tag:    el.Name(),
		Value:  el.Text(),
	}, nil
})
