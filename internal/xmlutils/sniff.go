package xmlutils

import (
	"sort"
	"strings"

	"gopkg.in/xmlpath.v2"
)

// Summary is what a quick XPath pass can tell about a CAMT.053 file before it is decoded
type Summary struct {
	Missing      []string
	Entries      int
	Credits      int
	Debits       int
	Currencies   []string
	BalanceCodes []string
	FirstBooking string
	LastBooking  string
}

// Summarize runs the sniffing expressions of camt against root
func Summarize(root *xmlpath.Node, camt CAMT053) (Summary, error) {
	var s Summary
	var err error

	if s.Missing, err = MissingPaths(root, camt.Required...); err != nil {
		return Summary{}, err
	}

	amounts, err := ExtractFromXML(root, camt.Entry.Amount)
	if err != nil {
		return Summary{}, err
	}
	s.Entries = len(amounts)

	indicators, err := ExtractFromXML(root, camt.Entry.CreditDebitInd)
	if err != nil {
		return Summary{}, err
	}
	for _, ind := range indicators {
		switch strings.TrimSpace(ind) {
		case "CRDT":
			s.Credits++
		case "DBIT":
			s.Debits++
		}
	}

	currencies, err := ExtractFromXML(root, camt.Entry.Currency)
	if err != nil {
		return Summary{}, err
	}
	s.Currencies = distinct(currencies)

	codes, err := ExtractFromXML(root, camt.Balance.Code)
	if err != nil {
		return Summary{}, err
	}
	s.BalanceCodes = distinct(codes)

	dates, err := ExtractFromXML(root, camt.Entry.BookingDate)
	if err != nil {
		return Summary{}, err
	}
	// ISO dates sort lexically
	sorted := distinct(dates)
	if len(sorted) > 0 {
		s.FirstBooking = sorted[0]
		s.LastBooking = sorted[len(sorted)-1]
	}

	return s, nil
}

// distinct returns the sorted set of non-empty trimmed values
func distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
