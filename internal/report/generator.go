// Package report renders decoded statements for people (text) and tools (YAML, JSON).
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"fjacquet/camt-report/internal/dateutils"
	"fjacquet/camt-report/internal/logging"
	"fjacquet/camt-report/internal/models"

	"gopkg.in/yaml.v3"
)

// Supported output formats
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// NoAccountOnFile is printed in place of a counterparty account the document does not carry
const NoAccountOnFile = "no account on file"

// SupportedFormats lists the values accepted by GenerateReport
var SupportedFormats = []string{FormatText, FormatYAML, FormatJSON}

// StatementReport is the rendering-neutral view of a statement
type StatementReport struct {
	MessageID   string         `yaml:"message_id,omitempty" json:"message_id,omitempty"`
	Created     string         `yaml:"created" json:"created"`
	StatementID string         `yaml:"statement_id,omitempty" json:"statement_id,omitempty"`
	Account     string         `yaml:"account,omitempty" json:"account,omitempty"`
	Entries     []EntryReport  `yaml:"entries" json:"entries"`
	Opening     *BalanceReport `yaml:"opening_balance,omitempty" json:"opening_balance,omitempty"`
	Closing     *BalanceReport `yaml:"closing_balance,omitempty" json:"closing_balance,omitempty"`
	Totals      []TotalsReport `yaml:"totals,omitempty" json:"totals,omitempty"`
}

// EntryReport is one entry line of the report
type EntryReport struct {
	BookingDate    string               `yaml:"booking_date" json:"booking_date"`
	Amount         string               `yaml:"amount" json:"amount"`
	Currency       string               `yaml:"currency" json:"currency"`
	Indicator      string               `yaml:"indicator" json:"indicator"`
	Counterparties []CounterpartyReport `yaml:"counterparties,omitempty" json:"counterparties,omitempty"`
	Remittance     string               `yaml:"remittance,omitempty" json:"remittance,omitempty"`
	AdditionalInfo string               `yaml:"additional_info,omitempty" json:"additional_info,omitempty"`
}

// CounterpartyReport names a related party and its account
type CounterpartyReport struct {
	Role    string `yaml:"role" json:"role"`
	Name    string `yaml:"name" json:"name"`
	Account string `yaml:"account" json:"account"`
}

// BalanceReport is a balance snapshot
type BalanceReport struct {
	Code        string `yaml:"code" json:"code"`
	Description string `yaml:"description" json:"description"`
	Date        string `yaml:"date" json:"date"`
	Amount      string `yaml:"amount" json:"amount"`
	Currency    string `yaml:"currency" json:"currency"`
	Indicator   string `yaml:"indicator" json:"indicator"`
}

// TotalsReport sums the entries of one currency
type TotalsReport struct {
	Currency string `yaml:"currency" json:"currency"`
	Count    int    `yaml:"count" json:"count"`
	Credits  string `yaml:"credits" json:"credits"`
	Debits   string `yaml:"debits" json:"debits"`
	Net      string `yaml:"net" json:"net"`
}

// ReportGenerator renders statement reports in the supported formats.
type ReportGenerator struct {
	logger     logging.Logger
	dateLayout string
}

// NewReportGenerator creates a new instance of ReportGenerator. Dates are printed with
// dateLayout, ISO 8601 when empty.
func NewReportGenerator(logger logging.Logger, dateLayout string) *ReportGenerator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if dateLayout == "" {
		dateLayout = dateutils.DateLayoutISO
	}
	return &ReportGenerator{
		logger:     logger.WithField("component", "ReportGenerator"),
		dateLayout: dateLayout,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (g *ReportGenerator) balance(b *models.Balance) *BalanceReport {
	if b == nil {
		return nil
	}
	desc := b.Type.Proprietary
	if b.Type.Kind == models.BalanceTypeCode {
		desc = b.Type.Code.Description()
	}
	return &BalanceReport{
		Code:        b.Type.String(),
		Description: desc,
		Date:        b.Date.Format(g.dateLayout),
		Amount:      b.Amount.Value.StringFixed(2),
		Currency:    b.Amount.Currency,
		Indicator:   b.CreditDebit.Code(),
	}
}

// Build assembles the report view of msg. account names the statement's account and may
// be empty.
func (g *ReportGenerator) Build(msg *models.BankToCustomerStatement, account string) *StatementReport {
	stmt := &msg.Statement

	r := &StatementReport{
		MessageID:   deref(msg.Header.MessageID),
		Created:     dateutils.FormatTimestamp(msg.Header.CreationDateTime),
		StatementID: deref(stmt.ID),
		Account:     account,
		Entries:     make([]EntryReport, 0, len(stmt.Entries)),
		Opening:     g.balance(stmt.OpeningBalance()),
		Closing:     g.balance(stmt.ClosingBalance()),
	}

	for i := range stmt.Entries {
		e := &stmt.Entries[i]
		er := EntryReport{
			BookingDate:    e.BookingDate.Format(g.dateLayout),
			Amount:         e.Amount.Value.StringFixed(2),
			Currency:       e.Amount.Currency,
			Indicator:      e.CreditDebit.Code(),
			Remittance:     e.RemittanceText(),
			AdditionalInfo: deref(e.AdditionalInfo),
		}
		for _, cp := range e.Counterparties() {
			acct := NoAccountOnFile
			if cp.Account != nil {
				acct = cp.Account.String()
			}
			er.Counterparties = append(er.Counterparties, CounterpartyReport{
				Role:    string(cp.Role),
				Name:    cp.Name,
				Account: acct,
			})
		}
		r.Entries = append(r.Entries, er)
	}

	for _, t := range stmt.Totals() {
		r.Totals = append(r.Totals, TotalsReport{
			Currency: t.Currency,
			Count:    t.Count,
			Credits:  t.Credits.StringFixed(2),
			Debits:   t.Debits.StringFixed(2),
			Net:      t.Net().StringFixed(2),
		})
	}

	return r
}

// GenerateReport renders msg in the given format (text, yaml or json).
func (g *ReportGenerator) GenerateReport(msg *models.BankToCustomerStatement, account, format string) ([]byte, error) {
	r := g.Build(msg, account)

	g.logger.Debug("Rendering statement report",
		logging.Field{Key: logging.FieldFormat, Value: format},
		logging.Field{Key: logging.FieldEntries, Value: len(r.Entries)})

	switch format {
	case FormatText, "":
		return renderText(r), nil
	case FormatYAML:
		return g.generateYAMLReport(r)
	case FormatJSON:
		return g.generateJSONReport(r)
	default:
		return nil, fmt.Errorf("unsupported report format: %s (supported: %s)", format, strings.Join(SupportedFormats, ", "))
	}
}

func (g *ReportGenerator) generateYAMLReport(r *StatementReport) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *ReportGenerator) generateJSONReport(r *StatementReport) ([]byte, error) {
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return append(out, '\n'), nil
}

func renderText(r *StatementReport) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "Statement created %s\n", r.Created)
	if r.StatementID != "" {
		fmt.Fprintf(&b, "Statement %s\n", r.StatementID)
	}
	if r.Account != "" {
		fmt.Fprintf(&b, "Account %s\n", r.Account)
	}

	for _, e := range r.Entries {
		fmt.Fprintf(&b, "\n%s  %s %s %s\n", e.BookingDate, e.Currency, e.Amount, e.Indicator)
		for _, cp := range e.Counterparties {
			fmt.Fprintf(&b, "    %s: %s (%s)\n", cp.Role, cp.Name, cp.Account)
		}
		if e.Remittance != "" {
			fmt.Fprintf(&b, "    remittance: %s\n", e.Remittance)
		}
		if e.AdditionalInfo != "" {
			fmt.Fprintf(&b, "    info: %s\n", e.AdditionalInfo)
		}
	}

	b.WriteString("\n")
	writeBalance(&b, "Opening balance", r.Opening)
	writeBalance(&b, "Closing balance", r.Closing)
	for _, t := range r.Totals {
		fmt.Fprintf(&b, "Totals %s: %d entries, credits %s, debits %s, net %s\n",
			t.Currency, t.Count, t.Credits, t.Debits, t.Net)
	}

	return []byte(b.String())
}

func writeBalance(b *strings.Builder, label string, bal *BalanceReport) {
	if bal == nil {
		fmt.Fprintf(b, "%s: none\n", label)
		return
	}
	fmt.Fprintf(b, "%s (%s, %s): %s %s %s\n", label, bal.Description, bal.Date, bal.Currency, bal.Amount, bal.Indicator)
}
