// Package validate implements the validate command: a quick XPath sniff of a CAMT.053
// file followed by a full decode.
package validate

import (
	"fmt"
	"io"
	"os"
	"strings"

	cmdcommon "fjacquet/camt-report/cmd/common"
	"fjacquet/camt-report/cmd/root"
	"fjacquet/camt-report/internal/container"
	"fjacquet/camt-report/internal/fileutils"
	"fjacquet/camt-report/internal/logging"
	"fjacquet/camt-report/internal/models"
	"fjacquet/camt-report/internal/parsererror"
	"fjacquet/camt-report/internal/xmlutils"

	"github.com/spf13/cobra"
)

// Cmd represents the validate command
var Cmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check that a file is a decodable CAMT.053 statement",
	Long: `Sniff the file with XPath for the statement skeleton and summarize what it contains,
then decode it fully. The command fails on the first problem found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.RequireContainer()
		if err != nil {
			return err
		}
		input := root.SharedFlags.Input
		if len(args) == 1 {
			input = args[0]
		}
		return Run(c, input, cmd.OutOrStdout())
	},
}

// Run validates input and writes a summary to out
func Run(c *container.Container, input string, out io.Writer) error {
	if input == "" {
		return fmt.Errorf("an input file is required")
	}
	logger := c.GetLogger().WithField(logging.FieldFile, input)

	if !fileutils.FileExists(input) {
		return fmt.Errorf("%s: %w", input, os.ErrNotExist)
	}

	node, err := xmlutils.LoadXMLFile(input)
	if err != nil {
		return &parsererror.MalformedXMLError{Err: err}
	}

	summary, err := xmlutils.Summarize(node, xmlutils.DefaultCamt053XPaths())
	if err != nil {
		return err
	}
	if len(summary.Missing) > 0 {
		logger.Warn("Required statement elements not found",
			logging.Field{Key: logging.FieldMissing, Value: summary.Missing})
		return &parsererror.InvalidFormatError{
			FilePath:       input,
			ExpectedFormat: "CAMT.053 XML",
			Msg:            "missing " + strings.Join(summary.Missing, ", "),
		}
	}

	writeSummary(out, summary)

	stmt, err := cmdcommon.LoadStatement(c.GetParser(), input)
	if err != nil {
		return err
	}

	for _, b := range stmt.Statement.Balances {
		if b.Type.Kind == models.BalanceTypeCode && !b.Type.Code.IsKnown() {
			logger.Warn("Unrecognized balance type code",
				logging.Field{Key: logging.FieldBalance, Value: string(b.Type.Code)})
		}
	}

	fmt.Fprintf(out, "Decoded: %d entries, %d balances\n",
		len(stmt.Statement.Entries), len(stmt.Statement.Balances))
	logger.Info("File is a valid CAMT.053 statement",
		logging.Field{Key: logging.FieldEntries, Value: len(stmt.Statement.Entries)},
		logging.Field{Key: logging.FieldBalances, Value: len(stmt.Statement.Balances)})
	return nil
}

func writeSummary(out io.Writer, s xmlutils.Summary) {
	fmt.Fprintf(out, "Entries: %d (%d credit, %d debit)\n", s.Entries, s.Credits, s.Debits)
	if len(s.Currencies) > 0 {
		fmt.Fprintf(out, "Currencies: %s\n", strings.Join(s.Currencies, ", "))
	}
	if len(s.BalanceCodes) > 0 {
		fmt.Fprintf(out, "Balances: %s\n", strings.Join(s.BalanceCodes, ", "))
	}
	if s.FirstBooking != "" {
		fmt.Fprintf(out, "Booking dates: %s to %s\n", s.FirstBooking, s.LastBooking)
	}
}
