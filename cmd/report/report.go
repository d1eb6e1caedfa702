// Package report implements the report command, which prints a readable summary of a
// CAMT.053 statement.
package report

import (
	"fmt"
	"io"
	"strings"

	cmdcommon "fjacquet/camt-report/cmd/common"
	"fjacquet/camt-report/cmd/root"
	"fjacquet/camt-report/internal/common"
	"fjacquet/camt-report/internal/container"
	"fjacquet/camt-report/internal/fileutils"
	"fjacquet/camt-report/internal/logging"
	"fjacquet/camt-report/internal/report"

	"github.com/spf13/cobra"
)

var format string

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Print a report of a CAMT.053 statement",
	Long: `Decode a CAMT.053 statement and print its creation date, every entry with its
counterparties and remittance text, and the opening/closing balances.

Example:
  camt-report report statement.xml
  camt-report report -i statement.xml --format yaml -o statement.yaml`,
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
		return Run(c, input, root.SharedFlags.Output, format, cmd.OutOrStdout())
	},
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "", "Report format: "+strings.Join(report.SupportedFormats, ", ")+" (defaults to report.format)")
}

// Run decodes input and writes the report to output, or to out when output is empty
func Run(c *container.Container, input, output, format string, out io.Writer) error {
	if format == "" {
		format = c.GetConfig().Report.Format
	}
	logger := c.GetLogger().WithFields(
		logging.Field{Key: logging.FieldInputFile, Value: input},
		logging.Field{Key: logging.FieldFormat, Value: format})

	stmt, err := cmdcommon.LoadStatement(c.GetParser(), input)
	if err != nil {
		return err
	}

	var account string
	if id := common.StatementAccount(&stmt.Statement, input); id.Source != common.AccountSourceDefault {
		account = id.ID
	}

	data, err := c.GetReportGenerator().GenerateReport(stmt, account, format)
	if err != nil {
		return err
	}

	if output != "" {
		if err := fileutils.WriteFile(output, data); err != nil {
			return fmt.Errorf("error writing report: %w", err)
		}
		logger.Info("Report written", logging.Field{Key: logging.FieldOutputFile, Value: output})
		return nil
	}

	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}
	logger.Debug("Report printed", logging.Field{Key: logging.FieldEntries, Value: len(stmt.Statement.Entries)})
	return nil
}
