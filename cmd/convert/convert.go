// Package convert handles the conversion of a CAMT.053 statement to CSV
package convert

import (
	"fjacquet/camt-report/cmd/common"
	"fjacquet/camt-report/cmd/root"
	"fjacquet/camt-report/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a CAMT.053 statement to CSV",
	Long: `Decode a CAMT.053 statement and write one CSV row per entry.

Example:
  camt-report convert -i statement.xml -o entries.csv --validate`,
	Args: cobra.NoArgs,
	RunE: convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) error {
	c, err := root.RequireContainer()
	if err != nil {
		return err
	}

	logger := c.GetLogger()
	logger.Info("CAMT.053 convert command called",
		logging.Field{Key: logging.FieldInputFile, Value: root.SharedFlags.Input},
		logging.Field{Key: logging.FieldOutputFile, Value: root.SharedFlags.Output})

	return common.ProcessFile(c.GetParser(), root.SharedFlags.Input, root.SharedFlags.Output, root.SharedFlags.Validate, logger)
}
