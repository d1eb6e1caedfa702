// Package batch handles batch processing of files
package batch

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"fjacquet/camt-report/cmd/root"
	"fjacquet/camt-report/internal/container"
	"fjacquet/camt-report/internal/fileutils"
	"fjacquet/camt-report/internal/logging"

	"github.com/spf13/cobra"
)

var (
	inputDir  string
	outputDir string
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process files from a directory",
	Long: `Batch process files from an input directory and output them to another directory.

Every *.xml file in the input directory is converted to a CSV file of the same name in the
output directory. Files are decoded independently; one failing file does not stop the
others, but the command exits non-zero when any file failed.

Example:
  camt-report batch --input-dir statements/ --output-dir csv/`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.RequireContainer()
		if err != nil {
			return err
		}
		in, out := inputDir, outputDir
		if in == "" {
			in = root.SharedFlags.Input
		}
		if out == "" {
			out = root.SharedFlags.Output
		}
		return Run(cmd.Context(), c, in, out, cmd.OutOrStdout())
	},
}

func init() {
	Cmd.Flags().StringVar(&inputDir, "input-dir", "", "Directory containing CAMT.053 XML files (defaults to --input)")
	Cmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory receiving the CSV files (defaults to --output)")
}

// Run converts every XML file of inDir into outDir and prints one status line per file
func Run(ctx context.Context, c *container.Container, inDir, outDir string, out io.Writer) error {
	if inDir == "" || outDir == "" {
		return fmt.Errorf("input and output directories must be specified")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	logger := c.GetLogger()

	files, err := fileutils.ListFilesWithExtension(inDir, ".xml")
	if err != nil {
		return err
	}
	if len(files) == 0 {
		logger.Warn("No supported files found in input directory",
			logging.Field{Key: logging.FieldFile, Value: inDir})
		return nil
	}
	if err := fileutils.EnsureDirectoryExists(outDir); err != nil {
		return err
	}

	logger.Info("Found files for processing", logging.Field{Key: logging.FieldCount, Value: len(files)})

	p := c.GetParser()
	results := c.GetProcessor().ProcessFiles(ctx, files, func(_ context.Context, path string) error {
		return p.ConvertToCSV(path, filepath.Join(outDir, fileutils.ReplaceExtension(path, ".csv")))
	})

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			logger.WithError(r.Err).Error("Failed to convert file",
				logging.Field{Key: logging.FieldFile, Value: r.Path})
			fmt.Fprintf(out, "FAIL %s: %v\n", filepath.Base(r.Path), r.Err)
			continue
		}
		fmt.Fprintf(out, "OK   %s\n", filepath.Base(r.Path))
	}

	logger.Info("Batch processing completed",
		logging.Field{Key: logging.FieldCount, Value: len(results) - failed},
		logging.Field{Key: logging.FieldStatus, Value: fmt.Sprintf("%d failed", failed)})

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}
