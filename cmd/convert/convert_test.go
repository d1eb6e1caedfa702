package convert

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/camt-report/cmd/root"
	"fjacquet/camt-report/internal/config"
	"fjacquet/camt-report/internal/container"
	"fjacquet/camt-report/internal/logging"
	"fjacquet/camt-report/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtures = "../../testdata/camt053"

func setup(t *testing.T, input, output string, validate bool) *logging.MockLogger {
	t.Helper()
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.CSV.Delimiter = ","
	cfg.CSV.DateFormat = "DD.MM.YYYY"
	cfg.Report.Format = "text"

	logger := logging.NewMockLogger()
	c, err := container.NewContainerWithLogger(cfg, logger)
	require.NoError(t, err)

	root.SetContainer(c)
	root.SharedFlags = root.CommonFlags{Input: input, Output: output, Validate: validate}
	t.Cleanup(func() {
		root.SetContainer(nil)
		root.SharedFlags = root.CommonFlags{}
	})
	return logger
}

func TestConvertCommand_Metadata(t *testing.T) {
	assert.Equal(t, "convert", Cmd.Use)
	assert.Contains(t, Cmd.Short, "CSV")
	assert.NotNil(t, Cmd.RunE)
}

func TestConvertFunc(t *testing.T) {
	output := filepath.Join(t.TempDir(), "entries.csv")
	logger := setup(t, filepath.Join(fixtures, "CAMT.053_54293249_2023-05-01_2023-05-31_1.xml"), output, true)

	require.NoError(t, convertFunc(Cmd, nil))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "CH9300762011623852957,STMT-2023-05,02.05.2023,"))
	assert.Contains(t, lines[2], "-40.50")
	assert.True(t, logger.HasEntry("INFO", "Validation successful."))
}

func TestConvertFunc_Failures(t *testing.T) {
	dir := t.TempDir()

	t.Run("invalid format with validation", func(t *testing.T) {
		setup(t, filepath.Join(fixtures, "unknown_message.xml"), filepath.Join(dir, "a.csv"), true)
		err := convertFunc(Cmd, nil)
		var fe *parsererror.InvalidFormatError
		assert.True(t, errors.As(err, &fe))
	})

	t.Run("decode failure", func(t *testing.T) {
		output := filepath.Join(dir, "b.csv")
		setup(t, filepath.Join(fixtures, "missing_booking_date.xml"), output, false)
		err := convertFunc(Cmd, nil)
		assert.True(t, errors.Is(err, parsererror.ErrMissingField))
		_, statErr := os.Stat(output)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("missing flags", func(t *testing.T) {
		setup(t, "", "", false)
		assert.EqualError(t, convertFunc(Cmd, nil), "input and output files must be specified")
	})

	t.Run("no container", func(t *testing.T) {
		root.SetContainer(nil)
		assert.EqualError(t, convertFunc(Cmd, nil), "container not initialized")
	})
}
