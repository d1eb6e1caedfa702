package report_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/camt-report/cmd/report"
	"fjacquet/camt-report/internal/config"
	"fjacquet/camt-report/internal/container"
	"fjacquet/camt-report/internal/logging"
	"fjacquet/camt-report/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const (
	validStatement  = "../../testdata/camt053/CAMT.053_54293249_2023-05-01_2023-05-31_1.xml"
	missingBookgDt  = "../../testdata/camt053/missing_booking_date.xml"
	unknownMessage  = "../../testdata/camt053/unknown_message.xml"
	expectedAccount = "CH9300762011623852957"
)

func newContainer(t *testing.T) (*container.Container, *logging.MockLogger) {
	t.Helper()
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.CSV.Delimiter = ","
	cfg.Report.Format = "text"
	cfg.Report.DateFormat = "YYYY-MM-DD"

	logger := logging.NewMockLogger()
	c, err := container.NewContainerWithLogger(cfg, logger)
	require.NoError(t, err)
	return c, logger
}

func TestReportCommand_Metadata(t *testing.T) {
	assert.Equal(t, "report [file]", report.Cmd.Use)
	flag := report.Cmd.Flags().Lookup("format")
	require.NotNil(t, flag)
	assert.Equal(t, "f", flag.Shorthand)
}

func TestRun_TextReport(t *testing.T) {
	c, _ := newContainer(t)
	var out bytes.Buffer

	require.NoError(t, report.Run(c, validStatement, "", "", &out))

	text := out.String()
	assert.Contains(t, text, "Statement created 2023-05-31T18:00:00+02:00\n")
	assert.Contains(t, text, "Account "+expectedAccount+"\n")
	assert.Contains(t, text, "2023-05-02  CHF 250.00 CRDT\n")
	assert.Contains(t, text, "    creditor: ACME Corp (no account on file)\n")
	assert.Contains(t, text, "    remittance: Invoice 100\n")
	assert.Contains(t, text, "    debtor: Alice Example (DE89370400440532013000)\n")
	assert.Contains(t, text, "    info: Card payment\n")
	assert.Contains(t, text, "Opening balance (opening booked, 2023-05-01): CHF 1000.00 CRDT\n")
	assert.Contains(t, text, "Closing balance (closing booked, 2023-05-31): CHF 1209.50 CRDT\n")
}

func TestRun_YAMLToFile(t *testing.T) {
	c, logger := newContainer(t)
	output := filepath.Join(t.TempDir(), "out", "report.yaml")
	var out bytes.Buffer

	require.NoError(t, report.Run(c, validStatement, output, "yaml", &out))
	assert.Empty(t, out.String(), "nothing on stdout when writing to a file")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, "STMT-2023-05", doc["statement_id"])
	assert.Len(t, doc["entries"], 2)
	assert.True(t, logger.HasEntry("INFO", "Report written"))
}

func TestRun_Failures(t *testing.T) {
	c, _ := newContainer(t)

	tests := []struct {
		name     string
		input    string
		format   string
		sentinel error
		message  string
	}{
		{name: "missing booking date", input: missingBookgDt, sentinel: parsererror.ErrMissingField},
		{name: "unknown message", input: unknownMessage, sentinel: parsererror.ErrUnknownVariant},
		{name: "missing file", input: "does-not-exist.xml", sentinel: os.ErrNotExist},
		{name: "no input", input: "", message: "an input file is required"},
		{name: "bad format", input: validStatement, format: "pdf", message: "unsupported report format: pdf (supported: text, yaml, json)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := report.Run(c, tt.input, "", tt.format, &out)
			require.Error(t, err)
			if tt.sentinel != nil {
				assert.True(t, errors.Is(err, tt.sentinel), "got %v", err)
			}
			if tt.message != "" {
				assert.EqualError(t, err, tt.message)
			}
			assert.Empty(t, out.String(), "no partial report on failure")
		})
	}
}

func TestRun_MissingFieldNamesElement(t *testing.T) {
	c, _ := newContainer(t)

	err := report.Run(c, missingBookgDt, "", "", &bytes.Buffer{})
	var mf *parsererror.MissingFieldError
	require.True(t, errors.As(err, &mf))
	assert.Equal(t, "BookgDt", mf.Field)
}
