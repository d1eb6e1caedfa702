package validate_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/camt-report/cmd/validate"
	"fjacquet/camt-report/internal/config"
	"fjacquet/camt-report/internal/container"
	"fjacquet/camt-report/internal/logging"
	"fjacquet/camt-report/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtures = "../../testdata/camt053"

func newContainer(t *testing.T) (*container.Container, *logging.MockLogger) {
	t.Helper()
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.CSV.Delimiter = ","
	cfg.Report.Format = "text"

	logger := logging.NewMockLogger()
	c, err := container.NewContainerWithLogger(cfg, logger)
	require.NoError(t, err)
	return c, logger
}

func TestRun_ValidStatement(t *testing.T) {
	c, logger := newContainer(t)
	var out bytes.Buffer

	err := validate.Run(c, filepath.Join(fixtures, "CAMT.053_54293249_2023-05-01_2023-05-31_1.xml"), &out)
	require.NoError(t, err)

	assert.Equal(t, "Entries: 2 (1 credit, 1 debit)\n"+
		"Currencies: CHF\n"+
		"Balances: CLBD, OPBD\n"+
		"Booking dates: 2023-05-02 to 2023-05-03\n"+
		"Decoded: 2 entries, 2 balances\n", out.String())
	assert.True(t, logger.HasEntry("INFO", "File is a valid CAMT.053 statement"))
}

func TestRun_UnrecognizedBalanceCode(t *testing.T) {
	c, logger := newContainer(t)
	data, err := os.ReadFile(filepath.Join(fixtures, "CAMT.053_54293249_2023-05-01_2023-05-31_1.xml"))
	require.NoError(t, err)
	input := filepath.Join(t.TempDir(), "custom_balance.xml")
	custom := strings.Replace(string(data), "<Cd>CLBD</Cd>", "<Cd>ZZZZ</Cd>", 1)
	require.NoError(t, os.WriteFile(input, []byte(custom), 0600))

	var out bytes.Buffer
	require.NoError(t, validate.Run(c, input, &out))

	assert.Contains(t, out.String(), "Balances: OPBD, ZZZZ\n")
	assert.True(t, logger.HasEntry("WARN", "Unrecognized balance type code"))
}

func TestRun_Failures(t *testing.T) {
	c, _ := newContainer(t)
	dir := t.TempDir()
	malformed := filepath.Join(dir, "malformed.xml")
	require.NoError(t, os.WriteFile(malformed, []byte("<Document><unclosed>"), 0600))

	tests := []struct {
		name  string
		input string
		check func(t *testing.T, err error)
	}{
		{
			name:  "sniff finds no statement",
			input: filepath.Join(fixtures, "unknown_message.xml"),
			check: func(t *testing.T, err error) {
				var fe *parsererror.InvalidFormatError
				require.True(t, errors.As(err, &fe))
				assert.Contains(t, fe.Msg, "/Document/BkToCstmrStmt")
			},
		},
		{
			name:  "sniff passes but decode fails",
			input: filepath.Join(fixtures, "missing_booking_date.xml"),
			check: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, parsererror.ErrMissingField))
			},
		},
		{
			name:  "malformed xml",
			input: malformed,
			check: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, parsererror.ErrMalformedXML))
			},
		},
		{
			name:  "missing file",
			input: filepath.Join(dir, "absent.xml"),
			check: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, os.ErrNotExist))
			},
		},
		{
			name:  "no input",
			input: "",
			check: func(t *testing.T, err error) {
				assert.EqualError(t, err, "an input file is required")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Run(c, tt.input, &bytes.Buffer{})
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}
