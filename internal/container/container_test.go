package container

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/camt-report/internal/config"
	"fjacquet/camt-report/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.CSV.Delimiter = ";"
	cfg.CSV.DateFormat = "DD.MM.YYYY"
	cfg.Report.Format = "text"
	cfg.Report.DateFormat = "YYYY-MM-DD"
	return cfg
}

func TestNewContainer(t *testing.T) {
	tests := []struct {
		name        string
		config      *config.Config
		expectError bool
		errorMsg    string
	}{
		{
			name:        "nil config",
			config:      nil,
			expectError: true,
			errorMsg:    "configuration cannot be nil",
		},
		{
			name:   "valid config",
			config: testConfig(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewContainer(tt.config)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, c.GetLogger())
			assert.Same(t, tt.config, c.GetConfig())
			assert.NotNil(t, c.GetParser())
			assert.NotNil(t, c.GetReportGenerator())
			assert.NotNil(t, c.GetProcessor())
		})
	}
}

func TestNewContainerWithLogger_NilLogger(t *testing.T) {
	_, err := NewContainerWithLogger(testConfig(), nil)
	assert.EqualError(t, err, "logger cannot be nil")
}

func TestContainer_ParserUsesConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Parsers.CAMT.StrictNamespace = true
	c, err := NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)

	unqualified := `<Document><BkToCstmrStmt><GrpHdr><CreDtTm>2023-05-31T18:00:00Z</CreDtTm></GrpHdr><Stmt/></BkToCstmrStmt></Document>`
	_, err = c.GetParser().Parse(strings.NewReader(unqualified))
	assert.Error(t, err, "strict namespace from config rejects an unqualified document")
}

func TestContainer_CSVFormatFromConfig(t *testing.T) {
	c, err := NewContainerWithLogger(testConfig(), logging.NewMockLogger())
	require.NoError(t, err)

	dir := t.TempDir()
	input := filepath.Join(dir, "statement.xml")
	doc := `<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.053.001.02"><BkToCstmrStmt>` +
		`<GrpHdr><CreDtTm>2023-05-31T18:00:00Z</CreDtTm></GrpHdr><Stmt><Id>S1</Id>` +
		`<Ntry><Amt Ccy="CHF">10.00</Amt><CdtDbtInd>CRDT</CdtDbtInd><BookgDt><Dt>2023-05-02</Dt></BookgDt>` +
		`<ValDt><Dt>2023-05-02</Dt></ValDt><NtryDtls><TxDtls/></NtryDtls></Ntry>` +
		`</Stmt></BkToCstmrStmt></Document>`
	require.NoError(t, os.WriteFile(input, []byte(doc), 0600))

	output := filepath.Join(dir, "statement.csv")
	require.NoError(t, c.GetParser().ConvertToCSV(input, output))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), ";S1;02.05.2023;")
}
