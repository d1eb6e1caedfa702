package xmlutils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sniffDoc = `<?xml version="1.0" encoding="UTF-8"?>
<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.053.001.02">
	<BkToCstmrStmt>
		<GrpHdr><CreDtTm>2023-05-31T18:00:00+02:00</CreDtTm></GrpHdr>
		<Stmt>
			<Bal><Tp><CdOrPrtry><Cd>OPBD</Cd></CdOrPrtry></Tp></Bal>
			<Bal><Tp><CdOrPrtry><Cd>CLBD</Cd></CdOrPrtry></Tp></Bal>
			<Bal><Tp><CdOrPrtry><Cd>OPBD</Cd></CdOrPrtry></Tp></Bal>
			<Ntry><Amt Ccy="EUR">1.00</Amt><CdtDbtInd>CRDT</CdtDbtInd><BookgDt><Dt>2023-05-10</Dt></BookgDt></Ntry>
			<Ntry><Amt Ccy="CHF">2.00</Amt><CdtDbtInd>DBIT</CdtDbtInd><BookgDt><Dt>2023-05-02</Dt></BookgDt></Ntry>
			<Ntry><Amt Ccy="EUR">3.00</Amt><CdtDbtInd> DBIT </CdtDbtInd><BookgDt><Dt>2023-05-20</Dt></BookgDt></Ntry>
		</Stmt>
	</BkToCstmrStmt>
</Document>`

func TestSummarize(t *testing.T) {
	root, err := LoadXML(strings.NewReader(sniffDoc))
	require.NoError(t, err)

	summary, err := Summarize(root, DefaultCamt053XPaths())
	require.NoError(t, err)

	assert.Empty(t, summary.Missing)
	assert.Equal(t, 3, summary.Entries)
	assert.Equal(t, 1, summary.Credits)
	assert.Equal(t, 2, summary.Debits)
	assert.Equal(t, []string{"CHF", "EUR"}, summary.Currencies)
	assert.Equal(t, []string{"CLBD", "OPBD"}, summary.BalanceCodes)
	assert.Equal(t, "2023-05-02", summary.FirstBooking)
	assert.Equal(t, "2023-05-20", summary.LastBooking)
}

func TestSummarize_EmptyStatement(t *testing.T) {
	root, err := LoadXML(strings.NewReader(`<Document><BkToCstmrStmt/></Document>`))
	require.NoError(t, err)

	summary, err := Summarize(root, DefaultCamt053XPaths())
	require.NoError(t, err)

	assert.Equal(t, []string{XPathCreationDateTime, XPathStatement}, summary.Missing)
	assert.Zero(t, summary.Entries)
	assert.Empty(t, summary.Currencies)
	assert.Empty(t, summary.FirstBooking)
}

func TestSummarize_BadExpression(t *testing.T) {
	root, err := LoadXML(strings.NewReader(sniffDoc))
	require.NoError(t, err)

	camt := DefaultCamt053XPaths()
	camt.Entry.Amount = "[broken"

	_, err = Summarize(root, camt)
	assert.Error(t, err)
}
