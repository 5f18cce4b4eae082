package reader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-25.50
<FITID>2024011501
<NAME>STARBUCKS STORE #1234
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240116120000[0:GMT]
<TRNAMT>2400.00
<FITID>2024011602
<NAME>ACME PAYROLL
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>5000.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

func TestReadOFX(t *testing.T) {
	doc, err := ReadOFX(strings.NewReader(sampleBankOFX), "checking.qfx")
	require.NoError(t, err)

	assert.Equal(t, "checking.qfx", doc.Filename)
	assert.Equal(t, []string{"Date", "Description", "Amount"}, doc.Columns)
	require.Len(t, doc.Rows, 2)

	assert.Equal(t, "2024-01-15", doc.Rows[0]["Date"])
	assert.Equal(t, "STARBUCKS STORE #1234", doc.Rows[0]["Description"])
	assert.Equal(t, "-25.50", doc.Rows[0]["Amount"])

	assert.Equal(t, "2400.00", doc.Rows[1]["Amount"])
}

func TestReadOFX_MixedCaseSeverity(t *testing.T) {
	fixed := strings.ReplaceAll(sampleBankOFX, "<SEVERITY>INFO", "<SEVERITY>Info")
	doc, err := ReadOFX(strings.NewReader(fixed), "checking.qfx")
	require.NoError(t, err)
	assert.Len(t, doc.Rows, 2)
}

func TestReadOFX_LeadingWhitespace(t *testing.T) {
	doc, err := ReadOFX(strings.NewReader("\n\n"+sampleBankOFX), "checking.qfx")
	require.NoError(t, err)
	assert.Len(t, doc.Rows, 2)
}

func TestReadOFX_Garbage(t *testing.T) {
	_, err := ReadOFX(strings.NewReader("definitely not ofx"), "x.ofx")
	require.Error(t, err)
}
