package ofx

import (
	"context"
	"strings"
	"testing"

	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-fin/pennywise/internal/common"
	"github.com/pennywise-fin/pennywise/internal/model"
)

// Sample OFX data for testing.
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
<TRNTYPE>CREDIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>1000.00
<FITID>2024011501
<NAME>DIRECT DEP PAYROLL
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240120120000[0:GMT]
<TRNAMT>-125.00
<FITID>2024012001
<NAME>Whole Foods Market
<MEMO>POS PURCHASE
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

const sampleCreditCardOFX = `OFXHEADER:100
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
<CREDITCARDMSGSRSV1>
<CCSTMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<CCSTMTRS>
<CURDEF>USD
<CCACCTFROM>
<ACCTID>4111111111111111
</CCACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240110120000[0:GMT]
<TRNAMT>-15.99
<FITID>CC2024011001
<NAME>NETFLIX.COM
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>-500.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</CCSTMTRS>
</CCSTMTTRNRS>
</CREDITCARDMSGSRSV1>
</OFX>`

// A sloppy export the strict parser rejects: no OFX header and an
// unparseable posted date. The lenient scanner handles it.
const sloppyBankOFX = `<OFX>
<BANKMSGSRSV1>
<STMTTRNRS>
<STMTRS>
<BANKACCTFROM>
<ACCTID>555000111
</BANKACCTFROM>
<BANKTRANLIST>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>BADDATE
<TRNAMT>-250.00
<NAME>WITHDRAWAL
<MEMO>CAPITAL ONE ONLINE PYMT
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<MEMO>CHECKCARD 0102 CORNER STORE
</STMTTRN>
</BANKTRANLIST>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

const noMarkerOFX = `<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
</SONRS>
</SIGNONMSGSRSV1>
</OFX>`

func TestParseBankStatement(t *testing.T) {
	parser := NewParser()

	stmt, err := parser.Parse(context.Background(), strings.NewReader(sampleBankOFX))
	require.NoError(t, err)

	assert.Equal(t, model.AccountTypeChecking, stmt.AccountType)
	assert.Equal(t, "1234567890", stmt.AccountID)
	require.Len(t, stmt.Transactions, 2)

	tx1 := stmt.Transactions[0]
	assert.Equal(t, "CREDIT", tx1.Kind)
	assert.Equal(t, "DIRECT DEP PAYROLL", tx1.Name)
	assert.True(t, tx1.Amount.Equal(decimal.RequireFromString("1000.00")), "got %s", tx1.Amount)
	assert.True(t, strings.HasPrefix(tx1.RawDate, "20240115"), "got %s", tx1.RawDate)

	tx2 := stmt.Transactions[1]
	assert.Equal(t, "DEBIT", tx2.Kind)
	assert.Equal(t, "Whole Foods Market", tx2.Name)
	assert.Equal(t, "POS PURCHASE", tx2.Memo)
	assert.True(t, tx2.Amount.Equal(decimal.RequireFromString("-125.00")))
}

func TestParseCreditCardStatement(t *testing.T) {
	parser := NewParser()

	stmt, err := parser.Parse(context.Background(), strings.NewReader(sampleCreditCardOFX))
	require.NoError(t, err)

	assert.Equal(t, model.AccountTypeCreditCard, stmt.AccountType)
	assert.Equal(t, "4111111111111111", stmt.AccountID)
	require.Len(t, stmt.Transactions, 1)

	tx := stmt.Transactions[0]
	assert.Equal(t, "DEBIT", tx.Kind)
	assert.Equal(t, "NETFLIX.COM", tx.Name)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("-15.99")))
}

func TestParseLenientFallback(t *testing.T) {
	parser := NewParser()

	stmt, err := parser.Parse(context.Background(), strings.NewReader(sloppyBankOFX))
	require.NoError(t, err)

	assert.Equal(t, model.AccountTypeChecking, stmt.AccountType)
	assert.Equal(t, "555000111", stmt.AccountID)
	require.Len(t, stmt.Transactions, 2)

	// The bad date is kept raw for the normalizer to degrade gracefully.
	tx1 := stmt.Transactions[0]
	assert.Equal(t, "BADDATE", tx1.RawDate)
	assert.Equal(t, "WITHDRAWAL", tx1.Name)
	assert.Equal(t, "CAPITAL ONE ONLINE PYMT", tx1.Memo)
	assert.True(t, tx1.Amount.Equal(decimal.RequireFromString("-250.00")))

	// Missing amount defaults to zero, missing name falls back to memo,
	// missing date stays empty.
	tx2 := stmt.Transactions[1]
	assert.True(t, tx2.Amount.IsZero())
	assert.Equal(t, "CHECKCARD 0102 CORNER STORE", tx2.Name)
	assert.Equal(t, "", tx2.RawDate)
}

func TestParseMalformedStatements(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "neither account marker present",
			data: noMarkerOFX,
		},
		{
			name: "not markup at all",
			data: "this is not a statement",
		},
		{
			name: "empty input",
			data: "",
		},
	}

	parser := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := parser.Parse(context.Background(), strings.NewReader(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrMalformedStatement)
			assert.Nil(t, stmt, "no partial results on malformed input")
		})
	}
}

func TestParsePreservesStatementOrder(t *testing.T) {
	parser := NewParser()

	stmt, err := parser.Parse(context.Background(), strings.NewReader(sampleBankOFX))
	require.NoError(t, err)

	require.Len(t, stmt.Transactions, 2)
	assert.Equal(t, "DIRECT DEP PAYROLL", stmt.Transactions[0].Name)
	assert.Equal(t, "Whole Foods Market", stmt.Transactions[1].Name)
}

func TestConvertTransactionsMissingPostedDate(t *testing.T) {
	var tx ofxgo.Transaction
	tx.Name = "MYSTERY VENDOR"
	tx.TrnAmt.SetString("-5.00")

	txns := convertTransactions(&ofxgo.TransactionList{Transactions: []ofxgo.Transaction{tx}})

	require.Len(t, txns, 1)
	// An absent posted date must stay empty, not format into a year-one
	// stamp, so the date normalizer counts the record as degraded.
	assert.Empty(t, txns[0].RawDate)
	assert.Equal(t, "MYSTERY VENDOR", txns[0].Name)
}

func TestTagValue(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		tag      string
		expected string
	}{
		{
			name:     "sgml value bounded by newline",
			doc:      "<NAME>STARBUCKS\n<MEMO>X",
			tag:      "NAME",
			expected: "STARBUCKS",
		},
		{
			name:     "xml value bounded by closing tag",
			doc:      "<NAME>STARBUCKS</NAME>",
			tag:      "NAME",
			expected: "STARBUCKS",
		},
		{
			name:     "absent tag",
			doc:      "<MEMO>X",
			tag:      "NAME",
			expected: "",
		},
		{
			name:     "whitespace trimmed",
			doc:      "<TRNAMT>  -12.50  \n",
			tag:      "TRNAMT",
			expected: "-12.50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tagValue(tt.doc, tt.tag))
		})
	}
}
