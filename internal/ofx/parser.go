// Package ofx parses exported OFX/QFX/QBO bank statements into statement
// records for the classification pipeline.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"

	"github.com/pennywise-fin/pennywise/internal/common"
	"github.com/pennywise-fin/pennywise/internal/model"
)

// Parser implements OFX/QFX statement parsing.
//
// Well-formed files go through the strict ofxgo parser. Files ofxgo rejects
// (sloppy SGML, unparseable timestamps) get a second pass through a lenient
// tag scanner so a single bad field degrades one record instead of failing
// the whole file. A file neither pass can read is a malformed statement.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// preprocessOFX fixes common formatting issues in exported OFX files.
func (p *Parser) preprocessOFX(content string) string {
	// Trim any leading whitespace or blank lines before the header
	content = strings.TrimLeft(content, " \t\r\n")

	// Fix mixed-case SEVERITY values (should be INFO, WARN, or ERROR)
	severityRegex := regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)

	// Fix missing closing angle brackets in SGML-style OFX files.
	// Pattern: <TAGNAME at end of line with no closing bracket.
	tagFixRegex := regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
	content = tagFixRegex.ReplaceAllString(content, "$1>")

	return content
}

// Parse reads one statement file and returns its account context and raw
// transaction records in statement order. It performs no classification.
func (p *Parser) Parse(ctx context.Context, reader io.Reader) (*model.Statement, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read statement: %w", err)
	}

	processed := p.preprocessOFX(string(content))

	resp, err := ofxgo.ParseResponse(strings.NewReader(processed))
	if err != nil {
		slog.Debug("strict OFX parse failed, scanning leniently", "error", err)
		return p.scanStatement(processed)
	}

	return p.statementFromResponse(resp)
}

// statementFromResponse converts a strict ofxgo parse into a Statement. The
// checking-account marker wins when a file somehow carries both message sets.
func (p *Parser) statementFromResponse(resp *ofxgo.Response) (*model.Statement, error) {
	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			return &model.Statement{
				AccountType:  model.AccountTypeChecking,
				AccountID:    string(stmt.BankAcctFrom.AcctID),
				Transactions: convertTransactions(stmt.BankTranList),
			}, nil
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			return &model.Statement{
				AccountType:  model.AccountTypeCreditCard,
				AccountID:    string(stmt.CCAcctFrom.AcctID),
				Transactions: convertTransactions(stmt.BankTranList),
			}, nil
		}
	}

	return nil, fmt.Errorf("%w: no bank or credit-card statement present", common.ErrMalformedStatement)
}

func convertTransactions(list *ofxgo.TransactionList) []model.RawTransaction {
	if list == nil {
		return nil
	}

	txns := make([]model.RawTransaction, 0, len(list.Transactions))
	for _, ofxTx := range list.Transactions {
		name := string(ofxTx.Name)
		if name == "" && ofxTx.Payee != nil {
			name = string(ofxTx.Payee.Name)
		}
		memo := string(ofxTx.Memo)
		if name == "" {
			name = memo
		}

		// A zero posted date would format to a valid-looking stamp; keep it
		// empty so the normalizer flags the record instead.
		rawDate := ""
		if !ofxTx.DtPosted.Time.IsZero() {
			rawDate = ofxTx.DtPosted.Time.Format("20060102150405")
		}

		txns = append(txns, model.RawTransaction{
			Kind:    strings.ToUpper(fmt.Sprintf("%v", ofxTx.TrnType)),
			Memo:    memo,
			Name:    name,
			RawDate: rawDate,
			Amount:  decimal.NewFromBigRat(&ofxTx.TrnAmt.Rat, 2),
		})
	}

	return txns
}

// Statement markers. Tags in OFX exports are uppercase; the scanner relies on
// that rather than case-folding the document, which would break byte offsets
// in non-ASCII memos.
const (
	checkingMarker   = "<STMTRS>"
	creditCardMarker = "<CCSTMTRS>"
	transactionOpen  = "<STMTTRN>"
	transactionClose = "</STMTTRN>"
)

// scanStatement is the lenient fallback: it locates the account-type marker
// and every transaction element by tag, keeping raw field text as is. Missing
// amounts default to zero, a missing name falls back to the memo, and dates
// stay raw strings for the normalizer to resolve.
func (p *Parser) scanStatement(content string) (*model.Statement, error) {
	var acctType model.AccountType
	switch {
	case strings.Contains(content, creditCardMarker):
		acctType = model.AccountTypeCreditCard
	case strings.Contains(content, checkingMarker):
		acctType = model.AccountTypeChecking
	default:
		return nil, fmt.Errorf("%w: no checking or credit-card account marker", common.ErrMalformedStatement)
	}

	stmt := &model.Statement{
		AccountType: acctType,
		AccountID:   tagValue(content, "ACCTID"),
	}

	rest := content
	for {
		start := strings.Index(rest, transactionOpen)
		if start < 0 {
			break
		}
		rest = rest[start+len(transactionOpen):]

		seg := rest
		if end := strings.Index(rest, transactionClose); end >= 0 {
			seg = rest[:end]
		} else if next := strings.Index(rest, transactionOpen); next >= 0 {
			// Unclosed element; the next opening tag bounds it.
			seg = rest[:next]
		}

		stmt.Transactions = append(stmt.Transactions, scanTransaction(seg))
	}

	return stmt, nil
}

func scanTransaction(seg string) model.RawTransaction {
	amount := decimal.Zero
	if raw := tagValue(seg, "TRNAMT"); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			slog.Debug("unparseable transaction amount, defaulting to zero", "amount", raw)
		} else {
			amount = parsed
		}
	}

	memo := tagValue(seg, "MEMO")
	name := tagValue(seg, "NAME")
	if name == "" {
		name = memo
	}

	return model.RawTransaction{
		Kind:    strings.ToUpper(tagValue(seg, "TRNTYPE")),
		Memo:    memo,
		Name:    name,
		RawDate: tagValue(seg, "DTPOSTED"),
		Amount:  amount,
	}
}

// tagValue extracts the text following <TAG> up to the next element or line
// break, SGML-style. Returns "" when the tag is absent.
func tagValue(doc, tag string) string {
	idx := strings.Index(doc, "<"+tag+">")
	if idx < 0 {
		return ""
	}
	rest := doc[idx+len(tag)+2:]
	if end := strings.IndexAny(rest, "<\r\n"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}
