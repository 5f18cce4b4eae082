package reader

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"github.com/ledgersmith/every-penny-counts/internal/model"
)

// Column names used for rows synthesized from OFX statements. They pass
// through the same schema mapping as any CSV, so the pipeline stays the
// single place where semantics live.
var ofxColumns = []string{"Date", "Description", "Amount"}

var (
	severityCaseRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)`)
	unclosedTagRegex  = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// normalizeOFX repairs formatting quirks banks ship in SGML-style OFX:
// leading blank lines, mixed-case SEVERITY values, and opening tags missing
// their closing bracket.
func normalizeOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityCaseRegex.ReplaceAllStringFunc(content, strings.ToUpper)
	content = unclosedTagRegex.ReplaceAllString(content, "$1>")
	return content
}

// ReadOFX decodes an OFX/QFX statement into a Document. Bank and credit
// card statements both contribute rows; amounts keep the sign OFX assigns
// (negative for debits).
func ReadOFX(r io.Reader, filename string) (model.Document, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return model.Document{}, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(normalizeOFX(string(content))))
	if err != nil {
		return model.Document{}, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	doc := model.Document{
		Filename: filename,
		Columns:  ofxColumns,
	}

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankTranList != nil {
			for _, tx := range stmt.BankTranList.Transactions {
				doc.Rows = append(doc.Rows, ofxRow(tx))
			}
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.BankTranList != nil {
			for _, tx := range stmt.BankTranList.Transactions {
				doc.Rows = append(doc.Rows, ofxRow(tx))
			}
		}
	}

	return doc, nil
}

func ofxRow(tx ofxgo.Transaction) model.Row {
	return model.Row{
		"Date":        tx.DtPosted.Time.Format("2006-01-02"),
		"Description": ofxDescription(tx),
		"Amount":      tx.TrnAmt.FloatString(2),
	}
}

// ofxDescription prefers the payee record when the bank provides one; the
// NAME field is often truncated or padded with processor noise.
func ofxDescription(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return string(tx.Payee.Name)
	}
	return string(tx.Name)
}
