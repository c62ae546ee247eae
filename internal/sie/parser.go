// Package sie parses the SIE bookkeeping interchange text format: a
// line-oriented, quote-and-brace-delimited format where #VER records open a
// verification scope whose transaction rows are written as {...} lines.
//
// The parser is tolerant by design. Only an undecodable byte buffer is
// fatal; every malformed record or row is skipped with a diagnostic and the
// parse continues.
package sie

import (
	"strconv"
	"strings"

	"github.com/blyfoten/SankeySaldo/internal/domain"
)

// verification is the transient scope context opened by a #VER record. It
// exists only until the matching } line and supplies default description
// text to rows that carry none.
type verification struct {
	Series string
	Number string
	Date   string
	Text   string
}

// parser holds the state of a single Parse call. A fresh parser is built per
// call, so no accounts or transactions ever leak between files.
type parser struct {
	companyName string
	fiscalYear  string
	accounts    map[string]string
	txns        []domain.Transaction
	ver         *verification
	diag        *diagnostics
}

// Parse decodes and parses one SIE file. It returns the transaction rows in
// file order plus the file metadata. The only error it returns is a
// *FormatError when no supported encoding can decode the content; all local
// problems are recovered and reported through Metadata.ParsingDetails.
func Parse(content []byte) ([]domain.Transaction, *domain.Metadata, error) {
	text, enc, err := decode(content)
	if err != nil {
		return nil, nil, err
	}

	p := &parser{
		accounts: make(map[string]string),
		txns:     []domain.Transaction{},
		diag:     newDiagnostics(),
	}
	p.diag.logf("decoded %d bytes as %s", len(content), enc)

	for i, raw := range strings.Split(text, "\n") {
		p.handleLine(i+1, strings.TrimSpace(raw))
	}
	if p.ver != nil {
		p.diag.logf("verification %s %s was never closed", p.ver.Series, p.ver.Number)
	}
	if len(p.txns) == 0 {
		p.diag.logf("no transactions found; check that the file contains #VER blocks with {...} rows")
	} else {
		p.diag.logf("found %d transactions and %d accounts", len(p.txns), len(p.accounts))
	}

	meta := &domain.Metadata{
		CompanyName:    p.companyName,
		FiscalYear:     p.fiscalYear,
		Accounts:       p.accounts,
		FileContent:    p.diag.counts,
		ParsingDetails: p.diag.details(),
	}
	return p.txns, meta, nil
}

func (p *parser) handleLine(lineNo int, line string) {
	switch {
	case line == "":
		return
	case strings.HasPrefix(line, "{"):
		p.handleTransactionLine(lineNo, line)
	case strings.HasPrefix(line, "}"):
		if p.ver == nil {
			p.diag.logf("line %d: stray verification terminator, ignored", lineNo)
			return
		}
		p.ver = nil
	case strings.HasPrefix(line, "#"):
		p.handleRecord(lineNo, line)
	default:
		// Free text outside any record; real exports contain these and
		// the historical parser ignored them too.
	}
}

func (p *parser) handleRecord(lineNo int, line string) {
	tokens := tokenize(line)
	tag := tokens[0]
	p.diag.count(tag)

	switch tag {
	case "#FNAMN":
		p.companyName = joinFrom(tokens, 1)
	case "#RAR":
		// Producers disagree about where the year sits; the first token
		// after the identifier is the documented position here. Short
		// records yield "" rather than an error.
		p.fiscalYear = tokenAt(tokens, 1)
	case "#KONTO":
		if len(tokens) < 3 {
			err := &AccountDeclarationError{Line: lineNo, Reason: "account declaration needs a number and a name, skipped"}
			p.diag.logf("%s", err)
			return
		}
		p.accounts[tokens[1]] = joinFrom(tokens, 2)
	case "#VER":
		if p.ver != nil {
			p.diag.logf("line %d: new verification opened before the previous one closed", lineNo)
		}
		p.ver = &verification{
			Series: tokenAt(tokens, 1),
			Number: tokenAt(tokens, 2),
			Date:   tokenAt(tokens, 3),
			Text:   joinFrom(tokens, 4),
		}
	default:
		// Counted above, otherwise ignored.
	}
}

func (p *parser) handleTransactionLine(lineNo int, line string) {
	if p.ver == nil {
		p.diag.logf("line %d: transaction row outside any open verification, skipped", lineNo)
		return
	}
	txn, warning, err := parseTransactionRow(lineNo, line, p.ver)
	if err != nil {
		p.diag.logf("%s", err)
		return
	}
	if warning != "" {
		p.diag.logf("%s", warning)
	}
	p.txns = append(p.txns, txn)
}

// parseTransactionRow parses the interior of one {...} row against the open
// verification scope. A row with fewer than two tokens fails with a
// *TransactionFormatError; an unparsable amount only degrades to 0.0 with a
// warning and the row is kept.
func parseTransactionRow(lineNo int, line string, ver *verification) (domain.Transaction, string, error) {
	inner := strings.TrimSuffix(strings.TrimPrefix(line, "{"), "}")
	tokens := tokenize(inner)
	if len(tokens) < 2 {
		return domain.Transaction{}, "", &TransactionFormatError{
			Line:   lineNo,
			Reason: "transaction row needs at least a date and an account, skipped",
		}
	}

	amount := 0.0
	warning := ""
	if len(tokens) >= 3 {
		v, err := parseAmount(tokens[2])
		if err != nil {
			warning = (&TransactionFormatError{
				Line:   lineNo,
				Reason: "unparsable amount " + strconv.Quote(tokens[2]) + ", defaulting to 0.0",
			}).Error()
		} else {
			amount = v
		}
	}

	description := ver.Text
	if len(tokens) > 3 {
		description = joinFrom(tokens, 3)
	}

	return domain.Transaction{
		Date:        tokens[0],
		Account:     tokens[1],
		Amount:      amount,
		Description: description,
		VerSeries:   ver.Series,
		VerNumber:   ver.Number,
	}, warning, nil
}

// parseAmount converts a SIE amount, accepting both "." and "," as the
// decimal separator.
func parseAmount(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}
