package sie

import "fmt"

// FormatError is the only fatal parse error: no supported encoding could
// decode the file content. Everything else is absorbed into the diagnostics
// log and the parse continues.
type FormatError struct {
	Attempts []string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("no supported text encoding could decode the file content (tried %v)", e.Attempts)
}

// TransactionFormatError marks a single transaction row that could not be
// used. The row is skipped; the parse is not aborted.
type TransactionFormatError struct {
	Line   int
	Reason string
}

func (e *TransactionFormatError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// AccountDeclarationError marks a malformed #KONTO record. The record is
// skipped; the parse is not aborted.
type AccountDeclarationError struct {
	Line   int
	Reason string
}

func (e *AccountDeclarationError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}
