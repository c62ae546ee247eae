package domain

// Metadata carries everything a parse produced besides the transaction rows.
// It is built once per parse and not mutated afterwards.
type Metadata struct {
	CompanyName string `json:"company_name"`
	FiscalYear  string `json:"fiscal_year"`

	// Accounts maps account number to account name (#KONTO declarations,
	// last write wins). Numbers are opaque strings.
	Accounts map[string]string `json:"accounts"`

	// FileContent counts the record tags seen in the file, including tags
	// the parser does not act on.
	FileContent map[string]int `json:"file_content"`

	// ParsingDetails is the ordered human-readable diagnostics log. Callers
	// should surface it when a parse yields zero transactions.
	ParsingDetails []string `json:"parsing_details"`
}
