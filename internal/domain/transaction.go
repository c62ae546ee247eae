package domain

// Transaction is one booked movement on an account, taken from a row inside
// a #VER block. Rows are immutable once the parser has emitted them.
type Transaction struct {
	// Date is kept in the source format (YYYYMMDD). SIE producers are not
	// consistent enough to parse it into a calendar type without inventing
	// new failure modes.
	Date        string  `json:"date"`
	Account     string  `json:"account"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	VerSeries   string  `json:"ver_series"`
	VerNumber   string  `json:"ver_number"`
}
