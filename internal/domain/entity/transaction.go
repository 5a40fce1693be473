package entity

// Transaction represents a single ledger entry. A negative amount denotes an
// expense, a non-negative amount a credit. The date is a plain calendar date
// string with no timezone semantics.
type Transaction struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Payee    string  `json:"payee"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}
