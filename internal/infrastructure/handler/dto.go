package handler

// CreateTransactionRequest represents the request body for creating a transaction
type CreateTransactionRequest struct {
	Date     string  `json:"date"`
	Payee    string  `json:"payee"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// UpdateTransactionRequest represents the request body for updating a
// transaction. Pointer fields distinguish an absent key from a zero value;
// absent fields keep their stored values.
type UpdateTransactionRequest struct {
	Date     *string  `json:"date"`
	Payee    *string  `json:"payee"`
	Category *string  `json:"category"`
	Amount   *float64 `json:"amount"`
}

// ErrorResponse is the JSON body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}
