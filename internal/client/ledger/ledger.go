// Package ledger holds the client-side transaction cache. The server's
// responses are merged in through explicit transitions; the balance is always
// derived from the current contents, never stored.
package ledger

import "github.com/finchapp/finch/internal/domain/entity"

// List is the in-memory transaction list known to the client
type List struct {
	transactions []entity.Transaction
}

// NewList creates an empty list
func NewList() *List {
	return &List{transactions: make([]entity.Transaction, 0)}
}

// Replace swaps in a freshly fetched set of transactions
func (l *List) Replace(transactions []entity.Transaction) {
	l.transactions = make([]entity.Transaction, len(transactions))
	copy(l.transactions, transactions)
}

// Append adds a newly created transaction at the end
func (l *List) Append(tx entity.Transaction) {
	l.transactions = append(l.transactions, tx)
}

// ReplaceByID swaps the transaction with a matching ID for the given one.
// Returns false when no transaction matches.
func (l *List) ReplaceByID(tx entity.Transaction) bool {
	for i := range l.transactions {
		if l.transactions[i].ID == tx.ID {
			l.transactions[i] = tx
			return true
		}
	}
	return false
}

// RemoveByID drops the transaction with the given ID. Returns false when no
// transaction matches.
func (l *List) RemoveByID(id string) bool {
	for i := range l.transactions {
		if l.transactions[i].ID == id {
			l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
			return true
		}
	}
	return false
}

// Balance is the sum of all amounts currently in the list
func (l *List) Balance() float64 {
	var balance float64
	for i := range l.transactions {
		balance += l.transactions[i].Amount
	}
	return balance
}

// Transactions returns a copy of the current contents in order, so callers
// cannot mutate the list behind its transitions.
func (l *List) Transactions() []entity.Transaction {
	out := make([]entity.Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// Len returns the number of transactions in the list
func (l *List) Len() int {
	return len(l.transactions)
}

// At returns the transaction at index i
func (l *List) At(i int) entity.Transaction {
	return l.transactions[i]
}
