package tui

import "github.com/finchapp/finch/internal/domain/entity"

// Data loading messages.
type transactionsLoadedMsg struct {
	err          error
	transactions []entity.Transaction
}

// transactionSavedMsg is sent when a create or update round-trip completes.
type transactionSavedMsg struct {
	err         error
	transaction *entity.Transaction
	created     bool
}

// transactionDeletedMsg is sent when the server acknowledges a delete.
type transactionDeletedMsg struct {
	err error
	id  string
}
