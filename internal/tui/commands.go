package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/finchapp/finch/internal/client/api"
	"github.com/finchapp/finch/internal/client/form"
)

// loadTransactions fetches the full transaction list from the server.
func (m Model) loadTransactions() tea.Cmd {
	return func() tea.Msg {
		transactions, err := m.client.List(context.Background())
		return transactionsLoadedMsg{
			transactions: transactions,
			err:          err,
		}
	}
}

// createTransaction sends a validated submission as a new transaction.
func (m Model) createTransaction(sub form.Submission) tea.Cmd {
	return func() tea.Msg {
		tx, err := m.client.Create(context.Background(), api.TransactionInput{
			Date:     sub.Date,
			Payee:    sub.Payee,
			Category: sub.Category,
			Amount:   sub.Amount,
		})
		return transactionSavedMsg{
			transaction: tx,
			created:     true,
			err:         err,
		}
	}
}

// updateTransaction sends a validated submission as a full-field update.
func (m Model) updateTransaction(id string, sub form.Submission) tea.Cmd {
	return func() tea.Msg {
		tx, err := m.client.Update(context.Background(), id, api.TransactionInput{
			Date:     sub.Date,
			Payee:    sub.Payee,
			Category: sub.Category,
			Amount:   sub.Amount,
		})
		return transactionSavedMsg{
			transaction: tx,
			err:         err,
		}
	}
}

// deleteTransaction asks the server to remove a transaction. The row is only
// dropped from the local list once the ack comes back.
func (m Model) deleteTransaction(id string) tea.Cmd {
	return func() tea.Msg {
		err := m.client.Delete(context.Background(), id)
		return transactionDeletedMsg{
			id:  id,
			err: err,
		}
	}
}
