package service

import (
	"context"

	"github.com/finchapp/finch/internal/domain/entity"
	"github.com/finchapp/finch/internal/domain/repository"
	"github.com/google/uuid"
)

// LedgerService handles business logic for ledger transactions
type LedgerService struct {
	repo repository.TransactionRepository
}

// NewLedgerService creates a new ledger service
func NewLedgerService(repo repository.TransactionRepository) *LedgerService {
	return &LedgerService{repo: repo}
}

// TransactionPatch carries the fields of an update request. A nil field is
// absent from the request and keeps its stored value.
type TransactionPatch struct {
	Date     *string
	Payee    *string
	Category *string
	Amount   *float64
}

// CreateTransaction assigns an ID and stores the new transaction. The amount
// is persisted exactly as submitted.
func (s *LedgerService) CreateTransaction(ctx context.Context, date, payee, category string, amount float64) (*entity.Transaction, error) {
	tx := &entity.Transaction{
		ID:       uuid.New().String(),
		Date:     date,
		Payee:    payee,
		Category: category,
		Amount:   amount,
	}

	if _, err := s.repo.Store(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// ListTransactions retrieves all stored transactions
func (s *LedgerService) ListTransactions(ctx context.Context) ([]*entity.Transaction, error) {
	return s.repo.FindAll(ctx)
}

// UpdateTransaction applies the patch on top of the stored record and
// persists the result. Fields absent from the patch are preserved.
func (s *LedgerService) UpdateTransaction(ctx context.Context, id string, patch TransactionPatch) (*entity.Transaction, error) {
	tx, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Date != nil {
		tx.Date = *patch.Date
	}
	if patch.Payee != nil {
		tx.Payee = *patch.Payee
	}
	if patch.Category != nil {
		tx.Category = *patch.Category
	}
	if patch.Amount != nil {
		tx.Amount = *patch.Amount
	}

	return s.repo.Update(ctx, tx)
}

// DeleteTransaction removes a transaction by ID. Deleting an unknown ID is
// treated as success.
func (s *LedgerService) DeleteTransaction(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
