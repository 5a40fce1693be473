package repository

import (
	"context"

	"github.com/finchapp/finch/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction storage
type TransactionRepository interface {
	// Store saves a transaction under its ID and returns the ID
	Store(ctx context.Context, transaction *entity.Transaction) (string, error)

	// FindAll retrieves every stored transaction in store-native order
	FindAll(ctx context.Context) ([]*entity.Transaction, error)

	// FindByID retrieves a transaction by its unique identifier
	FindByID(ctx context.Context, id string) (*entity.Transaction, error)

	// Update replaces the stored transaction with the same ID
	Update(ctx context.Context, transaction *entity.Transaction) (*entity.Transaction, error)

	// Delete removes a transaction if present; deleting an absent ID is not an error
	Delete(ctx context.Context, id string) error
}
