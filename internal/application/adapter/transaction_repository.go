// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/meubolso/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID with ownership check.
	FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Transaction, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete soft-deletes a transaction. Deleting an already-deleted or missing
	// transaction returns entity not found; callers doing best-effort cleanup
	// are expected to tolerate it.
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error

	// DeleteByInstallmentID soft-deletes every transaction belonging to the
	// given installment plan. Returns the count of deleted transactions.
	DeleteByInstallmentID(ctx context.Context, installmentID uuid.UUID, userID uuid.UUID) (int64, error)
}
