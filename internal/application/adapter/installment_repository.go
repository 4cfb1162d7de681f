// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/meubolso/backend/internal/domain/entity"
)

// InstallmentRepository defines the interface for installment plan persistence operations.
type InstallmentRepository interface {
	// Create creates a new installment plan in the database.
	Create(ctx context.Context, installment *entity.Installment) error

	// FindByID retrieves an installment plan by its ID with ownership check.
	FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Installment, error)

	// Delete soft-deletes an installment plan. Missing plans are reported as
	// not found; best-effort callers tolerate it.
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}
