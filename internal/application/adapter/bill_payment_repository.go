// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/meubolso/backend/internal/domain/entity"
)

// BillPaymentFilter defines filter options for listing bill payments.
type BillPaymentFilter struct {
	BillMonth *int
	BillYear  *int
	Origin    *string
}

// BillPaymentRepository defines the interface for bill payment persistence operations.
type BillPaymentRepository interface {
	// Create creates a new bill payment in the database.
	Create(ctx context.Context, payment *entity.BillPayment) error

	// FindByID retrieves a bill payment by its ID with ownership check.
	FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.BillPayment, error)

	// FindByUser retrieves all bill payments for a user matching the filter,
	// most recent bill period first.
	FindByUser(ctx context.Context, userID uuid.UUID, filter BillPaymentFilter) ([]*entity.BillPayment, error)

	// FindUnlinkedByPeriod retrieves unlinked bill payments for the exact
	// (origin, billMonth, billYear) period whose carried amount falls within
	// [minAmount, maxAmount], ordered by creation time descending.
	FindUnlinkedByPeriod(
		ctx context.Context,
		userID uuid.UUID,
		origin string,
		billMonth int,
		billYear int,
		minAmount decimal.Decimal,
		maxAmount decimal.Decimal,
	) ([]*entity.BillPayment, error)

	// ExistsUnlinkedByPeriod checks whether an unlinked bill payment already
	// exists for the (origin, billMonth, billYear) period.
	ExistsUnlinkedByPeriod(ctx context.Context, userID uuid.UUID, origin string, billMonth, billYear int) (bool, error)

	// Update updates an existing bill payment in the database.
	Update(ctx context.Context, payment *entity.BillPayment) error

	// Delete soft-deletes a bill payment.
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}
