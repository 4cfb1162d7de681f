// Package billpayment contains the credit card bill payment use cases.
package billpayment

import (
	"context"

	"github.com/google/uuid"

	"github.com/meubolso/backend/internal/application/adapter"
	"github.com/meubolso/backend/internal/domain/entity"
)

// GetPaymentInput represents the input for fetching a single bill payment.
type GetPaymentInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// GetPaymentOutput represents the output of fetching a bill payment.
type GetPaymentOutput struct {
	BillPayment *entity.BillPayment
}

// GetPaymentUseCase fetches one bill payment with an ownership check.
type GetPaymentUseCase struct {
	billPaymentRepo adapter.BillPaymentRepository
}

// NewGetPaymentUseCase creates a new GetPaymentUseCase instance.
func NewGetPaymentUseCase(billPaymentRepo adapter.BillPaymentRepository) *GetPaymentUseCase {
	return &GetPaymentUseCase{
		billPaymentRepo: billPaymentRepo,
	}
}

// Execute fetches the bill payment by ID.
func (uc *GetPaymentUseCase) Execute(ctx context.Context, input GetPaymentInput) (*GetPaymentOutput, error) {
	payment, err := uc.billPaymentRepo.FindByID(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetPaymentOutput{BillPayment: payment}, nil
}
