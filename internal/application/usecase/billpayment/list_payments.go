// Package billpayment contains the credit card bill payment use cases.
package billpayment

import (
	"context"

	"github.com/google/uuid"

	"github.com/meubolso/backend/internal/application/adapter"
	"github.com/meubolso/backend/internal/domain/entity"
)

// ListPaymentsInput represents the input for listing bill payments.
type ListPaymentsInput struct {
	UserID    uuid.UUID
	BillMonth *int
	BillYear  *int
	Origin    *string
}

// ListPaymentsOutput represents the output of the bill payment listing.
type ListPaymentsOutput struct {
	BillPayments []*entity.BillPayment
}

// ListPaymentsUseCase lists a user's bill payments, optionally filtered by
// period and origin.
type ListPaymentsUseCase struct {
	billPaymentRepo adapter.BillPaymentRepository
}

// NewListPaymentsUseCase creates a new ListPaymentsUseCase instance.
func NewListPaymentsUseCase(billPaymentRepo adapter.BillPaymentRepository) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{
		billPaymentRepo: billPaymentRepo,
	}
}

// Execute lists the bill payments matching the filter.
func (uc *ListPaymentsUseCase) Execute(ctx context.Context, input ListPaymentsInput) (*ListPaymentsOutput, error) {
	payments, err := uc.billPaymentRepo.FindByUser(ctx, input.UserID, adapter.BillPaymentFilter{
		BillMonth: input.BillMonth,
		BillYear:  input.BillYear,
		Origin:    input.Origin,
	})
	if err != nil {
		return nil, err
	}

	return &ListPaymentsOutput{BillPayments: payments}, nil
}
