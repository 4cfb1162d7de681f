// Package billpayment contains the credit card bill payment use cases.
package billpayment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/meubolso/backend/internal/application/adapter"
	"github.com/meubolso/backend/internal/domain/entity"
	domainerror "github.com/meubolso/backend/internal/domain/error"
)

// UpdatePaymentInput represents the input for updating a bill payment.
// All fields except the identifiers replace the stored values.
type UpdatePaymentInput struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	TotalBillAmount decimal.Decimal
	AmountPaid      decimal.Decimal
	PaymentType     entity.PaymentType
	InterestRate    *decimal.Decimal
	Installments    *int
}

// UpdatePaymentOutput represents the output of a bill payment update.
type UpdatePaymentOutput struct {
	BillPayment *entity.BillPayment
}

// UpdatePaymentUseCase corrects a bill payment entered with wrong numbers.
// The generated transactions derive from those numbers, so an update is a
// regeneration: the old artifacts are removed and new ones are created for the
// same billing period. A payment already linked to an imported carryover line
// cannot be updated; its numbers are confirmed by the bank at that point.
type UpdatePaymentUseCase struct {
	billPaymentRepo adapter.BillPaymentRepository
	deleter         *DeletePaymentUseCase
	generator       *GeneratePaymentUseCase
}

// NewUpdatePaymentUseCase creates a new UpdatePaymentUseCase instance.
func NewUpdatePaymentUseCase(
	billPaymentRepo adapter.BillPaymentRepository,
	deleter *DeletePaymentUseCase,
	generator *GeneratePaymentUseCase,
) *UpdatePaymentUseCase {
	return &UpdatePaymentUseCase{
		billPaymentRepo: billPaymentRepo,
		deleter:         deleter,
		generator:       generator,
	}
}

// Execute replaces the bill payment's values and regenerates its artifacts.
func (uc *UpdatePaymentUseCase) Execute(ctx context.Context, input UpdatePaymentInput) (*UpdatePaymentOutput, error) {
	existing, err := uc.billPaymentRepo.FindByID(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	if existing.IsLinked() {
		return nil, domainerror.NewBillPaymentError(
			domainerror.ErrCodeBillPaymentLinked,
			"a bill payment already linked to an imported statement cannot be updated",
			domainerror.ErrBillPaymentLinked,
		)
	}

	if !input.PaymentType.IsValid() {
		return nil, domainerror.NewBillPaymentError(
			domainerror.ErrCodeInvalidPaymentType,
			fmt.Sprintf("payment type must be partial or financed, got %q", input.PaymentType),
			domainerror.ErrInvalidPaymentType,
		)
	}

	if input.AmountPaid.GreaterThanOrEqual(input.TotalBillAmount) {
		return nil, domainerror.NewBillPaymentError(
			domainerror.ErrCodeAmountPaidExceedsTotal,
			"amount paid must be smaller than the total bill amount",
			domainerror.ErrAmountPaidExceedsTotal,
		)
	}

	installments := 0
	if input.PaymentType == entity.PaymentTypeFinanced {
		if input.Installments == nil || *input.Installments < 2 {
			return nil, domainerror.NewBillPaymentError(
				domainerror.ErrCodeInvalidInstallmentCount,
				"financed payment requires at least 2 installments",
				domainerror.ErrInvalidInstallmentCount,
			)
		}
		installments = *input.Installments
	}

	if _, err := uc.deleter.Execute(ctx, DeletePaymentInput{ID: input.ID, UserID: input.UserID}); err != nil {
		return nil, err
	}

	generated, err := uc.generator.Execute(ctx, GeneratePaymentInput{
		UserID:          input.UserID,
		BillMonth:       existing.BillMonth,
		BillYear:        existing.BillYear,
		Origin:          existing.Origin,
		TotalBillAmount: input.TotalBillAmount,
		AmountPaid:      input.AmountPaid,
		PaymentType:     input.PaymentType,
		InterestRate:    input.InterestRate,
		Installments:    installments,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Bill payment updated",
		"billPaymentID", input.ID,
		"replacementID", generated.BillPayment.ID,
		"userID", input.UserID,
	)

	return &UpdatePaymentOutput{BillPayment: generated.BillPayment}, nil
}
