// Package billpayment contains the credit card bill payment use cases.
package billpayment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/meubolso/backend/internal/application/adapter"
)

// DeletePaymentInput represents the input for deleting a bill payment.
type DeletePaymentInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeletePaymentOutput reports what the cascade removed.
type DeletePaymentOutput struct {
	DeletedTransactions int64
}

// DeletePaymentUseCase deletes a bill payment and everything it generated:
// the entry transaction, the carryover placeholder for partial payments, and
// the installment plan with its transactions for financed ones. The cascade is
// best effort; an artifact already gone does not abort the delete.
type DeletePaymentUseCase struct {
	billPaymentRepo adapter.BillPaymentRepository
	transactionRepo adapter.TransactionRepository
	installmentRepo adapter.InstallmentRepository
}

// NewDeletePaymentUseCase creates a new DeletePaymentUseCase instance.
func NewDeletePaymentUseCase(
	billPaymentRepo adapter.BillPaymentRepository,
	transactionRepo adapter.TransactionRepository,
	installmentRepo adapter.InstallmentRepository,
) *DeletePaymentUseCase {
	return &DeletePaymentUseCase{
		billPaymentRepo: billPaymentRepo,
		transactionRepo: transactionRepo,
		installmentRepo: installmentRepo,
	}
}

// Execute deletes the bill payment and its generated artifacts.
func (uc *DeletePaymentUseCase) Execute(ctx context.Context, input DeletePaymentInput) (*DeletePaymentOutput, error) {
	payment, err := uc.billPaymentRepo.FindByID(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	var deleted int64

	if err := uc.transactionRepo.Delete(ctx, payment.EntryTransactionID, input.UserID); err != nil {
		slog.Warn("Entry transaction already gone during bill payment delete",
			"billPaymentID", payment.ID,
			"transactionID", payment.EntryTransactionID,
			"error", err,
		)
	} else {
		deleted++
	}

	if payment.CarryoverTransactionID != nil {
		if err := uc.transactionRepo.Delete(ctx, *payment.CarryoverTransactionID, input.UserID); err != nil {
			slog.Warn("Carryover transaction already gone during bill payment delete",
				"billPaymentID", payment.ID,
				"transactionID", *payment.CarryoverTransactionID,
				"error", err,
			)
		} else {
			deleted++
		}
	}

	if payment.InstallmentID != nil {
		count, err := uc.transactionRepo.DeleteByInstallmentID(ctx, *payment.InstallmentID, input.UserID)
		if err != nil {
			slog.Warn("Failed to delete installment transactions during bill payment delete",
				"billPaymentID", payment.ID,
				"installmentID", *payment.InstallmentID,
				"error", err,
			)
		}
		deleted += count

		if err := uc.installmentRepo.Delete(ctx, *payment.InstallmentID, input.UserID); err != nil {
			slog.Warn("Installment plan already gone during bill payment delete",
				"billPaymentID", payment.ID,
				"installmentID", *payment.InstallmentID,
				"error", err,
			)
		}
	}

	if err := uc.billPaymentRepo.Delete(ctx, payment.ID, input.UserID); err != nil {
		return nil, err
	}

	slog.Info("Bill payment deleted",
		"billPaymentID", payment.ID,
		"userID", input.UserID,
		"deletedTransactions", deleted,
	)

	return &DeletePaymentOutput{DeletedTransactions: deleted}, nil
}
