// Package reconciliation matches imported carryover statement lines against
// pending bill payments.
package reconciliation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/meubolso/backend/internal/application/adapter"
	"github.com/meubolso/backend/internal/domain/entity"
)

// LinkCarryoverInput represents the input for linking a carryover transaction
// to its bill payment.
type LinkCarryoverInput struct {
	UserID      uuid.UUID
	BillPayment *entity.BillPayment
	Transaction *entity.Transaction // Persisted carryover line from the import
}

// LinkCarryoverOutput represents the result of linking.
type LinkCarryoverOutput struct {
	BillPayment        *entity.BillPayment
	RemovedPlaceholder bool
}

// LinkCarryoverUseCase marks a bill payment as settled by an imported
// carryover line. The real charge replaces the estimate: the effective
// interest is recomputed against the carried amount, and the placeholder
// transaction generated at payment time is removed so the amount is not
// counted twice.
type LinkCarryoverUseCase struct {
	billPaymentRepo adapter.BillPaymentRepository
	transactionRepo adapter.TransactionRepository
}

// NewLinkCarryoverUseCase creates a new LinkCarryoverUseCase instance.
func NewLinkCarryoverUseCase(
	billPaymentRepo adapter.BillPaymentRepository,
	transactionRepo adapter.TransactionRepository,
) *LinkCarryoverUseCase {
	return &LinkCarryoverUseCase{
		billPaymentRepo: billPaymentRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute links the transaction to the payment and removes the placeholder.
func (uc *LinkCarryoverUseCase) Execute(ctx context.Context, input LinkCarryoverInput) (*LinkCarryoverOutput, error) {
	payment := input.BillPayment
	txn := input.Transaction

	rate, amount := CalculateInterest(payment.AmountCarried, txn.Amount)
	payment.LinkedTransactionID = &txn.ID
	payment.InterestRate = &rate
	payment.InterestAmount = &amount
	payment.UpdatedAt = time.Now().UTC()

	if err := uc.billPaymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	removed := false
	if payment.CarryoverTransactionID != nil {
		if err := uc.transactionRepo.Delete(ctx, *payment.CarryoverTransactionID, input.UserID); err != nil {
			slog.Warn("Carryover placeholder already gone during linking",
				"billPaymentID", payment.ID,
				"transactionID", *payment.CarryoverTransactionID,
				"error", err,
			)
		} else {
			removed = true
		}
	}

	slog.Info("Carryover transaction linked to bill payment",
		"billPaymentID", payment.ID,
		"transactionID", txn.ID,
		"interestRate", rate,
		"interestAmount", amount,
	)

	return &LinkCarryoverOutput{
		BillPayment:        payment,
		RemovedPlaceholder: removed,
	}, nil
}
