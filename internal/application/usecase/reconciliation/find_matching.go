// Package reconciliation matches imported carryover statement lines against
// pending bill payments.
package reconciliation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/meubolso/backend/internal/application/adapter"
	"github.com/meubolso/backend/internal/domain/entity"
)

// amountTolerance bounds the fuzzy match: the carried amount must fall within
// 50% to 150% of the imported carryover line's value. Interest widens the gap
// upward, OCR noise in either direction.
var (
	toleranceLower = decimal.NewFromFloat(0.5)
	toleranceUpper = decimal.NewFromFloat(1.5)
)

// FindMatchingInput represents a carryover line from an imported statement.
type FindMatchingInput struct {
	UserID     uuid.UUID
	Origin     string
	Amount     decimal.Decimal // Signed, as imported
	ImportDate time.Time
}

// FindMatchingUseCase finds the pending bill payment a carryover line settles.
// Only the billing month before the import date is considered: a carryover
// charge on this month's bill always stems from last month's payment decision.
type FindMatchingUseCase struct {
	billPaymentRepo adapter.BillPaymentRepository
}

// NewFindMatchingUseCase creates a new FindMatchingUseCase instance.
func NewFindMatchingUseCase(billPaymentRepo adapter.BillPaymentRepository) *FindMatchingUseCase {
	return &FindMatchingUseCase{
		billPaymentRepo: billPaymentRepo,
	}
}

// Execute returns the best matching unlinked bill payment, or nil when none
// qualifies.
func (uc *FindMatchingUseCase) Execute(ctx context.Context, input FindMatchingInput) (*entity.BillPayment, error) {
	billMonth, billYear := PreviousMonth(input.ImportDate)

	amount := input.Amount.Abs()
	minAmount := amount.Mul(toleranceLower)
	maxAmount := amount.Mul(toleranceUpper)

	candidates, err := uc.billPaymentRepo.FindUnlinkedByPeriod(
		ctx,
		input.UserID,
		input.Origin,
		billMonth,
		billYear,
		minAmount,
		maxAmount,
	)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	// Repository order is creation time descending; the most recent payment
	// decision wins when several fall inside the tolerance band.
	return candidates[0], nil
}
