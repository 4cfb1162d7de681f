// Package billpayment contains the credit card bill payment use cases.
package billpayment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/meubolso/backend/internal/application/adapter"
	"github.com/meubolso/backend/internal/domain/entity"
	domainerror "github.com/meubolso/backend/internal/domain/error"
)

// CreatePaymentInput represents the input for creating a bill payment.
type CreatePaymentInput struct {
	UserID          uuid.UUID
	BillMonth       int
	BillYear        int
	Origin          string
	TotalBillAmount decimal.Decimal
	AmountPaid      decimal.Decimal
	PaymentType     entity.PaymentType
	InterestRate    *decimal.Decimal
	Installments    *int
}

// CreatePaymentOutput represents the output of bill payment creation.
type CreatePaymentOutput struct {
	BillPayment  *entity.BillPayment
	Transactions []*entity.Transaction
	Installment  *entity.Installment
}

// CreatePaymentUseCase validates a bill payment request and delegates the
// artifact generation. Validation lives here rather than in the generator so
// internal callers can generate with relaxed rules.
type CreatePaymentUseCase struct {
	billPaymentRepo adapter.BillPaymentRepository
	generator       *GeneratePaymentUseCase
}

// NewCreatePaymentUseCase creates a new CreatePaymentUseCase instance.
func NewCreatePaymentUseCase(
	billPaymentRepo adapter.BillPaymentRepository,
	generator *GeneratePaymentUseCase,
) *CreatePaymentUseCase {
	return &CreatePaymentUseCase{
		billPaymentRepo: billPaymentRepo,
		generator:       generator,
	}
}

// Execute validates and creates the bill payment with its transactions.
func (uc *CreatePaymentUseCase) Execute(ctx context.Context, input CreatePaymentInput) (*CreatePaymentOutput, error) {
	if !input.PaymentType.IsValid() {
		return nil, domainerror.NewBillPaymentError(
			domainerror.ErrCodeInvalidPaymentType,
			fmt.Sprintf("payment type must be partial or financed, got %q", input.PaymentType),
			domainerror.ErrInvalidPaymentType,
		)
	}

	if input.BillMonth < 1 || input.BillMonth > 12 {
		return nil, domainerror.NewBillPaymentError(
			domainerror.ErrCodeInvalidBillMonth,
			fmt.Sprintf("bill month must be between 1 and 12, got %d", input.BillMonth),
			domainerror.ErrInvalidBillMonth,
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

	exists, err := uc.billPaymentRepo.ExistsUnlinkedByPeriod(ctx, input.UserID, input.Origin, input.BillMonth, input.BillYear)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domainerror.NewBillPaymentError(
			domainerror.ErrCodeDuplicateBillPayment,
			fmt.Sprintf("a pending bill payment already exists for %s %d/%d", input.Origin, input.BillMonth, input.BillYear),
			domainerror.ErrDuplicateBillPayment,
		)
	}

	generated, err := uc.generator.Execute(ctx, GeneratePaymentInput{
		UserID:          input.UserID,
		BillMonth:       input.BillMonth,
		BillYear:        input.BillYear,
		Origin:          input.Origin,
		TotalBillAmount: input.TotalBillAmount,
		AmountPaid:      input.AmountPaid,
		PaymentType:     input.PaymentType,
		InterestRate:    input.InterestRate,
		Installments:    installments,
	})
	if err != nil {
		return nil, err
	}

	return &CreatePaymentOutput{
		BillPayment:  generated.BillPayment,
		Transactions: generated.Transactions,
		Installment:  generated.Installment,
	}, nil
}
