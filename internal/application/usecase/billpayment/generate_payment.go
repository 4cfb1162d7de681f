// Package billpayment contains the credit card bill payment use cases.
package billpayment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/meubolso/backend/internal/application/adapter"
	"github.com/meubolso/backend/internal/domain/entity"
	domainerror "github.com/meubolso/backend/internal/domain/error"
)

// GeneratePaymentInput represents the input for generating a bill payment's
// transactions.
type GeneratePaymentInput struct {
	UserID          uuid.UUID
	BillMonth       int
	BillYear        int
	Origin          string
	TotalBillAmount decimal.Decimal
	AmountPaid      decimal.Decimal
	PaymentType     entity.PaymentType
	InterestRate    *decimal.Decimal
	Installments    int // Financed only
}

// GeneratePaymentOutput represents the generated bill payment and its artifacts.
type GeneratePaymentOutput struct {
	BillPayment  *entity.BillPayment
	Transactions []*entity.Transaction
	Installment  *entity.Installment
}

// GeneratePaymentUseCase turns a bill payment decision into its persisted
// artifacts. A partial payment produces the entry transaction plus a carryover
// placeholder in the next billing month; a financed payment produces the entry
// transaction plus an installment plan with one transaction per installment.
type GeneratePaymentUseCase struct {
	billPaymentRepo adapter.BillPaymentRepository
	transactionRepo adapter.TransactionRepository
	installmentRepo adapter.InstallmentRepository
}

// NewGeneratePaymentUseCase creates a new GeneratePaymentUseCase instance.
func NewGeneratePaymentUseCase(
	billPaymentRepo adapter.BillPaymentRepository,
	transactionRepo adapter.TransactionRepository,
	installmentRepo adapter.InstallmentRepository,
) *GeneratePaymentUseCase {
	return &GeneratePaymentUseCase{
		billPaymentRepo: billPaymentRepo,
		transactionRepo: transactionRepo,
		installmentRepo: installmentRepo,
	}
}

// Execute generates and persists the bill payment with its transactions.
func (uc *GeneratePaymentUseCase) Execute(ctx context.Context, input GeneratePaymentInput) (*GeneratePaymentOutput, error) {
	switch input.PaymentType {
	case entity.PaymentTypePartial:
		return uc.generatePartial(ctx, input)
	case entity.PaymentTypeFinanced:
		return uc.generateFinanced(ctx, input)
	default:
		return nil, domainerror.NewBillPaymentError(
			domainerror.ErrCodeInvalidPaymentType,
			fmt.Sprintf("payment type must be partial or financed, got %q", input.PaymentType),
			domainerror.ErrInvalidPaymentType,
		)
	}
}

func (uc *GeneratePaymentUseCase) generatePartial(ctx context.Context, input GeneratePaymentInput) (*GeneratePaymentOutput, error) {
	amountCarried := input.TotalBillAmount.Sub(input.AmountPaid)
	carriedTotal, _ := financingTerms(amountCarried, input.InterestRate, 1)

	entry := entity.NewTransaction(
		input.UserID,
		billDate(input.BillMonth, input.BillYear),
		fmt.Sprintf("Pagamento parcial fatura %s", input.Origin),
		input.AmountPaid.Neg(),
		entity.TransactionTypeExpense,
		input.Origin,
	)
	if err := uc.transactionRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	nextMonth, nextYear := nextPeriod(input.BillMonth, input.BillYear)
	carryover := entity.NewTransaction(
		input.UserID,
		billDate(nextMonth, nextYear),
		fmt.Sprintf("Saldo anterior fatura %s", input.Origin),
		carriedTotal.Neg(),
		entity.TransactionTypeExpense,
		input.Origin,
	)
	if err := uc.transactionRepo.Create(ctx, carryover); err != nil {
		return nil, err
	}

	payment := uc.newBillPayment(input, amountCarried, carriedTotal)
	payment.EntryTransactionID = entry.ID
	payment.CarryoverTransactionID = &carryover.ID

	if err := uc.billPaymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	slog.Info("Partial bill payment generated",
		"userID", input.UserID,
		"origin", input.Origin,
		"billMonth", input.BillMonth,
		"billYear", input.BillYear,
		"amountCarried", amountCarried,
	)

	return &GeneratePaymentOutput{
		BillPayment:  payment,
		Transactions: []*entity.Transaction{entry, carryover},
	}, nil
}

func (uc *GeneratePaymentUseCase) generateFinanced(ctx context.Context, input GeneratePaymentInput) (*GeneratePaymentOutput, error) {
	if input.Installments < 1 {
		return nil, domainerror.NewBillPaymentError(
			domainerror.ErrCodeInvalidInstallmentCount,
			fmt.Sprintf("financed payment needs at least 1 installment, got %d", input.Installments),
			domainerror.ErrInvalidInstallmentCount,
		)
	}

	amountCarried := input.TotalBillAmount.Sub(input.AmountPaid)
	carriedTotal, perInstallment := financingTerms(amountCarried, input.InterestRate, input.Installments)

	entry := entity.NewTransaction(
		input.UserID,
		billDate(input.BillMonth, input.BillYear),
		fmt.Sprintf("Pagamento parcial fatura %s", input.Origin),
		input.AmountPaid.Neg(),
		entity.TransactionTypeExpense,
		input.Origin,
	)
	if err := uc.transactionRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	startMonth, startYear := nextPeriod(input.BillMonth, input.BillYear)
	plan := entity.NewInstallment(
		input.UserID,
		fmt.Sprintf("Financiamento fatura %s", input.Origin),
		carriedTotal,
		input.Installments,
		perInstallment,
		billDate(startMonth, startYear),
		input.Origin,
	)
	if err := uc.installmentRepo.Create(ctx, plan); err != nil {
		return nil, err
	}

	transactions := []*entity.Transaction{entry}
	month, year := startMonth, startYear
	for i := 1; i <= input.Installments; i++ {
		txn := entity.NewTransaction(
			input.UserID,
			billDate(month, year),
			fmt.Sprintf("Parcela %d/%d Financiamento fatura %s", i, input.Installments, input.Origin),
			perInstallment.Neg(),
			entity.TransactionTypeExpense,
			input.Origin,
		)
		txn.IsInstallment = true
		current, total := i, input.Installments
		txn.InstallmentCurrent = &current
		txn.InstallmentTotal = &total
		txn.InstallmentID = &plan.ID

		if err := uc.transactionRepo.Create(ctx, txn); err != nil {
			return nil, err
		}
		transactions = append(transactions, txn)
		month, year = nextPeriod(month, year)
	}

	payment := uc.newBillPayment(input, amountCarried, carriedTotal)
	payment.EntryTransactionID = entry.ID
	payment.InstallmentID = &plan.ID

	if err := uc.billPaymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	slog.Info("Financed bill payment generated",
		"userID", input.UserID,
		"origin", input.Origin,
		"billMonth", input.BillMonth,
		"billYear", input.BillYear,
		"installments", input.Installments,
		"perInstallment", perInstallment,
	)

	return &GeneratePaymentOutput{
		BillPayment:  payment,
		Transactions: transactions,
		Installment:  plan,
	}, nil
}

// newBillPayment builds the common fields of the entity; interest amount is
// only recorded when a rate was supplied.
func (uc *GeneratePaymentUseCase) newBillPayment(input GeneratePaymentInput, amountCarried, carriedTotal decimal.Decimal) *entity.BillPayment {
	now := time.Now().UTC()
	payment := &entity.BillPayment{
		ID:              uuid.New(),
		UserID:          input.UserID,
		CreatedAt:       now,
		UpdatedAt:       now,
		BillMonth:       input.BillMonth,
		BillYear:        input.BillYear,
		Origin:          input.Origin,
		TotalBillAmount: input.TotalBillAmount,
		AmountPaid:      input.AmountPaid,
		AmountCarried:   amountCarried,
		PaymentType:     input.PaymentType,
	}
	if input.InterestRate != nil && !input.InterestRate.IsZero() {
		rate := *input.InterestRate
		interest := carriedTotal.Sub(amountCarried)
		payment.InterestRate = &rate
		payment.InterestAmount = &interest
	}
	return payment
}
