package billpayment

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/meubolso/backend/internal/domain/entity"
	domainerror "github.com/meubolso/backend/internal/domain/error"
)

func TestDeletePartialPayment(t *testing.T) {
	billPaymentRepo := newFakeBillPaymentRepo()
	transactionRepo := newFakeTransactionRepo()
	installmentRepo := newFakeInstallmentRepo()
	generator := NewGeneratePaymentUseCase(billPaymentRepo, transactionRepo, installmentRepo)
	deleter := NewDeletePaymentUseCase(billPaymentRepo, transactionRepo, installmentRepo)

	userID := uuid.New()
	generated, err := generator.Execute(context.Background(), GeneratePaymentInput{
		UserID:          userID,
		BillMonth:       5,
		BillYear:        2025,
		Origin:          "C6",
		TotalBillAmount: dec("1500"),
		AmountPaid:      dec("500"),
		PaymentType:     entity.PaymentTypePartial,
	})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	output, err := deleter.Execute(context.Background(), DeletePaymentInput{
		ID:     generated.BillPayment.ID,
		UserID: userID,
	})
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if output.DeletedTransactions != 2 {
		t.Errorf("DeletedTransactions = %d, want 2", output.DeletedTransactions)
	}
	if len(transactionRepo.transactions) != 0 {
		t.Errorf("%d transactions left behind", len(transactionRepo.transactions))
	}
	if len(billPaymentRepo.payments) != 0 {
		t.Errorf("%d bill payments left behind", len(billPaymentRepo.payments))
	}
}

func TestDeleteFinancedPaymentCascade(t *testing.T) {
	billPaymentRepo := newFakeBillPaymentRepo()
	transactionRepo := newFakeTransactionRepo()
	installmentRepo := newFakeInstallmentRepo()
	generator := NewGeneratePaymentUseCase(billPaymentRepo, transactionRepo, installmentRepo)
	deleter := NewDeletePaymentUseCase(billPaymentRepo, transactionRepo, installmentRepo)

	userID := uuid.New()
	generated, err := generator.Execute(context.Background(), GeneratePaymentInput{
		UserID:          userID,
		BillMonth:       5,
		BillYear:        2025,
		Origin:          "Itaú",
		TotalBillAmount: dec("3000"),
		AmountPaid:      dec("1000"),
		PaymentType:     entity.PaymentTypeFinanced,
		Installments:    4,
	})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	output, err := deleter.Execute(context.Background(), DeletePaymentInput{
		ID:     generated.BillPayment.ID,
		UserID: userID,
	})
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	// Entry plus the four installment transactions.
	if output.DeletedTransactions != 5 {
		t.Errorf("DeletedTransactions = %d, want 5", output.DeletedTransactions)
	}
	if len(installmentRepo.installments) != 0 {
		t.Errorf("%d installment plans left behind", len(installmentRepo.installments))
	}
	if len(transactionRepo.transactions) != 0 {
		t.Errorf("%d transactions left behind", len(transactionRepo.transactions))
	}
}

func TestDeletePaymentToleratesMissingArtifacts(t *testing.T) {
	billPaymentRepo := newFakeBillPaymentRepo()
	transactionRepo := newFakeTransactionRepo()
	installmentRepo := newFakeInstallmentRepo()
	generator := NewGeneratePaymentUseCase(billPaymentRepo, transactionRepo, installmentRepo)
	deleter := NewDeletePaymentUseCase(billPaymentRepo, transactionRepo, installmentRepo)

	userID := uuid.New()
	generated, err := generator.Execute(context.Background(), GeneratePaymentInput{
		UserID:          userID,
		BillMonth:       5,
		BillYear:        2025,
		Origin:          "C6",
		TotalBillAmount: dec("1500"),
		AmountPaid:      dec("500"),
		PaymentType:     entity.PaymentTypePartial,
	})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	// The user removed the carryover placeholder by hand.
	if err := transactionRepo.Delete(context.Background(), *generated.BillPayment.CarryoverTransactionID, userID); err != nil {
		t.Fatalf("setup delete failed: %v", err)
	}

	output, err := deleter.Execute(context.Background(), DeletePaymentInput{
		ID:     generated.BillPayment.ID,
		UserID: userID,
	})
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if output.DeletedTransactions != 1 {
		t.Errorf("DeletedTransactions = %d, want 1", output.DeletedTransactions)
	}
	if len(billPaymentRepo.payments) != 0 {
		t.Error("bill payment not deleted")
	}
}

func TestDeletePaymentNotFound(t *testing.T) {
	deleter := NewDeletePaymentUseCase(newFakeBillPaymentRepo(), newFakeTransactionRepo(), newFakeInstallmentRepo())

	_, err := deleter.Execute(context.Background(), DeletePaymentInput{
		ID:     uuid.New(),
		UserID: uuid.New(),
	})
	if !errors.Is(err, domainerror.ErrBillPaymentNotFound) {
		t.Errorf("expected ErrBillPaymentNotFound, got %v", err)
	}
}
