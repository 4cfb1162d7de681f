package reconciliation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/meubolso/backend/internal/domain/entity"
)

func TestLinkCarryover(t *testing.T) {
	userID := uuid.New()
	billPaymentRepo := newFakeBillPaymentRepo()
	transactionRepo := newFakeTransactionRepo()

	payment := pendingPayment(userID, "C6", 3, 2025, "1200.00", time.Now().UTC())
	placeholder := entity.NewTransaction(
		userID,
		time.Date(2025, time.April, 15, 12, 0, 0, 0, time.UTC),
		"Saldo anterior fatura C6",
		dec("-1200.00"),
		entity.TransactionTypeExpense,
		"C6",
	)
	payment.CarryoverTransactionID = &placeholder.ID

	if err := billPaymentRepo.Create(context.Background(), payment); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if err := transactionRepo.Create(context.Background(), placeholder); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	// The bank charged 1320: the 1200 carried plus 10% interest.
	imported := entity.NewTransaction(
		userID,
		time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC),
		"SALDO ANTERIOR",
		dec("-1320.00"),
		entity.TransactionTypeExpense,
		"C6",
	)

	uc := NewLinkCarryoverUseCase(billPaymentRepo, transactionRepo)
	output, err := uc.Execute(context.Background(), LinkCarryoverInput{
		UserID:      userID,
		BillPayment: payment,
		Transaction: imported,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	linked := output.BillPayment
	if linked.LinkedTransactionID == nil || *linked.LinkedTransactionID != imported.ID {
		t.Error("payment not linked to the imported transaction")
	}
	if linked.InterestRate == nil || !linked.InterestRate.Equal(dec("10")) {
		t.Errorf("InterestRate = %v, want 10", linked.InterestRate)
	}
	if linked.InterestAmount == nil || !linked.InterestAmount.Equal(dec("120")) {
		t.Errorf("InterestAmount = %v, want 120", linked.InterestAmount)
	}
	if !output.RemovedPlaceholder {
		t.Error("expected the carryover placeholder to be removed")
	}
	if _, ok := transactionRepo.transactions[placeholder.ID]; ok {
		t.Error("placeholder transaction still persisted")
	}
}

func TestLinkCarryoverWithoutPlaceholder(t *testing.T) {
	userID := uuid.New()
	billPaymentRepo := newFakeBillPaymentRepo()
	transactionRepo := newFakeTransactionRepo()

	payment := pendingPayment(userID, "C6", 3, 2025, "1200.00", time.Now().UTC())
	if err := billPaymentRepo.Create(context.Background(), payment); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	imported := entity.NewTransaction(
		userID,
		time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC),
		"SALDO ANTERIOR",
		dec("-1200.00"),
		entity.TransactionTypeExpense,
		"C6",
	)

	uc := NewLinkCarryoverUseCase(billPaymentRepo, transactionRepo)
	output, err := uc.Execute(context.Background(), LinkCarryoverInput{
		UserID:      userID,
		BillPayment: payment,
		Transaction: imported,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if output.RemovedPlaceholder {
		t.Error("no placeholder existed, nothing should be reported removed")
	}
	if output.BillPayment.LinkedTransactionID == nil {
		t.Error("payment not linked")
	}
}
