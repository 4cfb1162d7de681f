package billpayment

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/meubolso/backend/internal/domain/entity"
	domainerror "github.com/meubolso/backend/internal/domain/error"
)

func newCreatePaymentFixture() (*CreatePaymentUseCase, *fakeBillPaymentRepo, *fakeTransactionRepo) {
	billPaymentRepo := newFakeBillPaymentRepo()
	transactionRepo := newFakeTransactionRepo()
	installmentRepo := newFakeInstallmentRepo()
	generator := NewGeneratePaymentUseCase(billPaymentRepo, transactionRepo, installmentRepo)
	return NewCreatePaymentUseCase(billPaymentRepo, generator), billPaymentRepo, transactionRepo
}

func TestCreatePaymentValidation(t *testing.T) {
	intPtr := func(n int) *int { return &n }

	tests := []struct {
		name     string
		input    CreatePaymentInput
		wantCode domainerror.BillPaymentErrorCode
	}{
		{
			name: "invalid payment type",
			input: CreatePaymentInput{
				UserID:          uuid.New(),
				BillMonth:       3,
				BillYear:        2025,
				Origin:          "C6",
				TotalBillAmount: dec("1000"),
				AmountPaid:      dec("500"),
				PaymentType:     entity.PaymentType("installments"),
			},
			wantCode: domainerror.ErrCodeInvalidPaymentType,
		},
		{
			name: "bill month out of range",
			input: CreatePaymentInput{
				UserID:          uuid.New(),
				BillMonth:       13,
				BillYear:        2025,
				Origin:          "C6",
				TotalBillAmount: dec("1000"),
				AmountPaid:      dec("500"),
				PaymentType:     entity.PaymentTypePartial,
			},
			wantCode: domainerror.ErrCodeInvalidBillMonth,
		},
		{
			name: "amount paid equals total",
			input: CreatePaymentInput{
				UserID:          uuid.New(),
				BillMonth:       3,
				BillYear:        2025,
				Origin:          "C6",
				TotalBillAmount: dec("1000"),
				AmountPaid:      dec("1000"),
				PaymentType:     entity.PaymentTypePartial,
			},
			wantCode: domainerror.ErrCodeAmountPaidExceedsTotal,
		},
		{
			name: "financed without installments",
			input: CreatePaymentInput{
				UserID:          uuid.New(),
				BillMonth:       3,
				BillYear:        2025,
				Origin:          "C6",
				TotalBillAmount: dec("1000"),
				AmountPaid:      dec("500"),
				PaymentType:     entity.PaymentTypeFinanced,
			},
			wantCode: domainerror.ErrCodeInvalidInstallmentCount,
		},
		{
			name: "financed with a single installment",
			input: CreatePaymentInput{
				UserID:          uuid.New(),
				BillMonth:       3,
				BillYear:        2025,
				Origin:          "C6",
				TotalBillAmount: dec("1000"),
				AmountPaid:      dec("500"),
				PaymentType:     entity.PaymentTypeFinanced,
				Installments:    intPtr(1),
			},
			wantCode: domainerror.ErrCodeInvalidInstallmentCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, _ := newCreatePaymentFixture()
			_, err := uc.Execute(context.Background(), tt.input)
			if err == nil {
				t.Fatal("expected an error")
			}
			var bpErr *domainerror.BillPaymentError
			if !errors.As(err, &bpErr) {
				t.Fatalf("expected a BillPaymentError, got %T", err)
			}
			if bpErr.Code != tt.wantCode {
				t.Errorf("error code = %s, want %s", bpErr.Code, tt.wantCode)
			}
		})
	}
}

func TestCreatePaymentDuplicatePeriod(t *testing.T) {
	uc, _, _ := newCreatePaymentFixture()
	userID := uuid.New()

	input := CreatePaymentInput{
		UserID:          userID,
		BillMonth:       3,
		BillYear:        2025,
		Origin:          "C6",
		TotalBillAmount: dec("1000"),
		AmountPaid:      dec("400"),
		PaymentType:     entity.PaymentTypePartial,
	}

	if _, err := uc.Execute(context.Background(), input); err != nil {
		t.Fatalf("first payment failed: %v", err)
	}

	_, err := uc.Execute(context.Background(), input)
	if err == nil {
		t.Fatal("expected a duplicate error for the same period and origin")
	}
	var bpErr *domainerror.BillPaymentError
	if !errors.As(err, &bpErr) || bpErr.Code != domainerror.ErrCodeDuplicateBillPayment {
		t.Errorf("expected code %s, got %v", domainerror.ErrCodeDuplicateBillPayment, err)
	}
}

func TestCreatePaymentDifferentOriginsSamePeriod(t *testing.T) {
	uc, billPaymentRepo, _ := newCreatePaymentFixture()
	userID := uuid.New()

	for _, origin := range []string{"C6", "Nubank"} {
		_, err := uc.Execute(context.Background(), CreatePaymentInput{
			UserID:          userID,
			BillMonth:       3,
			BillYear:        2025,
			Origin:          origin,
			TotalBillAmount: dec("1000"),
			AmountPaid:      dec("400"),
			PaymentType:     entity.PaymentTypePartial,
		})
		if err != nil {
			t.Fatalf("payment for %s failed: %v", origin, err)
		}
	}

	if len(billPaymentRepo.payments) != 2 {
		t.Errorf("persisted %d payments, want 2", len(billPaymentRepo.payments))
	}
}
