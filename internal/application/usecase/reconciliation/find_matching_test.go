package reconciliation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/meubolso/backend/internal/domain/entity"
)

func pendingPayment(userID uuid.UUID, origin string, month, year int, carried string, createdAt time.Time) *entity.BillPayment {
	return &entity.BillPayment{
		ID:                 uuid.New(),
		UserID:             userID,
		CreatedAt:          createdAt,
		UpdatedAt:          createdAt,
		BillMonth:          month,
		BillYear:           year,
		Origin:             origin,
		TotalBillAmount:    decimal.RequireFromString(carried).Mul(decimal.NewFromInt(2)),
		AmountPaid:         decimal.RequireFromString(carried),
		AmountCarried:      decimal.RequireFromString(carried),
		PaymentType:        entity.PaymentTypePartial,
		EntryTransactionID: uuid.New(),
	}
}

func TestFindMatchingPayment(t *testing.T) {
	userID := uuid.New()
	importDate := time.Date(2025, time.April, 12, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()

	tests := []struct {
		name       string
		payment    *entity.BillPayment
		amount     string
		wantMatch  bool
	}{
		{
			name:      "exact amount in previous month",
			payment:   pendingPayment(userID, "C6", 3, 2025, "1200.00", now),
			amount:    "-1200.00",
			wantMatch: true,
		},
		{
			name:      "charged with interest still inside the band",
			payment:   pendingPayment(userID, "C6", 3, 2025, "1200.00", now),
			amount:    "-1350.00",
			wantMatch: true,
		},
		{
			name:      "carried amount at half the line value",
			payment:   pendingPayment(userID, "C6", 3, 2025, "600.00", now),
			amount:    "-1200.00",
			wantMatch: true,
		},
		{
			name:      "carried amount below the band",
			payment:   pendingPayment(userID, "C6", 3, 2025, "400.00", now),
			amount:    "-1200.00",
			wantMatch: false,
		},
		{
			name:      "carried amount above the band",
			payment:   pendingPayment(userID, "C6", 3, 2025, "2000.00", now),
			amount:    "-1200.00",
			wantMatch: false,
		},
		{
			name:      "wrong month",
			payment:   pendingPayment(userID, "C6", 2, 2025, "1200.00", now),
			amount:    "-1200.00",
			wantMatch: false,
		},
		{
			name:      "wrong origin",
			payment:   pendingPayment(userID, "Nubank", 3, 2025, "1200.00", now),
			amount:    "-1200.00",
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeBillPaymentRepo()
			if err := repo.Create(context.Background(), tt.payment); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			uc := NewFindMatchingUseCase(repo)

			match, err := uc.Execute(context.Background(), FindMatchingInput{
				UserID:     userID,
				Origin:     "C6",
				Amount:     decimal.RequireFromString(tt.amount),
				ImportDate: importDate,
			})
			if err != nil {
				t.Fatalf("Execute failed: %v", err)
			}
			if tt.wantMatch && match == nil {
				t.Fatal("expected a match, got nil")
			}
			if !tt.wantMatch && match != nil {
				t.Fatalf("expected no match, got payment %s", match.ID)
			}
		})
	}
}

func TestFindMatchingSkipsLinkedPayments(t *testing.T) {
	userID := uuid.New()
	repo := newFakeBillPaymentRepo()

	linked := pendingPayment(userID, "C6", 3, 2025, "1200.00", time.Now().UTC())
	linkedTxn := uuid.New()
	linked.LinkedTransactionID = &linkedTxn
	if err := repo.Create(context.Background(), linked); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	uc := NewFindMatchingUseCase(repo)
	match, err := uc.Execute(context.Background(), FindMatchingInput{
		UserID:     userID,
		Origin:     "C6",
		Amount:     decimal.RequireFromString("-1200.00"),
		ImportDate: time.Date(2025, time.April, 12, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if match != nil {
		t.Error("a linked payment must never match again")
	}
}

func TestFindMatchingMostRecentWins(t *testing.T) {
	userID := uuid.New()
	repo := newFakeBillPaymentRepo()
	now := time.Now().UTC()

	older := pendingPayment(userID, "C6", 3, 2025, "1100.00", now.Add(-time.Hour))
	newer := pendingPayment(userID, "C6", 3, 2025, "1250.00", now)
	for _, p := range []*entity.BillPayment{older, newer} {
		if err := repo.Create(context.Background(), p); err != nil {
			t.Fatalf("setup failed: %v", err)
		}
	}

	uc := NewFindMatchingUseCase(repo)
	match, err := uc.Execute(context.Background(), FindMatchingInput{
		UserID:     userID,
		Origin:     "C6",
		Amount:     decimal.RequireFromString("-1200.00"),
		ImportDate: time.Date(2025, time.April, 12, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if match == nil {
		t.Fatal("expected a match")
	}
	if match.ID != newer.ID {
		t.Errorf("matched payment %s, want the most recent %s", match.ID, newer.ID)
	}
}

func TestFindMatchingJanuaryImport(t *testing.T) {
	userID := uuid.New()
	repo := newFakeBillPaymentRepo()

	december := pendingPayment(userID, "C6", 12, 2024, "800.00", time.Now().UTC())
	if err := repo.Create(context.Background(), december); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	uc := NewFindMatchingUseCase(repo)
	match, err := uc.Execute(context.Background(), FindMatchingInput{
		UserID:     userID,
		Origin:     "C6",
		Amount:     decimal.RequireFromString("-850.00"),
		ImportDate: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if match == nil || match.ID != december.ID {
		t.Error("january import must match the previous december bill")
	}
}
