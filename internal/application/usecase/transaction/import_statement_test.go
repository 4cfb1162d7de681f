package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/meubolso/backend/internal/application/adapter"
	"github.com/meubolso/backend/internal/application/usecase/reconciliation"
	"github.com/meubolso/backend/internal/domain/entity"
	domainerror "github.com/meubolso/backend/internal/domain/error"
)

type fakeTransactionRepo struct {
	transactions map[uuid.UUID]*entity.Transaction
	failOn       string // Description that makes Create fail
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{transactions: make(map[uuid.UUID]*entity.Transaction)}
}

func (r *fakeTransactionRepo) Create(_ context.Context, txn *entity.Transaction) error {
	if r.failOn != "" && txn.Description == r.failOn {
		return errors.New("constraint violation")
	}
	r.transactions[txn.ID] = txn
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Transaction, error) {
	txn, ok := r.transactions[id]
	if !ok || txn.UserID != userID {
		return nil, domainerror.ErrTransactionNotFound
	}
	return txn, nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, txn *entity.Transaction) error {
	if _, ok := r.transactions[txn.ID]; !ok {
		return domainerror.ErrTransactionNotFound
	}
	r.transactions[txn.ID] = txn
	return nil
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID, userID uuid.UUID) error {
	txn, ok := r.transactions[id]
	if !ok || txn.UserID != userID {
		return domainerror.ErrTransactionNotFound
	}
	delete(r.transactions, id)
	return nil
}

func (r *fakeTransactionRepo) DeleteByInstallmentID(_ context.Context, installmentID uuid.UUID, userID uuid.UUID) (int64, error) {
	var count int64
	for id, txn := range r.transactions {
		if txn.UserID == userID && txn.InstallmentID != nil && *txn.InstallmentID == installmentID {
			delete(r.transactions, id)
			count++
		}
	}
	return count, nil
}

type fakeBillPaymentRepo struct {
	payments map[uuid.UUID]*entity.BillPayment
}

func newFakeBillPaymentRepo() *fakeBillPaymentRepo {
	return &fakeBillPaymentRepo{payments: make(map[uuid.UUID]*entity.BillPayment)}
}

func (r *fakeBillPaymentRepo) Create(_ context.Context, payment *entity.BillPayment) error {
	r.payments[payment.ID] = payment
	return nil
}

func (r *fakeBillPaymentRepo) FindByID(_ context.Context, id uuid.UUID, userID uuid.UUID) (*entity.BillPayment, error) {
	payment, ok := r.payments[id]
	if !ok || payment.UserID != userID {
		return nil, domainerror.ErrBillPaymentNotFound
	}
	return payment, nil
}

func (r *fakeBillPaymentRepo) FindByUser(_ context.Context, userID uuid.UUID, _ adapter.BillPaymentFilter) ([]*entity.BillPayment, error) {
	var out []*entity.BillPayment
	for _, payment := range r.payments {
		if payment.UserID == userID {
			out = append(out, payment)
		}
	}
	return out, nil
}

func (r *fakeBillPaymentRepo) FindUnlinkedByPeriod(
	_ context.Context,
	userID uuid.UUID,
	origin string,
	billMonth int,
	billYear int,
	minAmount decimal.Decimal,
	maxAmount decimal.Decimal,
) ([]*entity.BillPayment, error) {
	var out []*entity.BillPayment
	for _, payment := range r.payments {
		if payment.UserID != userID || payment.Origin != origin {
			continue
		}
		if payment.BillMonth != billMonth || payment.BillYear != billYear {
			continue
		}
		if payment.IsLinked() {
			continue
		}
		if payment.AmountCarried.LessThan(minAmount) || payment.AmountCarried.GreaterThan(maxAmount) {
			continue
		}
		out = append(out, payment)
	}
	return out, nil
}

func (r *fakeBillPaymentRepo) ExistsUnlinkedByPeriod(_ context.Context, userID uuid.UUID, origin string, billMonth, billYear int) (bool, error) {
	for _, payment := range r.payments {
		if payment.UserID == userID && payment.Origin == origin &&
			payment.BillMonth == billMonth && payment.BillYear == billYear && !payment.IsLinked() {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBillPaymentRepo) Update(_ context.Context, payment *entity.BillPayment) error {
	if _, ok := r.payments[payment.ID]; !ok {
		return domainerror.ErrBillPaymentNotFound
	}
	r.payments[payment.ID] = payment
	return nil
}

func (r *fakeBillPaymentRepo) Delete(_ context.Context, id uuid.UUID, userID uuid.UUID) error {
	payment, ok := r.payments[id]
	if !ok || payment.UserID != userID {
		return domainerror.ErrBillPaymentNotFound
	}
	delete(r.payments, id)
	return nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func candidate(description, amount string, date time.Time) entity.NormalizedTransaction {
	txnType := entity.TransactionTypeExpense
	if !dec(amount).IsNegative() {
		txnType = entity.TransactionTypeIncome
	}
	return entity.NormalizedTransaction{
		Description: description,
		Amount:      dec(amount),
		Date:        date,
		Type:        txnType,
	}
}

func TestImportStatement(t *testing.T) {
	transactionRepo := newFakeTransactionRepo()
	uc := NewImportStatementUseCase(transactionRepo, nil, nil)

	userID := uuid.New()
	date := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	current, total := 2, 5

	installmentCandidate := candidate("LOJAS AMERICANAS - Parcela 2/5", "-150.00", date)
	installmentCandidate.IsInstallment = true
	installmentCandidate.InstallmentCurrent = &current
	installmentCandidate.InstallmentTotal = &total

	categoryID := uuid.New()
	categorized := candidate("PADARIA DO ZE", "-45.00", date)
	categorized.SuggestedCategoryID = &categoryID

	output, err := uc.Execute(context.Background(), ImportStatementInput{
		UserID:       userID,
		Origin:       "C6",
		Transactions: []entity.NormalizedTransaction{installmentCandidate, categorized},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if output.Imported != 2 || output.Skipped != 0 || output.Linked != 0 {
		t.Errorf("output = %+v, want 2 imported", output)
	}
	if len(transactionRepo.transactions) != 2 {
		t.Fatalf("persisted %d transactions, want 2", len(transactionRepo.transactions))
	}

	for _, txn := range transactionRepo.transactions {
		if txn.Origin != "C6" || txn.UserID != userID {
			t.Errorf("transaction %q has wrong origin or user", txn.Description)
		}
		switch txn.Description {
		case "LOJAS AMERICANAS - Parcela 2/5":
			if !txn.IsInstallment || txn.InstallmentCurrent == nil || *txn.InstallmentCurrent != 2 {
				t.Error("installment fields not carried over")
			}
		case "PADARIA DO ZE":
			if txn.CategoryID == nil || *txn.CategoryID != categoryID {
				t.Error("suggested category not carried over")
			}
		}
	}
}

func TestImportStatementBestEffort(t *testing.T) {
	transactionRepo := newFakeTransactionRepo()
	transactionRepo.failOn = "LINHA RUIM"
	uc := NewImportStatementUseCase(transactionRepo, nil, nil)

	date := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	output, err := uc.Execute(context.Background(), ImportStatementInput{
		UserID: uuid.New(),
		Origin: "C6",
		Transactions: []entity.NormalizedTransaction{
			candidate("PADARIA DO ZE", "-45.00", date),
			candidate("LINHA RUIM", "-10.00", date),
			candidate("POSTO SHELL", "-200.00", date),
		},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if output.Imported != 2 || output.Skipped != 1 {
		t.Errorf("output = %+v, want 2 imported and 1 skipped", output)
	}
}

func TestImportStatementValidation(t *testing.T) {
	uc := NewImportStatementUseCase(newFakeTransactionRepo(), nil, nil)
	date := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), ImportStatementInput{
		UserID: uuid.New(),
		Origin: "C6",
	})
	if !errors.Is(err, domainerror.ErrEmptyImport) {
		t.Errorf("expected ErrEmptyImport, got %v", err)
	}

	_, err = uc.Execute(context.Background(), ImportStatementInput{
		UserID:       uuid.New(),
		Transactions: []entity.NormalizedTransaction{candidate("PADARIA", "-10.00", date)},
	})
	if !errors.Is(err, domainerror.ErrMissingOrigin) {
		t.Errorf("expected ErrMissingOrigin, got %v", err)
	}
}

func TestImportStatementLinksCarryover(t *testing.T) {
	transactionRepo := newFakeTransactionRepo()
	billPaymentRepo := newFakeBillPaymentRepo()
	finder := reconciliation.NewFindMatchingUseCase(billPaymentRepo)
	linker := reconciliation.NewLinkCarryoverUseCase(billPaymentRepo, transactionRepo)
	uc := NewImportStatementUseCase(transactionRepo, finder, linker)

	userID := uuid.New()

	// A pending partial payment from March with its carryover placeholder.
	placeholder := entity.NewTransaction(
		userID,
		time.Date(2025, time.April, 15, 12, 0, 0, 0, time.UTC),
		"Saldo anterior fatura C6",
		dec("-1200.00"),
		entity.TransactionTypeExpense,
		"C6",
	)
	if err := transactionRepo.Create(context.Background(), placeholder); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	payment := &entity.BillPayment{
		ID:                     uuid.New(),
		UserID:                 userID,
		CreatedAt:              time.Now().UTC(),
		UpdatedAt:              time.Now().UTC(),
		BillMonth:              3,
		BillYear:               2025,
		Origin:                 "C6",
		TotalBillAmount:        dec("2000.00"),
		AmountPaid:             dec("800.00"),
		AmountCarried:          dec("1200.00"),
		PaymentType:            entity.PaymentTypePartial,
		EntryTransactionID:     uuid.New(),
		CarryoverTransactionID: &placeholder.ID,
	}
	if err := billPaymentRepo.Create(context.Background(), payment); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	// The April statement arrives with the real charge: 1200 plus interest.
	importDate := time.Date(2025, time.April, 12, 0, 0, 0, 0, time.UTC)
	output, err := uc.Execute(context.Background(), ImportStatementInput{
		UserID: userID,
		Origin: "C6",
		Transactions: []entity.NormalizedTransaction{
			candidate("SALDO ANTERIOR", "-1320.00", importDate),
			candidate("PADARIA DO ZE", "-45.00", importDate),
		},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if output.Imported != 2 || output.Linked != 1 {
		t.Errorf("output = %+v, want 2 imported and 1 linked", output)
	}

	linked := billPaymentRepo.payments[payment.ID]
	if !linked.IsLinked() {
		t.Fatal("bill payment not linked")
	}
	if linked.InterestRate == nil || !linked.InterestRate.Equal(dec("10")) {
		t.Errorf("InterestRate = %v, want 10", linked.InterestRate)
	}
	if _, ok := transactionRepo.transactions[placeholder.ID]; ok {
		t.Error("carryover placeholder must be removed after linking")
	}

	// The imported carryover line itself stays.
	found := false
	for _, txn := range transactionRepo.transactions {
		if txn.Description == "SALDO ANTERIOR" {
			found = true
		}
	}
	if !found {
		t.Error("imported carryover transaction missing")
	}
}

func TestImportStatementCarryoverWithoutMatch(t *testing.T) {
	transactionRepo := newFakeTransactionRepo()
	billPaymentRepo := newFakeBillPaymentRepo()
	finder := reconciliation.NewFindMatchingUseCase(billPaymentRepo)
	linker := reconciliation.NewLinkCarryoverUseCase(billPaymentRepo, transactionRepo)
	uc := NewImportStatementUseCase(transactionRepo, finder, linker)

	importDate := time.Date(2025, time.April, 12, 0, 0, 0, 0, time.UTC)
	output, err := uc.Execute(context.Background(), ImportStatementInput{
		UserID: uuid.New(),
		Origin: "C6",
		Transactions: []entity.NormalizedTransaction{
			candidate("SALDO ANTERIOR", "-1320.00", importDate),
		},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	// The line still imports even when no payment matches.
	if output.Imported != 1 || output.Linked != 0 {
		t.Errorf("output = %+v, want 1 imported and 0 linked", output)
	}
}
