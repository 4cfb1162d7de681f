package billpayment

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/meubolso/backend/internal/application/adapter"
	"github.com/meubolso/backend/internal/domain/entity"
	domainerror "github.com/meubolso/backend/internal/domain/error"
)

// In-memory fakes for the repository adapters.

type fakeTransactionRepo struct {
	transactions map[uuid.UUID]*entity.Transaction
	createErr    error
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{transactions: make(map[uuid.UUID]*entity.Transaction)}
}

func (r *fakeTransactionRepo) Create(_ context.Context, txn *entity.Transaction) error {
	if r.createErr != nil {
		return r.createErr
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

func (r *fakeBillPaymentRepo) FindByUser(_ context.Context, userID uuid.UUID, filter adapter.BillPaymentFilter) ([]*entity.BillPayment, error) {
	var out []*entity.BillPayment
	for _, payment := range r.payments {
		if payment.UserID != userID {
			continue
		}
		if filter.BillMonth != nil && payment.BillMonth != *filter.BillMonth {
			continue
		}
		if filter.BillYear != nil && payment.BillYear != *filter.BillYear {
			continue
		}
		if filter.Origin != nil && payment.Origin != *filter.Origin {
			continue
		}
		out = append(out, payment)
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
	// Creation time descending, matching the repository contract.
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].CreatedAt.After(out[i].CreatedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
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

type fakeInstallmentRepo struct {
	installments map[uuid.UUID]*entity.Installment
}

func newFakeInstallmentRepo() *fakeInstallmentRepo {
	return &fakeInstallmentRepo{installments: make(map[uuid.UUID]*entity.Installment)}
}

func (r *fakeInstallmentRepo) Create(_ context.Context, installment *entity.Installment) error {
	r.installments[installment.ID] = installment
	return nil
}

func (r *fakeInstallmentRepo) FindByID(_ context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Installment, error) {
	installment, ok := r.installments[id]
	if !ok || installment.UserID != userID {
		return nil, domainerror.ErrInstallmentNotFound
	}
	return installment, nil
}

func (r *fakeInstallmentRepo) Delete(_ context.Context, id uuid.UUID, userID uuid.UUID) error {
	installment, ok := r.installments[id]
	if !ok || installment.UserID != userID {
		return domainerror.ErrInstallmentNotFound
	}
	delete(r.installments, id)
	return nil
}
