// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/meubolso/backend/internal/application/adapter"
	"github.com/meubolso/backend/internal/domain/entity"
	domainerror "github.com/meubolso/backend/internal/domain/error"
	"github.com/meubolso/backend/internal/integration/persistence/model"
)

// billPaymentRepository implements the adapter.BillPaymentRepository interface.
type billPaymentRepository struct {
	db *gorm.DB
}

// NewBillPaymentRepository creates a new bill payment repository instance.
func NewBillPaymentRepository(db *gorm.DB) adapter.BillPaymentRepository {
	return &billPaymentRepository{
		db: db,
	}
}

// Create creates a new bill payment in the database.
func (r *billPaymentRepository) Create(ctx context.Context, payment *entity.BillPayment) error {
	paymentModel := model.BillPaymentFromEntity(payment)
	result := r.db.WithContext(ctx).Create(paymentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a bill payment by its ID with ownership check.
func (r *billPaymentRepository) FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.BillPayment, error) {
	var paymentModel model.BillPaymentModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&paymentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBillPaymentNotFound
		}
		return nil, result.Error
	}
	return paymentModel.ToEntity(), nil
}

// FindByUser retrieves all bill payments for a user matching the filter.
func (r *billPaymentRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter adapter.BillPaymentFilter) ([]*entity.BillPayment, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if filter.BillMonth != nil {
		query = query.Where("bill_month = ?", *filter.BillMonth)
	}
	if filter.BillYear != nil {
		query = query.Where("bill_year = ?", *filter.BillYear)
	}
	if filter.Origin != nil {
		query = query.Where("origin = ?", *filter.Origin)
	}

	var paymentModels []model.BillPaymentModel
	result := query.
		Order("bill_year DESC, bill_month DESC, created_at DESC").
		Find(&paymentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	payments := make([]*entity.BillPayment, len(paymentModels))
	for i, pm := range paymentModels {
		payments[i] = pm.ToEntity()
	}
	return payments, nil
}

// FindUnlinkedByPeriod retrieves unlinked bill payments for the exact period
// whose carried amount falls within [minAmount, maxAmount].
func (r *billPaymentRepository) FindUnlinkedByPeriod(
	ctx context.Context,
	userID uuid.UUID,
	origin string,
	billMonth int,
	billYear int,
	minAmount decimal.Decimal,
	maxAmount decimal.Decimal,
) ([]*entity.BillPayment, error) {
	var paymentModels []model.BillPaymentModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND origin = ? AND bill_month = ? AND bill_year = ?", userID, origin, billMonth, billYear).
		Where("linked_transaction_id IS NULL").
		Where("amount_carried >= ? AND amount_carried <= ?", minAmount, maxAmount).
		Order("created_at DESC").
		Find(&paymentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	payments := make([]*entity.BillPayment, len(paymentModels))
	for i, pm := range paymentModels {
		payments[i] = pm.ToEntity()
	}
	return payments, nil
}

// ExistsUnlinkedByPeriod checks whether an unlinked bill payment already
// exists for the (origin, billMonth, billYear) period.
func (r *billPaymentRepository) ExistsUnlinkedByPeriod(ctx context.Context, userID uuid.UUID, origin string, billMonth, billYear int) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.BillPaymentModel{}).
		Where("user_id = ? AND origin = ? AND bill_month = ? AND bill_year = ?", userID, origin, billMonth, billYear).
		Where("linked_transaction_id IS NULL").
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing bill payment in the database.
func (r *billPaymentRepository) Update(ctx context.Context, payment *entity.BillPayment) error {
	paymentModel := model.BillPaymentFromEntity(payment)
	result := r.db.WithContext(ctx).
		Model(&model.BillPaymentModel{}).
		Where("id = ? AND user_id = ?", payment.ID, payment.UserID).
		Updates(paymentModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBillPaymentNotFound
	}
	return nil
}

// Delete soft-deletes a bill payment.
func (r *billPaymentRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.BillPaymentModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBillPaymentNotFound
	}
	return nil
}
