// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Installment represents a financing plan: N equal monthly payments for a
// financed purchase or a financed bill remainder. It owns the N generated
// expense transactions tagged with its ID.
type Installment struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Description       string
	TotalAmount       decimal.Decimal
	TotalInstallments int
	InstallmentAmount decimal.Decimal
	StartDate         time.Time
	Origin            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time
}

// NewInstallment creates a new Installment entity.
func NewInstallment(
	userID uuid.UUID,
	description string,
	totalAmount decimal.Decimal,
	totalInstallments int,
	installmentAmount decimal.Decimal,
	startDate time.Time,
	origin string,
) *Installment {
	now := time.Now().UTC()

	return &Installment{
		ID:                uuid.New(),
		UserID:            userID,
		Description:       description,
		TotalAmount:       totalAmount,
		TotalInstallments: totalInstallments,
		InstallmentAmount: installmentAmount,
		StartDate:         startDate,
		Origin:            origin,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
