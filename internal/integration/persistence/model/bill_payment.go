// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/meubolso/backend/internal/domain/entity"
)

// BillPaymentModel represents the bill_payments table in the database.
type BillPaymentModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	BillMonth       int             `gorm:"type:integer;not null;index:idx_bill_payments_period"`
	BillYear        int             `gorm:"type:integer;not null;index:idx_bill_payments_period"`
	Origin          string          `gorm:"type:varchar(100);not null;index:idx_bill_payments_period"`
	TotalBillAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	AmountPaid      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	AmountCarried   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PaymentType     string          `gorm:"type:varchar(10);not null"`
	InterestRate    *decimal.Decimal `gorm:"type:decimal(8,2)"`
	InterestAmount  *decimal.Decimal `gorm:"type:decimal(15,2)"`

	EntryTransactionID     uuid.UUID  `gorm:"type:uuid;not null"`
	CarryoverTransactionID *uuid.UUID `gorm:"type:uuid"`
	InstallmentID          *uuid.UUID `gorm:"type:uuid"`
	LinkedTransactionID    *uuid.UUID `gorm:"type:uuid;index"`

	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the BillPaymentModel.
func (BillPaymentModel) TableName() string {
	return "bill_payments"
}

// ToEntity converts a BillPaymentModel to a domain BillPayment entity.
func (m *BillPaymentModel) ToEntity() *entity.BillPayment {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.BillPayment{
		ID:                     m.ID,
		UserID:                 m.UserID,
		BillMonth:              m.BillMonth,
		BillYear:               m.BillYear,
		Origin:                 m.Origin,
		TotalBillAmount:        m.TotalBillAmount,
		AmountPaid:             m.AmountPaid,
		AmountCarried:          m.AmountCarried,
		PaymentType:            entity.PaymentType(m.PaymentType),
		InterestRate:           m.InterestRate,
		InterestAmount:         m.InterestAmount,
		EntryTransactionID:     m.EntryTransactionID,
		CarryoverTransactionID: m.CarryoverTransactionID,
		InstallmentID:          m.InstallmentID,
		LinkedTransactionID:    m.LinkedTransactionID,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
		DeletedAt:              deletedAt,
	}
}

// BillPaymentFromEntity creates a BillPaymentModel from a domain BillPayment entity.
func BillPaymentFromEntity(payment *entity.BillPayment) *BillPaymentModel {
	var deletedAt gorm.DeletedAt
	if payment.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *payment.DeletedAt, Valid: true}
	}

	return &BillPaymentModel{
		ID:                     payment.ID,
		UserID:                 payment.UserID,
		BillMonth:              payment.BillMonth,
		BillYear:               payment.BillYear,
		Origin:                 payment.Origin,
		TotalBillAmount:        payment.TotalBillAmount,
		AmountPaid:             payment.AmountPaid,
		AmountCarried:          payment.AmountCarried,
		PaymentType:            string(payment.PaymentType),
		InterestRate:           payment.InterestRate,
		InterestAmount:         payment.InterestAmount,
		EntryTransactionID:     payment.EntryTransactionID,
		CarryoverTransactionID: payment.CarryoverTransactionID,
		InstallmentID:          payment.InstallmentID,
		LinkedTransactionID:    payment.LinkedTransactionID,
		CreatedAt:              payment.CreatedAt,
		UpdatedAt:              payment.UpdatedAt,
		DeletedAt:              deletedAt,
	}
}
