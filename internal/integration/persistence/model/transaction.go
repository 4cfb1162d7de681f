// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/meubolso/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date               time.Time       `gorm:"type:timestamp;not null;index"`
	Description        string          `gorm:"type:varchar(255);not null"`
	Amount             decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type               string          `gorm:"type:varchar(10);not null;index"`
	CategoryID         *uuid.UUID      `gorm:"type:uuid;index"`
	Origin             string          `gorm:"type:varchar(100);not null;index"`
	TransactionKind    string          `gorm:"type:varchar(30)"`
	IsInstallment      bool            `gorm:"default:false"`
	InstallmentCurrent *int            `gorm:"type:integer"`
	InstallmentTotal   *int            `gorm:"type:integer"`
	InstallmentID      *uuid.UUID      `gorm:"type:uuid;index"`
	IsRecurring        bool            `gorm:"default:false"`
	RecurringName      string          `gorm:"type:varchar(100)"`
	CreatedAt          time.Time       `gorm:"not null"`
	UpdatedAt          time.Time       `gorm:"not null"`
	DeletedAt          gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	Category    *CategoryModel    `gorm:"foreignKey:CategoryID;references:ID"`
	Installment *InstallmentModel `gorm:"foreignKey:InstallmentID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Transaction{
		ID:                 m.ID,
		UserID:             m.UserID,
		Date:               m.Date,
		Description:        m.Description,
		Amount:             m.Amount,
		Type:               entity.TransactionType(m.Type),
		CategoryID:         m.CategoryID,
		Origin:             m.Origin,
		TransactionKind:    m.TransactionKind,
		IsInstallment:      m.IsInstallment,
		InstallmentCurrent: m.InstallmentCurrent,
		InstallmentTotal:   m.InstallmentTotal,
		InstallmentID:      m.InstallmentID,
		IsRecurring:        m.IsRecurring,
		RecurringName:      m.RecurringName,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
		DeletedAt:          deletedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	var deletedAt gorm.DeletedAt
	if transaction.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *transaction.DeletedAt, Valid: true}
	}

	return &TransactionModel{
		ID:                 transaction.ID,
		UserID:             transaction.UserID,
		Date:               transaction.Date,
		Description:        transaction.Description,
		Amount:             transaction.Amount,
		Type:               string(transaction.Type),
		CategoryID:         transaction.CategoryID,
		Origin:             transaction.Origin,
		TransactionKind:    transaction.TransactionKind,
		IsInstallment:      transaction.IsInstallment,
		InstallmentCurrent: transaction.InstallmentCurrent,
		InstallmentTotal:   transaction.InstallmentTotal,
		InstallmentID:      transaction.InstallmentID,
		IsRecurring:        transaction.IsRecurring,
		RecurringName:      transaction.RecurringName,
		CreatedAt:          transaction.CreatedAt,
		UpdatedAt:          transaction.UpdatedAt,
		DeletedAt:          deletedAt,
	}
}
