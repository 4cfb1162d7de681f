// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/meubolso/backend/internal/domain/entity"
)

// InstallmentModel represents the installments table in the database.
type InstallmentModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description       string          `gorm:"type:varchar(255);not null"`
	TotalAmount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalInstallments int             `gorm:"type:integer;not null"`
	InstallmentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	StartDate         time.Time       `gorm:"type:timestamp;not null"`
	Origin            string          `gorm:"type:varchar(100);not null"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
	DeletedAt         gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the InstallmentModel.
func (InstallmentModel) TableName() string {
	return "installments"
}

// ToEntity converts an InstallmentModel to a domain Installment entity.
func (m *InstallmentModel) ToEntity() *entity.Installment {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Installment{
		ID:                m.ID,
		UserID:            m.UserID,
		Description:       m.Description,
		TotalAmount:       m.TotalAmount,
		TotalInstallments: m.TotalInstallments,
		InstallmentAmount: m.InstallmentAmount,
		StartDate:         m.StartDate,
		Origin:            m.Origin,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
		DeletedAt:         deletedAt,
	}
}

// InstallmentFromEntity creates an InstallmentModel from a domain Installment entity.
func InstallmentFromEntity(installment *entity.Installment) *InstallmentModel {
	var deletedAt gorm.DeletedAt
	if installment.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *installment.DeletedAt, Valid: true}
	}

	return &InstallmentModel{
		ID:                installment.ID,
		UserID:            installment.UserID,
		Description:       installment.Description,
		TotalAmount:       installment.TotalAmount,
		TotalInstallments: installment.TotalInstallments,
		InstallmentAmount: installment.InstallmentAmount,
		StartDate:         installment.StartDate,
		Origin:            installment.Origin,
		CreatedAt:         installment.CreatedAt,
		UpdatedAt:         installment.UpdatedAt,
		DeletedAt:         deletedAt,
	}
}
