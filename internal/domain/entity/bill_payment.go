// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentType represents how a credit card bill was paid.
type PaymentType string

const (
	// PaymentTypePartial pays part of the bill and rolls the remainder into next month.
	PaymentTypePartial PaymentType = "partial"
	// PaymentTypeFinanced pays part of the bill and splits the remainder into installments.
	PaymentTypeFinanced PaymentType = "financed"
)

// IsValid reports whether the payment type is one of the known values.
func (t PaymentType) IsValid() bool {
	return t == PaymentTypePartial || t == PaymentTypeFinanced
}

// BillPayment represents one user decision to pay a specific origin's credit card
// bill for one billing month. It owns the transactions and installment plan it
// generated; deleting it cascades to them.
//
// At most one unlinked BillPayment may exist per (user, origin, billMonth, billYear).
// The creating use case enforces this; the carryover reconciler relies on it.
type BillPayment struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	BillMonth       int // 1-12
	BillYear        int
	Origin          string
	TotalBillAmount decimal.Decimal
	AmountPaid      decimal.Decimal
	AmountCarried   decimal.Decimal // Invariant: TotalBillAmount - AmountPaid
	PaymentType     PaymentType
	InterestRate    *decimal.Decimal // Percent, e.g. 10 = 10%
	InterestAmount  *decimal.Decimal

	EntryTransactionID     uuid.UUID
	CarryoverTransactionID *uuid.UUID // Partial only: placeholder expense in the next month
	InstallmentID          *uuid.UUID // Financed only
	LinkedTransactionID    *uuid.UUID // Set once a later import's carryover line is matched

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// IsLinked reports whether a carryover line from a later statement import has
// already been matched to this payment.
func (b *BillPayment) IsLinked() bool {
	return b.LinkedTransactionID != nil
}
