// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction.
type TransactionType string

const (
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeTransfer TransactionType = "transfer"
)

// Transaction represents a financial transaction in the Meu Bolso system.
type Transaction struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	Date               time.Time
	Description        string
	Amount             decimal.Decimal // Negative for expenses, positive for income
	Type               TransactionType
	CategoryID         *uuid.UUID // Optional, can be uncategorized
	Origin             string     // Card or bank account the transaction came from
	TransactionKind    string     // e.g. "PIX_RECEBIDO", "BOLETO"
	IsInstallment      bool
	InstallmentCurrent *int
	InstallmentTotal   *int
	InstallmentID      *uuid.UUID // Set when the transaction belongs to a financing plan
	IsRecurring        bool
	RecurringName      string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	date time.Time,
	description string,
	amount decimal.Decimal,
	transactionType TransactionType,
	origin string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        date,
		Description: description,
		Amount:      amount,
		Type:        transactionType,
		Origin:      origin,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NormalizedTransaction is a parsed statement line that has not been persisted yet.
// Parsers produce it; the statement import use case turns it into a Transaction.
type NormalizedTransaction struct {
	Description         string
	Amount              decimal.Decimal // Negative = expense, positive = income
	Date                time.Time
	Type                TransactionType
	IsInstallment       bool
	InstallmentCurrent  *int
	InstallmentTotal    *int
	SuggestedCategoryID *uuid.UUID
	TransactionKind     string
	IsRecurring         bool
	RecurringName       string
	Confidence          *float64 // OCR only, 0-100
}
