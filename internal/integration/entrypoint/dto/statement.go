// Package dto defines request and response payloads for the API endpoints.
package dto

import (
	"github.com/meubolso/backend/internal/domain/entity"
)

// ParseCSVRequest is the request body for POST /statements/csv/parse.
type ParseCSVRequest struct {
	Origin  string `json:"origin" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// ParseOCRRequest is the request body for POST /statements/ocr/parse.
type ParseOCRRequest struct {
	Origin     string  `json:"origin" binding:"required"`
	Text       string  `json:"text" binding:"required"`
	Confidence float64 `json:"confidence"`
}

// NormalizedTransactionResponse is one parsed statement line.
type NormalizedTransactionResponse struct {
	Description         string   `json:"description"`
	Amount              string   `json:"amount"`
	Date                string   `json:"date"`
	Type                string   `json:"type"`
	SuggestedCategoryID *string  `json:"suggestedCategoryId,omitempty"`
	TransactionKind     string   `json:"transactionKind,omitempty"`
	IsInstallment       bool     `json:"isInstallment"`
	InstallmentCurrent  *int     `json:"installmentCurrent,omitempty"`
	InstallmentTotal    *int     `json:"installmentTotal,omitempty"`
	IsRecurring         bool     `json:"isRecurring"`
	RecurringName       string   `json:"recurringName,omitempty"`
	Confidence          *float64 `json:"confidence,omitempty"`
}

// ParseCSVResponse is the response body for CSV parsing.
type ParseCSVResponse struct {
	Dialect      string                          `json:"dialect"`
	Transactions []NormalizedTransactionResponse `json:"transactions"`
	SkippedRows  int                             `json:"skippedRows"`
}

// ParseOCRResponse is the response body for OCR parsing.
type ParseOCRResponse struct {
	Bank              string                          `json:"bank"`
	IsInvoice         bool                            `json:"isInvoice"`
	Transactions      []NormalizedTransactionResponse `json:"transactions"`
	AverageConfidence float64                         `json:"averageConfidence"`
}

// ImportTransactionRequest is one candidate to persist.
type ImportTransactionRequest struct {
	Description         string   `json:"description" binding:"required"`
	Amount              string   `json:"amount" binding:"required"`
	Date                string   `json:"date" binding:"required"`
	Type                string   `json:"type" binding:"required"`
	SuggestedCategoryID *string  `json:"suggestedCategoryId"`
	TransactionKind     string   `json:"transactionKind"`
	IsInstallment       bool     `json:"isInstallment"`
	InstallmentCurrent  *int     `json:"installmentCurrent"`
	InstallmentTotal    *int     `json:"installmentTotal"`
	IsRecurring         bool     `json:"isRecurring"`
	RecurringName       string   `json:"recurringName"`
	Confidence          *float64 `json:"confidence"`
}

// ImportStatementRequest is the request body for POST /statements/import.
type ImportStatementRequest struct {
	Origin       string                     `json:"origin" binding:"required"`
	Transactions []ImportTransactionRequest `json:"transactions" binding:"required"`
}

// ImportStatementResponse is the response body for a statement import.
type ImportStatementResponse struct {
	Imported int `json:"imported"`
	Linked   int `json:"linked"`
	Skipped  int `json:"skipped"`
}

// ToNormalizedTransactionResponse converts one candidate to its DTO.
func ToNormalizedTransactionResponse(txn entity.NormalizedTransaction) NormalizedTransactionResponse {
	resp := NormalizedTransactionResponse{
		Description:        txn.Description,
		Amount:             txn.Amount.String(),
		Date:               txn.Date.Format("2006-01-02"),
		Type:               string(txn.Type),
		TransactionKind:    txn.TransactionKind,
		IsInstallment:      txn.IsInstallment,
		InstallmentCurrent: txn.InstallmentCurrent,
		InstallmentTotal:   txn.InstallmentTotal,
		IsRecurring:        txn.IsRecurring,
		RecurringName:      txn.RecurringName,
		Confidence:         txn.Confidence,
	}
	if txn.SuggestedCategoryID != nil {
		id := txn.SuggestedCategoryID.String()
		resp.SuggestedCategoryID = &id
	}
	return resp
}

// ToNormalizedTransactionListResponse converts a candidate slice to DTOs.
func ToNormalizedTransactionListResponse(txns []entity.NormalizedTransaction) []NormalizedTransactionResponse {
	out := make([]NormalizedTransactionResponse, len(txns))
	for i, txn := range txns {
		out[i] = ToNormalizedTransactionResponse(txn)
	}
	return out
}
