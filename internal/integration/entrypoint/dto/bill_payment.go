// Package dto defines request and response payloads for the API endpoints.
package dto

import (
	"github.com/meubolso/backend/internal/domain/entity"
)

// CreateBillPaymentRequest is the request body for POST /bill-payments.
type CreateBillPaymentRequest struct {
	BillMonth       int     `json:"billMonth" binding:"required"`
	BillYear        int     `json:"billYear" binding:"required"`
	Origin          string  `json:"origin" binding:"required"`
	TotalBillAmount string  `json:"totalBillAmount" binding:"required"`
	AmountPaid      string  `json:"amountPaid" binding:"required"`
	PaymentType     string  `json:"paymentType" binding:"required"`
	InterestRate    *string `json:"interestRate"`
	Installments    *int    `json:"installments"`
}

// UpdateBillPaymentRequest is the request body for PATCH /bill-payments/:id.
type UpdateBillPaymentRequest struct {
	TotalBillAmount string  `json:"totalBillAmount" binding:"required"`
	AmountPaid      string  `json:"amountPaid" binding:"required"`
	PaymentType     string  `json:"paymentType" binding:"required"`
	InterestRate    *string `json:"interestRate"`
	Installments    *int    `json:"installments"`
}

// BillPaymentResponse is one bill payment.
type BillPaymentResponse struct {
	ID              string  `json:"id"`
	BillMonth       int     `json:"billMonth"`
	BillYear        int     `json:"billYear"`
	Origin          string  `json:"origin"`
	TotalBillAmount string  `json:"totalBillAmount"`
	AmountPaid      string  `json:"amountPaid"`
	AmountCarried   string  `json:"amountCarried"`
	PaymentType     string  `json:"paymentType"`
	InterestRate    *string `json:"interestRate,omitempty"`
	InterestAmount  *string `json:"interestAmount,omitempty"`
	Linked          bool    `json:"linked"`
	CreatedAt       string  `json:"createdAt"`
}

// BillPaymentListResponse is the response body for GET /bill-payments.
type BillPaymentListResponse struct {
	BillPayments []BillPaymentResponse `json:"billPayments"`
}

// ToBillPaymentResponse converts a domain BillPayment entity to its DTO.
func ToBillPaymentResponse(payment *entity.BillPayment) BillPaymentResponse {
	resp := BillPaymentResponse{
		ID:              payment.ID.String(),
		BillMonth:       payment.BillMonth,
		BillYear:        payment.BillYear,
		Origin:          payment.Origin,
		TotalBillAmount: payment.TotalBillAmount.String(),
		AmountPaid:      payment.AmountPaid.String(),
		AmountCarried:   payment.AmountCarried.String(),
		PaymentType:     string(payment.PaymentType),
		Linked:          payment.IsLinked(),
		CreatedAt:       payment.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if payment.InterestRate != nil {
		rate := payment.InterestRate.String()
		resp.InterestRate = &rate
	}
	if payment.InterestAmount != nil {
		amount := payment.InterestAmount.String()
		resp.InterestAmount = &amount
	}
	return resp
}

// ToBillPaymentListResponse converts a BillPayment slice to the list DTO.
func ToBillPaymentListResponse(payments []*entity.BillPayment) BillPaymentListResponse {
	out := make([]BillPaymentResponse, len(payments))
	for i, payment := range payments {
		out[i] = ToBillPaymentResponse(payment)
	}
	return BillPaymentListResponse{BillPayments: out}
}
