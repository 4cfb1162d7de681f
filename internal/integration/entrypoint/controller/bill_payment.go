// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/meubolso/backend/internal/application/usecase/billpayment"
	"github.com/meubolso/backend/internal/domain/entity"
	domainerror "github.com/meubolso/backend/internal/domain/error"
	"github.com/meubolso/backend/internal/integration/entrypoint/dto"
	"github.com/meubolso/backend/internal/integration/entrypoint/middleware"
)

// BillPaymentController handles bill payment endpoints.
type BillPaymentController struct {
	createUseCase *billpayment.CreatePaymentUseCase
	listUseCase   *billpayment.ListPaymentsUseCase
	getUseCase    *billpayment.GetPaymentUseCase
	updateUseCase *billpayment.UpdatePaymentUseCase
	deleteUseCase *billpayment.DeletePaymentUseCase
}

// NewBillPaymentController creates a new bill payment controller instance.
func NewBillPaymentController(
	createUseCase *billpayment.CreatePaymentUseCase,
	listUseCase *billpayment.ListPaymentsUseCase,
	getUseCase *billpayment.GetPaymentUseCase,
	updateUseCase *billpayment.UpdatePaymentUseCase,
	deleteUseCase *billpayment.DeletePaymentUseCase,
) *BillPaymentController {
	return &BillPaymentController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /bill-payments requests.
func (c *BillPaymentController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateBillPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	totalBillAmount, amountPaid, interestRate, err := parsePaymentAmounts(req.TotalBillAmount, req.AmountPaid, req.InterestRate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid amount format",
			Details: err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), billpayment.CreatePaymentInput{
		UserID:          userID,
		BillMonth:       req.BillMonth,
		BillYear:        req.BillYear,
		Origin:          req.Origin,
		TotalBillAmount: totalBillAmount,
		AmountPaid:      amountPaid,
		PaymentType:     entity.PaymentType(req.PaymentType),
		InterestRate:    interestRate,
		Installments:    req.Installments,
	})
	if err != nil {
		c.handleBillPaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBillPaymentResponse(output.BillPayment))
}

// List handles GET /bill-payments requests.
func (c *BillPaymentController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := billpayment.ListPaymentsInput{UserID: userID}
	if month := ctx.Query("bill_month"); month != "" {
		if value, err := strconv.Atoi(month); err == nil {
			input.BillMonth = &value
		}
	}
	if year := ctx.Query("bill_year"); year != "" {
		if value, err := strconv.Atoi(year); err == nil {
			input.BillYear = &value
		}
	}
	if origin := ctx.Query("origin"); origin != "" {
		input.Origin = &origin
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve bill payments",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillPaymentListResponse(output.BillPayments))
}

// Get handles GET /bill-payments/:id requests.
func (c *BillPaymentController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid bill payment ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), billpayment.GetPaymentInput{
		ID:     id,
		UserID: userID,
	})
	if err != nil {
		c.handleBillPaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillPaymentResponse(output.BillPayment))
}

// Update handles PATCH /bill-payments/:id requests.
func (c *BillPaymentController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid bill payment ID format",
		})
		return
	}

	var req dto.UpdateBillPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	totalBillAmount, amountPaid, interestRate, err := parsePaymentAmounts(req.TotalBillAmount, req.AmountPaid, req.InterestRate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid amount format",
			Details: err.Error(),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), billpayment.UpdatePaymentInput{
		ID:              id,
		UserID:          userID,
		TotalBillAmount: totalBillAmount,
		AmountPaid:      amountPaid,
		PaymentType:     entity.PaymentType(req.PaymentType),
		InterestRate:    interestRate,
		Installments:    req.Installments,
	})
	if err != nil {
		c.handleBillPaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillPaymentResponse(output.BillPayment))
}

// Delete handles DELETE /bill-payments/:id requests.
func (c *BillPaymentController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid bill payment ID format",
		})
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), billpayment.DeletePaymentInput{
		ID:     id,
		UserID: userID,
	}); err != nil {
		c.handleBillPaymentError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parsePaymentAmounts parses the decimal string fields of a payment request.
func parsePaymentAmounts(totalRaw, paidRaw string, rateRaw *string) (total, paid decimal.Decimal, rate *decimal.Decimal, err error) {
	total, err = decimal.NewFromString(totalRaw)
	if err != nil {
		return decimal.Zero, decimal.Zero, nil, err
	}
	paid, err = decimal.NewFromString(paidRaw)
	if err != nil {
		return decimal.Zero, decimal.Zero, nil, err
	}
	if rateRaw != nil {
		parsed, rateErr := decimal.NewFromString(*rateRaw)
		if rateErr != nil {
			return decimal.Zero, decimal.Zero, nil, rateErr
		}
		rate = &parsed
	}
	return total, paid, rate, nil
}

// handleBillPaymentError maps bill payment errors to HTTP responses.
func (c *BillPaymentController) handleBillPaymentError(ctx *gin.Context, err error) {
	var bpErr *domainerror.BillPaymentError
	if errors.As(err, &bpErr) {
		status := http.StatusBadRequest
		switch bpErr.Code {
		case domainerror.ErrCodeBillPaymentNotFound, domainerror.ErrCodeInstallmentNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeDuplicateBillPayment, domainerror.ErrCodeBillPaymentLinked:
			status = http.StatusConflict
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: bpErr.Message,
			Code:  string(bpErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrBillPaymentNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Bill payment not found",
			Code:  string(domainerror.ErrCodeBillPaymentNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Failed to process bill payment",
	})
}
