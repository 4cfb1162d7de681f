// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/meubolso/backend/internal/application/usecase/statement"
	"github.com/meubolso/backend/internal/application/usecase/transaction"
	"github.com/meubolso/backend/internal/domain/entity"
	domainerror "github.com/meubolso/backend/internal/domain/error"
	"github.com/meubolso/backend/internal/integration/entrypoint/dto"
	"github.com/meubolso/backend/internal/integration/entrypoint/middleware"
)

// StatementController handles statement parsing and import endpoints.
type StatementController struct {
	parseCSVUseCase *statement.ParseCSVUseCase
	parseOCRUseCase *statement.ParseOCRStatementUseCase
	importUseCase   *transaction.ImportStatementUseCase
}

// NewStatementController creates a new statement controller instance.
func NewStatementController(
	parseCSVUseCase *statement.ParseCSVUseCase,
	parseOCRUseCase *statement.ParseOCRStatementUseCase,
	importUseCase *transaction.ImportStatementUseCase,
) *StatementController {
	return &StatementController{
		parseCSVUseCase: parseCSVUseCase,
		parseOCRUseCase: parseOCRUseCase,
		importUseCase:   importUseCase,
	}
}

// ParseCSV handles POST /statements/csv/parse requests.
func (c *StatementController) ParseCSV(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.ParseCSVRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.parseCSVUseCase.Execute(ctx.Request.Context(), statement.ParseCSVInput{
		UserID:  userID,
		Origin:  req.Origin,
		Content: req.Content,
	})
	if err != nil {
		c.handleStatementError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ParseCSVResponse{
		Dialect:      output.Dialect,
		Transactions: dto.ToNormalizedTransactionListResponse(output.Transactions),
		SkippedRows:  output.SkippedRows,
	})
}

// ParseOCR handles POST /statements/ocr/parse requests.
func (c *StatementController) ParseOCR(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.ParseOCRRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.parseOCRUseCase.Execute(ctx.Request.Context(), statement.ParseOCRInput{
		UserID:     userID,
		Origin:     req.Origin,
		Text:       req.Text,
		Confidence: req.Confidence,
	})
	if err != nil {
		c.handleStatementError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ParseOCRResponse{
		Bank:              output.Bank,
		IsInvoice:         output.IsInvoice,
		Transactions:      dto.ToNormalizedTransactionListResponse(output.Transactions),
		AverageConfidence: output.AverageConfidence,
	})
}

// Import handles POST /statements/import requests.
func (c *StatementController) Import(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.ImportStatementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	candidates, err := toNormalizedTransactions(req.Transactions)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid transaction payload",
			Details: err.Error(),
		})
		return
	}

	output, err := c.importUseCase.Execute(ctx.Request.Context(), transaction.ImportStatementInput{
		UserID:       userID,
		Origin:       req.Origin,
		Transactions: candidates,
	})
	if err != nil {
		c.handleImportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ImportStatementResponse{
		Imported: output.Imported,
		Linked:   output.Linked,
		Skipped:  output.Skipped,
	})
}

// toNormalizedTransactions converts the request payload into candidates.
func toNormalizedTransactions(reqs []dto.ImportTransactionRequest) ([]entity.NormalizedTransaction, error) {
	candidates := make([]entity.NormalizedTransaction, len(reqs))
	for i, req := range reqs {
		amount, err := decimal.NewFromString(req.Amount)
		if err != nil {
			return nil, err
		}
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, err
		}

		candidate := entity.NormalizedTransaction{
			Description:        req.Description,
			Amount:             amount,
			Date:               date,
			Type:               entity.TransactionType(req.Type),
			TransactionKind:    req.TransactionKind,
			IsInstallment:      req.IsInstallment,
			InstallmentCurrent: req.InstallmentCurrent,
			InstallmentTotal:   req.InstallmentTotal,
			IsRecurring:        req.IsRecurring,
			RecurringName:      req.RecurringName,
			Confidence:         req.Confidence,
		}
		if req.SuggestedCategoryID != nil {
			categoryID, err := uuid.Parse(*req.SuggestedCategoryID)
			if err != nil {
				return nil, err
			}
			candidate.SuggestedCategoryID = &categoryID
		}
		candidates[i] = candidate
	}
	return candidates, nil
}

// handleStatementError maps statement parsing errors to HTTP responses.
func (c *StatementController) handleStatementError(ctx *gin.Context, err error) {
	var stmtErr *domainerror.StatementError
	if errors.As(err, &stmtErr) {
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error: stmtErr.Message,
			Code:  string(stmtErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Failed to parse statement",
	})
}

// handleImportError maps import errors to HTTP responses.
func (c *StatementController) handleImportError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Failed to import statement",
	})
}
