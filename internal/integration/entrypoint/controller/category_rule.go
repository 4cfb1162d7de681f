// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/meubolso/backend/internal/application/usecase/categoryrule"
	domainerror "github.com/meubolso/backend/internal/domain/error"
	"github.com/meubolso/backend/internal/integration/entrypoint/dto"
	"github.com/meubolso/backend/internal/integration/entrypoint/middleware"
)

// CategoryRuleController handles category rule endpoints.
type CategoryRuleController struct {
	createUseCase *categoryrule.CreateRuleUseCase
	listUseCase   *categoryrule.ListRulesUseCase
	updateUseCase *categoryrule.UpdateRuleUseCase
	deleteUseCase *categoryrule.DeleteRuleUseCase
}

// NewCategoryRuleController creates a new category rule controller instance.
func NewCategoryRuleController(
	createUseCase *categoryrule.CreateRuleUseCase,
	listUseCase *categoryrule.ListRulesUseCase,
	updateUseCase *categoryrule.UpdateRuleUseCase,
	deleteUseCase *categoryrule.DeleteRuleUseCase,
) *CategoryRuleController {
	return &CategoryRuleController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /category-rules requests.
func (c *CategoryRuleController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := categoryrule.ListRulesInput{
		UserID:     userID,
		ActiveOnly: ctx.Query("active_only") == "true",
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve category rules",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryRuleListResponse(output.Rules))
}

// Create handles POST /category-rules requests.
func (c *CategoryRuleController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateCategoryRuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingRuleFields),
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), categoryrule.CreateRuleInput{
		UserID:     userID,
		CategoryID: categoryID,
		Keywords:   req.Keywords,
		Priority:   req.Priority,
	})
	if err != nil {
		c.handleCategoryRuleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryRuleResponse(output.Rule))
}

// Update handles PATCH /category-rules/:id requests.
func (c *CategoryRuleController) Update(ctx *gin.Context) {
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
			Error: "Invalid rule ID format",
		})
		return
	}

	var req dto.UpdateCategoryRuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := categoryrule.UpdateRuleInput{
		ID:       id,
		UserID:   userID,
		Keywords: req.Keywords,
		Priority: req.Priority,
		IsActive: req.IsActive,
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
			})
			return
		}
		input.CategoryID = &categoryID
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryRuleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryRuleResponse(output.Rule))
}

// Delete handles DELETE /category-rules/:id requests.
func (c *CategoryRuleController) Delete(ctx *gin.Context) {
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
			Error: "Invalid rule ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), categoryrule.DeleteRuleInput{
		ID:     id,
		UserID: userID,
	}); err != nil {
		c.handleCategoryRuleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleCategoryRuleError maps category rule errors to HTTP responses.
func (c *CategoryRuleController) handleCategoryRuleError(ctx *gin.Context, err error) {
	var ruleErr *domainerror.CategoryRuleError
	if errors.As(err, &ruleErr) {
		status := http.StatusBadRequest
		switch ruleErr.Code {
		case domainerror.ErrCodeCategoryRuleNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeNotAuthorizedRule:
			status = http.StatusForbidden
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: ruleErr.Message,
			Code:  string(ruleErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrCategoryRuleNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Category rule not found",
			Code:  string(domainerror.ErrCodeCategoryRuleNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Failed to process category rule",
	})
}
