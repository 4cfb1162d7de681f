// Package dto defines request and response payloads for the API endpoints.
package dto

import (
	"github.com/meubolso/backend/internal/domain/entity"
)

// CreateCategoryRuleRequest is the request body for POST /category-rules.
type CreateCategoryRuleRequest struct {
	CategoryID string   `json:"categoryId" binding:"required"`
	Keywords   []string `json:"keywords" binding:"required"`
	Priority   *int     `json:"priority"`
}

// UpdateCategoryRuleRequest is the request body for PATCH /category-rules/:id.
// Nil fields keep their stored values.
type UpdateCategoryRuleRequest struct {
	CategoryID *string  `json:"categoryId"`
	Keywords   []string `json:"keywords"`
	Priority   *int     `json:"priority"`
	IsActive   *bool    `json:"isActive"`
}

// CategoryRuleResponse is one category rule.
type CategoryRuleResponse struct {
	ID         string   `json:"id"`
	CategoryID string   `json:"categoryId"`
	Keywords   []string `json:"keywords"`
	Priority   int      `json:"priority"`
	IsActive   bool     `json:"isActive"`
	CreatedAt  string   `json:"createdAt"`
}

// CategoryRuleListResponse is the response body for GET /category-rules.
type CategoryRuleListResponse struct {
	Rules []CategoryRuleResponse `json:"rules"`
}

// ToCategoryRuleResponse converts a domain CategoryRule entity to its DTO.
func ToCategoryRuleResponse(rule *entity.CategoryRule) CategoryRuleResponse {
	return CategoryRuleResponse{
		ID:         rule.ID.String(),
		CategoryID: rule.CategoryID.String(),
		Keywords:   rule.Keywords,
		Priority:   rule.Priority,
		IsActive:   rule.IsActive,
		CreatedAt:  rule.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToCategoryRuleListResponse converts a CategoryRule slice to the list DTO.
func ToCategoryRuleListResponse(rules []*entity.CategoryRule) CategoryRuleListResponse {
	out := make([]CategoryRuleResponse, len(rules))
	for i, rule := range rules {
		out[i] = ToCategoryRuleResponse(rule)
	}
	return CategoryRuleListResponse{Rules: out}
}
