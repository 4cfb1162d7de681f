// Package categoryrule contains the auto-categorization rule use cases.
package categoryrule

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/meubolso/backend/internal/application/adapter"
	"github.com/meubolso/backend/internal/domain/entity"
	domainerror "github.com/meubolso/backend/internal/domain/error"
)

// UpdateRuleInput represents the input for updating a category rule.
// Nil fields keep their stored values.
type UpdateRuleInput struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CategoryID *uuid.UUID
	Keywords   []string
	Priority   *int
	IsActive   *bool
}

// UpdateRuleOutput represents the output of a category rule update.
type UpdateRuleOutput struct {
	Rule *entity.CategoryRule
}

// UpdateRuleUseCase updates a category rule and drops the user's rule cache.
type UpdateRuleUseCase struct {
	ruleRepo     adapter.CategoryRuleRepository
	categoryRepo adapter.CategoryRepository
	cache        adapter.RuleCache
}

// NewUpdateRuleUseCase creates a new UpdateRuleUseCase instance.
func NewUpdateRuleUseCase(
	ruleRepo adapter.CategoryRuleRepository,
	categoryRepo adapter.CategoryRepository,
	cache adapter.RuleCache,
) *UpdateRuleUseCase {
	return &UpdateRuleUseCase{
		ruleRepo:     ruleRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// Execute applies the partial update to the rule.
func (uc *UpdateRuleUseCase) Execute(ctx context.Context, input UpdateRuleInput) (*UpdateRuleOutput, error) {
	rule, err := uc.ruleRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if rule.UserID != input.UserID {
		return nil, domainerror.NewCategoryRuleError(
			domainerror.ErrCodeNotAuthorizedRule,
			"rule belongs to another user",
			domainerror.ErrNotAuthorizedToModifyRule,
		)
	}

	if input.CategoryID != nil {
		if _, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
			return nil, domainerror.NewCategoryRuleError(
				domainerror.ErrCodeCategoryNotFoundForRule,
				"rule references an unknown category",
				domainerror.ErrCategoryNotFoundForRule,
			)
		}
		rule.CategoryID = *input.CategoryID
	}

	if input.Keywords != nil {
		keywords := normalizeKeywords(input.Keywords)
		if len(keywords) == 0 {
			return nil, domainerror.NewCategoryRuleError(
				domainerror.ErrCodeMissingRuleFields,
				"at least one non-empty keyword is required",
				domainerror.ErrCategoryRuleMissingFields,
			)
		}
		rule.Keywords = keywords
	}

	if input.Priority != nil {
		rule.Priority = *input.Priority
	}
	if input.IsActive != nil {
		rule.IsActive = *input.IsActive
	}
	rule.UpdatedAt = time.Now().UTC()

	if err := uc.ruleRepo.Update(ctx, rule); err != nil {
		return nil, err
	}

	invalidateRules(ctx, uc.cache, input.UserID)

	slog.Info("Category rule updated", "ruleID", rule.ID, "userID", input.UserID)

	return &UpdateRuleOutput{Rule: rule}, nil
}
