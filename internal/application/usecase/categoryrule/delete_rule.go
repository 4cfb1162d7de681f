// Package categoryrule contains the auto-categorization rule use cases.
package categoryrule

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/meubolso/backend/internal/application/adapter"
	domainerror "github.com/meubolso/backend/internal/domain/error"
)

// DeleteRuleInput represents the input for deleting a category rule.
type DeleteRuleInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteRuleUseCase deletes a category rule and drops the user's rule cache.
type DeleteRuleUseCase struct {
	ruleRepo adapter.CategoryRuleRepository
	cache    adapter.RuleCache
}

// NewDeleteRuleUseCase creates a new DeleteRuleUseCase instance.
func NewDeleteRuleUseCase(ruleRepo adapter.CategoryRuleRepository, cache adapter.RuleCache) *DeleteRuleUseCase {
	return &DeleteRuleUseCase{
		ruleRepo: ruleRepo,
		cache:    cache,
	}
}

// Execute deletes the category rule after an ownership check.
func (uc *DeleteRuleUseCase) Execute(ctx context.Context, input DeleteRuleInput) error {
	rule, err := uc.ruleRepo.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}
	if rule.UserID != input.UserID {
		return domainerror.NewCategoryRuleError(
			domainerror.ErrCodeNotAuthorizedRule,
			"rule belongs to another user",
			domainerror.ErrNotAuthorizedToModifyRule,
		)
	}

	if err := uc.ruleRepo.Delete(ctx, input.ID); err != nil {
		return err
	}

	invalidateRules(ctx, uc.cache, input.UserID)

	slog.Info("Category rule deleted", "ruleID", input.ID, "userID", input.UserID)

	return nil
}
