// Package categoryrule contains the auto-categorization rule use cases.
package categoryrule

import (
	"context"

	"github.com/google/uuid"

	"github.com/meubolso/backend/internal/application/adapter"
	"github.com/meubolso/backend/internal/domain/entity"
)

// ListRulesInput represents the input for listing category rules.
type ListRulesInput struct {
	UserID     uuid.UUID
	ActiveOnly bool
}

// ListRulesOutput represents the output of the rule listing.
type ListRulesOutput struct {
	Rules []*entity.CategoryRule
}

// ListRulesUseCase lists a user's category rules in priority order.
type ListRulesUseCase struct {
	ruleRepo adapter.CategoryRuleRepository
}

// NewListRulesUseCase creates a new ListRulesUseCase instance.
func NewListRulesUseCase(ruleRepo adapter.CategoryRuleRepository) *ListRulesUseCase {
	return &ListRulesUseCase{
		ruleRepo: ruleRepo,
	}
}

// Execute lists the category rules.
func (uc *ListRulesUseCase) Execute(ctx context.Context, input ListRulesInput) (*ListRulesOutput, error) {
	var (
		rules []*entity.CategoryRule
		err   error
	)
	if input.ActiveOnly {
		rules, err = uc.ruleRepo.FindActiveByUser(ctx, input.UserID)
	} else {
		rules, err = uc.ruleRepo.FindByUser(ctx, input.UserID)
	}
	if err != nil {
		return nil, err
	}

	return &ListRulesOutput{Rules: rules}, nil
}
