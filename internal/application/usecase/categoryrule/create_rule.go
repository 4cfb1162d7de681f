// Package categoryrule contains the auto-categorization rule use cases.
package categoryrule

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/meubolso/backend/internal/application/adapter"
	"github.com/meubolso/backend/internal/domain/entity"
	domainerror "github.com/meubolso/backend/internal/domain/error"
)

// CreateRuleInput represents the input for creating a category rule.
type CreateRuleInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Keywords   []string
	Priority   *int // Defaults to max priority + 1 when nil
}

// CreateRuleOutput represents the output of category rule creation.
type CreateRuleOutput struct {
	Rule *entity.CategoryRule
}

// CreateRuleUseCase creates a keyword categorization rule. New rules default
// to the top of the user's priority order so a freshly added rule takes effect
// on the next import.
type CreateRuleUseCase struct {
	ruleRepo     adapter.CategoryRuleRepository
	categoryRepo adapter.CategoryRepository
	cache        adapter.RuleCache
}

// NewCreateRuleUseCase creates a new CreateRuleUseCase instance.
func NewCreateRuleUseCase(
	ruleRepo adapter.CategoryRuleRepository,
	categoryRepo adapter.CategoryRepository,
	cache adapter.RuleCache,
) *CreateRuleUseCase {
	return &CreateRuleUseCase{
		ruleRepo:     ruleRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// Execute validates and creates the category rule.
func (uc *CreateRuleUseCase) Execute(ctx context.Context, input CreateRuleInput) (*CreateRuleOutput, error) {
	keywords := normalizeKeywords(input.Keywords)
	if len(keywords) == 0 {
		return nil, domainerror.NewCategoryRuleError(
			domainerror.ErrCodeMissingRuleFields,
			"at least one non-empty keyword is required",
			domainerror.ErrCategoryRuleMissingFields,
		)
	}

	if _, err := uc.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		return nil, domainerror.NewCategoryRuleError(
			domainerror.ErrCodeCategoryNotFoundForRule,
			"rule references an unknown category",
			domainerror.ErrCategoryNotFoundForRule,
		)
	}

	priority := 0
	if input.Priority != nil {
		priority = *input.Priority
	} else {
		maxPriority, err := uc.ruleRepo.GetMaxPriorityByUser(ctx, input.UserID)
		if err != nil {
			return nil, err
		}
		priority = maxPriority + 1
	}

	rule := entity.NewCategoryRule(input.UserID, input.CategoryID, keywords, priority)
	if err := uc.ruleRepo.Create(ctx, rule); err != nil {
		return nil, err
	}

	invalidateRules(ctx, uc.cache, input.UserID)

	slog.Info("Category rule created",
		"ruleID", rule.ID,
		"userID", input.UserID,
		"keywords", len(keywords),
		"priority", priority,
	)

	return &CreateRuleOutput{Rule: rule}, nil
}

// normalizeKeywords trims and drops empty entries.
func normalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

// invalidateRules drops the user's cached rules after a mutation. Cache
// failures only cost freshness, not correctness.
func invalidateRules(ctx context.Context, cache adapter.RuleCache, userID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, userID); err != nil {
		slog.Warn("Rule cache invalidation failed", "userID", userID, "error", err)
	}
}
