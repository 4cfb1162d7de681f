// Package statement contains statement parsing use cases.
package statement

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/meubolso/backend/internal/application/adapter"
	"github.com/meubolso/backend/internal/domain/entity"
)

// CategorySuggester resolves a suggested category for a statement line by
// running the user's keyword rules first-match-wins in priority order. Rules
// are read through the injected cache; a miss falls back to the repository and
// fills the cache. Suggestion failures never fail a parse.
type CategorySuggester struct {
	ruleRepo adapter.CategoryRuleRepository
	cache    adapter.RuleCache
}

// NewCategorySuggester creates a new CategorySuggester instance.
func NewCategorySuggester(ruleRepo adapter.CategoryRuleRepository, cache adapter.RuleCache) *CategorySuggester {
	return &CategorySuggester{
		ruleRepo: ruleRepo,
		cache:    cache,
	}
}

// Suggest returns the category ID of the first rule matching the description,
// or nil when no rule matches.
func (s *CategorySuggester) Suggest(ctx context.Context, description string, userID uuid.UUID) *uuid.UUID {
	rules := s.rulesFor(ctx, userID)

	for _, rule := range rules {
		if !rule.IsActive {
			continue
		}
		if rule.Matches(description) {
			categoryID := rule.CategoryID
			return &categoryID
		}
	}
	return nil
}

// rulesFor loads the user's rules, preferring the cache. Repository ordering
// (priority descending) is preserved in the cached entry, which keeps rule
// application order-stable across imports.
func (s *CategorySuggester) rulesFor(ctx context.Context, userID uuid.UUID) []*entity.CategoryRule {
	if s.cache != nil {
		rules, ok, err := s.cache.Get(ctx, userID)
		if err != nil {
			slog.Warn("Rule cache read failed, falling back to repository",
				"userID", userID,
				"error", err,
			)
		} else if ok {
			return rules
		}
	}

	rules, err := s.ruleRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		slog.Warn("Failed to fetch category rules for suggestion",
			"userID", userID,
			"error", err,
		)
		return nil
	}

	if s.cache != nil {
		if err := s.cache.Put(ctx, userID, rules); err != nil {
			slog.Warn("Rule cache write failed", "userID", userID, "error", err)
		}
	}

	return rules
}
