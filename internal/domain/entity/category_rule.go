// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CategoryRule represents an auto-categorization rule in the Meu Bolso system.
// Rules carry keyword lists matched case-insensitively against transaction
// descriptions; the first matching rule (by priority) wins.
type CategoryRule struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CategoryID uuid.UUID // The category to assign when a keyword matches
	Keywords   []string  // Matched as case-insensitive substrings
	Priority   int       // Higher priority rules are checked first
	IsActive   bool      // Allows disabling rules without deleting them
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time // Soft-delete support
}

// NewCategoryRule creates a new CategoryRule entity.
func NewCategoryRule(userID, categoryID uuid.UUID, keywords []string, priority int) *CategoryRule {
	now := time.Now().UTC()

	return &CategoryRule{
		ID:         uuid.New(),
		UserID:     userID,
		CategoryID: categoryID,
		Keywords:   keywords,
		Priority:   priority,
		IsActive:   true, // New rules are active by default
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Matches reports whether any of the rule's keywords occurs in the description.
func (r *CategoryRule) Matches(description string) bool {
	lower := strings.ToLower(description)
	for _, kw := range r.Keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
