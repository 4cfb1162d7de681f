// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/meubolso/backend/internal/domain/entity"
)

// RuleCache caches a user's active category rules between imports. It is the
// only cross-request shared state in the core. Implementations must replace
// the whole entry on Put and drop it on Invalidate, never mutate in place;
// that is what makes concurrent readers safe.
type RuleCache interface {
	// Get returns the cached rules for a user. ok is false on a miss.
	Get(ctx context.Context, userID uuid.UUID) (rules []*entity.CategoryRule, ok bool, err error)

	// Put stores the rules for a user, replacing any previous entry.
	Put(ctx context.Context, userID uuid.UUID, rules []*entity.CategoryRule) error

	// Invalidate drops the cached entry for a user. Called on every rule mutation.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
