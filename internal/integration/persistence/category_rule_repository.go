// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meubolso/backend/internal/application/adapter"
	"github.com/meubolso/backend/internal/domain/entity"
	domainerror "github.com/meubolso/backend/internal/domain/error"
	"github.com/meubolso/backend/internal/integration/persistence/model"
)

// categoryRuleRepository implements the adapter.CategoryRuleRepository interface.
type categoryRuleRepository struct {
	db *gorm.DB
}

// NewCategoryRuleRepository creates a new category rule repository instance.
func NewCategoryRuleRepository(db *gorm.DB) adapter.CategoryRuleRepository {
	return &categoryRuleRepository{
		db: db,
	}
}

// Create creates a new category rule in the database.
func (r *categoryRuleRepository) Create(ctx context.Context, rule *entity.CategoryRule) error {
	ruleModel := model.CategoryRuleFromEntity(rule)
	result := r.db.WithContext(ctx).Create(ruleModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a category rule by its ID.
func (r *categoryRuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CategoryRule, error) {
	var ruleModel model.CategoryRuleModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&ruleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryRuleNotFound
		}
		return nil, result.Error
	}
	return ruleModel.ToEntity(), nil
}

// FindByUser retrieves all category rules for a user, sorted by priority.
func (r *categoryRuleRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CategoryRule, error) {
	return r.findRules(ctx, r.db.WithContext(ctx).Where("user_id = ?", userID))
}

// FindActiveByUser retrieves only active category rules for a user, sorted by priority.
func (r *categoryRuleRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CategoryRule, error) {
	return r.findRules(ctx, r.db.WithContext(ctx).Where("user_id = ? AND is_active = ?", userID, true))
}

func (r *categoryRuleRepository) findRules(_ context.Context, query *gorm.DB) ([]*entity.CategoryRule, error) {
	var ruleModels []model.CategoryRuleModel
	result := query.
		Order("priority DESC, created_at ASC").
		Find(&ruleModels)
	if result.Error != nil {
		return nil, result.Error
	}

	rules := make([]*entity.CategoryRule, len(ruleModels))
	for i, rm := range ruleModels {
		rules[i] = rm.ToEntity()
	}
	return rules, nil
}

// Update updates an existing category rule in the database.
func (r *categoryRuleRepository) Update(ctx context.Context, rule *entity.CategoryRule) error {
	ruleModel := model.CategoryRuleFromEntity(rule)
	result := r.db.WithContext(ctx).
		Model(&model.CategoryRuleModel{}).
		Where("id = ? AND user_id = ?", rule.ID, rule.UserID).
		Updates(map[string]interface{}{
			"category_id": ruleModel.CategoryID,
			"keywords":    ruleModel.Keywords,
			"priority":    ruleModel.Priority,
			"is_active":   ruleModel.IsActive,
			"updated_at":  ruleModel.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCategoryRuleNotFound
	}
	return nil
}

// Delete removes a category rule from the database.
func (r *categoryRuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CategoryRuleModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCategoryRuleNotFound
	}
	return nil
}

// GetMaxPriorityByUser gets the maximum priority value among the user's rules.
func (r *categoryRuleRepository) GetMaxPriorityByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var maxPriority *int
	result := r.db.WithContext(ctx).
		Model(&model.CategoryRuleModel{}).
		Where("user_id = ?", userID).
		Select("MAX(priority)").
		Scan(&maxPriority)
	if result.Error != nil {
		return 0, result.Error
	}
	if maxPriority == nil {
		return 0, nil
	}
	return *maxPriority, nil
}
