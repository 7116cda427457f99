package dao

import (
	"Nexus/models"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PointsRules struct {
	Repo[models.PointsRule]
}

func NewPointsRules(db *gorm.DB) *PointsRules {
	return &PointsRules{
		Repo: NewRepo[models.PointsRule](db),
	}
}

func (r *PointsRules) List(ctx context.Context) ([]models.PointsRule, error) {
	return r.Repo.FindAll(ctx, "action ASC")
}

// FindByAction 不存在时返回 nil, nil
func (r *PointsRules) FindByAction(ctx context.Context, action string) (*models.PointsRule, error) {
	rule, err := r.Repo.FindByWhere(ctx, "action = ?", action)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return rule, err
}

func (r *PointsRules) Upsert(ctx context.Context, rule *models.PointsRule) error {
	return r.Db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "action"}},
		DoUpdates: clause.AssignmentColumns([]string{"points", "description", "enabled", "updated_at"}),
	}).Create(rule).Error
}

func (r *PointsRules) Seed(ctx context.Context, rules []models.PointsRule) error {
	if len(rules) == 0 {
		return nil
	}
	return r.Db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rules).Error
}
