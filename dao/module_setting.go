package dao

import (
	"Nexus/models"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ModuleSettings struct {
	Repo[models.ModuleSetting]
}

func NewModuleSettings(db *gorm.DB) *ModuleSettings {
	return &ModuleSettings{
		Repo: NewRepo[models.ModuleSetting](db),
	}
}

// Find 未配置的模块返回 nil, nil
func (s *ModuleSettings) Find(ctx context.Context, module string) (*models.ModuleSetting, error) {
	setting, err := s.Repo.FindByWhere(ctx, "module = ?", module)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return setting, err
}

func (s *ModuleSettings) Save(ctx context.Context, setting *models.ModuleSetting) error {
	setting.UpdatedAt = time.Now()
	return s.Db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(setting).Error
}
