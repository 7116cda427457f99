package dao

import (
	"Nexus/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MemberLevels struct {
	Repo[models.MemberLevel]
}

func NewMemberLevels(db *gorm.DB) *MemberLevels {
	return &MemberLevels{
		Repo: NewRepo[models.MemberLevel](db),
	}
}

func (l *MemberLevels) List(ctx context.Context) ([]models.MemberLevel, error) {
	return l.Repo.FindAll(ctx, "min_points ASC")
}

// Save 新增或整行覆盖
func (l *MemberLevels) Save(ctx context.Context, level *models.MemberLevel) error {
	return l.Db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(level).Error
}

// ReplaceAll 整表替换，调用方需先校验
func (l *MemberLevels) ReplaceAll(ctx context.Context, levels []models.MemberLevel) error {
	return l.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.MemberLevel{}).Error; err != nil {
			return err
		}
		if len(levels) == 0 {
			return nil
		}
		return tx.Create(&levels).Error
	})
}

func (l *MemberLevels) Remove(ctx context.Context, id uint) error {
	_, err := l.Repo.Delete(ctx, "id = ?", id)
	return err
}

// Seed 仅在表为空时写入默认配置
func (l *MemberLevels) Seed(ctx context.Context, levels []models.MemberLevel) error {
	count, err := l.Repo.FindCount(ctx, "1 = 1")
	if err != nil || count > 0 {
		return err
	}
	return l.Db.WithContext(ctx).Create(&levels).Error
}
