package dao

import (
	"Nexus/internal/reputation"
	"Nexus/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type Members struct {
	Repo[models.Member]
}

func NewMembers(db *gorm.DB) *Members {
	return &Members{
		Repo: NewRepo[models.Member](db),
	}
}

// FindByID 不存在时返回 reputation.ErrNotFound
func (m *Members) FindByID(ctx context.Context, id uint64) (*models.Member, error) {
	member, err := m.Repo.FindById(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, reputation.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find member %d: %w", id, err)
	}
	return member, nil
}

func (m *Members) UpdateFields(ctx context.Context, id uint64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	n, err := m.Repo.UpdateById(ctx, id, fields)
	if err != nil {
		return fmt.Errorf("update member %d: %w", id, err)
	}
	if n == 0 {
		// 值未变化时 MySQL 也返回 0，需要区分是否存在
		exist, err := m.Repo.IsExist(ctx, "id = ?", id)
		if err != nil {
			return err
		}
		if !exist {
			return reputation.ErrNotFound
		}
	}
	return nil
}

func (m *Members) UpdateLevel(ctx context.Context, id uint64, level uint) error {
	return m.UpdateFields(ctx, id, map[string]any{"level": level})
}

// SetLevelBatch 后台批量调整积分等级
func (m *Members) SetLevelBatch(ctx context.Context, ids []uint64, level uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := m.Repo.Model(ctx).Where("id IN ?", ids).Update("level", level)
	return res.RowsAffected, res.Error
}

// TopByPoints 积分排行
func (m *Members) TopByPoints(ctx context.Context, limit int) ([]models.Member, error) {
	var members []models.Member
	err := m.Db.WithContext(ctx).
		Where("status = ?", models.StatusActive).
		Order("points DESC, id ASC").
		Limit(limit).
		Find(&members).Error
	return members, err
}
