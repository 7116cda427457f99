package dao

import (
	"Nexus/models"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BrowsingHistory struct {
	Repo[models.BrowsingHistory]
}

func NewBrowsingHistory(db *gorm.DB) *BrowsingHistory {
	return &BrowsingHistory{
		Repo: NewRepo[models.BrowsingHistory](db),
	}
}

// Record 同一内容重复浏览只刷新时间和标题
func (h *BrowsingHistory) Record(ctx context.Context, item *models.BrowsingHistory) error {
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	return h.Db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "member_id"}, {Name: "content_type"}, {Name: "content_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"content_title", "created_at"}),
	}).Create(item).Error
}

func (h *BrowsingHistory) List(ctx context.Context, memberID uint64, contentType string, limit, offset int) ([]models.BrowsingHistory, error) {
	var items []models.BrowsingHistory
	query := h.Db.WithContext(ctx).Where("member_id = ?", memberID)
	if contentType != "" {
		query = query.Where("content_type = ?", contentType)
	}
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&items).Error
	return items, err
}

func (h *BrowsingHistory) Remove(ctx context.Context, memberID, id uint64) (int64, error) {
	return h.Repo.Delete(ctx, "id = ? AND member_id = ?", id, memberID)
}

func (h *BrowsingHistory) Clear(ctx context.Context, memberID uint64) (int64, error) {
	return h.Repo.Delete(ctx, "member_id = ?", memberID)
}
