package dao

import (
	"Nexus/internal/reputation"
	"Nexus/models"
	"Nexus/pkg/snowflake"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PointsLog struct {
	Repo[models.PointsLog]
}

func NewPointsLog(db *gorm.DB) *PointsLog {
	return &PointsLog{
		Repo: NewRepo[models.PointsLog](db),
	}
}

// Append 在一个事务内写流水并同步会员余额。
// entry 需带 MemberID/NominalPoints/Reason，ID/Points/Balance 由这里填充。
func (p *PointsLog) Append(ctx context.Context, entry *models.PointsLog) error {
	return p.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var member models.Member
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id", "points").
			Where("id = ?", entry.MemberID).
			First(&member).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return reputation.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("lock member %d: %w", entry.MemberID, err)
		}

		entry.ID = snowflake.GenID()
		entry.Points = reputation.ClampDelta(member.Points, entry.NominalPoints)
		entry.Balance = member.Points + entry.Points
		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("insert points log: %w", err)
		}

		if err := tx.Model(&models.Member{}).
			Where("id = ?", entry.MemberID).
			Update("points", entry.Balance).Error; err != nil {
			return fmt.Errorf("update balance: %w", err)
		}
		return nil
	})
}

// ListRecords 游标分页，cursor 为上一页最后一条 id
func (p *PointsLog) ListRecords(ctx context.Context, memberID uint64, action string, cursor uint64, limit int) ([]models.PointsLog, error) {
	var logs []models.PointsLog
	query := p.Db.WithContext(ctx).Where("member_id = ?", memberID)

	switch action {
	case "income":
		query = query.Where("points > ?", 0)
	case "expense":
		query = query.Where("points < ?", 0)
	}

	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}

	err := query.Order("id DESC").Limit(limit).Find(&logs).Error
	return logs, err
}

func (p *PointsLog) SumPoints(ctx context.Context, memberID uint64) (int64, error) {
	var sum int64
	err := p.Repo.Model(ctx).
		Select("IFNULL(SUM(points), 0)").
		Where("member_id = ?", memberID).
		Scan(&sum).Error
	return sum, err
}
