package dao

import (
	"Nexus/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type Submissions struct {
	Repo[models.MemberSubmission]
}

func NewSubmissions(db *gorm.DB) *Submissions {
	return &Submissions{
		Repo: NewRepo[models.MemberSubmission](db),
	}
}

func (s *Submissions) FindByID(ctx context.Context, id uint64) (*models.MemberSubmission, error) {
	return s.Repo.FindById(ctx, id)
}

func (s *Submissions) ListByMember(ctx context.Context, memberID uint64) ([]models.MemberSubmission, error) {
	return s.Repo.FindAll(ctx, "submitted_at DESC", "member_id = ?", memberID)
}

func (s *Submissions) ListByStatus(ctx context.Context, status models.SubmissionStatus, limit, offset int) ([]models.MemberSubmission, error) {
	var items []models.MemberSubmission
	query := s.Db.WithContext(ctx)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("submitted_at ASC").Limit(limit).Offset(offset).Find(&items).Error
	return items, err
}

// Review 只允许从 pending 流转，返回是否命中
func (s *Submissions) Review(ctx context.Context, id uint64, status models.SubmissionStatus, reviewerID uint64, note string) (bool, error) {
	res := s.Repo.Model(ctx).
		Where("id = ? AND status = ?", id, models.SubmissionPending).
		Updates(map[string]any{
			"status":      status,
			"reviewer_id": reviewerID,
			"review_note": note,
			"reviewed_at": time.Now(),
		})
	return res.RowsAffected > 0, res.Error
}

// Reopen 把 from 状态的投稿退回 pending，用于加分失败后的补偿
func (s *Submissions) Reopen(ctx context.Context, id uint64, from models.SubmissionStatus) (bool, error) {
	res := s.Repo.Model(ctx).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status":      models.SubmissionPending,
			"reviewer_id": nil,
			"review_note": "",
			"reviewed_at": nil,
		})
	return res.RowsAffected > 0, res.Error
}
