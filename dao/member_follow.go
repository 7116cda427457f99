package dao

import (
	"Nexus/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type MemberFollows struct {
	Repo[models.MemberFollow]
}

func NewMemberFollows(db *gorm.DB) *MemberFollows {
	return &MemberFollows{
		Repo: NewRepo[models.MemberFollow](db),
	}
}

// IsFollowing 检查是否已关注
func (d *MemberFollows) IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error) {
	return d.Repo.IsExist(ctx, "follower_id = ? AND following_id = ? AND status = ?",
		followerID, followingID, models.FollowStatusActive)
}

// IsMutual 双向关注
func (d *MemberFollows) IsMutual(ctx context.Context, a, b uint64) (bool, error) {
	count, err := d.Repo.FindCount(ctx,
		"status = ? AND ((follower_id = ? AND following_id = ?) OR (follower_id = ? AND following_id = ?))",
		models.FollowStatusActive, a, b, b, a)
	if err != nil {
		return false, err
	}
	return count == 2, nil
}

// SetStatus 设置关注状态（如不存在则创建）
func (d *MemberFollows) SetStatus(ctx context.Context, followerID, followingID uint64, status int) error {
	now := time.Now()

	res := d.Repo.Model(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Updates(map[string]any{
			"status":     status,
			"updated_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 || status == models.FollowStatusCancelled {
		return nil
	}

	return d.Repo.Create(ctx, &models.MemberFollow{
		FollowerID:  followerID,
		FollowingID: followingID,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

// GetFollowerCount 获取粉丝数
func (d *MemberFollows) GetFollowerCount(ctx context.Context, memberID uint64) (int64, error) {
	return d.Repo.FindCount(ctx, "following_id = ? AND status = ?", memberID, models.FollowStatusActive)
}

// GetFollowingCount 获取关注数
func (d *MemberFollows) GetFollowingCount(ctx context.Context, memberID uint64) (int64, error) {
	return d.Repo.FindCount(ctx, "follower_id = ? AND status = ?", memberID, models.FollowStatusActive)
}
