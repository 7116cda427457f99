package models

import (
	"time"
)

const (
	FollowStatusCancelled = 0
	FollowStatusActive    = 1
)

type MemberFollow struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FollowerID  uint64    `gorm:"column:follower_id;not null;uniqueIndex:uk_follow,priority:1" json:"follower_id"`   // 关注人
	FollowingID uint64    `gorm:"column:following_id;not null;uniqueIndex:uk_follow,priority:2;index" json:"following_id"` // 被关注人
	Status      int       `gorm:"column:status;not null;default:1" json:"status"`                                     // 1:关注中 0:已取消
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (MemberFollow) TableName() string {
	return "member_follows"
}

type FollowStats struct {
	FollowingCount int64 `json:"following_count"`
	FollowerCount  int64 `json:"follower_count"`
}
