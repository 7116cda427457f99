package models

import (
	"time"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleEditor  Role = "editor"
	RoleMember  Role = "member"
	RoleVisitor Role = "visitor"
)

type MemberStatus string

const (
	StatusActive    MemberStatus = "active"
	StatusDisabled  MemberStatus = "disabled"
	StatusSuspended MemberStatus = "suspended"
)

// MemberTier 会员等级（付费/成长档位），与积分等级 Level 是两套体系
type MemberTier string

const (
	TierBronze  MemberTier = "bronze"
	TierSilver  MemberTier = "silver"
	TierGold    MemberTier = "gold"
	TierPremium MemberTier = "premium"
	TierSVIP    MemberTier = "svip"
)

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityFriends Visibility = "friends"
	VisibilityPrivate Visibility = "private"
)

type Member struct {
	ID                uint64       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username          string       `gorm:"column:username;size:64;uniqueIndex" json:"username"`
	Nickname          string       `gorm:"column:nickname;size:64" json:"nickname"`
	Email             string       `gorm:"column:email;size:255" json:"email"`
	AvatarURL         string       `gorm:"column:avatar_url;size:512" json:"avatar_url"`
	Points            int64        `gorm:"column:points;not null;default:0;index:idx_points" json:"points"`
	Level             uint         `gorm:"column:level;not null;default:1" json:"level"`
	Role              Role         `gorm:"column:role;size:16;not null;default:member" json:"role"`
	Status            MemberStatus `gorm:"column:status;size:16;not null;default:active" json:"status"`
	MemberLevel       MemberTier   `gorm:"column:member_level;size:16;not null;default:bronze" json:"member_level"`
	ProfileVisibility Visibility   `gorm:"column:profile_visibility;size:16;not null;default:public" json:"profile_visibility"`
	EmailVerified     bool         `gorm:"column:email_verified;not null;default:false" json:"email_verified"`
	CreatedAt         time.Time    `gorm:"column:created_at" json:"created_at"`
	UpdatedAt         time.Time    `gorm:"column:updated_at" json:"updated_at"`
}

func (Member) TableName() string {
	return "members"
}

// IsActive 被禁用/暂停的会员保留积分，但不能使用受限功能
func (m *Member) IsActive() bool {
	return m != nil && m.Status == StatusActive
}

func (m *Member) DisplayName() string {
	if m.Nickname != "" {
		return m.Nickname
	}
	return m.Username
}
