package models

import (
	"time"

	"gorm.io/datatypes"
)

type LevelBenefits struct {
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// MemberLevel 积分等级配置，后台可编辑
type MemberLevel struct {
	ID         uint                               `gorm:"column:id;primaryKey" json:"id"`
	Name       string                             `gorm:"column:name;size:32;not null" json:"name"`
	MinPoints  int64                              `gorm:"column:min_points;not null;uniqueIndex" json:"min_points"`
	MaxPoints  *int64                             `gorm:"column:max_points" json:"max_points"` // nil 表示无上限
	BadgeColor string                             `gorm:"column:badge_color;size:16" json:"badge_color"`
	Benefits   datatypes.JSONType[LevelBenefits] `gorm:"column:benefits" json:"benefits"`
	CreatedAt  time.Time                          `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time                          `gorm:"column:updated_at" json:"updated_at"`
}

func (MemberLevel) TableName() string {
	return "member_levels"
}

// Contains max_points 为闭区间上界
func (l MemberLevel) Contains(points int64) bool {
	if points < l.MinPoints {
		return false
	}
	return l.MaxPoints == nil || points <= *l.MaxPoints
}
