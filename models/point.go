package models

import "time"

// PointsLog 积分流水，写入后不可修改
type PointsLog struct {
	ID            uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	MemberID      uint64    `gorm:"column:member_id;not null;index:idx_member_id" json:"member_id"`
	Points        int64     `gorm:"column:points;not null" json:"points"`                 // 实际变动（已按余额截断）
	NominalPoints int64     `gorm:"column:nominal_points;not null" json:"nominal_points"` // 请求的变动数额
	Balance       int64     `gorm:"column:balance;not null" json:"balance"`               // 变动后余额
	Reason        string    `gorm:"column:reason;size:255;not null" json:"reason"`
	ReferenceType string    `gorm:"column:reference_type;size:32" json:"reference_type,omitempty"`
	ReferenceID   string    `gorm:"column:reference_id;size:64;index:idx_reference" json:"reference_id,omitempty"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PointsLog) TableName() string {
	return "member_points_log"
}

// Clamped 余额不足时实际扣减少于请求值
func (p PointsLog) Clamped() bool {
	return p.Points != p.NominalPoints
}

// PointsRule 行为积分规则
type PointsRule struct {
	ID          uint      `gorm:"column:id;primaryKey" json:"id"`
	Action      string    `gorm:"column:action;size:64;not null;uniqueIndex" json:"action"`
	Points      int64     `gorm:"column:points;not null" json:"points"`
	Description string    `gorm:"column:description;size:255" json:"description"`
	Enabled     bool      `gorm:"column:enabled;not null;default:true" json:"enabled"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (PointsRule) TableName() string {
	return "points_rules"
}

const (
	ActionArticleApproved  = "article_approved"
	ActionQuestionApproved = "question_approved"
	ActionAnswerAccepted   = "answer_accepted"
)
