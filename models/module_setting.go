package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ModuleArticles  = "articles"
	ModuleProducts  = "products"
	ModuleQuestions = "questions"
	ModuleDownloads = "downloads"
	ModuleVideos    = "videos"
)

// ModuleSetting 各内容模块开关与自定义配置
type ModuleSetting struct {
	Module         string         `gorm:"column:module;primaryKey;size:32" json:"module"`
	Enabled        bool           `gorm:"column:enabled;not null;default:true" json:"enabled"`
	CustomSettings datatypes.JSON `gorm:"column:custom_settings" json:"custom_settings"`
	UpdatedAt      time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (ModuleSetting) TableName() string {
	return "module_settings"
}

type AdminOperationLog struct {
	ID            uint64         `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	AdminID       uint64         `gorm:"column:admin_id;not null;index" json:"admin_id"`
	OperationType string         `gorm:"column:operation_type;size:32;not null" json:"operation_type"`
	TargetType    string         `gorm:"column:target_type;size:32" json:"target_type"`
	TargetID      string         `gorm:"column:target_id;size:64" json:"target_id"`
	Details       datatypes.JSON `gorm:"column:details" json:"details"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AdminOperationLog) TableName() string {
	return "admin_operation_logs"
}

// All 迁移时使用
func All() []any {
	return []any{
		&Member{},
		&MemberLevel{},
		&PointsLog{},
		&PointsRule{},
		&MemberFollow{},
		&MemberSubmission{},
		&BrowsingHistory{},
		&ModuleSetting{},
		&AdminOperationLog{},
	}
}
