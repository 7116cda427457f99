package models

import "time"

type BrowsingHistory struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	MemberID     uint64    `gorm:"column:member_id;not null;uniqueIndex:uk_history,priority:1" json:"member_id"`
	ContentType  string    `gorm:"column:content_type;size:16;not null;uniqueIndex:uk_history,priority:2" json:"content_type"`
	ContentID    string    `gorm:"column:content_id;size:64;not null;uniqueIndex:uk_history,priority:3" json:"content_id"`
	ContentTitle string    `gorm:"column:content_title;size:255" json:"content_title"`
	CreatedAt    time.Time `gorm:"column:created_at;index" json:"created_at"`
}

func (BrowsingHistory) TableName() string {
	return "browsing_history"
}
