package models

import "time"

type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

const (
	ContentArticle  = "article"
	ContentQuestion = "question"
	ContentAnswer   = "answer"
	ContentProduct  = "product"
	ContentVideo    = "video"
	ContentDownload = "download"
)

// MemberSubmission 会员投稿（文章/提问/回答）审核记录
type MemberSubmission struct {
	ID          uint64           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	MemberID    uint64           `gorm:"column:member_id;not null;index" json:"member_id"`
	ContentType string           `gorm:"column:content_type;size:16;not null" json:"content_type"`
	ContentID   string           `gorm:"column:content_id;size:64;not null" json:"content_id"`
	Status      SubmissionStatus `gorm:"column:status;size:16;not null;default:pending;index" json:"status"`
	ReviewerID  *uint64          `gorm:"column:reviewer_id" json:"reviewer_id"`
	ReviewNote  string           `gorm:"column:review_note;size:255" json:"review_note"`
	SubmittedAt time.Time        `gorm:"column:submitted_at;autoCreateTime" json:"submitted_at"`
	ReviewedAt  *time.Time       `gorm:"column:reviewed_at" json:"reviewed_at"`
}

func (MemberSubmission) TableName() string {
	return "member_submissions"
}
