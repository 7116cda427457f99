package service

import (
	"Nexus/models"
	"context"
	"time"
)

// 服务层依赖的存储接口，由 dao 包实现，测试里用内存实现替换

type MemberStore interface {
	FindByID(ctx context.Context, id uint64) (*models.Member, error)
	UpdateFields(ctx context.Context, id uint64, fields map[string]any) error
	UpdateLevel(ctx context.Context, id uint64, level uint) error
	SetLevelBatch(ctx context.Context, ids []uint64, level uint) (int64, error)
	TopByPoints(ctx context.Context, limit int) ([]models.Member, error)
}

type LedgerStore interface {
	Append(ctx context.Context, entry *models.PointsLog) error
	ListRecords(ctx context.Context, memberID uint64, action string, cursor uint64, limit int) ([]models.PointsLog, error)
	SumPoints(ctx context.Context, memberID uint64) (int64, error)
}

type LevelStore interface {
	List(ctx context.Context) ([]models.MemberLevel, error)
	Save(ctx context.Context, level *models.MemberLevel) error
	ReplaceAll(ctx context.Context, levels []models.MemberLevel) error
	Remove(ctx context.Context, id uint) error
}

type LevelCache interface {
	Get(ctx context.Context) ([]models.MemberLevel, error)
	Set(ctx context.Context, levels []models.MemberLevel, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type FollowStore interface {
	IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error)
	IsMutual(ctx context.Context, a, b uint64) (bool, error)
	SetStatus(ctx context.Context, followerID, followingID uint64, status int) error
	GetFollowerCount(ctx context.Context, memberID uint64) (int64, error)
	GetFollowingCount(ctx context.Context, memberID uint64) (int64, error)
}

type SubmissionStore interface {
	Create(ctx context.Context, item *models.MemberSubmission) error
	FindByID(ctx context.Context, id uint64) (*models.MemberSubmission, error)
	ListByMember(ctx context.Context, memberID uint64) ([]models.MemberSubmission, error)
	ListByStatus(ctx context.Context, status models.SubmissionStatus, limit, offset int) ([]models.MemberSubmission, error)
	Review(ctx context.Context, id uint64, status models.SubmissionStatus, reviewerID uint64, note string) (bool, error)
	Reopen(ctx context.Context, id uint64, from models.SubmissionStatus) (bool, error)
}

type RuleStore interface {
	List(ctx context.Context) ([]models.PointsRule, error)
	FindByAction(ctx context.Context, action string) (*models.PointsRule, error)
	Upsert(ctx context.Context, rule *models.PointsRule) error
}

type HistoryStore interface {
	Record(ctx context.Context, item *models.BrowsingHistory) error
	List(ctx context.Context, memberID uint64, contentType string, limit, offset int) ([]models.BrowsingHistory, error)
	Remove(ctx context.Context, memberID, id uint64) (int64, error)
	Clear(ctx context.Context, memberID uint64) (int64, error)
}

type ModuleStore interface {
	Find(ctx context.Context, module string) (*models.ModuleSetting, error)
	Save(ctx context.Context, setting *models.ModuleSetting) error
}

type AdminLogStore interface {
	Write(ctx context.Context, log *models.AdminOperationLog) error
	Recent(ctx context.Context, limit int) ([]models.AdminOperationLog, error)
}
