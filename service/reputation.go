package service

import (
	"Nexus/config"
	"Nexus/internal/reputation"
	"Nexus/models"
	"Nexus/pkg/log"
	"Nexus/types"
	"context"
	"fmt"

	"go.uber.org/zap"
)

var _ IReputationService = (*ReputationService)(nil)

type IReputationService interface {
	// Award 记账后重新计算积分等级
	Award(ctx context.Context, in Entry) (*types.AwardResult, error)
	AwardBatch(ctx context.Context, memberIDs []uint64, delta int64, reason string) ([]uint64, error)
	Balance(ctx context.Context, memberID uint64) (*types.PointsBalance, error)
	// SyncLevel 按当前积分修正 members.level
	SyncLevel(ctx context.Context, memberID uint64) (models.MemberLevel, bool, error)
}

type ReputationService struct {
	Config  *config.Config
	Points  IPointService
	Levels  ILevelService
	Members MemberStore
}

func (r *ReputationService) Award(ctx context.Context, in Entry) (*types.AwardResult, error) {
	entry, err := r.Points.Append(ctx, in)
	if err != nil {
		return nil, err
	}

	level, changed, err := r.SyncLevel(ctx, in.MemberID)
	if err != nil {
		return nil, err
	}
	return &types.AwardResult{
		MemberID:     in.MemberID,
		Balance:      entry.Balance,
		Applied:      entry.Points,
		Level:        levelBrief(level),
		LevelChanged: changed,
	}, nil
}

func (r *ReputationService) AwardBatch(ctx context.Context, memberIDs []uint64, delta int64, reason string) ([]uint64, error) {
	if err := reputation.ValidateEntry(delta, reason); err != nil {
		return nil, err
	}
	return runBatch(memberIDs, r.Config.Member.BatchConcurrency, func(id uint64) error {
		_, err := r.Award(ctx, Entry{MemberID: id, Delta: delta, Reason: reason})
		return err
	})
}

func (r *ReputationService) SyncLevel(ctx context.Context, memberID uint64) (models.MemberLevel, bool, error) {
	member, err := r.Members.FindByID(ctx, memberID)
	if err != nil {
		return models.MemberLevel{}, false, err
	}
	level, err := r.Levels.Resolve(ctx, member.Points)
	if err != nil {
		return models.MemberLevel{}, false, err
	}
	if member.Level == level.ID {
		return level, false, nil
	}
	if err := r.Members.UpdateLevel(ctx, memberID, level.ID); err != nil {
		return models.MemberLevel{}, false, fmt.Errorf("update member level: %w", err)
	}
	log.L.Info("member level changed",
		zap.Uint64("member_id", memberID),
		zap.Uint("from", member.Level),
		zap.Uint("to", level.ID),
		zap.String("level", level.Name),
		zap.Int64("points", member.Points),
	)
	return level, true, nil
}

func (r *ReputationService) Balance(ctx context.Context, memberID uint64) (*types.PointsBalance, error) {
	member, err := r.Members.FindByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	table, err := r.Levels.Table(ctx)
	if err != nil {
		return nil, err
	}
	level, err := reputation.ResolveLevel(member.Points, table)
	if err != nil {
		return nil, err
	}

	resp := &types.PointsBalance{
		Points: member.Points,
		Level:  levelBrief(level),
	}
	if next := reputation.NextLevel(level, table); next != nil {
		brief := levelBrief(*next)
		resp.NextLevel = &brief
		resp.ToNext = next.MinPoints - member.Points
	}
	return resp, nil
}

func levelBrief(l models.MemberLevel) types.LevelBrief {
	return types.LevelBrief{
		ID:         l.ID,
		Name:       l.Name,
		BadgeColor: l.BadgeColor,
	}
}
