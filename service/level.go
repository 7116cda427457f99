package service

import (
	"Nexus/config"
	"Nexus/internal/reputation"
	"Nexus/models"
	"Nexus/pkg/log"
	"context"
	"fmt"

	"go.uber.org/zap"
)

var _ ILevelService = (*LevelService)(nil)

type ILevelService interface {
	// Table 返回排好序并校验通过的等级表
	Table(ctx context.Context) ([]models.MemberLevel, error)
	Resolve(ctx context.Context, points int64) (models.MemberLevel, error)
	Save(ctx context.Context, level models.MemberLevel) error
	Replace(ctx context.Context, levels []models.MemberLevel) error
	Delete(ctx context.Context, id uint) error
}

type LevelService struct {
	Config *config.Config
	Store  LevelStore
	Cache  LevelCache
}

func (s *LevelService) Table(ctx context.Context) ([]models.MemberLevel, error) {
	levels, err := s.Cache.Get(ctx)
	if err != nil {
		log.L.Warn("level cache read failed", zap.Error(err))
	}
	if len(levels) == 0 {
		levels, err = s.Store.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("load member levels: %w", err)
		}
		reputation.SortTiers(levels)
		if err := reputation.ValidateTiers(levels); err != nil {
			return nil, err
		}
		if err := s.Cache.Set(ctx, levels, s.Config.Member.LevelCacheTTL); err != nil {
			log.L.Warn("level cache write failed", zap.Error(err))
		}
		return levels, nil
	}
	reputation.SortTiers(levels)
	if err := reputation.ValidateTiers(levels); err != nil {
		return nil, err
	}
	return levels, nil
}

func (s *LevelService) Resolve(ctx context.Context, points int64) (models.MemberLevel, error) {
	levels, err := s.Table(ctx)
	if err != nil {
		return models.MemberLevel{}, err
	}
	return reputation.ResolveLevel(points, levels)
}

// Save 新增或修改单个等级，修改后的整表必须仍然有效
func (s *LevelService) Save(ctx context.Context, level models.MemberLevel) error {
	current, err := s.Store.List(ctx)
	if err != nil {
		return fmt.Errorf("load member levels: %w", err)
	}

	next := make([]models.MemberLevel, 0, len(current)+1)
	replaced := false
	var maxID uint
	for _, l := range current {
		if l.ID > maxID {
			maxID = l.ID
		}
		if level.ID != 0 && l.ID == level.ID {
			level.CreatedAt = l.CreatedAt
			next = append(next, level)
			replaced = true
			continue
		}
		next = append(next, l)
	}
	if !replaced {
		if level.ID == 0 {
			level.ID = maxID + 1
		}
		next = append(next, level)
	}

	if err := checkCandidate(next); err != nil {
		return err
	}
	if err := s.Store.Save(ctx, &level); err != nil {
		return fmt.Errorf("save member level: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *LevelService) Replace(ctx context.Context, levels []models.MemberLevel) error {
	next := append([]models.MemberLevel(nil), levels...)
	reputation.SortTiers(next)
	for _, l := range next {
		if l.ID == 0 {
			// 未指定 id 时按门槛顺序重新编号
			for i := range next {
				next[i].ID = uint(i + 1)
			}
			break
		}
	}
	if err := checkCandidate(next); err != nil {
		return err
	}
	if err := s.Store.ReplaceAll(ctx, next); err != nil {
		return fmt.Errorf("replace member levels: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *LevelService) Delete(ctx context.Context, id uint) error {
	current, err := s.Store.List(ctx)
	if err != nil {
		return fmt.Errorf("load member levels: %w", err)
	}
	next := make([]models.MemberLevel, 0, len(current))
	found := false
	for _, l := range current {
		if l.ID == id {
			found = true
			continue
		}
		next = append(next, l)
	}
	if !found {
		return &reputation.ValidationError{Field: "id", Reason: fmt.Sprintf("level %d does not exist", id)}
	}
	if err := checkCandidate(next); err != nil {
		return err
	}
	if err := s.Store.Remove(ctx, id); err != nil {
		return fmt.Errorf("delete member level: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *LevelService) invalidate(ctx context.Context) {
	if err := s.Cache.Invalidate(ctx); err != nil {
		log.L.Warn("level cache invalidate failed", zap.Error(err))
	}
}

// checkCandidate 后台编辑产生的坏表按输入错误处理，不落库
func checkCandidate(levels []models.MemberLevel) error {
	reputation.SortTiers(levels)
	if err := reputation.ValidateTiers(levels); err != nil {
		return &reputation.ValidationError{Field: "levels", Reason: err.Error()}
	}
	return nil
}
