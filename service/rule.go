package service

import (
	"Nexus/internal/reputation"
	"Nexus/models"
	"Nexus/pkg/log"
	"Nexus/types"
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

var _ IRuleService = (*RuleService)(nil)

type IRuleService interface {
	List(ctx context.Context) ([]models.PointsRule, error)
	Save(ctx context.Context, req *types.SaveRuleReq) (*models.PointsRule, error)
	// AwardForAction 按规则加分；规则不存在或已停用时返回 nil, nil
	AwardForAction(ctx context.Context, memberID uint64, action, refType, refID string) (*types.AwardResult, error)
}

type RuleService struct {
	Rules      RuleStore
	Reputation IReputationService
}

func (s *RuleService) List(ctx context.Context) ([]models.PointsRule, error) {
	return s.Rules.List(ctx)
}

func (s *RuleService) Save(ctx context.Context, req *types.SaveRuleReq) (*models.PointsRule, error) {
	action := strings.TrimSpace(req.Action)
	if action == "" {
		return nil, &reputation.ValidationError{Field: "action", Reason: "must not be empty"}
	}
	if req.Points > reputation.MaxDelta || req.Points < -reputation.MaxDelta {
		return nil, &reputation.ValidationError{Field: "points", Reason: "out of range"}
	}
	rule := &models.PointsRule{
		Action:      action,
		Points:      req.Points,
		Description: req.Description,
		Enabled:     req.Enabled,
	}
	if err := s.Rules.Upsert(ctx, rule); err != nil {
		return nil, fmt.Errorf("save points rule %s: %w", action, err)
	}
	return rule, nil
}

func (s *RuleService) AwardForAction(ctx context.Context, memberID uint64, action, refType, refID string) (*types.AwardResult, error) {
	rule, err := s.Rules.FindByAction(ctx, action)
	if err != nil {
		return nil, fmt.Errorf("find points rule %s: %w", action, err)
	}
	if rule == nil || !rule.Enabled || rule.Points == 0 {
		log.L.Debug("points rule skipped", zap.String("action", action), zap.Uint64("member_id", memberID))
		return nil, nil
	}

	reason := rule.Description
	if reason == "" {
		reason = action
	}
	return s.Reputation.Award(ctx, Entry{
		MemberID:      memberID,
		Delta:         rule.Points,
		Reason:        reason,
		ReferenceType: refType,
		ReferenceID:   refID,
	})
}
