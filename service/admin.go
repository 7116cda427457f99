package service

import (
	"Nexus/config"
	"Nexus/internal/reputation"
	"Nexus/models"
	"Nexus/pkg/log"
	"Nexus/types"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"
)

const (
	OpAwardPoints = "award_points"
	OpBatchPoints = "batch_points"
	OpSetStatus   = "set_status"
	OpSetTier     = "set_member_level"
	OpSetEmail    = "set_email_verified"
	OpBatchLevel  = "batch_level"
	OpSaveLevel   = "save_level"
	OpDeleteLevel = "delete_level"
	OpSaveRule    = "save_rule"
)

var _ IAdminService = (*AdminService)(nil)

type IAdminService interface {
	AwardPoints(ctx context.Context, adminID uint64, req *types.AdminAwardReq) (*types.AwardResult, error)
	BatchAward(ctx context.Context, adminID uint64, req *types.AdminBatchAwardReq) (*types.BatchAwardResp, error)
	SetStatus(ctx context.Context, adminID, memberID uint64, req *types.UpdateStatusReq) error
	SetTier(ctx context.Context, adminID, memberID uint64, tier models.MemberTier) error
	SetEmailVerified(ctx context.Context, adminID, memberID uint64, req *types.EmailVerifiedReq) error
	SetLevelBatch(ctx context.Context, adminID uint64, req *types.BatchLevelReq) (int64, error)
	Leaderboard(ctx context.Context, limit int) ([]types.LeaderboardItem, error)
	SaveLevel(ctx context.Context, adminID uint64, level models.MemberLevel) error
	ReplaceLevels(ctx context.Context, adminID uint64, levels []models.MemberLevel) error
	DeleteLevel(ctx context.Context, adminID uint64, id uint) error
	SaveRule(ctx context.Context, adminID uint64, req *types.SaveRuleReq) (*models.PointsRule, error)
	Logs(ctx context.Context, limit int) ([]models.AdminOperationLog, error)
}

type AdminService struct {
	Config     *config.Config
	Members    MemberStore
	AdminLogs  AdminLogStore
	Reputation IReputationService
	Levels     ILevelService
	Rules      IRuleService
}

func (a *AdminService) AwardPoints(ctx context.Context, adminID uint64, req *types.AdminAwardReq) (*types.AwardResult, error) {
	res, err := a.Reputation.Award(ctx, Entry{
		MemberID:      req.MemberID,
		Delta:         req.Points,
		Reason:        req.Reason,
		ReferenceType: req.ReferenceType,
		ReferenceID:   req.ReferenceID,
	})
	if err != nil {
		return nil, err
	}
	writeAudit(ctx, a.AdminLogs, adminID, OpAwardPoints, "member", strconv.FormatUint(req.MemberID, 10), req)
	return res, nil
}

func (a *AdminService) BatchAward(ctx context.Context, adminID uint64, req *types.AdminBatchAwardReq) (*types.BatchAwardResp, error) {
	succeeded, err := a.Reputation.AwardBatch(ctx, req.MemberIDs, req.Points, req.Reason)
	resp := &types.BatchAwardResp{
		Succeeded: succeeded,
		Failed:    []types.BatchFailure{},
	}
	if err != nil {
		var pbf *reputation.PartialBatchFailure
		if !errors.As(err, &pbf) {
			return nil, err
		}
		for _, f := range pbf.Failures {
			resp.Failed = append(resp.Failed, types.BatchFailure{MemberID: f.MemberID, Error: f.Err.Error()})
		}
		log.L.Warn("batch award partially failed",
			zap.Uint64s("failed", pbf.MemberIDs()),
			zap.Int("succeeded", len(succeeded)),
		)
	}
	if len(succeeded) > 0 {
		writeAudit(ctx, a.AdminLogs, adminID, OpBatchPoints, "member", "", map[string]any{
			"member_ids": succeeded,
			"points":     req.Points,
			"reason":     req.Reason,
		})
	}
	return resp, nil
}

func (a *AdminService) SetStatus(ctx context.Context, adminID, memberID uint64, req *types.UpdateStatusReq) error {
	status := models.MemberStatus(req.Status)
	switch status {
	case models.StatusActive, models.StatusDisabled, models.StatusSuspended:
	default:
		return &reputation.ValidationError{Field: "status", Reason: "unknown status " + req.Status}
	}
	if adminID == memberID && status != models.StatusActive {
		return &reputation.ValidationError{Field: "member_id", Reason: "cannot disable yourself"}
	}
	if err := a.Members.UpdateFields(ctx, memberID, map[string]any{"status": status}); err != nil {
		return err
	}
	writeAudit(ctx, a.AdminLogs, adminID, OpSetStatus, "member", strconv.FormatUint(memberID, 10), req)
	return nil
}

func (a *AdminService) SetTier(ctx context.Context, adminID, memberID uint64, tier models.MemberTier) error {
	if !reputation.KnownTier(tier) {
		return &reputation.ValidationError{Field: "member_level", Reason: "unknown tier " + string(tier)}
	}
	if err := a.Members.UpdateFields(ctx, memberID, map[string]any{"member_level": tier}); err != nil {
		return err
	}
	writeAudit(ctx, a.AdminLogs, adminID, OpSetTier, "member", strconv.FormatUint(memberID, 10), map[string]any{"member_level": tier})
	return nil
}

// SetEmailVerified 人工修正验证状态，不联动会员档位
func (a *AdminService) SetEmailVerified(ctx context.Context, adminID, memberID uint64, req *types.EmailVerifiedReq) error {
	if req.Verified == nil {
		return &reputation.ValidationError{Field: "verified", Reason: "must be set"}
	}
	if err := a.Members.UpdateFields(ctx, memberID, map[string]any{"email_verified": *req.Verified}); err != nil {
		return err
	}
	writeAudit(ctx, a.AdminLogs, adminID, OpSetEmail, "member", strconv.FormatUint(memberID, 10), req)
	return nil
}

func (a *AdminService) SetLevelBatch(ctx context.Context, adminID uint64, req *types.BatchLevelReq) (int64, error) {
	table, err := a.Levels.Table(ctx)
	if err != nil {
		return 0, err
	}
	known := false
	for _, l := range table {
		if l.ID == req.Level {
			known = true
			break
		}
	}
	if !known {
		return 0, &reputation.ValidationError{Field: "level", Reason: fmt.Sprintf("level %d does not exist", req.Level)}
	}

	ids := uniqueIDs(req.MemberIDs)
	n, err := a.Members.SetLevelBatch(ctx, ids, req.Level)
	if err != nil {
		return 0, fmt.Errorf("batch update level: %w", err)
	}
	writeAudit(ctx, a.AdminLogs, adminID, OpBatchLevel, "member", "", req)
	return n, nil
}

func (a *AdminService) Leaderboard(ctx context.Context, limit int) ([]types.LeaderboardItem, error) {
	if limit <= 0 || limit > 100 {
		limit = a.Config.Member.LeaderboardLimit
	}
	members, err := a.Members.TopByPoints(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}
	table, err := a.Levels.Table(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]types.LeaderboardItem, 0, len(members))
	for i, m := range members {
		level, err := reputation.ResolveLevel(m.Points, table)
		if err != nil {
			return nil, err
		}
		items = append(items, types.LeaderboardItem{
			Rank:     i + 1,
			MemberID: m.ID,
			Nickname: m.DisplayName(),
			Points:   m.Points,
			Level:    levelBrief(level),
		})
	}
	return items, nil
}

func (a *AdminService) SaveLevel(ctx context.Context, adminID uint64, level models.MemberLevel) error {
	if err := a.Levels.Save(ctx, level); err != nil {
		return err
	}
	writeAudit(ctx, a.AdminLogs, adminID, OpSaveLevel, "member_level", level.Name, level)
	return nil
}

func (a *AdminService) ReplaceLevels(ctx context.Context, adminID uint64, levels []models.MemberLevel) error {
	if err := a.Levels.Replace(ctx, levels); err != nil {
		return err
	}
	writeAudit(ctx, a.AdminLogs, adminID, OpSaveLevel, "member_level", "*", levels)
	return nil
}

func (a *AdminService) DeleteLevel(ctx context.Context, adminID uint64, id uint) error {
	if err := a.Levels.Delete(ctx, id); err != nil {
		return err
	}
	writeAudit(ctx, a.AdminLogs, adminID, OpDeleteLevel, "member_level", strconv.FormatUint(uint64(id), 10), nil)
	return nil
}

func (a *AdminService) SaveRule(ctx context.Context, adminID uint64, req *types.SaveRuleReq) (*models.PointsRule, error) {
	rule, err := a.Rules.Save(ctx, req)
	if err != nil {
		return nil, err
	}
	writeAudit(ctx, a.AdminLogs, adminID, OpSaveRule, "points_rule", rule.Action, req)
	return rule, nil
}

func (a *AdminService) Logs(ctx context.Context, limit int) ([]models.AdminOperationLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return a.AdminLogs.Recent(ctx, limit)
}

// writeAudit 操作已生效，日志写失败只记录不回滚
func writeAudit(ctx context.Context, store AdminLogStore, adminID uint64, op, targetType, targetID string, details any) {
	var raw []byte
	if details != nil {
		var err error
		if raw, err = json.Marshal(details); err != nil {
			log.L.Warn("marshal audit details failed", zap.String("op", op), zap.Error(err))
		}
	}
	err := store.Write(ctx, &models.AdminOperationLog{
		AdminID:       adminID,
		OperationType: op,
		TargetType:    targetType,
		TargetID:      targetID,
		Details:       raw,
	})
	if err != nil {
		log.L.Error("write admin operation log failed",
			zap.Uint64("admin_id", adminID),
			zap.String("op", op),
			zap.Error(err),
		)
	}
}
