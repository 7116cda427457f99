package service

import (
	"Nexus/config"
	"Nexus/internal/reputation"
	"Nexus/models"
	"Nexus/pkg/log"
	"Nexus/pkg/utils"
	"Nexus/types"
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var _ IProfileService = (*ProfileService)(nil)

type IProfileService interface {
	Get(ctx context.Context, viewerID, targetID uint64) (*types.ProfileResp, error)
	GetByShareCode(ctx context.Context, viewerID uint64, code string) (*types.ProfileResp, error)
	Update(ctx context.Context, memberID uint64, req *types.UpdateProfileReq) error
	// VerifyEmail 标记邮箱已验证，首次验证的 bronze 会员升为 silver
	VerifyEmail(ctx context.Context, memberID uint64) (*types.EmailVerifyResp, error)
}

type ProfileService struct {
	Config     *config.Config
	Members    MemberStore
	Levels     ILevelService
	Follow     IFollowService
	Visibility IVisibilityService
}

func (s *ProfileService) Get(ctx context.Context, viewerID, targetID uint64) (*types.ProfileResp, error) {
	target, err := s.Members.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	ok, err := s.Visibility.CanViewMember(ctx, viewerID, target)
	if err != nil {
		return nil, err
	}
	if !ok {
		if viewerID == 0 {
			return nil, ErrLoginRequired
		}
		return nil, ErrAccessDenied
	}

	var (
		level models.MemberLevel
		stats *types.FollowStats
	)
	eg, gctx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		level, err = s.Levels.Resolve(gctx, target.Points)
		return err
	})
	eg.Go(func() (err error) {
		stats, err = s.Follow.Stats(gctx, viewerID, targetID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	personal, err := reputation.Allow(target, reputation.PersonalProfilePage)
	if err != nil {
		return nil, err
	}
	return &types.ProfileResp{
		ID:                target.ID,
		Username:          target.Username,
		Nickname:          target.DisplayName(),
		AvatarURL:         target.AvatarURL,
		Points:            target.Points,
		Level:             levelBrief(level),
		MemberLevel:       string(target.MemberLevel),
		ProfileVisibility: string(target.ProfileVisibility),
		ShareCode:         utils.GenHashID(s.Config.Member.HashIDSalt, target.ID),
		PersonalPage:      personal,
		Follow:            *stats,
	}, nil
}

func (s *ProfileService) GetByShareCode(ctx context.Context, viewerID uint64, code string) (*types.ProfileResp, error) {
	id, err := utils.DecodeHashID(s.Config.Member.HashIDSalt, code)
	if err != nil || id == 0 {
		return nil, reputation.ErrNotFound
	}
	return s.Get(ctx, viewerID, id)
}

func (s *ProfileService) Update(ctx context.Context, memberID uint64, req *types.UpdateProfileReq) error {
	fields := make(map[string]any)
	if req.Nickname != nil {
		fields["nickname"] = *req.Nickname
	}
	if req.ProfileVisibility != nil {
		vis := models.Visibility(*req.ProfileVisibility)
		if !reputation.ValidVisibility(vis) {
			return &reputation.ValidationError{Field: "profile_visibility", Reason: "unknown value " + *req.ProfileVisibility}
		}
		fields["profile_visibility"] = vis
	}
	return s.Members.UpdateFields(ctx, memberID, fields)
}

func (s *ProfileService) VerifyEmail(ctx context.Context, memberID uint64) (*types.EmailVerifyResp, error) {
	member, err := s.Members.FindByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	resp := &types.EmailVerifyResp{EmailVerified: true, MemberLevel: string(member.MemberLevel)}
	if member.EmailVerified {
		return resp, nil
	}

	fields := map[string]any{"email_verified": true}
	if member.MemberLevel == models.TierBronze {
		fields["member_level"] = models.TierSilver
		resp.MemberLevel = string(models.TierSilver)
		resp.Upgraded = true
	}
	if err := s.Members.UpdateFields(ctx, memberID, fields); err != nil {
		return nil, err
	}
	log.L.Info("member email verified",
		zap.Uint64("member_id", memberID),
		zap.Bool("upgraded", resp.Upgraded),
	)
	return resp, nil
}
