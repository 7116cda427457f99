package service

import (
	"Nexus/internal/reputation"
	"Nexus/models"
	"context"
)

var _ IVisibilityService = (*VisibilityService)(nil)

type IVisibilityService interface {
	// CanViewProfile viewerID 为 0 表示匿名访客；只读，不修改任何状态
	CanViewProfile(ctx context.Context, viewerID, targetID uint64) (bool, error)
	CanViewMember(ctx context.Context, viewerID uint64, target *models.Member) (bool, error)
}

type VisibilityService struct {
	Members MemberStore
	Follows FollowStore
}

func (s *VisibilityService) CanViewProfile(ctx context.Context, viewerID, targetID uint64) (bool, error) {
	if viewerID != 0 && viewerID == targetID {
		return true, nil
	}
	target, err := s.Members.FindByID(ctx, targetID)
	if err != nil {
		return false, err
	}
	return s.CanViewMember(ctx, viewerID, target)
}

func (s *VisibilityService) CanViewMember(ctx context.Context, viewerID uint64, target *models.Member) (bool, error) {
	return reputation.CanView(viewerID, target.ID, target.ProfileVisibility, func() (bool, error) {
		return s.Follows.IsMutual(ctx, viewerID, target.ID)
	})
}
