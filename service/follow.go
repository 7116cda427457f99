package service

import (
	"Nexus/internal/reputation"
	"Nexus/models"
	"Nexus/types"
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	Follow(ctx context.Context, followerID, followingID uint64) error
	Unfollow(ctx context.Context, followerID, followingID uint64) error
	IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error)
	// Stats viewerID 为 0 时不计算关注关系
	Stats(ctx context.Context, viewerID, memberID uint64) (*types.FollowStats, error)
}

type FollowService struct {
	Follows FollowStore
	Members MemberStore
}

func (s *FollowService) Follow(ctx context.Context, followerID, followingID uint64) error {
	if followerID == followingID {
		return &reputation.ValidationError{Field: "member_id", Reason: "cannot follow yourself"}
	}
	if _, err := s.Members.FindByID(ctx, followingID); err != nil {
		return err
	}

	following, err := s.Follows.IsFollowing(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if following {
		return nil
	}
	if err := s.Follows.SetStatus(ctx, followerID, followingID, models.FollowStatusActive); err != nil {
		return fmt.Errorf("follow %d: %w", followingID, err)
	}
	return nil
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, followingID uint64) error {
	if followerID == followingID {
		return &reputation.ValidationError{Field: "member_id", Reason: "cannot unfollow yourself"}
	}
	if err := s.Follows.SetStatus(ctx, followerID, followingID, models.FollowStatusCancelled); err != nil {
		return fmt.Errorf("unfollow %d: %w", followingID, err)
	}
	return nil
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error) {
	return s.Follows.IsFollowing(ctx, followerID, followingID)
}

func (s *FollowService) Stats(ctx context.Context, viewerID, memberID uint64) (*types.FollowStats, error) {
	var stats types.FollowStats
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		stats.FollowerCount, err = s.Follows.GetFollowerCount(ctx, memberID)
		return err
	})
	eg.Go(func() (err error) {
		stats.FollowingCount, err = s.Follows.GetFollowingCount(ctx, memberID)
		return err
	})
	if viewerID != 0 && viewerID != memberID {
		eg.Go(func() (err error) {
			stats.IsFollowing, err = s.Follows.IsFollowing(ctx, viewerID, memberID)
			return err
		})
		eg.Go(func() (err error) {
			stats.IsMutual, err = s.Follows.IsMutual(ctx, viewerID, memberID)
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}
