package handler

import (
	"Nexus/pkg/context"
	"Nexus/pkg/response"
	"Nexus/service"

	"github.com/gin-gonic/gin"
)

type Follow struct {
	Guard         *Guard
	FollowService service.IFollowService
}

func (f *Follow) RegisterRouter(r gin.IRouter) {
	authorize := f.Guard.Auth()
	g := r.Group("/v1/follow")
	g.POST("/:member_id/follow", authorize, context.Wrap(f.FollowMember))
	g.DELETE("/:member_id/follow", authorize, context.Wrap(f.UnfollowMember))
	g.GET("/:member_id/follow", authorize, context.Wrap(f.GetFollowStatus))
	g.GET("/:member_id/stats", f.Guard.Optional(), context.Wrap(f.GetStats))
}

// FollowMember 关注会员
func (f *Follow) FollowMember(c *gin.Context) error {
	memberID, err := context.GetMemberID(c)
	if err != nil {
		return unauthorized()
	}
	targetID, err := context.ParamUint64(c, "member_id")
	if err != nil {
		return err
	}
	if err := f.FollowService.Follow(c.Request.Context(), memberID, targetID); err != nil {
		return bizError(err)
	}
	response.Success(c, gin.H{"followed": true})
	return nil
}

// UnfollowMember 取消关注
func (f *Follow) UnfollowMember(c *gin.Context) error {
	memberID, err := context.GetMemberID(c)
	if err != nil {
		return unauthorized()
	}
	targetID, err := context.ParamUint64(c, "member_id")
	if err != nil {
		return err
	}
	if err := f.FollowService.Unfollow(c.Request.Context(), memberID, targetID); err != nil {
		return bizError(err)
	}
	response.Success(c, gin.H{"followed": false})
	return nil
}

func (f *Follow) GetFollowStatus(c *gin.Context) error {
	memberID, err := context.GetMemberID(c)
	if err != nil {
		return unauthorized()
	}
	targetID, err := context.ParamUint64(c, "member_id")
	if err != nil {
		return err
	}
	following, err := f.FollowService.IsFollowing(c.Request.Context(), memberID, targetID)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, gin.H{"followed": following})
	return nil
}

func (f *Follow) GetStats(c *gin.Context) error {
	targetID, err := context.ParamUint64(c, "member_id")
	if err != nil {
		return err
	}
	stats, err := f.FollowService.Stats(c.Request.Context(), context.OptionalMemberID(c), targetID)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, stats)
	return nil
}
