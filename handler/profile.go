package handler

import (
	"Nexus/pkg/context"
	"Nexus/pkg/response"
	"Nexus/service"
	"Nexus/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Profile struct {
	Guard   *Guard
	Profile service.IProfileService
}

func (p *Profile) RegisterRouter(r gin.IRouter) {
	optional := p.Guard.Optional()
	r.GET("/v1/profile/:member_id", optional, context.Wrap(p.Get))
	r.GET("/v1/share/:code", optional, context.Wrap(p.GetByShareCode))
	r.PUT("/v1/profile", p.Guard.Auth(), context.Wrap(p.Update))
	r.POST("/v1/profile/email/verify", p.Guard.Auth(), context.Wrap(p.VerifyEmail))
}

// Get 会员主页，按对方的可见性设置过滤
func (p *Profile) Get(c *gin.Context) error {
	targetID, err := context.ParamUint64(c, "member_id")
	if err != nil {
		return err
	}
	resp, err := p.Profile.Get(c.Request.Context(), context.OptionalMemberID(c), targetID)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}

func (p *Profile) GetByShareCode(c *gin.Context) error {
	resp, err := p.Profile.GetByShareCode(c.Request.Context(), context.OptionalMemberID(c), c.Param("code"))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}

func (p *Profile) Update(c *gin.Context) error {
	memberID, err := context.GetMemberID(c)
	if err != nil {
		return unauthorized()
	}
	var req types.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	if err := p.Profile.Update(c.Request.Context(), memberID, &req); err != nil {
		return bizError(err)
	}
	response.Success(c, nil)
	return nil
}

// VerifyEmail 令牌需带身份服务的邮箱确认标记
func (p *Profile) VerifyEmail(c *gin.Context) error {
	memberID, err := context.GetMemberID(c)
	if err != nil {
		return unauthorized()
	}
	if !context.EmailConfirmed(c) {
		return response.NewError(http.StatusForbidden, "邮箱尚未确认")
	}
	resp, err := p.Profile.VerifyEmail(c.Request.Context(), memberID)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}
