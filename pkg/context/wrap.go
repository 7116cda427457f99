package context

import (
	"Nexus/models"
	"Nexus/pkg/response"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	CtxMemberID = "member_id"
	CtxMember   = "member"
	// CtxEmailConfirmed 令牌里身份服务给出的邮箱确认标记
	CtxEmailConfirmed = "email_confirmed"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				response.Fail(c, be.Code, be.Msg)
				return
			}
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: 500,
				Msg:  err.Error(),
			})
		}
	}
}

// GetMemberID 获取登录会员ID，未登录返回错误
func GetMemberID(c *gin.Context) (uint64, error) {
	v, ok := c.Get(CtxMemberID)
	if !ok {
		return 0, errors.New("member_id 不存在")
	}

	uid, ok := v.(uint64)
	if !ok {
		return 0, errors.New("member_id 类型错误")
	}

	return uid, nil
}

// OptionalMemberID 匿名访问时返回 0
func OptionalMemberID(c *gin.Context) uint64 {
	uid, err := GetMemberID(c)
	if err != nil {
		return 0
	}
	return uid
}

// GetMember 匿名访问返回 nil
func GetMember(c *gin.Context) *models.Member {
	v, ok := c.Get(CtxMember)
	if !ok {
		return nil
	}
	member, _ := v.(*models.Member)
	return member
}

// ParamUint64 解析路径参数
func ParamUint64(c *gin.Context, name string) (uint64, error) {
	raw := c.Param(name)
	if raw == "" {
		return 0, response.NewError(http.StatusBadRequest, "缺少 "+name)
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, response.NewError(http.StatusBadRequest, name+" 格式错误")
	}
	return v, nil
}

func EmailConfirmed(c *gin.Context) bool {
	return c.GetBool(CtxEmailConfirmed)
}
