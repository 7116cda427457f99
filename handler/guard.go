package handler

import (
	"Nexus/config"
	"Nexus/internal/reputation"
	"Nexus/middleware"
	"Nexus/pkg/log"
	"Nexus/pkg/response"
	"Nexus/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Guard 各路由组共用的鉴权中间件
type Guard struct {
	Config  *config.Config
	Members service.MemberStore
}

func (g *Guard) Auth() gin.HandlerFunc {
	return middleware.Auth([]byte(g.Config.Jwt.Secret), g.Members)
}

func (g *Guard) Optional() gin.HandlerFunc {
	return middleware.OptionalAuth([]byte(g.Config.Jwt.Secret), g.Members)
}

// bizError 把领域错误翻译成对外的业务错误码
func bizError(err error) error {
	var (
		ve *reputation.ValidationError
		ce *reputation.ConfigurationError
		be *response.BizError
	)
	switch {
	case errors.As(err, &be):
		return be
	case errors.As(err, &ve):
		return response.NewError(http.StatusBadRequest, ve.Error())
	case errors.Is(err, reputation.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return response.NewError(http.StatusNotFound, "资源不存在")
	case errors.Is(err, service.ErrLoginRequired):
		return response.NewError(http.StatusUnauthorized, "请先登录")
	case errors.Is(err, service.ErrAccessDenied), errors.Is(err, service.ErrInactive):
		return response.NewError(http.StatusForbidden, "无权访问")
	case errors.As(err, &ce):
		log.L.Error("member level configuration broken", zap.Error(err))
		return response.NewError(http.StatusInternalServerError, "等级配置异常")
	default:
		log.L.Error("request failed", zap.Error(err))
		return response.NewError(http.StatusInternalServerError, "系统异常")
	}
}

func badRequest(err error) error {
	return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
}

func unauthorized() error {
	return response.NewError(http.StatusUnauthorized, "未登录")
}
