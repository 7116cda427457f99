package middleware

import (
	"Nexus/internal/reputation"
	"Nexus/models"
	"Nexus/pkg/context"
	"Nexus/pkg/jwt"
	"Nexus/pkg/log"
	"Nexus/pkg/response"
	stdctx "context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MemberLoader 鉴权时加载会员
type MemberLoader interface {
	FindByID(ctx stdctx.Context, id uint64) (*models.Member, error)
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// Auth 必须登录且账号处于 active 状态
func Auth(secret []byte, members MemberLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}
		claims, err := jwt.ParseToken(secret, jwt.TokenAccess, token)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}

		member, err := members.FindByID(c.Request.Context(), claims.MemberID)
		if errors.Is(err, reputation.ErrNotFound) {
			response.Abort(c, http.StatusUnauthorized, "会员不存在")
			return
		}
		if err != nil {
			log.L.Error("load member failed", zap.Uint64("member_id", claims.MemberID), zap.Error(err))
			response.Abort(c, http.StatusInternalServerError, "系统异常")
			return
		}
		if !member.IsActive() {
			response.Abort(c, http.StatusForbidden, "账号已被禁用")
			return
		}

		c.Set(context.CtxMemberID, member.ID)
		c.Set(context.CtxMember, member)
		c.Set(context.CtxEmailConfirmed, claims.EmailVerified)
		c.Next()
	}
}

// OptionalAuth 有合法 token 时注入会员，否则按匿名访客继续
func OptionalAuth(secret []byte, members MemberLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}
		claims, err := jwt.ParseToken(secret, jwt.TokenAccess, token)
		if err != nil {
			c.Next()
			return
		}
		member, err := members.FindByID(c.Request.Context(), claims.MemberID)
		if err != nil {
			if !errors.Is(err, reputation.ErrNotFound) {
				log.L.Warn("load member failed", zap.Uint64("member_id", claims.MemberID), zap.Error(err))
			}
			c.Next()
			return
		}
		c.Set(context.CtxMemberID, member.ID)
		c.Set(context.CtxMember, member)
		c.Next()
	}
}

// Require 在 Auth 之后使用，按访问要求拦截
func Require(req reputation.Requirement) gin.HandlerFunc {
	return func(c *gin.Context) {
		member := context.GetMember(c)
		ok, err := reputation.Allow(member, req)
		if err != nil {
			log.L.Error("invalid access requirement", zap.Error(err))
			response.Abort(c, http.StatusInternalServerError, "系统异常")
			return
		}
		if !ok {
			if member == nil {
				response.Abort(c, http.StatusUnauthorized, "请先登录")
				return
			}
			response.Abort(c, http.StatusForbidden, "权限不足")
			return
		}
		c.Next()
	}
}
