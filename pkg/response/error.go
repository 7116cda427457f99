package response

import (
	"Nexus/pkg/log"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BizError 对外的业务错误，Code 同时决定 HTTP 状态码
type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return fmt.Sprintf("biz error %d: %s", e.Code, e.Msg)
}

func NewError(code int, msg string) *BizError {
	return &BizError{Code: code, Msg: msg}
}

// Recovery 捕获 handler panic，记录堆栈后返回统一的 500
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			log.L.Error("panic recovered",
				zap.Any("panic", r),
				zap.String("method", c.Request.Method),
				zap.String("route", c.FullPath()),
			)
			if c.Writer.Written() {
				c.Abort()
				return
			}
			Abort(c, http.StatusInternalServerError, "系统异常")
		}()
		c.Next()
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{Code: httpStatus, Msg: msg})
}
