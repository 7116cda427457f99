package handler

import (
	"Nexus/pkg/context"
	"Nexus/pkg/response"
	"Nexus/service"
	"Nexus/types"

	"github.com/gin-gonic/gin"
)

type History struct {
	Guard   *Guard
	History service.IBrowsingService
}

func (h *History) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/history", h.Guard.Auth())
	g.POST("", context.Wrap(h.Record))
	g.GET("", context.Wrap(h.List))
	g.DELETE("/:id", context.Wrap(h.Remove))
	g.DELETE("", context.Wrap(h.Clear))
}

// Record 记录浏览，重复浏览同一内容只刷新时间
func (h *History) Record(c *gin.Context) error {
	memberID, err := context.GetMemberID(c)
	if err != nil {
		return unauthorized()
	}
	var req types.RecordHistoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	if err := h.History.Record(c.Request.Context(), memberID, &req); err != nil {
		return bizError(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *History) List(c *gin.Context) error {
	memberID, err := context.GetMemberID(c)
	if err != nil {
		return unauthorized()
	}
	var req types.ListHistoryReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return badRequest(err)
	}
	items, err := h.History.List(c.Request.Context(), memberID, &req)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, items)
	return nil
}

func (h *History) Remove(c *gin.Context) error {
	memberID, err := context.GetMemberID(c)
	if err != nil {
		return unauthorized()
	}
	id, err := context.ParamUint64(c, "id")
	if err != nil {
		return err
	}
	if err := h.History.Remove(c.Request.Context(), memberID, id); err != nil {
		return bizError(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *History) Clear(c *gin.Context) error {
	memberID, err := context.GetMemberID(c)
	if err != nil {
		return unauthorized()
	}
	n, err := h.History.Clear(c.Request.Context(), memberID)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, gin.H{"deleted": n})
	return nil
}
