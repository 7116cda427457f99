package handler

import (
	"Nexus/pkg/context"
	"Nexus/pkg/response"
	"Nexus/service"

	"github.com/gin-gonic/gin"
)

type Module struct {
	Guard   *Guard
	Modules service.IModuleService
}

func (m *Module) RegisterRouter(r gin.IRouter) {
	r.GET("/v1/modules/:module/access", m.Guard.Optional(), context.Wrap(m.Access))
}

// Access 当前访客能否在模块内执行某个动作（watch/download/view）
func (m *Module) Access(c *gin.Context) error {
	action := c.DefaultQuery("action", service.ActionView)
	resp, err := m.Modules.CanUse(c.Request.Context(), context.GetMember(c), c.Param("module"), action)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}
