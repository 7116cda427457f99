package handler

import (
	"Nexus/models"
	"Nexus/pkg/context"
	"Nexus/pkg/response"
	"Nexus/service"
	"Nexus/types"

	"github.com/gin-gonic/gin"
)

type Points struct {
	Guard      *Guard
	Points     service.IPointService
	Reputation service.IReputationService
	Levels     service.ILevelService
}

func (p *Points) RegisterRouter(r gin.IRouter) {
	authorize := p.Guard.Auth()
	g := r.Group("/v1/points")
	g.GET("/balance", authorize, context.Wrap(p.Balance))
	g.GET("/records", authorize, context.Wrap(p.GetRecords))

	r.GET("/v1/levels", context.Wrap(p.ListLevels))
}

// Balance 我的积分与等级
func (p *Points) Balance(c *gin.Context) error {
	memberID, err := context.GetMemberID(c)
	if err != nil {
		return unauthorized()
	}
	resp, err := p.Reputation.Balance(c.Request.Context(), memberID)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}

// GetRecords 积分流水，游标分页
func (p *Points) GetRecords(c *gin.Context) error {
	memberID, err := context.GetMemberID(c)
	if err != nil {
		return unauthorized()
	}
	var req types.ListPointRecordsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return badRequest(err)
	}
	resp, err := p.Points.ListPointRecords(c.Request.Context(), memberID, req.Action, req.Cursor, req.Limit)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}

func (p *Points) ListLevels(c *gin.Context) error {
	table, err := p.Levels.Table(c.Request.Context())
	if err != nil {
		return bizError(err)
	}
	response.Success(c, levelItems(table))
	return nil
}

func levelItems(table []models.MemberLevel) []types.LevelItem {
	items := make([]types.LevelItem, 0, len(table))
	for _, l := range table {
		benefits := l.Benefits.Data()
		items = append(items, types.LevelItem{
			ID:          l.ID,
			Name:        l.Name,
			MinPoints:   l.MinPoints,
			MaxPoints:   l.MaxPoints,
			BadgeColor:  l.BadgeColor,
			Description: benefits.Description,
			Features:    benefits.Features,
		})
	}
	return items
}
