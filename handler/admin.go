package handler

import (
	"Nexus/internal/reputation"
	"Nexus/middleware"
	"Nexus/models"
	"Nexus/pkg/context"
	"Nexus/pkg/response"
	"Nexus/service"
	"Nexus/types"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type Admin struct {
	Guard       *Guard
	Admin       service.IAdminService
	Points      service.IPointService
	Levels      service.ILevelService
	Rules       service.IRuleService
	Modules     service.IModuleService
	Submissions service.ISubmissionService
}

func (a *Admin) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/admin", a.Guard.Auth())

	moderate := g.Group("", middleware.Require(reputation.Moderator))
	moderate.GET("/submissions", context.Wrap(a.ListSubmissions))
	moderate.POST("/submissions/:id/review", context.Wrap(a.ReviewSubmission))

	admin := g.Group("", middleware.Require(reputation.AdminOnly))
	admin.POST("/points", context.Wrap(a.AwardPoints))
	admin.POST("/points/batch", context.Wrap(a.BatchAward))
	admin.GET("/points/:member_id/verify", context.Wrap(a.VerifyBalance))
	admin.PUT("/members/:member_id/status", context.Wrap(a.SetStatus))
	admin.PUT("/members/:member_id/tier", context.Wrap(a.SetTier))
	admin.PUT("/members/:member_id/email-verified", context.Wrap(a.SetEmailVerified))
	admin.POST("/members/level", context.Wrap(a.SetLevelBatch))
	admin.GET("/leaderboard", context.Wrap(a.Leaderboard))
	admin.GET("/levels", context.Wrap(a.ListLevels))
	admin.POST("/levels", context.Wrap(a.SaveLevel))
	admin.PUT("/levels", context.Wrap(a.ReplaceLevels))
	admin.DELETE("/levels/:id", context.Wrap(a.DeleteLevel))
	admin.GET("/rules", context.Wrap(a.ListRules))
	admin.PUT("/rules", context.Wrap(a.SaveRule))
	admin.PUT("/modules/:module", context.Wrap(a.SaveModule))
	admin.GET("/logs", context.Wrap(a.Logs))
}

func adminID(c *gin.Context) (uint64, error) {
	id, err := context.GetMemberID(c)
	if err != nil {
		return 0, unauthorized()
	}
	return id, nil
}

func (a *Admin) AwardPoints(c *gin.Context) error {
	operator, err := adminID(c)
	if err != nil {
		return err
	}
	var req types.AdminAwardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	res, err := a.Admin.AwardPoints(c.Request.Context(), operator, &req)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, res)
	return nil
}

// BatchAward 部分失败时仍返回 200，失败会员放在 failed 里
func (a *Admin) BatchAward(c *gin.Context) error {
	operator, err := adminID(c)
	if err != nil {
		return err
	}
	var req types.AdminBatchAwardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	res, err := a.Admin.BatchAward(c.Request.Context(), operator, &req)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, res)
	return nil
}

func (a *Admin) VerifyBalance(c *gin.Context) error {
	memberID, err := context.ParamUint64(c, "member_id")
	if err != nil {
		return err
	}
	res, err := a.Points.VerifyBalance(c.Request.Context(), memberID)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, res)
	return nil
}

func (a *Admin) SetStatus(c *gin.Context) error {
	operator, err := adminID(c)
	if err != nil {
		return err
	}
	memberID, err := context.ParamUint64(c, "member_id")
	if err != nil {
		return err
	}
	var req types.UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	if err := a.Admin.SetStatus(c.Request.Context(), operator, memberID, &req); err != nil {
		return bizError(err)
	}
	response.Success(c, nil)
	return nil
}

func (a *Admin) SetTier(c *gin.Context) error {
	operator, err := adminID(c)
	if err != nil {
		return err
	}
	memberID, err := context.ParamUint64(c, "member_id")
	if err != nil {
		return err
	}
	var req types.UpdateTierReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	if err := a.Admin.SetTier(c.Request.Context(), operator, memberID, models.MemberTier(req.MemberLevel)); err != nil {
		return bizError(err)
	}
	response.Success(c, nil)
	return nil
}

func (a *Admin) SetEmailVerified(c *gin.Context) error {
	operator, err := adminID(c)
	if err != nil {
		return err
	}
	memberID, err := context.ParamUint64(c, "member_id")
	if err != nil {
		return err
	}
	var req types.EmailVerifiedReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	if err := a.Admin.SetEmailVerified(c.Request.Context(), operator, memberID, &req); err != nil {
		return bizError(err)
	}
	response.Success(c, nil)
	return nil
}

// SetLevelBatch 直接改写存储的积分等级。该值只是缓存：
// 会员下一次积分变动时会按积分重新计算并覆盖这里的设置。
func (a *Admin) SetLevelBatch(c *gin.Context) error {
	operator, err := adminID(c)
	if err != nil {
		return err
	}
	var req types.BatchLevelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	n, err := a.Admin.SetLevelBatch(c.Request.Context(), operator, &req)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, gin.H{"updated": n})
	return nil
}

func (a *Admin) Leaderboard(c *gin.Context) error {
	limit, _ := strconv.Atoi(c.Query("limit"))
	items, err := a.Admin.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, items)
	return nil
}

func (a *Admin) ListLevels(c *gin.Context) error {
	table, err := a.Levels.Table(c.Request.Context())
	if err != nil {
		return bizError(err)
	}
	response.Success(c, levelItems(table))
	return nil
}

func toLevel(req types.SaveLevelReq) models.MemberLevel {
	return models.MemberLevel{
		ID:         req.ID,
		Name:       req.Name,
		MinPoints:  req.MinPoints,
		MaxPoints:  req.MaxPoints,
		BadgeColor: req.BadgeColor,
		Benefits: datatypes.NewJSONType(models.LevelBenefits{
			Description: req.Description,
			Features:    req.Features,
		}),
	}
}

func (a *Admin) SaveLevel(c *gin.Context) error {
	operator, err := adminID(c)
	if err != nil {
		return err
	}
	var req types.SaveLevelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	if err := a.Admin.SaveLevel(c.Request.Context(), operator, toLevel(req)); err != nil {
		return bizError(err)
	}
	response.Success(c, nil)
	return nil
}

// ReplaceLevels 整表替换，用于插入中间等级等需要同时调整多行的场景
func (a *Admin) ReplaceLevels(c *gin.Context) error {
	operator, err := adminID(c)
	if err != nil {
		return err
	}
	var req []types.SaveLevelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	levels := make([]models.MemberLevel, 0, len(req))
	for _, item := range req {
		levels = append(levels, toLevel(item))
	}
	if err := a.Admin.ReplaceLevels(c.Request.Context(), operator, levels); err != nil {
		return bizError(err)
	}
	response.Success(c, nil)
	return nil
}

func (a *Admin) DeleteLevel(c *gin.Context) error {
	operator, err := adminID(c)
	if err != nil {
		return err
	}
	id, err := context.ParamUint64(c, "id")
	if err != nil {
		return err
	}
	if err := a.Admin.DeleteLevel(c.Request.Context(), operator, uint(id)); err != nil {
		return bizError(err)
	}
	response.Success(c, nil)
	return nil
}

func (a *Admin) ListRules(c *gin.Context) error {
	rules, err := a.Rules.List(c.Request.Context())
	if err != nil {
		return bizError(err)
	}
	response.Success(c, rules)
	return nil
}

func (a *Admin) SaveRule(c *gin.Context) error {
	operator, err := adminID(c)
	if err != nil {
		return err
	}
	var req types.SaveRuleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	rule, err := a.Admin.SaveRule(c.Request.Context(), operator, &req)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, rule)
	return nil
}

func (a *Admin) SaveModule(c *gin.Context) error {
	operator, err := adminID(c)
	if err != nil {
		return err
	}
	var req types.SaveModuleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	if err := a.Modules.Save(c.Request.Context(), operator, c.Param("module"), &req); err != nil {
		return bizError(err)
	}
	response.Success(c, nil)
	return nil
}

func (a *Admin) ListSubmissions(c *gin.Context) error {
	var req types.ListSubmissionsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return badRequest(err)
	}
	items, err := a.Submissions.List(c.Request.Context(), models.SubmissionStatus(req.Status), req.Page, req.Size)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, items)
	return nil
}

func (a *Admin) ReviewSubmission(c *gin.Context) error {
	operator, err := adminID(c)
	if err != nil {
		return err
	}
	id, err := context.ParamUint64(c, "id")
	if err != nil {
		return err
	}
	var req types.ReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	item, err := a.Submissions.Review(c.Request.Context(), operator, id, req.Approve, req.Note)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, item)
	return nil
}

func (a *Admin) Logs(c *gin.Context) error {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	logs, err := a.Admin.Logs(c.Request.Context(), limit)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, logs)
	return nil
}
