package handler

import (
	"Nexus/pkg/context"
	"Nexus/pkg/response"
	"Nexus/service"
	"Nexus/types"

	"github.com/gin-gonic/gin"
)

type Submission struct {
	Guard       *Guard
	Submissions service.ISubmissionService
}

func (s *Submission) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/submissions", s.Guard.Auth())
	g.POST("", context.Wrap(s.Submit))
	g.GET("/mine", context.Wrap(s.ListMine))
}

// Submit 投稿进入待审核
func (s *Submission) Submit(c *gin.Context) error {
	memberID, err := context.GetMemberID(c)
	if err != nil {
		return unauthorized()
	}
	var req types.SubmitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	item, err := s.Submissions.Submit(c.Request.Context(), memberID, req.ContentType, req.ContentID)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, item)
	return nil
}

func (s *Submission) ListMine(c *gin.Context) error {
	memberID, err := context.GetMemberID(c)
	if err != nil {
		return unauthorized()
	}
	items, err := s.Submissions.ListMine(c.Request.Context(), memberID)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, items)
	return nil
}
