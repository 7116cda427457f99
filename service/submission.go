package service

import (
	"Nexus/internal/reputation"
	"Nexus/models"
	"Nexus/pkg/log"
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ ISubmissionService = (*SubmissionService)(nil)

type ISubmissionService interface {
	Submit(ctx context.Context, memberID uint64, contentType, contentID string) (*models.MemberSubmission, error)
	ListMine(ctx context.Context, memberID uint64) ([]models.MemberSubmission, error)
	List(ctx context.Context, status models.SubmissionStatus, page, size int) ([]models.MemberSubmission, error)
	// Review 审核通过时按 <type>_approved 规则给作者加分
	Review(ctx context.Context, reviewerID, id uint64, approve bool, note string) (*models.MemberSubmission, error)
}

type SubmissionService struct {
	Submissions SubmissionStore
	Rules       IRuleService
}

func (s *SubmissionService) Submit(ctx context.Context, memberID uint64, contentType, contentID string) (*models.MemberSubmission, error) {
	switch contentType {
	case models.ContentArticle, models.ContentQuestion, models.ContentAnswer:
	default:
		return nil, &reputation.ValidationError{Field: "content_type", Reason: "unsupported " + contentType}
	}
	if contentID == "" {
		return nil, &reputation.ValidationError{Field: "content_id", Reason: "must not be empty"}
	}

	item := &models.MemberSubmission{
		MemberID:    memberID,
		ContentType: contentType,
		ContentID:   contentID,
		Status:      models.SubmissionPending,
	}
	if err := s.Submissions.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}
	return item, nil
}

func (s *SubmissionService) ListMine(ctx context.Context, memberID uint64) ([]models.MemberSubmission, error) {
	return s.Submissions.ListByMember(ctx, memberID)
}

func (s *SubmissionService) List(ctx context.Context, status models.SubmissionStatus, page, size int) ([]models.MemberSubmission, error) {
	if page < 1 {
		page = 1
	}
	return s.Submissions.ListByStatus(ctx, status, size, (page-1)*size)
}

func (s *SubmissionService) Review(ctx context.Context, reviewerID, id uint64, approve bool, note string) (*models.MemberSubmission, error) {
	item, err := s.Submissions.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &reputation.ValidationError{Field: "id", Reason: fmt.Sprintf("submission %d does not exist", id)}
	}
	if err != nil {
		return nil, err
	}
	if item.Status != models.SubmissionPending {
		return nil, &reputation.ValidationError{Field: "status", Reason: "submission already reviewed"}
	}

	status := models.SubmissionRejected
	if approve {
		status = models.SubmissionApproved
	}
	ok, err := s.Submissions.Review(ctx, id, status, reviewerID, note)
	if err != nil {
		return nil, fmt.Errorf("review submission %d: %w", id, err)
	}
	if !ok {
		// 并发审核，另一方已先处理
		return nil, &reputation.ValidationError{Field: "status", Reason: "submission already reviewed"}
	}
	item.Status = status
	item.ReviewerID = &reviewerID
	item.ReviewNote = note

	if !approve {
		return item, nil
	}
	_, err = s.Rules.AwardForAction(ctx, item.MemberID, approvalAction(item.ContentType), "submission", strconv.FormatUint(item.ID, 10))
	if err == nil {
		return item, nil
	}

	// 加分失败时退回 pending，允许重新审核
	log.L.Error("award for approved submission failed",
		zap.Uint64("submission_id", item.ID),
		zap.Uint64("member_id", item.MemberID),
		zap.Error(err),
	)
	if _, rerr := s.Submissions.Reopen(ctx, id, models.SubmissionApproved); rerr != nil {
		log.L.Error("reopen submission failed, approval kept without points",
			zap.Uint64("submission_id", id),
			zap.Error(rerr),
		)
	}
	return nil, err
}

// approvalAction 审核通过对应的积分规则；回答通过即视为被采纳
func approvalAction(contentType string) string {
	if contentType == models.ContentAnswer {
		return models.ActionAnswerAccepted
	}
	return contentType + "_approved"
}
